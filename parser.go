// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"strconv"

	"go4.org/mem"
)

// Deserialize parses text as a single value using the default configuration.
// In case of error, the concrete type of the error is *Error, and no value is
// returned.
func Deserialize(text string) (Value, error) {
	return deserialize(mem.S(text), DefaultConfig())
}

// DeserializeWithConfig parses text as a single value using the settings
// from cfg.
func DeserializeWithConfig(text string, cfg Config) (Value, error) {
	return deserialize(mem.S(text), cfg)
}

// DeserializeBytes parses data as a single value using the settings from cfg.
func DeserializeBytes(data []byte, cfg Config) (Value, error) {
	return deserialize(mem.B(data), cfg)
}

func deserialize(src mem.RO, cfg Config) (Value, error) {
	toks, err := tokenize(src, cfg)
	if err != nil {
		return nil, err
	}
	return parse(src, toks, cfg)
}

// A parser constructs a value tree by recursive descent over a complete
// sequence of tokens.
//
// Syntax errors are reported by panicking with an *Error, which parse
// recovers and returns to the caller.
type parser struct {
	src  mem.RO
	toks []Token
	cur  int // index of the next unconsumed token
	cfg  Config

	depth int // current nesting depth of arrays and objects
}

func parse(src mem.RO, toks []Token, cfg Config) (_ Value, err error) {
	p := &parser{src: src, toks: toks, cfg: cfg}
	defer p.recoverParseError(&err)

	v := p.value()
	if !p.isFinished() {
		p.advance()
		panic(p.errorf("Unexpected token after value"))
	}
	return v, nil
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		err, ok := perr.(*Error)
		if !ok {
			panic(perr)
		}
		*errp = err
	}
}

// value consumes a single value of any type.
func (p *parser) value() Value {
	switch tok := p.advance(); tok.Kind {
	case LSquare:
		return p.nested(p.array)
	case LBrace:
		return p.nested(p.object)
	case NumberToken:
		return p.number(tok, false)
	case Minus:
		// A sign is only part of a number if they are adjacent.
		if next, ok := p.peek(); ok && next.Kind == NumberToken && next.Span.Pos == tok.Span.End {
			return p.number(p.advance(), true)
		}
	case StringToken:
		return String(p.unquote(tok))
	case TrueToken:
		return True
	case FalseToken:
		return False
	case NullToken:
		return Null
	}
	panic(p.errorf("Unknown token"))
}

// nested calls parse to consume the body of an array or object, enforcing
// the depth bound.
func (p *parser) nested(parse func() Value) Value {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.cfg.MaxDepth {
		panic(p.errorf("Max depth reached"))
	}
	return parse()
}

// array consumes the elements of an array.
// Precondition: previous == LSquare.
func (p *parser) array() Value {
	arr := Array{}
	for !p.check(RSquare) {
		if p.isFinished() {
			break
		}
		if len(arr) != 0 {
			p.consume(Comma, "Expected comma after element")
			if p.isFinished() {
				break
			} else if p.check(RSquare) {
				if p.cfg.RecoverFromErrors {
					continue
				}
				panic(p.errorf("Trailing comma on list"))
			}
		}
		arr = append(arr, p.value())
	}
	p.consume(RSquare, "Unclosed '['")
	return arr
}

// object consumes the members of an object.
// Precondition: previous == LBrace.
func (p *parser) object() Value {
	obj := Object{}
	first := true
	for !p.check(RBrace) {
		if p.isFinished() {
			break
		}
		if !first {
			p.consume(Comma, "Expected comma after element")
		}
		first = false

		if !p.check(StringToken) {
			if prev, _ := p.previous(); prev.Kind == Comma {
				if !p.cfg.RecoverFromErrors {
					panic(p.errorf("Trailing comma in object"))
				} else if p.isFinished() || p.check(RBrace) {
					continue
				}
			}
			panic(p.errorf("Expected STRING"))
		}
		key := p.unquote(p.advance())
		p.consume(Colon, "Expected ':'")
		obj[key] = p.value() // the last duplicate wins
	}
	p.consume(RBrace, "Unclosed '{'")
	return obj
}

// number converts the text of tok to a Number, negated if neg is true.
func (p *parser) number(tok Token, neg bool) Value {
	text := tok.Span.slice(p.src).StringCopy()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		perr := p.errorf("Invalid number literal %q", text)
		perr.err = err
		panic(perr)
	}
	if neg {
		v = -v
	}
	return Number(v)
}

// unquote returns the text of a string token without its quotation marks.
func (p *parser) unquote(tok Token) string {
	text := tok.Span.slice(p.src)
	if text.Len() < 2 {
		return "" // not possible for a token from the lexer
	}
	return text.Slice(1, text.Len()-1).StringCopy()
}

func (p *parser) isFinished() bool { return p.cur >= len(p.toks) }

// check reports whether the next token has the given kind.
func (p *parser) check(kind TokenKind) bool {
	return !p.isFinished() && p.toks[p.cur].Kind == kind
}

// match consumes the next token if it has the given kind, and reports whether
// it did so.
func (p *parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.cur++
		return true
	}
	return false
}

// consume consumes and returns the next token, which must have the given kind.
// Otherwise it fails with msg.
func (p *parser) consume(kind TokenKind, msg string) Token {
	if p.match(kind) {
		return p.toks[p.cur-1]
	}
	panic(p.errorf("%s", msg))
}

// advance consumes and returns the next token, failing at the end of input.
func (p *parser) advance() Token {
	if p.isFinished() {
		panic(p.errorf("Unexpected end of input"))
	}
	p.cur++
	return p.toks[p.cur-1]
}

// peek returns the next token without consuming it.
func (p *parser) peek() (Token, bool) {
	if p.isFinished() {
		return Token{}, false
	}
	return p.toks[p.cur], true
}

// previous returns the most recently consumed token.
func (p *parser) previous() (Token, bool) {
	if p.cur == 0 {
		return Token{}, false
	}
	return p.toks[p.cur-1], true
}

// errorf constructs an error located at the most recently consumed token.
// If no token has been consumed, the error has no position.
func (p *parser) errorf(msg string, args ...any) *Error {
	var pos FilePosition
	if prev, ok := p.previous(); ok {
		pos = prev.Span.filePosition(p.src)
	}
	return newError(pos, msg, args...)
}
