// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package export converts value trees to and from a flat arena form.
//
// An Arena holds a self-contained copy of one value tree in three flat
// buffers, addressed by integer offsets rather than pointers. This is the
// form to hand across a boundary to code that does not share the Go heap:
// it can be walked with plain index arithmetic, or encoded as CBOR with
// MarshalCBOR and decoded elsewhere.
//
// An arena produced by Deserialize records a parse failure as a root node
// with TagError, rather than returning an error separately.
//
// The owner of an arena must call Free exactly once when finished with it.
// After Free, every accessor panics, and a second Free reports ErrFreed.
package export

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/creachadair/jvalue"
)

// ErrFreed is reported by Free for an arena that was already freed.
var ErrFreed = errors.New("arena already freed")

// A Tag identifies the variant of a Node.
type Tag uint8

// Constants defining the valid Tag values.
const (
	TagArray  Tag = iota // children are Nodes[Off:Off+Len]
	TagObject            // members are Pairs[Off:Off+Len]
	TagString            // content is Text[Off:Off+Len]
	TagNumber            // value is Num
	TagTrue
	TagFalse
	TagNull
	TagError // the value could not be produced
)

var tagStr = [...]string{
	TagArray:  "array",
	TagObject: "object",
	TagString: "string",
	TagNumber: "number",
	TagTrue:   "true",
	TagFalse:  "false",
	TagNull:   "null",
	TagError:  "error",
}

func (t Tag) String() string {
	if int(t) < len(tagStr) {
		return tagStr[t]
	}
	return fmt.Sprintf("Tag(%d)", t)
}

// A Node is a single value in an Arena. The meaning of Off and Len depends on
// the Tag; Num is used only by TagNumber.
type Node struct {
	_ struct{} `cbor:",toarray"`

	Tag Tag
	Off int
	Len int
	Num float64
}

// A Pair is a single object member in an Arena. The key is the text
// Text[KeyOff:KeyOff+KeyLen] and the value is Nodes[Val].
type Pair struct {
	_ struct{} `cbor:",toarray"`

	KeyOff int
	KeyLen int
	Val    int
}

// An Arena is a flat, self-contained copy of a value tree. The root of the
// tree is Nodes[0].
//
// The children of an array node are stored contiguously, as are the members
// of an object node. Every node referenced by another node has a greater
// index than the node that refers to it. Object members are stored in
// ascending order by key.
type Arena struct {
	Nodes []Node
	Pairs []Pair
	Text  []byte

	err   error
	freed bool
}

// Export returns an arena holding a copy of v. The arena shares no memory
// with v. A nil v is exported as null.
func Export(v jvalue.Value) *Arena {
	a := &Arena{Nodes: make([]Node, 1)}
	a.fill(0, v)
	return a
}

// Deserialize parses text with the default configuration and returns the
// result as an arena. If parsing fails, the root of the arena has TagError
// and Err reports the cause.
func Deserialize(text string) *Arena {
	return DeserializeWithConfig(text, jvalue.DefaultConfig())
}

// DeserializeWithConfig parses text with the settings from cfg and returns
// the result as an arena, as Deserialize.
func DeserializeWithConfig(text string, cfg jvalue.Config) *Arena {
	v, err := jvalue.DeserializeWithConfig(text, cfg)
	if err != nil {
		return errorArena(err)
	}
	return Export(v)
}

func errorArena(err error) *Arena {
	return &Arena{Nodes: []Node{{Tag: TagError}}, err: err}
}

// fill stores v at a.Nodes[i], appending its descendants.
func (a *Arena) fill(i int, v jvalue.Value) {
	switch t := v.(type) {
	case jvalue.Array:
		off := len(a.Nodes)
		a.Nodes = append(a.Nodes, make([]Node, len(t))...)
		a.Nodes[i] = Node{Tag: TagArray, Off: off, Len: len(t)}
		for j, elt := range t {
			a.fill(off+j, elt)
		}

	case jvalue.Object:
		off := len(a.Pairs)
		a.Pairs = append(a.Pairs, make([]Pair, len(t))...)
		a.Nodes[i] = Node{Tag: TagObject, Off: off, Len: len(t)}
		for j, key := range slices.Sorted(maps.Keys(t)) {
			koff := a.addText(key)
			val := len(a.Nodes)
			a.Nodes = append(a.Nodes, Node{})
			a.Pairs[off+j] = Pair{KeyOff: koff, KeyLen: len(key), Val: val}
			a.fill(val, t[key])
		}

	case jvalue.String:
		off := a.addText(string(t))
		a.Nodes[i] = Node{Tag: TagString, Off: off, Len: len(t)}

	case jvalue.Number:
		a.Nodes[i] = Node{Tag: TagNumber, Num: float64(t)}

	case jvalue.Constant:
		switch t {
		case jvalue.True:
			a.Nodes[i] = Node{Tag: TagTrue}
		case jvalue.False:
			a.Nodes[i] = Node{Tag: TagFalse}
		default:
			a.Nodes[i] = Node{Tag: TagNull}
		}

	default: // nil
		a.Nodes[i] = Node{Tag: TagNull}
	}
}

func (a *Arena) addText(s string) int {
	off := len(a.Text)
	a.Text = append(a.Text, s...)
	return off
}

func (a *Arena) checkLive() {
	if a.freed {
		panic("export: use of freed arena")
	}
}

// Err reports the error that caused the root of a to be TagError, or nil.
func (a *Arena) Err() error { a.checkLive(); return a.err }

// Root returns the root node of a.
func (a *Arena) Root() Node { a.checkLive(); return a.Nodes[0] }

// Elem returns the i-th child of the array node n.
// It panics if n is not an array or i is out of range.
func (a *Arena) Elem(n Node, i int) Node {
	a.checkLive()
	if n.Tag != TagArray {
		panic(fmt.Sprintf("export: Elem of %v node", n.Tag))
	} else if i < 0 || i >= n.Len {
		panic(fmt.Sprintf("export: index %d out of range (len=%d)", i, n.Len))
	}
	return a.Nodes[n.Off+i]
}

// Member returns the key and value of the i-th member of the object node n.
// It panics if n is not an object or i is out of range.
func (a *Arena) Member(n Node, i int) (string, Node) {
	a.checkLive()
	if n.Tag != TagObject {
		panic(fmt.Sprintf("export: Member of %v node", n.Tag))
	} else if i < 0 || i >= n.Len {
		panic(fmt.Sprintf("export: index %d out of range (len=%d)", i, n.Len))
	}
	p := a.Pairs[n.Off+i]
	return string(a.Text[p.KeyOff : p.KeyOff+p.KeyLen]), a.Nodes[p.Val]
}

// Str returns the content of the string node n.
// It panics if n is not a string.
func (a *Arena) Str(n Node) string {
	a.checkLive()
	if n.Tag != TagString {
		panic(fmt.Sprintf("export: Str of %v node", n.Tag))
	}
	return string(a.Text[n.Off : n.Off+n.Len])
}

// Free releases the buffers of a. It reports ErrFreed if a was already freed.
func (a *Arena) Free() error {
	if a.freed {
		return ErrFreed
	}
	a.Nodes, a.Pairs, a.Text = nil, nil, nil
	a.err = nil
	a.freed = true
	return nil
}

// Import converts a back into a value tree. If the root of a is TagError,
// Import reports the recorded error. Import reports an error if the arena is
// malformed.
func (a *Arena) Import() (jvalue.Value, error) {
	a.checkLive()
	if len(a.Nodes) == 0 {
		return nil, errors.New("export: arena has no root")
	}
	if a.Nodes[0].Tag == TagError {
		if a.err != nil {
			return nil, a.err
		}
		return nil, errors.New("export: arena holds an error")
	}
	return a.value(0)
}

func (a *Arena) value(i int) (jvalue.Value, error) {
	n := a.Nodes[i]
	switch n.Tag {
	case TagArray:
		if (n.Len > 0 && n.Off <= i) || !inRange(n.Off, n.Len, len(a.Nodes)) {
			return nil, fmt.Errorf("export: node %d: invalid children [%d:+%d]", i, n.Off, n.Len)
		}
		arr := make(jvalue.Array, n.Len)
		for j := range arr {
			elt, err := a.value(n.Off + j)
			if err != nil {
				return nil, err
			}
			arr[j] = elt
		}
		return arr, nil

	case TagObject:
		if !inRange(n.Off, n.Len, len(a.Pairs)) {
			return nil, fmt.Errorf("export: node %d: invalid members [%d:+%d]", i, n.Off, n.Len)
		}
		obj := make(jvalue.Object, n.Len)
		for _, p := range a.Pairs[n.Off : n.Off+n.Len] {
			if !inRange(p.KeyOff, p.KeyLen, len(a.Text)) {
				return nil, fmt.Errorf("export: node %d: invalid key [%d:+%d]", i, p.KeyOff, p.KeyLen)
			} else if p.Val <= i || p.Val >= len(a.Nodes) {
				return nil, fmt.Errorf("export: node %d: invalid member value %d", i, p.Val)
			}
			val, err := a.value(p.Val)
			if err != nil {
				return nil, err
			}
			obj[string(a.Text[p.KeyOff:p.KeyOff+p.KeyLen])] = val
		}
		return obj, nil

	case TagString:
		if !inRange(n.Off, n.Len, len(a.Text)) {
			return nil, fmt.Errorf("export: node %d: invalid text [%d:+%d]", i, n.Off, n.Len)
		}
		return jvalue.String(a.Text[n.Off : n.Off+n.Len]), nil
	case TagNumber:
		return jvalue.Number(n.Num), nil
	case TagTrue:
		return jvalue.True, nil
	case TagFalse:
		return jvalue.False, nil
	case TagNull:
		return jvalue.Null, nil
	default:
		return nil, fmt.Errorf("export: node %d: unexpected %v", i, n.Tag)
	}
}

// inRange reports whether [off, off+n) lies within [0, size).
func inRange(off, n, size int) bool {
	return off >= 0 && n >= 0 && off <= size && n <= size-off
}
