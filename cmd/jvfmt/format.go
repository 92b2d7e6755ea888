// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/export"
	"github.com/creachadair/jvalue/internal/input"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/zeebo/blake3"
)

// errInvalid reports that an input could not be parsed. The diagnostic has
// already been printed.
var errInvalid = errors.New("invalid input")

type outputMode int

const (
	modeFormat outputMode = iota // write canonical text
	modeCheck                    // write nothing
	modeDiff                     // write changes from the input
	modeSum                      // write a digest of the sorted text
	modeCBOR                     // write an exported arena
)

// defaultMaxDepth bounds nesting when neither the config file nor the flags
// set a depth. The parser recurses once per level, so an unbounded depth lets
// a hostile input exhaust the goroutine stack.
const defaultMaxDepth = 10000

// settings is the resolved configuration for a run.
type settings struct {
	parse jvalue.Config
	enc   jvalue.Encoder
	mode  outputMode
	color bool
}

// fileConfig is the format of a -config file.
type fileConfig struct {
	jvalue.Config `yaml:",inline"`

	SortKeys bool `yaml:"sort_keys"`
}

// loadConfig reads a YAML configuration file. Unknown fields are an error.
// A missing or zero max_depth means defaultMaxDepth.
func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
		return fileConfig{}, fmt.Errorf("%w: config %q: %w", cli.ErrUsage, path, err)
	}
	if fc.MaxDepth < 0 {
		return fileConfig{}, fmt.Errorf("%w: config %q: max_depth must not be negative", cli.ErrUsage, path)
	} else if fc.MaxDepth == 0 {
		fc.MaxDepth = defaultMaxDepth
	}
	return fc, nil
}

// A formatter processes inputs according to its settings.
type formatter struct {
	settings

	out  io.Writer    // primary output
	diag io.Writer    // diagnostics
	log  *slog.Logger // progress
	bad  *color.Color // highlights diagnostics
}

// formatPath reads and formats the named input. The name "-" denotes the
// input of cc.
func (f *formatter) formatPath(cc *cli.Context, name string) error {
	var rc io.ReadCloser
	if name == input.Stdin {
		rc = io.NopCloser(cc.In)
	} else {
		var err error
		rc, err = input.Open(name)
		if err != nil {
			return err
		}
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("read %q: %w", name, err)
	}
	return f.format(name, data)
}

// format processes the contents of a single input. If data do not parse, it
// prints a diagnostic and returns errInvalid.
func (f *formatter) format(name string, data []byte) error {
	start := time.Now()
	v, err := jvalue.DeserializeBytes(data, f.parse)
	if err != nil {
		f.bad.Fprintf(f.diag, "%s:%v\n", name, err)
		f.log.Debug("parse failed", "input", name, "bytes", len(data))
		return errInvalid
	}
	f.log.Debug("parsed input", "input", name, "bytes", len(data), "elapsed", time.Since(start))

	switch f.mode {
	case modeCheck:
		return nil

	case modeDiff:
		text := f.enc.ToText(v) + "\n"
		if text == string(data) {
			return nil
		}
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(data), text, false))
		fmt.Fprintf(f.out, "--- %s\n+++ %s (formatted)\n", name, name)
		if f.color {
			_, err = fmt.Fprintln(f.out, dmp.DiffPrettyText(diffs))
		} else {
			_, err = io.WriteString(f.out, dmp.PatchToText(dmp.PatchMake(string(data), diffs)))
		}
		return err

	case modeSum:
		sum := blake3.Sum256([]byte(jvalue.Encoder{SortKeys: true}.ToText(v)))
		_, err := fmt.Fprintf(f.out, "%x  %s\n", sum, name)
		return err

	case modeCBOR:
		a := export.Export(v)
		defer a.Free()
		enc, err := a.MarshalCBOR()
		if err != nil {
			return fmt.Errorf("encode %q: %w", name, err)
		}
		_, err = f.out.Write(enc)
		return err

	default:
		if err := f.enc.Encode(f.out, v); err != nil {
			return err
		}
		_, err := io.WriteString(f.out, "\n")
		return err
	}
}
