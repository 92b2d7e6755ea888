// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jvfmt reads value texts, checks them, and writes them back in
// canonical compact form.
//
// Usage:
//
//	jvfmt [opts] [files...]
//
// With no files, jvfmt reads standard input. Files named with a ".gz",
// ".zst", or ".lz4" suffix are decompressed. Each input must hold a single
// value; its canonical text is written to standard output followed by a
// newline. Errors are reported as
//
//	file:[line:col]: message
//
// and jvfmt exits with non-zero status if any input was invalid.
//
// Parser settings may be read from a YAML file with -config:
//
//	max_depth: 64
//	recover_from_errors: true
//	allow_comments: true
//	sort_keys: true
//
// Flags given on the command line are applied after the file. If neither
// sets a depth, nesting is limited to 10000 levels.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/creachadair/jvalue"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type fmtConfig struct {
	*cli.Command

	ConfigFile string `cli:"name=config desc='read parser settings from this YAML file'"`
	MaxDepth   int    `cli:"name=max-depth desc='maximum nesting depth of arrays and objects (0 means 10000)'"`
	Recover    bool   `cli:"name=recover desc='accept trailing commas in arrays and objects'"`
	Comments   bool   `cli:"name=comments aliases=c desc='accept // and /* */ comments'"`
	Sort       bool   `cli:"name=sort aliases=s desc='write object members in key order'"`

	Check bool `cli:"name=check desc='check inputs without writing output'"`
	Diff  bool `cli:"name=diff aliases=d desc='show the changes between each input and its canonical text'"`
	Sum   bool `cli:"name=sum desc='print a BLAKE3 digest of the canonical text of each input'"`
	CBOR  bool `cli:"name=cbor desc='write each value as a CBOR-encoded arena'"`

	Color   bool `cli:"name=color desc='color diagnostics even if stderr is not a terminal'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`
}

func main() {
	cli.MainContext(context.Background(), mainCommand())
}

func mainCommand() *cli.Command {
	cfg := &fmtConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "jvfmt").
		WithSynopsis("jvfmt [opts] [files...]").
		WithDescription("jvfmt checks value texts and writes them in canonical compact form.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *fmtConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	set, err := cfg.settings()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	f := &formatter{
		settings: set,
		out:      cc.Out,
		diag:     os.Stderr,
		log:      slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		bad:      color.New(color.FgRed, color.Bold),
	}
	if cfg.Color || isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		f.bad.EnableColor()
		f.color = true
	} else {
		f.bad.DisableColor()
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	var nbad int
	for _, name := range args {
		if err := f.formatPath(cc, name); errors.Is(err, errInvalid) {
			nbad++
		} else if err != nil {
			return err
		}
	}
	if nbad != 0 {
		return fmt.Errorf("%d of %d inputs were invalid", nbad, len(args))
	}
	return nil
}

// settings resolves the configuration file and flags of cfg.
func (cfg *fmtConfig) settings() (settings, error) {
	var set settings
	fc := fileConfig{Config: jvalue.DefaultConfig()}
	fc.MaxDepth = defaultMaxDepth
	if cfg.ConfigFile != "" {
		var err error
		fc, err = loadConfig(cfg.ConfigFile)
		if err != nil {
			return set, err
		}
	}
	set.parse = fc.Config
	set.enc.SortKeys = fc.SortKeys || cfg.Sort
	if cfg.MaxDepth > 0 {
		set.parse.MaxDepth = cfg.MaxDepth
	} else if cfg.MaxDepth < 0 {
		return set, fmt.Errorf("%w: -max-depth must not be negative", cli.ErrUsage)
	}
	set.parse.RecoverFromErrors = set.parse.RecoverFromErrors || cfg.Recover
	set.parse.AllowComments = set.parse.AllowComments || cfg.Comments

	var nmode int
	for _, m := range []struct {
		on   bool
		mode outputMode
	}{
		{cfg.Check, modeCheck}, {cfg.Diff, modeDiff}, {cfg.Sum, modeSum}, {cfg.CBOR, modeCBOR},
	} {
		if m.on {
			set.mode = m.mode
			nmode++
		}
	}
	if nmode > 1 {
		return set, fmt.Errorf("%w: at most one of -check, -diff, -sum, -cbor may be set", cli.ErrUsage)
	}
	return set, nil
}
