// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package input opens source files for reading, decompressing them when
// their names indicate a compression format.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the path that denotes standard input.
const Stdin = "-"

// Open opens the named file for reading. The path "-" denotes standard input,
// which is not closed when the result is closed. Files whose names end in
// ".gz", ".zst", or ".lz4" are decompressed with gzip, zstd, or LZ4 framing
// respectively.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := Decompress(f, filepath.Ext(path))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return rc, nil
}

// Decompress wraps r to decompress data in the format indicated by the file
// extension ext (including the leading dot). For an unrecognized extension,
// r is returned unchanged. Closing the result also closes r.
func Decompress(r io.ReadCloser, ext string) (io.ReadCloser, error) {
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return stack{Reader: gz, closers: []io.Closer{gz, r}}, nil

	case ".zst":
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		zc := zr.IOReadCloser()
		return stack{Reader: zc, closers: []io.Closer{zc, r}}, nil

	case ".lz4":
		return stack{Reader: lz4.NewReader(r), closers: []io.Closer{r}}, nil

	default:
		return r, nil
	}
}

// A stack reads from a decompressor and closes it along with the underlying
// source, innermost first.
type stack struct {
	io.Reader
	closers []io.Closer
}

func (s stack) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
