// SPDX-License-Identifier: MIT
// Package dataset - file streams with transparent compression.
//
// The codec is chosen from the path extension:
//   - ".zst" Zstandard frames (klauspost/compress/zstd)
//   - ".s2"  S2 stream (klauspost/compress/s2)
//   - ".lz4" LZ4 frames (pierrec/lz4/v4)
//   - anything else is read and written as plain text.

package dataset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a stream codec.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

// String returns the codec name.
func (c Compression) String() string {
	switch c {
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CompressionFor maps a file path to its codec by extension (case-insensitive).
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// readCloser closes the codec first, then the file.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var errs []error
	for _, c := range rc.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// writeCloser flushes and closes the codec before the file.
type writeCloser struct {
	io.Writer
	closers []func() error
}

func (wc *writeCloser) Close() error {
	var errs []error
	for _, c := range wc.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NewReader wraps r in a decompressor for c. The returned Close releases
// decoder state only; it never closes r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}

		return dec.IOReadCloser(), nil
	case CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w in a compressor for c. Close must be called to flush the
// final frame; it never closes w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}

		return enc, nil
	case CompressionS2:
		return s2.NewWriter(w), nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return &writeCloser{Writer: w}, nil
	}
}

// Open opens path for reading, decompressing by extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, datasetErrorf(opOpen, err)
	}
	r, err := NewReader(f, CompressionFor(path))
	if err != nil {
		_ = f.Close()
		return nil, datasetErrorf(opOpen, err)
	}

	return &readCloser{Reader: r, closers: []func() error{r.Close, f.Close}}, nil
}

// Create creates or truncates path for writing, compressing by extension.
// The caller must Close the result to flush the codec and the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, datasetErrorf(opCreate, err)
	}
	w, err := NewWriter(f, CompressionFor(path))
	if err != nil {
		_ = f.Close()
		return nil, datasetErrorf(opCreate, err)
	}

	return &writeCloser{Writer: w, closers: []func() error{w.Close, f.Close}}, nil
}

// ReadFile opens path and parses it as a Table.
func ReadFile(path string) (*Table, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(rc)
	if cerr := rc.Close(); err == nil && cerr != nil {
		err = datasetErrorf(opOpen, cerr)
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}
