// Package fileio opens the command line tool's inputs and outputs, with
// optional gzip or zstd compression.
package fileio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Stdio is the path that selects standard input or standard output.
const Stdio = "-"

// Compression is a compression format.
type Compression uint8

const (
	// CompressionAuto detects the format: from the magic number when reading
	// and from the file extension when writing.
	CompressionAuto Compression = iota
	// CompressionNone reads and writes plain bytes.
	CompressionNone
	// CompressionGzip is RFC 1952 gzip.
	CompressionGzip
	// CompressionZstd is Zstandard.
	CompressionZstd
)

var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// String returns the name accepted by ParseCompression.
func (c Compression) String() string {
	switch c {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name. The empty string means auto.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CompressionAuto, nil
	case "none", "plain":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	}
	return CompressionAuto, errors.Errorf("unknown compression %q: want auto, none, gzip or zstd", s)
}

// Sniff returns the compression format that the leading bytes of a stream
// announce, or CompressionNone.
func Sniff(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// FromExtension returns the compression format implied by a file name.
func FromExtension(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// OpenInput opens path for reading, or reads stdin for Stdio, and
// decompresses it according to c. stdin is never closed.
func OpenInput(path string, stdin io.Reader, c Compression) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == Stdio || path == "" {
		src, closer = stdin, noClose{}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open input %q", path)
		}
		src, closer = f, f
	}
	rc, err := NewReader(src, c)
	if err != nil {
		closer.Close()
		return nil, errors.Wrapf(err, "cannot read input %q", path)
	}
	return &readCloser{Reader: rc, closers: []io.Closer{rc, closer}}, nil
}

// NewReader wraps r with a decompressor for c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	if c == CompressionAuto {
		head, err := br.Peek(len(zstdMagic))
		if err != nil && err != io.EOF {
			return nil, err
		}
		c = Sniff(head)
	}

	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		return zr, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(br), nil
	}
}

// CreateOutput creates path for writing, or writes to stdout for Stdio, and
// compresses what is written according to c. For CompressionAuto the file
// extension decides; stdout is left uncompressed and never closed.
func CreateOutput(path string, stdout io.Writer, c Compression) (io.WriteCloser, error) {
	var (
		dst    io.Writer
		closer io.Closer
	)
	if path == Stdio || path == "" {
		dst, closer = stdout, noClose{}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot create output %q", path)
		}
		dst, closer = f, f
	}
	if c == CompressionAuto {
		c = FromExtension(path)
	}
	wc, err := NewWriter(dst, c)
	if err != nil {
		closer.Close()
		return nil, errors.Wrapf(err, "cannot write output %q", path)
	}
	return &writeCloser{Writer: wc, closers: []io.Closer{wc, closer}}, nil
}

// NewWriter wraps w with a compressor for c. CompressionAuto writes plain
// bytes. Closing the result flushes the compressor but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return zw, nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// noClose leaves standard input and output open.
type noClose struct{}

func (noClose) Close() error { return nil }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	return closeAll(r.closers)
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	return closeAll(w.closers)
}

// closeAll closes every closer in order and returns the first error.
func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
