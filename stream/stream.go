// Package stream adapts the utfconv engine to byte streams.
//
// Encoder turns UTF-8 into UTF-16LE or UTF-16BE bytes and Decoder does the
// reverse. Both implement golang.org/x/text/transform.Transformer, so they
// plug into transform.NewReader, transform.NewWriter, transform.Chain and
// transform.Bytes. Byte order and byte order mark handling use the types
// from golang.org/x/text/encoding/unicode and behave like unicode.UTF16.
//
// Unlike unicode.UTF16, malformed input is never replaced with U+FFFD:
// the transformation stops with a *utfconv.TranscodeError whose Offset is
// measured from the start of the stream.
//
// Example:
//
//	r := stream.NewReader(file, stream.NewDecoder(unicode.LittleEndian, unicode.UseBOM))
//	text, err := io.ReadAll(r)
package stream

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/coregx/utfconv"
)

// ErrMissingBOM is returned by a Decoder with unicode.ExpectBOM when the
// input does not start with a byte order mark.
var ErrMissingBOM = unicode.ErrMissingBOM

// bom is the byte order mark as a code unit.
const bom = 0xFEFF

// defaultBufferUnits is the size of the code unit scratch buffer.
const defaultBufferUnits = 512

type options struct {
	tc          *utfconv.Transcoder
	bufferUnits int
}

// Option configures an Encoder or Decoder.
type Option func(*options)

// WithTranscoder makes the transformer use tc instead of utfconv.Default().
func WithTranscoder(tc *utfconv.Transcoder) Option {
	return func(o *options) {
		if tc != nil {
			o.tc = tc
		}
	}
}

// WithBufferUnits sets the size, in code units, of the scratch buffer that
// sits between the engine and the serialized bytes. Values below 2 are
// raised to 2 so a surrogate pair always fits.
func WithBufferUnits(n int) Option {
	return func(o *options) {
		o.bufferUnits = max(n, 2)
	}
}

func newOptions(opts []Option) options {
	o := options{
		tc:          utfconv.Default(),
		bufferUnits: defaultBufferUnits,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func writesBOM(p unicode.BOMPolicy) bool {
	return p == unicode.UseBOM || p == unicode.ExpectBOM
}

// NewReader returns a reader that transforms the contents of r with t.
func NewReader(r io.Reader, t transform.Transformer) *transform.Reader {
	return transform.NewReader(r, t)
}

// NewWriter returns a writer that transforms everything written to it with t
// before passing it on to w. Close must be called to flush the last bytes.
func NewWriter(w io.Writer, t transform.Transformer) *transform.Writer {
	return transform.NewWriter(w, t)
}

// Encode converts a complete UTF-8 input to UTF-16 bytes.
func Encode(src []byte, e unicode.Endianness, policy unicode.BOMPolicy, opts ...Option) ([]byte, error) {
	out, _, err := transform.Bytes(NewEncoder(e, policy, opts...), src)
	return out, err
}

// Decode converts complete UTF-16 bytes to UTF-8.
func Decode(src []byte, e unicode.Endianness, policy unicode.BOMPolicy, opts ...Option) ([]byte, error) {
	out, _, err := transform.Bytes(NewDecoder(e, policy, opts...), src)
	return out, err
}
