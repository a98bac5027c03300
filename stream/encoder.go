package stream

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/coregx/utfconv"
	"github.com/coregx/utfconv/internal/conv"
)

// Encoder transforms UTF-8 into serialized UTF-16.
//
// An Encoder keeps a scratch buffer and a stream position, so it must not be
// used from more than one goroutine at a time.
type Encoder struct {
	tc       *utfconv.Transcoder
	order    binary.ByteOrder
	writeBOM bool

	units    []uint16
	pending  bool  // BOM still to be written
	consumed int64 // input bytes consumed since Reset
}

var _ transform.Transformer = (*Encoder)(nil)

// NewEncoder returns an Encoder producing UTF-16 in byte order e. With
// unicode.UseBOM or unicode.ExpectBOM the output starts with a byte order
// mark.
func NewEncoder(e unicode.Endianness, policy unicode.BOMPolicy, opts ...Option) *Encoder {
	o := newOptions(opts)
	enc := &Encoder{
		tc:       o.tc,
		order:    conv.Order(e),
		writeBOM: writesBOM(policy),
		units:    make([]uint16, o.bufferUnits),
	}
	enc.Reset()
	return enc
}

// Reset implements transform.Transformer.
func (e *Encoder) Reset() {
	e.pending = e.writeBOM
	e.consumed = 0
}

// Transform implements transform.Transformer.
func (e *Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if e.pending {
		if len(dst) < 2 {
			return 0, 0, transform.ErrShortDst
		}
		e.order.PutUint16(dst, bom)
		e.pending = false
		nDst = 2
	}
	defer func() { e.consumed += int64(nSrc) }()

	for nSrc < len(src) {
		room := min((len(dst)-nDst)/2, len(e.units))
		n, c, status := e.tc.ToUTF16(e.units[:room], src[nSrc:])
		conv.PutUnits(dst[nDst:], e.units[:n], e.order)
		nDst += 2 * n
		nSrc += c

		switch status {
		case utfconv.Done:
			return nDst, nSrc, nil
		case utfconv.DestinationTooSmall:
			if room == len(e.units) && n > 0 {
				continue
			}
			return nDst, nSrc, transform.ErrShortDst
		case utfconv.NeedMoreData:
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
		}
		return nDst, nSrc, &utfconv.TranscodeError{
			Dir:    utfconv.UTF8ToUTF16,
			Offset: e.consumed + int64(nSrc),
			Status: status,
		}
	}
	return nDst, nSrc, nil
}
