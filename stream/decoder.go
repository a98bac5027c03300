package stream

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/coregx/utfconv"
	"github.com/coregx/utfconv/internal/conv"
)

// Decoder transforms serialized UTF-16 into UTF-8.
//
// With unicode.UseBOM a leading byte order mark selects the byte order and is
// dropped; without one the configured order applies. unicode.ExpectBOM
// additionally fails with ErrMissingBOM if there is none. With
// unicode.IgnoreBOM a leading U+FEFF is decoded like any other character.
//
// A Decoder must not be used from more than one goroutine at a time.
type Decoder struct {
	tc         *utfconv.Transcoder
	initial    binary.ByteOrder
	acceptBOM  bool
	requireBOM bool

	order    binary.ByteOrder
	units    []uint16
	sniffed  bool  // BOM handling done
	consumed int64 // input bytes consumed since Reset
}

var _ transform.Transformer = (*Decoder)(nil)

// NewDecoder returns a Decoder reading UTF-16 in byte order e, subject to
// policy.
func NewDecoder(e unicode.Endianness, policy unicode.BOMPolicy, opts ...Option) *Decoder {
	o := newOptions(opts)
	d := &Decoder{
		tc:         o.tc,
		initial:    conv.Order(e),
		acceptBOM:  writesBOM(policy),
		requireBOM: policy == unicode.ExpectBOM,
		units:      make([]uint16, o.bufferUnits),
	}
	d.Reset()
	return d
}

// Reset implements transform.Transformer.
func (d *Decoder) Reset() {
	d.order = d.initial
	d.sniffed = !d.acceptBOM
	d.consumed = 0
}

// Transform implements transform.Transformer.
func (d *Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(src) == 0 {
		if atEOF && !d.sniffed && d.requireBOM {
			return 0, 0, ErrMissingBOM
		}
		return 0, 0, nil
	}
	defer func() { d.consumed += int64(nSrc) }()

	if !d.sniffed {
		if len(src) < 2 {
			if !atEOF {
				return 0, 0, transform.ErrShortSrc
			}
			if d.requireBOM {
				return 0, 0, ErrMissingBOM
			}
			return 0, 0, d.errAt(0, utfconv.NeedMoreData)
		}
		switch {
		case src[0] == 0xFE && src[1] == 0xFF:
			d.order = binary.BigEndian
			nSrc = 2
		case src[0] == 0xFF && src[1] == 0xFE:
			d.order = binary.LittleEndian
			nSrc = 2
		default:
			if d.requireBOM {
				return 0, 0, ErrMissingBOM
			}
		}
		d.sniffed = true
	}

	for len(src)-nSrc >= 2 {
		k := conv.Units(d.units, src[nSrc:], d.order)
		more := len(src)-nSrc > 2*k+1 // whole units beyond the scratch buffer
		n, c, status := d.tc.ToUTF8(dst[nDst:], d.units[:k])
		nDst += n
		nSrc += 2 * c

		switch status {
		case utfconv.Done:
			if more {
				continue
			}
		case utfconv.DestinationTooSmall:
			return nDst, nSrc, transform.ErrShortDst
		case utfconv.NeedMoreData:
			// A high surrogate ended the scratch buffer.
			if more {
				continue
			}
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, d.errAt(nSrc, status)
		default:
			return nDst, nSrc, d.errAt(nSrc, status)
		}
		break
	}

	if nSrc < len(src) {
		// One byte left over: half a code unit.
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, d.errAt(nSrc, utfconv.NeedMoreData)
	}
	return nDst, nSrc, nil
}

// errAt reports a failure at byte offset off of the current src. The error
// offset is counted in code units from the start of the stream.
func (d *Decoder) errAt(off int, status utfconv.Status) error {
	return &utfconv.TranscodeError{
		Dir:    utfconv.UTF16ToUTF8,
		Offset: (d.consumed + int64(off)) / 2,
		Status: status,
	}
}
