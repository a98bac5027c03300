package utfconv

import (
	"encoding/binary"
	"math/bits"
)

// Packed words.
//
// Both transcoders read their input a word at a time. The word is always
// assembled in logical little-endian order: input byte k (or code unit k)
// occupies the k-th lowest byte (or 16-bit lane) of the word no matter how the
// host stores integers. The masks and comparands below are written once for
// that layout, and the compiler turns the loads into single unaligned moves on
// little-endian targets.

// load32 packs src[0:4] into a word, byte k in bits 8k..8k+7.
func load32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// load2 packs src[0:2] into a word, unit k in bits 16k..16k+15.
func load2(src []uint16) uint32 {
	_ = src[1]
	return uint32(src[0]) | uint32(src[1])<<16
}

// ---------------------------------------------------------------------------
// UTF-8 side
// ---------------------------------------------------------------------------

func allBytesASCII(w uint32) bool {
	return w&0x80808080 == 0
}

// leadingASCIIBytes counts the ASCII bytes at the front of w (0-4).
func leadingASCIIBytes(w uint32) int {
	return bits.TrailingZeros32(w&0x80808080) >> 3
}

// widenWord stores the four bytes of an all-ASCII word as code units.
func widenWord(dst []uint16, w uint32) {
	_ = dst[3]
	dst[0] = uint16(w & 0xFF)
	dst[1] = uint16(w >> 8 & 0xFF)
	dst[2] = uint16(w >> 16 & 0xFF)
	dst[3] = uint16(w >> 24)
}

// leadClass is the role of the first byte of a word.
type leadClass uint8

const (
	classASCII leadClass = iota
	classInvalid
	classTwoByte
	classThreeByte
	classFourByte
)

// leadClasses is indexed by the high nibble of a lead byte (Unicode Table 3-6).
// The nibble alone is not enough to accept a sequence: C0/C1, E0/ED and
// F0/F4/F5+ need the checks in the is*Seq predicates.
var leadClasses = [16]leadClass{
	classASCII, classASCII, classASCII, classASCII,
	classASCII, classASCII, classASCII, classASCII,
	classInvalid, classInvalid, classInvalid, classInvalid, // 10xxxxxx
	classTwoByte, classTwoByte, // 110xxxxx
	classThreeByte, // 1110xxxx
	classFourByte,  // 1111xxxx
}

func classifyLead(w uint32) leadClass {
	return leadClasses[w>>4&0x0F]
}

// isTwoByteSeq reports whether the low 16 bits of w are [C2..DF][80..BF].
// Masking keeps the whole lead byte and the two marker bits of the
// continuation byte, so one range check covers both the markers and the
// overlong leads C0 and C1.
func isTwoByteSeq(w uint32) bool {
	return (w&0xC0FF)-0x80C2 <= 0x80DF-0x80C2
}

func decodeTwoByte(w uint32) uint16 {
	return uint16((w&0x1F)<<6 | w>>8&0x3F)
}

// isThreeByteSeq reports whether the low 24 bits of w are a well-formed
// 3-byte sequence. After the marker check, bit 13 is bit 5 of the second
// byte, so:
//
//	E0 80..9F (overlong):   w & 0x200F == 0
//	ED A0..BF (surrogates): (w - 0x200D) & 0x200F == 0
func isThreeByteSeq(w uint32) bool {
	if w&0x00C0C0F0 != 0x008080E0 {
		return false
	}
	return w&0x200F != 0 && (w-0x200D)&0x200F != 0
}

func decodeThreeByte(w uint32) uint16 {
	return uint16((w&0x0F)<<12 | (w>>8&0x3F)<<6 | w>>16&0x3F)
}

// isFourByteSeq reports whether w is a well-formed 4-byte sequence. The lead
// and second byte packed big-end first must fall in F0 90 ..= F4 8F, which
// excludes overlong forms below U+10000 and everything above U+10FFFF.
func isFourByteSeq(w uint32) bool {
	if w&0xC0C0C0F8 != 0x808080F0 {
		return false
	}
	lead := (w&0xFF)<<8 | w>>8&0xFF
	return lead-0xF090 <= 0xF48F-0xF090
}

// decodeFourByte returns the surrogate pair for a 4-byte sequence.
func decodeFourByte(w uint32) (hi, lo uint16) {
	s := (w&0x07)<<18 | (w&0x3F00)<<4 | (w&0x3F0000)>>10 | w>>24&0x3F
	s -= 0x10000
	return uint16(0xD800 + s>>10), uint16(0xDC00 + s&0x3FF)
}

// sequenceLength returns the length of the sequence introduced by lead byte b,
// or 0 if b can never start one.
func sequenceLength(b byte) int {
	switch {
	case b >= 0xC2 && b <= 0xDF:
		return 2
	case b >= 0xE0 && b <= 0xEF:
		return 3
	case b >= 0xF0 && b <= 0xF4:
		return 4
	}
	return 0
}

// secondByteBounds returns the inclusive range allowed for the byte after
// lead byte b (Unicode Table 3-7).
func secondByteBounds(b byte) (lo, hi byte) {
	switch b {
	case 0xE0:
		return 0xA0, 0xBF
	case 0xED:
		return 0x80, 0x9F
	case 0xF0:
		return 0x90, 0xBF
	case 0xF4:
		return 0x80, 0x8F
	}
	return 0x80, 0xBF
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// ---------------------------------------------------------------------------
// UTF-16 side
// ---------------------------------------------------------------------------

func allUnitsASCII2(w uint32) bool {
	return w&0xFF80FF80 == 0
}

// unitClass is the UTF-8 length class of a single code unit.
type unitClass uint8

const (
	unitASCII unitClass = iota
	unitTwoByte
	unitThreeByte
	unitHighSurrogate
	unitLowSurrogate
)

func classifyUnit(c uint16) unitClass {
	switch {
	case c < 0x80:
		return unitASCII
	case c < 0x800:
		return unitTwoByte
	case c&0xF800 != 0xD800:
		return unitThreeByte
	case c < 0xDC00:
		return unitHighSurrogate
	default:
		return unitLowSurrogate
	}
}

func isTwoByteUnit(c uint16) bool {
	return c-0x80 < 0x800-0x80
}

func isThreeByteUnit(c uint16) bool {
	return c >= 0x800 && c&0xF800 != 0xD800
}

func isLowSurrogate(c uint16) bool {
	return c&0xFC00 == 0xDC00
}

func putTwoByte(dst []byte, c uint16) {
	_ = dst[1]
	dst[0] = byte(0xC0 | c>>6)
	dst[1] = byte(0x80 | c&0x3F)
}

func putThreeByte(dst []byte, c uint16) {
	_ = dst[2]
	dst[0] = byte(0xE0 | c>>12)
	dst[1] = byte(0x80 | c>>6&0x3F)
	dst[2] = byte(0x80 | c&0x3F)
}

// putFourByte encodes a validated surrogate pair.
func putFourByte(dst []byte, hi, lo uint16) {
	_ = dst[3]
	s := 0x10000 + (uint32(hi)-0xD800)<<10 + (uint32(lo) - 0xDC00)
	dst[0] = byte(0xF0 | s>>18)
	dst[1] = byte(0x80 | s>>12&0x3F)
	dst[2] = byte(0x80 | s>>6&0x3F)
	dst[3] = byte(0x80 | s&0x3F)
}
