package simd

import (
	"encoding/binary"
	"math/bits"
)

// hi8 extracts the high bit of every byte in a 64-bit word.
const hi8 = uint64(0x8080808080808080)

// widenASCIIScalar widens 8 bytes per step using SWAR.
//
// Algorithm:
//  1. Read 8 bytes as a little-endian uint64
//  2. AND with 0x8080808080808080; a non-zero result means a non-ASCII byte
//  3. If the chunk is ASCII, store each byte as a code unit
//  4. Otherwise the trailing zero count locates the first non-ASCII byte;
//     the bytes before it are still copied
func widenASCIIScalar(dst []uint16, src []byte) int {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(src[i:])
		if mask := chunk & hi8; mask != 0 {
			k := bits.TrailingZeros64(mask) >> 3
			for m := 0; m < k; m++ {
				dst[i+m] = uint16(src[i+m])
			}
			return i + k
		}
		widenEight(dst[i:i+8:i+8], chunk)
	}

	for ; i < n; i++ {
		b := src[i]
		if b >= 0x80 {
			return i
		}
		dst[i] = uint16(b)
	}
	return n
}

// widenASCIIBlock checks 32 bytes per step with a single combined test, then
// finishes the last partial block (or the block holding the first non-ASCII
// byte) with the scalar kernel.
func widenASCIIBlock(dst []uint16, src []byte) int {
	n := min(len(dst), len(src))

	i := 0
	for ; i+32 <= n; i += 32 {
		s := src[i : i+32 : i+32]
		c0 := binary.LittleEndian.Uint64(s[0:])
		c1 := binary.LittleEndian.Uint64(s[8:])
		c2 := binary.LittleEndian.Uint64(s[16:])
		c3 := binary.LittleEndian.Uint64(s[24:])
		if (c0|c1|c2|c3)&hi8 != 0 {
			break
		}
		d := dst[i : i+32 : i+32]
		widenEight(d[0:8], c0)
		widenEight(d[8:16], c1)
		widenEight(d[16:24], c2)
		widenEight(d[24:32], c3)
	}

	return i + widenASCIIScalar(dst[i:n], src[i:n])
}

// widenEight stores the 8 bytes of an all-ASCII chunk as code units.
func widenEight(dst []uint16, chunk uint64) {
	_ = dst[7]
	dst[0] = uint16(chunk & 0xFF)
	dst[1] = uint16(chunk >> 8 & 0xFF)
	dst[2] = uint16(chunk >> 16 & 0xFF)
	dst[3] = uint16(chunk >> 24 & 0xFF)
	dst[4] = uint16(chunk >> 32 & 0xFF)
	dst[5] = uint16(chunk >> 40 & 0xFF)
	dst[6] = uint16(chunk >> 48 & 0xFF)
	dst[7] = uint16(chunk >> 56)
}
