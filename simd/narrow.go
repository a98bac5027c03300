package simd

import (
	"encoding/binary"
	"math/bits"
)

// unitHi4 extracts the bits that must be clear in four packed ASCII code units.
const unitHi4 = uint64(0xFF80FF80FF80FF80)

// packUnits packs four code units into a word, unit k in bits 16k..16k+15.
func packUnits(s []uint16) uint64 {
	_ = s[3]
	return uint64(s[0]) | uint64(s[1])<<16 | uint64(s[2])<<32 | uint64(s[3])<<48
}

// narrowFour folds four packed ASCII code units into four bytes.
func narrowFour(q uint64) uint32 {
	return uint32(q&0xFF) |
		uint32(q>>8&0xFF00) |
		uint32(q>>16&0xFF0000) |
		uint32(q>>24&0xFF000000)
}

// narrowASCIIScalar narrows 4 code units per step.
func narrowASCIIScalar(dst []byte, src []uint16) int {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		q := packUnits(src[i : i+4 : i+4])
		if mask := q & unitHi4; mask != 0 {
			k := bits.TrailingZeros64(mask) >> 4
			for m := 0; m < k; m++ {
				dst[i+m] = byte(src[i+m])
			}
			return i + k
		}
		binary.LittleEndian.PutUint32(dst[i:], narrowFour(q))
	}

	for ; i < n; i++ {
		c := src[i]
		if c >= 0x80 {
			return i
		}
		dst[i] = byte(c)
	}
	return n
}

// narrowASCIIBlock narrows 16 code units per step.
func narrowASCIIBlock(dst []byte, src []uint16) int {
	n := min(len(dst), len(src))

	i := 0
	for ; i+16 <= n; i += 16 {
		s := src[i : i+16 : i+16]
		q0 := packUnits(s[0:4])
		q1 := packUnits(s[4:8])
		q2 := packUnits(s[8:12])
		q3 := packUnits(s[12:16])
		if (q0|q1|q2|q3)&unitHi4 != 0 {
			break
		}
		d := dst[i : i+16 : i+16]
		binary.LittleEndian.PutUint32(d[0:], narrowFour(q0))
		binary.LittleEndian.PutUint32(d[4:], narrowFour(q1))
		binary.LittleEndian.PutUint32(d[8:], narrowFour(q2))
		binary.LittleEndian.PutUint32(d[12:], narrowFour(q3))
	}

	return i + narrowASCIIScalar(dst[i:n], src[i:n])
}
