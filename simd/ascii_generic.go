package simd

import (
	"encoding/binary"
	"math/bits"
)

// isASCIIGeneric implements pure Go ASCII detection using SWAR (SIMD Within A Register)
// technique. It processes 8 bytes at a time using uint64 bitwise operations.
//
// Algorithm:
//  1. Read 8 bytes from data as uint64
//  2. AND with 0x8080808080808080 to extract high bits
//  3. If result != 0, at least one byte has high bit set (non-ASCII)
//  4. If result == 0 for all chunks, all bytes are ASCII
func isASCIIGeneric(data []byte) bool {
	dataLen := len(data)

	// For small inputs, byte-by-byte is simpler and has no setup overhead
	if dataLen < 8 {
		for i := 0; i < dataLen; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	idx := 0
	for idx+8 <= dataLen {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
		idx += 8
	}

	// The last 0-7 bytes are covered by one overlapping read.
	if idx < dataLen {
		return binary.LittleEndian.Uint64(data[dataLen-8:])&hi8 == 0
	}
	return true
}

// isASCIIBlock ORs four words together per step so that the loop carries a
// single branch for every 32 bytes.
func isASCIIBlock(data []byte) bool {
	idx := 0
	for idx+32 <= len(data) {
		s := data[idx : idx+32 : idx+32]
		acc := binary.LittleEndian.Uint64(s[0:]) |
			binary.LittleEndian.Uint64(s[8:]) |
			binary.LittleEndian.Uint64(s[16:]) |
			binary.LittleEndian.Uint64(s[24:])
		if acc&hi8 != 0 {
			return false
		}
		idx += 32
	}
	return isASCIIGeneric(data[idx:])
}

// CountNonASCII returns the number of non-ASCII bytes in the slice.
// In valid UTF-8 this is the number of bytes that belong to multi-byte
// sequences, which bounds how much work the transcoders' slow paths do.
func CountNonASCII(data []byte) int {
	count := 0
	idx := 0
	for ; idx+8 <= len(data); idx += 8 {
		count += bits.OnesCount64(binary.LittleEndian.Uint64(data[idx:]) & hi8)
	}
	for ; idx < len(data); idx++ {
		if data[idx] >= 0x80 {
			count++
		}
	}
	return count
}

// FirstNonASCII returns the index of the first non-ASCII byte, or -1 if all bytes are ASCII.
// This is where a UTF-8 decoder has to leave its ASCII fast path.
func FirstNonASCII(data []byte) int {
	idx := 0
	for ; idx+8 <= len(data); idx += 8 {
		if mask := binary.LittleEndian.Uint64(data[idx:]) & hi8; mask != 0 {
			return idx + bits.TrailingZeros64(mask)>>3
		}
	}
	for ; idx < len(data); idx++ {
		if data[idx] >= 0x80 {
			return idx
		}
	}
	return -1
}
