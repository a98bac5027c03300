//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasWideVectors indicates whether the CPU supports AVX2 instructions (256-bit SIMD).
// AVX2 was introduced in Intel Haswell (2013) and AMD Excavator (2015). On such
// cores the four independent loads of the block kernel retire in parallel.
var hasWideVectors = cpu.X86.HasAVX2

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
// Returns true if all bytes have the high bit clear (values 0x00-0x7F).
//
// Inputs of 32 bytes or more are scanned a block (four words) at a time on
// AVX2 hardware; shorter inputs, and all inputs on older CPUs, use the 8-byte
// SWAR loop.
//
// Example:
//
//	data := []byte("hello world")
//	if simd.IsASCII(data) {
//	    // every byte widens to one UTF-16 code unit
//	}
func IsASCII(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if hasWideVectors && len(data) >= 32 {
		return isASCIIBlock(data)
	}
	return isASCIIGeneric(data)
}
