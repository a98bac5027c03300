//go:build !amd64

package simd

import "golang.org/x/sys/cpu"

// hasWideVectors indicates whether the CPU has Advanced SIMD (NEON) units.
// It is only ever true on arm64; other architectures use the scalar kernel.
var hasWideVectors = cpu.ARM64.HasASIMD

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
// Returns true if all bytes have the high bit clear (values 0x00-0x7F).
//
// On non-AMD64 platforms the block scan is used on arm64 cores with ASIMD
// and the 8-byte SWAR loop everywhere else.
//
// See isASCIIGeneric for implementation details.
func IsASCII(data []byte) bool {
	if hasWideVectors && len(data) >= 32 {
		return isASCIIBlock(data)
	}
	return isASCIIGeneric(data)
}
