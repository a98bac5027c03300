// Package simd provides the ASCII fast paths shared by both transcoding
// directions. A Kernel widens a leading run of ASCII bytes into UTF-16 code
// units, or narrows a leading run of ASCII code units into bytes, as many
// units at a time as the selected backend allows.
//
// Backends are selected once, from the CPU features reported by
// golang.org/x/sys/cpu, and then reused by every call:
//   - KernelScalar: SWAR over one 64-bit word (8 bytes or 4 code units) per step
//   - KernelBlock: four 64-bit words (32 bytes or 16 code units) per step,
//     chosen on CPUs with wide vector units (AVX2 on x86-64, ASIMD on arm64)
//
// Every kernel is pure Go, never reads or writes past min(len(dst), len(src)),
// and produces identical results; only throughput differs.
package simd

import (
	"fmt"
	"strings"
)

// Kernel is an ASCII bulk-copy backend.
type Kernel interface {
	// Name returns a short identifier for logs and benchmarks.
	Name() string

	// WidenASCII copies the leading ASCII bytes of src into dst, one code
	// unit per byte, and returns how many were copied. The count is bounded
	// by min(len(dst), len(src)) and stops at the first byte >= 0x80.
	WidenASCII(dst []uint16, src []byte) int

	// NarrowASCII copies the leading ASCII code units of src into dst, one
	// byte per unit, and returns how many were copied. The count is bounded
	// by min(len(dst), len(src)) and stops at the first unit >= 0x80.
	NarrowASCII(dst []byte, src []uint16) int
}

// KernelKind selects a Kernel implementation.
type KernelKind uint8

const (
	// KernelAuto picks the fastest kernel for the running CPU.
	KernelAuto KernelKind = iota

	// KernelScalar processes one 64-bit word per step.
	KernelScalar

	// KernelBlock processes four 64-bit words per step.
	KernelBlock
)

// String returns the lowercase kernel name.
func (k KernelKind) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelScalar:
		return "scalar"
	case KernelBlock:
		return "block"
	default:
		return fmt.Sprintf("KernelKind(%d)", uint8(k))
	}
}

// Valid reports whether k names a known kernel.
func (k KernelKind) Valid() bool {
	return k <= KernelBlock
}

// ParseKernelKind parses "auto", "scalar" or "block" (case-insensitive).
func ParseKernelKind(s string) (KernelKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KernelAuto, nil
	case "scalar":
		return KernelScalar, nil
	case "block":
		return KernelBlock, nil
	}
	return KernelAuto, fmt.Errorf("simd: unknown kernel %q", s)
}

var (
	scalar Kernel = scalarKernel{}
	block  Kernel = blockKernel{}
)

// NewKernel returns the kernel for kind. KernelAuto and unknown kinds resolve
// to the CPU-dependent default.
func NewKernel(kind KernelKind) Kernel {
	switch kind {
	case KernelScalar:
		return scalar
	case KernelBlock:
		return block
	default:
		return DefaultKernel()
	}
}

// DefaultKernel returns the kernel chosen for the running CPU.
func DefaultKernel() Kernel {
	if hasWideVectors {
		return block
	}
	return scalar
}

type scalarKernel struct{}

func (scalarKernel) Name() string { return "scalar" }

func (scalarKernel) WidenASCII(dst []uint16, src []byte) int {
	return widenASCIIScalar(dst, src)
}

func (scalarKernel) NarrowASCII(dst []byte, src []uint16) int {
	return narrowASCIIScalar(dst, src)
}

type blockKernel struct{}

func (blockKernel) Name() string { return "block" }

func (blockKernel) WidenASCII(dst []uint16, src []byte) int {
	return widenASCIIBlock(dst, src)
}

func (blockKernel) NarrowASCII(dst []byte, src []uint16) int {
	return narrowASCIIBlock(dst, src)
}
