package utfconv

import "github.com/coregx/utfconv/simd"

// Transcoder converts between UTF-8 and UTF-16 with a fixed ASCII kernel.
//
// A Transcoder holds no mutable state and is safe for concurrent use.
type Transcoder struct {
	kernel simd.Kernel
	config Config
}

var defaultTranscoder = &Transcoder{
	kernel: simd.DefaultKernel(),
	config: DefaultConfig(),
}

// New returns a Transcoder for config.
func New(config Config) (*Transcoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Transcoder{
		kernel: simd.NewKernel(config.Kernel),
		config: config,
	}, nil
}

// MustNew is like New but panics if config is invalid.
func MustNew(config Config) *Transcoder {
	t, err := New(config)
	if err != nil {
		panic(`utfconv: New: ` + err.Error())
	}
	return t
}

// Default returns the shared Transcoder used by the package-level functions.
func Default() *Transcoder {
	return defaultTranscoder
}

// Kernel returns the name of the ASCII kernel in use.
func (t *Transcoder) Kernel() string {
	return t.kernel.Name()
}

// Config returns the configuration t was built with.
func (t *Transcoder) Config() Config {
	return t.config
}

// ToUTF16 converts UTF-8 from src into UTF-16 code units in dst.
//
// It returns the number of units written, the number of bytes consumed and
// why it stopped. The written units are always the complete conversion of
// src[:nSrc], so after NeedMoreData or DestinationTooSmall the caller can
// resume with src[nSrc:] (plus more input) and fresh room in dst.
// After InvalidData, src[nSrc] begins a malformed sequence.
//
// ToUTF16 never writes past len(dst), never allocates and never panics on
// malformed input.
func (t *Transcoder) ToUTF16(dst []uint16, src []byte) (nDst, nSrc int, status Status) {
	return transcodeToUTF16(t.kernel, dst, src)
}

// ToUTF8 converts UTF-16 code units from src into UTF-8 in dst.
//
// Counts and status follow ToUTF16. A high surrogate as the last unit of src
// is NeedMoreData.
func (t *Transcoder) ToUTF8(dst []byte, src []uint16) (nDst, nSrc int, status Status) {
	return transcodeToUTF8(t.kernel, dst, src)
}

// ToUTF16 converts UTF-8 to UTF-16 using the default Transcoder.
func ToUTF16(dst []uint16, src []byte) (nDst, nSrc int, status Status) {
	return defaultTranscoder.ToUTF16(dst, src)
}

// ToUTF8 converts UTF-16 to UTF-8 using the default Transcoder.
func ToUTF8(dst []byte, src []uint16) (nDst, nSrc int, status Status) {
	return defaultTranscoder.ToUTF8(dst, src)
}
