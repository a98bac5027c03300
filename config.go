package utfconv

import "github.com/coregx/utfconv/simd"

// Config controls how a Transcoder is built.
//
// Example:
//
//	config := utfconv.DefaultConfig()
//	config.Kernel = simd.KernelScalar // pin the portable kernel
//	tc, err := utfconv.New(config)
type Config struct {
	// Kernel selects the ASCII bulk-copy backend.
	// KernelAuto picks the widest kernel the CPU supports.
	// Default: simd.KernelAuto
	Kernel simd.KernelKind
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Kernel: simd.KernelAuto,
	}
}

// Validate checks if the configuration is valid.
// Returns nil if valid, otherwise a *ConfigError describing the problem.
func (c Config) Validate() error {
	if !c.Kernel.Valid() {
		return &ConfigError{
			Field:   "Kernel",
			Message: "must be auto, scalar or block, got " + c.Kernel.String(),
		}
	}
	return nil
}
