package utfconv

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrInvalidData is the root of the malformed-input errors below.
	ErrInvalidData = errors.New("utfconv: invalid data")

	// ErrInvalidUTF8 is returned for malformed UTF-8 input: overlong forms,
	// encoded surrogates, values above U+10FFFF, stray or missing
	// continuation bytes.
	ErrInvalidUTF8 = fmt.Errorf("%w: malformed UTF-8", ErrInvalidData)

	// ErrInvalidUTF16 is returned for unpaired or misordered surrogates.
	ErrInvalidUTF16 = fmt.Errorf("%w: malformed UTF-16", ErrInvalidData)

	// ErrIncomplete is returned when input ends inside a character.
	ErrIncomplete = errors.New("utfconv: incomplete character at end of input")

	// ErrShortBuffer is returned when the output cannot hold the next character.
	ErrShortBuffer = errors.New("utfconv: destination too small")

	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("utfconv: invalid config")
)

// Direction names a transcoding direction.
type Direction uint8

const (
	// UTF8ToUTF16 converts bytes to code units.
	UTF8ToUTF16 Direction = iota

	// UTF16ToUTF8 converts code units to bytes.
	UTF16ToUTF8
)

// String returns a short direction label.
func (d Direction) String() string {
	if d == UTF16ToUTF8 {
		return "utf16->utf8"
	}
	return "utf8->utf16"
}

// TranscodeError describes where and why a conversion stopped.
//
// Offset counts input units: bytes for UTF8ToUTF16, code units for
// UTF16ToUTF8. It is absolute from the start of the input the caller handed
// over, including anything it had already converted.
type TranscodeError struct {
	Dir    Direction
	Offset int64
	Status Status
}

// Error implements the error interface.
func (e *TranscodeError) Error() string {
	unit := "byte"
	if e.Dir == UTF16ToUTF8 {
		unit = "code unit"
	}
	return fmt.Sprintf("utfconv: %s: %s at %s offset %d", e.Dir, e.reason(), unit, e.Offset)
}

func (e *TranscodeError) reason() string {
	switch e.Status {
	case NeedMoreData:
		return "incomplete character"
	case DestinationTooSmall:
		return "destination too small"
	case InvalidData:
		if e.Dir == UTF16ToUTF8 {
			return "malformed UTF-16"
		}
		return "malformed UTF-8"
	default:
		return e.Status.String()
	}
}

// Unwrap returns the sentinel error matching the status and direction, so
// errors.Is works against ErrInvalidUTF8, ErrInvalidUTF16, ErrInvalidData,
// ErrIncomplete and ErrShortBuffer.
func (e *TranscodeError) Unwrap() error {
	if e.Status == InvalidData {
		if e.Dir == UTF16ToUTF8 {
			return ErrInvalidUTF16
		}
		return ErrInvalidUTF8
	}
	return e.Status.Err()
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "utfconv: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
