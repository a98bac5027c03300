package utfconv

import "fmt"

// Status reports why a transcoding call returned.
//
// Every status other than Done comes with input and output counts that
// describe a valid transcode of a prefix of the input, so the caller can act
// on the status and resume from those offsets.
type Status uint8

const (
	// Done means all input was consumed.
	Done Status = iota

	// NeedMoreData means the input ends inside a character whose prefix is
	// valid so far. Supply more input starting at the consumed offset.
	NeedMoreData

	// DestinationTooSmall means the next character is valid but does not
	// fit in the remaining output.
	DestinationTooSmall

	// InvalidData means the input is malformed at the consumed offset.
	InvalidData
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Done:
		return "Done"
	case NeedMoreData:
		return "NeedMoreData"
	case DestinationTooSmall:
		return "DestinationTooSmall"
	case InvalidData:
		return "InvalidData"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Err returns the sentinel error for s, or nil for Done.
//
// InvalidData maps to ErrInvalidData; use TranscodeError (returned by the
// allocating helpers) to learn which encoding was malformed.
func (s Status) Err() error {
	switch s {
	case Done:
		return nil
	case NeedMoreData:
		return ErrIncomplete
	case DestinationTooSmall:
		return ErrShortBuffer
	default:
		return ErrInvalidData
	}
}
