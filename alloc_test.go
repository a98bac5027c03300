package utfconv

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestAppendUTF16(t *testing.T) {
	for name, text := range sampleTexts {
		t.Run(name, func(t *testing.T) {
			prefix := []uint16{'>', ' '}
			got, err := AppendUTF16(slices.Clone(prefix), []byte(text))
			if err != nil {
				t.Fatalf("AppendUTF16: %v", err)
			}
			want := append(slices.Clone(prefix), encodeUTF16(text)...)
			if !slices.Equal(got, want) {
				t.Fatalf("got %#x, want %#x", got, want)
			}
		})
	}
}

func TestAppendUTF8(t *testing.T) {
	for name, text := range sampleTexts {
		t.Run(name, func(t *testing.T) {
			got, err := AppendUTF8([]byte("> "), encodeUTF16(text))
			if err != nil {
				t.Fatalf("AppendUTF8: %v", err)
			}
			if string(got) != "> "+text {
				t.Fatalf("got %q, want %q", got, "> "+text)
			}
		})
	}
}

func TestAllocErrors(t *testing.T) {
	tests := []struct {
		name    string
		run     func() (int, error)
		offset  int64
		status  Status
		target  error
		message string
	}{
		{
			name: "invalid_utf8",
			run: func() (int, error) {
				u, err := UTF16FromUTF8([]byte("abc\xed\xa0\x80"))
				return len(u), err
			},
			offset: 3, status: InvalidData, target: ErrInvalidUTF8,
			message: "utfconv: utf8->utf16: malformed UTF-8 at byte offset 3",
		},
		{
			name: "truncated_utf8",
			run: func() (int, error) {
				u, err := UTF16FromUTF8([]byte("ab\xe2\x82"))
				return len(u), err
			},
			offset: 2, status: NeedMoreData, target: ErrIncomplete,
			message: "utfconv: utf8->utf16: incomplete character at byte offset 2",
		},
		{
			name: "lone_low_surrogate",
			run: func() (int, error) {
				b, err := UTF8FromUTF16([]uint16{'x', 0xDC00})
				return len(b), err
			},
			offset: 1, status: InvalidData, target: ErrInvalidUTF16,
			message: "utfconv: utf16->utf8: malformed UTF-16 at code unit offset 1",
		},
		{
			name: "lone_high_surrogate",
			run: func() (int, error) {
				b, err := UTF8FromUTF16([]uint16{'x', 'y', 0xD800})
				return len(b), err
			},
			offset: 2, status: NeedMoreData, target: ErrIncomplete,
			message: "utfconv: utf16->utf8: incomplete character at code unit offset 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.run()
			if n != int(tt.offset) {
				t.Errorf("valid prefix length = %d, want %d", n, tt.offset)
			}
			var te *TranscodeError
			if !errors.As(err, &te) {
				t.Fatalf("error %v is not a *TranscodeError", err)
			}
			if te.Offset != tt.offset || te.Status != tt.status {
				t.Errorf("got offset %d status %v, want %d %v", te.Offset, te.Status, tt.offset, tt.status)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
			}
			if tt.status == InvalidData && !errors.Is(err, ErrInvalidData) {
				t.Errorf("errors.Is(%v, ErrInvalidData) = false", err)
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestAppendUTF16_KeepsValidPrefixOnError(t *testing.T) {
	src := []byte(strings.Repeat("Жж", 10) + "\xff")
	got, err := AppendUTF16([]uint16{'!'}, src)
	if err == nil {
		t.Fatal("expected an error")
	}
	if want := append([]uint16{'!'}, encodeUTF16(strings.Repeat("Жж", 10))...); !slices.Equal(got, want) {
		t.Fatalf("got %#x, want %#x", got, want)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status Status
		name   string
		err    error
	}{
		{Done, "Done", nil},
		{NeedMoreData, "NeedMoreData", ErrIncomplete},
		{DestinationTooSmall, "DestinationTooSmall", ErrShortBuffer},
		{InvalidData, "InvalidData", ErrInvalidData},
		{Status(42), "Status(42)", ErrInvalidData},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.status.Err(); got != tt.err {
			t.Errorf("%v.Err() = %v, want %v", tt.status, got, tt.err)
		}
	}
}

func TestConfig(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	_, err := New(Config{Kernel: 7})
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Field != "Kernel" {
		t.Fatalf("New with bad kernel: %v", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("errors.Is(%v, ErrInvalidConfig) = false", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic on an invalid config")
		}
	}()
	MustNew(Config{Kernel: 7})
}

func TestTranscoderKernel(t *testing.T) {
	if got := allTranscoders[0].Kernel(); got != "scalar" {
		t.Errorf("Kernel() = %q, want scalar", got)
	}
	if got := allTranscoders[1].Config().Kernel.String(); got != "block" {
		t.Errorf("Config().Kernel = %q, want block", got)
	}
	if Default().Kernel() == "" {
		t.Error("default transcoder has no kernel")
	}
}
