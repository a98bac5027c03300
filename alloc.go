package utfconv

import "slices"

// Worst-case growth: a UTF-8 byte never yields more than one code unit, and a
// code unit never yields more than three bytes (a surrogate pair yields four
// bytes for two units).
const (
	maxUnitsPerByte = 1
	maxBytesPerUnit = 3
)

// AppendUTF16 appends the UTF-16 form of src to dst.
//
// On error the returned slice holds dst plus the conversion of the valid
// prefix, and the error is a *TranscodeError whose Offset is the byte offset
// in src where conversion stopped.
func (t *Transcoder) AppendUTF16(dst []uint16, src []byte) ([]uint16, error) {
	base := len(dst)
	dst = slices.Grow(dst, len(src)*maxUnitsPerByte)
	n, nSrc, status := t.ToUTF16(dst[base:cap(dst)], src)
	dst = dst[:base+n]
	if status != Done {
		return dst, &TranscodeError{Dir: UTF8ToUTF16, Offset: int64(nSrc), Status: status}
	}
	return dst, nil
}

// AppendUTF8 appends the UTF-8 form of src to dst. Errors follow AppendUTF16,
// with Offset counted in code units.
func (t *Transcoder) AppendUTF8(dst []byte, src []uint16) ([]byte, error) {
	base := len(dst)
	dst = slices.Grow(dst, len(src)*maxBytesPerUnit)
	n, nSrc, status := t.ToUTF8(dst[base:cap(dst)], src)
	dst = dst[:base+n]
	if status != Done {
		return dst, &TranscodeError{Dir: UTF16ToUTF8, Offset: int64(nSrc), Status: status}
	}
	return dst, nil
}

// AppendUTF16 appends the UTF-16 form of src to dst using the default Transcoder.
func AppendUTF16(dst []uint16, src []byte) ([]uint16, error) {
	return defaultTranscoder.AppendUTF16(dst, src)
}

// AppendUTF8 appends the UTF-8 form of src to dst using the default Transcoder.
func AppendUTF8(dst []byte, src []uint16) ([]byte, error) {
	return defaultTranscoder.AppendUTF8(dst, src)
}

// UTF16FromUTF8 returns src converted to a new UTF-16 slice.
func UTF16FromUTF8(src []byte) ([]uint16, error) {
	return defaultTranscoder.AppendUTF16(nil, src)
}

// UTF8FromUTF16 returns src converted to a new UTF-8 slice.
func UTF8FromUTF16(src []uint16) ([]byte, error) {
	return defaultTranscoder.AppendUTF8(nil, src)
}
