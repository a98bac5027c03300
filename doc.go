// Package utfconv converts between UTF-8 and UTF-16 with full validation.
//
// The conversion functions work on caller-owned buffers and are resumable:
// every call returns how much input it consumed, how much output it wrote and
// a Status saying why it stopped, so a streaming caller can top up input or
// drain output and call again from those offsets. Nothing is allocated and no
// input is ever substituted or skipped.
//
// utfconv reads input a machine word at a time:
//   - ASCII runs go through a bulk kernel selected once per CPU (see package simd)
//   - Runs of 2-byte characters (Greek, Cyrillic, Hebrew, Arabic) decode two per word
//   - Runs of 3-byte characters (CJK) decode two per step where possible
//   - Everything else falls to a character-at-a-time tail with identical rules
//
// Validation follows Unicode Table 3-7 exactly. Overlong forms, encoded
// surrogates, values above U+10FFFF, stray continuation bytes and unpaired
// surrogates are all InvalidData.
//
// Basic usage:
//
//	dst := make([]uint16, len(src))
//	nDst, nSrc, status := utfconv.ToUTF16(dst, src)
//	switch status {
//	case utfconv.Done:
//	    use(dst[:nDst])
//	case utfconv.InvalidData:
//	    log.Printf("bad UTF-8 at byte %d", nSrc)
//	}
//
// Allocating helpers:
//
//	units, err := utfconv.UTF16FromUTF8([]byte("héllo"))
//	text, err := utfconv.UTF8FromUTF16(units)
//
// For byte streams in UTF-16LE or UTF-16BE see package stream, which wraps
// the same engine as golang.org/x/text/transform transformers.
package utfconv
