package utfconv

import "github.com/coregx/utfconv/simd"

// transcodeToUTF16 converts UTF-8 to UTF-16.
//
// i and j are the input and output cursors. They only move forward, and on
// every return they sit on a character boundary: everything before them has
// been validated and written.
//
// Structure:
//  1. ASCII prefix through the kernel
//  2. Word loop while at least 4 bytes remain, dispatching on the first byte;
//     an all-ASCII word re-enters the kernel for the rest of the run, and the
//     2-byte and 3-byte cases stay in their own loop while the next word
//     starts with the same kind of sequence
//  3. Tail loop for the last 0-3 bytes, or for whatever is left once the
//     output is too short for the word loop's multi-unit stores
func transcodeToUTF16(k simd.Kernel, dst []uint16, src []byte) (nDst, nSrc int, status Status) {
	n := k.WidenASCII(dst, src)
	if n == len(src) {
		return n, n, Done
	}
	i, j := n, n

mainLoop:
	for len(src)-i >= 4 {
		w := load32(src[i:])

		switch classifyLead(w) {
		case classASCII:
			if !allBytesASCII(w) {
				// 1-3 ASCII bytes ahead of a multi-byte sequence.
				c := leadingASCIIBytes(w)
				if room := len(dst) - j; room < c {
					for ; j < len(dst); i, j = i+1, j+1 {
						dst[j] = uint16(src[i])
					}
					return j, i, DestinationTooSmall
				}
				for m := 0; m < c; m++ {
					dst[j+m] = uint16(src[i+m])
				}
				i += c
				j += c
				continue
			}

			if len(dst)-j < 4 {
				break mainLoop
			}
			widenWord(dst[j:j+4], w)
			i += 4
			j += 4

			// ASCII tends to come in long runs: hand the rest of this one
			// back to the kernel.
			n := k.WidenASCII(dst[j:], src[i:])
			i += n
			j += n

		case classTwoByte:
			// Greek, Cyrillic, Hebrew, Arabic... mostly 2-byte sequences.
			for {
				if !isTwoByteSeq(w) {
					return j, i, InvalidData
				}

				if isTwoByteSeq(w >> 16) {
					if len(dst)-j < 2 {
						break mainLoop
					}
					dst[j] = decodeTwoByte(w)
					dst[j+1] = decodeTwoByte(w >> 16)
					i += 4
					j += 2
					if len(src)-i < 4 {
						break mainLoop
					}
					w = load32(src[i:])
					if classifyLead(w) == classTwoByte {
						continue
					}
					continue mainLoop
				}

				ch := decodeTwoByte(w)
				switch {
				case w&0x80800000 == 0:
					// Bytes 3 and 4 are ASCII.
					if len(dst)-j < 3 {
						break mainLoop
					}
					dst[j] = ch
					dst[j+1] = uint16(w >> 16 & 0xFF)
					dst[j+2] = uint16(w >> 24)
					i += 4
					j += 3
				case w&0x00800000 == 0:
					// Byte 3 is ASCII, byte 4 starts something else.
					if len(dst)-j < 2 {
						break mainLoop
					}
					dst[j] = ch
					dst[j+1] = uint16(w >> 16 & 0xFF)
					i += 3
					j += 2
				default:
					if j == len(dst) {
						return j, i, DestinationTooSmall
					}
					dst[j] = ch
					i += 2
					j++
				}
				continue mainLoop
			}

		case classThreeByte:
			// CJK text: mostly 3-byte sequences with occasional ASCII punctuation.
			for {
				if !isThreeByteSeq(w) {
					return j, i, InvalidData
				}
				if j == len(dst) {
					return j, i, DestinationTooSmall
				}
				dst[j] = decodeThreeByte(w)
				i += 3
				j++

				// next is the byte right after the sequence(s) written so far.
				next := w >> 24
				if next>>4 == 0xE && len(src)-i >= 4 && j < len(dst) {
					w2 := load32(src[i:])
					if isThreeByteSeq(w2) {
						dst[j] = decodeThreeByte(w2)
						i += 3
						j++
						next = w2 >> 24
					}
				}

				if next < 0x80 && i < len(src) {
					if j == len(dst) {
						return j, i, DestinationTooSmall
					}
					dst[j] = uint16(next)
					i++
					j++
				}

				if len(src)-i < 4 {
					break mainLoop
				}
				w = load32(src[i:])
				if classifyLead(w) != classThreeByte {
					continue mainLoop
				}
			}

		case classFourByte:
			if !isFourByteSeq(w) {
				return j, i, InvalidData
			}
			if len(dst)-j < 2 {
				return j, i, DestinationTooSmall
			}
			dst[j], dst[j+1] = decodeFourByte(w)
			i += 4
			j += 2

		default:
			// Stray continuation byte.
			return j, i, InvalidData
		}
	}

	return transcodeTailToUTF16(dst, src, i, j)
}

// transcodeTailToUTF16 converts one character at a time. Truncated input is
// NeedMoreData only while every byte seen so far could still begin a valid
// sequence; validation always happens before the output check.
func transcodeTailToUTF16(dst []uint16, src []byte, i, j int) (nDst, nSrc int, status Status) {
	for i < len(src) {
		b0 := src[i]
		if b0 < 0x80 {
			if j == len(dst) {
				return j, i, DestinationTooSmall
			}
			dst[j] = uint16(b0)
			i++
			j++
			continue
		}

		size := sequenceLength(b0)
		if size == 0 {
			return j, i, InvalidData
		}
		avail := len(src) - i
		if avail < 2 {
			return j, i, NeedMoreData
		}
		if lo, hi := secondByteBounds(b0); src[i+1] < lo || src[i+1] > hi {
			return j, i, InvalidData
		}
		for k := 2; k < size; k++ {
			if k >= avail {
				return j, i, NeedMoreData
			}
			if !isContinuation(src[i+k]) {
				return j, i, InvalidData
			}
		}

		switch size {
		case 2:
			if j == len(dst) {
				return j, i, DestinationTooSmall
			}
			dst[j] = decodeTwoByte(uint32(b0) | uint32(src[i+1])<<8)
			j++
		case 3:
			if j == len(dst) {
				return j, i, DestinationTooSmall
			}
			dst[j] = decodeThreeByte(uint32(b0) | uint32(src[i+1])<<8 | uint32(src[i+2])<<16)
			j++
		default:
			if len(dst)-j < 2 {
				return j, i, DestinationTooSmall
			}
			dst[j], dst[j+1] = decodeFourByte(load32(src[i:]))
			j += 2
		}
		i += size
	}

	return j, i, Done
}
