package utfconv

import "github.com/coregx/utfconv/simd"

// transcodeToUTF8 converts UTF-16 to UTF-8.
//
// The word loop reads two code units at a time and keeps going while at
// least two remain, so a high surrogate inside the loop always has its
// successor in view. A pair of ASCII units hands the rest of the run back to
// the kernel. The tail handles the final unit and any work left once
// the output is too short for the loop's paired stores.
func transcodeToUTF8(k simd.Kernel, dst []byte, src []uint16) (nDst, nSrc int, status Status) {
	n := k.NarrowASCII(dst, src)
	if n == len(src) {
		return n, n, Done
	}
	i, j := n, n

mainLoop:
	for len(src)-i >= 2 {
		w := load2(src[i:])

		if allUnitsASCII2(w) {
			if len(dst)-j < 2 {
				break mainLoop
			}
			dst[j] = byte(w)
			dst[j+1] = byte(w >> 16)
			i += 2
			j += 2

			n := k.NarrowASCII(dst[j:], src[i:])
			i += n
			j += n
			continue
		}

		c0, c1 := uint16(w), uint16(w>>16)

		switch classifyUnit(c0) {
		case unitASCII:
			// c1 is not ASCII; it is handled on the next iteration.
			if j == len(dst) {
				return j, i, DestinationTooSmall
			}
			dst[j] = byte(c0)
			i++
			j++

		case unitTwoByte:
			for {
				if isTwoByteUnit(c1) {
					if len(dst)-j < 4 {
						break mainLoop
					}
					putTwoByte(dst[j:], c0)
					putTwoByte(dst[j+2:], c1)
					i += 2
					j += 4
					if len(src)-i < 2 {
						break mainLoop
					}
					w = load2(src[i:])
					c0, c1 = uint16(w), uint16(w>>16)
					if isTwoByteUnit(c0) {
						continue
					}
					continue mainLoop
				}

				if len(dst)-j < 2 {
					return j, i, DestinationTooSmall
				}
				putTwoByte(dst[j:], c0)
				i++
				j += 2
				if c1 < 0x80 && j < len(dst) {
					dst[j] = byte(c1)
					i++
					j++
				}
				continue mainLoop
			}

		case unitThreeByte:
			for {
				if isThreeByteUnit(c1) && len(dst)-j >= 6 {
					putThreeByte(dst[j:], c0)
					putThreeByte(dst[j+3:], c1)
					i += 2
					j += 6
				} else {
					if len(dst)-j < 3 {
						return j, i, DestinationTooSmall
					}
					putThreeByte(dst[j:], c0)
					i++
					j += 3
					if c1 < 0x80 && j < len(dst) {
						dst[j] = byte(c1)
						i++
						j++
					}
				}

				if len(src)-i < 2 {
					break mainLoop
				}
				w = load2(src[i:])
				c0, c1 = uint16(w), uint16(w>>16)
				if !isThreeByteUnit(c0) {
					continue mainLoop
				}
			}

		case unitHighSurrogate:
			if !isLowSurrogate(c1) {
				return j, i, InvalidData
			}
			if len(dst)-j < 4 {
				return j, i, DestinationTooSmall
			}
			putFourByte(dst[j:], c0, c1)
			i += 2
			j += 4

		default:
			// Low surrogate with no high surrogate before it.
			return j, i, InvalidData
		}
	}

	return transcodeTailToUTF8(dst, src, i, j)
}

// transcodeTailToUTF8 converts one character at a time. A high surrogate in
// the final position is NeedMoreData: its partner may be in the next chunk.
func transcodeTailToUTF8(dst []byte, src []uint16, i, j int) (nDst, nSrc int, status Status) {
	for i < len(src) {
		c := src[i]
		switch classifyUnit(c) {
		case unitASCII:
			if j == len(dst) {
				return j, i, DestinationTooSmall
			}
			dst[j] = byte(c)
			i++
			j++
		case unitTwoByte:
			if len(dst)-j < 2 {
				return j, i, DestinationTooSmall
			}
			putTwoByte(dst[j:], c)
			i++
			j += 2
		case unitThreeByte:
			if len(dst)-j < 3 {
				return j, i, DestinationTooSmall
			}
			putThreeByte(dst[j:], c)
			i++
			j += 3
		case unitHighSurrogate:
			if i+1 == len(src) {
				return j, i, NeedMoreData
			}
			lo := src[i+1]
			if !isLowSurrogate(lo) {
				return j, i, InvalidData
			}
			if len(dst)-j < 4 {
				return j, i, DestinationTooSmall
			}
			putFourByte(dst[j:], c, lo)
			i += 2
			j += 4
		default:
			return j, i, InvalidData
		}
	}

	return j, i, Done
}
