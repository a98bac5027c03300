package utfconv

import (
	"math/rand/v2"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/coregx/utfconv/simd"
)

// Test helpers shared by the transcoder tests.

// allTranscoders covers every kernel so the ASCII prefix pass is exercised
// with each backend.
var allTranscoders = []*Transcoder{
	MustNew(Config{Kernel: simd.KernelScalar}),
	MustNew(Config{Kernel: simd.KernelBlock}),
}

// referenceToUTF16 is a character-at-a-time conversion built on the standard
// library. The engine must agree with it on every output unit, count and
// status, for any input and any destination size.
func referenceToUTF16(dst []uint16, src []byte) (nDst, nSrc int, status Status) {
	i, j := 0, 0
	for i < len(src) {
		if !utf8.FullRune(src[i:]) {
			return j, i, NeedMoreData
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return j, i, InvalidData
		}
		n := utf16.RuneLen(r)
		if len(dst)-j < n {
			return j, i, DestinationTooSmall
		}
		if n == 1 {
			dst[j] = uint16(r)
		} else {
			hi, lo := utf16.EncodeRune(r)
			dst[j], dst[j+1] = uint16(hi), uint16(lo)
		}
		i += size
		j += n
	}
	return j, i, Done
}

func referenceToUTF8(dst []byte, src []uint16) (nDst, nSrc int, status Status) {
	i, j := 0, 0
	for i < len(src) {
		c := rune(src[i])
		r, size := c, 1
		if utf16.IsSurrogate(c) {
			if c >= 0xDC00 {
				return j, i, InvalidData
			}
			if i+1 == len(src) {
				return j, i, NeedMoreData
			}
			lo := rune(src[i+1])
			if lo < 0xDC00 || lo > 0xDFFF {
				return j, i, InvalidData
			}
			r, size = utf16.DecodeRune(c, lo), 2
		}
		n := utf8.RuneLen(r)
		if len(dst)-j < n {
			return j, i, DestinationTooSmall
		}
		utf8.EncodeRune(dst[j:], r)
		i += size
		j += n
	}
	return j, i, Done
}

// Sample texts with different dominant sequence lengths.
var sampleTexts = map[string]string{
	"ascii":    "The quick brown fox jumps over the lazy dog. 0123456789!",
	"latin1":   "Ça fait déjà longtemps, señor Müller. Ærø, Øresund, Ålesund.",
	"cyrillic": "Съешь же ещё этих мягких французских булок, да выпей чаю.",
	"greek":    "Ξεσκεπάζω την ψυχοφθόρα βδελυγμία.",
	"hebrew":   "דג סקרן שט בים מאוכזב ולפתע מצא חברה",
	"arabic":   "نص حكيم له سر قاطع وذو شأن عظيم مكتوب على ثوب أخضر",
	"cjk":      "日本語のテキスト、漢字とかなの混在。中文测试文本，包含标点符号。",
	"hangul":   "다람쥐 헌 쳇바퀴에 타고파",
	"emoji":    "😀😁😂🤣🚀🛰️🌍🧪🧬",
	"mixed":    "A€B ∑x² 𝔘𝔫𝔦𝔠𝔬𝔡𝔢 naïve café 東京 🚀 Привет",
	"edges":    "\u0000\u007f\u0080\u07ff\u0800\ud7ff\ue000\uffff\U00010000\U0010ffff",
}

// randomText builds valid UTF-8 whose characters are drawn in runs from one
// length class at a time, which drives the doubled fast paths as well as the
// transitions between them.
func randomText(rng *rand.Rand, runes int) []byte {
	var sb strings.Builder
	for runes > 0 {
		run := 1 + rng.IntN(12)
		class := rng.IntN(4)
		for k := 0; k < run && runes > 0; k++ {
			sb.WriteRune(randomRune(rng, class))
			runes--
		}
	}
	return []byte(sb.String())
}

func randomRune(rng *rand.Rand, class int) rune {
	switch class {
	case 0:
		return rune(rng.IntN(0x80))
	case 1:
		return 0x80 + rune(rng.IntN(0x800-0x80))
	case 2:
		for {
			r := 0x800 + rune(rng.IntN(0x10000-0x800))
			if !utf16.IsSurrogate(r) {
				return r
			}
		}
	default:
		return 0x10000 + rune(rng.IntN(0x110000-0x10000))
	}
}

// corrupt returns a copy of b with a few random bytes replaced.
func corrupt(rng *rand.Rand, b []byte) []byte {
	out := append([]byte(nil), b...)
	if len(out) == 0 {
		return out
	}
	for k := 1 + rng.IntN(3); k > 0; k-- {
		out[rng.IntN(len(out))] = byte(rng.IntN(256))
	}
	return out
}

// corruptUnits returns a copy of u with a few units replaced, favouring
// surrogates.
func corruptUnits(rng *rand.Rand, u []uint16) []uint16 {
	out := append([]uint16(nil), u...)
	if len(out) == 0 {
		return out
	}
	for k := 1 + rng.IntN(3); k > 0; k-- {
		v := uint16(rng.IntN(0x10000))
		if rng.IntN(2) == 0 {
			v = 0xD800 + uint16(rng.IntN(0x800))
		}
		out[rng.IntN(len(out))] = v
	}
	return out
}

func encodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
