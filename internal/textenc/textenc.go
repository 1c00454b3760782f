// Package textenc decodes and encodes tag text payloads in the four
// defined encoding schemes: ISO-8859-1, UTF-16 with BOM, UTF-16BE,
// and UTF-8.
package textenc

import (
	"bytes"
	"strings"
	"unicode/utf16"

	"github.com/simonhull/tagcodec/internal/types"
)

// Decode decodes data according to the encoding scheme.
// Trailing null terminators are stripped.
func Decode(data []byte, enc types.Encoding) string {
	if len(data) == 0 {
		return ""
	}

	switch enc {
	case types.EncodingLatin1:
		return trimNull(decodeLatin1(data))

	case types.EncodingUTF16:
		return trimNull(decodeUTF16BOM(data))

	case types.EncodingUTF16BE:
		return trimNull(decodeUTF16BE(data))

	default: // EncodingUTF8
		// Returned as-is even if not valid UTF-8; callers that care can
		// check with utf8.ValidString.
		return trimNull(string(data))
	}
}

// Encode is the inverse of Decode: it produces payload bytes for text
// in the given scheme, without a trailing terminator.
func Encode(text string, enc types.Encoding) []byte {
	switch enc {
	case types.EncodingLatin1:
		return encodeLatin1(text)

	case types.EncodingUTF16:
		// Big-endian with explicit BOM, matching what Decode expects.
		out := []byte{0xFE, 0xFF}
		return append(out, encodeUTF16BE(text)...)

	case types.EncodingUTF16BE:
		return encodeUTF16BE(text)

	default: // EncodingUTF8
		return []byte(text)
	}
}

// decodeLatin1 maps each byte to the equivalent Unicode code point.
func decodeLatin1(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// encodeLatin1 writes each code point as a single byte. Code points
// above U+00FF cannot be represented and become '?'.
func encodeLatin1(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 0xFF {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}

// decodeUTF16BOM decodes UTF-16 with a byte-order mark. Without a BOM
// big-endian is assumed.
func decodeUTF16BOM(data []byte) string {
	if len(data) < 2 {
		return ""
	}

	if data[0] == 0xFF && data[1] == 0xFE {
		return decodeUTF16LE(data[2:])
	} else if data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16BE(data[2:])
	}

	return decodeUTF16BE(data)
}

func decodeUTF16LE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}
	return string(utf16.Decode(u16))
}

func decodeUTF16BE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
	}
	return string(utf16.Decode(u16))
}

func encodeUTF16BE(text string) []byte {
	u16 := utf16.Encode([]rune(text))
	out := make([]byte, len(u16)*2)
	for i, u := range u16 {
		out[i*2] = byte(u >> 8)
		out[i*2+1] = byte(u)
	}
	return out
}

// trimNull strips trailing null terminators left in place by writers
// that pad text payloads.
func trimNull(s string) string {
	return strings.TrimRight(s, "\x00")
}

// FindTerminator finds the null terminator in data for the given
// encoding, returning its index or -1. UTF-16 schemes use a
// double-byte null aligned to a code unit boundary.
func FindTerminator(data []byte, enc types.Encoding) int {
	switch enc {
	case types.EncodingUTF16, types.EncodingUTF16BE:
		for i := 0; i < len(data)-1; i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1

	default:
		return bytes.IndexByte(data, 0)
	}
}

// TerminatorSize returns the null terminator width for the encoding.
func TerminatorSize(enc types.Encoding) int {
	switch enc {
	case types.EncodingUTF16, types.EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}
