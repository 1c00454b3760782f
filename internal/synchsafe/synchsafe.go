// Package synchsafe encodes and decodes synchsafe integers: 28-bit
// values spread over 4 bytes using only the low 7 bits of each, so no
// byte inside the value can collide with a frame sync marker.
package synchsafe

import "github.com/simonhull/tagcodec/internal/types"

// Max is the largest value representable in 4x7 bits.
const Max = 1<<28 - 1

// Encode splits v into 4 groups of 7 bits, most significant first.
// Values above Max cannot be represented and fail with
// SynchsafeRangeError.
func Encode(v uint32) ([4]byte, error) {
	if v > Max {
		return [4]byte{}, &types.SynchsafeRangeError{Value: v}
	}
	return [4]byte{
		byte(v >> 21 & 0x7F),
		byte(v >> 14 & 0x7F),
		byte(v >> 7 & 0x7F),
		byte(v & 0x7F),
	}, nil
}

// Decode reverses Encode. Any input byte with its top bit set is not
// a valid synchsafe component and fails with SynchsafeRangeError.
func Decode(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, &types.SynchsafeRangeError{Decode: true}
	}
	for _, c := range b {
		if c&0x80 != 0 {
			return 0, &types.SynchsafeRangeError{Byte: c, Decode: true}
		}
	}
	return uint32(b[0])<<21 | uint32(b[1])<<14 | uint32(b[2])<<7 | uint32(b[3]), nil
}
