// Package bitfield packs and unpacks declarative bit-level field
// layouts over byte buffers. Fields are consumed MSB-first in
// declaration order, the way format documents describe them, without
// requiring byte alignment between fields.
package bitfield

import (
	"fmt"

	"github.com/simonhull/tagcodec/internal/types"
)

// Field is one named field in a layout.
type Field struct {
	Name   string
	Width  uint // bit width, 1-64
	Signed bool
}

// Layout is an ordered sequence of fields.
type Layout []Field

// Values maps field names to decoded integer values.
type Values map[string]int64

// Bits returns the total bit width of the layout.
func (l Layout) Bits() uint {
	var n uint
	for _, f := range l {
		n += f.Width
	}
	return n
}

// Size returns the minimal byte span implied by the total bit width.
func (l Layout) Size() int {
	return int((l.Bits() + 7) / 8)
}

// Unpack reads the layout from buf starting at bit offset off and
// returns the decoded values plus the bit offset just past the layout.
// Signed fields are sign-extended from their declared width.
func (l Layout) Unpack(buf []byte, off uint) (Values, uint, error) {
	end := off + l.Bits()
	if need := int((end + 7) / 8); need > len(buf) {
		return nil, off, fmt.Errorf("bitfield: layout needs %d bytes, buffer has %d", need, len(buf))
	}

	vals := make(Values, len(l))
	for _, f := range l {
		if f.Width == 0 || f.Width > 64 {
			return nil, off, fmt.Errorf("bitfield: field %q has invalid width %d", f.Name, f.Width)
		}
		raw := readBits(buf, off, f.Width)
		off += f.Width

		v := int64(raw)
		if f.Signed && f.Width < 64 && raw&(1<<(f.Width-1)) != 0 {
			v = int64(raw) - int64(1)<<f.Width
		}
		vals[f.Name] = v
	}
	return vals, off, nil
}

// Pack is the exact inverse of Unpack: it packs vals into the minimal
// byte span of the layout, zero-padding trailing unused bits in the
// final byte. A value outside its field's representable range fails
// with FieldWidthError.
func (l Layout) Pack(vals Values) ([]byte, error) {
	buf := make([]byte, l.Size())
	var off uint

	for _, f := range l {
		if f.Width == 0 || f.Width > 64 {
			return nil, fmt.Errorf("bitfield: field %q has invalid width %d", f.Name, f.Width)
		}
		v, ok := vals[f.Name]
		if !ok {
			return nil, fmt.Errorf("bitfield: no value supplied for field %q", f.Name)
		}

		var raw uint64
		if f.Signed {
			min := -(int64(1) << (f.Width - 1))
			max := int64(1)<<(f.Width-1) - 1
			if f.Width == 64 {
				min, max = -1<<63, 1<<63-1
			}
			if v < min || v > max {
				return nil, &types.FieldWidthError{Field: f.Name, Width: f.Width, Value: v}
			}
			raw = uint64(v) & widthMask(f.Width)
		} else {
			if v < 0 || (f.Width < 64 && uint64(v) >= 1<<f.Width) {
				return nil, &types.FieldWidthError{Field: f.Name, Width: f.Width, Value: v}
			}
			raw = uint64(v)
		}

		writeBits(buf, off, f.Width, raw)
		off += f.Width
	}
	return buf, nil
}

func widthMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// readBits extracts width bits starting at bit offset off, MSB-first.
func readBits(buf []byte, off, width uint) uint64 {
	var v uint64
	for i := uint(0); i < width; i++ {
		bit := off + i
		b := buf[bit/8]
		v = v<<1 | uint64(b>>(7-bit%8)&1)
	}
	return v
}

// writeBits stores the low width bits of v starting at bit offset off,
// MSB-first.
func writeBits(buf []byte, off, width uint, v uint64) {
	for i := uint(0); i < width; i++ {
		bit := off + i
		if v>>(width-1-i)&1 != 0 {
			buf[bit/8] |= 1 << (7 - bit%8)
		}
	}
}
