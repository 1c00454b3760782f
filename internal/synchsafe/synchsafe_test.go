package synchsafe

import (
	"errors"
	"testing"

	"github.com/simonhull/tagcodec/internal/types"
)

func TestEncode_KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  [4]byte
	}{
		{"zero", 0, [4]byte{0x00, 0x00, 0x00, 0x00}},
		{"one", 1, [4]byte{0x00, 0x00, 0x00, 0x01}},
		{"seven bits", 127, [4]byte{0x00, 0x00, 0x00, 0x7F}},
		{"carry into second byte", 128, [4]byte{0x00, 0x00, 0x01, 0x00}},
		{"tag size ten", 10, [4]byte{0x00, 0x00, 0x00, 0x0A}},
		{"max", Max, [4]byte{0x7F, 0x7F, 0x7F, 0x7F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.value)
			if err != nil {
				t.Fatalf("Encode(%d) failed: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%d) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Sweep enough of the range to cross every byte boundary.
	for v := uint32(0); v <= Max; v += 1023 {
		b, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode(%d) failed: %v", v, err)
		}
		got, err := Decode(b[:])
		if err != nil {
			t.Fatalf("Decode(Encode(%d)) failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("Decode(Encode(%d)) = %d", v, got)
		}
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	for _, v := range []uint32{Max + 1, 1 << 30, 0xFFFFFFFF} {
		_, err := Encode(v)
		var rangeErr *types.SynchsafeRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Encode(%d): expected SynchsafeRangeError, got %v", v, err)
		}
	}
}

func TestDecode_TopBitSet(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"first byte", []byte{0x80, 0x00, 0x00, 0x00}},
		{"last byte", []byte{0x00, 0x00, 0x00, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			var rangeErr *types.SynchsafeRangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("expected SynchsafeRangeError, got %v", err)
			}
		})
	}
}

func TestDecode_WrongLength(t *testing.T) {
	if _, err := Decode([]byte{0x00, 0x00}); err == nil {
		t.Error("expected error for short input")
	}
}
