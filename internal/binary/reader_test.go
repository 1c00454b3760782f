package binary

import (
	"strings"
	"testing"
)

func TestReader_Sequential(t *testing.T) {
	buf := []byte{'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x03, 0x12, 0x34}
	r := NewReader(buf, 0)

	id, err := r.String(4, "frame identifier")
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if id != "TIT2" {
		t.Errorf("id = %q, want TIT2", id)
	}

	size, err := ReadValue[uint32](r, "frame size")
	if err != nil {
		t.Fatalf("ReadValue failed: %v", err)
	}
	if size != 3 {
		t.Errorf("size = %d, want 3", size)
	}

	flags, err := ReadValue[uint16](r, "frame flags")
	if err != nil {
		t.Fatalf("ReadValue failed: %v", err)
	}
	if flags != 0x1234 {
		t.Errorf("flags = %#x, want 0x1234", flags)
	}

	if r.Offset() != 10 {
		t.Errorf("offset = %d, want 10", r.Offset())
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", r.Remaining())
	}
}

func TestReader_OutOfBounds(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02}, 0)

	_, err := r.Bytes(5, "frame payload")
	if err == nil {
		t.Fatal("expected error for out-of-bounds read")
	}
	if !strings.Contains(err.Error(), "frame payload") {
		t.Errorf("error should name what was being read, got: %v", err)
	}
}

func TestReader_SkipAndOffset(t *testing.T) {
	r := NewReader(make([]byte, 20), 4)
	r.Skip(6)
	if r.Offset() != 10 {
		t.Errorf("offset = %d, want 10", r.Offset())
	}
	if r.Remaining() != 10 {
		t.Errorf("remaining = %d, want 10", r.Remaining())
	}
}
