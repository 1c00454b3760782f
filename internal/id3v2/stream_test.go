package id3v2

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/tagcodec/internal/types"
)

// collect drains a stream, failing the test on any error.
func collect(t *testing.T, s *Stream) []RawFrame {
	t.Helper()
	var out []RawFrame
	for f, err := range s.All() {
		if err != nil {
			t.Fatalf("stream error: %v", err)
		}
		out = append(out, f)
	}
	return out
}

func v4Frame(id string, payload []byte) []byte {
	n := len(payload)
	buf := []byte(id)
	buf = append(buf, byte(n>>21&0x7F), byte(n>>14&0x7F), byte(n>>7&0x7F), byte(n&0x7F))
	buf = append(buf, 0x00, 0x00)
	return append(buf, payload...)
}

func TestStream_TwoFrames(t *testing.T) {
	body := append(v4Frame("TIT2", []byte{0x00, 'A', 'B'}), v4Frame("TPE1", []byte{0x00, 'X'})...)
	s := NewStream(&types.Header{Version: 4}, body, HeaderLen)

	frames := collect(t, s)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].ID != "TIT2" || frames[1].ID != "TPE1" {
		t.Errorf("ids = %s, %s", frames[0].ID, frames[1].ID)
	}
	if !bytes.Equal(frames[0].Payload, []byte{0x00, 'A', 'B'}) {
		t.Errorf("payload = %v", frames[0].Payload)
	}
	if frames[0].Offset != HeaderLen {
		t.Errorf("offset = %d, want %d", frames[0].Offset, HeaderLen)
	}
}

func TestStream_StopsAtPadding(t *testing.T) {
	body := append(v4Frame("TIT2", []byte{0x00, 'A'}), make([]byte, 10)...)
	s := NewStream(&types.Header{Version: 4}, body, HeaderLen)

	frames := collect(t, s)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame before padding, got %d", len(frames))
	}
}

func TestStream_TrailingBytesBelowSubHeader(t *testing.T) {
	// 5 stray bytes cannot hold a 10-byte sub-header; treated as
	// trailing padding, not an error.
	body := append(v4Frame("TIT2", []byte{0x00, 'A'}), 'T', 'X', 'X', 'X', 0x01)
	s := NewStream(&types.Header{Version: 4}, body, HeaderLen)

	frames := collect(t, s)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
}

func TestStream_TruncatedFrame(t *testing.T) {
	// Sub-header declares 1000 bytes in a body with far fewer left.
	body := []byte("TIT2")
	body = append(body, 0x00, 0x00, 0x07, 0x68, 0x00, 0x00) // synchsafe 1000
	body = append(body, make([]byte, 40)...)
	s := NewStream(&types.Header{Version: 4}, body, HeaderLen)

	var streamErr error
	for _, err := range s.All() {
		if err != nil {
			streamErr = err
			break
		}
	}

	var trunc *types.TruncatedFrameError
	if !errors.As(streamErr, &trunc) {
		t.Fatalf("expected TruncatedFrameError, got %v", streamErr)
	}
	if trunc.ID != "TIT2" || trunc.Declared != 1000 {
		t.Errorf("error fields: %+v", trunc)
	}
}

func TestStream_InvalidIdentifier(t *testing.T) {
	body := []byte{'t', 'i', 't', '2', 0, 0, 0, 1, 0, 0, 0xAA}
	s := NewStream(&types.Header{Version: 4}, body, HeaderLen)

	var streamErr error
	for _, err := range s.All() {
		if err != nil {
			streamErr = err
			break
		}
	}
	if streamErr == nil {
		t.Fatal("expected error for lowercase identifier")
	}
}

func TestStream_V22Layout(t *testing.T) {
	// v2.2: 3-byte id, 3-byte plain size, no flags.
	body := []byte{'T', 'T', '2', 0x00, 0x00, 0x02, 0x00, 'A'}
	s := NewStream(&types.Header{Version: 2}, body, HeaderLen)

	frames := collect(t, s)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if frames[0].ID != "TT2" {
		t.Errorf("id = %q, want TT2", frames[0].ID)
	}
	if !bytes.Equal(frames[0].Payload, []byte{0x00, 'A'}) {
		t.Errorf("payload = %v", frames[0].Payload)
	}
}

func TestStream_V3PlainSizes(t *testing.T) {
	// v2.3 uses plain big-endian sizes; 0x80 in the low byte is legal.
	payload := make([]byte, 0x80)
	body := []byte("TIT2")
	body = append(body, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00)
	body = append(body, payload...)
	s := NewStream(&types.Header{Version: 3}, body, HeaderLen)

	frames := collect(t, s)
	if len(frames) != 1 || len(frames[0].Payload) != 0x80 {
		t.Fatalf("v2.3 plain size not honored: %+v", frames)
	}
}

func TestStream_UnsyncRemoval(t *testing.T) {
	raw := ApplyUnsync([]byte{0x00, 0xFF, 0xFB})
	body := v4Frame("XYZ9", raw)
	s := NewStream(&types.Header{Version: 4, Unsynchronisation: true}, body, HeaderLen)

	frames := collect(t, s)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if !bytes.Equal(frames[0].Payload, []byte{0x00, 0xFF, 0xFB}) {
		t.Errorf("payload = %v, want desynced original", frames[0].Payload)
	}
}

func TestStream_Restartable(t *testing.T) {
	body := v4Frame("TIT2", []byte{0x00, 'A'})
	s := NewStream(&types.Header{Version: 4}, body, HeaderLen)

	first := collect(t, s)
	second := collect(t, s)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("restarted iteration differs: %d vs %d", len(first), len(second))
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	h := &types.Header{Version: 4, Unsynchronisation: true}
	frames := []RawFrame{
		{ID: "TIT2", Payload: []byte{0x00, 'A', 0xFF}},
		{ID: "XYZ9", Flags: 0x00C0, Payload: []byte{0xFF, 0xFB, 0x00}},
	}

	out, err := Encode(h, frames, 7)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	parsed, frameStart, err := ParseHeader(out, "")
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	got := collect(t, NewStream(parsed, out[frameStart:HeaderLen+int(parsed.Size)], frameStart))

	if len(got) != len(frames) {
		t.Fatalf("expected %d frames, got %d", len(frames), len(got))
	}
	for i := range frames {
		if got[i].ID != frames[i].ID || got[i].Flags != frames[i].Flags {
			t.Errorf("frame %d sub-header mismatch: %+v", i, got[i])
		}
		if !bytes.Equal(got[i].Payload, frames[i].Payload) {
			t.Errorf("frame %d payload = %v, want %v", i, got[i].Payload, frames[i].Payload)
		}
	}
}
