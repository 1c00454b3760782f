package mpeg

import (
	"errors"
	"testing"
)

// 0xFF 0xFB 0x90 0x00: MPEG1 Layer III, 128 kbit/s, 44100 Hz, no
// padding, stereo. The canonical header of most MP3 files.
var canonicalHeader = []byte{0xFF, 0xFB, 0x90, 0x00}

func TestParseHeader_Canonical(t *testing.T) {
	h, err := ParseHeader(canonicalHeader, 0)
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}

	if h.ID != VersionMPEG1 {
		t.Errorf("ID = %d, want MPEG1", h.ID)
	}
	if h.Layer != LayerIII {
		t.Errorf("Layer = %d, want Layer III", h.Layer)
	}
	if !h.Protection {
		t.Error("expected protection bit set (no CRC)")
	}
	if h.Mode != ModeStereo {
		t.Errorf("Mode = %d, want stereo", h.Mode)
	}

	rate, err := h.SampleRate()
	if err != nil || rate != 44100 {
		t.Errorf("SampleRate = %d, %v; want 44100", rate, err)
	}
	bitrate, err := h.Bitrate()
	if err != nil || bitrate != 128 {
		t.Errorf("Bitrate = %d, %v; want 128", bitrate, err)
	}

	length, err := h.FrameLength()
	if err != nil {
		t.Fatalf("FrameLength failed: %v", err)
	}
	if length != 417 {
		t.Errorf("FrameLength = %d, want 417", length)
	}
}

func TestParseHeader_PaddingAddsOneByte(t *testing.T) {
	// Same header with the padding bit set.
	buf := []byte{0xFF, 0xFB, 0x92, 0x00}
	h, err := ParseHeader(buf, 0)
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	if !h.Padding {
		t.Fatal("padding bit not decoded")
	}

	length, err := h.FrameLength()
	if err != nil || length != 418 {
		t.Errorf("FrameLength = %d, %v; want 418", length, err)
	}
}

func TestParseHeader_OutOfSync(t *testing.T) {
	_, err := ParseHeader([]byte{0x49, 0x44, 0x33, 0x04}, 1234)
	var sync *OutOfSyncError
	if !errors.As(err, &sync) {
		t.Fatalf("expected OutOfSyncError, got %v", err)
	}
	if sync.Offset != 1234 {
		t.Errorf("Offset = %d, want 1234", sync.Offset)
	}
}

func TestHeader_ReservedValues(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		// frequency index 3 is reserved
		{"reserved frequency", []byte{0xFF, 0xFB, 0x9C, 0x00}},
		// bitrate index 15 is forbidden
		{"forbidden bitrate", []byte{0xFF, 0xFB, 0xF0, 0x00}},
		// bitrate index 0 is the free-format escape
		{"free format", []byte{0xFF, 0xFB, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHeader(tt.buf, 0)
			if err != nil {
				t.Fatalf("ParseHeader failed: %v", err)
			}
			if _, err := h.FrameLength(); err == nil {
				t.Error("expected ReservedValueError from FrameLength")
			}
		})
	}
}

func TestHeader_EncodeRoundTrip(t *testing.T) {
	h, err := ParseHeader(canonicalHeader, 0)
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}

	out, err := h.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(out) != HeaderLen {
		t.Fatalf("encoded length = %d, want %d", len(out), HeaderLen)
	}
	for i := range canonicalHeader {
		if out[i] != canonicalHeader[i] {
			t.Fatalf("Encode = % X, want % X", out, canonicalHeader)
		}
	}
}

func TestScan_FrameWalk(t *testing.T) {
	// Two back-to-back canonical frames of 417 bytes each.
	frame := make([]byte, 417)
	copy(frame, canonicalHeader)
	buf := append(append([]byte{}, frame...), frame...)

	var frames []Frame
	for f, err := range Scan(buf) {
		if err != nil {
			t.Fatalf("Scan error: %v", err)
		}
		frames = append(frames, f)
	}

	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Offset != 0 || frames[1].Offset != 417 {
		t.Errorf("offsets = %d, %d", frames[0].Offset, frames[1].Offset)
	}
}

func TestScan_SkipsLeadingTag(t *testing.T) {
	// A 10-byte ID3v2 envelope with a 6-byte empty body, then audio.
	tag := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 6, 0, 0, 0, 0, 0, 0}
	frame := make([]byte, 417)
	copy(frame, canonicalHeader)
	buf := append(tag, frame...)

	var frames []Frame
	for f, err := range Scan(buf) {
		if err != nil {
			t.Fatalf("Scan error: %v", err)
		}
		frames = append(frames, f)
	}

	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if frames[0].Offset != len(tag) {
		t.Errorf("offset = %d, want %d", frames[0].Offset, len(tag))
	}
}

func TestScan_StopsAtTrailer(t *testing.T) {
	frame := make([]byte, 417)
	copy(frame, canonicalHeader)
	trailer := make([]byte, 128)
	copy(trailer, "TAG")
	buf := append(append([]byte{}, frame...), trailer...)

	count := 0
	for _, err := range Scan(buf) {
		if err != nil {
			t.Fatalf("Scan error at trailer: %v", err)
		}
		count++
	}
	if count != 1 {
		t.Errorf("expected 1 audio frame, got %d", count)
	}
}
