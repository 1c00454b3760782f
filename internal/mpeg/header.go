// Package mpeg parses MPEG audio frame headers. The 32-bit header is
// read through a declarative bit layout, the same grammar documents
// describe it with, and yields enough to compute each frame's length
// and walk the audio stream frame by frame.
package mpeg

import (
	"fmt"

	"github.com/simonhull/tagcodec/internal/bitfield"
)

// MPEG version id values (2 bits).
const (
	VersionMPEG25   = 0
	VersionReserved = 1
	VersionMPEG2    = 2
	VersionMPEG1    = 3
)

// Layer values (2 bits). Note the on-wire order is reversed.
const (
	LayerReserved = 0
	LayerIII      = 1
	LayerII       = 2
	LayerI        = 3
)

// Channel mode values (2 bits).
const (
	ModeStereo        = 0
	ModeJointStereo   = 1
	ModeDualChannel   = 2
	ModeSingleChannel = 3
)

// syncWord is the 11-bit all-ones frame sync marker.
const syncWord = 0x7FF

// HeaderLen is the frame header length in bytes.
const HeaderLen = 4

// headerLayout is the 32-bit frame header grammar.
var headerLayout = bitfield.Layout{
	{Name: "sync", Width: 11},
	{Name: "id", Width: 2},
	{Name: "layer", Width: 2},
	{Name: "protection", Width: 1},
	{Name: "bitrate", Width: 4},
	{Name: "frequency", Width: 2},
	{Name: "padding", Width: 1},
	{Name: "private", Width: 1},
	{Name: "mode", Width: 2},
	{Name: "mode_extension", Width: 2},
	{Name: "copyright", Width: 1},
	{Name: "home_original", Width: 1},
	{Name: "emphasis", Width: 2},
}

// Header is a decoded MPEG audio frame header.
type Header struct {
	ID            byte // MPEG version id
	Layer         byte
	Protection    bool // true means no CRC follows the header
	BitrateIndex  byte
	FrequencyIdx  byte
	Padding       bool
	Private       bool
	Mode          byte
	ModeExtension byte
	Copyright     bool
	Original      bool
	Emphasis      byte
}

// OutOfSyncError is returned when the bytes at a supposed frame
// boundary do not carry the sync marker.
type OutOfSyncError struct {
	Offset int
}

func (e *OutOfSyncError) Error() string {
	return fmt.Sprintf("out of sync at offset %d: no frame sync marker", e.Offset)
}

// ReservedValueError is returned when a header field holds a value
// the format reserves.
type ReservedValueError struct {
	Field string
	Value byte
}

func (e *ReservedValueError) Error() string {
	return fmt.Sprintf("reserved value %d in header field %s", e.Value, e.Field)
}

// ParseHeader decodes the 4-byte frame header at the start of buf.
// offset is only used in error messages.
func ParseHeader(buf []byte, offset int) (*Header, error) {
	fields, _, err := headerLayout.Unpack(buf, 0)
	if err != nil {
		return nil, err
	}

	if fields["sync"] != syncWord {
		return nil, &OutOfSyncError{Offset: offset}
	}

	return &Header{
		ID:            byte(fields["id"]),
		Layer:         byte(fields["layer"]),
		Protection:    fields["protection"] != 0,
		BitrateIndex:  byte(fields["bitrate"]),
		FrequencyIdx:  byte(fields["frequency"]),
		Padding:       fields["padding"] != 0,
		Private:       fields["private"] != 0,
		Mode:          byte(fields["mode"]),
		ModeExtension: byte(fields["mode_extension"]),
		Copyright:     fields["copyright"] != 0,
		Original:      fields["home_original"] != 0,
		Emphasis:      byte(fields["emphasis"]),
	}, nil
}

// Encode packs the header back into its 4-byte form. Useful for
// synthesizing test streams; the inverse of ParseHeader.
func (h *Header) Encode() ([]byte, error) {
	return headerLayout.Pack(bitfield.Values{
		"sync":           syncWord,
		"id":             int64(h.ID),
		"layer":          int64(h.Layer),
		"protection":     boolBit(h.Protection),
		"bitrate":        int64(h.BitrateIndex),
		"frequency":      int64(h.FrequencyIdx),
		"padding":        boolBit(h.Padding),
		"private":        boolBit(h.Private),
		"mode":           int64(h.Mode),
		"mode_extension": int64(h.ModeExtension),
		"copyright":      boolBit(h.Copyright),
		"home_original":  boolBit(h.Original),
		"emphasis":       int64(h.Emphasis),
	})
}

func boolBit(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// SampleRate returns the sample rate in Hz.
func (h *Header) SampleRate() (int, error) {
	rates, ok := sampleRates[h.FrequencyIdx]
	if !ok {
		return 0, &ReservedValueError{Field: "frequency", Value: h.FrequencyIdx}
	}
	rate, ok := rates[h.ID]
	if !ok {
		return 0, &ReservedValueError{Field: "id", Value: h.ID}
	}
	return rate, nil
}

// Bitrate returns the bitrate in kbit/s.
func (h *Header) Bitrate() (int, error) {
	layers, ok := bitrates[h.BitrateIndex]
	if !ok {
		return 0, &ReservedValueError{Field: "bitrate", Value: h.BitrateIndex}
	}

	// MPEG 2.5 shares the MPEG 2 bitrate column.
	id := h.ID
	if id == VersionMPEG25 {
		id = VersionMPEG2
	}
	byLayer, ok := layers[id]
	if !ok {
		return 0, &ReservedValueError{Field: "id", Value: h.ID}
	}
	rate, ok := byLayer[h.Layer]
	if !ok {
		return 0, &ReservedValueError{Field: "layer", Value: h.Layer}
	}
	return rate, nil
}

// FrameLength returns the total frame length in bytes, including the
// header itself.
func (h *Header) FrameLength() (int, error) {
	sampleRate, err := h.SampleRate()
	if err != nil {
		return 0, err
	}
	bitrate, err := h.Bitrate()
	if err != nil {
		return 0, err
	}

	length := 144 * bitrate * 1000 / sampleRate
	if h.Padding {
		length++
	}
	return length, nil
}
