// Package id3v1 decodes and encodes the fixed 128-byte ID3v1 trailer
// found at the end of a media file.
package id3v1

import (
	"bytes"
	"fmt"

	"github.com/simonhull/tagcodec/internal/types"
)

// Magic is the trailer marker.
const Magic = "TAG"

// Length is the fixed trailer length in bytes.
const Length = 128

// Tag is a decoded ID3v1 or ID3v1.1 trailer. All text fields are
// fixed-width ISO-8859-1 with null padding stripped.
type Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string

	// Track is the v1.1 track number. HasTrack reports whether the
	// trailer used the v1.1 track-in-comment layout.
	Track    byte
	HasTrack bool

	// Genre is the raw genre byte (0xFF when unset).
	Genre byte
}

// Parse decodes a 128-byte trailer. Buffers not starting with the
// "TAG" marker fail with NotATagError.
func Parse(data []byte) (*Tag, error) {
	if len(data) < 3 || string(data[0:3]) != Magic {
		found := data
		if len(found) > 3 {
			found = found[0:3]
		}
		return nil, &types.NotATagError{Found: found}
	}
	if len(data) < Length {
		return nil, fmt.Errorf("id3v1: trailer is %d bytes, need %d", len(data), Length)
	}

	t := &Tag{
		Title:  trimField(data[3:33]),
		Artist: trimField(data[33:63]),
		Album:  trimField(data[63:93]),
		Year:   trimField(data[93:97]),
		Genre:  data[127],
	}

	// v1.1: a zero byte at comment[28] with a non-zero comment[29]
	// turns the last comment byte into a track number.
	comment := data[97:127]
	if comment[28] == 0 && comment[29] != 0 {
		t.Comment = trimField(comment[:28])
		t.Track = comment[29]
		t.HasTrack = true
	} else {
		t.Comment = trimField(comment)
	}

	return t, nil
}

// Encode serializes the trailer back to its fixed 128-byte layout.
// Text fields longer than their slots are rejected rather than
// silently truncated.
func (t *Tag) Encode() ([]byte, error) {
	out := make([]byte, Length)
	copy(out[0:3], Magic)

	for _, field := range []struct {
		name  string
		value string
		dst   []byte
	}{
		{"title", t.Title, out[3:33]},
		{"artist", t.Artist, out[33:63]},
		{"album", t.Album, out[63:93]},
		{"year", t.Year, out[93:97]},
	} {
		if len(field.value) > len(field.dst) {
			return nil, fmt.Errorf("id3v1: %s %q exceeds %d bytes", field.name, field.value, len(field.dst))
		}
		copy(field.dst, field.value)
	}

	comment := out[97:127]
	maxComment := len(comment)
	if t.HasTrack {
		maxComment = 28
	}
	if len(t.Comment) > maxComment {
		return nil, fmt.Errorf("id3v1: comment %q exceeds %d bytes", t.Comment, maxComment)
	}
	copy(comment, t.Comment)
	if t.HasTrack {
		comment[28] = 0
		comment[29] = t.Track
	}

	out[127] = t.Genre
	return out, nil
}

// trimField strips the null padding of a fixed-width field.
func trimField(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
