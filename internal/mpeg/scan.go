package mpeg

import (
	"iter"

	"github.com/simonhull/tagcodec/internal/id3v2"
)

// Frame is one located audio frame: its header and position.
type Frame struct {
	Offset int
	Length int
	Header *Header
}

// Scan walks buf frame by frame and returns an iterator over the
// audio frames. A leading ID3v2 tag is skipped; iteration ends
// cleanly at end of buffer or at a trailing tag region ("TAG",
// "APETAGEX", "LYRICSBEGIN" all start without a sync marker), and
// yields OutOfSyncError or ReservedValueError when the stream
// misaligns mid-file.
func Scan(buf []byte) iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		offset := 0

		if h, _, err := id3v2.ParseHeader(buf, ""); err == nil {
			offset = id3v2.HeaderLen + int(h.Size)
			if h.Footer {
				offset += id3v2.HeaderLen
			}
		}

		for offset+HeaderLen <= len(buf) {
			header, err := ParseHeader(buf[offset:], offset)
			if err != nil {
				if _, ok := err.(*OutOfSyncError); ok && startsTrailer(buf[offset:]) {
					return
				}
				yield(Frame{}, err)
				return
			}

			length, err := header.FrameLength()
			if err != nil {
				yield(Frame{}, err)
				return
			}
			if offset+length > len(buf) {
				// Final frame cut short at end of buffer.
				return
			}

			if !yield(Frame{Offset: offset, Length: length, Header: header}, nil) {
				return
			}
			offset += length
		}
	}
}

// trailerMarkers are the tag signatures that may follow the audio
// stream.
var trailerMarkers = []string{"TAG", "APETAGEX", "LYRICSBEGIN"}

func startsTrailer(buf []byte) bool {
	for _, m := range trailerMarkers {
		if len(buf) >= len(m) && string(buf[:len(m)]) == m {
			return true
		}
	}
	return false
}
