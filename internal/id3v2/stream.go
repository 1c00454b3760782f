package id3v2

import (
	"encoding/binary"
	"fmt"
	"iter"

	binutil "github.com/simonhull/tagcodec/internal/binary"
	"github.com/simonhull/tagcodec/internal/synchsafe"
	"github.com/simonhull/tagcodec/internal/types"
)

// RawFrame is one undecoded frame slice carved out of the tag body:
// identifier, raw flag bits, and payload bytes with any
// unsynchronisation already removed.
type RawFrame struct {
	ID      string
	Flags   uint16
	Payload []byte

	// Offset is the frame's byte offset within the tag body, kept for
	// error reporting.
	Offset int
}

// Stream carves raw frame slices out of a tag body. It is lazy and
// restartable: every call to All starts from the beginning.
type Stream struct {
	body    []byte
	layout  Layout
	unsync  bool
	baseOff int
}

// NewStream creates a Stream over the frame region of a tag body
// (after the envelope and extended header). baseOff is the region's
// absolute offset in the original buffer, used in error messages.
func NewStream(h *types.Header, body []byte, baseOff int) *Stream {
	layout, _ := LayoutFor(h.Version)
	return &Stream{
		body:    body,
		layout:  layout,
		unsync:  h.Unsynchronisation,
		baseOff: baseOff,
	}
}

// All returns an iterator over the frame sequence. Iteration stops at
// the first zero identifier byte (padding), at declared-size
// exhaustion, or when fewer bytes remain than a minimal sub-header
// (trailing padding). A frame declaring more payload than remains
// yields a TruncatedFrameError; a non-printable identifier yields a
// corruption error. After an error is yielded, iteration ends.
func (s *Stream) All() iter.Seq2[RawFrame, error] {
	return func(yield func(RawFrame, error) bool) {
		r := binutil.NewReader(s.body, 0)

		for r.Remaining() >= s.layout.SubHeaderLen() {
			offset := r.Offset()

			id, err := r.String(s.layout.IDLen, "frame identifier")
			if err != nil {
				yield(RawFrame{}, err)
				return
			}
			if id[0] == 0 {
				// Padding region, defined terminal condition.
				return
			}
			if !printableID(id) {
				yield(RawFrame{}, fmt.Errorf("invalid frame identifier %q at offset %d",
					id, s.baseOff+offset))
				return
			}

			size, err := s.readSize(r)
			if err != nil {
				yield(RawFrame{}, err)
				return
			}

			var flags uint16
			if s.layout.FlagsLen > 0 {
				flags, err = binutil.ReadValue[uint16](r, "frame flags")
				if err != nil {
					yield(RawFrame{}, err)
					return
				}
			}

			if int64(size) > int64(r.Remaining()) {
				yield(RawFrame{}, &types.TruncatedFrameError{
					ID:        id,
					Declared:  size,
					Remaining: r.Remaining(),
					Offset:    s.baseOff + offset,
				})
				return
			}

			payload, err := r.Bytes(int(size), "frame payload")
			if err != nil {
				yield(RawFrame{}, err)
				return
			}
			if s.unsync {
				payload = RemoveUnsync(payload)
			}

			frame := RawFrame{
				ID:      id,
				Flags:   flags,
				Payload: payload,
				Offset:  s.baseOff + offset,
			}
			if !yield(frame, nil) {
				return
			}
		}
	}
}

// readSize reads the frame size field per the version layout.
func (s *Stream) readSize(r *binutil.Reader) (uint32, error) {
	raw, err := r.Bytes(s.layout.SizeLen, "frame size")
	if err != nil {
		return 0, err
	}

	if s.layout.SynchsafeSize {
		return synchsafe.Decode(raw)
	}
	if s.layout.SizeLen == 3 {
		return uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2]), nil
	}
	return binary.BigEndian.Uint32(raw), nil
}

// printableID reports whether every identifier byte is an uppercase
// ASCII letter or digit.
func printableID(id string) bool {
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
