package id3v2

import (
	"fmt"

	binutil "github.com/simonhull/tagcodec/internal/binary"
	"github.com/simonhull/tagcodec/internal/synchsafe"
	"github.com/simonhull/tagcodec/internal/types"
)

// Encode serializes a tag: extended header, frame sequence, padding,
// then the envelope prepended with a freshly derived synchsafe size.
// The declared size is always recomputed from the encoded body; a
// caller-supplied Header.Size is ignored.
func Encode(h *types.Header, frames []RawFrame, padding int) ([]byte, error) {
	layout, ok := LayoutFor(h.Version)
	if !ok {
		return nil, fmt.Errorf("unsupported tag version 2.%d.%d", h.Version, h.Revision)
	}
	if padding < 0 {
		padding = 0
	}

	body := binutil.NewWriter()

	if h.Extended != nil {
		if err := encodeExtended(body, h, layout); err != nil {
			return nil, err
		}
	}

	for _, f := range frames {
		if err := encodeFrame(body, layout, h.Unsynchronisation, f); err != nil {
			return nil, err
		}
	}

	body.WriteBytes(make([]byte, padding))

	bodyLen := body.Offset()
	if bodyLen > synchsafe.Max {
		return nil, &types.SynchsafeRangeError{Value: uint32(bodyLen)}
	}
	size, err := synchsafe.Encode(uint32(bodyLen))
	if err != nil {
		return nil, err
	}

	out := binutil.NewWriter()
	out.WriteString(Magic)
	binutil.Write(out, h.Version)
	binutil.Write(out, h.Revision)
	binutil.Write(out, h.FlagByte())
	out.WriteBytes(size[:])
	out.WriteBytes(body.Bytes())

	if h.Footer && layout.SynchsafeSize {
		// The footer repeats the envelope with a reversed marker and is
		// excluded from the declared size.
		out.WriteString(FooterMagic)
		binutil.Write(out, h.Version)
		binutil.Write(out, h.Revision)
		binutil.Write(out, h.FlagByte())
		out.WriteBytes(size[:])
	}

	return out.Bytes(), nil
}

// encodeExtended writes the extended header with its version-specific
// size field, the structural inverse of parseExtended.
func encodeExtended(w *binutil.Writer, h *types.Header, layout Layout) error {
	if layout.SynchsafeExtended {
		total, err := synchsafe.Encode(uint32(len(h.Extended)) + 4)
		if err != nil {
			return err
		}
		w.WriteBytes(total[:])
	} else {
		binutil.Write(w, uint32(len(h.Extended)))
	}
	w.WriteBytes(h.Extended)
	return nil
}

// encodeFrame writes one frame sub-header and payload. When the tag
// is unsynchronised the guard-byte insertion is applied first and the
// declared size reflects the transformed payload.
func encodeFrame(w *binutil.Writer, layout Layout, unsync bool, f RawFrame) error {
	if len(f.ID) != layout.IDLen || !printableID(f.ID) {
		return fmt.Errorf("frame identifier %q is not %d printable ASCII bytes", f.ID, layout.IDLen)
	}

	payload := f.Payload
	if unsync {
		payload = ApplyUnsync(payload)
	}

	w.WriteString(f.ID)

	switch {
	case layout.SynchsafeSize:
		size, err := synchsafe.Encode(uint32(len(payload)))
		if err != nil {
			return err
		}
		w.WriteBytes(size[:])
	case layout.SizeLen == 3:
		n := len(payload)
		if n >= 1<<24 {
			return fmt.Errorf("frame %s: payload of %d bytes exceeds 3-byte size field", f.ID, n)
		}
		w.WriteBytes([]byte{byte(n >> 16), byte(n >> 8), byte(n)})
	default:
		binutil.Write(w, uint32(len(payload)))
	}

	if layout.FlagsLen > 0 {
		binutil.Write(w, f.Flags)
	}
	w.WriteBytes(payload)
	return nil
}
