package id3v2

import (
	"encoding/binary"
	"fmt"

	"github.com/simonhull/tagcodec/internal/bitfield"
	binutil "github.com/simonhull/tagcodec/internal/binary"
	"github.com/simonhull/tagcodec/internal/synchsafe"
	"github.com/simonhull/tagcodec/internal/types"
)

// Magic is the envelope marker at the start of a tag.
const Magic = "ID3"

// FooterMagic is the reversed marker written before a v2.4 footer.
const FooterMagic = "3DI"

// HeaderLen is the fixed envelope length in bytes.
const HeaderLen = 10

// headerLayout is the bit grammar of envelope bytes 3-5: two version
// bytes followed by the flag bitset.
var headerLayout = bitfield.Layout{
	{Name: "major", Width: 8},
	{Name: "revision", Width: 8},
	{Name: "unsynchronisation", Width: 1},
	{Name: "extended", Width: 1},
	{Name: "experimental", Width: 1},
	{Name: "footer", Width: 1},
	{Name: "reserved", Width: 4},
}

// ParseHeader parses the tag envelope and, when flagged, the extended
// header. It returns the header and the absolute offset where the
// frame sequence begins.
func ParseHeader(buf []byte, path string) (*types.Header, int, error) {
	if len(buf) < HeaderLen || string(buf[0:3]) != Magic {
		found := buf
		if len(found) > 3 {
			found = found[0:3]
		}
		return nil, 0, &types.NotATagError{Path: path, Found: found}
	}

	fields, _, err := headerLayout.Unpack(buf[3:HeaderLen], 0)
	if err != nil {
		return nil, 0, err
	}

	h := &types.Header{
		Version:           byte(fields["major"]),
		Revision:          byte(fields["revision"]),
		Unsynchronisation: fields["unsynchronisation"] != 0,
		ExtendedHeader:    fields["extended"] != 0,
		Experimental:      fields["experimental"] != 0,
		Footer:            fields["footer"] != 0,
	}

	if _, ok := LayoutFor(h.Version); !ok {
		if path != "" {
			return nil, 0, fmt.Errorf("%s: unsupported tag version 2.%d.%d", path, h.Version, h.Revision)
		}
		return nil, 0, fmt.Errorf("unsupported tag version 2.%d.%d", h.Version, h.Revision)
	}

	h.Size, err = synchsafe.Decode(buf[6:HeaderLen])
	if err != nil {
		return nil, 0, err
	}

	if int64(HeaderLen)+int64(h.Size) > int64(len(buf)) {
		return nil, 0, &types.TruncatedFrameError{
			ID:        Magic,
			Declared:  h.Size,
			Remaining: len(buf) - HeaderLen,
			Offset:    0,
		}
	}

	frameStart := HeaderLen
	if h.ExtendedHeader {
		frameStart, err = parseExtended(h, buf)
		if err != nil {
			return nil, 0, err
		}
		// The extended header counts toward the declared size; one that
		// runs past it leaves no room for frames and the body bounds
		// would invert.
		if frameStart > HeaderLen+int(h.Size) {
			return nil, 0, &types.TruncatedFrameError{
				ID:        Magic,
				Declared:  uint32(frameStart - HeaderLen),
				Remaining: int(h.Size),
				Offset:    HeaderLen,
			}
		}
	}

	return h, frameStart, nil
}

// parseExtended reads the extended header into h.Extended and returns
// the offset of the first frame. The size field is version-dependent:
// v2.4 uses a synchsafe length that includes its own four bytes, v2.3
// a plain length that excludes them.
func parseExtended(h *types.Header, buf []byte) (int, error) {
	r := binutil.NewReader(buf, HeaderLen)

	raw, err := r.Bytes(4, "extended header size")
	if err != nil {
		return 0, err
	}

	layout, _ := LayoutFor(h.Version)
	var bodyLen int
	if layout.SynchsafeExtended {
		total, err := synchsafe.Decode(raw)
		if err != nil {
			return 0, err
		}
		if total < 4 {
			return 0, fmt.Errorf("extended header declares size %d, below its own size field", total)
		}
		bodyLen = int(total) - 4
	} else {
		bodyLen = int(binary.BigEndian.Uint32(raw))
	}

	body, err := r.Bytes(bodyLen, "extended header")
	if err != nil {
		return 0, err
	}

	h.Extended = body
	return r.Offset(), nil
}
