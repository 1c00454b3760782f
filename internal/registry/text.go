package registry

import (
	"github.com/simonhull/tagcodec/internal/textenc"
	"github.com/simonhull/tagcodec/internal/types"
)

// textIDs are the registered text-information identifiers: the v2.3/
// v2.4 four-character set plus the v2.2 three-character equivalents.
var textIDs = []string{
	// v2.3 / v2.4
	"TIT1", "TIT2", "TIT3",
	"TPE1", "TPE2", "TPE3", "TPE4",
	"TALB", "TCON", "TCOM", "TENC", "TPUB", "TCOP",
	"TRCK", "TPOS", "TYER", "TDRC", "TDRL", "TDAT", "TIME",
	"TLEN", "TLAN", "TOPE", "TOAL", "TORY",
	"TSOT", "TSOA", "TSOP", "TSSE", "TSRC",
	// v2.2
	"TT1", "TT2", "TT3", "TP1", "TP2", "TP3", "TP4",
	"TAL", "TCO", "TCM", "TRK", "TPA", "TYE", "TEN", "TPB",
}

// textCodec decodes text-information frames: a leading 1-byte
// encoding-scheme marker followed by text in that scheme.
type textCodec struct{}

func (textCodec) Decode(id string, flags uint16, payload []byte) (types.Frame, error) {
	if len(payload) == 0 {
		return &types.TextFrame{FrameID: id, Flags: flags, Encoding: types.EncodingLatin1}, nil
	}

	enc := types.Encoding(payload[0])
	if !enc.Valid() {
		return nil, &types.UnsupportedEncodingError{ID: id, Scheme: payload[0]}
	}

	return &types.TextFrame{
		FrameID:  id,
		Flags:    flags,
		Encoding: enc,
		Text:     textenc.Decode(payload[1:], enc),
	}, nil
}

func (textCodec) Encode(f types.Frame) ([]byte, error) {
	return encodeText(f.(*types.TextFrame))
}

func encodeText(f *types.TextFrame) ([]byte, error) {
	if !f.Encoding.Valid() {
		return nil, &types.UnsupportedEncodingError{ID: f.FrameID, Scheme: byte(f.Encoding)}
	}
	out := []byte{byte(f.Encoding)}
	return append(out, textenc.Encode(f.Text, f.Encoding)...), nil
}
