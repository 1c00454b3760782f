package tagcodec

import (
	"github.com/simonhull/tagcodec/internal/types"
)

// Frame is an alias to types.Frame.
// Re-exporting from internal/types keeps the public API at the root.
type Frame = types.Frame

// TextFrame is an alias to types.TextFrame.
type TextFrame = types.TextFrame

// BinaryFrame is an alias to types.BinaryFrame.
type BinaryFrame = types.BinaryFrame

// UnknownFrame is an alias to types.UnknownFrame.
type UnknownFrame = types.UnknownFrame

// Header is an alias to types.Header.
type Header = types.Header

// Encoding is an alias to types.Encoding.
type Encoding = types.Encoding

// Re-export the defined text-encoding scheme codes.
const (
	EncodingLatin1  = types.EncodingLatin1
	EncodingUTF16   = types.EncodingUTF16
	EncodingUTF16BE = types.EncodingUTF16BE
	EncodingUTF8    = types.EncodingUTF8
)

// NewTextFrame builds a text frame for the given identifier.
//
// Example:
//
//	tag.Append(tagcodec.NewTextFrame("TIT2", "Song Title"))
func NewTextFrame(id, text string) *TextFrame {
	return &TextFrame{FrameID: id, Encoding: types.EncodingUTF8, Text: text}
}
