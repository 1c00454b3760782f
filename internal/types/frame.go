// Package types holds the shared data model for the tag engine:
// the header envelope, the frame variants, and the error taxonomy.
package types

// Encoding is an ID3v2 text-encoding scheme code.
type Encoding byte

const (
	// EncodingLatin1 is ISO-8859-1 (scheme 0).
	EncodingLatin1 Encoding = 0
	// EncodingUTF16 is UTF-16 with a byte-order mark (scheme 1).
	EncodingUTF16 Encoding = 1
	// EncodingUTF16BE is UTF-16 big-endian without BOM (scheme 2, v2.4).
	EncodingUTF16BE Encoding = 2
	// EncodingUTF8 is UTF-8 (scheme 3, v2.4).
	EncodingUTF8 Encoding = 3
)

// Valid reports whether the scheme code is one of the defined set.
func (e Encoding) Valid() bool {
	return e <= EncodingUTF8
}

// Frame is a single self-describing record in a tag body.
//
// The variant set is closed: TextFrame for registered text ids,
// BinaryFrame for registered opaque ids, and UnknownFrame for
// everything else. Unknown payloads are data, not behavior, so a
// tagged variant beats open subclassing here.
type Frame interface {
	// ID returns the 3- or 4-character ASCII frame identifier.
	ID() string

	// FrameFlags returns the raw frame status/format flag bits.
	FrameFlags() uint16

	// sealed prevents variants outside this package.
	sealed()
}

// TextFrame is a decoded text-information frame (TIT2, TPE1, ...).
type TextFrame struct {
	FrameID  string
	Flags    uint16
	Encoding Encoding
	Text     string
}

func (f *TextFrame) ID() string         { return f.FrameID }
func (f *TextFrame) FrameFlags() uint16 { return f.Flags }
func (f *TextFrame) sealed()            {}

// BinaryFrame is a registered frame whose payload stays opaque
// (APIC, PRIV, GEOB, ...). Data is held exactly as stored.
type BinaryFrame struct {
	FrameID string
	Flags   uint16
	Data    []byte
}

func (f *BinaryFrame) ID() string         { return f.FrameID }
func (f *BinaryFrame) FrameFlags() uint16 { return f.Flags }
func (f *BinaryFrame) sealed()            {}

// UnknownFrame preserves an unregistered frame byte-exact so that
// re-encoding reproduces the original payload unmodified.
type UnknownFrame struct {
	FrameID string
	Flags   uint16
	Raw     []byte
}

func (f *UnknownFrame) ID() string         { return f.FrameID }
func (f *UnknownFrame) FrameFlags() uint16 { return f.Flags }
func (f *UnknownFrame) sealed()            {}
