package tagcodec

import (
	"fmt"

	"github.com/simonhull/tagcodec/internal/textenc"
	"github.com/simonhull/tagcodec/internal/types"
)

// Comment is the structured view of a comment frame payload:
// encoding scheme, 3-character language code, short description, and
// the comment text.
type Comment struct {
	Encoding    Encoding
	Language    string
	Description string
	Text        string
}

// UserText is the structured view of a user-defined text frame
// payload (TXXX): a description naming the field and its value.
type UserText struct {
	Encoding    Encoding
	Description string
	Value       string
}

// DecodeComment interprets a comment frame (COMM, or COM in v2.2).
// Comment payloads stay opaque on the Tag so they round-trip
// byte-exact; this gives structured access on demand.
//
// Layout: [scheme][language×3][description\0][text]. A payload with
// no terminator is treated as all text, matching common writers that
// omit the description.
func DecodeComment(f Frame) (*Comment, error) {
	payload, err := describedPayload(f, 4)
	if err != nil {
		return nil, err
	}

	enc := types.Encoding(payload[0])
	if !enc.Valid() {
		return nil, &UnsupportedEncodingError{ID: f.ID(), Scheme: payload[0]}
	}

	c := &Comment{
		Encoding: enc,
		Language: string(payload[1:4]),
	}

	data := payload[4:]
	term := textenc.FindTerminator(data, enc)
	if term < 0 {
		c.Text = textenc.Decode(data, enc)
		return c, nil
	}

	c.Description = textenc.Decode(data[:term], enc)
	c.Text = textenc.Decode(data[term+textenc.TerminatorSize(enc):], enc)
	return c, nil
}

// DecodeUserText interprets a user-defined text frame (TXXX, or TXX
// in v2.2). Layout: [scheme][description\0][value].
func DecodeUserText(f Frame) (*UserText, error) {
	payload, err := describedPayload(f, 2)
	if err != nil {
		return nil, err
	}

	enc := types.Encoding(payload[0])
	if !enc.Valid() {
		return nil, &UnsupportedEncodingError{ID: f.ID(), Scheme: payload[0]}
	}

	data := payload[1:]
	term := textenc.FindTerminator(data, enc)
	if term < 0 {
		return nil, fmt.Errorf("frame %s: no terminator between description and value", f.ID())
	}

	return &UserText{
		Encoding:    enc,
		Description: textenc.Decode(data[:term], enc),
		Value:       textenc.Decode(data[term+textenc.TerminatorSize(enc):], enc),
	}, nil
}

// describedPayload extracts the raw payload of an opaque frame and
// checks it is long enough to carry the fixed prefix.
func describedPayload(f Frame, min int) ([]byte, error) {
	var payload []byte
	switch fr := f.(type) {
	case *BinaryFrame:
		payload = fr.Data
	case *UnknownFrame:
		payload = fr.Raw
	default:
		return nil, fmt.Errorf("frame %s: %T carries no described payload", f.ID(), f)
	}

	if len(payload) < min {
		return nil, fmt.Errorf("frame %s: payload of %d bytes is below the %d-byte minimum",
			f.ID(), len(payload), min)
	}
	return payload, nil
}
