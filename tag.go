package tagcodec

import (
	"iter"
	"slices"

	"github.com/simonhull/tagcodec/internal/id3v2"
	"github.com/simonhull/tagcodec/internal/registry"
)

// Tag is an assembled tag document: the parsed envelope plus the
// ordered frame sequence. Frame order is preserved from the source
// buffer and determines the re-encoded byte layout.
//
// A Tag owns its frames exclusively; frames are never shared across
// documents. Independent Tags may be decoded and encoded concurrently
// without coordination.
type Tag struct {
	// Header is the tag envelope. Header.Size is informational after
	// decode; Encode always re-derives the declared size.
	Header Header

	// Warnings encountered during parsing. Only populated when
	// WithSkipBadFrames is in effect; the default is fail-fast.
	Warnings []Warning

	frames []Frame
}

// New creates an empty document with a current-version header, ready
// for Append and Encode.
func New() *Tag {
	return &Tag{Header: Header{Version: 4}}
}

// Len returns the number of frames in the document.
func (t *Tag) Len() int {
	return len(t.frames)
}

// Frames returns an iterator over the frames in document order.
//
//	for f := range tag.Frames() {
//		fmt.Println(f.ID())
//	}
func (t *Tag) Frames() iter.Seq[Frame] {
	return slices.Values(t.frames)
}

// Lookup returns the first frame with the given identifier.
// Duplicate identifiers are legal; use All to retrieve every match.
func (t *Tag) Lookup(id string) (Frame, bool) {
	for _, f := range t.frames {
		if f.ID() == id {
			return f, true
		}
	}
	return nil, false
}

// All returns every frame with the given identifier, in document order.
func (t *Tag) All(id string) []Frame {
	var out []Frame
	for _, f := range t.frames {
		if f.ID() == id {
			out = append(out, f)
		}
	}
	return out
}

// Text returns the text of the first text frame with the given
// identifier, or "" if absent.
func (t *Tag) Text(id string) string {
	f, ok := t.Lookup(id)
	if !ok {
		return ""
	}
	if tf, ok := f.(*TextFrame); ok {
		return tf.Text
	}
	return ""
}

// Append adds a frame to the end of the document, keeping any frames
// that share its identifier.
func (t *Tag) Append(f Frame) {
	t.frames = append(t.frames, f)
}

// Replace swaps the first frame with the same identifier in place and
// removes any further duplicates. If no frame matches, it appends.
//
// Replace and Append make duplicate handling an explicit caller
// choice; decode always preserves every duplicate.
func (t *Tag) Replace(f Frame) {
	id := f.ID()
	replaced := false
	out := t.frames[:0]
	for _, existing := range t.frames {
		if existing.ID() != id {
			out = append(out, existing)
			continue
		}
		if !replaced {
			out = append(out, f)
			replaced = true
		}
	}
	if !replaced {
		out = append(out, f)
	}
	t.frames = out
}

// Remove deletes every frame with the given identifier and returns
// how many were removed.
func (t *Tag) Remove(id string) int {
	before := len(t.frames)
	t.frames = slices.DeleteFunc(t.frames, func(f Frame) bool {
		return f.ID() == id
	})
	return before - len(t.frames)
}

// Encode serializes the document: each frame through its registry
// codec (unknown frames pass raw bytes through), concatenated in
// document order, padded per options, with the envelope prepended
// carrying a freshly derived synchsafe size.
//
// For any document produced by Parse, or built from frames with valid
// field values, Parse(tag.Encode()) yields an equal document.
func (t *Tag) Encode(opts ...EncodeOption) ([]byte, error) {
	options := defaultEncodeOptions()
	for _, opt := range opts {
		opt(options)
	}

	h := t.Header
	if h.Version == 0 {
		h.Version = 4
	}
	if options.version != 0 {
		h.Version = options.version
	}

	raws := make([]id3v2.RawFrame, 0, len(t.frames))
	for _, f := range t.frames {
		payload, err := registry.Encode(f)
		if err != nil {
			return nil, err
		}
		raws = append(raws, id3v2.RawFrame{
			ID:      f.ID(),
			Flags:   f.FrameFlags(),
			Payload: payload,
		})
	}

	return id3v2.Encode(&h, raws, options.padding)
}
