// Package registry maps frame identifiers to typed frame codecs.
//
// The table is process-wide, built at most once on first use, and
// never mutated afterward, so concurrent decoders share it without
// locking. Identifiers with no entry fall back to an opaque
// pass-through codec that preserves payload bytes exactly.
package registry

import (
	"fmt"
	"sync"

	"github.com/simonhull/tagcodec/internal/types"
)

// Codec decodes and encodes one family of frame payloads.
type Codec interface {
	// Decode produces a typed Frame from raw payload bytes.
	Decode(id string, flags uint16, payload []byte) (types.Frame, error)

	// Encode produces the payload bytes for a Frame of this family.
	Encode(f types.Frame) ([]byte, error)
}

var table = sync.OnceValue(buildTable)

// Lookup returns the codec registered for id, or false if the
// identifier is unknown.
func Lookup(id string) (Codec, bool) {
	c, ok := table()[id]
	return c, ok
}

// Decode dispatches payload to the codec registered for id. Unknown
// identifiers produce an UnknownFrame holding the exact raw bytes;
// they never fail.
func Decode(id string, flags uint16, payload []byte) (types.Frame, error) {
	if c, ok := Lookup(id); ok {
		return c.Decode(id, flags, payload)
	}
	return &types.UnknownFrame{FrameID: id, Flags: flags, Raw: payload}, nil
}

// Encode produces the payload bytes for any frame variant. Unknown
// and binary frames pass their stored bytes through unmodified.
func Encode(f types.Frame) ([]byte, error) {
	switch fr := f.(type) {
	case *types.UnknownFrame:
		return fr.Raw, nil
	case *types.BinaryFrame:
		return fr.Data, nil
	case *types.TextFrame:
		return encodeText(fr)
	default:
		return nil, fmt.Errorf("frame %s: unhandled frame variant %T", f.ID(), f)
	}
}

// buildTable constructs the identifier table. Text-information
// identifiers decode to TextFrame; the remaining registered
// identifiers carry structured or binary payloads the engine keeps
// opaque, so they decode to BinaryFrame.
func buildTable() map[string]Codec {
	t := make(map[string]Codec)

	text := textCodec{}
	for _, id := range textIDs {
		t[id] = text
	}

	bin := binaryCodec{}
	for _, id := range binaryIDs {
		t[id] = bin
	}

	return t
}
