package registry

import "github.com/simonhull/tagcodec/internal/types"

// binaryIDs are registered identifiers whose payloads the engine
// carries opaquely: pictures, comments, private data, chapters, and
// the user-defined text frames whose description/value structure must
// survive byte-exact.
var binaryIDs = []string{
	"APIC", "COMM", "PRIV", "GEOB", "UFID", "MCDI", "PCNT", "POPM",
	"USLT", "SYLT", "TXXX", "WXXX", "CHAP", "CTOC",
	// v2.2
	"PIC", "COM", "TXX", "ULT",
}

// binaryCodec passes payload bytes through in both directions. The
// difference from an unknown frame is purely that the identifier is a
// recognized part of the grammar.
type binaryCodec struct{}

func (binaryCodec) Decode(id string, flags uint16, payload []byte) (types.Frame, error) {
	return &types.BinaryFrame{FrameID: id, Flags: flags, Data: payload}, nil
}

func (binaryCodec) Encode(f types.Frame) ([]byte, error) {
	return f.(*types.BinaryFrame).Data, nil
}
