package types

// Header is the parsed tag envelope: version, flag bitset, and the
// declared body size.
type Header struct {
	// Version is the major version byte (2, 3 or 4).
	Version byte
	// Revision is the minor version byte.
	Revision byte

	// Flag bits from the envelope flag byte.
	Unsynchronisation bool
	ExtendedHeader    bool
	Experimental      bool
	Footer            bool

	// Size is the declared tag body size in bytes, synchsafe-decoded.
	// It excludes the 10-byte envelope and the optional footer.
	Size uint32

	// Extended holds the extended header body (excluding its own size
	// field) when the extended-header flag is set, nil otherwise. It is
	// carried opaquely and re-emitted on encode.
	Extended []byte
}

// Flag bit positions in the envelope flag byte.
const (
	FlagUnsynchronisation = 0x80
	FlagExtendedHeader    = 0x40
	FlagExperimental      = 0x20
	FlagFooter            = 0x10
)

// FlagByte recomputes the envelope flag byte from header state.
// The extended-header bit follows the presence of Extended, never a
// stale flag carried from decode.
func (h *Header) FlagByte() byte {
	var b byte
	if h.Unsynchronisation {
		b |= FlagUnsynchronisation
	}
	if h.Extended != nil {
		b |= FlagExtendedHeader
	}
	if h.Experimental {
		b |= FlagExperimental
	}
	if h.Footer {
		b |= FlagFooter
	}
	return b
}
