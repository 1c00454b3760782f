// Package id3v2 implements the tag envelope, the frame stream, and
// their byte-exact re-encoding for the ID3v2 family of revisions.
package id3v2

// Layout describes the frame sub-header shape for one major version.
// It is selected once at header-parse time so version differences
// live in a table instead of scattered conditionals.
type Layout struct {
	// IDLen is the identifier width in bytes (3 for v2.2, else 4).
	IDLen int

	// SizeLen is the frame size width in bytes (3 for v2.2, else 4).
	SizeLen int

	// FlagsLen is the frame flag width in bytes (0 for v2.2, else 2).
	FlagsLen int

	// SynchsafeSize reports whether frame sizes are synchsafe-encoded
	// (v2.4) rather than plain big-endian (v2.2, v2.3).
	SynchsafeSize bool

	// SynchsafeExtended reports whether the extended header size field
	// is synchsafe and includes its own four bytes (v2.4), as opposed
	// to plain and exclusive (v2.3).
	SynchsafeExtended bool
}

// SubHeaderLen is the total frame sub-header width for this layout.
func (l Layout) SubHeaderLen() int {
	return l.IDLen + l.SizeLen + l.FlagsLen
}

var layouts = map[byte]Layout{
	2: {IDLen: 3, SizeLen: 3},
	3: {IDLen: 4, SizeLen: 4, FlagsLen: 2},
	4: {IDLen: 4, SizeLen: 4, FlagsLen: 2, SynchsafeSize: true, SynchsafeExtended: true},
}

// LayoutFor returns the sub-header layout for a major version.
func LayoutFor(major byte) (Layout, bool) {
	l, ok := layouts[major]
	return l, ok
}
