package tagcodec

// Option configures parsing behavior.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := tagcodec.Parse(data,
//	    tagcodec.WithSkipBadFrames(),
//	    tagcodec.WithMaxFrameSize(16*1024*1024),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for parsing.
type parseOptions struct {
	skipBadFrames bool   // Downgrade per-frame decode failures to warnings
	maxFrameSize  int    // Maximum frame payload size in bytes (0 = no limit)
	path          string // Source path for error messages (set by Open)
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		skipBadFrames: false,
		maxFrameSize:  0, // No limit
	}
}

// WithSkipBadFrames continues past frames that fail to decode.
//
// By default the first failed frame decode aborts the whole parse.
// With this option, a failed decode is recorded as a warning on the
// Tag and the frame is dropped.
//
// Frame-boundary violations (a frame declaring more bytes than
// remain) are always fatal: continuing past one would misalign every
// frame after it.
func WithSkipBadFrames() Option {
	return func(o *parseOptions) {
		o.skipBadFrames = true
	}
}

// WithMaxFrameSize rejects frames whose payload exceeds the given
// size in bytes.
//
// This protects against hostile buffers declaring enormous frames.
// Default is 0 (no limit).
//
// Example:
//
//	// Reject frames above 16MB
//	tag, err := tagcodec.Parse(data, tagcodec.WithMaxFrameSize(16*1024*1024))
func WithMaxFrameSize(bytes int) Option {
	return func(o *parseOptions) {
		o.maxFrameSize = bytes
	}
}

// EncodeOption configures encoding behavior.
type EncodeOption func(*encodeOptions)

// encodeOptions holds configuration for encoding.
type encodeOptions struct {
	padding int  // Zero bytes appended after the frame sequence
	version byte // Override the document's major version (0 = keep)
}

// defaultEncodeOptions returns the default encode configuration.
func defaultEncodeOptions() *encodeOptions {
	return &encodeOptions{
		padding: 0,
		version: 0,
	}
}

// WithPadding appends n zero bytes after the frame sequence.
//
// Padding lets a later writer grow the tag in place without rewriting
// the whole file. The padding counts toward the declared tag size.
func WithPadding(n int) EncodeOption {
	return func(o *encodeOptions) {
		o.padding = n
	}
}

// WithVersion encodes with the given major version (3 or 4) instead
// of the document's own. Version 4 uses synchsafe frame sizes;
// version 3 uses plain big-endian.
func WithVersion(major byte) EncodeOption {
	return func(o *encodeOptions) {
		o.version = major
	}
}
