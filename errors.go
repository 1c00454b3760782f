package tagcodec

import (
	"github.com/simonhull/tagcodec/internal/types"
)

// NotATagError is an alias to types.NotATagError.
// Re-exporting from internal/types keeps the public API at the root.
type NotATagError = types.NotATagError

// SynchsafeRangeError is an alias to types.SynchsafeRangeError.
// Re-exporting from internal/types keeps the public API at the root.
type SynchsafeRangeError = types.SynchsafeRangeError

// FieldWidthError is an alias to types.FieldWidthError.
// Re-exporting from internal/types keeps the public API at the root.
type FieldWidthError = types.FieldWidthError

// TruncatedFrameError is an alias to types.TruncatedFrameError.
// Re-exporting from internal/types keeps the public API at the root.
type TruncatedFrameError = types.TruncatedFrameError

// UnsupportedEncodingError is an alias to types.UnsupportedEncodingError.
// Re-exporting from internal/types keeps the public API at the root.
type UnsupportedEncodingError = types.UnsupportedEncodingError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types keeps the public API at the root.
type Warning = types.Warning
