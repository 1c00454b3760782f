package types

import "fmt"

// NotATagError is returned when the buffer does not start with a tag
// envelope at all. This means "no tag here", not corruption; callers
// scanning a media file can treat it as a clean miss.
type NotATagError struct {
	Path  string
	Found []byte
}

func (e *NotATagError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: no tag envelope (found %q instead of magic marker)", e.Path, e.Found)
	}
	return fmt.Sprintf("no tag envelope (found %q instead of magic marker)", e.Found)
}

// SynchsafeRangeError is returned when a value cannot be represented
// as a synchsafe integer, or when an encoded byte has its top bit set.
type SynchsafeRangeError struct {
	Value  uint32 // value that does not fit (encode direction)
	Byte   byte   // offending byte (decode direction)
	Decode bool
}

func (e *SynchsafeRangeError) Error() string {
	if e.Decode {
		return fmt.Sprintf("synchsafe decode: byte 0x%02X has top bit set", e.Byte)
	}
	return fmt.Sprintf("synchsafe encode: value %d exceeds 28-bit range", e.Value)
}

// FieldWidthError is returned when a bit-field value overflows its
// declared width during encode.
type FieldWidthError struct {
	Field string
	Width uint
	Value int64
}

func (e *FieldWidthError) Error() string {
	return fmt.Sprintf("field %q: value %d does not fit in %d bits", e.Field, e.Value, e.Width)
}

// TruncatedFrameError is returned when a frame sub-header declares
// more payload bytes than remain in the tag body.
type TruncatedFrameError struct {
	ID        string
	Declared  uint32
	Remaining int
	Offset    int
}

func (e *TruncatedFrameError) Error() string {
	return fmt.Sprintf("frame %s at offset %d: declared size %d exceeds %d remaining bytes",
		e.ID, e.Offset, e.Declared, e.Remaining)
}

// UnsupportedEncodingError is returned when a known frame declares a
// text-encoding scheme outside the defined set {0,1,2,3}. Unknown
// frames are opaque and never produce this error.
type UnsupportedEncodingError struct {
	ID     string
	Scheme byte
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("frame %s: text encoding scheme 0x%02X is not defined", e.ID, e.Scheme)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings are only produced when the caller opts in to
// skip-and-continue frame decoding; the default is fail-fast on the
// first structural violation.
type Warning struct {
	// Stage where the warning occurred ("frame", "header")
	Stage string

	// Warning message
	Message string

	// Byte offset into the tag where the issue occurred
	Offset int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
