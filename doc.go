// Package tagcodec decodes and re-encodes binary media tag blocks.
//
// tagcodec is the binary tag engine underneath metadata tooling: it
// parses the ID3v2 family of tag envelopes into a typed, uniform
// in-memory model and serializes that model back to bytes, preserving
// frames it does not understand byte-exact.
//
// # Quick Start
//
// Decoding a tag from a buffer:
//
//	tag, err := tagcodec.Parse(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(tag.Text("TIT2"), "-", tag.Text("TPE1"))
//
// Building and encoding a tag:
//
//	tag := tagcodec.New()
//	tag.Append(tagcodec.NewTextFrame("TIT2", "Song Title"))
//	data, err := tag.Encode(tagcodec.WithPadding(1024))
//
// # Model
//
// Raw bytes flow through four stages:
//
//	raw bytes -> envelope (Header) -> frame slices -> typed frames -> Tag
//
// Re-encoding reverses the pipeline: each frame is serialized through
// the frame registry, concatenated in document order, and the
// envelope is prepended with a freshly computed synchsafe size.
//
// Frames come in three variants. Registered text identifiers decode
// to TextFrame (with their declared encoding scheme). Registered
// opaque identifiers (pictures, comments, private data) decode to
// BinaryFrame. Anything else becomes an UnknownFrame whose payload
// round-trips byte-identical, so foreign or vendor frames survive a
// decode/encode cycle untouched.
//
// # Versions
//
// ID3v2.2, v2.3 and v2.4 envelopes are decoded; the sub-header shape
// (identifier width, synchsafe versus plain frame sizes, flag bytes)
// is selected from a per-version table at header-parse time. Encoding
// targets the document's own version, so parsed tags round-trip
// byte-exact; fresh documents default to v2.4.
//
// # Error Handling
//
// Parsing is fail-fast by default: the first structural violation
// (truncated frame, undefined text encoding, invalid identifier)
// surfaces as a typed error: NotATagError, SynchsafeRangeError,
// TruncatedFrameError, UnsupportedEncodingError, FieldWidthError.
// The one defined terminal condition that is not an error is padding:
// a zero identifier byte ends the frame sequence.
//
// WithSkipBadFrames opts in to skip-and-continue for per-frame decode
// failures, which are then collected in Tag.Warnings.
//
// # Scope
//
// The engine is a pure transformation over in-memory buffers. It does
// not read the network, inspect multiplexed containers, compute
// checksums, or transcode payloads; those belong to the callers and
// services around it. The ID3v1 trailer and MPEG audio frame headers
// from the same family of files are supported as companions (ParseV1,
// the internal mpeg package surfaced through cmd/tag-dump-tool).
package tagcodec
