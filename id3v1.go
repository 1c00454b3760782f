package tagcodec

import (
	"github.com/simonhull/tagcodec/internal/id3v1"
	"github.com/simonhull/tagcodec/internal/types"
)

// V1Tag is an alias to the decoded ID3v1 trailer.
// Re-exporting from internal/id3v1 keeps the public API at the root.
type V1Tag = id3v1.Tag

// V1Length is the fixed ID3v1 trailer length in bytes.
const V1Length = id3v1.Length

// ParseV1 decodes the ID3v1 trailer from the last 128 bytes of data.
// Buffers without a "TAG" marker there fail with NotATagError.
//
// Example:
//
//	v1, err := tagcodec.ParseV1(data)
//	if err == nil {
//		fmt.Println(v1.Title, "-", v1.Artist)
//	}
func ParseV1(data []byte) (*V1Tag, error) {
	if len(data) < id3v1.Length {
		found := data
		if len(found) > 3 {
			found = found[0:3]
		}
		return nil, &types.NotATagError{Found: found}
	}
	return id3v1.Parse(data[len(data)-id3v1.Length:])
}
