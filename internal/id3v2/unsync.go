package id3v2

import "bytes"

// RemoveUnsync reverses the unsynchronisation transform: every zero
// byte that immediately follows 0xFF is an inserted guard byte and is
// stripped.
func RemoveUnsync(data []byte) []byte {
	if !bytes.Contains(data, []byte{0xFF, 0x00}) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		out = append(out, data[i])
		if data[i] == 0xFF && i+1 < len(data) && data[i+1] == 0x00 {
			i++
		}
	}
	return out
}

// ApplyUnsync inserts a zero guard byte after every 0xFF so no byte
// pair inside the payload can be mistaken for a frame sync marker.
// It is the exact inverse of RemoveUnsync.
func ApplyUnsync(data []byte) []byte {
	n := bytes.Count(data, []byte{0xFF})
	if n == 0 {
		return data
	}

	out := make([]byte, 0, len(data)+n)
	for _, b := range data {
		out = append(out, b)
		if b == 0xFF {
			out = append(out, 0x00)
		}
	}
	return out
}
