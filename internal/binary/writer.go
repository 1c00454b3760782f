package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates encoded output with position tracking.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.buf.Len()
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteString appends a string as bytes.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Write appends a value of type T in big-endian byte order.
// T must be uint8, uint16, uint32, or uint64.
func Write[T uint8 | uint16 | uint32 | uint64](w *Writer, val T) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		w.buf.WriteByte(byte(val))
	case uint16:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(val))
		w.buf.Write(b[:])
	case uint32:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(val))
		w.buf.Write(b[:])
	case uint64:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(val))
		w.buf.Write(b[:])
	}
}
