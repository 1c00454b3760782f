// Package binary provides type-safe binary reading and writing
// primitives over in-memory buffers, with bounds checking and helpful
// error messages.
package binary

import (
	"encoding/binary"
	"fmt"
)

// Reader is a bounds-checked cursor over a byte buffer.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader creates a Reader over buf starting at offset.
func NewReader(buf []byte, offset int) *Reader {
	return &Reader{buf: buf, offset: offset}
}

// Offset returns the current offset.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int) {
	r.offset += n
}

// Bytes reads n bytes and advances the offset. The returned slice
// aliases the underlying buffer.
func (r *Reader) Bytes(n int, what string) ([]byte, error) {
	if n < 0 || r.offset+n > len(r.buf) {
		return nil, fmt.Errorf("read of %d bytes at offset %d would exceed buffer size %d while reading %s",
			n, r.offset, len(r.buf), what)
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// String reads a string of the given length and advances the offset.
func (r *Reader) String(length int, what string) (string, error) {
	b, err := r.Bytes(length, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadValue reads a big-endian numeric value and advances the offset.
// T must be uint8, uint16, uint32, or uint64.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	var zero T
	var size int
	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	buf, err := r.Bytes(size, what)
	if err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}
	return val, nil
}
