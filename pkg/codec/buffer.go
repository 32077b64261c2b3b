package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Buffer reads little-endian primitive fields from a byte slice at a
// cursor offset. All reads advance the cursor and leave the underlying
// slice untouched; the slice may be shared between buffers.
//
// A read that would pass the end of the slice fails with ErrTruncated
// and leaves the cursor where it was.
type Buffer struct {
	data []byte
	off  int
}

// NewBuffer wraps data in a cursor positioned at the start.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Offset returns the current cursor position.
func (b *Buffer) Offset() int {
	return b.off
}

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.off
}

// Bytes consumes and returns the next n bytes.
func (b *Buffer) Bytes(n int) ([]byte, error) {
	if n < 0 || b.Remaining() < n {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, b.off, b.Remaining(), ErrTruncated)
	}
	out := b.data[b.off : b.off+n]
	b.off += n
	return out, nil
}

// Rest consumes and returns everything up to the end of the buffer.
// Returns an empty slice when the buffer is already exhausted.
func (b *Buffer) Rest() []byte {
	out := b.data[b.off:]
	b.off = len(b.data)
	return out
}

// Uint8 reads one byte.
func (b *Buffer) Uint8() (uint8, error) {
	raw, err := b.Bytes(1)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

// Uint16 reads a little-endian 16-bit unsigned integer.
func (b *Buffer) Uint16() (uint16, error) {
	raw, err := b.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(raw), nil
}

// Uint32 reads a little-endian 32-bit unsigned integer.
func (b *Buffer) Uint32() (uint32, error) {
	raw, err := b.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}

// Int32 reads a little-endian 32-bit signed integer.
func (b *Buffer) Int32() (int32, error) {
	v, err := b.Uint32()
	return int32(v), err
}

// Float32 reads a little-endian IEEE 754 single-precision float.
func (b *Buffer) Float32() (float32, error) {
	v, err := b.Uint32()
	return math.Float32frombits(v), err
}

// LengthPrefixed reads a length field of lenWidth bytes (1, 2 or 4)
// followed by that many bytes of payload, advancing the cursor past both.
func (b *Buffer) LengthPrefixed(lenWidth int) ([]byte, error) {
	var length int
	switch lenWidth {
	case 1:
		v, err := b.Uint8()
		if err != nil {
			return nil, err
		}
		length = int(v)
	case 2:
		v, err := b.Uint16()
		if err != nil {
			return nil, err
		}
		length = int(v)
	case 4:
		v, err := b.Uint32()
		if err != nil {
			return nil, err
		}
		length = int(v)
	default:
		return nil, fmt.Errorf("unsupported length width %d", lenWidth)
	}
	return b.Bytes(length)
}

// ASCIIString reads a length-prefixed field and decodes it as ASCII.
// Fails with ErrInvalidEncoding if any byte has the high bit set.
func (b *Buffer) ASCIIString(lenWidth int) (string, error) {
	raw, err := b.LengthPrefixed(lenWidth)
	if err != nil {
		return "", err
	}
	return DecodeASCII(raw)
}

// DecodeASCII converts raw bytes to a string, requiring pure 7-bit ASCII.
func DecodeASCII(raw []byte) (string, error) {
	for i, c := range raw {
		if c >= 0x80 {
			return "", fmt.Errorf("byte 0x%02x at index %d is not ASCII: %w", c, i, ErrInvalidEncoding)
		}
	}
	return string(raw), nil
}
