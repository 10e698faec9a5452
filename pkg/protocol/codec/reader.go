// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codec

import "golang.org/x/crypto/cryptobyte"

// Reader consumes an immutable byte slice from the front. Every read
// either succeeds entirely or returns an error; it never reads past the end.
// A Reader that returned an error from a vector read should be discarded.
type Reader struct {
	s cryptobyte.String
}

// NewReader creates a Reader over b. b must not be modified while the Reader is in use.
func NewReader(b []byte) *Reader {
	return &Reader{s: cryptobyte.String(b)}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.s)
}

// ReadUint8 consumes one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	var v uint8
	if !r.s.ReadUint8(&v) {
		return 0, ErrTruncatedInput
	}

	return v, nil
}

// ReadUint16 consumes a big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	var v uint16
	if !r.s.ReadUint16(&v) {
		return 0, ErrTruncatedInput
	}

	return v, nil
}

// ReadUint24 consumes a big-endian uint24.
func (r *Reader) ReadUint24() (uint32, error) {
	var v uint32
	if !r.s.ReadUint24(&v) {
		return 0, ErrTruncatedInput
	}

	return v, nil
}

// ReadUint32 consumes a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	var v uint32
	if !r.s.ReadUint32(&v) {
		return 0, ErrTruncatedInput
	}

	return v, nil
}

// ReadFixed consumes exactly n bytes and returns a copy of them.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrTruncatedInput
	}

	var b []byte
	if !r.s.ReadBytes(&b, n) {
		return nil, ErrTruncatedInput
	}

	out := make([]byte, n)
	copy(out, b)

	return out, nil
}

// ReadVector consumes a length-tagged vector of elementSize-wide elements
// and returns its payload. The tag is checked against the element size and
// the [minElements, maxElements] bounds before any payload byte is consumed.
// The payload is returned as raw bytes; only ReadUint8Vector and
// ReadUint16Vector split it into elements, callers reading other widths
// must regroup it themselves.
func (r *Reader) ReadVector(tag TagSize, elementSize, minElements, maxElements int) ([]byte, error) {
	byteLen, err := r.readTag(tag)
	if err != nil {
		return nil, err
	}

	if _, err := elementCount(byteLen, elementSize, minElements, maxElements); err != nil {
		return nil, err
	}

	return r.ReadFixed(byteLen)
}

// ReadUint8Vector reads a vector of single-byte elements.
func (r *Reader) ReadUint8Vector(tag TagSize, minElements, maxElements int) ([]uint8, error) {
	return r.ReadVector(tag, 1, minElements, maxElements)
}

// ReadUint16Vector reads a vector of big-endian uint16 elements.
func (r *Reader) ReadUint16Vector(tag TagSize, minElements, maxElements int) ([]uint16, error) {
	payload, err := r.ReadVector(tag, 2, minElements, maxElements)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, 0, len(payload)/2)
	s := cryptobyte.String(payload)
	for !s.Empty() {
		var v uint16
		if !s.ReadUint16(&v) {
			return nil, ErrMalformedLength
		}
		out = append(out, v)
	}

	return out, nil
}

func (r *Reader) readTag(tag TagSize) (int, error) {
	switch tag {
	case Tag8:
		v, err := r.ReadUint8()

		return int(v), err
	case Tag16:
		v, err := r.ReadUint16()

		return int(v), err
	default:
		return 0, ErrInvalidTagSize
	}
}
