// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package codec reads and writes the TLS presentation language: big-endian
// integers, fixed opaque fields and length-tagged vectors.
//
// https://tools.ietf.org/html/rfc5246#section-4
package codec

// TagSize is the width in bytes of a vector's length tag.
// The tag always carries the byte length of the payload, never an element count.
type TagSize int

// TagSize enums.
const (
	Tag8  TagSize = 1
	Tag16 TagSize = 2
)

func (t TagSize) max() (int, error) {
	switch t {
	case Tag8:
		return 0xff, nil
	case Tag16:
		return 0xffff, nil
	default:
		return 0, ErrInvalidTagSize
	}
}

// elementCount validates byteLen against the vector's element size and bounds.
func elementCount(byteLen, elementSize, minElements, maxElements int) (int, error) {
	if elementSize <= 0 {
		return 0, errInvalidElementSize
	}
	if byteLen%elementSize != 0 {
		return 0, ErrMalformedLength
	}

	count := byteLen / elementSize
	if count < minElements || count > maxElements {
		return 0, ErrVectorBoundsViolation
	}

	return count, nil
}
