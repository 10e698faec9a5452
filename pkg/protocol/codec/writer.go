// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codec

import "golang.org/x/crypto/cryptobyte"

// Writer appends TLS encoded values to a growing buffer. The first failed
// write is remembered, later writes become no-ops and Bytes reports it.
type Writer struct {
	b   cryptobyte.Builder
	err error
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteUint8 appends one byte.
func (w *Writer) WriteUint8(v uint8) {
	if w.err == nil {
		w.b.AddUint8(v)
	}
}

// WriteUint16 appends a big-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	if w.err == nil {
		w.b.AddUint16(v)
	}
}

// WriteUint24 appends the low 24 bits of v, big-endian.
func (w *Writer) WriteUint24(v uint32) {
	if w.err == nil {
		w.b.AddUint24(v)
	}
}

// WriteUint32 appends a big-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	if w.err == nil {
		w.b.AddUint32(v)
	}
}

// WriteFixed appends b, which must be exactly expectedLen bytes long.
func (w *Writer) WriteFixed(b []byte, expectedLen int) error {
	if w.err != nil {
		return w.err
	}
	if len(b) != expectedLen {
		return w.fail(ErrLengthMismatch)
	}
	w.b.AddBytes(b)

	return nil
}

// WriteVector appends payload as a vector of elementSize-wide elements
// preceded by a tag holding its byte length.
func (w *Writer) WriteVector(tag TagSize, elementSize, minElements, maxElements int, payload []byte) error {
	if w.err != nil {
		return w.err
	}

	if _, err := elementCount(len(payload), elementSize, minElements, maxElements); err != nil {
		return w.fail(err)
	}

	limit, err := tag.max()
	if err != nil {
		return w.fail(err)
	}
	if len(payload) > limit {
		return w.fail(ErrTagOverflow)
	}

	switch tag {
	case Tag8:
		w.b.AddUint8(uint8(len(payload)))
	case Tag16:
		w.b.AddUint16(uint16(len(payload)))
	}
	w.b.AddBytes(payload)

	return nil
}

// WriteUint8Vector appends a vector of single-byte elements.
func (w *Writer) WriteUint8Vector(tag TagSize, minElements, maxElements int, v []uint8) error {
	return w.WriteVector(tag, 1, minElements, maxElements, v)
}

// WriteUint16Vector appends a vector of big-endian uint16 elements.
func (w *Writer) WriteUint16Vector(tag TagSize, minElements, maxElements int, v []uint16) error {
	var payload cryptobyte.Builder
	for _, e := range v {
		payload.AddUint16(e)
	}

	raw, err := payload.Bytes()
	if err != nil {
		return w.fail(err)
	}

	return w.WriteVector(tag, 2, minElements, maxElements, raw)
}

// Bytes returns the encoded buffer, or the first error any write produced.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	return w.b.Bytes()
}

func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}

	return w.err
}
