// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"github.com/pion/tlswire/pkg/protocol/codec"
)

// RecordLayer is a header plus the opaque fragment it frames
//
// https://tools.ietf.org/html/rfc5246#section-6.2.1
type RecordLayer struct {
	Header   Header
	Fragment []byte
}

// Marshal encodes the record, deriving ContentLen from the fragment.
func (r *RecordLayer) Marshal() ([]byte, error) {
	if len(r.Fragment) > MaxFragmentLength {
		return nil, ErrRecordOverflow
	}

	h := r.Header
	h.ContentLen = uint16(len(r.Fragment)) //nolint:gosec
	head, err := h.Marshal()
	if err != nil {
		return nil, err
	}

	return append(head, r.Fragment...), nil
}

// Unmarshal populates a single record. Bytes after the fragment are ignored.
func (r *RecordLayer) Unmarshal(data []byte) error {
	rec, err := readRecord(codec.NewReader(data))
	if err != nil {
		return err
	}
	*r = rec

	return nil
}

// Unpack splits a stream into its records. A record cut short anywhere
// fails the whole stream with codec.ErrTruncatedInput.
func Unpack(data []byte) ([]RecordLayer, error) {
	r := codec.NewReader(data)

	var out []RecordLayer
	for r.Remaining() > 0 {
		rec, err := readRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func readRecord(r *codec.Reader) (RecordLayer, error) {
	var h Header
	if err := h.read(r); err != nil {
		return RecordLayer{}, err
	}

	fragment, err := r.ReadFixed(int(h.ContentLen))
	if err != nil {
		return RecordLayer{}, err
	}

	return RecordLayer{Header: h, Fragment: fragment}, nil
}
