// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"fmt"

	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pion/tlswire/pkg/protocol/codec"
)

// ContentType represents the type of a record's fragment
// https://tools.ietf.org/html/rfc5246#section-6.2.1
type ContentType uint8

// ContentType enums.
const (
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
)

// Known returns true for the four content types defined by TLS 1.2.
func (c ContentType) Known() bool {
	return c >= ContentTypeChangeCipherSpec && c <= ContentTypeApplicationData
}

func (c ContentType) String() string {
	switch c {
	case ContentTypeChangeCipherSpec:
		return "ChangeCipherSpec"
	case ContentTypeAlert:
		return "Alert"
	case ContentTypeHandshake:
		return "Handshake"
	case ContentTypeApplicationData:
		return "ApplicationData"
	}

	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// Record layer sizes.
const (
	HeaderSize = 5
	// MaxFragmentLength is the TLSCiphertext bound, 2^14 + 2048.
	MaxFragmentLength = 1<<14 + 2048
)

// Header is the fixed prefix of every TLS record.
type Header struct {
	ContentType ContentType
	Version     protocol.Version
	ContentLen  uint16
}

// Marshal encodes a record header.
func (h *Header) Marshal() ([]byte, error) {
	if !h.ContentType.Known() {
		return nil, ErrInvalidContentType
	}
	if h.ContentLen > MaxFragmentLength {
		return nil, ErrRecordOverflow
	}

	w := codec.NewWriter()
	w.WriteUint8(uint8(h.ContentType))
	w.WriteUint8(h.Version.Major)
	w.WriteUint8(h.Version.Minor)
	w.WriteUint16(h.ContentLen)

	return w.Bytes()
}

// Unmarshal populates a record header from the first HeaderSize bytes of data.
func (h *Header) Unmarshal(data []byte) error {
	return h.read(codec.NewReader(data))
}

func (h *Header) read(r *codec.Reader) error {
	ct, err := r.ReadUint8()
	if err != nil {
		return err
	}
	if !ContentType(ct).Known() {
		return ErrInvalidContentType
	}

	major, err := r.ReadUint8()
	if err != nil {
		return err
	}
	minor, err := r.ReadUint8()
	if err != nil {
		return err
	}
	length, err := r.ReadUint16()
	if err != nil {
		return err
	}
	if length > MaxFragmentLength {
		return ErrRecordOverflow
	}

	*h = Header{
		ContentType: ContentType(ct),
		Version:     protocol.Version{Major: major, Minor: minor},
		ContentLen:  length,
	}

	return nil
}
