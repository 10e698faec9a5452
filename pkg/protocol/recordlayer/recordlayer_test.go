// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"testing"

	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pion/tlswire/pkg/protocol/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpack(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Data      []byte
		Want      []RecordLayer
		WantError error
	}{
		{
			Name: "Change Cipher Spec, single record",
			Data: []byte{0x14, 0x03, 0x03, 0x00, 0x01, 0x01},
			Want: []RecordLayer{
				{
					Header:   Header{ContentType: ContentTypeChangeCipherSpec, Version: protocol.Named(protocol.TLS12), ContentLen: 1},
					Fragment: []byte{0x01},
				},
			},
		},
		{
			Name: "Handshake then alert",
			Data: []byte{
				0x16, 0x03, 0x01, 0x00, 0x02, 0xaa, 0xbb,
				0x15, 0x03, 0x03, 0x00, 0x02, 0x02, 0x28,
			},
			Want: []RecordLayer{
				{
					Header:   Header{ContentType: ContentTypeHandshake, Version: protocol.Named(protocol.TLS10), ContentLen: 2},
					Fragment: []byte{0xaa, 0xbb},
				},
				{
					Header:   Header{ContentType: ContentTypeAlert, Version: protocol.Named(protocol.TLS12), ContentLen: 2},
					Fragment: []byte{0x02, 0x28},
				},
			},
		},
		{
			Name:      "Short header",
			Data:      []byte{0x16, 0x03},
			WantError: codec.ErrTruncatedInput,
		},
		{
			Name:      "Declared length longer than data",
			Data:      []byte{0x16, 0x03, 0x03, 0x00, 0xff, 0x01},
			WantError: codec.ErrTruncatedInput,
		},
		{
			Name:      "Not TLS",
			Data:      []byte("GET / HTTP/1.1\r\n"),
			WantError: ErrInvalidContentType,
		},
		{
			Name:      "Oversized fragment",
			Data:      []byte{0x17, 0x03, 0x03, 0xff, 0xff},
			WantError: ErrRecordOverflow,
		},
	} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			records, err := Unpack(test.Data)
			if test.WantError != nil {
				assert.ErrorIs(t, err, test.WantError)
				assert.Nil(t, records)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.Want, records)
		})
	}
}

func TestRecordLayerRoundTrip(t *testing.T) {
	in := RecordLayer{
		Header:   Header{ContentType: ContentTypeHandshake, Version: protocol.Named(protocol.TLS12)},
		Fragment: []byte{0x01, 0x00, 0x00, 0x00},
	}

	raw, err := in.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x16, 0x03, 0x03, 0x00, 0x04, 0x01, 0x00, 0x00, 0x00}, raw)

	var out RecordLayer
	require.NoError(t, out.Unmarshal(raw))
	in.Header.ContentLen = 4
	assert.Equal(t, in, out)
}

func TestHeaderMarshalErrors(t *testing.T) {
	_, err := (&Header{ContentType: 99}).Marshal()
	assert.ErrorIs(t, err, ErrInvalidContentType)

	_, err = (&Header{ContentType: ContentTypeAlert, ContentLen: MaxFragmentLength + 1}).Marshal()
	assert.ErrorIs(t, err, ErrRecordOverflow)

	_, err = (&RecordLayer{
		Header:   Header{ContentType: ContentTypeApplicationData},
		Fragment: make([]byte, MaxFragmentLength+1),
	}).Marshal()
	assert.ErrorIs(t, err, ErrRecordOverflow)
}

func TestContentTypeString(t *testing.T) {
	assert.Equal(t, "Handshake", ContentTypeHandshake.String())
	assert.Equal(t, "Unknown(71)", ContentType('G').String())
}
