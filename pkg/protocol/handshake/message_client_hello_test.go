// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pion/tlswire/pkg/protocol/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawClientHelloFixture() []byte {
	return []byte{
		0x03, 0x03,             // version
		0x5f, 0x5e, 0x10, 0x00, // gmt_unix_time
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
		0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14,
		0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, // random_bytes
		0x00,                   // session_id
		0x00, 0x04, 0x00, 0x2f, // cipher_suites
		0x00, 0x8a,
		0x01, 0x00, // compression_methods
	}
}

func fixtureRandom() Random {
	var r Random
	r.GMTUnixTime = time.Unix(0x5f5e1000, 0)
	for i := range r.RandomBytes {
		r.RandomBytes[i] = byte(i + 1)
	}

	return r
}

func TestHandshakeMessageClientHello(t *testing.T) {
	rawClientHello := rawClientHelloFixture()
	parsedClientHello := &MessageClientHello{
		Version:            protocol.Version{Major: 3, Minor: 3},
		Random:             fixtureRandom(),
		CipherSuiteIDs:     []uint16{0x002f, 0x008a},
		CompressionMethods: []uint8{CompressionMethodNull},
	}

	c := &MessageClientHello{}
	require.NoError(t, c.Unmarshal(rawClientHello))
	assert.Equal(t, parsedClientHello, c)

	raw, err := c.Marshal()
	require.NoError(t, err)
	assert.Equal(t, rawClientHello, raw)
}

func TestHandshakeMessageClientHelloExtensions(t *testing.T) {
	withExt := append(rawClientHelloFixture(), 0x00, 0x04, 0xff, 0x01, 0x00, 0x00)

	c := &MessageClientHello{}
	require.NoError(t, c.Unmarshal(withExt))
	assert.Equal(t, []byte{0xff, 0x01, 0x00, 0x00}, c.Extensions)

	raw, err := c.Marshal()
	require.NoError(t, err)
	assert.Equal(t, withExt, raw)

	emptyExt := append(rawClientHelloFixture(), 0x00, 0x00)
	require.NoError(t, c.Unmarshal(emptyExt))
	assert.NotNil(t, c.Extensions)
	assert.Empty(t, c.Extensions)

	raw, err = c.Marshal()
	require.NoError(t, err)
	assert.Equal(t, emptyExt, raw)
}

func TestHandshakeMessageClientHelloErrors(t *testing.T) {
	base := rawClientHelloFixture()
	suitesAt := 2 + RandomLength + 1

	withSuites := func(suites ...byte) []byte {
		out := append([]byte{}, base[:suitesAt]...)
		out = append(out, suites...)

		return append(out, 0x01, 0x00)
	}

	cases := map[string]struct {
		raw []byte
		err error
	}{
		"odd cipher suite length": {withSuites(0x00, 0x03, 0x00, 0x2f, 0x00), codec.ErrMalformedLength},
		"no cipher suites":        {withSuites(0x00, 0x00), codec.ErrVectorBoundsViolation},
		"no compression methods": {
			append(append([]byte{}, base[:len(base)-2]...), 0x00), codec.ErrVectorBoundsViolation,
		},
		"session id too long": {
			append(append(append([]byte{}, base[:suitesAt-1]...), 0x21), make([]byte, 33)...),
			codec.ErrVectorBoundsViolation,
		},
		"trailing data": {append(append([]byte{}, base...), 0x00, 0x00, 0x00), ErrTrailingData},
		"short extensions": {append(append([]byte{}, base...), 0x00, 0x04, 0x00), codec.ErrTruncatedInput},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			c := &MessageClientHello{}
			assert.ErrorIs(t, c.Unmarshal(tc.raw), tc.err)
			assert.Equal(t, &MessageClientHello{}, c, "no partial message on error")
		})
	}
}

func TestHandshakeMessageClientHelloTruncated(t *testing.T) {
	raw := rawClientHelloFixture()
	for i := 0; i < len(raw); i++ {
		c := &MessageClientHello{}
		assert.ErrorIs(t, c.Unmarshal(raw[:i]), codec.ErrTruncatedInput, "length %d", i)
	}
}

func TestHandshakeMessageClientHelloMarshalBounds(t *testing.T) {
	valid := func() *MessageClientHello {
		return &MessageClientHello{
			Version:            protocol.Latest(),
			Random:             fixtureRandom(),
			CipherSuiteIDs:     []uint16{0x002f},
			CompressionMethods: []uint8{CompressionMethodNull},
		}
	}

	c := valid()
	c.CipherSuiteIDs = make([]uint16, 32768)
	_, err := c.Marshal()
	assert.ErrorIs(t, err, codec.ErrVectorBoundsViolation)

	c = valid()
	c.CipherSuiteIDs = nil
	_, err = c.Marshal()
	assert.ErrorIs(t, err, codec.ErrVectorBoundsViolation)

	c = valid()
	c.CompressionMethods = make([]uint8, 256)
	_, err = c.Marshal()
	assert.ErrorIs(t, err, codec.ErrVectorBoundsViolation)

	c = valid()
	c.SessionID = make([]byte, 33)
	_, err = c.Marshal()
	assert.ErrorIs(t, err, codec.ErrVectorBoundsViolation)

	c = valid()
	c.Extensions = make([]byte, 0x10000)
	_, err = c.Marshal()
	assert.ErrorIs(t, err, codec.ErrVectorBoundsViolation)

	c = valid()
	c.CipherSuiteIDs = make([]uint16, 32767)
	raw, err := c.Marshal()
	require.NoError(t, err)

	parsed := &MessageClientHello{}
	require.NoError(t, parsed.Unmarshal(raw))
	assert.Len(t, parsed.CipherSuiteIDs, 32767)
}

func TestHandshakeMessageClientHelloRoundTrip(t *testing.T) {
	cases := map[string]*MessageClientHello{
		"zero value": {
			CipherSuiteIDs:     []uint16{0x002f},
			CompressionMethods: []uint8{CompressionMethodNull},
		},
		"minimal": {
			Version:            protocol.Named(protocol.SSL30),
			Random:             fixtureRandom(),
			CipherSuiteIDs:     []uint16{0x0005},
			CompressionMethods: []uint8{0},
		},
		"full session id": {
			Version:            protocol.Named(protocol.TLS11),
			Random:             fixtureRandom(),
			SessionID:          make([]byte, 32),
			CipherSuiteIDs:     []uint16{0x002f, 0x0035, 0xc02b},
			CompressionMethods: []uint8{1, 0},
			Extensions:         []byte{0x00, 0x17, 0x00, 0x00},
		},
		"unknown version": {
			Version:            protocol.Version{Major: 3, Minor: 9},
			Random:             fixtureRandom(),
			SessionID:          []byte{0xde, 0xad},
			CipherSuiteIDs:     []uint16{0xffff},
			CompressionMethods: []uint8{0},
			Extensions:         []byte{},
		},
	}

	for name, m := range cases {
		m := m
		t.Run(name, func(t *testing.T) {
			raw, err := m.Marshal()
			require.NoError(t, err)

			parsed, err := Unmarshal(m.Type(), raw)
			require.NoError(t, err)
			if diff := cmp.Diff(Message(m), parsed); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
