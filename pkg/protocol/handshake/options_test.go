// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pion/tlswire/pkg/crypto/ciphersuite"
	"github.com/pion/tlswire/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deterministicSource(b byte) *bytes.Reader {
	return bytes.NewReader(bytes.Repeat([]byte{b}, 4*RandomBytesLength))
}

func TestNewClientHelloDefaults(t *testing.T) {
	c, err := NewClientHello(WithRandomSource(deterministicSource(0x11)))
	require.NoError(t, err)

	assert.Equal(t, protocol.Latest(), c.Version)
	assert.Nil(t, c.SessionID)
	assert.Equal(t, ciphersuite.Codes(ciphersuite.DefaultIDs()), c.CipherSuiteIDs)
	assert.Equal(t, []uint8{CompressionMethodNull}, c.CompressionMethods)
	assert.Nil(t, c.Extensions)
	assert.Equal(t, bytes.Repeat([]byte{0x11}, RandomBytesLength), c.Random.RandomBytes[:])
}

func TestNewClientHelloCryptoRand(t *testing.T) {
	a, err := NewClientHello()
	require.NoError(t, err)
	b, err := NewClientHello()
	require.NoError(t, err)

	assert.NotEqual(t, a.Random.RandomBytes, b.Random.RandomBytes)
}

func TestNewClientHelloOptions(t *testing.T) {
	c, err := NewClientHello(
		WithVersion(protocol.Named(protocol.TLS10)),
		WithCipherSuites(ciphersuite.TLS_PSK_WITH_RC4_128_SHA),
		WithCompressionMethods(1, 0),
		WithSessionID([]byte{0x01, 0x02}),
		WithRandomSource(deterministicSource(0x22)),
	)
	require.NoError(t, err)

	assert.Equal(t, protocol.Named(protocol.TLS10), c.Version)
	assert.Equal(t, []uint16{0x008a}, c.CipherSuiteIDs)
	assert.Equal(t, []uint8{1, 0}, c.CompressionMethods)
	assert.Equal(t, []byte{0x01, 0x02}, c.SessionID)
}

func TestNewClientHelloInvalidOptions(t *testing.T) {
	cases := map[string]struct {
		opt ClientHelloOption
		err error
	}{
		"no suites":         {WithCipherSuites(), errNoCipherSuites},
		"no compression":    {WithCompressionMethods(), errNoCompressionMethods},
		"long session id":   {WithSessionID(make([]byte, 33)), errSessionIDTooLong},
		"nil random source": {WithRandomSource(nil), errNilRandomSource},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			c, err := NewClientHello(tc.opt)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, c)
		})
	}
}

func TestNewClientHelloRoundTrip(t *testing.T) {
	c, err := NewClientHello(WithRandomSource(deterministicSource(0x33)))
	require.NoError(t, err)

	raw, err := c.Marshal()
	require.NoError(t, err)

	parsed, err := Unmarshal(c.Type(), raw)
	require.NoError(t, err)
	if diff := cmp.Diff(Message(c), parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewServerHello(t *testing.T) {
	client, err := NewClientHello(
		WithVersion(protocol.Version{Major: 3, Minor: 9}),
		WithRandomSource(deterministicSource(0x44)),
	)
	require.NoError(t, err)

	suite, err := ciphersuite.Select(ciphersuite.IDs(client.CipherSuiteIDs), ciphersuite.DefaultIDs())
	require.NoError(t, err)

	s, err := NewServerHello(client, suite, CompressionMethodNull, WithRandomSource(deterministicSource(0x55)))
	require.NoError(t, err)

	assert.Equal(t, protocol.Latest(), s.Version, "unknown client version falls back to latest")
	assert.Equal(t, uint16(suite), s.CipherSuiteID)
	assert.Equal(t, CompressionMethodNull, s.CompressionMethod)
	assert.Equal(t, bytes.Repeat([]byte{0x55}, RandomBytesLength), s.Random.RandomBytes[:])

	raw, err := s.Marshal()
	require.NoError(t, err)
	parsed, err := Unmarshal(s.Type(), raw)
	require.NoError(t, err)
	if diff := cmp.Diff(Message(s), parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewServerHelloSupportedVersions(t *testing.T) {
	client, err := NewClientHello(WithRandomSource(deterministicSource(0x66)))
	require.NoError(t, err)

	s, err := NewServerHello(
		client, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA, CompressionMethodNull,
		WithSupportedVersions(protocol.Named(protocol.TLS10), protocol.Named(protocol.TLS11)),
		WithSessionID([]byte{0x09}),
	)
	require.NoError(t, err)
	assert.Equal(t, protocol.Named(protocol.TLS11), s.Version)
	assert.Equal(t, []byte{0x09}, s.SessionID)

	_, err = NewServerHello(
		client, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA, CompressionMethodNull,
		WithSupportedVersions(protocol.Version{Major: 3, Minor: 4}),
	)
	assert.ErrorIs(t, err, protocol.ErrUnsupportedProtocolVersion)
}

func TestNewServerHelloErrors(t *testing.T) {
	client, err := NewClientHello(
		WithCipherSuites(ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA),
		WithRandomSource(deterministicSource(0x77)),
	)
	require.NoError(t, err)

	_, err = NewServerHello(nil, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA, CompressionMethodNull)
	assert.ErrorIs(t, err, errClientHelloUnset)

	_, err = NewServerHello(client, ciphersuite.TLS_PSK_WITH_RC4_128_SHA, CompressionMethodNull)
	assert.ErrorIs(t, err, ErrCipherSuiteNotOffered)

	_, err = NewServerHello(client, 0x9999, CompressionMethodNull)
	assert.ErrorIs(t, err, ciphersuite.ErrUnknownCiphersuite)

	_, err = NewServerHello(client, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA, 1)
	assert.ErrorIs(t, err, ErrCompressionMethodNotOffered)

	_, err = NewServerHello(
		client, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA, CompressionMethodNull,
		WithRandomSource(bytes.NewReader(nil)),
	)
	assert.Error(t, err)
}
