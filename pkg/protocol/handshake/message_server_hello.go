// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pion/tlswire/pkg/protocol/codec"
)

/*
MessageServerHello is sent in response to a ClientHello
message when it was able to find an acceptable set of algorithms.
If it cannot find such a match, it will respond with a handshake
failure alert.

https://tools.ietf.org/html/rfc5246#section-7.4.1.3
*/
type MessageServerHello struct {
	Version   protocol.Version
	Random    Random
	SessionID []byte

	CipherSuiteID     uint16
	CompressionMethod uint8

	// Extensions is the raw extension block without its length.
	// nil means the block is absent.
	Extensions []byte
}

// Type returns the Handshake Type.
func (m MessageServerHello) Type() Type {
	return TypeServerHello
}

// Marshal encodes the Handshake.
func (m *MessageServerHello) Marshal() ([]byte, error) {
	w := codec.NewWriter()

	prefix := helloPrefix{version: m.Version, random: m.Random, sessionID: m.SessionID}
	if err := prefix.marshal(w); err != nil {
		return nil, err
	}
	w.WriteUint16(m.CipherSuiteID)
	w.WriteUint8(m.CompressionMethod)
	if err := marshalExtensions(w, m.Extensions); err != nil {
		return nil, err
	}

	return w.Bytes()
}

// Unmarshal populates the message from encoded data. m is left untouched on error.
func (m *MessageServerHello) Unmarshal(data []byte) error {
	r := codec.NewReader(data)

	var prefix helloPrefix
	if err := prefix.unmarshal(r); err != nil {
		return err
	}

	cipherSuiteID, err := r.ReadUint16()
	if err != nil {
		return err
	}

	compressionMethod, err := r.ReadUint8()
	if err != nil {
		return err
	}

	extensions, err := unmarshalExtensions(r)
	if err != nil {
		return err
	}

	*m = MessageServerHello{
		Version:           prefix.version,
		Random:            prefix.random,
		SessionID:         prefix.sessionID,
		CipherSuiteID:     cipherSuiteID,
		CompressionMethod: compressionMethod,
		Extensions:        extensions,
	}

	return nil
}
