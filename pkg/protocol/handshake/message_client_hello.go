// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pion/tlswire/pkg/protocol/codec"
)

/*
MessageClientHello is for when a client first connects to a server it is
required to send the client hello as its first message.  The client can also send a
client hello in response to a hello request or on its own
initiative in order to renegotiate the security parameters in an
existing connection.

https://tools.ietf.org/html/rfc5246#section-7.4.1.2
*/
type MessageClientHello struct {
	Version   protocol.Version
	Random    Random
	SessionID []byte

	CipherSuiteIDs     []uint16
	CompressionMethods []uint8

	// Extensions is the raw extension block without its length.
	// nil means the block is absent.
	Extensions []byte
}

// Type returns the Handshake Type.
func (m MessageClientHello) Type() Type {
	return TypeClientHello
}

// Marshal encodes the Handshake.
func (m *MessageClientHello) Marshal() ([]byte, error) {
	w := codec.NewWriter()

	prefix := helloPrefix{version: m.Version, random: m.Random, sessionID: m.SessionID}
	if err := prefix.marshal(w); err != nil {
		return nil, err
	}
	if err := w.WriteUint16Vector(codec.Tag16, cipherSuitesMin, cipherSuitesMax, m.CipherSuiteIDs); err != nil {
		return nil, err
	}
	if err := w.WriteUint8Vector(
		codec.Tag8, compressionMethodsMin, compressionMethodsMax, m.CompressionMethods,
	); err != nil {
		return nil, err
	}
	if err := marshalExtensions(w, m.Extensions); err != nil {
		return nil, err
	}

	return w.Bytes()
}

// Unmarshal populates the message from encoded data. m is left untouched on error.
func (m *MessageClientHello) Unmarshal(data []byte) error {
	r := codec.NewReader(data)

	var prefix helloPrefix
	if err := prefix.unmarshal(r); err != nil {
		return err
	}

	cipherSuiteIDs, err := r.ReadUint16Vector(codec.Tag16, cipherSuitesMin, cipherSuitesMax)
	if err != nil {
		return err
	}

	compressionMethods, err := r.ReadUint8Vector(codec.Tag8, compressionMethodsMin, compressionMethodsMax)
	if err != nil {
		return err
	}

	extensions, err := unmarshalExtensions(r)
	if err != nil {
		return err
	}

	*m = MessageClientHello{
		Version:            prefix.version,
		Random:             prefix.random,
		SessionID:          prefix.sessionID,
		CipherSuiteIDs:     cipherSuiteIDs,
		CompressionMethods: compressionMethods,
		Extensions:         extensions,
	}

	return nil
}
