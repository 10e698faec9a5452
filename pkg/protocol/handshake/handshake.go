// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package handshake provides the TLS wire protocol for handshakes
package handshake

import (
	"fmt"

	"github.com/pion/tlswire/pkg/protocol/codec"
)

// Type is the unique identifier for each handshake message
// https://tools.ietf.org/html/rfc5246#section-7.4
type Type uint8

// Types of TLS Handshake messages we know about.
const (
	TypeClientHello Type = 1
	TypeServerHello Type = 2
)

// String returns the string representation of this type.
func (t Type) String() string {
	switch t {
	case TypeClientHello:
		return "ClientHello"
	case TypeServerHello:
		return "ServerHello"
	}

	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

// Message is the body of a Handshake datagram.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error

	Type() Type
}

// Unmarshal decodes data as the message identified by typ. It is the only
// place a typecode is mapped to a message. On error no message is returned.
func Unmarshal(typ Type, data []byte) (Message, error) {
	var msg Message
	switch typ {
	case TypeClientHello:
		msg = &MessageClientHello{}
	case TypeServerHello:
		msg = &MessageServerHello{}
	default:
		return nil, ErrUnknownMessageType
	}

	if err := msg.Unmarshal(data); err != nil {
		return nil, err
	}

	return msg, nil
}

// Handshake is a typecode followed by the message body. The length of the
// whole message is framed by the record layer.
type Handshake struct {
	Message Message
}

// Marshal encodes a handshake into a binary message.
func (h *Handshake) Marshal() ([]byte, error) {
	if h.Message == nil {
		return nil, errHandshakeMessageUnset
	}

	body, err := h.Message.Marshal()
	if err != nil {
		return nil, err
	}

	w := codec.NewWriter()
	w.WriteUint8(uint8(h.Message.Type()))
	if err := w.WriteFixed(body, len(body)); err != nil {
		return nil, err
	}

	return w.Bytes()
}

// Unmarshal decodes a handshake from a binary message.
func (h *Handshake) Unmarshal(data []byte) error {
	r := codec.NewReader(data)

	typ, err := r.ReadUint8()
	if err != nil {
		return err
	}

	body, err := r.ReadFixed(r.Remaining())
	if err != nil {
		return err
	}

	msg, err := Unmarshal(Type(typ), body)
	if err != nil {
		return err
	}
	h.Message = msg

	return nil
}
