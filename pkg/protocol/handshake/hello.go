// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pion/tlswire/pkg/protocol/codec"
)

// Field bounds shared by ClientHello and ServerHello.
const (
	sessionIDMaxLength      = 32
	cipherSuitesMin         = 1
	cipherSuitesMax         = 32767
	compressionMethodsMin   = 1
	compressionMethodsMax   = 255
	extensionsMaxByteLength = 0xffff
)

// CompressionMethodNull is the only compression method defined for TLS 1.2.
const CompressionMethodNull uint8 = 0

// helloPrefix is the leading part both hellos share:
// version, random and session id.
type helloPrefix struct {
	version   protocol.Version
	random    Random
	sessionID []byte
}

func (p *helloPrefix) marshal(w *codec.Writer) error {
	w.WriteUint8(p.version.Major)
	w.WriteUint8(p.version.Minor)

	random, err := p.random.MarshalFixed()
	if err != nil {
		return err
	}
	if err := w.WriteFixed(random[:], RandomLength); err != nil {
		return err
	}

	return w.WriteUint8Vector(codec.Tag8, 0, sessionIDMaxLength, p.sessionID)
}

func (p *helloPrefix) unmarshal(r *codec.Reader) error {
	major, err := r.ReadUint8()
	if err != nil {
		return err
	}
	minor, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.version = protocol.Version{Major: major, Minor: minor}

	raw, err := r.ReadFixed(RandomLength)
	if err != nil {
		return err
	}
	var random [RandomLength]byte
	copy(random[:], raw)
	p.random.UnmarshalFixed(random)

	sessionID, err := r.ReadUint8Vector(codec.Tag8, 0, sessionIDMaxLength)
	if err != nil {
		return err
	}
	// An empty session id is always nil.
	if len(sessionID) > 0 {
		p.sessionID = sessionID
	}

	return nil
}

// Extensions are carried as one opaque block. A nil block is left off the
// wire entirely, an empty one is written as a zero length.
func marshalExtensions(w *codec.Writer, extensions []byte) error {
	if extensions == nil {
		return nil
	}

	return w.WriteVector(codec.Tag16, 1, 0, extensionsMaxByteLength, extensions)
}

func unmarshalExtensions(r *codec.Reader) ([]byte, error) {
	if r.Remaining() == 0 {
		return nil, nil
	}

	extensions, err := r.ReadVector(codec.Tag16, 1, 0, extensionsMaxByteLength)
	if err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, ErrTrailingData
	}

	return extensions, nil
}

func containsUint16(haystack []uint16, needle uint16) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}

	return false
}

func containsUint8(haystack []uint8, needle uint8) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}

	return false
}
