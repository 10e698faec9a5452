// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package rc4 provides the stream cipher named by the RC4 cipher suites.
package rc4

import (
	"crypto/rc4" //nolint:gosec
	"errors"

	"github.com/pion/tlswire/pkg/protocol"
)

// ErrInvalidKeySize is returned for keys outside 1..256 bytes.
var ErrInvalidKeySize = &protocol.InternalError{Err: errors.New("rc4 key must be between 1 and 256 bytes")} //nolint:err113

// Cipher owns the RC4 permutation state. Each call to Apply continues the
// key stream where the previous one stopped. A Cipher is not safe for
// concurrent use.
type Cipher struct {
	c *rc4.Cipher
}

// New runs the key schedule for key.
func New(key []byte) (*Cipher, error) {
	c, err := rc4.NewCipher(key)
	if err != nil {
		return nil, ErrInvalidKeySize
	}

	return &Cipher{c: c}, nil
}

// Apply encrypts or decrypts buf in place.
func (c *Cipher) Apply(buf []byte) {
	c.c.XORKeyStream(buf, buf)
}
