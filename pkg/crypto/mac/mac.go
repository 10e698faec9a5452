// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package mac provides keyed MAC handles selected by the algorithm names
// carried in a cipher suite.
package mac

import (
	"crypto/hmac"
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"github.com/pion/tlswire/pkg/protocol"
)

// ErrUnsupportedAlgorithm is returned for an algorithm name New does not know.
var ErrUnsupportedAlgorithm = &protocol.InternalError{Err: errors.New("unsupported mac algorithm")} //nolint:err113

// Algorithm names accepted by New.
const (
	MD5    = "MD5"
	SHA1   = "SHA1"
	SHA224 = "SHA224"
	SHA256 = "SHA256"
	SHA384 = "SHA384"
	SHA512 = "SHA512"
)

var algorithms = map[string]func() hash.Hash{ //nolint:gochecknoglobals
	MD5:    md5.New,
	SHA1:   sha1.New,
	SHA224: sha256.New224,
	SHA256: sha256.New,
	SHA384: sha512.New384,
	SHA512: sha512.New,
}

// Handle is a keyed MAC in progress.
type Handle interface {
	// Update feeds more data into the MAC.
	Update(data []byte)
	// Finalize returns the tag. The handle must not be used afterwards.
	Finalize() []byte
	// Size is the tag length in bytes.
	Size() int
}

type hmacHandle struct {
	h hash.Hash
}

// New returns an HMAC handle for algorithm keyed with key.
func New(algorithm string, key []byte) (Handle, error) {
	fn, ok := algorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}

	return &hmacHandle{h: hmac.New(fn, key)}, nil
}

// Supported returns true if New accepts algorithm.
func Supported(algorithm string) bool {
	_, ok := algorithms[algorithm]

	return ok
}

func (m *hmacHandle) Update(data []byte) {
	m.h.Write(data) //nolint:errcheck,gosec
}

func (m *hmacHandle) Finalize() []byte {
	return m.h.Sum(nil)
}

func (m *hmacHandle) Size() int {
	return m.h.Size()
}
