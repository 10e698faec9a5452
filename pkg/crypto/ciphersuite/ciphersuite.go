// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ciphersuite maps TLS cipher suite codes to the algorithms they name.
package ciphersuite

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pion/tlswire/pkg/protocol"
)

// Typed errors.
var (
	// ErrUnknownCiphersuite is returned for a code that is not in the table.
	ErrUnknownCiphersuite = &protocol.FatalError{Err: errors.New("unknown cipher suite")} //nolint:err113
	// ErrUnsupportedCipher is returned when a cipher and key length have no canonical label.
	ErrUnsupportedCipher = &protocol.InternalError{Err: errors.New("unsupported cipher")} //nolint:err113
	// ErrUnsupportedMac is returned when a MAC algorithm has no canonical label.
	ErrUnsupportedMac = &protocol.InternalError{Err: errors.New("unsupported mac")} //nolint:err113
	// ErrNoSharedCiphersuite is returned when the peer offered none of the preferred suites.
	ErrNoSharedCiphersuite = &protocol.FatalError{Err: errors.New("client+server do not support any shared cipher suites")} //nolint:err113
)

// ID is the 16-bit code a cipher suite is identified by on the wire.
//
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xml#tls-parameters-4
type ID uint16

// Supported Cipher Suites
const (
	TLS_RSA_WITH_RC4_128_SHA         ID = 0x0005 //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_128_CBC_SHA     ID = 0x002f //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA ID = 0x0033 //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_256_CBC_SHA     ID = 0x0035 //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA ID = 0x0039 //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_128_CBC_SHA256  ID = 0x003c //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_256_CBC_SHA256  ID = 0x003d //nolint:revive,stylecheck
	TLS_PSK_WITH_RC4_128_SHA         ID = 0x008a //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_128_CBC_SHA     ID = 0x008c //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_256_CBC_SHA     ID = 0x008d //nolint:revive,stylecheck
)

// Algorithm names carried in a Suite.
const (
	KeyExchangeRSA = "RSA"
	KeyExchangeDHE = "DHE"
	KeyExchangePSK = "PSK"

	CipherAES = "AES"
	CipherRC4 = "RC4"

	MACSHA1   = "SHA1"
	MACSHA256 = "SHA256"
)

// Suite is a specific combination of key agreement, authentication, cipher
// and MAC function. KeyLength is in bytes.
type Suite struct {
	ID          ID
	KeyExchange string
	Signature   string

	// Cipher and KeyLength select the record cipher; RC4 keys go to rc4.New.
	Cipher    string
	KeyLength uint8

	// MAC is the algorithm name accepted by mac.New.
	MAC string
}

var suites = map[ID]Suite{ //nolint:gochecknoglobals
	TLS_RSA_WITH_RC4_128_SHA:         {TLS_RSA_WITH_RC4_128_SHA, KeyExchangeRSA, KeyExchangeRSA, CipherRC4, 16, MACSHA1},
	TLS_RSA_WITH_AES_128_CBC_SHA:     {TLS_RSA_WITH_AES_128_CBC_SHA, KeyExchangeRSA, KeyExchangeRSA, CipherAES, 16, MACSHA1},
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA: {TLS_DHE_RSA_WITH_AES_128_CBC_SHA, KeyExchangeDHE, KeyExchangeRSA, CipherAES, 16, MACSHA1},
	TLS_RSA_WITH_AES_256_CBC_SHA:     {TLS_RSA_WITH_AES_256_CBC_SHA, KeyExchangeRSA, KeyExchangeRSA, CipherAES, 32, MACSHA1},
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA: {TLS_DHE_RSA_WITH_AES_256_CBC_SHA, KeyExchangeDHE, KeyExchangeRSA, CipherAES, 32, MACSHA1},
	TLS_RSA_WITH_AES_128_CBC_SHA256:  {TLS_RSA_WITH_AES_128_CBC_SHA256, KeyExchangeRSA, KeyExchangeRSA, CipherAES, 16, MACSHA256},
	TLS_RSA_WITH_AES_256_CBC_SHA256:  {TLS_RSA_WITH_AES_256_CBC_SHA256, KeyExchangeRSA, KeyExchangeRSA, CipherAES, 32, MACSHA256},
	TLS_PSK_WITH_RC4_128_SHA:         {TLS_PSK_WITH_RC4_128_SHA, KeyExchangePSK, KeyExchangePSK, CipherRC4, 16, MACSHA1},
	TLS_PSK_WITH_AES_128_CBC_SHA:     {TLS_PSK_WITH_AES_128_CBC_SHA, KeyExchangePSK, KeyExchangePSK, CipherAES, 16, MACSHA1},
	TLS_PSK_WITH_AES_256_CBC_SHA:     {TLS_PSK_WITH_AES_256_CBC_SHA, KeyExchangePSK, KeyExchangePSK, CipherAES, 32, MACSHA1},
}

type cipherKey struct {
	name      string
	keyLength uint8
}

var cipherLabels = map[cipherKey]string{ //nolint:gochecknoglobals
	{CipherAES, 16}: "AES_128",
	{CipherAES, 32}: "AES_256",
	{CipherRC4, 16}: "RC4_128",
}

var macLabels = map[string]string{ //nolint:gochecknoglobals
	MACSHA1:   "SHA",
	MACSHA256: "SHA256",
}

// FromID returns the Suite for id.
func FromID(id ID) (Suite, error) {
	s, ok := suites[id]
	if !ok {
		return Suite{}, ErrUnknownCiphersuite
	}

	return s, nil
}

// Supported returns true if id is in the table.
func Supported(id ID) bool {
	_, ok := suites[id]

	return ok
}

// All returns every known Suite ordered by ID.
func All() []Suite {
	out := make([]Suite, 0, len(suites))
	for _, s := range suites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// DefaultIDs are the suites a client proposes, in order of preference.
func DefaultIDs() []ID {
	return []ID{
		TLS_RSA_WITH_AES_128_CBC_SHA256,
		TLS_RSA_WITH_AES_256_CBC_SHA256,
		TLS_DHE_RSA_WITH_AES_128_CBC_SHA,
		TLS_DHE_RSA_WITH_AES_256_CBC_SHA,
		TLS_RSA_WITH_AES_128_CBC_SHA,
		TLS_RSA_WITH_AES_256_CBC_SHA,
	}
}

// Select returns the first entry of preferred that also appears in offered
// and is in the table.
func Select(offered, preferred []ID) (ID, error) {
	for _, p := range preferred {
		if !Supported(p) {
			continue
		}
		for _, o := range offered {
			if o == p {
				return p, nil
			}
		}
	}

	return 0, ErrNoSharedCiphersuite
}

// Name renders the canonical name of the suite, such as TLS_RSA_WITH_AES_128_SHA.
// The key exchange is left out when it matches the signature algorithm.
func (s Suite) Name() (string, error) {
	cipher, ok := cipherLabels[cipherKey{s.Cipher, s.KeyLength}]
	if !ok {
		return "", fmt.Errorf("%w: %s with %d byte key", ErrUnsupportedCipher, s.Cipher, s.KeyLength)
	}

	mac, ok := macLabels[s.MAC]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMac, s.MAC)
	}

	var b strings.Builder
	b.WriteString("TLS_")
	if s.KeyExchange != s.Signature {
		b.WriteString(s.KeyExchange)
		b.WriteString("_")
	}
	b.WriteString(s.Signature)
	b.WriteString("_WITH_")
	b.WriteString(cipher)
	b.WriteString("_")
	b.WriteString(mac)

	return b.String(), nil
}

// String is the canonical name, or the hex code when the suite can not be named.
func (s Suite) String() string {
	name, err := s.Name()
	if err != nil {
		return fmt.Sprintf("0x%04X", uint16(s.ID))
	}

	return name
}

func (id ID) String() string {
	s, err := FromID(id)
	if err != nil {
		return fmt.Sprintf("unknown(0x%04X)", uint16(id))
	}

	return s.String()
}

// IDs converts wire codes to IDs.
func IDs(codes []uint16) []ID {
	out := make([]ID, 0, len(codes))
	for _, c := range codes {
		out = append(out, ID(c))
	}

	return out
}

// Codes converts IDs to wire codes.
func Codes(ids []ID) []uint16 {
	out := make([]uint16, 0, len(ids))
	for _, id := range ids {
		out = append(out, uint16(id))
	}

	return out
}
