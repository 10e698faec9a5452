// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"crypto/rand"
	"io"

	"github.com/pion/tlswire/pkg/crypto/ciphersuite"
	"github.com/pion/tlswire/pkg/protocol"
)

// ClientHelloOption configures NewClientHello.
type ClientHelloOption interface {
	applyClientHello(*helloConfig) error
}

// ServerHelloOption configures NewServerHello.
type ServerHelloOption interface {
	applyServerHello(*helloConfig) error
}

// Option can be used with both NewClientHello and NewServerHello.
type Option interface {
	ClientHelloOption
	ServerHelloOption
}

type helloConfig struct {
	version            protocol.Version
	supportedVersions  []protocol.Version
	cipherSuites       []ciphersuite.ID
	compressionMethods []uint8
	random             io.Reader
	sessionID          []byte
}

func defaultHelloConfig() *helloConfig {
	return &helloConfig{
		version:            protocol.Latest(),
		cipherSuites:       ciphersuite.DefaultIDs(),
		compressionMethods: []uint8{CompressionMethodNull},
		random:             rand.Reader,
	}
}

type sharedOption func(*helloConfig) error

func (o sharedOption) applyClientHello(c *helloConfig) error { return o(c) }
func (o sharedOption) applyServerHello(c *helloConfig) error { return o(c) }

type clientHelloOption func(*helloConfig) error

func (o clientHelloOption) applyClientHello(c *helloConfig) error { return o(c) }

type serverHelloOption func(*helloConfig) error

func (o serverHelloOption) applyServerHello(c *helloConfig) error { return o(c) }

// WithRandomSource sets where the hello random bytes are read from.
// It defaults to crypto/rand.Reader; tests pass a deterministic reader.
func WithRandomSource(source io.Reader) Option {
	return sharedOption(func(c *helloConfig) error {
		if source == nil {
			return errNilRandomSource
		}
		c.random = source

		return nil
	})
}

// WithSessionID sets the session id sent in the hello.
func WithSessionID(sessionID []byte) Option {
	return sharedOption(func(c *helloConfig) error {
		if len(sessionID) > sessionIDMaxLength {
			return errSessionIDTooLong
		}
		c.sessionID = nil
		if len(sessionID) > 0 {
			c.sessionID = append([]byte{}, sessionID...)
		}

		return nil
	})
}

// WithVersion sets the version a client offers. Defaults to protocol.Latest().
func WithVersion(v protocol.Version) ClientHelloOption {
	return clientHelloOption(func(c *helloConfig) error {
		c.version = v

		return nil
	})
}

// WithCipherSuites sets the suites a client proposes, in order of preference.
func WithCipherSuites(ids ...ciphersuite.ID) ClientHelloOption {
	return clientHelloOption(func(c *helloConfig) error {
		if len(ids) == 0 {
			return errNoCipherSuites
		}
		c.cipherSuites = append([]ciphersuite.ID{}, ids...)

		return nil
	})
}

// WithCompressionMethods sets the compression methods a client proposes.
func WithCompressionMethods(methods ...uint8) ClientHelloOption {
	return clientHelloOption(func(c *helloConfig) error {
		if len(methods) == 0 {
			return errNoCompressionMethods
		}
		c.compressionMethods = append([]uint8{}, methods...)

		return nil
	})
}

// WithSupportedVersions restricts the versions a server answers with.
// The version is then chosen by protocol.Negotiate instead of BestMatch.
func WithSupportedVersions(versions ...protocol.Version) ServerHelloOption {
	return serverHelloOption(func(c *helloConfig) error {
		c.supportedVersions = append([]protocol.Version{}, versions...)

		return nil
	})
}

// NewClientHello builds a fresh ClientHello with a populated random and a
// nil session id.
func NewClientHello(opts ...ClientHelloOption) (*MessageClientHello, error) {
	cfg := defaultHelloConfig()
	for _, o := range opts {
		if err := o.applyClientHello(cfg); err != nil {
			return nil, err
		}
	}

	m := &MessageClientHello{
		Version:            cfg.version,
		SessionID:          cfg.sessionID,
		CipherSuiteIDs:     ciphersuite.Codes(cfg.cipherSuites),
		CompressionMethods: cfg.compressionMethods,
	}
	if err := m.Random.Populate(cfg.random); err != nil {
		return nil, err
	}

	return m, nil
}

// NewServerHello builds the answer to client carrying the chosen suite and
// compression method. Choosing them is up to the caller; both must have
// been offered by the client. The version is the client's BestMatch unless
// WithSupportedVersions is given.
func NewServerHello(
	client *MessageClientHello, suite ciphersuite.ID, compression uint8, opts ...ServerHelloOption,
) (*MessageServerHello, error) {
	if client == nil {
		return nil, errClientHelloUnset
	}

	cfg := defaultHelloConfig()
	for _, o := range opts {
		if err := o.applyServerHello(cfg); err != nil {
			return nil, err
		}
	}

	if _, err := ciphersuite.FromID(suite); err != nil {
		return nil, err
	}
	if !containsUint16(client.CipherSuiteIDs, uint16(suite)) {
		return nil, ErrCipherSuiteNotOffered
	}
	if !containsUint8(client.CompressionMethods, compression) {
		return nil, ErrCompressionMethodNotOffered
	}

	version := client.Version.BestMatch()
	if cfg.supportedVersions != nil {
		var err error
		if version, err = protocol.Negotiate(client.Version, cfg.supportedVersions); err != nil {
			return nil, err
		}
	}

	m := &MessageServerHello{
		Version:           version,
		SessionID:         cfg.sessionID,
		CipherSuiteID:     uint16(suite),
		CompressionMethod: compression,
	}
	if err := m.Random.Populate(cfg.random); err != nil {
		return nil, err
	}

	return m, nil
}
