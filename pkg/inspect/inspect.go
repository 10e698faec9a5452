// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package inspect summarizes the hello messages found in captured TLS traffic
package inspect

import (
	"errors"

	"github.com/pion/logging"
	"github.com/pion/tlswire/internal/util"
	"github.com/pion/tlswire/pkg/crypto/ciphersuite"
	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pion/tlswire/pkg/protocol/codec"
	"github.com/pion/tlswire/pkg/protocol/handshake"
	"github.com/pion/tlswire/pkg/protocol/recordlayer"
)

const (
	loggerScope = "inspect"

	// msg_type(1) length(3)
	handshakeHeaderSize = 4
)

// Summary describes one hello message.
type Summary struct {
	Type         handshake.Type
	Version      protocol.Version
	VersionKnown bool

	// Negotiated is the version a server would answer a ClientHello with.
	// It is zero when no configured version is acceptable, and equal to
	// Version for a ServerHello.
	Negotiated protocol.Version

	CipherSuites []string
	SessionID    string

	// Extensions is true when the message carries an extension block.
	Extensions bool
}

// Inspector walks record streams. It holds no per-stream state and is safe
// for concurrent use.
type Inspector struct {
	log       logging.LeveledLogger
	supported []protocol.Version
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLoggerFactory sets the factory the "inspect" logger is built from.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(i *Inspector) {
		i.log = f.NewLogger(loggerScope)
	}
}

// WithSupportedVersions makes Negotiated follow protocol.Negotiate against
// the given versions instead of the offer's best match.
func WithSupportedVersions(v ...protocol.Version) Option {
	return func(i *Inspector) {
		i.supported = append([]protocol.Version{}, v...)
	}
}

// New creates an Inspector.
func New(opts ...Option) *Inspector {
	i := &Inspector{}
	for _, o := range opts {
		o(i)
	}
	if i.log == nil {
		i.log = logging.NewDefaultLoggerFactory().NewLogger(loggerScope)
	}

	return i
}

// Records parses a stream of TLS records sent in one direction and returns
// a Summary for every ClientHello and ServerHello in it. Handshake messages
// may span records. Records after a ChangeCipherSpec are encrypted and are
// not looked at.
func (i *Inspector) Records(data []byte) ([]Summary, error) {
	records, err := recordlayer.Unpack(data)
	if err != nil {
		return nil, err
	}

	var (
		out       []Summary
		pending   []byte
		encrypted bool
	)
	for _, rec := range records {
		switch {
		case encrypted:
			i.log.Tracef("skipping encrypted %s record", rec.Header.ContentType)

			continue
		case rec.Header.ContentType == recordlayer.ContentTypeChangeCipherSpec:
			encrypted = true

			continue
		case rec.Header.ContentType != recordlayer.ContentTypeHandshake:
			i.log.Tracef("skipping %s record", rec.Header.ContentType)

			continue
		}

		if !rec.Header.Version.Known() {
			i.log.Debugf("record carries %s", rec.Header.Version)
		}

		pending = append(pending, rec.Fragment...)
		var summaries []Summary
		summaries, pending, err = i.messages(pending)
		if err != nil {
			return nil, err
		}
		out = append(out, summaries...)
	}

	if len(pending) > 0 {
		return nil, codec.ErrTruncatedInput
	}

	return out, nil
}

// messages consumes every complete handshake message in buf and returns
// the bytes of a trailing partial message.
func (i *Inspector) messages(buf []byte) ([]Summary, []byte, error) {
	var out []Summary
	for len(buf) >= handshakeHeaderSize {
		r := codec.NewReader(buf)
		typ, _ := r.ReadUint8()
		length, _ := r.ReadUint24()
		if r.Remaining() < int(length) {
			break
		}
		body, err := r.ReadFixed(int(length))
		if err != nil {
			return nil, nil, err
		}
		buf = buf[len(buf)-r.Remaining():]

		msg, err := handshake.Unmarshal(handshake.Type(typ), body)
		switch {
		case errors.Is(err, handshake.ErrUnknownMessageType):
			i.log.Tracef("skipping handshake message %s", handshake.Type(typ))

			continue
		case err != nil:
			return nil, nil, err
		}

		s := i.summarize(msg)
		i.log.Debugf("%s %s suites=%d", s.Type, s.Version, len(s.CipherSuites))
		out = append(out, s)
	}

	return out, buf, nil
}

func (i *Inspector) summarize(msg handshake.Message) Summary {
	switch m := msg.(type) {
	case *handshake.MessageClientHello:
		s := Summary{
			Type:         m.Type(),
			Version:      m.Version,
			VersionKnown: m.Version.Known(),
			Negotiated:   i.negotiate(m.Version),
			SessionID:    util.ToHex(m.SessionID),
			Extensions:   m.Extensions != nil,
		}
		for _, id := range ciphersuite.IDs(m.CipherSuiteIDs) {
			s.CipherSuites = append(s.CipherSuites, id.String())
		}

		return s
	case *handshake.MessageServerHello:
		return Summary{
			Type:         m.Type(),
			Version:      m.Version,
			VersionKnown: m.Version.Known(),
			Negotiated:   m.Version,
			CipherSuites: []string{ciphersuite.ID(m.CipherSuiteID).String()},
			SessionID:    util.ToHex(m.SessionID),
			Extensions:   m.Extensions != nil,
		}
	}

	return Summary{Type: msg.Type()}
}

func (i *Inspector) negotiate(offered protocol.Version) protocol.Version {
	if len(i.supported) == 0 {
		return offered.BestMatch()
	}

	v, err := protocol.Negotiate(offered, i.supported)
	if err != nil {
		i.log.Debugf("no acceptable version for %s: %v", offered, err)

		return protocol.Version{}
	}

	return v
}
