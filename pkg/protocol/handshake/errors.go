// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"errors"

	"github.com/pion/tlswire/pkg/protocol"
)

// Typed errors.
var (
	// ErrUnknownMessageType is returned when the typecode names no supported message.
	ErrUnknownMessageType = &protocol.FatalError{Err: errors.New("unknown handshake message type")} //nolint:err113
	// ErrTrailingData is returned when bytes follow the last field of a message.
	ErrTrailingData = &protocol.FatalError{Err: errors.New("trailing data after handshake message")} //nolint:err113
	// ErrCipherSuiteNotOffered is returned when a ServerHello would carry a suite the client did not offer.
	ErrCipherSuiteNotOffered = &protocol.FatalError{Err: errors.New("cipher suite was not offered by the client")} //nolint:err113
	// ErrCompressionMethodNotOffered is returned when a ServerHello would carry a
	// compression method the client did not offer.
	ErrCompressionMethodNotOffered = &protocol.FatalError{ //nolint:err113
		Err: errors.New("compression method was not offered by the client"),
	}

	// ErrGMTUnixTimeOutOfRange is returned when a Random's time does not fit
	// the 32-bit gmt_unix_time field.
	ErrGMTUnixTimeOutOfRange = &protocol.InternalError{Err: errors.New("gmt_unix_time out of range")} //nolint:err113

	errHandshakeMessageUnset = &protocol.InternalError{Err: errors.New("handshake message unset, unable to marshal")} //nolint:err113
	errClientHelloUnset      = &protocol.InternalError{Err: errors.New("server hello can not be created without a client hello")} //nolint:err113
	errSessionIDTooLong      = &protocol.InternalError{Err: errors.New("session id must not be longer than 32 bytes")} //nolint:err113
	errNoCipherSuites        = &protocol.InternalError{Err: errors.New("at least one cipher suite is required")} //nolint:err113
	errNoCompressionMethods  = &protocol.InternalError{Err: errors.New("at least one compression method is required")} //nolint:err113
	errNilRandomSource       = &protocol.InternalError{Err: errors.New("random source must not be nil")} //nolint:err113
)
