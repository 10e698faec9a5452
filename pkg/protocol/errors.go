// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProtocolVersion is returned when no supported version
	// is at or below the version offered by the peer.
	ErrUnsupportedProtocolVersion = &FatalError{Err: errors.New("unsupported protocol version")} //nolint:err113
)

// FatalError indicates that the handshake can not continue.
// It is mainly caused by malformed or hostile input from the peer.
type FatalError struct {
	Err error
}

// InternalError indicates an error caused by the implementation itself,
// such as a caller handing a field of the wrong size to an encoder.
type InternalError struct {
	Err error
}

// TemporaryError indicates that the current operation failed but the
// caller may retry with different input.
type TemporaryError struct {
	Err error
}

// Timeout implements net.Error.Timeout().
func (*FatalError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*FatalError) Temporary() bool { return false }

// Unwrap implements Go1.13 error unwrapper.
func (e *FatalError) Unwrap() error { return e.Err }

func (e *FatalError) Error() string { return fmt.Sprintf("tls fatal: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*InternalError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*InternalError) Temporary() bool { return false }

// Unwrap implements Go1.13 error unwrapper.
func (e *InternalError) Unwrap() error { return e.Err }

func (e *InternalError) Error() string { return fmt.Sprintf("tls internal: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*TemporaryError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*TemporaryError) Temporary() bool { return true }

// Unwrap implements Go1.13 error unwrapper.
func (e *TemporaryError) Unwrap() error { return e.Err }

func (e *TemporaryError) Error() string { return fmt.Sprintf("tls temporary: %v", e.Err) }
