// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codec

import (
	"errors"

	"github.com/pion/tlswire/pkg/protocol"
)

// Typed errors.
var (
	// ErrTruncatedInput is returned when fewer bytes remain than a read requires.
	ErrTruncatedInput = &protocol.FatalError{Err: errors.New("truncated input")} //nolint:err113
	// ErrMalformedLength is returned when a vector's byte length is not a
	// multiple of its element size.
	ErrMalformedLength = &protocol.FatalError{Err: errors.New("vector length is not a multiple of the element size")} //nolint:err113
	// ErrVectorBoundsViolation is returned when a vector's element count is
	// outside the range allowed for the field.
	ErrVectorBoundsViolation = &protocol.FatalError{Err: errors.New("vector element count out of bounds")} //nolint:err113

	// ErrLengthMismatch is returned when a caller hands a fixed-size field of the wrong length to the Writer.
	ErrLengthMismatch = &protocol.InternalError{Err: errors.New("data length and declared length do not match")} //nolint:err113
	// ErrTagOverflow is returned when a length tag can not represent the vector's byte length.
	ErrTagOverflow = &protocol.InternalError{Err: errors.New("vector too long for its length tag")} //nolint:err113
	// ErrInvalidTagSize is returned for a length tag that is neither one nor two bytes.
	ErrInvalidTagSize = &protocol.InternalError{Err: errors.New("invalid length tag size")} //nolint:err113

	errInvalidElementSize = &protocol.InternalError{Err: errors.New("element size must be positive")} //nolint:err113
)
