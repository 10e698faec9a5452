// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package recordlayer implements the TLS Record Layer https://tools.ietf.org/html/rfc5246#section-6
package recordlayer

import (
	"errors"

	"github.com/pion/tlswire/pkg/protocol"
)

var (
	// ErrInvalidContentType is returned when a record carries a content type
	// outside the TLS 1.2 set.
	ErrInvalidContentType = &protocol.FatalError{Err: errors.New("invalid content type")} //nolint:err113
	// ErrRecordOverflow is returned when a record declares a fragment longer
	// than TLSCiphertext allows.
	ErrRecordOverflow = &protocol.FatalError{Err: errors.New("record overflow")} //nolint:err113
)
