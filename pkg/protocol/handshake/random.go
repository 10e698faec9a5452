// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"encoding/binary"
	"io"
	"math"
	"time"
)

// Consts for Random in Handshake.
const (
	RandomBytesLength = 28
	RandomLength      = RandomBytesLength + 4
)

// Random value that is used in ClientHello and ServerHello
//
// https://tools.ietf.org/html/rfc4346#section-7.4.1.2
type Random struct {
	GMTUnixTime time.Time
	RandomBytes [RandomBytesLength]byte
}

// MarshalFixed encodes the Random. The zero GMTUnixTime is written as 0;
// any other time must fall within the 32-bit range of seconds since 1970.
func (r *Random) MarshalFixed() ([RandomLength]byte, error) {
	var out [RandomLength]byte

	var seconds uint32
	if !r.GMTUnixTime.IsZero() {
		unix := r.GMTUnixTime.Unix()
		if unix < 0 || unix > math.MaxUint32 {
			return out, ErrGMTUnixTimeOutOfRange
		}
		seconds = uint32(unix)
	}

	binary.BigEndian.PutUint32(out[0:], seconds)
	copy(out[4:], r.RandomBytes[:])

	return out, nil
}

// UnmarshalFixed populates the Random from encoded data. A timestamp of 0
// decodes to the zero time.Time.
func (r *Random) UnmarshalFixed(data [RandomLength]byte) {
	r.GMTUnixTime = time.Time{}
	if seconds := binary.BigEndian.Uint32(data[0:]); seconds != 0 {
		r.GMTUnixTime = time.Unix(int64(seconds), 0)
	}
	copy(r.RandomBytes[:], data[4:])
}

// Populate fills the Random with the current time and bytes read from source,
// which should be a cryptographically secure generator.
// May be called multiple times.
func (r *Random) Populate(source io.Reader) error {
	if source == nil {
		return errNilRandomSource
	}

	var bytes [RandomBytesLength]byte
	if _, err := io.ReadFull(source, bytes[:]); err != nil {
		return err
	}

	r.GMTUnixTime = time.Unix(time.Now().Unix(), 0)
	r.RandomBytes = bytes

	return nil
}
