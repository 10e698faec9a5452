// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package protocol provides the TLS wire format
package protocol

import "fmt"

// NamedVersion identifies one of the protocol versions this package knows by name.
type NamedVersion int

// NamedVersion enums.
const (
	SSL30 NamedVersion = iota + 1
	TLS10
	TLS11
	TLS12
)

// Version is the minor/major value in the RecordLayer
// and ClientHello/ServerHello
//
// https://tools.ietf.org/html/rfc5246#appendix-A.1
type Version struct {
	Major, Minor uint8
}

type namedVersionEntry struct {
	version Version
	name    string
}

// namedVersions is the only place a name is tied to a major/minor pair.
// Latest must be kept in step when a newer entry is appended.
var namedVersions = map[NamedVersion]namedVersionEntry{ //nolint:gochecknoglobals
	SSL30: {Version{Major: 3, Minor: 0}, "SSL v3"},
	TLS10: {Version{Major: 3, Minor: 1}, "TLS v1.0"},
	TLS11: {Version{Major: 3, Minor: 2}, "TLS v1.1"},
	TLS12: {Version{Major: 3, Minor: 3}, "TLS v1.2"},
}

// Named returns the major/minor pair of a named version. An unrecognized
// NamedVersion yields the zero Version, which is never Known.
func Named(n NamedVersion) Version {
	return namedVersions[n].version
}

// Latest returns the highest version this package knows.
func Latest() Version {
	return Named(TLS12)
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

// Known returns true if v matches one of the named versions.
func (v Version) Known() bool {
	_, ok := v.lookup()

	return ok
}

// BestMatch returns v when it is known, otherwise Latest.
// A version this package does not understand is never echoed back.
func (v Version) BestMatch() Version {
	if v.Known() {
		return v
	}

	return Latest()
}

// Less orders versions by major then minor.
func (v Version) Less(x Version) bool {
	if v.Major != x.Major {
		return v.Major < x.Major
	}

	return v.Minor < x.Minor
}

func (v Version) String() string {
	if e, ok := v.lookup(); ok {
		return e.name
	}

	return fmt.Sprintf("Unknown TLS version %d.%d", v.Major, v.Minor)
}

func (v Version) lookup() (namedVersionEntry, bool) {
	for _, e := range namedVersions {
		if e.version.Equal(v) {
			return e, true
		}
	}

	return namedVersionEntry{}, false
}

// Negotiate picks the version a responder answers with. The offer is first
// reduced with BestMatch, then the highest supported version that does not
// exceed it is returned.
func Negotiate(offered Version, supported []Version) (Version, error) {
	target := offered.BestMatch()

	var (
		best  Version
		found bool
	)
	for _, s := range supported {
		if !s.Known() || target.Less(s) {
			continue
		}
		if !found || best.Less(s) {
			best, found = s, true
		}
	}

	if !found {
		return Version{}, ErrUnsupportedProtocolVersion
	}

	return best, nil
}
