// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package cmd holds helpers shared by the command line tools
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pion/tlswire/pkg/inspect"
)

// Check prints err and exits when it is non-nil.
func Check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}

// PrintSummaries writes one line per hello under a heading.
func PrintSummaries(w io.Writer, heading string, summaries []inspect.Summary) error {
	if _, err := fmt.Fprintf(w, "%s\n", heading); err != nil {
		return err
	}

	for _, s := range summaries {
		version := s.Version.String()
		if s.VersionKnown && !s.Negotiated.Equal(s.Version) {
			version += " (answered with " + s.Negotiated.String() + ")"
		} else if !s.VersionKnown {
			version += " (best match " + s.Negotiated.String() + ")"
		}

		line := fmt.Sprintf("  %s %s session=%q suites=[%s]", s.Type, version, s.SessionID, strings.Join(s.CipherSuites, " "))
		if s.Extensions {
			line += " +extensions"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
