// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Command tlsinspect prints the ClientHello and ServerHello messages found in
// a hex encoded record stream or a pcap capture.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pion/logging"
	"github.com/pion/tlswire/cmd"
	"github.com/pion/tlswire/internal/util"
	"github.com/pion/tlswire/pkg/inspect"
	"github.com/pion/tlswire/pkg/protocol"
	"github.com/pkg/errors"
)

func main() {
	hexStream := flag.String("hex", "", "hex encoded TLS record stream")
	pcapFile := flag.String("pcap", "", "pcap capture to read TCP flows from")
	maxVersion := flag.String("max-version", "", "highest version a server would answer with: ssl3, tls1.0, tls1.1 or tls1.2")
	verbose := flag.Bool("v", false, "log skipped records and messages")
	flag.Parse()

	loggerFactory := logging.NewDefaultLoggerFactory()
	if *verbose {
		loggerFactory.DefaultLogLevel = logging.LogLevelTrace
	}
	opts := []inspect.Option{inspect.WithLoggerFactory(loggerFactory)}

	if *maxVersion != "" {
		supported, err := versionsUpTo(*maxVersion)
		cmd.Check(err)
		opts = append(opts, inspect.WithSupportedVersions(supported...))
	}
	inspector := inspect.New(opts...)

	switch {
	case *hexStream != "":
		cmd.Check(inspectHex(inspector, *hexStream))
	case *pcapFile != "":
		cmd.Check(inspectPCAP(inspector, *pcapFile))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func inspectHex(inspector *inspect.Inspector, s string) error {
	data, err := util.FromHex(s)
	if err != nil {
		return errors.Wrap(err, "failed to decode -hex")
	}

	summaries, err := inspector.Records(data)
	if err != nil {
		return errors.Wrap(err, "failed to inspect record stream")
	}

	return cmd.PrintSummaries(os.Stdout, "stream", summaries)
}

func inspectPCAP(inspector *inspect.Inspector, path string) error {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	flows, err := inspector.PCAP(f)
	if err != nil {
		return errors.Wrapf(err, "failed to inspect %s", path)
	}

	for _, flow := range flows {
		if flow.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", flow.Name, flow.Err)

			continue
		}
		if len(flow.Summaries) == 0 {
			continue
		}
		if err := cmd.PrintSummaries(os.Stdout, flow.Name, flow.Summaries); err != nil {
			return err
		}
	}

	return nil
}

func versionsUpTo(name string) ([]protocol.Version, error) {
	names := []struct {
		flag    string
		version protocol.NamedVersion
	}{
		{"ssl3", protocol.SSL30},
		{"tls1.0", protocol.TLS10},
		{"tls1.1", protocol.TLS11},
		{"tls1.2", protocol.TLS12},
	}

	var out []protocol.Version
	for _, n := range names {
		out = append(out, protocol.Named(n.version))
		if n.flag == name {
			return out, nil
		}
	}

	return nil, errors.Errorf("unknown version %q", name)
}
