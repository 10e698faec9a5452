// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package inspect

import (
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/pkg/errors"
)

// Flow is one direction of a TCP conversation found in a capture.
type Flow struct {
	// Name is "src->dst sport->dport".
	Name string

	Summaries []Summary

	// Err is set when the flow's payload is not a well formed record stream.
	Err error
}

// PCAP reads a pcap capture and runs Records over the TCP payload of every
// flow, in order of first appearance. Segments are concatenated in capture
// order; retransmissions and reordering are not repaired.
func (i *Inspector) PCAP(r io.Reader) ([]Flow, error) {
	pr, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pcap header")
	}

	var (
		order   []string
		streams = map[string][]byte{}
		src     = gopacket.NewPacketSource(pr, pr.LinkType())
	)
	for n := 0; ; n++ {
		packet, err := src.NextPacket()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "failed to read packet %d", n)
		}

		tcp, ok := packet.Layer(layers.LayerTypeTCP).(*layers.TCP)
		if !ok || len(tcp.Payload) == 0 {
			continue
		}
		network := packet.NetworkLayer()
		if network == nil {
			continue
		}

		name := fmt.Sprintf("%s %s", network.NetworkFlow(), tcp.TransportFlow())
		if _, seen := streams[name]; !seen {
			order = append(order, name)
		}
		streams[name] = append(streams[name], tcp.Payload...)
	}

	flows := make([]Flow, 0, len(order))
	for _, name := range order {
		summaries, err := i.Records(streams[name])
		if err != nil {
			i.log.Debugf("%s: %v", name, err)
		}
		flows = append(flows, Flow{Name: name, Summaries: summaries, Err: err})
	}

	return flows, nil
}
