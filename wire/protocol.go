// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ProtocolVersion is the latest protocol version this package supports.
	ProtocolVersion uint32 = 70016

	// MultiAlgoVersion is the protocol version which introduced the
	// multi-algorithm proof-of-work envelope on block headers.
	MultiAlgoVersion uint32 = 70009
)

// ServiceFlag identifies services supported by a peer.
type ServiceFlag uint64

const (
	// SFNodeNetwork is a flag used to indicate a peer is a full node.
	SFNodeNetwork ServiceFlag = 1 << iota

	// SFNodeBloom is a flag used to indicate a peer supports bloom
	// filtering.
	SFNodeBloom

	// SFNodeWitness is a flag used to indicate a peer supports blocks
	// and transactions including witness data.
	SFNodeWitness
)

// Map of service flags back to their constant names for pretty printing.
var sfStrings = map[ServiceFlag]string{
	SFNodeNetwork: "SFNodeNetwork",
	SFNodeBloom:   "SFNodeBloom",
	SFNodeWitness: "SFNodeWitness",
}

// orderedSFStrings is an ordered list of service flags from highest to
// lowest.
var orderedSFStrings = []ServiceFlag{
	SFNodeNetwork,
	SFNodeBloom,
	SFNodeWitness,
}

// String returns the ServiceFlag in human-readable form.
func (f ServiceFlag) String() string {
	// No flags are set.
	if f == 0 {
		return "0x0"
	}

	// Add individual bit flags.
	s := ""
	for _, flag := range orderedSFStrings {
		if f&flag == flag {
			s += sfStrings[flag] + "|"
			f -= flag
		}
	}

	// Add any remaining flags which aren't accounted for as hex.
	s = strings.TrimRight(s, "|")
	if f != 0 {
		s += "|0x" + strconv.FormatUint(uint64(f), 16)
	}
	s = strings.TrimLeft(s, "|")
	return s
}

// RodNet represents which network a message belongs to.
type RodNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown, but this package
// does not provide that functionality since it's generally a better idea to
// simply disconnect clients that are misbehaving over TCP.
//
// The values encode as the raw message-start bytes in little-endian order.
// The bytes themselves are rarely used upper ASCII, not valid as UTF-8, and
// produce a large 32-bit integer with any alignment.
const (
	// MainNet represents the main network.
	MainNet RodNet = 0xfeb4becc

	// TestNet3 represents the legacy public test network.
	TestNet3 RodNet = 0xfeb5bfcc

	// TestNet4 represents the version 4 public test network.
	TestNet4 RodNet = 0x283f161c

	// RegNet represents the regression test network.
	RegNet RodNet = 0xdab5bfcc

	// SigNetDefault represents the signet network with the well-known
	// default challenge.  Custom signets derive their own value from the
	// challenge script; see the chaincfg package.
	SigNetDefault RodNet = 0x40cf030a
)

// bnStrings is a map of networks back to their constant names for pretty
// printing.
var bnStrings = map[RodNet]string{
	MainNet:       "MainNet",
	TestNet3:      "TestNet3",
	TestNet4:      "TestNet4",
	RegNet:        "RegNet",
	SigNetDefault: "SigNet",
}

// String returns the RodNet in human-readable form.
func (n RodNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown RodNet (%d)", uint32(n))
}
