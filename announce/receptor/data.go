// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receptor

import (
	"strings"
	"time"

	"github.com/gogo/protobuf/proto"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/bankd/util"
)

// Data - entry in the peer directory tree
type Data struct {
	ID        peerlib.ID
	Listeners []ma.Multiaddr
	Timestamp time.Time // last seen time
}

// AddrsString - all listener addresses as strings
func (d Data) AddrsString() []string {
	allAddress := make([]string, 0, len(d.Listeners))
	for _, listener := range d.Listeners {
		allAddress = append(allAddress, listener.String())
	}
	return allAddress
}

// AddrToString - convert marshalled Addrs to a printable string
func AddrToString(pbAddrsBinary []byte) string {
	var pbAddrs Addrs
	err := proto.Unmarshal(pbAddrsBinary, &pbAddrs)
	if nil != err {
		return ""
	}
	addrs := util.GetMultiAddrsFromBytes(pbAddrs.Address)
	s := strings.Builder{}
	for _, addr := range addrs {
		s.WriteString(addr.String())
		s.WriteString("\n")
	}
	return s.String()
}
