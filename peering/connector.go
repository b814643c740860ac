// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peering

import (
	"context"
	"fmt"
	"strings"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"
	madns "github.com/multiformats/go-multiaddr-dns"

	"github.com/bitmark-inc/bankd/announce"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/util"
)

// DirectConnect - connect to the peer with the given AddrInfo
func (n *Node) DirectConnect(info peerlib.AddrInfo) error {
	cctx, cancel := context.WithTimeout(context.Background(), connectCancelTime)
	defer cancel()

	if n.isSameNode(info) {
		util.LogDebug(n.Log, util.CoLightGray, "DirectConnect to the self node")
		return nil
	}

	if n.isConnected(info.ID) { // already connected, nothing to do
		util.LogInfo(n.Log, util.CoReset, fmt.Sprintf("DirectConnect ID: %v is already connected", info.ID.ShortString()))
		return nil
	}

	err := n.Host.Connect(cctx, info)
	if err != nil {
		util.LogWarn(n.Log, util.CoLightRed, fmt.Sprintf("DirectConnect ID: %v error: %v", info.ID.ShortString(), err))
		return err
	}
	util.LogInfo(n.Log, util.CoGreen, fmt.Sprintf("DirectConnect to addr: %v/%v", util.PrintMaAddrs(info.Addrs), info.ID.ShortString()))

	n.addRegister(info.ID)

	// let the announcer refresh the peer's liveness
	idBinary, err := info.ID.Marshal()
	if nil == err {
		messagebus.Bus.Announce.Send("updatetime", idBinary)
	}
	return nil
}

// check on ID and also announce/listen addresses with the same port
func (n *Node) isSameNode(info peerlib.AddrInfo) bool {
	if n.Host.ID().Pretty() == info.ID.Pretty() {
		return true
	}
	for _, cmpr := range info.Addrs {
		// compare announce addresses
		for _, a := range n.Announce {
			if strings.Contains(cmpr.String(), a.String()) {
				return true
			}
		}
		// compare local listener addresses
		for _, a := range n.Host.Addrs() {
			if strings.Contains(cmpr.String(), a.String()) {
				return true
			}
		}
	}
	return false
}

// pick a random announced node and connect to it
func (n *Node) connectRandomNode() {
	id, addrs, _, err := announce.GetRandom(n.Host.ID())
	if nil != err {
		util.LogDebug(n.Log, util.CoLightGray, fmt.Sprintf("connectRandomNode: no candidate: %s", err))
		return
	}
	_ = n.DirectConnect(peerlib.AddrInfo{ID: id, Addrs: addrs})
}

// connect the static peers from the configuration file
func (n *Node) connectToStaticPeers(static []StaticConnection) {
	for _, s := range static {
		id, err := peerlib.IDB58Decode(s.PeerID)
		if nil != err {
			util.LogWarn(n.Log, util.CoLightRed, fmt.Sprintf("static connection invalid peer ID: %q error: %s", s.PeerID, err))
			continue
		}

		addr, err := ma.NewMultiaddr(s.Address)
		if nil != err {
			util.LogWarn(n.Log, util.CoLightRed, fmt.Sprintf("static connection invalid address: %q error: %s", s.Address, err))
			continue
		}

		addrs := resolveAddr(addr)
		if 0 == len(addrs) {
			util.LogWarn(n.Log, util.CoLightRed, fmt.Sprintf("static connection unresolvable address: %q", s.Address))
			continue
		}

		_ = n.DirectConnect(peerlib.AddrInfo{ID: id, Addrs: addrs})
	}
}

// resolve /dns4 and /dns6 components to concrete IP multiaddrs
func resolveAddr(addr ma.Multiaddr) []ma.Multiaddr {
	ctx, cancel := context.WithTimeout(context.Background(), connectCancelTime)
	defer cancel()

	resolved, err := madns.Resolve(ctx, addr)
	if nil != err {
		return nil
	}
	return resolved
}
