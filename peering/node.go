// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peering

import (
	"context"
	"fmt"
	"time"

	proto "github.com/golang/protobuf/proto"
	libp2p "github.com/libp2p/go-libp2p"
	connmgr "github.com/libp2p/go-libp2p-connmgr"
	crypto "github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/network"
	peerlib "github.com/libp2p/go-libp2p-core/peer"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	tls "github.com/libp2p/go-libp2p-tls"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/bankd/announce/receptor"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/util"
)

// connection manager watermarks
const (
	lowConn       = 20
	maxConn       = 100
	connGraceTime = 2 * time.Minute
)

// Setup - set up the node
func (n *Node) Setup(configuration *Configuration, version string, dnsPeerOnly dnsOnlyType) error {
	n.Version = version
	n.NodeType = nodeType(configuration.NodeType)
	n.dnsPeerOnly = dnsPeerOnly
	n.Registers = make(map[peerlib.ID]RegisterStatus)

	maAddrs := util.IPPortToMultiAddr(util.DualStackAddrToIPV4IPV6(configuration.Listen))

	prvKey, err := util.DecodePrivKeyFromHex(configuration.PrivateKey)
	if err != nil {
		n.Log.Error(err.Error())
		return err
	}
	n.PrivateKey = prvKey

	if err := n.newHost(string(n.NodeType), maAddrs, prvKey); nil != err {
		return err
	}
	n.setAnnounce(configuration.Announce)

	ps, err := pubsub.NewGossipSub(context.Background(), n.Host)
	if err != nil {
		return err
	}
	n.Multicast = ps
	sub, err := ps.Subscribe(TopicMulticasting)
	if err != nil {
		return err
	}
	go n.SubHandler(context.Background(), sub)

	go n.connectToStaticPeers(configuration.Connect)

	n.initialised = true
	return nil
}

// newHost - create the libp2p host according to node type
func (n *Node) newHost(nodetype string, listenAddrs []ma.Multiaddr, prvKey crypto.PrivKey) error {
	cm := connmgr.NewConnManager(lowConn, maxConn, connGraceTime)
	options := []libp2p.Option{
		libp2p.Identity(prvKey),
		libp2p.Security(tls.ID, tls.New),
		libp2p.ConnectionManager(cm),
	}
	if "client" != nodetype {
		options = append(options, libp2p.ListenAddrs(listenAddrs...))
	}
	newHost, err := libp2p.New(context.Background(), options...)
	if err != nil {
		return err
	}
	n.Host = newHost
	for _, a := range newHost.Addrs() {
		n.Log.Infof("host address: %s/%v/%s", a, nodeProtocol, newHost.ID())
	}
	return nil
}

// setAnnounce - advertise this node's public addresses to the announcer
func (n *Node) setAnnounce(announceAddrs []string) {
	maAddrs := util.IPPortToMultiAddr(announceAddrs)
	fullAddrs := announceMuxAddrs(maAddrs, n.Host.ID())
	n.Announce = fullAddrs

	byteMessage, err := proto.Marshal(&receptor.Addrs{Address: util.GetBytesFromMultiaddr(fullAddrs)})
	idBinary, idErr := n.Host.ID().Marshal()
	if nil == err && nil == idErr {
		messagebus.Bus.Announce.Send("self", idBinary, byteMessage)
	}
}

// append this node's /p2p/<id> component to each announce address
func announceMuxAddrs(maAddrs []ma.Multiaddr, id peerlib.ID) []ma.Multiaddr {
	fullAddrs := make([]ma.Multiaddr, 0, len(maAddrs))
	for _, addr := range maAddrs {
		fullAddr, err := ma.NewMultiaddr(fmt.Sprintf("%s/%s/%s", addr, nodeProtocol, id.Pretty()))
		if nil == err {
			fullAddrs = append(fullAddrs, fullAddr)
		}
	}
	return fullAddrs
}

func (n *Node) isConnected(id peerlib.ID) bool {
	return network.Connected == n.Host.Network().Connectedness(id)
}

func (n *Node) addRegister(id peerlib.ID) {
	n.Lock()
	n.Registers[id] = RegisterStatus{Registered: true, RegisterTime: time.Now()}
	n.Unlock()
}

func (n *Node) delRegister(id peerlib.ID) {
	n.Lock()
	delete(n.Registers, id)
	n.Unlock()
}

// expire registrations that have gone quiet
func (n *Node) updateRegistersExpiry() {
	n.Lock()
	for id, status := range n.Registers {
		if status.Registered && time.Since(status.RegisterTime) > registerExpireTime && !n.isConnected(id) {
			delete(n.Registers, id)
		}
	}
	n.Unlock()
}
