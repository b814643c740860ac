// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peering

import (
	"fmt"
	"sync"
	"time"

	proto "github.com/golang/protobuf/proto"
	p2pcore "github.com/libp2p/go-libp2p-core"
	crypto "github.com/libp2p/go-libp2p-core/crypto"
	peerlib "github.com/libp2p/go-libp2p-core/peer"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/bankd/announce/receptor"
	"github.com/bitmark-inc/bankd/background"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/mode"
	"github.com/bitmark-inc/bankd/util"
	"github.com/bitmark-inc/logger"
)

// global data
var globalData Node

// timings
const (
	nodeInitial        = 5 * time.Second // startup delay before first send
	nodeInterval       = 2 * time.Minute // regular
	registerExpireTime = 2 * time.Minute
	connectCancelTime  = 30 * time.Second
)

var (
	// TopicMulticasting is the gossip topic carrying transitions and announcements
	TopicMulticasting = "/multicast/1.0.0"
	// nodeProtocol is the multiaddr protocol name for peer addressing
	nodeProtocol = ma.ProtocolWithCode(ma.P_P2P).Name
)

type dnsOnlyType bool

const (
	DnsOnly  dnsOnlyType = true
	UsePeers dnsOnlyType = false
)

type nodeType string

const (
	ServerNode nodeType = "server"
	ClientNode nodeType = "client"
)

func (t nodeType) String() string {
	if t == ClientNode {
		return string(ClientNode)
	}
	return string(ServerNode)
}

// StaticConnection - hardwired connections
// this is read from the configuration file
type StaticConnection struct {
	PeerID  string `gluamapper:"peer_id" json:"peer_id"`
	Address string `gluamapper:"address" json:"address"`
}

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	NodeType   string             `gluamapper:"nodetype" json:"nodetype"`
	Port       int                `gluamapper:"port" json:"port"`
	Listen     []string           `gluamapper:"listen" json:"listen"`
	Announce   []string           `gluamapper:"announce" json:"announce"`
	PrivateKey string             `gluamapper:"private_key" json:"private_key"`
	Connect    []StaticConnection `gluamapper:"connect" json:"connect,omitempty"`
}

// RegisterStatus - the registration status of a peer
type RegisterStatus struct {
	Registered   bool
	RegisterTime time.Time
}

// Node - the peering node
type Node struct {
	sync.RWMutex
	Version    string
	NodeType   nodeType
	Host       p2pcore.Host
	Announce   []ma.Multiaddr
	Log        *logger.L
	Registers  map[peerlib.ID]RegisterStatus
	Multicast  *pubsub.PubSub
	PrivateKey crypto.PrivKey

	// for background
	background *background.T

	// set once during initialise
	initialised bool

	dnsPeerOnly dnsOnlyType
}

// Connected - representation of a connected peer (for HTTP RPC)
type Connected struct {
	Address []string `json:"address"`
	Server  string   `json:"server"`
}

// Initialise - initialise the peering system
func Initialise(configuration *Configuration, version string, dnsPeerOnly dnsOnlyType) error {
	globalData.Lock()
	defer globalData.Unlock()
	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	globalData.Log = logger.New("peering")
	globalData.Log.Info("starting…")

	if err := globalData.Setup(configuration, version, dnsPeerOnly); nil != err {
		return err
	}

	globalData.Log.Info("start background…")
	processes := background.Processes{
		&globalData,
	}
	globalData.background = background.Start(processes, globalData.Log)
	return nil
}

// Run - wait for incoming requests, process them and reply
func (n *Node) Run(_ interface{}, shutdown <-chan struct{}) {
	log := n.Log
	log.Info("starting…")
	queue := messagebus.Bus.Broadcast.Chan(50)
	delay := time.After(nodeInitial)
	nodeChain := mode.ChainName()
loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			switch item.Command {
			case "peer", "rpc": // only a server announces itself
				if ClientNode == n.NodeType {
					break
				}
				fallthrough
			case "transition":
				packed, err := PackP2PMessage(nodeChain, item.Command, item.Parameters)
				if err != nil {
					util.LogWarn(log, util.CoLightRed, fmt.Sprintf("Run: pack message error: %v", err))
					continue loop
				}
				err = MulticastCommand(packed)
				if err != nil {
					util.LogWarn(log, util.CoLightRed, fmt.Sprintf("Run: multicast publish error: %v", err))
					continue loop
				}
				util.LogInfo(log, util.CoGreen, fmt.Sprintf("<<-- multicast command: %s  parameters: %d", item.Command, len(item.Parameters)))

			case "ES": // direct connection candidates from the announcer
				peerID, err := peerlib.IDFromBytes(item.Parameters[0])
				if err != nil {
					util.LogWarn(log, util.CoLightRed, fmt.Sprintf("unmarshal peer ID error: %x", item.Parameters[0]))
					continue loop
				}
				pbPeerAddrs := receptor.Addrs{}
				err = proto.Unmarshal(item.Parameters[1], &pbPeerAddrs)
				if err != nil {
					util.LogWarn(log, util.CoLightRed, fmt.Sprintf("unmarshal peer address error: %v", err))
					continue loop
				}
				maAddrs := util.GetMultiAddrsFromBytes(pbPeerAddrs.Address)
				if 0 == len(maAddrs) {
					util.LogWarn(log, util.CoLightRed, "peer with no addresses")
					continue loop
				}
				info := peerlib.AddrInfo{ID: peerID, Addrs: maAddrs}
				go n.DirectConnect(info)

			default:
				// other traffic is not for the peering node
			}
		case <-delay:
			delay = time.After(nodeInterval) // periodical process
			n.updateRegistersExpiry()
			go n.connectRandomNode()
		}
	}
}

// Finalise - stop all background tasks
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}
	globalData.Log.Info("shutting down…")
	globalData.Log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false
	globalData.Log.Info("finished")
	globalData.Log.Flush()

	return nil
}

// GlobalNode - return the peering node for other packages to use
func GlobalNode() *Node {
	return &globalData
}

// MulticastCommand - multicast a packed message over the gossip topic
func MulticastCommand(packedMessage []byte) error {
	err := globalData.Multicast.Publish(TopicMulticasting, packedMessage)
	if err != nil {
		util.LogWarn(globalData.Log, util.CoLightRed, fmt.Sprintf("MulticastCommand publish error: %v", err))
		return err
	}
	return nil
}

// ID - this node's host ID
func ID() peerlib.ID {
	return globalData.Host.ID()
}

// GetAllPeers - obtain a list of all connected peers
func GetAllPeers() []*Connected {
	globalData.RLock()
	defer globalData.RUnlock()

	var peers []*Connected
	for key, status := range globalData.Registers {
		if status.Registered && globalData.isConnected(key) {
			addrInfo := globalData.Host.Peerstore().PeerInfo(key)
			addrs := make([]string, 0, len(addrInfo.Addrs))
			for _, addr := range addrInfo.Addrs {
				addrs = append(addrs, addr.String())
			}
			peers = append(peers, &Connected{Server: addrInfo.ID.String(), Address: addrs})
		}
	}
	return peers
}

// ConnectedCount - number of registered live connections
func ConnectedCount() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	count := uint64(0)
	for key, status := range globalData.Registers {
		if status.Registered && globalData.isConnected(key) {
			count++
		}
	}
	return count
}

// IDString - printable host ID, empty before initialisation
func IDString() string {
	if nil == globalData.Host {
		return ""
	}
	return globalData.Host.ID().Pretty()
}
