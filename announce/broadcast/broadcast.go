// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcast

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/bankd/announce/observer"
	"github.com/bitmark-inc/bankd/announce/parameter"
	"github.com/bitmark-inc/bankd/announce/receptor"
	"github.com/bitmark-inc/bankd/announce/rpc"
	"github.com/bitmark-inc/bankd/background"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/util"
	"github.com/bitmark-inc/logger"
	"github.com/golang/protobuf/proto"
)

// DNSType - when DnsOnly this node stays hidden and never announces itself
type DNSType bool

const (
	DnsOnly  DNSType = true
	UsePeers DNSType = false
)

type broadcast struct {
	sync.RWMutex
	log                *logger.L
	receptors          receptor.Receptor
	rpcs               rpc.RPC
	dnsType            DNSType
	initialiseInterval time.Duration
	pollingInterval    time.Duration
}

// New - return background processing interface
func New(log *logger.L, receptors receptor.Receptor, rpcs rpc.RPC, dnsType DNSType, initialiseInterval time.Duration, pollingInterval time.Duration) background.Process {
	log.Info("initialising…")
	return &broadcast{
		log:                log,
		receptors:          receptors,
		rpcs:               rpcs,
		dnsType:            dnsType,
		initialiseInterval: initialiseInterval,
		pollingInterval:    pollingInterval,
	}
}

// Run - wait for incoming requests, process them and reply
func (b *broadcast) Run(arg interface{}, shutdown <-chan struct{}) {
	log := b.log

	log.Info("starting…")

	queue := arg.(<-chan messagebus.Message)

	observers := []observer.Observer{
		observer.NewReconnect(b.receptors),
		observer.NewUpdatetime(b.receptors, b.log),
		observer.NewAddpeer(b.receptors, b.log),
		observer.NewAddrpc(b.rpcs, b.log),
		observer.NewSelf(b.receptors, b.log),
	}

	delay := time.After(b.initialiseInterval)
loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			util.LogInfo(log, util.CoReset, fmt.Sprintf("received control: %s  parameters: %x", item.Command, item.Parameters))

			for _, o := range observers {
				o.Update(item.Command, item.Parameters)
			}

		case <-delay:
			delay = time.After(b.pollingInterval)
			b.process()
		}
	}
}

// process the announcement and return response to receptor
func (b *broadcast) process() {
	log := b.log

	util.LogInfo(log, util.CoReset, "process starting…")
	b.Lock()
	defer b.Unlock()

	// get a big endian Timestamp
	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, uint64(time.Now().Unix()))

	// announce this nodes IP and ports to other peers
	if b.rpcs.IsSet() {
		myFingerprint := b.rpcs.ID()
		log.Debugf("send rpc: %x", myFingerprint)
		if b.dnsType == UsePeers { // a dns-only node stays hidden
			messagebus.Bus.Broadcast.Send("rpc", myFingerprint[:], b.rpcs.Self(), timestamp)
		}
	}
	if b.receptors.IsSet() {
		addrsBinary, errAddr := proto.Marshal(&receptor.Addrs{Address: util.GetBytesFromMultiaddr(b.receptors.SelfAddress())})
		if nil == errAddr {
			util.LogInfo(log, util.CoYellow, fmt.Sprintf("-><- send self announcement ID: %v  address: %v", b.receptors.ShortID(), util.PrintMaAddrs(b.receptors.SelfAddress())))
			if b.dnsType == UsePeers { // a dns-only node stays hidden
				messagebus.Bus.Broadcast.Send("peer", b.receptors.BinaryID(), addrsBinary, timestamp)
			}
		}
	}
	b.rpcs.Expire()
	b.receptors.Expire()

	count := b.receptors.Tree().Count()
	if count <= parameter.MinTreeExpected {
		exhaustiveConnections(log, b.receptors)
	} else {
		b.receptors.ReBalance()
	}

	b.receptors.Change(false)
}

func exhaustiveConnections(log *logger.L, receptors receptor.Receptor) {
	tree := receptors.Tree()
	if nil == receptors.Self() {
		util.LogWarn(log, util.CoRed, "exhaustiveConnections called too early")
		return // called too early
	}
	// connect to everything else in the tree
	count := tree.Count()
	for i := 0; i < count; i++ {
		node := tree.Get(i)
		if nil != node {
			p := node.Value().(*receptor.Data)
			if nil != p && !util.IDEqual(p.ID, receptors.ID()) {
				idBinary, errID := p.ID.Marshal()
				pbAddr := util.GetBytesFromMultiaddr(p.Listeners)
				pbAddrBinary, errMarshal := proto.Marshal(&receptor.Addrs{Address: pbAddr})
				if nil == errID && nil == errMarshal {
					messagebus.Bus.Broadcast.Send("ES", idBinary, pbAddrBinary)
					util.LogDebug(log, util.CoYellow, fmt.Sprintf("--><-- exhaustiveConnections send %s : %s  address: %x", "ES", p.ID.ShortString(), receptor.AddrToString(pbAddrBinary)))
				}
			}
		}
	}
}
