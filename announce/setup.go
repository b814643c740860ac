// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package announce

import (
	"path"
	"sync"

	peerlib "github.com/libp2p/go-libp2p-core/peer"

	"github.com/bitmark-inc/bankd/announce/broadcast"
	"github.com/bitmark-inc/bankd/announce/domain"
	"github.com/bitmark-inc/bankd/announce/parameter"
	"github.com/bitmark-inc/bankd/announce/receptor"
	"github.com/bitmark-inc/bankd/announce/rpc"
	"github.com/bitmark-inc/bankd/background"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/util"
	"github.com/bitmark-inc/logger"
)

// file for storing saved peers
const peerFile = "peers.json"

// globals for background process
type announcerData struct {
	sync.RWMutex

	log *logger.L

	// tree of known peers and this node's rpc announcements
	receptors receptor.Receptor
	rpcs      rpc.RPC

	peerFile    string
	dnsPeerOnly broadcast.DNSType

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData announcerData

// Initialise - set up the announcement system
// pass a fully qualified domain for root node list
// or empty string for no root nodes
func Initialise(nodesDomain, cacheDirectory string, dnsPeerOnly broadcast.DNSType, f func(string) ([]string, error)) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("announce")
	globalData.log.Info("starting…")

	globalData.receptors = receptor.New(logger.New("receptor"))
	globalData.rpcs = rpc.New()
	globalData.peerFile = path.Join(cacheDirectory, peerFile)
	globalData.dnsPeerOnly = dnsPeerOnly

	globalData.log.Info("start restoring peer data…")
	if dnsPeerOnly == broadcast.UsePeers { // restore only full peer nodes
		restorePeers(globalData.peerFile, globalData.receptors, globalData.log)
	}

	nodesLookup, err := domain.NewDomain(
		logger.New("nodes"),
		nodesDomain,
		globalData.receptors,
		f,
	)
	if nil != err {
		return err
	}

	announcer := broadcast.New(
		logger.New("announcer"),
		globalData.receptors,
		globalData.rpcs,
		dnsPeerOnly,
		parameter.InitialiseInterval,
		parameter.PollingInterval,
	)

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		nodesLookup,
		announcer,
	}

	globalData.background = background.Start(processes, messagebus.Bus.Announce.Chan())

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// release message bus
	messagebus.Bus.Announce.Release()

	// stop background
	globalData.background.Stop()

	globalData.log.Info("start backing up peer data…")
	if err := receptor.Backup(globalData.peerFile, globalData.receptors.Tree()); nil != err {
		globalData.log.Errorf("fail to backup peer data: %s", err)
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// read the saved peer list and reload the tree
func restorePeers(peerFile string, receptors receptor.Receptor, log *logger.L) {
	list, err := receptor.Restore(peerFile)
	if nil != err {
		log.Errorf("fail to restore peer data: %s", err)
		return
	}

	for _, peer := range list.Receptors {
		id, err := peerlib.IDFromBytes(peer.ID)
		if nil != err {
			log.Warnf("invalid saved peer ID: %s", err)
			continue
		}
		addrs := util.GetMultiAddrsFromBytes(peer.Listeners.Address)
		if 0 == len(addrs) {
			continue
		}
		receptors.Add(id, addrs, peer.Timestamp)
	}
}

// Initialised - check the announcer is running
func Initialised() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.initialised
}
