// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receptor

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gogo/protobuf/proto"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bankd/announce/helper"
	"github.com/bitmark-inc/bankd/announce/id"
	"github.com/bitmark-inc/bankd/announce/parameter"
	"github.com/bitmark-inc/bankd/avl"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/util"
)

// Receptor - peer directory operations
type Receptor interface {
	Add(peerlib.ID, []ma.Multiaddr, uint64) bool
	SetSelf(peerlib.ID, []ma.Multiaddr) error
	Next(peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error)
	Random(peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error)
	UpdateTime(peerlib.ID, time.Time)
	ReBalance()
	Expire()
	IsSet() bool
	Changed() bool
	Change(bool)
	ID() peerlib.ID
	ShortID() string
	BinaryID() []byte
	Self() *avl.Node
	SelfAddress() []ma.Multiaddr
	Tree() *avl.Tree
}

type receptor struct {
	sync.RWMutex
	log           *logger.L
	tree          *avl.Tree
	self          *avl.Node
	selfID        peerlib.ID
	selfListeners []ma.Multiaddr
	set           bool
	treeChanged   bool
}

// New - return a Receptor with an empty tree
func New(log *logger.L) Receptor {
	return &receptor{
		log:  log,
		tree: avl.New(),
	}
}

// Add - add a peer announcement to the tree
// returns:
//   true  if this was a new/updated entry
//   false if the update was within the limits (to prevent continuous relaying)
func (r *receptor) Add(peerID peerlib.ID, listeners []ma.Multiaddr, timestamp uint64) bool {

	ts := helper.ResetFutureTimestampToNow(timestamp)
	if helper.IsExpiredAfterDuration(ts, parameter.ExpiryInterval) {
		return false
	}

	r.Lock()
	defer r.Unlock()

	if node, _ := r.tree.Search(id.ID(peerID)); nil != node {
		peer := node.Value().(*Data)
		if time.Since(peer.Timestamp) < parameter.RebroadcastInterval {
			return false
		}
	}

	r.tree.Insert(id.ID(peerID), &Data{
		ID:        peerID,
		Listeners: listeners,
		Timestamp: ts,
	})
	r.treeChanged = true
	return true
}

// SetSelf - called once the p2p host is listening to store this
// node's own entry, the entry never expires
func (r *receptor) SetSelf(peerID peerlib.ID, listeners []ma.Multiaddr) error {
	r.Lock()
	defer r.Unlock()

	r.selfID = peerID
	r.selfListeners = listeners

	r.tree.Insert(id.ID(peerID), &Data{
		ID:        peerID,
		Listeners: listeners,
		Timestamp: time.Now(),
	})
	node, _ := r.tree.Search(id.ID(peerID))
	r.self = node
	r.set = true
	r.treeChanged = true
	return nil
}

// Next - fetch the next entry following the given ID, wrapping
// around to the first entry
func (r *receptor) Next(peerID peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error) {
	r.RLock()
	defer r.RUnlock()

	if 0 == r.tree.Count() {
		return "", nil, time.Time{}, fault.InvalidPublicKey
	}

	node, index := r.tree.Search(id.ID(peerID))
	if nil != node {
		node = node.Next()
	} else {
		node = r.tree.Get(index)
	}
	if nil == node {
		node = r.tree.First()
	}

	peer := node.Value().(*Data)
	return peer.ID, peer.Listeners, peer.Timestamp, nil
}

// Random - fetch a random entry not matching the given ID
func (r *receptor) Random(peerID peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error) {
	r.RLock()
	defer r.RUnlock()

	count := r.tree.Count()
	if count <= 1 {
		return "", nil, time.Time{}, fault.InvalidPublicKey
	}

	node := r.tree.Get(rand.Intn(count))
	if nil == node {
		return "", nil, time.Time{}, fault.InvalidPublicKey
	}

	peer := node.Value().(*Data)
	if util.IDEqual(peer.ID, peerID) || util.IDEqual(peer.ID, r.selfID) {
		node = node.Next()
		if nil == node {
			node = r.tree.First()
		}
		peer = node.Value().(*Data)
	}
	if util.IDEqual(peer.ID, peerID) {
		return "", nil, time.Time{}, fault.InvalidPublicKey
	}
	return peer.ID, peer.Listeners, peer.Timestamp, nil
}

// UpdateTime - set the last seen time for an entry
func (r *receptor) UpdateTime(peerID peerlib.ID, timestamp time.Time) {
	r.Lock()
	defer r.Unlock()

	node, _ := r.tree.Search(id.ID(peerID))
	if nil == node {
		r.log.Errorf("The peer with public key %x is not existing in peer tree", peerID.Pretty())
		return
	}
	peer := node.Value().(*Data)
	peer.Timestamp = timestamp
}

// Expire - remove outdated entries, this node's own entry is kept
func (r *receptor) Expire() {
	r.Lock()
	defer r.Unlock()

	nextNode := (*avl.Node)(nil)
scanning:
	for node := r.tree.First(); nil != node; node = nextNode {
		nextNode = node.Next()

		peer, ok := node.Value().(*Data)
		if !ok || util.IDEqual(peer.ID, r.selfID) {
			continue scanning
		}
		if helper.IsExpiredAfterDuration(peer.Timestamp, parameter.ExpiryInterval) {
			r.tree.Delete(node.Key())
			r.treeChanged = true
			util.LogDebug(r.log, util.CoReset, fmt.Sprintf("expire peer: %s", peer.ID.ShortString()))
		}
	}
}

// ReBalance - recompute the neighbour set and queue connection
// requests for the successor and the node half way around the ring
func (r *receptor) ReBalance() {
	r.RLock()
	defer r.RUnlock()

	if nil == r.self {
		return
	}

	count := r.tree.Count()
	if count <= 1 {
		return
	}

	_, index := r.tree.Search(id.ID(r.selfID))
	targets := []int{(index + 1) % count, (index + count/2) % count}

neighbours:
	for _, i := range targets {
		node := r.tree.Get(i)
		if nil == node {
			continue neighbours
		}
		peer, ok := node.Value().(*Data)
		if !ok || util.IDEqual(peer.ID, r.selfID) {
			continue neighbours
		}
		idBinary, errID := peer.ID.Marshal()
		pbAddrsBinary, errMarshal := proto.Marshal(&Addrs{Address: util.GetBytesFromMultiaddr(peer.Listeners)})
		if nil == errID && nil == errMarshal {
			messagebus.Bus.Connector.Send("connect", idBinary, pbAddrsBinary)
			util.LogDebug(r.log, util.CoYellow, fmt.Sprintf("rebalance connect to: %s", peer.ID.ShortString()))
		}
	}
}

// IsSet - is the own entry set
func (r *receptor) IsSet() bool {
	r.RLock()
	defer r.RUnlock()
	return r.set
}

// Changed - was the tree modified since the last Change(false)
func (r *receptor) Changed() bool {
	r.RLock()
	defer r.RUnlock()
	return r.treeChanged
}

// Change - set or clear the tree changed flag
func (r *receptor) Change(changed bool) {
	r.Lock()
	defer r.Unlock()
	r.treeChanged = changed
}

// ID - this node's peer ID
func (r *receptor) ID() peerlib.ID {
	r.RLock()
	defer r.RUnlock()
	return r.selfID
}

// ShortID - abbreviated peer ID for logging
func (r *receptor) ShortID() string {
	r.RLock()
	defer r.RUnlock()
	return r.selfID.ShortString()
}

// BinaryID - binary form of this node's peer ID
func (r *receptor) BinaryID() []byte {
	r.RLock()
	defer r.RUnlock()
	binID, _ := r.selfID.MarshalBinary()
	return binID
}

// Self - this node's own tree node
func (r *receptor) Self() *avl.Node {
	r.RLock()
	defer r.RUnlock()
	return r.self
}

// SelfAddress - this node's own listeners
func (r *receptor) SelfAddress() []ma.Multiaddr {
	r.RLock()
	defer r.RUnlock()
	return r.selfListeners
}

// Tree - the underlying AVL tree
func (r *receptor) Tree() *avl.Tree {
	r.RLock()
	defer r.RUnlock()
	return r.tree
}
