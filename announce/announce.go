// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package announce

import (
	"time"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/bankd/announce/fingerprint"
	"github.com/bitmark-inc/bankd/announce/rpc"
)

// Announce - the announce interface for RPC and peering callers
type Announce interface {
	Set(fingerprint.Type, []byte) error
	SetPeer(peerlib.ID, []ma.Multiaddr) error
	AddPeer(peerlib.ID, []ma.Multiaddr, uint64) bool
	AddRPC([]byte, []byte, uint64) bool
	Fetch(uint64, int) ([]rpc.Entry, uint64, error)
	GetNext(peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error)
	GetRandom(peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error)
}

// Get - return the global announce interface
func Get() Announce {
	return &globalData
}

// Set - set this node's rpc listener announcement
func (a *announcerData) Set(fin fingerprint.Type, rpcs []byte) error {
	return a.rpcs.Set(fin, rpcs)
}

// SetPeer - set this node's peer announcement
func (a *announcerData) SetPeer(id peerlib.ID, listeners []ma.Multiaddr) error {
	return a.receptors.SetSelf(id, listeners)
}

// AddPeer - add a peer announcement to the tree
func (a *announcerData) AddPeer(id peerlib.ID, listeners []ma.Multiaddr, timestamp uint64) bool {
	return a.receptors.Add(id, listeners, timestamp)
}

// AddRPC - add an rpc announcement
func (a *announcerData) AddRPC(fin []byte, listeners []byte, timestamp uint64) bool {
	return a.rpcs.Add(fin, listeners, timestamp)
}

// Fetch - fetch rpc entries for the node list
func (a *announcerData) Fetch(start uint64, count int) ([]rpc.Entry, uint64, error) {
	return a.rpcs.Fetch(start, count)
}

// GetNext - return the next node in the ring after the given one
func (a *announcerData) GetNext(id peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error) {
	return a.receptors.Next(id)
}

// GetRandom - return a random node, never this node or the given one
func (a *announcerData) GetRandom(id peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error) {
	return a.receptors.Random(id)
}

// Set - global helper for this node's rpc announcement
func Set(fin fingerprint.Type, rpcs []byte) error {
	return globalData.Set(fin, rpcs)
}

// SetPeer - global helper for this node's peer announcement
func SetPeer(id peerlib.ID, listeners []ma.Multiaddr) error {
	return globalData.SetPeer(id, listeners)
}

// AddPeer - global helper to add a peer announcement
func AddPeer(id peerlib.ID, listeners []ma.Multiaddr, timestamp uint64) bool {
	return globalData.AddPeer(id, listeners, timestamp)
}

// AddRPC - global helper to add an rpc announcement
func AddRPC(fin []byte, listeners []byte, timestamp uint64) bool {
	return globalData.AddRPC(fin, listeners, timestamp)
}

// FetchRPCs - global helper to fetch rpc entries
func FetchRPCs(start uint64, count int) ([]rpc.Entry, uint64, error) {
	return globalData.Fetch(start, count)
}

// GetNext - global helper for ring traversal
func GetNext(id peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error) {
	return globalData.GetNext(id)
}

// GetRandom - global helper for random node selection
func GetRandom(id peerlib.ID) (peerlib.ID, []ma.Multiaddr, time.Time, error) {
	return globalData.GetRandom(id)
}
