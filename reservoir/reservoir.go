// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/storage"
	"github.com/bitmark-inc/bankd/utxo"
)

// TransitionState - state of a transition as this node sees it
type TransitionState int

const (
	StateUnknown TransitionState = iota
	StatePending TransitionState = iota
	StateApplied TransitionState = iota
)

// String - string representation of a transition state
func (state TransitionState) String() string {
	switch state {
	case StatePending:
		return "Pending"
	case StateApplied:
		return "Applied"
	default:
		return "Unknown"
	}
}

// MarshalText - convert state to text for JSON replies
func (state TransitionState) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

// Reservoir - the interface callers outside this package depend on
type Reservoir interface {
	StoreTransition(packed utxo.Packed) (*TransitionInfo, bool, error)
	ValidateTransition(packed utxo.Packed) (*TransitionInfo, error)
	TransitionStatus(txId digest.Digest) TransitionState
	ReadCounters() (int, int)
	Sequence() uint64
	IsIssued() bool
	CurrentPoint() (utxo.OutPoint, bool)
	Balance(owner ledger.OwnerKey) (ledger.Balance, bool)
	Owners() int
	BookTotal() (ledger.Balance, error)
	PackedBook() []byte
}

// Get - the single reservoir instance
func Get() Reservoir {
	return &globalData
}

func (g *globalDataType) StoreTransition(packed utxo.Packed) (*TransitionInfo, bool, error) {
	return StoreTransition(packed)
}

func (g *globalDataType) ValidateTransition(packed utxo.Packed) (*TransitionInfo, error) {
	return ValidateTransition(packed)
}

// TransitionStatus - where a transition currently stands
func (g *globalDataType) TransitionStatus(txId digest.Digest) TransitionState {
	g.RLock()
	if _, ok := g.pendingIndex[txId]; ok {
		g.RUnlock()
		return StatePending
	}
	if _, ok := g.recent[txId]; ok {
		g.RUnlock()
		return StateApplied
	}
	g.RUnlock()

	if storage.Pool.Transactions != nil && storage.Pool.Transactions.Has(txId[:]) {
		return StateApplied
	}
	return StateUnknown
}

func (g *globalDataType) ReadCounters() (int, int) {
	return ReadCounters()
}

func (g *globalDataType) Sequence() uint64 {
	return Sequence()
}

func (g *globalDataType) IsIssued() bool {
	return IsIssued()
}

func (g *globalDataType) CurrentPoint() (utxo.OutPoint, bool) {
	return CurrentPoint()
}

func (g *globalDataType) Balance(owner ledger.OwnerKey) (ledger.Balance, bool) {
	return Balance(owner)
}

func (g *globalDataType) Owners() int {
	return Owners()
}

func (g *globalDataType) BookTotal() (ledger.Balance, error) {
	return BookTotal()
}

func (g *globalDataType) PackedBook() []byte {
	return PackedBook()
}
