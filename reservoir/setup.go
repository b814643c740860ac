// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"
	"time"

	"github.com/bitmark-inc/bankd/background"
	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/utxo"
	"github.com/bitmark-inc/logger"
)

// limit on transitions held back waiting for their predecessor
const maximumPendingTransitions = 256

// one submitted transition and its decoded form
type transitionData struct {
	txId      digest.Digest
	packed    utxo.Packed
	context   *utxo.Context
	kind      string
	expiresAt time.Time
}

// globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	initialised bool

	parameters bank.Parameters

	// the bank thread this node has followed so far
	issued       bool
	current      *ledger.Snapshot
	currentPoint utxo.OutPoint
	sequence     uint64

	// held back until the bank reaches the out point they spend
	pending      map[utxo.OutPoint]*transitionData
	pendingIndex map[digest.Digest]utxo.OutPoint

	// applied recently, kept for rebroadcasting
	recent map[digest.Digest]*transitionData

	background *background.T
}

// gobal storage
var globalData globalDataType

// Initialise - start the intake and restore any saved bank state
//
// the storage pools must be initialised first
func Initialise(parameters bank.Parameters) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("reservoir")
	globalData.log.Info("starting…")

	globalData.parameters = parameters
	globalData.issued = false
	globalData.current = nil
	globalData.sequence = 0
	globalData.pending = make(map[utxo.OutPoint]*transitionData)
	globalData.pendingIndex = make(map[digest.Digest]utxo.OutPoint)
	globalData.recent = make(map[digest.Digest]*transitionData)

	err := NewRestorer().Restore()
	if nil != err {
		return err
	}

	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&rebroadcaster{},
		&cleaner{},
	}

	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop all background processes
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ReadCounters - pending and recently applied transition counts
func ReadCounters() (int, int) {
	globalData.RLock()
	defer globalData.RUnlock()
	return len(globalData.pending), len(globalData.recent)
}

// Sequence - number of transitions applied to the bank so far
func Sequence() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.sequence
}

// IsIssued - check the bank exists on this node's view of the chain
func IsIssued() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.issued
}

// CurrentPoint - the out point the bank UTXO currently sits at
// the flag is false before issuance
func CurrentPoint() (utxo.OutPoint, bool) {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.currentPoint, globalData.issued
}

// Balance - balance of one owner in the current book
// the flag is false when the owner is not a member
func Balance(owner ledger.OwnerKey) (ledger.Balance, bool) {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.issued {
		return 0, false
	}
	return globalData.current.Get(owner)
}

// Owners - number of owners in the current book
func Owners() int {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.issued {
		return 0
	}
	return globalData.current.Count()
}

// BookTotal - sum of all balances in the current book
func BookTotal() (ledger.Balance, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.issued {
		return 0, nil
	}
	return globalData.current.Total()
}

// PackedBook - canonical bytes of the current book, nil before issuance
func PackedBook() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.issued {
		return nil
	}
	return globalData.current.Pack()
}
