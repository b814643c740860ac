// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bytes"
	"time"

	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/constants"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/ownership"
	"github.com/bitmark-inc/bankd/reconcile"
	"github.com/bitmark-inc/bankd/storage"
	"github.com/bitmark-inc/bankd/utxo"
)

// transition kinds as reported to clients and subscribers
const (
	KindIssue  = "issue"
	KindMine   = "mine"
	KindRedeem = "redeem"
)

// labels inside the bank state pool
var (
	bankPointKey    = []byte("point")
	bankSequenceKey = []byte("sequence")
)

// TransitionInfo - result returned by store transition
type TransitionInfo struct {
	TxId     digest.Digest `json:"txId"`
	Kind     string        `json:"kind"`
	Sequence uint64        `json:"sequence"`
	Delta    int64         `json:"delta"`
	Deferred bool          `json:"deferred"`
}

// StoreTransition - validate a packed transition and advance the book
//
// return transition info and a duplicate flag
//
// a transition spending the current bank UTXO is applied at once and
// any held back successors are applied after it; a transition
// spending a bank UTXO that is still ahead of this node is held back
// and the info carries the deferred flag.  duplicate is true when the
// same transition is already waiting.
func StoreTransition(packed utxo.Packed) (*TransitionInfo, bool, error) {

	// critical code - prevent overlapping transitions
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, false, fault.NotInitialised
	}

	context, err := utxo.UnpackContext(packed)
	if nil != err {
		return nil, false, err
	}

	txId := digest.NewDigest(packed)

	// reject anything this node has already applied
	if _, ok := globalData.recent[txId]; ok {
		return nil, false, fault.TransactionAlreadyExists
	}
	if storage.Pool.Transactions.Has(txId[:]) {
		return nil, false, fault.TransactionAlreadyExists
	}

	data := &transitionData{
		txId:      txId,
		packed:    packed,
		context:   context,
		expiresAt: time.Now().Add(constants.ReservoirTimeout),
	}

	switch context.Purpose.(type) {

	case utxo.Mint:
		data.kind = KindIssue
		if globalData.issued {
			return nil, false, fault.AlreadyIssued
		}
		info, err := apply(data)
		if nil != err {
			return nil, false, err
		}
		drainPending()
		return info, false, nil

	case utxo.Spend:
		tag, err := bank.UnpackRedeemer(context.Redeemer)
		if nil != err {
			return nil, false, err
		}
		data.kind = tag.String()

		bankIn, err := utxo.UniqueInputWithToken(context.Inputs, globalData.parameters.BankID())
		if nil != err {
			return nil, false, err
		}
		consumed := bankIn.OutPoint

		if globalData.issued && consumed == globalData.currentPoint {
			info, err := apply(data)
			if nil != err {
				return nil, false, err
			}
			drainPending()
			return info, false, nil
		}

		// a bank position this node has already moved past is dead,
		// only its actual spender was accepted
		if globalData.issued && storage.Pool.Snapshots.Has(consumed.Bytes()) {
			return nil, false, fault.StaleTransition
		}

		// hold back until the bank reaches the spent out point
		if point, ok := globalData.pendingIndex[txId]; ok && point == consumed {
			globalData.log.Debugf("duplicate deferred transition: %s", txId)
			return deferredInfo(data), true, nil
		}
		if _, ok := globalData.pending[consumed]; ok {
			return nil, false, fault.DoubleSpendAttempt
		}
		if len(globalData.pending) >= maximumPendingTransitions {
			return nil, false, fault.BufferCapacityLimit
		}

		globalData.log.Infof("deferring transition: %s until bank reaches: %s", txId, consumed)
		globalData.pending[consumed] = data
		globalData.pendingIndex[txId] = consumed
		return deferredInfo(data), false, nil

	default:
		return nil, false, fault.InvalidRedeemer
	}
}

// ValidateTransition - check a packed transition without applying it
//
// the book is not advanced and nothing is stored; the info carries the
// deferred flag when the spent bank out point is still ahead of this
// node
func ValidateTransition(packed utxo.Packed) (*TransitionInfo, error) {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	context, err := utxo.UnpackContext(packed)
	if nil != err {
		return nil, err
	}

	txId := digest.NewDigest(packed)

	if _, ok := globalData.recent[txId]; ok {
		return nil, fault.TransactionAlreadyExists
	}
	if storage.Pool.Transactions.Has(txId[:]) {
		return nil, fault.TransactionAlreadyExists
	}

	p := globalData.parameters

	kind := ""
	rewardIn := uint64(0)
	deferred := false

	switch context.Purpose.(type) {

	case utxo.Mint:
		kind = KindIssue
		if globalData.issued {
			return nil, fault.AlreadyIssued
		}

	case utxo.Spend:
		tag, err := bank.UnpackRedeemer(context.Redeemer)
		if nil != err {
			return nil, err
		}
		kind = tag.String()

		bankIn, err := utxo.UniqueInputWithToken(context.Inputs, p.BankID())
		if nil != err {
			return nil, err
		}
		if globalData.issued && storage.Pool.Snapshots.Has(bankIn.OutPoint.Bytes()) &&
			bankIn.OutPoint != globalData.currentPoint {
			return nil, fault.StaleTransition
		}
		deferred = !globalData.issued || bankIn.OutPoint != globalData.currentPoint
		rewardIn = bankIn.Output.Value.Quantity(p.RewardToken)

	default:
		return nil, fault.InvalidRedeemer
	}

	err = bank.Validate(context, p)
	if nil != err {
		return nil, err
	}

	bankOut, err := utxo.UniqueOutputWithToken(context.Outputs, p.BankID())
	if nil != err {
		return nil, err
	}

	delta, err := reconcile.SignedDifference(bankOut.Value.Quantity(p.RewardToken), rewardIn)
	if nil != err {
		return nil, err
	}

	return &TransitionInfo{
		TxId:     txId,
		Kind:     kind,
		Delta:    delta,
		Deferred: deferred,
	}, nil
}

func deferredInfo(data *transitionData) *TransitionInfo {
	return &TransitionInfo{
		TxId:     data.txId,
		Kind:     data.kind,
		Deferred: true,
	}
}

// apply held back transitions now unblocked, in chain order
//
// hold the lock before calling
func drainPending() {
	log := globalData.log

loop:
	for globalData.issued {
		data, ok := globalData.pending[globalData.currentPoint]
		if !ok {
			break loop
		}
		delete(globalData.pending, globalData.currentPoint)
		delete(globalData.pendingIndex, data.txId)

		_, err := apply(data)
		if nil != err {
			log.Warnf("deferred transition: %s rejected: %s", data.txId, err)
			break loop
		}
		log.Infof("deferred transition: %s applied", data.txId)
	}
}

// validate one transition against the current book and commit it
//
// hold the lock before calling
func apply(data *transitionData) (*TransitionInfo, error) {
	log := globalData.log
	p := globalData.parameters
	context := data.context
	txId := data.txId

	before := ledger.NewSnapshot()
	rewardIn := uint64(0)

	if KindIssue != data.kind {

		// the carried bank input must be the stored book, byte for byte
		bankIn, err := utxo.UniqueInputWithToken(context.Inputs, p.BankID())
		if nil != err {
			return nil, err
		}
		stored := storage.Pool.Snapshots.Get(bankIn.OutPoint.Bytes())
		if !bytes.Equal(stored, bankIn.Output.Datum) {
			return nil, fault.SnapshotMismatch
		}

		before = globalData.current
		rewardIn = bankIn.Output.Value.Quantity(p.RewardToken)
	}

	err := bank.Validate(context, p)
	if nil != err {
		return nil, err
	}

	// locate the reproduced bank UTXO, uniqueness was already validated
	bankID := p.BankID()
	outputIndex := -1
	for i, output := range context.Outputs {
		if output.Value.HasToken(bankID) {
			outputIndex = i
			break
		}
	}
	if outputIndex < 0 {
		return nil, fault.BankTokenMissing
	}
	bankOut := context.Outputs[outputIndex]

	after, err := ledger.UnpackSnapshot(bankOut.Datum)
	if nil != err {
		return nil, err
	}

	delta, err := reconcile.SignedDifference(bankOut.Value.Quantity(p.RewardToken), rewardIn)
	if nil != err {
		return nil, err
	}

	newPoint := utxo.OutPoint{
		TxID:  txId,
		Index: uint32(outputIndex),
	}
	sequence := globalData.sequence + 1

	// commit the whole transition or none of it
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.PutNB(storage.Pool.Transactions, txId[:], sequence, data.packed)
	trx.Put(storage.Pool.Snapshots, newPoint.Bytes(), bankOut.Datum)
	trx.Put(storage.Pool.BankState, bankPointKey, newPoint.Bytes())
	trx.PutN(storage.Pool.BankState, bankSequenceKey, sequence)

	after.Range(func(owner ledger.OwnerKey, balance ledger.Balance) bool {
		old, ok := before.Get(owner)
		if !ok || old != balance {
			ownership.RecordTransition(trx, txId, owner, balance)
		}
		return true
	})

	err = trx.Commit()
	if nil != err {
		log.Criticalf("transition: %s commit error: %s", txId, err)
		return nil, err
	}

	globalData.issued = true
	globalData.current = after
	globalData.currentPoint = newPoint
	globalData.sequence = sequence

	data.expiresAt = time.Now().Add(constants.TransitionTimeout)
	globalData.recent[txId] = data

	log.Infof("applied %s transition: %s  sequence: %d  delta: %d", data.kind, txId, sequence, delta)

	messagebus.Bus.Broadcast.Send("transition", data.packed)

	return &TransitionInfo{
		TxId:     txId,
		Kind:     data.kind,
		Sequence: sequence,
		Delta:    delta,
	}, nil
}
