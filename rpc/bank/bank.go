// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/mode"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/rpc/ratelimit"
	"github.com/bitmark-inc/bankd/utxo"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBank = 200
	rateBurstBank = 100
)

// Bank - type for the RPC
type Bank struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Rsvr         reservoir.Reservoir
	ReadOnly     bool
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	rsvr reservoir.Reservoir,
	readOnly bool,
) *Bank {
	return &Bank{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitBank, rateBurstBank),
		IsNormalMode: isNormalMode,
		Rsvr:         rsvr,
		ReadOnly:     readOnly,
	}
}

// SubmitArguments - packed transition context for submission
type SubmitArguments struct {
	Packed utxo.Packed `json:"packed"` // hex
}

// SubmitReply - result from submit RPC
type SubmitReply struct {
	TxId      digest.Digest `json:"txId"`
	Kind      string        `json:"kind"`
	Sequence  uint64        `json:"sequence,string"`
	Delta     int64         `json:"delta,string"`
	Deferred  bool          `json:"deferred"`
	Duplicate bool          `json:"duplicate"`
}

// Submit - submit a packed transition to the bank
func (bank *Bank) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}
	if bank.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	log := bank.Log

	if nil == arguments || 0 == len(arguments.Packed) {
		return fault.InvalidItem
	}

	if !bank.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	log.Infof("Bank.Submit: %d bytes", len(arguments.Packed))

	stored, duplicate, err := bank.Rsvr.StoreTransition(arguments.Packed)
	if nil != err {
		return err
	}

	log.Debugf("id: %v", stored.TxId)
	reply.TxId = stored.TxId
	reply.Kind = stored.Kind
	reply.Sequence = stored.Sequence
	reply.Delta = stored.Delta
	reply.Deferred = stored.Deferred
	reply.Duplicate = duplicate

	return nil
}

// ValidateArguments - packed transition context to check
type ValidateArguments struct {
	Packed utxo.Packed `json:"packed"` // hex
}

// ValidateReply - result from validate RPC
type ValidateReply struct {
	TxId     digest.Digest `json:"txId"`
	Kind     string        `json:"kind"`
	Delta    int64         `json:"delta,string"`
	Deferred bool          `json:"deferred"`
}

// Validate - check a packed transition without applying it
func (bank *Bank) Validate(arguments *ValidateArguments, reply *ValidateReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Packed) {
		return fault.InvalidItem
	}

	if !bank.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	info, err := bank.Rsvr.ValidateTransition(arguments.Packed)
	if nil != err {
		return err
	}

	reply.TxId = info.TxId
	reply.Kind = info.Kind
	reply.Delta = info.Delta
	reply.Deferred = info.Deferred

	return nil
}

// StatusArguments - arguments for status RPC request
type StatusArguments struct {
	TxId digest.Digest `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status string `json:"status"`
}

// Status - query the state of a submitted transition
func (bank *Bank) Status(arguments *StatusArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	reply.Status = bank.Rsvr.TransitionStatus(arguments.TxId).String()
	return nil
}
