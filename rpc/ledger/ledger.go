// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/ownership"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/rpc/ratelimit"
	"github.com/bitmark-inc/bankd/utxo"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// paging limits
const (
	MaximumOwnersCount  = 100
	MaximumHistoryCount = 100
)

// Ledger - type for the RPC
type Ledger struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Rsvr      reservoir.Reservoir
	Ownership ownership.Ownership
}

func New(log *logger.L, rsvr reservoir.Reservoir, os ownership.Ownership) *Ledger {
	return &Ledger{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Rsvr:      rsvr,
		Ownership: os,
	}
}

// Balance
// -------

// BalanceArguments - owner to look up
type BalanceArguments struct {
	Owner ledger.OwnerKey `json:"owner"` // hex
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Balance ledger.Balance `json:"balance,string"`
	Member  bool           `json:"member"`
	History uint64         `json:"history,string"`
}

// Balance - balance of one owner in the current book
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	l.Log.Infof("Ledger.Balance: %s", arguments.Owner)

	balance, member := l.Rsvr.Balance(arguments.Owner)
	reply.Balance = balance
	reply.Member = member
	reply.History = l.Ownership.HistoryCount(arguments.Owner)

	return nil
}

// Owners
// ------

// OwnersArguments - page of the balance book wanted
//
// leave After unset to begin from the first owner, pass the last owner
// of the previous page to continue
type OwnersArguments struct {
	After *ledger.OwnerKey `json:"after"` // hex
	Count int              `json:"count"`
}

// OwnersReply - result of owners RPC
type OwnersReply struct {
	Owners []ownership.OwnerRecord `json:"owners"`
	Next   *ledger.OwnerKey        `json:"next,omitempty"`
}

// Owners - list a page of the balance book in owner key order
func (l *Ledger) Owners(arguments *OwnersArguments, reply *OwnersReply) error {

	if err := ratelimit.LimitN(l.Limiter, arguments.Count, MaximumOwnersCount); nil != err {
		return err
	}

	l.Log.Infof("Ledger.Owners: %+v", arguments)

	var after []byte
	if nil != arguments.After {
		after = arguments.After[:]
	}

	records, err := l.Ownership.ListOwners(after, arguments.Count)
	if nil != err {
		return err
	}

	reply.Owners = records
	if len(records) == arguments.Count {
		next := records[len(records)-1].Owner
		reply.Next = &next
	}

	return nil
}

// History
// -------

// HistoryArguments - page of one owner's transition history wanted
type HistoryArguments struct {
	Owner ledger.OwnerKey `json:"owner"`        // hex
	Start uint64          `json:"start,string"` // first record number
	Count int             `json:"count"`
}

// HistoryReply - result of history RPC
type HistoryReply struct {
	Data []ownership.Record `json:"data"`
	Next uint64             `json:"next,string"` // start value for the next call
}

// History - list balance changes of one owner in apply order
func (l *Ledger) History(arguments *HistoryArguments, reply *HistoryReply) error {

	if err := ratelimit.LimitN(l.Limiter, arguments.Count, MaximumHistoryCount); nil != err {
		return err
	}

	l.Log.Infof("Ledger.History: %+v", arguments)

	records, err := l.Ownership.ListTransitionsFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Data = records

	// if no record was found just return next as zero
	// otherwise the next possible number
	if 0 == len(records) {
		reply.Next = 0
	} else {
		reply.Next = records[len(records)-1].N + 1
	}

	return nil
}

// Snapshot
// --------

// SnapshotArguments - empty arguments for snapshot export
type SnapshotArguments struct{}

// SnapshotReply - the current book and where it sits on the chain
type SnapshotReply struct {
	Point    utxo.OutPoint `json:"point"`
	Sequence uint64        `json:"sequence,string"`
	Owners   int           `json:"owners"`
	Book     string        `json:"book"` // hex of the canonical packed form
}

// Snapshot - export the canonical packed form of the current book
func (l *Ledger) Snapshot(_ *SnapshotArguments, reply *SnapshotReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	point, issued := l.Rsvr.CurrentPoint()
	if !issued {
		return fault.BankNotIssued
	}

	reply.Point = point
	reply.Sequence = l.Rsvr.Sequence()
	reply.Owners = l.Rsvr.Owners()
	reply.Book = hex.EncodeToString(l.Rsvr.PackedBook())

	return nil
}
