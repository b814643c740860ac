// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reconcile - pairwise audit of two balance books
//
// every validator reduces to the same question: given the book before
// and the book after, is each per-owner change authorized and does the
// whole book balance against the tokens that entered or left.  this
// package answers it with one ordered outer join.
package reconcile

import (
	"math"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
)

// Allow - per-owner authorization predicate
//
// hasOld is false when the owner joins the book in this transaction,
// in which case old is zero.  a nil error accepts the change.
type Allow func(owner ledger.OwnerKey, old ledger.Balance, hasOld bool, next ledger.Balance) error

type entry struct {
	owner   ledger.OwnerKey
	balance ledger.Balance
}

// Reconcile - audit the transition from one balance book to the next
//
// rules applied in order:
//   - an owner present before must still be present after, otherwise
//     the membership fault aborts the audit
//   - every owner present in either book is submitted to allow and
//     the first rejection aborts the audit
//   - delta must equal the after total minus the before total, both
//     computed with overflow checks
func Reconcile(before *ledger.Snapshot, after *ledger.Snapshot, delta int64, allow Allow) error {
	b := flatten(before)
	a := flatten(after)

	i := 0
	j := 0
	for i < len(b) && j < len(a) {
		switch b[i].owner.Compare(a[j].owner) {
		case -1: // owner dropped from the book
			return fault.MembershipViolation
		case 0:
			err := allow(b[i].owner, b[i].balance, true, a[j].balance)
			if nil != err {
				return err
			}
			i += 1
			j += 1
		case +1: // owner joins the book
			err := allow(a[j].owner, 0, false, a[j].balance)
			if nil != err {
				return err
			}
			j += 1
		}
	}
	if i < len(b) {
		return fault.MembershipViolation
	}
	for ; j < len(a); j += 1 {
		err := allow(a[j].owner, 0, false, a[j].balance)
		if nil != err {
			return err
		}
	}

	beforeTotal, err := before.Total()
	if nil != err {
		return err
	}
	afterTotal, err := after.Total()
	if nil != err {
		return err
	}
	difference, err := SignedDifference(uint64(afterTotal), uint64(beforeTotal))
	if nil != err {
		return err
	}
	if difference != delta {
		return fault.ConservationViolation
	}

	return nil
}

// SignedDifference - a minus b with range checking
// differences beyond ±MaxInt64 are an error, never wrapped
func SignedDifference(a uint64, b uint64) (int64, error) {
	if a >= b {
		d := a - b
		if d > math.MaxInt64 {
			return 0, fault.DeltaOutOfRange
		}
		return int64(d), nil
	}
	d := b - a
	if d > math.MaxInt64 {
		return 0, fault.DeltaOutOfRange
	}
	return -int64(d), nil
}

// ascending entry list of a book
func flatten(snapshot *ledger.Snapshot) []entry {
	entries := make([]entry, 0, snapshot.Count())
	snapshot.Range(func(owner ledger.OwnerKey, balance ledger.Balance) bool {
		entries = append(entries, entry{owner: owner, balance: balance})
		return true
	})
	return entries
}
