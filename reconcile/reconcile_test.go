// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reconcile_test

import (
	"math"
	"testing"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/reconcile"
)

func makeOwner(n byte) ledger.OwnerKey {
	owner := ledger.OwnerKey{}
	owner[0] = n
	return owner
}

func makeSnapshot(balances map[byte]uint64) *ledger.Snapshot {
	snapshot := ledger.NewSnapshot()
	for n, balance := range balances {
		snapshot.Put(makeOwner(n), ledger.Balance(balance))
	}
	return snapshot
}

func permitAll(owner ledger.OwnerKey, old ledger.Balance, hasOld bool, next ledger.Balance) error {
	return nil
}

func TestReconcileUnchanged(t *testing.T) {
	before := makeSnapshot(map[byte]uint64{1: 100, 2: 200})
	after := makeSnapshot(map[byte]uint64{1: 100, 2: 200})

	err := reconcile.Reconcile(before, after, 0, permitAll)
	if nil != err {
		t.Fatalf("reconcile error: %s", err)
	}
}

func TestReconcileConservation(t *testing.T) {
	testCases := []struct {
		name   string
		before map[byte]uint64
		after  map[byte]uint64
		delta  int64
		err    error
	}{
		{"mint matches", map[byte]uint64{1: 100}, map[byte]uint64{1: 150}, 50, nil},
		{"burn matches", map[byte]uint64{1: 100, 2: 30}, map[byte]uint64{1: 80, 2: 30}, -20, nil},
		{"mint too small", map[byte]uint64{1: 100}, map[byte]uint64{1: 150}, 49, fault.ConservationViolation},
		{"mint too large", map[byte]uint64{1: 100}, map[byte]uint64{1: 150}, 51, fault.ConservationViolation},
		{"phantom delta", map[byte]uint64{1: 100}, map[byte]uint64{1: 100}, 1, fault.ConservationViolation},
		{"hidden transfer ok", map[byte]uint64{1: 100, 2: 0}, map[byte]uint64{1: 30, 2: 70}, 0, nil},
	}

	for _, testCase := range testCases {
		before := makeSnapshot(testCase.before)
		after := makeSnapshot(testCase.after)
		err := reconcile.Reconcile(before, after, testCase.delta, permitAll)
		if testCase.err != err {
			t.Errorf("%s: actual: %v  expected: %v", testCase.name, err, testCase.err)
		}
	}
}

func TestReconcileMembership(t *testing.T) {
	testCases := []struct {
		name   string
		before map[byte]uint64
		after  map[byte]uint64
		delta  int64
		err    error
	}{
		{"middle owner dropped", map[byte]uint64{1: 10, 2: 20, 3: 30}, map[byte]uint64{1: 10, 3: 30}, -20, fault.MembershipViolation},
		{"last owner dropped", map[byte]uint64{1: 10, 2: 20}, map[byte]uint64{1: 10}, -20, fault.MembershipViolation},
		{"all owners dropped", map[byte]uint64{1: 10}, map[byte]uint64{}, -10, fault.MembershipViolation},
		{"zero balance keeps membership", map[byte]uint64{1: 10, 2: 20}, map[byte]uint64{1: 0, 2: 20}, -10, nil},
		{"owner joins", map[byte]uint64{1: 10}, map[byte]uint64{1: 10, 2: 5}, 5, nil},
		{"join into empty book", map[byte]uint64{}, map[byte]uint64{9: 1}, 1, nil},
	}

	for _, testCase := range testCases {
		before := makeSnapshot(testCase.before)
		after := makeSnapshot(testCase.after)
		err := reconcile.Reconcile(before, after, testCase.delta, permitAll)
		if testCase.err != err {
			t.Errorf("%s: actual: %v  expected: %v", testCase.name, err, testCase.err)
		}
	}
}

func TestReconcileAllowArguments(t *testing.T) {
	before := makeSnapshot(map[byte]uint64{2: 20, 5: 50})
	after := makeSnapshot(map[byte]uint64{2: 25, 5: 50, 7: 7})

	type call struct {
		owner  byte
		old    ledger.Balance
		hasOld bool
		next   ledger.Balance
	}
	calls := []call{}

	err := reconcile.Reconcile(before, after, 12,
		func(owner ledger.OwnerKey, old ledger.Balance, hasOld bool, next ledger.Balance) error {
			calls = append(calls, call{owner: owner[0], old: old, hasOld: hasOld, next: next})
			return nil
		})
	if nil != err {
		t.Fatalf("reconcile error: %s", err)
	}

	expected := []call{
		{2, 20, true, 25},
		{5, 50, true, 50},
		{7, 0, false, 7},
	}
	if len(expected) != len(calls) {
		t.Fatalf("calls: actual: %d  expected: %d", len(calls), len(expected))
	}
	for i, e := range expected {
		if e != calls[i] {
			t.Errorf("call %d: actual: %v  expected: %v", i, calls[i], e)
		}
	}
}

func TestReconcileAllowRejection(t *testing.T) {
	before := makeSnapshot(map[byte]uint64{1: 10, 2: 20})
	after := makeSnapshot(map[byte]uint64{1: 10, 2: 19})

	err := reconcile.Reconcile(before, after, -1,
		func(owner ledger.OwnerKey, old ledger.Balance, hasOld bool, next ledger.Balance) error {
			if next < old {
				return fault.Unauthorized
			}
			return nil
		})
	if fault.Unauthorized != err {
		t.Fatalf("rejection: actual: %v  expected: %v", err, fault.Unauthorized)
	}
}

func TestReconcileOverflow(t *testing.T) {
	before := makeSnapshot(map[byte]uint64{1: math.MaxUint64, 2: 1})
	after := makeSnapshot(map[byte]uint64{1: math.MaxUint64, 2: 1})

	err := reconcile.Reconcile(before, after, 0, permitAll)
	if fault.BalanceOverflow != err {
		t.Fatalf("overflow: actual: %v  expected: %v", err, fault.BalanceOverflow)
	}
}

func TestSignedDifference(t *testing.T) {
	testCases := []struct {
		a        uint64
		b        uint64
		expected int64
		err      error
	}{
		{100, 40, 60, nil},
		{40, 100, -60, nil},
		{7, 7, 0, nil},
		{math.MaxInt64, 0, math.MaxInt64, nil},
		{0, math.MaxInt64, -math.MaxInt64, nil},
		{math.MaxUint64, 0, 0, fault.DeltaOutOfRange},
		{0, math.MaxUint64, 0, fault.DeltaOutOfRange},
	}

	for i, testCase := range testCases {
		actual, err := reconcile.SignedDifference(testCase.a, testCase.b)
		if testCase.err != err {
			t.Errorf("%d: error: actual: %v  expected: %v", i, err, testCase.err)
			continue
		}
		if nil == err && testCase.expected != actual {
			t.Errorf("%d: actual: %d  expected: %d", i, actual, testCase.expected)
		}
	}
}
