// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/util"
)

// owner key whose ordering follows n
func makeOwner(n byte) ledger.OwnerKey {
	owner := ledger.OwnerKey{}
	owner[0] = n
	owner[ledger.OwnerKeyLength-1] = 0xff - n
	return owner
}

func TestSnapshotBasic(t *testing.T) {
	snapshot := ledger.NewSnapshot()

	if 0 != snapshot.Count() {
		t.Fatalf("count: actual: %d  expected: 0", snapshot.Count())
	}

	snapshot.Put(makeOwner(5), 500)
	snapshot.Put(makeOwner(1), 100)
	snapshot.Put(makeOwner(3), 0) // zero balance is still a member

	if 3 != snapshot.Count() {
		t.Fatalf("count: actual: %d  expected: 3", snapshot.Count())
	}

	balance, ok := snapshot.Get(makeOwner(1))
	if !ok || 100 != balance {
		t.Errorf("get: actual: %d,%v  expected: 100,true", balance, ok)
	}
	balance, ok = snapshot.Get(makeOwner(3))
	if !ok || 0 != balance {
		t.Errorf("zero balance member: actual: %d,%v  expected: 0,true", balance, ok)
	}
	_, ok = snapshot.Get(makeOwner(9))
	if ok {
		t.Errorf("get of absent owner must fail")
	}

	// replace keeps the count
	snapshot.Put(makeOwner(5), 501)
	if 3 != snapshot.Count() {
		t.Fatalf("count after replace: actual: %d  expected: 3", snapshot.Count())
	}
	balance, _ = snapshot.Get(makeOwner(5))
	if 501 != balance {
		t.Errorf("replace: actual: %d  expected: 501", balance)
	}

	if !snapshot.Delete(makeOwner(3)) {
		t.Errorf("delete of member failed")
	}
	if snapshot.Delete(makeOwner(3)) {
		t.Errorf("delete of absent owner must fail")
	}
	if 2 != snapshot.Count() {
		t.Fatalf("count after delete: actual: %d  expected: 2", snapshot.Count())
	}
}

func TestSnapshotRangeOrder(t *testing.T) {
	snapshot := ledger.NewSnapshot()
	snapshot.Put(makeOwner(7), 7)
	snapshot.Put(makeOwner(2), 2)
	snapshot.Put(makeOwner(9), 9)
	snapshot.Put(makeOwner(4), 4)

	seen := []byte{}
	snapshot.Range(func(owner ledger.OwnerKey, balance ledger.Balance) bool {
		seen = append(seen, owner[0])
		return true
	})
	if !bytes.Equal([]byte{2, 4, 7, 9}, seen) {
		t.Errorf("order: actual: %v  expected: [2 4 7 9]", seen)
	}

	// early stop
	seen = seen[:0]
	snapshot.Range(func(owner ledger.OwnerKey, balance ledger.Balance) bool {
		seen = append(seen, owner[0])
		return len(seen) < 2
	})
	if 2 != len(seen) {
		t.Errorf("early stop: actual: %d entries  expected: 2", len(seen))
	}
}

func TestSnapshotTotal(t *testing.T) {
	snapshot := ledger.NewSnapshot()
	snapshot.Put(makeOwner(1), 100)
	snapshot.Put(makeOwner(2), 250)
	snapshot.Put(makeOwner(3), 0)

	total, err := snapshot.Total()
	if nil != err {
		t.Fatalf("total error: %s", err)
	}
	if 350 != total {
		t.Errorf("total: actual: %d  expected: 350", total)
	}

	snapshot.Put(makeOwner(4), math.MaxUint64)
	_, err = snapshot.Total()
	if fault.BalanceOverflow != err {
		t.Fatalf("overflow: actual: %v  expected: %v", err, fault.BalanceOverflow)
	}
}

func TestPackUnpackIdentity(t *testing.T) {
	snapshot := ledger.NewSnapshot()
	snapshot.Put(makeOwner(11), 1)
	snapshot.Put(makeOwner(3), 2000000)
	snapshot.Put(makeOwner(200), 0)
	snapshot.Put(makeOwner(42), math.MaxUint64)

	packed := snapshot.Pack()
	unpacked, err := ledger.UnpackSnapshot(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	if snapshot.Count() != unpacked.Count() {
		t.Fatalf("count: actual: %d  expected: %d", unpacked.Count(), snapshot.Count())
	}
	snapshot.Range(func(owner ledger.OwnerKey, balance ledger.Balance) bool {
		b, ok := unpacked.Get(owner)
		if !ok || b != balance {
			t.Errorf("owner %s: actual: %d,%v  expected: %d,true", owner, b, ok, balance)
		}
		return true
	})

	if repacked := unpacked.Pack(); !bytes.Equal(packed, repacked) {
		t.Errorf("repack is not canonical:\n%s", util.FormatBytes("repacked", repacked))
	}
}

func TestUnpackEmpty(t *testing.T) {
	snapshot := ledger.NewSnapshot()
	packed := snapshot.Pack()
	if !bytes.Equal([]byte{0x00}, packed) {
		t.Fatalf("empty pack: actual: %x  expected: 00", packed)
	}

	unpacked, err := ledger.UnpackSnapshot(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if 0 != unpacked.Count() {
		t.Errorf("count: actual: %d  expected: 0", unpacked.Count())
	}

	_, err = ledger.UnpackSnapshot([]byte{})
	if fault.MalformedLedger != err {
		t.Fatalf("empty buffer: actual: %v  expected: %v", err, fault.MalformedLedger)
	}
}

// build a packed list from entries without any ordering checks
func packEntries(entries []struct {
	owner   byte
	balance uint64
}) []byte {
	buffer := util.ToVarint64(uint64(len(entries)))
	for _, entry := range entries {
		owner := makeOwner(entry.owner)
		buffer = append(buffer, owner[:]...)
		buffer = append(buffer, util.ToVarint64(entry.balance)...)
	}
	return buffer
}

func TestUnpackRejectsDisorder(t *testing.T) {
	type entry = struct {
		owner   byte
		balance uint64
	}

	testCases := []struct {
		name    string
		entries []entry
		err     error
	}{
		{"ascending", []entry{{1, 10}, {2, 20}, {3, 30}}, nil},
		{"duplicate", []entry{{1, 10}, {1, 20}}, fault.LedgerKeysOutOfOrder},
		{"descending", []entry{{2, 10}, {1, 20}}, fault.LedgerKeysOutOfOrder},
		{"late disorder", []entry{{1, 10}, {5, 20}, {4, 30}}, fault.LedgerKeysOutOfOrder},
	}

	for _, testCase := range testCases {
		_, err := ledger.UnpackSnapshot(packEntries(testCase.entries))
		if testCase.err != err {
			t.Errorf("%s: actual: %v  expected: %v", testCase.name, err, testCase.err)
		}
	}
}

func TestUnpackRejectsDamage(t *testing.T) {
	snapshot := ledger.NewSnapshot()
	snapshot.Put(makeOwner(1), 300)
	snapshot.Put(makeOwner(2), 12)
	packed := snapshot.Pack()

	// every truncation must fail
	for i := 0; i < len(packed); i += 1 {
		_, err := ledger.UnpackSnapshot(packed[:i])
		if nil == err {
			t.Errorf("truncated buffer length %d unpacked without error", i)
		}
	}

	// trailing bytes must fail
	_, err := ledger.UnpackSnapshot(append(packed[:len(packed):len(packed)], 0x00))
	if fault.MalformedLedger != err {
		t.Fatalf("trailing byte: actual: %v  expected: %v", err, fault.MalformedLedger)
	}
}
