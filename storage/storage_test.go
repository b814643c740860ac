// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bankd/storage"
)

var (
	testTxId    = bytes.Repeat([]byte{0x35}, 32)
	testPacked  = []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	testOwner   = bytes.Repeat([]byte{0x9c}, 32)
	bankPointer = []byte("bank")
)

func setupTransaction(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return trx
}

func TestTransactionsPoolNB(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Transactions

	trx := setupTransaction(t)
	trx.PutNB(pool, testTxId, 5, testPacked)
	err := trx.Commit()
	assert.Equal(t, nil, err, "commit error")

	seq, data := pool.GetNB(testTxId)
	assert.Equal(t, uint64(5), seq, "wrong sequence number")
	assert.Equal(t, testPacked, data, "wrong transaction data")

	assert.Equal(t, true, pool.Has(testTxId), "missing transaction")
	assert.Equal(t, true, pool.Ready(), "pool not ready")
}

func TestSnapshotsPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Snapshots

	outPoint := append(bytes.Repeat([]byte{0x21}, 32), 0, 0, 0, 1)

	trx := setupTransaction(t)
	trx.Put(pool, outPoint, testPacked)
	_ = trx.Commit()

	data := pool.Get(outPoint)
	assert.Equal(t, testPacked, data, "wrong snapshot data")
}

func TestBankStatePool(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.BankState

	trx := setupTransaction(t)
	trx.Put(pool, bankPointer, testTxId)
	_ = trx.Commit()

	data := pool.Get(bankPointer)
	assert.Equal(t, testTxId, data, "wrong bank state data")

	// replace the stored pointer
	trx = setupTransaction(t)
	trx.Delete(pool, bankPointer)
	_ = trx.Commit()

	data = pool.Get(bankPointer)
	assert.Equal(t, []byte(nil), data, "bank state was not deleted")
}

func TestOwnerBalancePool(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.OwnerBalance

	trx := setupTransaction(t)
	trx.PutN(pool, testOwner, 12345)
	_ = trx.Commit()

	balance, found := pool.GetN(testOwner)
	assert.Equal(t, true, found, "missing balance")
	assert.Equal(t, uint64(12345), balance, "wrong balance")

	_, found = pool.GetN(nonExistantKey)
	assert.Equal(t, false, found, "unexpected balance record")
}

func TestUncommittedVisibility(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.BankState

	trx := setupTransaction(t)
	trx.Put(pool, bankPointer, testTxId)

	// pending writes are visible through the cache before commit
	data := trx.Get(pool, bankPointer)
	assert.Equal(t, testTxId, data, "pending write not visible")

	trx.Abort()

	// aborted writes are gone
	data = pool.Get(bankPointer)
	assert.Equal(t, []byte(nil), data, "aborted write was stored")
}

func TestTransactionExclusive(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := setupTransaction(t)

	_, err := storage.NewDBTransaction()
	assert.NotEqual(t, nil, err, "concurrent transaction was allowed")

	trx.Abort()

	trx = setupTransaction(t)
	trx.Abort()
}

func TestOwnerHistoryLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.OwnerHistory

	first := append(append([]byte{}, testOwner...), 0, 0, 0, 0, 0, 0, 0, 1)
	second := append(append([]byte{}, testOwner...), 0, 0, 0, 0, 0, 0, 0, 2)

	trx := setupTransaction(t)
	trx.Put(pool, first, []byte("tx-1"))
	trx.Put(pool, second, []byte("tx-2"))
	_ = trx.Commit()

	element, found := pool.LastElement()
	assert.Equal(t, true, found, "missing last element")
	assert.Equal(t, second, element.Key, "wrong last key")
	assert.Equal(t, []byte("tx-2"), element.Value, "wrong last value")
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Snapshots

	trx := setupTransaction(t)
	for i := byte(1); i <= 3; i += 1 {
		outPoint := append(bytes.Repeat([]byte{i}, 32), 0, 0, 0, 0)
		trx.Put(pool, outPoint, []byte{i})
	}
	_ = trx.Commit()

	count := 0
	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if 36 != len(key) {
			t.Errorf("key length: actual: %d  expected: %d", len(key), 36)
		}
		return nil
	})
	assert.Equal(t, nil, err, "map error")
	assert.Equal(t, 3, count, "wrong element count")
}
