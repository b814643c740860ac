// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - per-owner index over applied transitions
//
// the balance book itself lives in the bank snapshot; this package
// maintains the derived per-owner records in the index database so
// that client queries do not have to scan snapshots:
//
//	OwnerNextCount  owner          - next count value for the history
//	OwnerHistory    owner ++ count - transition id and balance after it
//	OwnerTxIndex    owner ++ txId  - position in the owner's history
//	OwnerBalance    owner          - current balance mirror
package ownership

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/storage"
)

const uint64ByteSize = 8

// to ensure synchronised index updates
var toLock sync.Mutex

// RecordTransition - append one balance change to an owner's history
//
// must be called inside the storage transaction that commits the
// transition so the index can never run ahead of the data
func RecordTransition(
	trx storage.Transaction,
	txId digest.Digest,
	owner ledger.OwnerKey,
	balance ledger.Balance,
) {
	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	nKey := owner[:]
	count, ok := trx.GetN(storage.Pool.OwnerNextCount, nKey)
	if !ok {
		count = 0
	}
	trx.PutN(storage.Pool.OwnerNextCount, nKey, count+1)

	countBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(countBytes, count)

	// write to the owner history
	hKey := append(append([]byte{}, owner[:]...), countBytes...)
	hValue := make([]byte, 0, digest.Length+uint64ByteSize)
	hValue = append(hValue, txId[:]...)
	balanceBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(balanceBytes, uint64(balance))
	hValue = append(hValue, balanceBytes...)
	trx.Put(storage.Pool.OwnerHistory, hKey, hValue)

	// write new index record
	dKey := append(append([]byte{}, owner[:]...), txId[:]...)
	trx.PutN(storage.Pool.OwnerTxIndex, dKey, count)

	// refresh the balance mirror
	trx.PutN(storage.Pool.OwnerBalance, owner[:], uint64(balance))
}

// Balance - current balance of one owner from the index mirror
// the flag is false when the owner has never held a balance
func Balance(owner ledger.OwnerKey) (ledger.Balance, bool) {
	balance, ok := storage.Pool.OwnerBalance.GetN(owner[:])
	return ledger.Balance(balance), ok
}

// HistoryCount - number of transitions that touched an owner
func HistoryCount(owner ledger.OwnerKey) uint64 {
	count, ok := storage.Pool.OwnerNextCount.GetN(owner[:])
	if !ok {
		return 0
	}
	return count
}

// WasTouchedBy - check a transition changed the owner's balance
func WasTouchedBy(trx storage.Transaction, owner ledger.OwnerKey, txId digest.Digest) bool {
	dKey := append(append([]byte{}, owner[:]...), txId[:]...)

	if nil == trx {
		return storage.Pool.OwnerTxIndex.Has(dKey)
	}
	return trx.Has(storage.Pool.OwnerTxIndex, dKey)
}
