// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/storage"
	"github.com/bitmark-inc/logger"
)

// Record - one entry of an owner's transition history
type Record struct {
	N       uint64         `json:"n,string"`
	TxId    digest.Digest  `json:"txId"`
	Balance ledger.Balance `json:"balance"`
}

// OwnerRecord - one owner of the balance book
type OwnerRecord struct {
	Owner   ledger.OwnerKey `json:"owner"`
	Balance ledger.Balance  `json:"balance"`
}

// ListTransitionsFor - fetch a page of an owner's history
//
// start is the first history position wanted, so the next page begins
// at the last returned N plus one
func ListTransitionsFor(owner ledger.OwnerKey, start uint64, count int) ([]Record, error) {

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	prefix := append(append([]byte{}, owner[:]...), startBytes...)

	cursor := storage.Pool.OwnerHistory.NewFetchCursor().Seek(prefix)

	// owner ++ count → txId ++ balance
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			logger.Panicf("split cannot be <= 0: %d", split)
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(owner[:], itemOwner) {
			break loop
		}

		if digest.Length+uint64ByteSize != len(item.Value) {
			logger.Panicf("owner history record has invalid length: %d", len(item.Value))
		}

		record := Record{
			N:       binary.BigEndian.Uint64(item.Key[split:]),
			Balance: ledger.Balance(binary.BigEndian.Uint64(item.Value[digest.Length:])),
		}
		err := digest.DigestFromBytes(&record.TxId, item.Value[:digest.Length])
		if nil != err {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// ListOwners - fetch a page of the balance book from the index mirror
//
// iteration is in owner key order; pass the last returned owner as
// after to continue, or nil to begin from the first owner
func ListOwners(after []byte, count int) ([]OwnerRecord, error) {

	cursor := storage.Pool.OwnerBalance.NewFetchCursor()
	if nil != after {
		if ledger.OwnerKeyLength != len(after) {
			return nil, fault.InvalidKeyLength
		}
		// step past the supplied key
		next := append(append([]byte{}, after...), 0x00)
		cursor.Seek(next)
	}

	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]OwnerRecord, 0, len(items))
	for _, item := range items {
		if uint64ByteSize != len(item.Value) {
			logger.Panicf("owner balance record has invalid length: %d", len(item.Value))
		}
		record := OwnerRecord{
			Balance: ledger.Balance(binary.BigEndian.Uint64(item.Value)),
		}
		err := ledger.OwnerKeyFromBytes(&record.Owner, item.Key)
		if nil != err {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
