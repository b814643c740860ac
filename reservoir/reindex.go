// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/prometheus/common/log"

	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/ownership"
	"github.com/bitmark-inc/bankd/storage"
	"github.com/bitmark-inc/bankd/utxo"
)

type reindexRecord struct {
	sequence uint64
	txId     digest.Digest
	packed   utxo.Packed
}

// RebuildIndexes - regenerate the owner index from stored transitions
//
// call after storage initialise reports the index database was
// dropped; replays every transition in sequence order and rewrites
// the per-owner records, then the caller marks the index current
func RebuildIndexes(parameters bank.Parameters) error {

	log.Info("rebuilding indexes…")

	records := make([]reindexRecord, 0, 256)

	cursor := storage.Pool.Transactions.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		record := reindexRecord{}
		err := digest.DigestFromBytes(&record.txId, key)
		if nil != err {
			return err
		}
		if len(value) < 9 {
			return fmt.Errorf("transaction record for: %x is truncated", key)
		}
		record.sequence = binary.BigEndian.Uint64(value[:8])
		record.packed = utxo.Packed(value[8:])
		records = append(records, record)
		return nil
	})
	if nil != err {
		log.Errorf("transaction scan error: %s", err)
		return err
	}

	sort.Slice(records, func(i int, j int) bool {
		return records[i].sequence < records[j].sequence
	})

	for _, record := range records {
		err := reindexTransition(parameters, record)
		if nil != err {
			log.Errorf("reindex transition: %s error: %s", record.txId, err)
			return err
		}
	}

	log.Infof("rebuilt indexes from %d transitions", len(records))
	return nil
}

// rewrite the owner records of one stored transition
func reindexTransition(parameters bank.Parameters, record reindexRecord) error {

	context, err := utxo.UnpackContext(record.packed)
	if nil != err {
		return err
	}

	before := ledger.NewSnapshot()
	if _, ok := context.Purpose.(utxo.Spend); ok {
		bankIn, err := utxo.UniqueInputWithToken(context.Inputs, parameters.BankID())
		if nil != err {
			return err
		}
		before, err = ledger.UnpackSnapshot(bankIn.Output.Datum)
		if nil != err {
			return err
		}
	}

	bankOut, err := utxo.UniqueOutputWithToken(context.Outputs, parameters.BankID())
	if nil != err {
		return err
	}
	after, err := ledger.UnpackSnapshot(bankOut.Datum)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	after.Range(func(owner ledger.OwnerKey, balance ledger.Balance) bool {
		old, ok := before.Get(owner)
		if !ok || old != balance {
			ownership.RecordTransition(trx, record.txId, owner, balance)
		}
		return true
	})

	return trx.Commit()
}
