// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/util"
)

// limit on entries in one snapshot to prevent memory exhaustion
const maximumSnapshotEntries = 65535

// Pack - canonical byte form of the balance book
//
// format: Varint64(count) then per entry in strictly ascending key
// order: 32 raw key bytes, Varint64(balance)
func (snapshot *Snapshot) Pack() []byte {
	message := util.ToVarint64(uint64(snapshot.Count()))
	snapshot.Range(func(owner OwnerKey, balance Balance) bool {
		message = append(message, owner[:]...)
		message = append(message, util.ToVarint64(uint64(balance))...)
		return true
	})
	return message
}

// UnpackSnapshot - decode a packed balance book
//
// strictness is enforced during the scan: every key must be strictly
// greater than its predecessor, so duplicate and descending keys are
// rejected in one place.  the whole buffer must be consumed.
func UnpackSnapshot(buffer []byte) (*Snapshot, error) {
	count, countLength := util.FromVarint64(buffer)
	if 0 == countLength {
		return nil, fault.MalformedLedger
	}
	if count > maximumSnapshotEntries {
		return nil, fault.MalformedLedger
	}
	n := countLength

	snapshot := NewSnapshot()
	previous := OwnerKey{}
	for i := uint64(0); i < count; i += 1 {
		if len(buffer[n:]) < OwnerKeyLength {
			return nil, fault.MalformedLedger
		}
		owner := OwnerKey{}
		copy(owner[:], buffer[n:n+OwnerKeyLength])
		n += OwnerKeyLength

		if i > 0 && bytes.Compare(previous[:], owner[:]) >= 0 {
			return nil, fault.LedgerKeysOutOfOrder
		}
		previous = owner

		balance, balanceLength := util.FromVarint64(buffer[n:])
		if 0 == balanceLength {
			return nil, fault.MalformedLedger
		}
		n += balanceLength

		snapshot.Put(owner, Balance(balance))
	}

	if n != len(buffer) {
		return nil, fault.MalformedLedger
	}

	return snapshot, nil
}
