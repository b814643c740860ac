// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/bankd/ledger"
)

// Ownership - the interface callers outside this package depend on
type Ownership interface {
	ListTransitionsFor(owner ledger.OwnerKey, start uint64, count int) ([]Record, error)
	ListOwners(after []byte, count int) ([]OwnerRecord, error)
	Balance(owner ledger.OwnerKey) (ledger.Balance, bool)
	HistoryCount(owner ledger.OwnerKey) uint64
}

type access struct{}

// Get - access to the owner index
func Get() Ownership {
	return access{}
}

func (access) ListTransitionsFor(owner ledger.OwnerKey, start uint64, count int) ([]Record, error) {
	return ListTransitionsFor(owner, start, count)
}

func (access) ListOwners(after []byte, count int) ([]OwnerRecord, error) {
	return ListOwners(after, count)
}

func (access) Balance(owner ledger.OwnerKey) (ledger.Balance, bool) {
	return Balance(owner)
}

func (access) HistoryCount(owner ledger.OwnerKey) uint64 {
	return HistoryCount(owner)
}
