// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/bankd/avl"
	"github.com/bitmark-inc/bankd/fault"
)

// Snapshot - unique-key balance book held in key order
type Snapshot struct {
	tree *avl.Tree
}

// NewSnapshot - create an empty balance book
func NewSnapshot() *Snapshot {
	return &Snapshot{
		tree: avl.New(),
	}
}

// Get - balance for one owner
// the flag is false when the owner is not a member
func (snapshot *Snapshot) Get(owner OwnerKey) (Balance, bool) {
	node, _ := snapshot.tree.Search(owner)
	if nil == node {
		return 0, false
	}
	return node.Value().(Balance), true
}

// Put - set the balance for one owner, adding the owner if absent
// a zero balance is a valid entry and keeps its membership
func (snapshot *Snapshot) Put(owner OwnerKey, balance Balance) {
	snapshot.tree.Insert(owner, balance)
}

// Delete - remove one owner
// returns false when the owner was not a member
func (snapshot *Snapshot) Delete(owner OwnerKey) bool {
	node, _ := snapshot.tree.Search(owner)
	if nil == node {
		return false
	}
	snapshot.tree.Delete(owner)
	return true
}

// Count - number of owners in the book
func (snapshot *Snapshot) Count() int {
	return snapshot.tree.Count()
}

// Total - sum of all balances
// overflow of uint64 is reported, never wrapped
func (snapshot *Snapshot) Total() (Balance, error) {
	total := Balance(0)
	for node := snapshot.tree.First(); nil != node; node = node.Next() {
		balance := node.Value().(Balance)
		if total+balance < total {
			return 0, fault.BalanceOverflow
		}
		total += balance
	}
	return total, nil
}

// Range - call f for every entry in ascending key order
// iteration stops early when f returns false
func (snapshot *Snapshot) Range(f func(owner OwnerKey, balance Balance) bool) {
	for node := snapshot.tree.First(); nil != node; node = node.Next() {
		if !f(node.Key().(OwnerKey), node.Value().(Balance)) {
			return
		}
	}
}
