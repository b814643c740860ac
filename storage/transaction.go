// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"
)

// Transaction - a batched set of changes that commits to all
// underlying databases or to none of them
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	DeleteNB(*PoolNB, []byte)
	DumpTx() []byte
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	GetNB(*PoolHandle, []byte) (uint64, []byte)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	PutNB(*PoolNB, []byte, uint64, []byte)
}

type TransactionData struct {
	sync.Mutex
	inUse  bool
	access []Access
}

func newTransaction(access []Access) *TransactionData {
	return &TransactionData{
		inUse:  false,
		access: access,
	}
}

// Begin - acquire all underlying database batches
func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fmt.Errorf("transaction already in use")
	}

	for _, access := range t.access {
		err := access.Begin()
		if nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

// release all batches regardless of commit outcome
func (t *TransactionData) free() {
	for _, access := range t.access {
		access.Abort()
	}
	t.Lock()
	t.inUse = false
	t.Unlock()
}

// Commit - write all pending changes to the databases
func (t *TransactionData) Commit() error {
	defer t.free()
	for _, access := range t.access {
		err := access.Commit()
		if nil != err {
			return err
		}
	}
	return nil
}

// Abort - discard all pending changes
func (t *TransactionData) Abort() {
	t.free()
}

// InUse - check if a transaction is in progress
func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// DumpTx - hex data of all pending batches for diagnostics
func (t *TransactionData) DumpTx() []byte {
	data := []byte{}
	for _, access := range t.access {
		data = append(data, access.DumpTx()...)
	}
	return data
}

// Put - store a key/value bytes pair in a pool
func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

// PutN - store a key with a big endian uint64 value
func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	p.putN(key, value)
}

// PutNB - store a key with a paired uint64 and byte slice value
func (t *TransactionData) PutNB(p *PoolNB, key []byte, nValue uint64, bValue []byte) {
	p.putNB(key, nValue, bValue)
}

// Delete - remove a key from a pool
func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

// DeleteNB - remove a key from an NB pool
func (t *TransactionData) DeleteNB(p *PoolNB, key []byte) {
	p.remove(key)
}

// Get - read a value, pending changes are visible before commit
func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// GetN - read a big endian uint64 value
func (t *TransactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

// GetNB - read a paired uint64 and byte slice value
func (t *TransactionData) GetNB(p *PoolHandle, key []byte) (uint64, []byte) {
	return p.GetNB(key)
}

// Has - check if a key exists
func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}
