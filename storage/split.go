// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// PoolNB - handle for a pool where each record is a big endian
// uint64 followed by an arbitrary byte slice
type PoolNB struct {
	pool *PoolHandle
}

// store a key/value pair, prefixing the value with the N component
//
// the write only becomes durable when the enclosing transaction commits
func (p *PoolNB) putNB(key []byte, nValue uint64, bValue []byte) {
	if 0 == len(bValue) {
		logger.Panic("pool.putNB empty B value")
		return
	}
	data := make([]byte, 8, 8+len(bValue))
	binary.BigEndian.PutUint64(data, nValue)
	p.pool.put(key, append(data, bValue...))
}

// remove a key from the pool
func (p *PoolNB) remove(key []byte) {
	p.pool.remove(key)
}

// GetNB - read a record and decode first 8 bytes as big endian uint64
// and return the rest of the record as byte slice
//
// second parameter is nil if record was not found
// panics if not 9 (or more) bytes in the record
// this returns the actual element in the second parameter - copy the result if it must be preserved
func (p *PoolNB) GetNB(key []byte) (uint64, []byte) {
	return p.pool.GetNB(key)
}

// Has - check if a key exists
func (p *PoolNB) Has(key []byte) bool {
	return p.pool.Has(key)
}

// Begin - mark the underlying database access as in use
func (p *PoolNB) Begin() error {
	return p.pool.Begin()
}

// Commit - write any pending changes through to the database
func (p *PoolNB) Commit() error {
	return p.pool.Commit()
}

// Ready - check the pool was initialised
func (p *PoolNB) Ready() bool {
	return nil != p && nil != p.pool && 0 != p.pool.prefix
}

// LastElement - get the last element in the pool
func (p *PoolNB) LastElement() (Element, bool) {
	return p.pool.LastElement()
}
