// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"fmt"

	"github.com/prometheus/common/log"

	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/storage"
	"github.com/bitmark-inc/bankd/utxo"
)

// Restorer - interface to restore saved state from the data store
type Restorer interface {
	Restore() error
}

// NewRestorer - create object with Restorer interface for the bank state
func NewRestorer() Restorer {
	return &bankStateRestoreData{}
}

type bankStateRestoreData struct{}

// rebuild the in-memory book from the last committed transition
//
// hold the lock before calling
func (r *bankStateRestoreData) Restore() error {

	pointBytes := storage.Pool.BankState.Get(bankPointKey)
	if nil == pointBytes {
		log.Info("no saved bank state, waiting for issuance")
		return nil
	}

	point := utxo.OutPoint{}
	err := utxo.OutPointFromBytes(&point, pointBytes)
	if nil != err {
		msg := fmt.Errorf("saved bank point is invalid: %s", err)
		log.Errorf("%s", msg)
		return msg
	}

	packedBook := storage.Pool.Snapshots.Get(point.Bytes())
	if nil == packedBook {
		msg := fmt.Errorf("no snapshot stored for saved bank point: %s", point)
		log.Errorf("%s", msg)
		return msg
	}

	book, err := ledger.UnpackSnapshot(packedBook)
	if nil != err {
		msg := fmt.Errorf("stored snapshot is invalid: %s", err)
		log.Errorf("%s", msg)
		return msg
	}

	sequence, ok := storage.Pool.BankState.GetN(bankSequenceKey)
	if !ok {
		msg := fmt.Errorf("saved bank state has no sequence")
		log.Errorf("%s", msg)
		return msg
	}

	globalData.issued = true
	globalData.current = book
	globalData.currentPoint = point
	globalData.sequence = sequence

	log.Infof("restored bank state: sequence: %d  owners: %d  point: %s", sequence, book.Count(), point)
	return nil
}
