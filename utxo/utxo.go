// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package utxo - the transaction view the validators inspect
//
// a validator never sees the chain, only one transaction context:
// resolved inputs, reference inputs, outputs, the minted bag, the
// signatory set and the purpose the script runs under.
package utxo

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/token"
)

// OutPoint - one spendable position on the chain
type OutPoint struct {
	TxID  digest.Digest `json:"txId"`
	Index uint32        `json:"index"`
}

// Output - value locked at an owner with an optional inline datum
// a nil Datum means the output carries none
type Output struct {
	Owner ledger.OwnerKey `json:"owner"`
	Value token.Value     `json:"value"`
	Datum []byte          `json:"datum,omitempty"`
}

// Input - an out point together with its resolved output
type Input struct {
	OutPoint OutPoint `json:"outPoint"`
	Output   Output   `json:"output"`
}

// Context - everything one validation run may look at
type Context struct {
	Inputs          []Input           `json:"inputs"`
	ReferenceInputs []Input           `json:"referenceInputs"`
	Outputs         []Output          `json:"outputs"`
	Mint            token.Mint        `json:"mint"`
	Signatories     []ledger.OwnerKey `json:"signatories"`
	Purpose         Purpose           `json:"purpose"`
	Redeemer        []byte            `json:"redeemer"`
}

// Bytes - fixed width key form of an out point for storage and maps
func (point OutPoint) Bytes() []byte {
	buffer := make([]byte, digest.Length+4)
	copy(buffer, point.TxID[:])
	binary.BigEndian.PutUint32(buffer[digest.Length:], point.Index)
	return buffer
}

// OutPointFromBytes - decode the fixed width key form of an out point
func OutPointFromBytes(point *OutPoint, buffer []byte) error {
	if digest.Length+4 != len(buffer) {
		return fault.RecordTooShort
	}
	err := digest.DigestFromBytes(&point.TxID, buffer[:digest.Length])
	if nil != err {
		return err
	}
	point.Index = binary.BigEndian.Uint32(buffer[digest.Length:])
	return nil
}

// String - printable out point as txid:index
func (point OutPoint) String() string {
	return fmt.Sprintf("%s:%d", point.TxID, point.Index)
}

// HasDatum - true when the output carries an inline datum
func (output Output) HasDatum() bool {
	return nil != output.Datum
}

// SignedBy - true when the owner is in the signatory set
func (context *Context) SignedBy(owner ledger.OwnerKey) bool {
	for _, signatory := range context.Signatories {
		if signatory == owner {
			return true
		}
	}
	return false
}
