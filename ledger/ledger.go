// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the shared reward balance book
//
// the bank keeps one datum on its UTXO: an ordered list of
// (owner key, balance) pairs.  this package holds the in-memory
// form of that list and its canonical byte encoding.  keys are
// unique and iteration is always in strictly ascending key order.
package ledger

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/bankd/fault"
)

// OwnerKeyLength - raw bytes in an owner key hash
const OwnerKeyLength = 32

// OwnerKey - fixed length hash of an owner credential
type OwnerKey [OwnerKeyLength]byte

// Balance - reward token quantity held by one owner
type Balance uint64

// Compare - ordering for the AVL interface
func (owner OwnerKey) Compare(q interface{}) int {
	other := q.(OwnerKey)
	return bytes.Compare(owner[:], other[:])
}

// String - hexadecimal form of an owner key
func (owner OwnerKey) String() string {
	return hex.EncodeToString(owner[:])
}

// GoString - hexadecimal form for %#v
func (owner OwnerKey) GoString() string {
	return "<owner:" + hex.EncodeToString(owner[:]) + ">"
}

// MarshalText - convert an owner key to hexadecimal text
func (owner OwnerKey) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(OwnerKeyLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, owner[:])
	return buffer, nil
}

// UnmarshalText - convert hexadecimal text to an owner key
func (owner *OwnerKey) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != OwnerKeyLength {
		return fault.InvalidKeyLength
	}
	byteCount, err := hex.Decode(owner[:], s)
	if nil != err {
		return err
	}
	if OwnerKeyLength != byteCount {
		return fault.InvalidKeyLength
	}
	return nil
}

// OwnerKeyFromBytes - set an owner key from a byte slice
func OwnerKeyFromBytes(owner *OwnerKey, buffer []byte) error {
	if OwnerKeyLength != len(buffer) {
		return fault.InvalidKeyLength
	}
	copy(owner[:], buffer)
	return nil
}

// Scan - for the "fmt" scan interface
func (owner *OwnerKey) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if hex.DecodedLen(len(token)) != OwnerKeyLength {
		return fault.InvalidKeyLength
	}

	byteCount, err := hex.Decode(owner[:], token)
	if nil != err {
		return err
	}
	if OwnerKeyLength != byteCount {
		return fault.InvalidKeyLength
	}
	return nil
}
