// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/util"
)

// limits to prevent memory exhaustion on unpack
const (
	maximumAssetEntries = 1024
)

// mint quantity sign markers
const (
	mintPositive = 0x00
	mintNegative = 0x01
)

// Pack - canonical byte form of a value
//
// format: Varint64(coin), Varint64(asset count) then per asset in
// ascending id order: policy bytes, Varint64(name length), name bytes,
// Varint64(quantity)
func (value Value) Pack() []byte {
	message := util.ToVarint64(value.Coin)
	message = append(message, util.ToVarint64(uint64(len(value.Assets)))...)
	for _, id := range value.sortedIDs() {
		message = append(message, id.Policy[:]...)
		message = append(message, util.ToVarint64(uint64(len(id.Name)))...)
		message = append(message, id.Name...)
		message = append(message, util.ToVarint64(value.Assets[id])...)
	}
	return message
}

// UnpackValue - decode a value from the start of a buffer
//
// returns the value and the number of bytes consumed
func UnpackValue(buffer []byte) (Value, int, error) {
	value := NewValue()
	n := 0

	coin, coinLength := util.FromVarint64(buffer)
	if 0 == coinLength {
		return value, 0, fault.RecordTooShort
	}
	n += coinLength
	value.Coin = coin

	count, countLength := util.FromVarint64(buffer[n:])
	if 0 == countLength {
		return value, 0, fault.RecordTooShort
	}
	if count > maximumAssetEntries {
		return value, 0, fault.InvalidCount
	}
	n += countLength

	for i := uint64(0); i < count; i += 1 {
		id, quantity, idLength, err := unpackAssetEntry(buffer[n:])
		if nil != err {
			return value, 0, err
		}
		n += idLength
		if _, ok := value.Assets[id]; ok {
			return value, 0, fault.InvalidItem
		}
		value.Assets[id] = quantity
	}

	return value, n, nil
}

// Pack - canonical byte form of a mint
//
// format: Varint64(count) then per entry in ascending id order:
// policy bytes, Varint64(name length), name bytes, sign byte,
// Varint64(magnitude)
func (mint Mint) Pack() []byte {
	message := util.ToVarint64(uint64(len(mint)))
	for _, id := range mint.sortedIDs() {
		message = append(message, id.Policy[:]...)
		message = append(message, util.ToVarint64(uint64(len(id.Name)))...)
		message = append(message, id.Name...)
		quantity := mint[id]
		if quantity < 0 {
			message = append(message, mintNegative)
			message = append(message, util.ToVarint64(uint64(-quantity))...)
		} else {
			message = append(message, mintPositive)
			message = append(message, util.ToVarint64(uint64(quantity))...)
		}
	}
	return message
}

// UnpackMint - decode a mint from the start of a buffer
//
// returns the mint and the number of bytes consumed
func UnpackMint(buffer []byte) (Mint, int, error) {
	mint := Mint{}
	n := 0

	count, countLength := util.FromVarint64(buffer)
	if 0 == countLength {
		return nil, 0, fault.RecordTooShort
	}
	if count > maximumAssetEntries {
		return nil, 0, fault.InvalidCount
	}
	n += countLength

	for i := uint64(0); i < count; i += 1 {
		id, nameLength, err := unpackID(buffer[n:])
		if nil != err {
			return nil, 0, err
		}
		n += nameLength

		if n >= len(buffer) {
			return nil, 0, fault.RecordTooShort
		}
		sign := buffer[n]
		if mintPositive != sign && mintNegative != sign {
			return nil, 0, fault.InvalidItem
		}
		n += 1

		magnitude, magnitudeLength := util.FromVarint64(buffer[n:])
		if 0 == magnitudeLength {
			return nil, 0, fault.RecordTooShort
		}
		n += magnitudeLength

		quantity := int64(magnitude)
		if quantity < 0 {
			return nil, 0, fault.DeltaOutOfRange
		}
		if mintNegative == sign {
			quantity = -quantity
		}

		if _, ok := mint[id]; ok {
			return nil, 0, fault.InvalidItem
		}
		mint[id] = quantity
	}

	return mint, n, nil
}

// decode one asset entry: id then quantity
func unpackAssetEntry(buffer []byte) (ID, uint64, int, error) {
	id, n, err := unpackID(buffer)
	if nil != err {
		return ID{}, 0, 0, err
	}

	quantity, quantityLength := util.FromVarint64(buffer[n:])
	if 0 == quantityLength {
		return ID{}, 0, 0, fault.RecordTooShort
	}
	n += quantityLength

	return id, quantity, n, nil
}

// decode one token id: policy bytes then length prefixed name
func unpackID(buffer []byte) (ID, int, error) {
	id := ID{}
	if len(buffer) < digest.Length {
		return id, 0, fault.RecordTooShort
	}
	err := digest.DigestFromBytes(&id.Policy, buffer[:digest.Length])
	if nil != err {
		return id, 0, err
	}
	n := digest.Length

	nameLength, nameLengthBytes := util.FromVarint64(buffer[n:])
	if 0 == nameLengthBytes {
		return id, 0, fault.RecordTooShort
	}
	if nameLength > MaximumNameLength {
		return id, 0, fault.InvalidTokenName
	}
	n += nameLengthBytes

	if uint64(len(buffer[n:])) < nameLength {
		return id, 0, fault.RecordTooShort
	}
	id.Name = Name(buffer[n : n+int(nameLength)])
	n += int(nameLength)

	return id, n, nil
}
