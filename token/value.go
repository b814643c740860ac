// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"sort"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
)

// Value - one output's worth: native coin plus token quantities
type Value struct {
	Coin   uint64        `json:"coin"`
	Assets map[ID]uint64 `json:"assets,omitempty"`
}

// Mint - the minted field of a transaction
// positive quantities are minted, negative are burned
type Mint map[ID]int64

// NewValue - an empty value
func NewValue() Value {
	return Value{
		Coin:   0,
		Assets: map[ID]uint64{},
	}
}

// Quantity - tokens of one class held by a value, zero when absent
func (value Value) Quantity(id ID) uint64 {
	if nil == value.Assets {
		return 0
	}
	return value.Assets[id]
}

// HasToken - true if the value holds at least one unit of the token
func (value Value) HasToken(id ID) bool {
	return value.Quantity(id) > 0
}

// AddCoin - accumulate native coin with overflow detection
func (value *Value) AddCoin(quantity uint64) error {
	sum := value.Coin + quantity
	if sum < value.Coin {
		return fault.BalanceOverflow
	}
	value.Coin = sum
	return nil
}

// AddToken - accumulate tokens of one class with overflow detection
func (value *Value) AddToken(id ID, quantity uint64) error {
	if nil == value.Assets {
		value.Assets = map[ID]uint64{}
	}
	sum := value.Assets[id] + quantity
	if sum < value.Assets[id] {
		return fault.BalanceOverflow
	}
	value.Assets[id] = sum
	return nil
}

// Accumulate - add another value into this one with overflow detection
func (value *Value) Accumulate(other Value) error {
	err := value.AddCoin(other.Coin)
	if nil != err {
		return err
	}
	for id, quantity := range other.Assets {
		err = value.AddToken(id, quantity)
		if nil != err {
			return err
		}
	}
	return nil
}

// sortedIDs - ascending id order for canonical packing
func (value Value) sortedIDs() []ID {
	ids := make([]ID, 0, len(value.Assets))
	for id := range value.Assets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i int, j int) bool {
		return ids[i].Compare(ids[j]) < 0
	})
	return ids
}

// Quantity - minted tokens of one class, zero when absent
func (mint Mint) Quantity(id ID) int64 {
	if nil == mint {
		return 0
	}
	return mint[id]
}

// UnderPolicy - the minted entries restricted to one policy
func (mint Mint) UnderPolicy(policy digest.Digest) map[Name]int64 {
	entries := map[Name]int64{}
	for id, quantity := range mint {
		if id.Policy == policy {
			entries[id.Name] = quantity
		}
	}
	return entries
}

// sortedIDs - ascending id order for canonical packing
func (mint Mint) sortedIDs() []ID {
	ids := make([]ID, 0, len(mint))
	for id := range mint {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i int, j int) bool {
		return ids[i].Compare(ids[j]) < 0
	})
	return ids
}
