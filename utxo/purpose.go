// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"fmt"

	"github.com/bitmark-inc/bankd/digest"
)

// Purpose - why the validator runs: spending an out point or minting
// under a policy
type Purpose interface {
	fmt.Stringer
	purpose()
}

// Spend - the script guards the out point being consumed
type Spend struct {
	Ref OutPoint `json:"ref"`
}

// Mint - the script is the minting policy for a policy id
type Mint struct {
	Policy digest.Digest `json:"policy"`
}

func (Spend) purpose() {}
func (Mint) purpose()  {}

// String - printable spend purpose
func (p Spend) String() string {
	return "spend:" + p.Ref.String()
}

// String - printable mint purpose
func (p Mint) String() string {
	return "mint:" + p.Policy.String()
}
