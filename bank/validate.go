// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/utxo"
)

// Validate - route a context to the proper transition validator
//
// minting under the own policy is issuance, spending is selected by
// the redeemer tag.  everything else fails closed: no transition is
// ever accepted by default.
func Validate(context *utxo.Context, p Parameters) error {
	switch purpose := context.Purpose.(type) {

	case utxo.Mint:
		if p.Policy != purpose.Policy {
			return fault.InvalidRedeemer
		}
		return Issue(context, p)

	case utxo.Spend:
		tag, err := UnpackRedeemer(context.Redeemer)
		if nil != err {
			return err
		}
		switch tag {
		case TagMine:
			return Mine(context, p)
		case TagRedeem:
			return Redeem(context, p)
		default:
			return fault.InvalidRedeemer
		}

	default:
		return fault.InvalidRedeemer
	}
}
