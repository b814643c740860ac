// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/reconcile"
	"github.com/bitmark-inc/bankd/utxo"
)

// Redeem - validate a redemption transition
//
// an owner moves or withdraws balance under its own signature.  the
// master token is only referenced, never spent, and the fixed fee in
// native coin must reach whoever holds it.  a balance that is not
// touched needs no signature; an owner may also join the book by
// signing for its new balance.
func Redeem(context *utxo.Context, p Parameters) error {
	respent, err := checkBankRespend(context, p)
	if nil != err {
		return err
	}

	masterRef, err := utxo.UniqueInputWithToken(context.ReferenceInputs, p.MasterID())
	if nil != err {
		return err
	}
	collector := masterRef.Output.Owner

	feePaid := false
	for _, output := range context.Outputs {
		if output.Owner == collector && output.Value.Coin >= RedemptionFee {
			feePaid = true
			break
		}
	}
	if !feePaid {
		return fault.InsufficientFee
	}

	return reconcile.Reconcile(respent.before, respent.after, respent.delta,
		func(owner ledger.OwnerKey, old ledger.Balance, hasOld bool, next ledger.Balance) error {
			if next == old {
				return nil
			}
			if context.SignedBy(owner) {
				return nil
			}
			return fault.Unauthorized
		})
}
