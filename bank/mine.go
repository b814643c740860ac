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

// Mine - validate a mining transition
//
// a miner presents exactly one unit of the external proof token and
// may then raise balances in the book, never lower them.  new owners
// may join.  exactly one unit of the master token must travel in the
// inputs at the bank address, so only the covenant can run the
// transition.
func Mine(context *utxo.Context, p Parameters) error {
	proof := uint64(0)
	for _, input := range context.Inputs {
		quantity := input.Output.Value.Quantity(p.ProofToken)
		if proof+quantity < proof {
			return fault.InvalidProofQuantity
		}
		proof += quantity
	}
	if 1 != proof {
		return fault.InvalidProofQuantity
	}

	respent, err := checkBankRespend(context, p)
	if nil != err {
		return err
	}

	// exactly one unit of the master token, held at the bank address
	masterIn, err := utxo.UniqueInputWithToken(context.Inputs, p.MasterID())
	if fault.TokenNotFound == err {
		return fault.MasterTokenMissing
	}
	if nil != err {
		return err
	}
	if 1 != masterIn.Output.Value.Quantity(p.MasterID()) {
		return fault.InvalidMasterQuantity
	}
	if masterIn.Output.Owner != respent.owner {
		return fault.MasterAddressMismatch
	}

	return reconcile.Reconcile(respent.before, respent.after, respent.delta,
		func(owner ledger.OwnerKey, old ledger.Balance, hasOld bool, next ledger.Balance) error {
			if next < old {
				return fault.Unauthorized
			}
			return nil
		})
}
