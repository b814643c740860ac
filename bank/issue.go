// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/utxo"
)

// Issue - validate the one-time issuance mint
//
// the policy only permits a mint that consumes the designated anchor
// out point, so the pair of tokens can never be created twice.  the
// mint must be exactly one master and one bank token and the bank
// token must land at the bank's own address carrying a decodable
// initial book.
func Issue(context *utxo.Context, p Parameters) error {
	anchored := false
	for _, input := range context.Inputs {
		if input.OutPoint == p.Anchor {
			anchored = true
			break
		}
	}
	if !anchored {
		return fault.IssuanceAnchorMissing
	}

	minted := context.Mint.UnderPolicy(p.Policy)
	if 2 != len(minted) || 1 != minted[p.MasterName] || 1 != minted[p.BankName] {
		return fault.WrongIssuanceMint
	}

	bankOut, err := utxo.UniqueOutputWithToken(context.Outputs, p.BankID())
	if fault.TokenNotFound == err {
		return fault.BankTokenMissing
	}
	if nil != err {
		return err
	}
	if bankOut.Owner != p.Address {
		return fault.BankAddressMismatch
	}
	if !bankOut.HasDatum() {
		return fault.LedgerDataMissing
	}
	_, err = ledger.UnpackSnapshot(bankOut.Datum)
	if nil != err {
		return err
	}

	return nil
}
