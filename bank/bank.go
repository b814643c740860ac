// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bank - validation of transitions of the shared reward book
//
// the bank is one UTXO carrying the balance book as its datum plus a
// master token proving authority and a bank token marking the book.
// every transition spends that UTXO and must reproduce it, and this
// package decides whether the transition is acceptable: mining grows
// balances against a proof token, redeeming moves balances only with
// the owner's signature, issuance creates the whole arrangement once.
package bank

import (
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/reconcile"
	"github.com/bitmark-inc/bankd/token"
	"github.com/bitmark-inc/bankd/utxo"
)

// RedemptionFee - fixed fee in native coin base units paid on every
// redemption to the address holding the master token
const RedemptionFee = 2000000

// Parameters - everything that pins one deployed bank
type Parameters struct {
	Policy      digest.Digest   `json:"policy"`      // own token policy
	Address     ledger.OwnerKey `json:"address"`     // own script address
	MasterName  token.Name      `json:"masterName"`  // authority token asset name
	BankName    token.Name      `json:"bankName"`    // book marker asset name
	ProofToken  token.ID        `json:"proofToken"`  // external mining proof token
	RewardToken token.ID        `json:"rewardToken"` // token the balances count
	Anchor      utxo.OutPoint   `json:"anchor"`      // one-shot issuance out point
}

// MasterID - the authority token id under the own policy
func (p Parameters) MasterID() token.ID {
	return token.ID{
		Policy: p.Policy,
		Name:   p.MasterName,
	}
}

// BankID - the book marker token id under the own policy
func (p Parameters) BankID() token.ID {
	return token.ID{
		Policy: p.Policy,
		Name:   p.BankName,
	}
}

// respentBank - outcome of the checks shared by mine and redeem
type respentBank struct {
	owner  ledger.OwnerKey  // address the bank UTXO sits at
	before *ledger.Snapshot // book carried by the spent bank UTXO
	after  *ledger.Snapshot // book carried by the reproduced bank UTXO
	delta  int64            // reward tokens entering or leaving the bank
}

// checkBankRespend - the bank UTXO must be spent and reproduced
//
// locates the unique bank token input and output, requires the
// reproduced output to sit at the same owner, decodes both books and
// computes the reward token delta between them.  when the purpose is
// a spend it must target the bank UTXO itself.
func checkBankRespend(context *utxo.Context, p Parameters) (*respentBank, error) {
	bankID := p.BankID()

	bankIn, err := utxo.UniqueInputWithToken(context.Inputs, bankID)
	if nil != err {
		return nil, err
	}

	if spend, ok := context.Purpose.(utxo.Spend); ok {
		if spend.Ref != bankIn.OutPoint {
			return nil, fault.NotBankTransaction
		}
	}

	bankOut, err := utxo.UniqueOutputWithToken(context.Outputs, bankID)
	if nil != err {
		return nil, err
	}
	if bankOut.Owner != bankIn.Output.Owner {
		return nil, fault.BankAddressMismatch
	}

	if !bankIn.Output.HasDatum() {
		return nil, fault.LedgerDataMissing
	}
	before, err := ledger.UnpackSnapshot(bankIn.Output.Datum)
	if nil != err {
		return nil, err
	}

	if !bankOut.HasDatum() {
		return nil, fault.LedgerDataMissing
	}
	after, err := ledger.UnpackSnapshot(bankOut.Datum)
	if nil != err {
		return nil, err
	}

	delta, err := reconcile.SignedDifference(
		bankOut.Value.Quantity(p.RewardToken),
		bankIn.Output.Value.Quantity(p.RewardToken),
	)
	if nil != err {
		return nil, err
	}

	return &respentBank{
		owner:  bankIn.Output.Owner,
		before: before,
		after:  after,
		delta:  delta,
	}, nil
}
