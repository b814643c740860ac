// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank_test

import (
	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/token"
	"github.com/bitmark-inc/bankd/utxo"
)

// fixed identities used across the transition tests
var (
	ownPolicy    = digest.NewDigest([]byte("own policy script"))
	proofPolicy  = digest.NewDigest([]byte("proof policy script"))
	rewardPolicy = digest.NewDigest([]byte("reward policy script"))

	bankAddress = makeOwner(0xba)
	authority   = makeOwner(0xa0)
	miner       = makeOwner(0x10)

	anchorPoint = utxo.OutPoint{
		TxID:  digest.NewDigest([]byte("anchor transaction")),
		Index: 1,
	}
)

func makeOwner(n byte) ledger.OwnerKey {
	owner := ledger.OwnerKey{}
	owner[0] = n
	return owner
}

func testParameters() bank.Parameters {
	return bank.Parameters{
		Policy:     ownPolicy,
		Address:    bankAddress,
		MasterName: token.Name("MASTER"),
		BankName:   token.Name("BANK"),
		ProofToken: token.ID{
			Policy: proofPolicy,
			Name:   token.Name("PROOF"),
		},
		RewardToken: token.ID{
			Policy: rewardPolicy,
			Name:   token.Name("REWARD"),
		},
		Anchor: anchorPoint,
	}
}

// packed balance book with single byte owner stand-ins
func packBook(balances map[byte]uint64) []byte {
	snapshot := ledger.NewSnapshot()
	for n, balance := range balances {
		snapshot.Put(makeOwner(n), ledger.Balance(balance))
	}
	return snapshot.Pack()
}

func outPointAt(label string, index uint32) utxo.OutPoint {
	return utxo.OutPoint{
		TxID:  digest.NewDigest([]byte(label)),
		Index: index,
	}
}

// the bank UTXO being spent: bank token, reward holdings and the book
func bankInput(p bank.Parameters, reward uint64, datum []byte) utxo.Input {
	value := token.NewValue()
	value.Coin = 1
	value.Assets[p.BankID()] = 1
	if reward > 0 {
		value.Assets[p.RewardToken] = reward
	}
	return utxo.Input{
		OutPoint: outPointAt("bank utxo", 0),
		Output: utxo.Output{
			Owner: bankAddress,
			Value: value,
			Datum: datum,
		},
	}
}

// the reproduced bank UTXO
func bankOutput(p bank.Parameters, reward uint64, datum []byte) utxo.Output {
	value := token.NewValue()
	value.Coin = 1
	value.Assets[p.BankID()] = 1
	if reward > 0 {
		value.Assets[p.RewardToken] = reward
	}
	return utxo.Output{
		Owner: bankAddress,
		Value: value,
		Datum: datum,
	}
}

// the authority's master token on its own UTXO
func masterUTXO(p bank.Parameters, owner ledger.OwnerKey, index uint32) utxo.Input {
	value := token.NewValue()
	value.Coin = 5
	value.Assets[p.MasterID()] = 1
	return utxo.Input{
		OutPoint: outPointAt("master utxo", index),
		Output: utxo.Output{
			Owner: owner,
			Value: value,
		},
	}
}

// a miner's proof token UTXO
func proofUTXO(p bank.Parameters, owner ledger.OwnerKey, quantity uint64) utxo.Input {
	value := token.NewValue()
	value.Coin = 10
	value.Assets[p.ProofToken] = quantity
	return utxo.Input{
		OutPoint: outPointAt("proof utxo", 7),
		Output: utxo.Output{
			Owner: owner,
			Value: value,
		},
	}
}

// coin only output, used for fee payment and change
func coinOutput(owner ledger.OwnerKey, coin uint64) utxo.Output {
	value := token.NewValue()
	value.Coin = coin
	return utxo.Output{
		Owner: owner,
		Value: value,
	}
}

// the master token sent back to its holder
func masterOutput(p bank.Parameters, owner ledger.OwnerKey, coin uint64) utxo.Output {
	value := token.NewValue()
	value.Coin = coin
	value.Assets[p.MasterID()] = 1
	return utxo.Output{
		Owner: owner,
		Value: value,
	}
}

// a valid mining transition: balances grow by the minted reward
func mineContext(p bank.Parameters, before map[byte]uint64, after map[byte]uint64, rewardIn uint64, rewardOut uint64) *utxo.Context {
	in := bankInput(p, rewardIn, packBook(before))
	return &utxo.Context{
		Inputs: []utxo.Input{
			in,
			masterUTXO(p, bankAddress, 0),
			proofUTXO(p, miner, 1),
		},
		Outputs: []utxo.Output{
			bankOutput(p, rewardOut, packBook(after)),
			masterOutput(p, bankAddress, 5),
			coinOutput(miner, 9),
		},
		Signatories: []ledger.OwnerKey{authority},
		Purpose:     utxo.Spend{Ref: in.OutPoint},
		Redeemer:    bank.TagMine.Pack(),
	}
}

// a valid redemption transition with the fee paid to the collector
func redeemContext(p bank.Parameters, before map[byte]uint64, after map[byte]uint64, rewardIn uint64, rewardOut uint64, signatories ...ledger.OwnerKey) *utxo.Context {
	in := bankInput(p, rewardIn, packBook(before))
	return &utxo.Context{
		Inputs: []utxo.Input{
			in,
		},
		ReferenceInputs: []utxo.Input{
			masterUTXO(p, authority, 0),
		},
		Outputs: []utxo.Output{
			bankOutput(p, rewardOut, packBook(after)),
			coinOutput(authority, bank.RedemptionFee),
		},
		Signatories: signatories,
		Purpose:     utxo.Spend{Ref: in.OutPoint},
		Redeemer:    bank.TagRedeem.Pack(),
	}
}

// a valid one-time issuance
func issueContext(p bank.Parameters, initial map[byte]uint64) *utxo.Context {
	spent := token.NewValue()
	spent.Coin = 100

	value := token.NewValue()
	value.Coin = 2
	value.Assets[p.BankID()] = 1

	return &utxo.Context{
		Inputs: []utxo.Input{
			{
				OutPoint: p.Anchor,
				Output: utxo.Output{
					Owner: authority,
					Value: spent,
				},
			},
		},
		Outputs: []utxo.Output{
			{
				Owner: p.Address,
				Value: value,
				Datum: packBook(initial),
			},
			masterOutput(p, authority, 50),
		},
		Mint: token.Mint{
			p.MasterID(): 1,
			p.BankID():   1,
		},
		Signatories: []ledger.OwnerKey{authority},
		Purpose:     utxo.Mint{Policy: p.Policy},
	}
}
