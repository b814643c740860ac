// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/reconcile"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/utxo"
)

// Envelope - summary frame attached to every published transition
type Envelope struct {
	TxId     digest.Digest `json:"txId"`
	Kind     string        `json:"kind"`
	Delta    int64         `json:"delta"`
	Sequence uint64        `json:"sequence"`
}

// derive the envelope for one packed transition
//
// delta is the change of the bank's reward holdings carried by the
// transition, the same figure the book keeps per sequence step
func newEnvelope(packed utxo.Packed, p bank.Parameters, sequence uint64) (*Envelope, error) {

	context, err := utxo.UnpackContext(packed)
	if nil != err {
		return nil, err
	}

	kind := ""
	rewardIn := uint64(0)

	switch context.Purpose.(type) {

	case utxo.Mint:
		kind = reservoir.KindIssue

	case utxo.Spend:
		tag, err := bank.UnpackRedeemer(context.Redeemer)
		if nil != err {
			return nil, err
		}
		kind = tag.String()

		bankIn, err := utxo.UniqueInputWithToken(context.Inputs, p.BankID())
		if nil != err {
			return nil, err
		}
		rewardIn = bankIn.Output.Value.Quantity(p.RewardToken)

	default:
		return nil, fault.InvalidRedeemer
	}

	bankOut, err := utxo.UniqueOutputWithToken(context.Outputs, p.BankID())
	if nil != err {
		return nil, err
	}

	delta, err := reconcile.SignedDifference(bankOut.Value.Quantity(p.RewardToken), rewardIn)
	if nil != err {
		return nil, err
	}

	return &Envelope{
		TxId:     digest.NewDigest(packed),
		Kind:     kind,
		Delta:    delta,
		Sequence: sequence,
	}, nil
}
