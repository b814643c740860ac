// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/rpc/bank"
	"github.com/bitmark-inc/bankd/utxo"
)

// SubmitData - data for a submit request
type SubmitData struct {
	Packed string // hex of the packed transition context
}

// Submit - send a packed transition context to the bank
func (client *Client) Submit(submitConfig *SubmitData) (*bank.SubmitReply, error) {

	packed, err := hex.DecodeString(submitConfig.Packed)
	if nil != err {
		return nil, err
	}

	return client.SubmitPacked(utxo.Packed(packed))
}

// SubmitPacked - send an already packed transition context to the bank
func (client *Client) SubmitPacked(packed utxo.Packed) (*bank.SubmitReply, error) {

	submitArgs := bank.SubmitArguments{
		Packed: packed,
	}

	client.printJson("Submit Request", submitArgs)

	var reply bank.SubmitReply
	err := client.client.Call("Bank.Submit", submitArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return &reply, nil
}

// Validate - check a packed transition context without applying it
func (client *Client) Validate(packed utxo.Packed) (*bank.ValidateReply, error) {

	validateArgs := bank.ValidateArguments{
		Packed: packed,
	}

	client.printJson("Validate Request", validateArgs)

	var reply bank.ValidateReply
	err := client.client.Call("Bank.Validate", validateArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Validate Reply", reply)

	return &reply, nil
}

// TransitionStatusData - request data for transition status
type TransitionStatusData struct {
	TxId string
}

// GetTransitionStatus - perform a status request
func (client *Client) GetTransitionStatus(statusConfig *TransitionStatusData) (*bank.StatusReply, error) {

	var txId digest.Digest
	err := txId.UnmarshalText([]byte(statusConfig.TxId))
	if nil != err {
		return nil, err
	}

	statusArgs := bank.StatusArguments{
		TxId: txId,
	}

	client.printJson("Status Request", statusArgs)

	var reply bank.StatusReply
	err = client.client.Call("Bank.Status", statusArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return &reply, nil
}
