// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	ledgerRecord "github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/rpc/ledger"
)

// BalanceData - request data for a balance query
type BalanceData struct {
	Owner string // hex owner key
}

// GetBalance - query the balance of one owner
func (client *Client) GetBalance(balanceConfig *BalanceData) (*ledger.BalanceReply, error) {

	var owner ledgerRecord.OwnerKey
	err := owner.UnmarshalText([]byte(balanceConfig.Owner))
	if nil != err {
		return nil, err
	}

	balanceArgs := ledger.BalanceArguments{
		Owner: owner,
	}

	client.printJson("Balance Request", balanceArgs)

	var reply ledger.BalanceReply
	err = client.client.Call("Ledger.Balance", balanceArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return &reply, nil
}

// OwnersData - request data for a page of the balance book
type OwnersData struct {
	After string // hex owner key, empty to start at the beginning
	Count int
}

// GetOwners - list a page of the balance book
func (client *Client) GetOwners(ownersConfig *OwnersData) (*ledger.OwnersReply, error) {

	var after *ledgerRecord.OwnerKey
	if "" != ownersConfig.After {
		after = new(ledgerRecord.OwnerKey)
		err := after.UnmarshalText([]byte(ownersConfig.After))
		if nil != err {
			return nil, err
		}
	}

	ownersArgs := ledger.OwnersArguments{
		After: after,
		Count: ownersConfig.Count,
	}

	client.printJson("Owners Request", ownersArgs)

	var reply ledger.OwnersReply
	err := client.client.Call("Ledger.Owners", ownersArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owners Reply", reply)

	return &reply, nil
}

// HistoryData - request data for one owner's transition history
type HistoryData struct {
	Owner string // hex owner key
	Start uint64
	Count int
}

// GetHistory - list balance changes of one owner
func (client *Client) GetHistory(historyConfig *HistoryData) (*ledger.HistoryReply, error) {

	var owner ledgerRecord.OwnerKey
	err := owner.UnmarshalText([]byte(historyConfig.Owner))
	if nil != err {
		return nil, err
	}

	historyArgs := ledger.HistoryArguments{
		Owner: owner,
		Start: historyConfig.Start,
		Count: historyConfig.Count,
	}

	client.printJson("History Request", historyArgs)

	var reply ledger.HistoryReply
	err = client.client.Call("Ledger.History", historyArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("History Reply", reply)

	return &reply, nil
}

// GetSnapshot - export the canonical packed book from the node
func (client *Client) GetSnapshot() (*ledger.SnapshotReply, error) {

	var reply ledger.SnapshotReply
	err := client.client.Call("Ledger.Snapshot", ledger.SnapshotArguments{}, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Snapshot Reply", reply)

	return &reply, nil
}
