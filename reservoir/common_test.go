// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/storage"
	"github.com/bitmark-inc/bankd/token"
	"github.com/bitmark-inc/bankd/utxo"
	"github.com/bitmark-inc/logger"
)

// test database file
const (
	databaseFileName = "test"
	testingDirName   = "testing"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + "-data.leveldb")
	removeIndexFiles()
}

// remove only the derived index database
func removeIndexFiles() {
	os.RemoveAll(databaseFileName + "-index.leveldb")
}

func removeLogFiles() {
	os.RemoveAll(testingDirName)
}

func setupTestLogger() {
	removeLogFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	mustReindex, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	// a fresh index database always starts unversioned
	if mustReindex {
		err = reservoir.RebuildIndexes(testParameters())
		if nil != err {
			t.Fatalf("rebuild indexes error: %s", err)
		}
		err = storage.ReindexDone()
		if nil != err {
			t.Fatalf("reindex done error: %s", err)
		}
	}

	err = reservoir.Initialise(testParameters())
	if nil != err {
		t.Fatalf("reservoir initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	reservoir.Finalise()
	storage.Finalise()
	removeFiles()
}

func TestMain(m *testing.M) {
	setupTestLogger()
	result := m.Run()
	removeLogFiles()
	os.Exit(result)
}

// fixed identities used across the intake tests
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

// the bank UTXO being spent, placed at a specific out point so that
// transitions can chain from the previous one
func bankInputAt(p bank.Parameters, at utxo.OutPoint, reward uint64, datum []byte) utxo.Input {
	value := token.NewValue()
	value.Coin = 1
	value.Assets[p.BankID()] = 1
	if reward > 0 {
		value.Assets[p.RewardToken] = reward
	}
	return utxo.Input{
		OutPoint: at,
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

// a valid mining transition spending the bank at a given out point
func mineContextAt(p bank.Parameters, at utxo.OutPoint, before map[byte]uint64, after map[byte]uint64, rewardIn uint64, rewardOut uint64) *utxo.Context {
	in := bankInputAt(p, at, rewardIn, packBook(before))
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

// a valid redemption transition spending the bank at a given out point
func redeemContextAt(p bank.Parameters, at utxo.OutPoint, before map[byte]uint64, after map[byte]uint64, rewardIn uint64, rewardOut uint64, signatories ...ledger.OwnerKey) *utxo.Context {
	in := bankInputAt(p, at, rewardIn, packBook(before))
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

// serialise a context, failing the test on error
func packContext(t *testing.T, context *utxo.Context) utxo.Packed {
	packed, err := context.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

// the out point a packed transition would leave the bank at
func bankPointOf(packed utxo.Packed) utxo.OutPoint {
	return utxo.OutPoint{
		TxID:  digest.NewDigest(packed),
		Index: 0,
	}
}
