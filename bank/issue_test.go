// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank_test

import (
	"testing"

	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/token"
	"github.com/bitmark-inc/bankd/utxo"
)

func TestIssueOnce(t *testing.T) {
	p := testParameters()

	context := issueContext(p, map[byte]uint64{})
	err := bank.Issue(context, p)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}

	// a pre-seeded initial book is equally acceptable
	context = issueContext(p, map[byte]uint64{0x01: 1000, 0x02: 500})
	err = bank.Issue(context, p)
	if nil != err {
		t.Fatalf("issue with initial book error: %s", err)
	}
}

func TestIssueAnchorRequired(t *testing.T) {
	p := testParameters()

	context := issueContext(p, map[byte]uint64{})
	context.Inputs[0].OutPoint = outPointAt("some other transaction", 0)
	err := bank.Issue(context, p)
	if fault.IssuanceAnchorMissing != err {
		t.Fatalf("missing anchor: actual: %v  expected: %v", err, fault.IssuanceAnchorMissing)
	}

	// right transaction, wrong index
	context = issueContext(p, map[byte]uint64{})
	context.Inputs[0].OutPoint.Index = p.Anchor.Index + 1
	err = bank.Issue(context, p)
	if fault.IssuanceAnchorMissing != err {
		t.Fatalf("wrong index: actual: %v  expected: %v", err, fault.IssuanceAnchorMissing)
	}
}

func TestIssueExactMint(t *testing.T) {
	p := testParameters()

	// an extra token under the own policy
	context := issueContext(p, map[byte]uint64{})
	context.Mint[token.ID{Policy: p.Policy, Name: token.Name("EXTRA")}] = 1
	err := bank.Issue(context, p)
	if fault.WrongIssuanceMint != err {
		t.Fatalf("extra mint: actual: %v  expected: %v", err, fault.WrongIssuanceMint)
	}

	// two master tokens
	context = issueContext(p, map[byte]uint64{})
	context.Mint[p.MasterID()] = 2
	err = bank.Issue(context, p)
	if fault.WrongIssuanceMint != err {
		t.Fatalf("double master: actual: %v  expected: %v", err, fault.WrongIssuanceMint)
	}

	// bank token never minted
	context = issueContext(p, map[byte]uint64{})
	delete(context.Mint, p.BankID())
	err = bank.Issue(context, p)
	if fault.WrongIssuanceMint != err {
		t.Fatalf("missing bank mint: actual: %v  expected: %v", err, fault.WrongIssuanceMint)
	}

	// tokens under a foreign policy do not disturb the check
	context = issueContext(p, map[byte]uint64{})
	context.Mint[token.ID{Policy: rewardPolicy, Name: token.Name("NOISE")}] = 9
	err = bank.Issue(context, p)
	if nil != err {
		t.Fatalf("foreign mint noise error: %s", err)
	}
}

func TestIssueBankDestination(t *testing.T) {
	p := testParameters()

	// bank token sent to the authority instead of the bank address
	context := issueContext(p, map[byte]uint64{})
	context.Outputs[0].Owner = authority
	err := bank.Issue(context, p)
	if fault.BankAddressMismatch != err {
		t.Fatalf("wrong destination: actual: %v  expected: %v", err, fault.BankAddressMismatch)
	}

	// bank token in no output at all
	context = issueContext(p, map[byte]uint64{})
	context.Outputs = context.Outputs[1:]
	err = bank.Issue(context, p)
	if fault.BankTokenMissing != err {
		t.Fatalf("no bank output: actual: %v  expected: %v", err, fault.BankTokenMissing)
	}
}

func TestIssueInitialBook(t *testing.T) {
	p := testParameters()

	// no book on the bank output
	context := issueContext(p, map[byte]uint64{})
	context.Outputs[0].Datum = nil
	err := bank.Issue(context, p)
	if fault.LedgerDataMissing != err {
		t.Fatalf("missing book: actual: %v  expected: %v", err, fault.LedgerDataMissing)
	}

	// book that does not decode
	context = issueContext(p, map[byte]uint64{})
	context.Outputs[0].Datum = []byte{0x03, 0x00}
	err = bank.Issue(context, p)
	if fault.MalformedLedger != err {
		t.Fatalf("corrupt book: actual: %v  expected: %v", err, fault.MalformedLedger)
	}

	// book with disordered keys
	bad := append(packBook(map[byte]uint64{0x02: 5}), packBook(map[byte]uint64{0x01: 5})[1:]...)
	bad[0] = 0x02 // entry count covering both
	context = issueContext(p, map[byte]uint64{})
	context.Outputs[0].Datum = bad
	err = bank.Issue(context, p)
	if fault.LedgerKeysOutOfOrder != err {
		t.Fatalf("disordered book: actual: %v  expected: %v", err, fault.LedgerKeysOutOfOrder)
	}
}

func TestIssuePurposeThroughValidate(t *testing.T) {
	p := testParameters()

	// minting under a foreign policy must never reach issuance
	context := issueContext(p, map[byte]uint64{})
	context.Purpose = utxo.Mint{Policy: rewardPolicy}
	err := bank.Validate(context, p)
	if fault.InvalidRedeemer != err {
		t.Fatalf("foreign policy mint: actual: %v  expected: %v", err, fault.InvalidRedeemer)
	}
}
