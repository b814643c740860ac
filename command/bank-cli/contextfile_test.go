// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/utxo"
)

const (
	testTxId = "41f2c04f9a1a5a0d2a9c7c8e6b55e62a1b7df0ba8a04f6f85b73fe1a3c96e4d7"
)

func TestParseOutPoint(t *testing.T) {

	point, err := parseOutPoint(testTxId + ":7")
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	if 7 != point.Index {
		t.Errorf("index: actual: %d  expected: 7", point.Index)
	}
	if testTxId != point.TxID.String() {
		t.Errorf("txid: actual: %s  expected: %s", point.TxID, testTxId)
	}

	invalid := []string{
		"",
		":0",
		testTxId,
		testTxId + ":",
		testTxId + ":x",
		testTxId + ":-1",
		"short:0",
	}
	for i, s := range invalid {
		_, err := parseOutPoint(s)
		if nil == err {
			t.Errorf("%d: unexpected success for: %q", i, s)
		}
	}
}

func TestConvertPurpose(t *testing.T) {

	spend, err := convertPurpose(contextPurpose{Spend: testTxId + ":0"})
	if nil != err {
		t.Fatalf("spend purpose error: %s", err)
	}
	if _, ok := spend.(utxo.Spend); !ok {
		t.Errorf("spend purpose: actual: %T", spend)
	}

	mint, err := convertPurpose(contextPurpose{Mint: testTxId})
	if nil != err {
		t.Fatalf("mint purpose error: %s", err)
	}
	if _, ok := mint.(utxo.Mint); !ok {
		t.Errorf("mint purpose: actual: %T", mint)
	}

	// neither or both set must fail
	_, err = convertPurpose(contextPurpose{})
	if nil == err {
		t.Errorf("unexpected success for empty purpose")
	}
	_, err = convertPurpose(contextPurpose{Spend: testTxId + ":0", Mint: testTxId})
	if nil == err {
		t.Errorf("unexpected success for double purpose")
	}
}

func TestConvertContextRoundTrip(t *testing.T) {

	owner := strings.Repeat("12", 32)
	policy := digest.NewDigest([]byte("policy")).String()

	file := &contextFile{
		Inputs: []contextInput{
			{
				OutPoint: testTxId + ":0",
				Output: contextOutput{
					Owner: owner,
					Value: contextValue{
						Coin: 5000,
						Tokens: []contextTokenEntry{
							{
								Policy:   digest.NewDigest([]byte("policy")),
								Name:     "t",
								Quantity: 3,
							},
						},
					},
					Datum: "00ff",
				},
			},
		},
		Outputs: []contextOutput{
			{
				Owner: owner,
				Value: contextValue{Coin: 5000},
			},
		},
		Mint: []contextMintEntry{
			{
				Policy:   digest.NewDigest([]byte("policy")),
				Quantity: -3,
			},
		},
		Signatories: []string{owner},
		Purpose:     contextPurpose{Mint: policy},
	}

	context, err := convertContext(file, nil)
	if nil != err {
		t.Fatalf("convert error: %s", err)
	}

	if 1 != len(context.Inputs) {
		t.Fatalf("inputs: actual: %d  expected: 1", len(context.Inputs))
	}
	if 5000 != context.Inputs[0].Output.Value.Coin {
		t.Errorf("input coin: actual: %d  expected: 5000", context.Inputs[0].Output.Value.Coin)
	}
	if !context.Inputs[0].Output.HasDatum() {
		t.Errorf("input datum is missing")
	}
	expectedOwner, _ := hex.DecodeString(owner)
	if !context.SignedBy(context.Outputs[0].Owner) {
		t.Errorf("signatory is missing")
	}
	actualOwner := context.Outputs[0].Owner
	if !strings.EqualFold(hex.EncodeToString(actualOwner[:]), hex.EncodeToString(expectedOwner)) {
		t.Errorf("owner: actual: %x  expected: %x", actualOwner, expectedOwner)
	}

	// the converted context must survive the wire codec
	packed, err := context.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, err := utxo.UnpackContext(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	id1, err := context.TxID()
	if nil != err {
		t.Fatalf("txid error: %s", err)
	}
	id2, err := unpacked.TxID()
	if nil != err {
		t.Fatalf("txid error: %s", err)
	}
	if id1 != id2 {
		t.Errorf("txid mismatch: actual: %s  expected: %s", id2, id1)
	}
}
