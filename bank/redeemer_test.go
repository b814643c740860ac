// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/fault"
)

func TestRedeemerTagStrings(t *testing.T) {
	testCases := []struct {
		tag      bank.RedeemerTag
		expected string
	}{
		{bank.TagNothing, ""},
		{bank.TagMine, "mine"},
		{bank.TagRedeem, "redeem"},
	}

	for _, testCase := range testCases {
		actual := testCase.tag.String()
		if testCase.expected != actual {
			t.Errorf("string: actual: %q  expected: %q", actual, testCase.expected)
		}
	}
}

func TestRedeemerTagValidity(t *testing.T) {
	if bank.TagNothing.IsValid() {
		t.Errorf("nothing tag must not be valid")
	}
	if !bank.TagMine.IsValid() {
		t.Errorf("mine tag must be valid")
	}
	if !bank.TagRedeem.IsValid() {
		t.Errorf("redeem tag must be valid")
	}
	if bank.RedeemerTag(99).IsValid() {
		t.Errorf("out of range tag must not be valid")
	}
	if 2 != bank.TagCount {
		t.Errorf("tag count: actual: %d  expected: 2", bank.TagCount)
	}
}

func TestRedeemerTagPackUnpack(t *testing.T) {
	for tag := bank.TagFirst; tag <= bank.TagLast; tag += 1 {
		unpacked, err := bank.UnpackRedeemer(tag.Pack())
		if nil != err {
			t.Fatalf("unpack %s error: %s", tag, err)
		}
		if tag != unpacked {
			t.Errorf("round trip: actual: %v  expected: %v", unpacked, tag)
		}
	}

	invalid := [][]byte{
		nil,
		{},
		{0x00},       // the nothing tag
		{0x40},       // out of range
		{0x01, 0x00}, // trailing byte
		{0x81},       // truncated varint
	}
	for i, buffer := range invalid {
		_, err := bank.UnpackRedeemer(buffer)
		if fault.InvalidRedeemer != err {
			t.Errorf("%d: actual: %v  expected: %v", i, err, fault.InvalidRedeemer)
		}
	}
}

func TestRedeemerTagJSON(t *testing.T) {
	buffer, err := json.Marshal(bank.TagMine)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if `"mine"` != string(buffer) {
		t.Errorf("marshal: actual: %s  expected: \"mine\"", buffer)
	}

	var tag bank.RedeemerTag
	err = json.Unmarshal([]byte(`"redeem"`), &tag)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if bank.TagRedeem != tag {
		t.Errorf("unmarshal: actual: %v  expected: %v", tag, bank.TagRedeem)
	}

	err = json.Unmarshal([]byte(`"burn"`), &tag)
	if fault.InvalidRedeemer != err {
		t.Fatalf("unknown name: actual: %v  expected: %v", err, fault.InvalidRedeemer)
	}
}

func TestRedeemerTagScanFormat(t *testing.T) {
	var tag bank.RedeemerTag
	n, err := fmt.Sscan("mine", &tag)
	if nil != err {
		t.Fatalf("scan error: %s", err)
	}
	if 1 != n || bank.TagMine != tag {
		t.Errorf("scan: actual: %v  expected: %v", tag, bank.TagMine)
	}
}
