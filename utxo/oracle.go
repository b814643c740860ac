// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/token"
)

// UniqueInputWithToken - the single input holding at least one unit
// of a token
//
// zero matches is a not-found error, more than one is ambiguous, so a
// caller can rely on the match being the only place the token sits
func UniqueInputWithToken(inputs []Input, id token.ID) (*Input, error) {
	var match *Input
	for i := range inputs {
		if !inputs[i].Output.Value.HasToken(id) {
			continue
		}
		if nil != match {
			return nil, fault.TokenAmbiguous
		}
		match = &inputs[i]
	}
	if nil == match {
		return nil, fault.TokenNotFound
	}
	return match, nil
}

// UniqueOutputWithToken - the single output holding at least one unit
// of a token
func UniqueOutputWithToken(outputs []Output, id token.ID) (*Output, error) {
	var match *Output
	for i := range outputs {
		if !outputs[i].Value.HasToken(id) {
			continue
		}
		if nil != match {
			return nil, fault.TokenAmbiguous
		}
		match = &outputs[i]
	}
	if nil == match {
		return nil, fault.TokenNotFound
	}
	return match, nil
}
