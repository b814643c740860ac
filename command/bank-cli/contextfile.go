// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bankd/command/bank-cli/configuration"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/token"
	"github.com/bitmark-inc/bankd/utxo"
)

// JSON file form of a transition context
//
// the wire form cannot be used directly: token quantities are keyed
// by a struct and the purpose is a union, so the file uses flat lists
// and a one-of object instead
//
// owners are either hex owner keys or identity names from the
// configuration file, out points are "txid:index"
type contextFile struct {
	Inputs          []contextInput     `json:"inputs"`
	ReferenceInputs []contextInput     `json:"referenceInputs"`
	Outputs         []contextOutput    `json:"outputs"`
	Mint            []contextMintEntry `json:"mint"`
	Signatories     []string           `json:"signatories"`
	Purpose         contextPurpose     `json:"purpose"`
}

type contextInput struct {
	OutPoint string        `json:"outPoint"` // txid:index
	Output   contextOutput `json:"output"`
}

type contextOutput struct {
	Owner string       `json:"owner"`
	Value contextValue `json:"value"`
	Datum string       `json:"datum,omitempty"` // hex
}

type contextValue struct {
	Coin   uint64              `json:"coin,string"`
	Tokens []contextTokenEntry `json:"tokens,omitempty"`
}

type contextTokenEntry struct {
	Policy   digest.Digest `json:"policy"`
	Name     token.Name    `json:"name"`
	Quantity uint64        `json:"quantity,string"`
}

type contextMintEntry struct {
	Policy   digest.Digest `json:"policy"`
	Name     token.Name    `json:"name"`
	Quantity int64         `json:"quantity,string"`
}

// exactly one of these must be present
type contextPurpose struct {
	Spend string `json:"spend,omitempty"` // txid:index
	Mint  string `json:"mint,omitempty"`  // hex policy
}

// readContextFile - parse a JSON context file into the wire form
func readContextFile(fileName string, config *configuration.Configuration) (*utxo.Context, error) {

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	file := &contextFile{}
	dec := json.NewDecoder(f)
	err = dec.Decode(file)
	if nil != err {
		return nil, err
	}

	return convertContext(file, config)
}

func convertContext(file *contextFile, config *configuration.Configuration) (*utxo.Context, error) {

	context := &utxo.Context{}

	var err error
	context.Inputs, err = convertInputs(file.Inputs, config)
	if nil != err {
		return nil, err
	}
	context.ReferenceInputs, err = convertInputs(file.ReferenceInputs, config)
	if nil != err {
		return nil, err
	}

	for _, output := range file.Outputs {
		out, err := convertOutput(output, config)
		if nil != err {
			return nil, err
		}
		context.Outputs = append(context.Outputs, out)
	}

	if 0 != len(file.Mint) {
		context.Mint = token.Mint{}
		for _, entry := range file.Mint {
			id := token.ID{Policy: entry.Policy, Name: entry.Name}
			context.Mint[id] = entry.Quantity
		}
	}

	for _, signatory := range file.Signatories {
		owner, err := resolveOwner(signatory, config)
		if nil != err {
			return nil, err
		}
		context.Signatories = append(context.Signatories, owner)
	}

	context.Purpose, err = convertPurpose(file.Purpose)
	if nil != err {
		return nil, err
	}

	return context, nil
}

func convertInputs(inputs []contextInput, config *configuration.Configuration) ([]utxo.Input, error) {
	result := make([]utxo.Input, 0, len(inputs))
	for _, input := range inputs {
		point, err := parseOutPoint(input.OutPoint)
		if nil != err {
			return nil, err
		}
		output, err := convertOutput(input.Output, config)
		if nil != err {
			return nil, err
		}
		result = append(result, utxo.Input{
			OutPoint: point,
			Output:   output,
		})
	}
	return result, nil
}

func convertOutput(output contextOutput, config *configuration.Configuration) (utxo.Output, error) {

	owner, err := resolveOwner(output.Owner, config)
	if nil != err {
		return utxo.Output{}, err
	}

	value := token.NewValue()
	err = value.AddCoin(output.Value.Coin)
	if nil != err {
		return utxo.Output{}, err
	}
	for _, entry := range output.Value.Tokens {
		id := token.ID{Policy: entry.Policy, Name: entry.Name}
		err = value.AddToken(id, entry.Quantity)
		if nil != err {
			return utxo.Output{}, err
		}
	}

	var datum []byte
	if "" != output.Datum {
		datum, err = hex.DecodeString(output.Datum)
		if nil != err {
			return utxo.Output{}, err
		}
	}

	return utxo.Output{
		Owner: owner,
		Value: value,
		Datum: datum,
	}, nil
}

func convertPurpose(purpose contextPurpose) (utxo.Purpose, error) {

	switch {
	case "" != purpose.Spend && "" == purpose.Mint:
		ref, err := parseOutPoint(purpose.Spend)
		if nil != err {
			return nil, err
		}
		return utxo.Spend{Ref: ref}, nil

	case "" == purpose.Spend && "" != purpose.Mint:
		var policy digest.Digest
		err := policy.UnmarshalText([]byte(purpose.Mint))
		if nil != err {
			return nil, err
		}
		return utxo.Mint{Policy: policy}, nil

	default:
		return nil, fault.InvalidItem
	}
}

// parseOutPoint - "txid:index" to wire form
func parseOutPoint(s string) (utxo.OutPoint, error) {

	point := utxo.OutPoint{}

	i := strings.LastIndex(s, ":")
	if i < 1 {
		return point, fault.InvalidItem
	}

	err := point.TxID.UnmarshalText([]byte(s[:i]))
	if nil != err {
		return point, err
	}

	index, err := strconv.ParseUint(s[i+1:], 10, 32)
	if nil != err {
		return point, err
	}
	point.Index = uint32(index)

	return point, nil
}

// resolveOwner - identity name from the config file or a hex owner key
func resolveOwner(s string, config *configuration.Configuration) (ledger.OwnerKey, error) {

	var owner ledger.OwnerKey

	if nil != config {
		if acc, err := config.Account(s); nil == err {
			return acc.OwnerKey(), nil
		}
	}

	err := owner.UnmarshalText([]byte(s))
	if nil != err {
		return owner, fault.IdentityNameNotFound
	}
	return owner, nil
}
