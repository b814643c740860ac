// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/account"
	"github.com/bitmark-inc/bankd/command/bank-cli/configuration"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", fault.IdentityNameIsRequired
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fault.ConnectIsRequired
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fault.DescriptionIsRequired
	}

	return description, nil
}

// seed is either given or generated new
// verify that it decodes and matches the network
func checkSeed(seed string, new bool, testnet bool) (string, error) {

	if new && "" == seed {
		var err error
		seed, err = account.NewBase58EncodedSeedV2(testnet)
		if nil != err {
			return "", err
		}
	}
	if "" == seed {
		return "", fault.SeedIsRequired
	}

	// verify that seed is valid and for the right network
	p, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	if testnet != p.IsTesting() {
		return "", fault.WrongNetworkForPrivateKey
	}

	return seed, nil
}

// transition txid is required field
func checkTxId(txId string) (string, error) {
	if "" == txId {
		return "", fault.TransactionIdIsRequired
	}

	return txId, nil
}

// owner is either an identity name from the config file
// or a hex owner key, blank selects the default identity
func checkOwner(name string, config *configuration.Configuration) (string, string, error) {
	if "" == name {
		name = config.DefaultIdentity
	}

	if acc, err := config.Account(name); nil == err {
		key := acc.OwnerKey()
		return name, hex.EncodeToString(key[:]), nil
	}

	// not an identity, try as a hex owner key
	var owner ledger.OwnerKey
	err := owner.UnmarshalText([]byte(name))
	if nil != err {
		return "", "", fault.IdentityNameNotFound
	}
	return name, name, nil
}

// identity with private key access, prompts for the
// password if one was not given on the command line
func checkOwnerWithPasswordPrompt(name string, config *configuration.Configuration, c *cli.Context) (string, *configuration.Private, error) {
	if "" == name {
		name = config.DefaultIdentity
	}

	var err error

	// get global password items
	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return "", nil, err
		}
	}
	owner, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, owner, nil
}

// coerce the count into a sane range
func checkRecordCount(count int) (int, error) {
	if count <= 0 {
		return 0, fault.InvalidCount
	}
	return count, nil
}

// check if file exists and is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
