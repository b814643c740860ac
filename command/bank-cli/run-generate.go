// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/account"
)

// rawKeyPair - display structure for a newly generated key pair
type rawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	OwnerKey   string `json:"ownerKey"`
	PrivateKey string `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewBase58EncodedSeedV2(m.testnet)
	if nil != err {
		return err
	}

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	acc := private.Account()
	ownerKey := acc.OwnerKey()

	raw := rawKeyPair{
		Seed:       seed,
		Account:    acc.String(),
		OwnerKey:   hex.EncodeToString(ownerKey[:]),
		PrivateKey: private.String(),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "rawKeyPair: %#v\n", raw)
	}

	printJson(m.w, raw)
	return nil
}
