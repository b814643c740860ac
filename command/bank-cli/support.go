// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/command/bank-cli/rpccalls"
	"github.com/bitmark-inc/bankd/fault"
)

// build a transition from a context file, stamp the redeemer tag and
// send it to the bank, with --dry-run only the validate call is made
func submitTransition(c *cli.Context, tag bank.RedeemerTag) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return fault.FileDoesNotExist
	}

	context, err := readContextFile(fileName, m.config)
	if nil != err {
		return err
	}

	context.Redeemer = tag.Pack()

	// the submitting identity attests the transition
	_, owner, err := checkOwner(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}
	ownerKey, err := resolveOwner(owner, m.config)
	if nil != err {
		return err
	}
	if !context.SignedBy(ownerKey) {
		context.Signatories = append(context.Signatories, ownerKey)
	}

	packed, err := context.Pack()
	if nil != err {
		return err
	}

	if m.verbose {
		txId, err := context.TxID()
		if nil != err {
			return err
		}
		fmt.Fprintf(m.e, "file: %s\n", fileName)
		fmt.Fprintf(m.e, "tag: %s\n", tag)
		fmt.Fprintf(m.e, "txid: %s\n", txId)
		fmt.Fprintf(m.e, "packed: %d bytes\n", len(packed))
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	if c.Bool("dry-run") {
		response, err := client.Validate(packed)
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	response, err := client.SubmitPacked(packed)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
