// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/command/bank-cli/rpccalls"
)

func runSnapshot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetSnapshot()
	if nil != err {
		return err
	}

	if "" == fileName {
		printJson(m.w, response)
		return nil
	}

	packed, err := hex.DecodeString(response.Book)
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(fileName, packed, 0600)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "book: %d bytes written to %q\n", len(packed), fileName)
	}

	// echo the position without the bulky book hex
	response.Book = ""
	printJson(m.w, response)

	return nil
}
