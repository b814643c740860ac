// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/command/bank-cli/rpccalls"
	"github.com/bitmark-inc/bankd/fault"
)

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed := c.String("packed")
	if "" == packed {
		return fault.DataFieldEmpty
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed: %s\n", packed)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	submitConfig := &rpccalls.SubmitData{
		Packed: packed,
	}

	response, err := client.Submit(submitConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
