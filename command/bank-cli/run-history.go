// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/command/bank-cli/rpccalls"
)

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := checkOwner(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	start := c.Uint64("start")

	count, err := checkRecordCount(c.Int("count"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	historyConfig := &rpccalls.HistoryData{
		Owner: owner,
		Start: start,
		Count: count,
	}

	response, err := client.GetHistory(historyConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
