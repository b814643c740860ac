// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/bank"
)

func runRedeem(c *cli.Context) error {
	return submitTransition(c, bank.TagRedeem)
}
