// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/bankd/announce"
	"github.com/bitmark-inc/bankd/counter"
	"github.com/bitmark-inc/bankd/mode"
	"github.com/bitmark-inc/bankd/ownership"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/rpc/bank"
	"github.com/bitmark-inc/bankd/rpc/ledger"
	"github.com/bitmark-inc/bankd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - register all bankd services
func Create(log *logger.L, version string, rpcCount *counter.Counter, readOnly bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(bank.New(log, mode.Is, reservoir.Get(), readOnly))
	_ = server.Register(ledger.New(log, reservoir.Get(), ownership.Get()))
	_ = server.Register(node.New(log, start, version, rpcCount, announce.Get(), reservoir.Get()))

	return server
}
