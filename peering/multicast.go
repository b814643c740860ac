// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peering

import (
	"context"
	"fmt"

	peer "github.com/libp2p/go-libp2p-peer"
	pubsub "github.com/libp2p/go-libp2p-pubsub"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/mode"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/util"
	"github.com/bitmark-inc/bankd/utxo"
)

// SubHandler - multicasting subscription handler
func (n *Node) SubHandler(ctx context.Context, sub *pubsub.Subscription) {
	log := n.Log
	log.Info("-- sub start listen --")
	nodeChain := mode.ChainName()
loop:
	for {
		msg, err := sub.Next(ctx)
		if err != nil {
			util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>sub receive error: %s", err))
			continue loop
		}
		chain, fn, parameters, err := UnPackP2PMessage(msg.Data)
		if nil != err {
			util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>unpack error: %s", err))
			continue loop
		}
		if chain != nodeChain {
			util.LogError(log, util.CoRed, fmt.Sprintf("-->>different chain error: this chain %v peer chain %v", nodeChain, chain))
			continue loop
		}
		dataLength := len(parameters)
		switch fn {
		case "transition":
			if dataLength < 1 {
				util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>transition with too few data: %d items", dataLength))
				continue loop
			}
			util.LogDebug(log, util.CoGreen, fmt.Sprintf("-->>received transition: %x", parameters[0]))
			err := processTransition(parameters[0])
			if nil != err {
				util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>failed transition: error: %s", err))
				continue loop
			}
		case "rpc":
			if dataLength < 3 {
				util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>rpc with too few data: %d items", dataLength))
				continue loop
			}
			if 8 != len(parameters[2]) {
				util.LogWarn(log, util.CoLightRed, "-->>rpc with invalid timestamp")
				continue loop
			}
			messagebus.Bus.Announce.Send("addrpc", parameters[0], parameters[1], parameters[2])
		case "peer":
			if dataLength < 3 {
				util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>peer with too few data: %d items", dataLength))
				continue loop
			}
			if 8 != len(parameters[2]) {
				util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>peer with invalid timestamp=%v", parameters[2]))
				continue loop
			}
			id, err := peer.IDFromBytes(parameters[0])
			if err != nil {
				util.LogWarn(log, util.CoLightRed, "-->>invalid id in requesting")
				continue loop
			}
			util.LogDebug(log, util.CoGreen, fmt.Sprintf("-->>SubHandler fn=%s send to announce ID: %s", fn, id.ShortString()))
			messagebus.Bus.Announce.Send("addpeer", parameters[0], parameters[1], parameters[2])
		default:
			util.LogWarn(log, util.CoLightRed, fmt.Sprintf("-->>unrecognized command: %s", fn))
			continue loop
		}
	}
}

// unpack a received transition and store it in the reservoir
func processTransition(packed []byte) error {
	if 0 == len(packed) {
		return fault.MissingParameters
	}

	if !mode.Is(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	_, _, err := reservoir.StoreTransition(utxo.Packed(packed))
	return err
}
