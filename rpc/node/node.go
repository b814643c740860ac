// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bankd/announce"
	"github.com/bitmark-inc/bankd/announce/rpc"
	"github.com/bitmark-inc/bankd/counter"
	"github.com/bitmark-inc/bankd/mode"
	"github.com/bitmark-inc/bankd/peering"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Announce announce.Announce
	Rsvr     reservoir.Reservoir
	counter  *counter.Counter
}

// limit for count
const maximumNodeList = 100

// ---

// NodeArguments - arguments for RPC
type NodeArguments struct {
	Start uint64 `json:"Start,string"`
	Count int    `json:"count"`
}

// NodeReply - result from RPC
type NodeReply struct {
	Nodes     []rpc.Entry `json:"nodes"`
	NextStart uint64      `json:"nextStart,string"`
}

func New(log *logger.L,
	start time.Time,
	version string,
	counter *counter.Counter,
	ann announce.Announce,
	rsvr reservoir.Reservoir,
) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Announce: ann,
		Rsvr:     rsvr,
		counter:  counter,
	}
}

// List - list all nodes offering RPC functionality
func (node *Node) List(arguments *NodeArguments, reply *NodeReply) error {

	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumNodeList); nil != err {
		return err
	}

	nodes, nextStart, err := node.Announce.Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Nodes = nodes
	reply.NextStart = nextStart

	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain              string   `json:"chain"`
	Mode               string   `json:"mode"`
	Bank               BankInfo `json:"bank"`
	TransitionCounters Counters `json:"transitionCounters"`
	RPCs               uint64   `json:"rpcs"`
	Peers              uint64   `json:"peers"`
	Version            string   `json:"version"`
	Uptime             string   `json:"uptime"`
	PublicKey          string   `json:"publicKey"`
}

// BankInfo - the bank position held by the node
type BankInfo struct {
	Issued   bool   `json:"issued"`
	Sequence uint64 `json:"sequence,string"`
	Point    string `json:"point"`
	Owners   int    `json:"owners"`
}

// Counters - transition counters
type Counters struct {
	Pending int `json:"pending"`
	Applied int `json:"applied"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	point := ""
	if currentPoint, ok := node.Rsvr.CurrentPoint(); ok {
		point = currentPoint.String()
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Bank = BankInfo{
		Issued:   node.Rsvr.IsIssued(),
		Sequence: node.Rsvr.Sequence(),
		Point:    point,
		Owners:   node.Rsvr.Owners(),
	}
	reply.TransitionCounters.Pending, reply.TransitionCounters.Applied = node.Rsvr.ReadCounters()
	reply.RPCs = node.counter.Uint64()
	reply.Peers = peering.ConnectedCount()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.PublicKey = peering.IDString()
	return nil
}
