// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bankd/announce/fingerprint"
	"github.com/bitmark-inc/bankd/announce/rpc"
	"github.com/bitmark-inc/bankd/chain"
	"github.com/bitmark-inc/bankd/counter"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/mode"
	"github.com/bitmark-inc/bankd/rpc/fixtures"
	"github.com/bitmark-inc/bankd/rpc/mocks"
	"github.com/bitmark-inc/bankd/rpc/node"
	"github.com/bitmark-inc/bankd/util"
	"github.com/bitmark-inc/bankd/utxo"
	"github.com/bitmark-inc/logger"
)

func TestNodeList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAnnounce(ctl)
	r := mocks.NewMockReservoir(ctl)

	now := time.Now()
	ctr := counter.Counter(3)
	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"1",
		&ctr,
		a,
		r,
	)

	arg := node.NodeArguments{
		Start: 100,
		Count: 5,
	}

	c1, _ := util.NewConnection("1.2.3.4:1234")

	entry := rpc.Entry{
		Fingerprint: fingerprint.Type{1, 2, 3, 4},
		Connections: []*util.Connection{c1},
	}

	a.EXPECT().Fetch(arg.Start, arg.Count).Return([]rpc.Entry{entry}, uint64(10), nil).Times(1)

	var reply node.NodeReply
	err := n.List(&arg, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 1, len(reply.Nodes), "wrong node count")
	assert.Equal(t, entry, reply.Nodes[0], "wrong node info")
	assert.Equal(t, uint64(10), reply.NextStart, "wrong next Start")
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mode.Initialise(chain.Testing)
	defer mode.Finalise()

	a := mocks.NewMockAnnounce(ctl)
	r := mocks.NewMockReservoir(ctl)

	now := time.Now()
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"100",
		&c,
		a,
		r,
	)

	point := utxo.OutPoint{TxID: digest.Digest{1}, Index: 0}

	r.EXPECT().CurrentPoint().Return(point, true).Times(1)
	r.EXPECT().IsIssued().Return(true).Times(1)
	r.EXPECT().Sequence().Return(uint64(7)).Times(1)
	r.EXPECT().Owners().Return(2).Times(1)
	r.EXPECT().ReadCounters().Return(1, 3).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Resynchronise.String(), reply.Mode, "wrong mode")
	assert.True(t, reply.Bank.Issued, "wrong issued")
	assert.Equal(t, uint64(7), reply.Bank.Sequence, "wrong sequence")
	assert.Equal(t, point.String(), reply.Bank.Point, "wrong point")
	assert.Equal(t, 2, reply.Bank.Owners, "wrong owners")
	assert.Equal(t, 1, reply.TransitionCounters.Pending, "wrong pending count")
	assert.Equal(t, 3, reply.TransitionCounters.Applied, "wrong applied count")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.Equal(t, "", reply.PublicKey, "wrong empty public key")
}
