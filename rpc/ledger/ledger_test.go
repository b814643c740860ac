// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/hex"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	l "github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/ownership"
	"github.com/bitmark-inc/bankd/rpc/fixtures"
	"github.com/bitmark-inc/bankd/rpc/ledger"
	"github.com/bitmark-inc/bankd/rpc/mocks"
	"github.com/bitmark-inc/bankd/utxo"
	"github.com/bitmark-inc/logger"
)

func TestLedgerBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	arg := ledger.BalanceArguments{Owner: l.OwnerKey{1, 2, 3}}

	r.EXPECT().Balance(arg.Owner).Return(l.Balance(250), true).Times(1)
	o.EXPECT().HistoryCount(arg.Owner).Return(uint64(4)).Times(1)

	var reply ledger.BalanceReply
	err := lgr.Balance(&arg, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, l.Balance(250), reply.Balance, "wrong balance")
	assert.True(t, reply.Member, "wrong member")
	assert.Equal(t, uint64(4), reply.History, "wrong history")
}

func TestLedgerBalanceWhenNotMember(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	arg := ledger.BalanceArguments{Owner: l.OwnerKey{9}}

	r.EXPECT().Balance(arg.Owner).Return(l.Balance(0), false).Times(1)
	o.EXPECT().HistoryCount(arg.Owner).Return(uint64(0)).Times(1)

	var reply ledger.BalanceReply
	err := lgr.Balance(&arg, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.False(t, reply.Member, "wrong member")
}

func TestLedgerOwners(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	arg := ledger.OwnersArguments{Count: 2}

	records := []ownership.OwnerRecord{
		{Owner: l.OwnerKey{1}, Balance: 10},
		{Owner: l.OwnerKey{2}, Balance: 20},
	}

	o.EXPECT().ListOwners(nil, 2).Return(records, nil).Times(1)

	var reply ledger.OwnersReply
	err := lgr.Owners(&arg, &reply)
	assert.Nil(t, err, "wrong Owners")
	assert.Equal(t, records, reply.Owners, "wrong owners")
	assert.NotNil(t, reply.Next, "wrong next")
	assert.Equal(t, l.OwnerKey{2}, *reply.Next, "wrong next owner")
}

func TestLedgerOwnersWhenLastPage(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	after := l.OwnerKey{5}
	arg := ledger.OwnersArguments{After: &after, Count: 10}

	records := []ownership.OwnerRecord{
		{Owner: l.OwnerKey{6}, Balance: 30},
	}

	o.EXPECT().ListOwners(after[:], 10).Return(records, nil).Times(1)

	var reply ledger.OwnersReply
	err := lgr.Owners(&arg, &reply)
	assert.Nil(t, err, "wrong Owners")
	assert.Equal(t, records, reply.Owners, "wrong owners")
	assert.Nil(t, reply.Next, "wrong next")
}

func TestLedgerOwnersWhenCountTooLarge(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	arg := ledger.OwnersArguments{Count: ledger.MaximumOwnersCount + 1}

	var reply ledger.OwnersReply
	err := lgr.Owners(&arg, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")
}

func TestLedgerHistory(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	arg := ledger.HistoryArguments{
		Owner: l.OwnerKey{1},
		Start: 3,
		Count: 2,
	}

	records := []ownership.Record{
		{N: 3, TxId: digest.Digest{3}, Balance: 15},
		{N: 4, TxId: digest.Digest{4}, Balance: 8},
	}

	o.EXPECT().ListTransitionsFor(arg.Owner, uint64(3), 2).Return(records, nil).Times(1)

	var reply ledger.HistoryReply
	err := lgr.History(&arg, &reply)
	assert.Nil(t, err, "wrong History")
	assert.Equal(t, records, reply.Data, "wrong data")
	assert.Equal(t, uint64(5), reply.Next, "wrong next")
}

func TestLedgerHistoryWhenEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	arg := ledger.HistoryArguments{Owner: l.OwnerKey{1}, Count: 5}

	o.EXPECT().ListTransitionsFor(arg.Owner, uint64(0), 5).Return([]ownership.Record{}, nil).Times(1)

	var reply ledger.HistoryReply
	err := lgr.History(&arg, &reply)
	assert.Nil(t, err, "wrong History")
	assert.Equal(t, uint64(0), reply.Next, "wrong next")
}

func TestLedgerSnapshot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	point := utxo.OutPoint{TxID: digest.Digest{7}, Index: 1}
	book := []byte{1, 2, 3}

	r.EXPECT().CurrentPoint().Return(point, true).Times(1)
	r.EXPECT().Sequence().Return(uint64(12)).Times(1)
	r.EXPECT().Owners().Return(3).Times(1)
	r.EXPECT().PackedBook().Return(book).Times(1)

	var reply ledger.SnapshotReply
	err := lgr.Snapshot(&ledger.SnapshotArguments{}, &reply)
	assert.Nil(t, err, "wrong Snapshot")
	assert.Equal(t, point, reply.Point, "wrong point")
	assert.Equal(t, uint64(12), reply.Sequence, "wrong sequence")
	assert.Equal(t, 3, reply.Owners, "wrong owners")
	assert.Equal(t, hex.EncodeToString(book), reply.Book, "wrong book")
}

func TestLedgerSnapshotWhenNotIssued(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := mocks.NewMockOwnership(ctl)

	lgr := ledger.New(logger.New(fixtures.LogCategory), r, o)

	r.EXPECT().CurrentPoint().Return(utxo.OutPoint{}, false).Times(1)

	var reply ledger.SnapshotReply
	err := lgr.Snapshot(&ledger.SnapshotArguments{}, &reply)
	assert.Equal(t, fault.BankNotIssued, err, "wrong error")
}
