// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/bankd/util"
	"github.com/bitmark-inc/bankd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	zapDomain = "publisher"
	queueSize = 50
)

type broadcaster struct {
	log        *logger.L
	socket4    *zmq.Socket
	socket6    *zmq.Socket
	parameters bank.Parameters
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, parameters bank.Parameters) error {

	log := logger.New("broadcaster")
	brdc.log = log
	brdc.parameters = parameters

	log.Info("initialising…")

	// validate the listen addresses
	connections := make([]*util.Connection, 0, len(broadcast))
	for i, address := range broadcast {
		c, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, err)
			return err
		}
		connections = append(connections, c)
	}

	// allocate IPv4 and IPv6 sockets
	if 0 != len(connections) {
		err := zmqutil.StartAuthentication()
		if nil != err {
			log.Errorf("zmq.AuthStart: error: %s", err)
			return err
		}

		brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, connections)
		if nil != err {
			log.Errorf("bind broadcast sockets error: %s", err)
			return err
		}
	}

	return nil
}

// Run - wait for applied transitions and republish them to external
// subscribers
func (brdc *broadcaster) Run(_ interface{}, shutdown <-chan struct{}) {

	log := brdc.log
	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan(queueSize)

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop

		case item := <-queue:
			if "transition" != item.Command {
				break // announcer traffic is not for subscribers
			}
			if 0 == len(item.Parameters) || 0 == len(item.Parameters[0]) {
				log.Warn("transition with no payload")
				break
			}
			brdc.process(item.Parameters[0])
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// publish one transition as: command, packed bytes, JSON envelope
func (brdc *broadcaster) process(packed []byte) {
	log := brdc.log

	envelope, err := newEnvelope(packed, brdc.parameters, reservoir.Sequence())
	if nil != err {
		log.Warnf("discard undecodable transition: error: %s", err)
		return
	}
	data, err := json.Marshal(envelope)
	if nil != err {
		log.Errorf("envelope marshal error: %s", err)
		return
	}

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.Send("transition", zmq.SNDMORE)
		if nil == err {
			_, err = socket.SendBytes(packed, zmq.SNDMORE)
		}
		if nil == err {
			_, err = socket.SendBytes(data, 0)
		}
		if nil != err {
			log.Errorf("publish transition: %s  error: %s", envelope.TxId, err)
			return
		}
	}

	log.Infof("published %s transition: %s  sequence: %d  delta: %d", envelope.Kind, envelope.TxId, envelope.Sequence, envelope.Delta)
}
