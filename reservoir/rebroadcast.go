// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/bankd/constants"
	"github.com/bitmark-inc/bankd/messagebus"
	"github.com/bitmark-inc/logger"
)

type rebroadcaster struct {
	log *logger.L
}

func (r *rebroadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	r.log = logger.New("rebroadcaster")
	log := r.log

	log.Info("starting…")

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			log.Info("shutting down…")
			break loop
		case <-time.After(constants.RebroadcastInterval): // timeout
			r.process()
		}
	}

	log.Info("stopped")
}

// resend transitions the network may have missed
func (r *rebroadcaster) process() {
	log := r.log
	globalData.RLock()

	log.Info("Start rebroadcasting local transitions…")

	for _, item := range globalData.pending {
		broadcastTransition(item)
	}
	for _, item := range globalData.recent {
		broadcastTransition(item)
	}

	globalData.RUnlock()
}

// send one transition, dropping the stale cache entry first so the
// send is not swallowed as a repeat
func broadcastTransition(item *transitionData) {
	messagebus.DropCache(messagebus.Message{
		Command:    "transition",
		Parameters: [][]byte{item.packed},
	})
	messagebus.Bus.Broadcast.Send("transition", item.packed)
}
