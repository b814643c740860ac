// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/logger"
)

const expirationCheckInterval = 5 * time.Minute

type cleaner struct {
	log *logger.L
}

func (c *cleaner) Run(args interface{}, shutdown <-chan struct{}) {

	c.log = logger.New("expiration")

	ticker := time.NewTicker(expirationCheckInterval)
	for {
		select {
		case <-ticker.C:
			c.deleteExpiredItems()
		case <-shutdown:
			ticker.Stop()
			return
		}
	}
}

func (c *cleaner) deleteExpiredItems() {

	globalData.Lock()
	for point, item := range globalData.pending {
		if expired(item.expiresAt) {
			c.log.Infof("expired deferred transition: %s", item.txId)
			delete(globalData.pending, point)
			delete(globalData.pendingIndex, item.txId)
		}
	}
	for txId, item := range globalData.recent {
		if expired(item.expiresAt) {
			delete(globalData.recent, txId)
		}
	}
	globalData.Unlock()
}

func expired(exp time.Time) bool {
	return exp.IsZero() || time.Since(exp) > 0
}
