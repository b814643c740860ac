// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// the time for a pending transition to expire
const (
	ReservoirTimeout = 24 * time.Hour
)

// the maximum time to hold an accepted transition in the
// rebroadcast cache
const (
	TransitionTimeout = ReservoirTimeout + time.Hour
)

// the interval between rebroadcasts of unconfirmed transitions
const (
	RebroadcastInterval = 1 * time.Minute
)
