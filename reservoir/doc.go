// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - the intake for bank transitions
//
// every submitted transition passes through here exactly once:
// 1. transitions spending the current bank UTXO are validated and
//    applied to the balance book immediately
// 2. transitions spending a bank UTXO this node has not reached yet
//    are held back until their predecessor arrives
// applied transitions are committed to storage atomically and
// broadcast on the message bus
package reservoir
