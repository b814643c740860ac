// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for bankd
//
// keeps encrypted identities in a per-network JSON configuration file
// and wraps the bankd RPC calls: query balances and history, export
// the packed book, and build and submit mine/redeem transitions from
// JSON context files
//
// e.g. to check the balance of the default identity on testnet:
//
//   bank-cli -n testing balance
package main
