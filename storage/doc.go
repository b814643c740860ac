// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains two LevelDB databases, each split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++          = concatenation of byte data
// 3. txId        = transaction digest as 32 byte SHA3-256(data)
// 4. out point   = txId ++ output index (big endian uint32, 4 bytes)
// 5. owner       = ledger owner key (32 byte public key)
// 6. count       = successive index value as big endian uint64 (8 bytes)
// 7. *others*    = byte values of various length
//
// Data database (authoritative, rebuilt only by resync):
//
//   T ++ txId                  - validated bank transactions
//                                data: sequence number ++ packed transaction context
//   S ++ out point             - ledger snapshots keyed by the bank output carrying them
//                                data: packed ledger snapshot
//   B ++ label                 - current bank state records, e.g. the live bank out point
//                                data: byte values of various length
//
// Index database (derived, can be regenerated from the data database):
//
//   N ++ owner                 - next count value to use for appending to owner history
//                                data: count
//   H ++ owner ++ count        - history of transactions touching an owner
//                                data: txId
//   D ++ owner ++ txId         - position in history, for delete after reorganisation
//                                data: count
//   O ++ owner                 - current reward token balance
//                                data: balance (big endian uint64, 8 bytes)
//
// Testing:
//   Z ++ key                   - testing data
package storage
