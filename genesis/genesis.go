// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - the deployed bank for each chain
//
// each chain has exactly one bank: the policy digest of the compiled
// script, the address the bank UTXO lives at, the token names, the
// external proof and reward tokens and the anchor out point whose
// consumption made the issuance unrepeatable.  these constants are
// fixed at deployment and can never change afterwards.
package genesis

import (
	"github.com/bitmark-inc/bankd/bank"
	"github.com/bitmark-inc/bankd/chain"
	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/token"
	"github.com/bitmark-inc/bankd/utxo"
)

// asset names shared by every deployment
const (
	MasterName = "MASTER"
	BankName   = "BANK"
	ProofName  = "PROOF"
	RewardName = "REWARD"
)

// LiveNet - the bank on the live chain
var LiveNet = bank.Parameters{
	Policy: digest.Digest{
		0x2a, 0x53, 0x5a, 0x25, 0x79, 0xbb, 0xa5, 0x88,
		0x0a, 0x09, 0x8b, 0xa3, 0x5a, 0xd0, 0x2b, 0x3c,
		0x02, 0xb2, 0xbb, 0x3d, 0xad, 0xf6, 0x48, 0x05,
		0x1f, 0xd0, 0xe9, 0x7a, 0x66, 0xc5, 0xf1, 0x4b,
	},
	Address: ledger.OwnerKey{
		0x43, 0xa9, 0x9c, 0x70, 0xd5, 0xef, 0x67, 0x7f,
		0x77, 0x29, 0x5e, 0x10, 0x4b, 0xa6, 0xb8, 0x4b,
		0x80, 0xa1, 0x4a, 0xef, 0x73, 0xdd, 0x19, 0x23,
		0x50, 0x57, 0x41, 0xd7, 0x49, 0xc0, 0xe1, 0x4f,
	},
	MasterName: token.Name(MasterName),
	BankName:   token.Name(BankName),
	ProofToken: token.ID{
		Policy: digest.Digest{
			0x2e, 0xdb, 0xcb, 0x30, 0x20, 0x41, 0x4b, 0xf2,
			0x7e, 0x09, 0x0a, 0xb6, 0x71, 0x9e, 0x81, 0x0c,
			0x70, 0xe0, 0xc9, 0x15, 0x20, 0x88, 0x87, 0xbb,
			0x36, 0x3f, 0xbb, 0xd1, 0x3e, 0x64, 0x92, 0xac,
		},
		Name: token.Name(ProofName),
	},
	RewardToken: token.ID{
		Policy: digest.Digest{
			0x2a, 0x9c, 0x6c, 0xc1, 0xb1, 0x39, 0xc2, 0x04,
			0xe9, 0x28, 0xc0, 0xc2, 0x7e, 0x2f, 0x7f, 0x20,
			0x86, 0x61, 0x71, 0xaf, 0x26, 0x7b, 0x77, 0xdd,
			0x09, 0x1e, 0x91, 0x51, 0xf7, 0xe9, 0xb4, 0x14,
		},
		Name: token.Name(RewardName),
	},
	Anchor: utxo.OutPoint{
		// funding transaction consumed at issuance
		TxID: digest.Digest{
			0x9f, 0x0e, 0x7b, 0xee, 0x66, 0xf4, 0xcb, 0x5e,
			0xec, 0x28, 0xdb, 0xbd, 0xd3, 0xc5, 0xab, 0xd4,
			0x53, 0x9d, 0xed, 0xa3, 0x39, 0xf0, 0xa7, 0xd0,
			0xaf, 0xe6, 0xd5, 0x0f, 0x83, 0x80, 0x4e, 0xac,
		},
		Index: 0,
	},
}

// LiveNetBook - packed initial book of the live bank, empty at issuance
var LiveNetBook = []byte{0x00}

// TestNet - the bank on the test chain
var TestNet = bank.Parameters{
	Policy: digest.Digest{
		0x21, 0x12, 0x82, 0x7f, 0x76, 0x4a, 0x7f, 0x47,
		0x94, 0x3c, 0xe9, 0xc4, 0x32, 0xfb, 0xf4, 0x59,
		0xca, 0x55, 0x26, 0x36, 0xe6, 0x1c, 0x08, 0x3f,
		0xb2, 0x87, 0xbe, 0x6c, 0xa8, 0x32, 0x76, 0x58,
	},
	Address: ledger.OwnerKey{
		0x92, 0x54, 0x9b, 0x4c, 0xe5, 0xf5, 0x61, 0xb7,
		0xbc, 0x19, 0x74, 0x7a, 0x79, 0x35, 0xe6, 0xea,
		0x1f, 0x31, 0x3b, 0x39, 0x36, 0x56, 0x8b, 0x2b,
		0xaf, 0xa2, 0x18, 0xe4, 0x7b, 0x17, 0xae, 0x0c,
	},
	MasterName: token.Name(MasterName),
	BankName:   token.Name(BankName),
	ProofToken: token.ID{
		Policy: digest.Digest{
			0x65, 0xe8, 0xf4, 0x62, 0xc8, 0x6b, 0xb6, 0x07,
			0x61, 0xb4, 0x14, 0xa9, 0x20, 0xcd, 0x8f, 0x26,
			0xb1, 0x1c, 0x19, 0x72, 0x45, 0xd4, 0x81, 0x49,
			0xa1, 0x0b, 0x7b, 0x93, 0x6b, 0xf1, 0x31, 0x2b,
		},
		Name: token.Name(ProofName),
	},
	RewardToken: token.ID{
		Policy: digest.Digest{
			0xd5, 0x7a, 0x77, 0xde, 0xc8, 0x3f, 0x04, 0x76,
			0xb1, 0x50, 0x00, 0xdc, 0xe0, 0x9e, 0x3b, 0xc6,
			0x1b, 0xf3, 0x2e, 0xf2, 0xc2, 0x2a, 0x01, 0x44,
			0x6f, 0xc8, 0x37, 0x07, 0x7c, 0x6e, 0x7f, 0xcd,
		},
		Name: token.Name(RewardName),
	},
	Anchor: utxo.OutPoint{
		TxID: digest.Digest{
			0x0f, 0xdd, 0x73, 0x80, 0x6f, 0x92, 0x81, 0xd5,
			0x36, 0xa6, 0x90, 0xc1, 0x49, 0xa7, 0xa2, 0x29,
			0x2c, 0xf4, 0xae, 0x5b, 0x4c, 0x89, 0x06, 0x66,
			0xf9, 0x12, 0xbe, 0x6e, 0x47, 0x1a, 0x92, 0xc2,
		},
		Index: 1,
	},
}

// TestNetBook - the test chain bank was issued with two seed accounts
// so client developers have balances to play with
var TestNetBook = []byte{
	0x02, // entries
	// seed account one, balance 100
	0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
	0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
	0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
	0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
	0x64,
	// seed account two, balance 50
	0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22,
	0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22,
	0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22,
	0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22,
	0x32,
}

// LocalNet - the bank regenerated for every local regression network
var LocalNet = bank.Parameters{
	Policy: digest.Digest{
		0x29, 0xa7, 0xf9, 0xd9, 0xea, 0x77, 0x3f, 0x26,
		0xcc, 0xd1, 0xff, 0x5e, 0xb4, 0x2f, 0xe4, 0x9e,
		0x49, 0xa1, 0x4e, 0xc7, 0x17, 0x51, 0x49, 0xa6,
		0xb3, 0x07, 0xd4, 0x37, 0x9a, 0x22, 0xf0, 0xd1,
	},
	Address: ledger.OwnerKey{
		0x03, 0xf1, 0x47, 0xe2, 0x71, 0x72, 0x7b, 0xb0,
		0x3e, 0x06, 0x01, 0xff, 0xaa, 0x77, 0x61, 0x5f,
		0x6f, 0x7d, 0x47, 0xb9, 0x50, 0x5b, 0xcb, 0xbe,
		0x12, 0x9b, 0x43, 0x5d, 0x2a, 0xb5, 0xa8, 0x97,
	},
	MasterName: token.Name(MasterName),
	BankName:   token.Name(BankName),
	ProofToken: token.ID{
		Policy: digest.Digest{
			0x73, 0xaa, 0x1e, 0xd5, 0x78, 0x0d, 0xb7, 0x0f,
			0x49, 0xb7, 0x47, 0x94, 0x2b, 0xbb, 0xe5, 0xa8,
			0x05, 0x1f, 0xe2, 0xd7, 0x35, 0xf2, 0xe7, 0x68,
			0xf7, 0xb0, 0xb0, 0x50, 0xbe, 0xe5, 0x8b, 0x59,
		},
		Name: token.Name(ProofName),
	},
	RewardToken: token.ID{
		Policy: digest.Digest{
			0x5b, 0xa6, 0xa5, 0xcf, 0x34, 0x8e, 0x05, 0xcc,
			0x49, 0x8e, 0xc4, 0x2e, 0x27, 0x66, 0x3c, 0xe2,
			0x03, 0x5b, 0x15, 0x7e, 0xe9, 0xd6, 0xe1, 0xf0,
			0x4d, 0x02, 0x4e, 0xf6, 0xd3, 0x65, 0x10, 0x0b,
		},
		Name: token.Name(RewardName),
	},
	Anchor: utxo.OutPoint{
		TxID: digest.Digest{
			0x1b, 0x1a, 0x77, 0x0d, 0xd5, 0xa1, 0xdd, 0x1b,
			0xc2, 0x90, 0x63, 0x3f, 0xc3, 0x53, 0xbe, 0x98,
			0x74, 0xa8, 0xb5, 0xd5, 0x51, 0x50, 0xf5, 0xa2,
			0xa2, 0xf6, 0xfd, 0x8d, 0x16, 0x67, 0xa1, 0x1b,
		},
		Index: 0,
	},
}

// LocalNetBook - packed initial book of the local bank
var LocalNetBook = []byte{0x00}

// Deployment - the bank parameters for a chain
func Deployment(chainName string) (bank.Parameters, error) {
	switch chainName {
	case chain.Bank:
		return LiveNet, nil
	case chain.Testing:
		return TestNet, nil
	case chain.Local:
		return LocalNet, nil
	default:
		return bank.Parameters{}, fault.InvalidChain
	}
}

// InitialBook - the packed book the chain's bank was issued with
func InitialBook(chainName string) ([]byte, error) {
	switch chainName {
	case chain.Bank:
		return LiveNetBook, nil
	case chain.Testing:
		return TestNetBook, nil
	case chain.Local:
		return LocalNetBook, nil
	default:
		return nil, fault.InvalidChain
	}
}
