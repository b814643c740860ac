// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/zmqutil"
)

const (
	publicHex  = "60f6b256762c7b03da7e23af4c76cbd0ae7ff0b426d9df932b9c31b2f2cfe7c5"
	privateHex = "341731b336ed433aa2a4375b0b9b1ad5d0a21bb1c1104af1b18fe1bb4cdd39bc"
)

func TestParseKeyPublic(t *testing.T) {
	data, private, err := zmqutil.ParseKey("PUBLIC:" + publicHex + "\n")
	assert.NoError(t, err, "ParseKey error")
	assert.False(t, private, "public key flagged private")

	expected, _ := hex.DecodeString(publicHex)
	assert.Equal(t, expected, data, "wrong key bytes")
}

func TestParseKeyPrivate(t *testing.T) {
	data, private, err := zmqutil.ParseKey("PRIVATE:" + privateHex)
	assert.NoError(t, err, "ParseKey error")
	assert.True(t, private, "private key flagged public")

	expected, _ := hex.DecodeString(privateHex)
	assert.Equal(t, expected, data, "wrong key bytes")
}

func TestParseKeyRejectsUntagged(t *testing.T) {
	_, _, err := zmqutil.ParseKey(publicHex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "wrong error")
}

func TestParseKeyRejectsShortKey(t *testing.T) {
	_, _, err := zmqutil.ParseKey("PRIVATE:" + privateHex[2:])
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "wrong error")
}

func TestReadPublicKeyRejectsPrivate(t *testing.T) {
	_, err := zmqutil.ReadPublicKey("PRIVATE:" + privateHex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "wrong error")
}

func TestReadPrivateKeyRejectsPublic(t *testing.T) {
	_, err := zmqutil.ReadPrivateKey("PUBLIC:" + publicHex)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "wrong error")
}
