// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peering

import (
	proto "github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/bankd/fault"
)

// PackP2PMessage - pack chain, command and parameters into the multicast envelope
func PackP2PMessage(chain, fn string, parameters [][]byte) ([]byte, error) {
	data := [][]byte{[]byte(chain), []byte(fn)}
	if len(parameters) != 0 {
		data = append(data, parameters...)
	}
	return proto.Marshal(&P2PMessage{Data: data})
}

// UnPackP2PMessage - unpack the multicast envelope to chain, command and parameters
func UnPackP2PMessage(packed []byte) (chain string, fn string, parameters [][]byte, err error) {
	unpacked := P2PMessage{}
	err = proto.Unmarshal(packed, &unpacked)
	if nil != err {
		return "", "", nil, err
	}
	if len(unpacked.Data) < 2 {
		return "", "", nil, fault.DataFieldEmpty
	}
	chain = string(unpacked.Data[0])
	fn = string(unpacked.Data[1])
	parameters = [][]byte{}
	if len(unpacked.Data) > 2 {
		parameters = unpacked.Data[2:]
	}
	return chain, fn, parameters, nil
}
