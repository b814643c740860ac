// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receptor

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/bankd/avl"
)

func newPeerItem(peer *Data) *ReceptorPB {
	if nil == peer {
		return nil
	}
	var pbAddrs [][]byte
	for _, listener := range peer.Listeners {
		pbAddrs = append(pbAddrs, listener.Bytes())
	}
	peerIDBinary, _ := peer.ID.Marshal()
	return &ReceptorPB{
		ID:        peerIDBinary,
		Listeners: &Addrs{Address: pbAddrs},
		Timestamp: uint64(peer.Timestamp.Unix()),
	}
}

// Backup - backup all peers into the peer file
func Backup(peerFile string, tree *avl.Tree) error {
	if tree.Count() <= 2 {
		return nil
	}

	peers := List{
		Receptors: make([]*ReceptorPB, 0),
	}

	for node := tree.First(); nil != node; node = node.Next() {
		peer, ok := node.Value().(*Data)
		if ok && len(peer.Listeners) > 0 {
			peers.Receptors = append(peers.Receptors, newPeerItem(peer))
		}
	}

	out, err := proto.Marshal(&peers)
	if nil != err {
		return fmt.Errorf("failed to marshal peer list: %s", err)
	}

	return ioutil.WriteFile(peerFile, out, 0600)
}

// Restore - restore peers from the peer file
// a missing file is not an error, the directory simply starts empty
func Restore(peerFile string) (List, error) {
	var peers List
	data, err := ioutil.ReadFile(peerFile)
	if nil != err {
		if os.IsNotExist(err) {
			return List{}, nil
		}
		return List{}, err
	}
	err = proto.Unmarshal(data, &peers)
	if nil != err {
		return List{}, err
	}
	return peers, nil
}
