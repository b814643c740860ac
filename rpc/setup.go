// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/bankd/announce"
	"github.com/bitmark-inc/bankd/counter"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/rpc/certificate"
	"github.com/bitmark-inc/bankd/rpc/handler"
	"github.com/bitmark-inc/bankd/rpc/listeners"
	"github.com/bitmark-inc/bankd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName   = "client_rpc"
	httpsName = "http_rpc"
)

// connection count limit encompasses both listener sets
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	ann announce.Announce,
	readOnly bool,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	start := time.Now().UTC()

	tlsConfig, certificateFingerprint, err := certificate.Get(
		log,
		tlsName,
		rpcConfiguration.Certificate,
		rpcConfiguration.PrivateKey,
	)
	if nil != err {
		return err
	}

	srv := server.Create(log, version, &connectionCountRPC, readOnly)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		srv,
		ann,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	if 0 != len(httpsConfiguration.Listen) {

		httpsTLSConfig, _, err := certificate.Get(
			log,
			httpsName,
			httpsConfiguration.Certificate,
			httpsConfiguration.PrivateKey,
		)
		if nil != err {
			return err
		}

		hdlr := handler.New(log, srv, start, version, httpsConfiguration.MaximumConnections)

		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLSConfig, hdlr)
		if nil != err {
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
