// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"

	certificateFileName = "test.crt"
	keyFileName         = "test.key"
)

var certOnce sync.Once

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Certificate - PEM certificate for TLS tests, created on first use
func Certificate(fixtureDir string) string {
	ensureCertFiles(fixtureDir)
	data, _ := ioutil.ReadFile(path.Join(fixtureDir, certificateFileName))
	return string(data)
}

// Key - PEM private key matching Certificate
func Key(fixtureDir string) string {
	ensureCertFiles(fixtureDir)
	data, _ := ioutil.ReadFile(path.Join(fixtureDir, keyFileName))
	return string(data)
}

func ensureCertFiles(fixtureDir string) {
	certOnce.Do(func() {
		certificateFile := path.Join(fixtureDir, certificateFileName)
		keyFile := path.Join(fixtureDir, keyFileName)

		if _, err := os.Stat(certificateFile); nil == err {
			if _, err := os.Stat(keyFile); nil == err {
				return
			}
		}

		org := "bankd self signed cert for: testing"
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair(org, validUntil, true, nil)
		if nil != err {
			fmt.Println("generate test certificate with error: ", err)
			return
		}

		_ = ioutil.WriteFile(certificateFile, cert, 0666)
		_ = ioutil.WriteFile(keyFile, key, 0600)
	})
}
