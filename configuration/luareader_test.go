// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/bankd/configuration"
)

type testDatabase struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Network       string            `gluamapper:"network"`
	Database      testDatabase      `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
}

const luaContent = `
local M = {}

-- arg[0] is the path of this file
M.data_directory = arg[0]

M.network = "local"

M.database = {
    directory = "data",
    name = "bank"
}

M.levels = {
    DEFAULT = "error",
    reservoir = "info"
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.lua")
	err = ioutil.WriteFile(fileName, []byte(luaContent), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	if fileName != config.DataDirectory {
		t.Fatalf("arg[0]: actual: %q  expected: %q", config.DataDirectory, fileName)
	}
	if "local" != config.Network {
		t.Fatalf("network: actual: %q  expected: %q", config.Network, "local")
	}
	if "data" != config.Database.Directory || "bank" != config.Database.Name {
		t.Fatalf("database: actual: %v", config.Database)
	}
	if "info" != config.Levels["reservoir"] {
		t.Fatalf("levels: actual: %v", config.Levels)
	}
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("/nonexistent/no.lua", config)
	if nil == err {
		t.Fatal("missing file did not error")
	}
}
