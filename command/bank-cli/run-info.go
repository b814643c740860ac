// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/urfave/cli"
)

// infoIdentity - non-secret fields of one identity
type infoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	ReceiveOnly bool   `json:"receiveOnly"`
}

// infoResult - non-secret configuration summary
type infoResult struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connections     []string       `json:"connections"`
	Identities      []infoIdentity `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result := infoResult{
		DefaultIdentity: m.config.DefaultIdentity,
		TestNet:         m.config.TestNet,
		Connections:     m.config.Connections,
		Identities:      make([]infoIdentity, 0, len(m.config.Identities)),
	}

	for name, id := range m.config.Identities {
		result.Identities = append(result.Identities, infoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			ReceiveOnly: "" == id.Data,
		})
	}
	sort.Slice(result.Identities, func(i, j int) bool {
		return result.Identities[i].Name < result.Identities[j].Name
	})

	printJson(m.w, result)
	return nil
}
