// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bankd/chain"
	"github.com/bitmark-inc/bankd/command/bank-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	connectionOffset int
	save             bool
	testnet          bool
	verbose          bool
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "bank-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to bank `NETWORK` [bank|testing|local]",
		},
		cli.IntFlag{
			Name:  "connection, c",
			Value: 0,
			Usage: " connection offset `N` into the connections list",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise bank-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*bankd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing base58 encoded `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: " generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing base58 encoded `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: " generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive-only base58 encoded `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "generate",
			Usage:     "generate a key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:   "seed",
			Usage:  "decrypt and display an identity's seed",
			Action: runSeed,
		},
		{
			Name:   "password",
			Usage:  "change an identity's password",
			Action: runChangePassword,
		},
		{
			Name:   "info",
			Usage:  "display bank-cli configuration",
			Action: runInfo,
		},
		{
			Name:   "bankdInfo",
			Usage:  "display bankd status",
			Action: runBankdInfo,
		},
		{
			Name:      "balance",
			Usage:     "display an owner's balance in the current book",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or hex owner key `OWNER` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "owners",
			Usage:     "list a page of the balance book",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "after, a",
					Value: "",
					Usage: " start after hex owner key `OWNER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwners,
		},
		{
			Name:      "history",
			Usage:     "list balance changes of one owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or hex owner key `OWNER` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runHistory,
		},
		{
			Name:      "snapshot",
			Usage:     "export the canonical packed book",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " write the packed book to `FILE` instead of stdout",
				},
			},
			Action: runSnapshot,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transition",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to check status `TXID`",
				},
			},
			Action: runTransitionStatus,
		},
		{
			Name:      "submit",
			Usage:     "submit a packed transition context",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "packed, x",
					Value: "",
					Usage: "*hex packed transition `HEX`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "mine",
			Usage:     "build and submit a mine transition from a context file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transition context `FILE`",
				},
				cli.BoolFlag{
					Name:  "dry-run, d",
					Usage: " validate only, do not apply",
				},
			},
			Action: runMine,
		},
		{
			Name:      "redeem",
			Usage:     "build and submit a redeem transition from a context file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transition context `FILE`",
				},
				cli.BoolFlag{
					Name:  "dry-run, d",
					Usage: " validate only, do not apply",
				},
			},
			Action: runRedeem,
		},
		{
			Name:  "version",
			Usage: "display bank-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "bank", "live":
			network = chain.Bank
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be bank/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != chain.Bank,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configData, err := configuration.Load(file)
			if nil != err {
				return err
			}

			offset := c.GlobalInt("connection")
			if offset < 0 || offset >= len(configData.Connections) {
				offset = 0
			}

			c.App.Metadata["config"] = &metadata{
				file:             file,
				config:           configData,
				connectionOffset: offset,
				testnet:          configData.TestNet,
				save:             false,
				verbose:          verbose,
				e:                e,
				w:                w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
