// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "coinmint-cli"
	app.Usage = "connect to a coinmintd to query and modify the ledger"
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
			Name:  "connect, c",
			Value: "127.0.0.1:2230",
			Usage: " coinmintd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "list",
			Usage: "list transfers, newest first",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " offset into the newest first view `N`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " number of records `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "register",
			Usage:     "register a new party",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, d",
					Value: "",
					Usage: "*party name `STRING`",
				},
				cli.StringFlag{
					Name:  "email, e",
					Value: "",
					Usage: "*party email `STRING`",
				},
				cli.StringFlag{
					Name:  "phone",
					Value: "",
					Usage: " party phone `STRING`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " party postal address `STRING`",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: "*party password `PASSWORD`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "login",
			Usage:     "verify a party credential",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "email, e",
					Value: "",
					Usage: "*party email `STRING`",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: "*party password `PASSWORD`",
				},
			},
			Action: runLogin,
		},
		{
			Name:   "info",
			Usage:  "display node status",
			Action: runInfo,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
