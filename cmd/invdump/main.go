// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) QUILL NETWORK. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver"
	"github.com/quill-network/quill-wire/pkg/config"
	"github.com/quill-network/quill-wire/pkg/util/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const version = "0.1.0"

var (
	app = cli.NewApp()
	log *logrus.Entry
)

func initLog() {
	log = logrus.WithFields(logrus.Fields{
		"app":    "invdump",
		"prefix": "main",
	})
}

func init() {
	initLog()

	app.Name = "invdump"
	app.Usage = "Decode and compose p2p inventory records"
	app.Version = semver.MustParse(version).String()
	app.Before = setup
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Aliases:   []string{"d"},
			Usage:     "decode hex-encoded inventory records and print them; pass - to read from stdin",
			ArgsUsage: "<hex>",
			Action:    decodeAction,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "list",
					Usage: "treat the input as a CompactSize-prefixed inv payload",
				},
			},
		},
		{
			Name:      "make",
			Aliases:   []string{"m"},
			Usage:     "build an inventory record from a display-order hash and print its wire hex",
			ArgsUsage: "<hash-hex>",
			Action:    makeAction,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Usage: "object type: tx, block, filtered-block or cmpct-block",
					Value: "tx",
				},
				cli.BoolFlag{
					Name:  "witness, w",
					Usage: "set the witness flag on the record type",
				},
			},
		},
	}
}

func setup(*cli.Context) error {
	if err := config.Load(); err != nil {
		return err
	}

	logging.InitLog(os.Stderr)
	return nil
}

func main() {
	defer handlePanic()

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handlePanic() {
	if r := recover(); r != nil {
		log.WithError(fmt.Errorf("%+v", r)).Errorln("Application panic")
	}
}
