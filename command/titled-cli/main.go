// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// titled-cli - command line interface to a titled daemon
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "titled-cli"
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
			Value: "",
			Usage: "*titled host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " hex encoded secp256k1 private key for signing `KEY`",
		},
	}

	assetFlag := cli.StringFlag{
		Name:  "asset, a",
		Value: "",
		Usage: "*asset id `HEX`",
	}
	tokenFlag := cli.Uint64Flag{
		Name:  "token, t",
		Usage: "*token number `N`",
	}
	nonceFlag := cli.Uint64Flag{
		Name:  "nonce, n",
		Usage: "*current nonce of the signing principal `N`",
	}
	payloadFlag := cli.StringFlag{
		Name:  "payload, d",
		Value: "",
		Usage: " extra data bound into the signature `STRING`",
	}
	toFlag := cli.StringFlag{
		Name:  "to",
		Value: "",
		Usage: "*destination principal `HEX`",
	}

	escrowFlags := []cli.Flag{
		assetFlag,
		tokenFlag,
		nonceFlag,
		payloadFlag,
		toFlag,
		cli.StringFlag{
			Name:  "to2",
			Value: "",
			Usage: " second destination principal, transfer-owners only `HEX`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display daemon status",
			Action: runInfo,
		},
		{
			Name:      "get",
			Usage:     "fetch an asset record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
			},
			Action: runGet,
		},
		{
			Name:      "add",
			Usage:     "add or update an asset record, proof gated",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*asset record JSON `FILE`",
				},
				cli.StringFlag{
					Name:  "proof, p",
					Value: "",
					Usage: "*snarkjs proof JSON `FILE`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "record-proof",
			Usage:     "verify and store a write once proof record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.StringFlag{
					Name:  "proof, p",
					Value: "",
					Usage: "*snarkjs proof JSON `FILE`",
				},
			},
			Action: runRecordProof,
		},
		{
			Name:      "issue",
			Usage:     "issue the title token for an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				nonceFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*initial owner principal `HEX`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*status after issuance `STRING`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a title token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag,
				nonceFlag,
				cli.StringFlag{
					Name:  "from",
					Value: "",
					Usage: "*current owner principal `HEX`",
				},
				toFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "nominate",
			Usage:     "nominate the next beneficiary of a title escrow",
			ArgsUsage: "\n   (* = required)",
			Flags:     escrowFlags,
			Action:    runEscrowOperation,
		},
		{
			Name:      "transfer-beneficiary",
			Usage:     "move beneficial ownership to the nominee",
			ArgsUsage: "\n   (* = required)",
			Flags:     escrowFlags,
			Action:    runEscrowOperation,
		},
		{
			Name:      "transfer-holder",
			Usage:     "move possession of the title",
			ArgsUsage: "\n   (* = required)",
			Flags:     escrowFlags,
			Action:    runEscrowOperation,
		},
		{
			Name:      "transfer-owners",
			Usage:     "move beneficiary and holder in one operation",
			ArgsUsage: "\n   (* = required)",
			Flags:     escrowFlags,
			Action:    runEscrowOperation,
		},
		{
			Name:      "surrender",
			Usage:     "hand the title back to the registry",
			ArgsUsage: "\n   (* = required)",
			Flags:     escrowFlags,
			Action:    runEscrowOperation,
		},
		{
			Name:      "shred",
			Usage:     "destroy a surrendered title",
			ArgsUsage: "\n   (* = required)",
			Flags:     escrowFlags,
			Action:    runEscrowOperation,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		if k := c.GlobalString("key"); "" != k {
			s, err := newSigner(k)
			if nil != err {
				return err
			}
			m.signer = s
		}
		app.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
