// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/configuration"
	"github.com/bitmark-inc/titled/record"
)

const (
	rpcCertificateFilename = "titled.crt"
	rpcPrivateKeyFilename  = "titled.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "asset", "a", "token", "t", "proof", "p":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - as above with additional IP addresses\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  asset ID                   (a)      - dump a stored asset record as JSON to stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  token NUMBER               (t)      - show the asset and owner of a token\n")
		fmt.Printf("\n")

		fmt.Printf("  proof ID                   (p)      - dump a stored proof record as JSON to stdout\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the record store is open so these commands can read the database
func processDataCommand(log *logger.L, arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "asset", "a":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing asset id argument")
		}
		id, err := assetIdFromHex(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in asset id: %s", err)
		}
		asset, err := record.GetAsset(id)
		if nil != err {
			exitwithstatus.Message("asset fetch error: %s", err)
		}
		printJSON(asset)

	case "token", "t":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing token number argument")
		}
		n, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in token number: %s", err)
		}
		id, owner, err := record.TokenOwner(n)
		if nil != err {
			exitwithstatus.Message("token fetch error: %s", err)
		}
		printJSON(struct {
			AssetId record.AssetId `json:"assetId"`
			Owner   string         `json:"owner"`
		}{
			AssetId: id,
			Owner:   owner.String(),
		})

	case "proof", "p":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing asset id argument")
		}
		id, err := assetIdFromHex(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in asset id: %s", err)
		}
		proofRecord, err := record.GetProof(id)
		if nil != err {
			exitwithstatus.Message("proof fetch error: %s", err)
		}
		printJSON(proofRecord)

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func assetIdFromHex(s string) (record.AssetId, error) {
	var id record.AssetId
	err := id.UnmarshalText([]byte(s))
	return id, err
}

func printJSON(item interface{}) {
	s, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON marshal error: %s", err)
	}
	fmt.Printf("%s\n", s)
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
