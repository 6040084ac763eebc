// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// titled - electronic title document registry daemon
//
// stores trade asset records and their zero knowledge proof records,
// issues indivisible title tokens and runs the signature gated title
// escrow operations over TLS JSON-RPC
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/authorization"
	"github.com/bitmark-inc/titled/configuration"
	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/registry"
	"github.com/bitmark-inc/titled/rpc"
	"github.com/bitmark-inc/titled/snark"
	"github.com/bitmark-inc/titled/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	// the Groth16 verifying key fixes which circuit is accepted
	log.Info("initialise proof validator")
	verifyingKey, err := loadVerifyingKey(theConfiguration.VerifyingKeyFile)
	if nil != err {
		log.Criticalf("verifying key: %q error: %s", theConfiguration.VerifyingKeyFile, err)
		exitwithstatus.Message("verifying key: %q error: %s", theConfiguration.VerifyingKeyFile, err)
	}
	validator := snark.NewValidator(snark.NewGroth16Verifier(verifyingKey))

	// role assignments from the configuration
	hasRole, err := makeRoleChecker(theConfiguration.Minters, theConfiguration.Attorneys)
	if nil != err {
		log.Criticalf("minters configuration error: %s", err)
		exitwithstatus.Message("minters configuration error: %s", err)
	}

	escrows := escrow.NewManager()
	engine := authorization.NewEngine(validator, hasRole)
	titleRegistry := registry.New(escrows)
	dispatcher := registry.NewDispatcher()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, rpc.Services{
		Engine:     engine,
		Registry:   titleRegistry,
		Dispatcher: dispatcher,
		Escrows:    escrows,
		Validator:  validator,
	})
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go stats(escrows)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// read a hex encoded Groth16 verifying key
func loadVerifyingKey(fileName string) (*snark.VerifyingKey, error) {
	text, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	data, err := hex.DecodeString(strings.TrimSpace(string(text)))
	if nil != err {
		return nil, err
	}
	return snark.ParseVerifyingKey(data)
}

// build the role checker from the configured principal lists
//
// an empty minters list leaves issuance open; attorney authority over
// other principals' tokens is only ever granted explicitly
func makeRoleChecker(minters []string, attorneys []string) (authorization.RoleChecker, error) {
	if 0 == len(minters) && 0 == len(attorneys) {
		return nil, nil
	}

	minterSet, err := principalSet(minters)
	if nil != err {
		return nil, err
	}
	attorneySet, err := principalSet(attorneys)
	if nil != err {
		return nil, err
	}

	return func(p principal.Principal, role string) bool {
		switch role {
		case authorization.RoleMinter:
			if 0 == len(minterSet) {
				return true
			}
			_, ok := minterSet[p]
			return ok
		case authorization.RoleAttorney:
			_, ok := attorneySet[p]
			return ok
		default:
			return false
		}
	}, nil
}

func principalSet(items []string) (map[principal.Principal]struct{}, error) {
	set := make(map[principal.Principal]struct{}, len(items))
	for _, s := range items {
		p, err := principal.FromHexString(s)
		if nil != err {
			return nil, err
		}
		set[p] = struct{}{}
	}
	return set, nil
}
