// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/titled/record"
	"github.com/bitmark-inc/titled/rpc"
)

// add or update an asset record; the daemon only accepts the packed
// record together with a valid proof
func runAdd(c *cli.Context) error {

	m := metadataFromContext(c)

	assetFile := c.String("file")
	if "" == assetFile {
		return errors.New("missing: --file ASSET-JSON")
	}
	proofFile := c.String("proof")
	if "" == proofFile {
		return errors.New("missing: --proof PROOF-JSON")
	}

	data, err := os.ReadFile(assetFile)
	if nil != err {
		return err
	}
	asset := record.AssetRecord{}
	if err := json.Unmarshal(data, &asset); nil != err {
		return err
	}

	payload, err := asset.Pack()
	if nil != err {
		return err
	}

	proof, signals, err := readProofFile(proofFile)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Execute(&rpc.ExecuteArguments{
		Payload: payload,
		Proof:   proof,
		Signals: signals,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
