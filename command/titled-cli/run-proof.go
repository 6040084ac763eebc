// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/titled/rpc"
)

func runRecordProof(c *cli.Context) error {

	m := metadataFromContext(c)

	id, err := assetIdFromFlag(c)
	if nil != err {
		return err
	}

	proofFile := c.String("proof")
	if "" == proofFile {
		return errors.New("missing: --proof PROOF-JSON")
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

	response, err := client.RecordProof(&rpc.ProofArguments{
		AssetId: id,
		Proof:   proof,
		Signals: signals,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
