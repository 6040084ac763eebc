// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/titled/rpc"
)

func runGet(c *cli.Context) error {

	m := metadataFromContext(c)

	id, err := assetIdFromFlag(c)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAsset(&rpc.AssetGetArguments{
		AssetId: id,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
