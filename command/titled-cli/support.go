// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/titled/command/titled-cli/rpccalls"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/record"
)

// metadata - shared state for all commands
type metadata struct {
	connect string
	signer  *signer // nil for read only invocations
	verbose bool
	e       io.Writer
	w       io.Writer
}

func metadataFromContext(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// open the RPC connection named by the global connect flag
func (m *metadata) client() (*rpccalls.Client, error) {
	if "" == m.connect {
		return nil, errors.New("missing: --connect HOST:PORT")
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// the signing key is only required by mutating commands
func (m *metadata) requireSigner() (*signer, error) {
	if nil == m.signer {
		return nil, errors.New("missing: --key HEX-PRIVATE-KEY")
	}
	return m.signer, nil
}

func assetIdFromFlag(c *cli.Context) (record.AssetId, error) {
	var id record.AssetId
	s := c.String("asset")
	if "" == s {
		return id, errors.New("missing: --asset ID")
	}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

func principalFromFlag(c *cli.Context, name string) (principal.Principal, error) {
	var p principal.Principal
	s := c.String(name)
	if "" == s {
		return p, errors.New("missing: --" + name + " PRINCIPAL")
	}
	return principal.FromHexString(s)
}
