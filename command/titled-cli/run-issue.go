// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/titled/authorization"
	"github.com/bitmark-inc/titled/rpc"
)

func runIssue(c *cli.Context) error {

	m := metadataFromContext(c)

	s, err := m.requireSigner()
	if nil != err {
		return err
	}

	id, err := assetIdFromFlag(c)
	if nil != err {
		return err
	}
	owner, err := principalFromFlag(c, "owner")
	if nil != err {
		return err
	}
	status := c.String("status")
	if "" == status {
		return errors.New("missing: --status STRING")
	}
	nonce := c.Uint64("nonce")

	digest := authorization.IssueTokenDigest(id, owner, status, nil, s.principal, nonce)
	signature, err := s.sign(digest)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IssueToken(&rpc.IssueArguments{
		AssetId:   id,
		Owner:     owner,
		Status:    status,
		Operator:  s.principal,
		Nonce:     nonce,
		Signature: signature,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
