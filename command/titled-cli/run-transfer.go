// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/titled/authorization"
	"github.com/bitmark-inc/titled/rpc"
)

func runTransfer(c *cli.Context) error {

	m := metadataFromContext(c)

	s, err := m.requireSigner()
	if nil != err {
		return err
	}

	from, err := principalFromFlag(c, "from")
	if nil != err {
		return err
	}
	to, err := principalFromFlag(c, "to")
	if nil != err {
		return err
	}
	tokenId := c.Uint64("token")
	nonce := c.Uint64("nonce")

	// title tokens are indivisible
	const amount = 1

	digest := authorization.TransferTokenDigest(from, to, tokenId, amount, nil, s.principal, nonce)
	signature, err := s.sign(digest)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferToken(&rpc.TransferArguments{
		From:      from,
		To:        to,
		TokenId:   tokenId,
		Amount:    amount,
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
