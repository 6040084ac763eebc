// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/titled/authorization"
	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/rpc"
)

// the command name is the operation name
var operationKinds = map[string]authorization.OperationKind{
	"nominate":             authorization.Nominate,
	"transfer-beneficiary": authorization.TransferBeneficiary,
	"transfer-holder":      authorization.TransferHolder,
	"transfer-owners":      authorization.TransferOwners,
	"surrender":            authorization.Surrender,
	"shred":                authorization.Shred,
}

// shared action for all six escrow operations; the signed digest
// binds the escrow reference so the command must name the exact token
func runEscrowOperation(c *cli.Context) error {

	m := metadataFromContext(c)

	operation := c.Command.Name
	kind, ok := operationKinds[operation]
	if !ok {
		return errors.New("unknown operation: " + operation)
	}

	s, err := m.requireSigner()
	if nil != err {
		return err
	}

	id, err := assetIdFromFlag(c)
	if nil != err {
		return err
	}
	tokenId := c.Uint64("token")
	nonce := c.Uint64("nonce")
	payload := []byte(c.String("payload"))

	var to, to2 principal.Principal
	switch kind {
	case authorization.Nominate, authorization.TransferBeneficiary, authorization.TransferHolder:
		if to, err = principalFromFlag(c, "to"); nil != err {
			return err
		}
	case authorization.TransferOwners:
		if to, err = principalFromFlag(c, "to"); nil != err {
			return err
		}
		if to2, err = principalFromFlag(c, "to2"); nil != err {
			return err
		}
	}

	request := &authorization.EscrowRequest{
		Ref:     escrow.DeriveRef(id, tokenId),
		Kind:    kind,
		Owner:   s.principal,
		To:      to,
		To2:     to2,
		Payload: payload,
		Nonce:   nonce,
	}

	signature, err := s.sign(request.SigningDigest())
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TitleOperation(operation, &rpc.TitleArguments{
		AssetId:   id,
		TokenId:   tokenId,
		Owner:     s.principal,
		To:        to,
		To2:       to2,
		Payload:   payload,
		Nonce:     nonce,
		Signature: signature,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
