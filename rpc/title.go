// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/authorization"
	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/record"
)

const (
	rateLimitTitle = 200
	rateBurstTitle = 100
)

// Title - type for the RPC
type Title struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  *authorization.Engine
	Escrows *escrow.Manager
}

// NewTitle - create the title escrow RPC service
func NewTitle(log *logger.L, engine *authorization.Engine, escrows *escrow.Manager) *Title {
	return &Title{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTitle, rateBurstTitle),
		Engine:  engine,
		Escrows: escrows,
	}
}

// TitleArguments - one signed escrow operation
//
// Owner must hold the escrow position the operation acts on: the
// beneficiary for nominate and transfer-beneficiary, the holder for
// the rest; To and To2 are required only by operations that name
// destinations
type TitleArguments struct {
	AssetId   record.AssetId      `json:"assetId"`
	TokenId   uint64              `json:"tokenId,string"`
	Owner     principal.Principal `json:"owner"`
	To        principal.Principal `json:"to"`
	To2       principal.Principal `json:"to2"`
	Payload   []byte              `json:"payload"`
	Nonce     uint64              `json:"nonce,string"`
	Signature principal.Signature `json:"signature"`
}

// TitleReply - escrow state after the operation
type TitleReply struct {
	Ref         principal.Principal `json:"ref"`
	Status      string              `json:"status"`
	Beneficiary principal.Principal `json:"beneficiary"`
	Holder      principal.Principal `json:"holder"`
	Nominee     principal.Principal `json:"nominee"`
}

// Nominate - propose the next beneficiary
func (title *Title) Nominate(arguments *TitleArguments, reply *TitleReply) error {
	return title.authorize(authorization.Nominate, arguments, reply)
}

// TransferBeneficiary - move beneficial ownership to the nominee
func (title *Title) TransferBeneficiary(arguments *TitleArguments, reply *TitleReply) error {
	return title.authorize(authorization.TransferBeneficiary, arguments, reply)
}

// TransferHolder - move possession of the title
func (title *Title) TransferHolder(arguments *TitleArguments, reply *TitleReply) error {
	return title.authorize(authorization.TransferHolder, arguments, reply)
}

// TransferOwners - move beneficiary and holder in one operation
func (title *Title) TransferOwners(arguments *TitleArguments, reply *TitleReply) error {
	return title.authorize(authorization.TransferOwners, arguments, reply)
}

// Surrender - hand the title back to the registry
func (title *Title) Surrender(arguments *TitleArguments, reply *TitleReply) error {
	return title.authorize(authorization.Surrender, arguments, reply)
}

// Shred - destroy a surrendered title
func (title *Title) Shred(arguments *TitleArguments, reply *TitleReply) error {
	return title.authorize(authorization.Shred, arguments, reply)
}

// all six operations differ only in the kind tag
func (title *Title) authorize(kind authorization.OperationKind, arguments *TitleArguments, reply *TitleReply) error {
	if err := rateLimit(title.Limiter); nil != err {
		return err
	}

	log := title.Log
	log.Infof("Title.%s: %+v", kind, arguments)

	ref := escrow.DeriveRef(arguments.AssetId, arguments.TokenId)
	titleEscrow, err := title.Escrows.Get(ref)
	if nil != err {
		return err
	}

	request := &authorization.EscrowRequest{
		Escrow:    titleEscrow,
		Ref:       ref,
		Kind:      kind,
		Owner:     arguments.Owner,
		To:        arguments.To,
		To2:       arguments.To2,
		Payload:   arguments.Payload,
		Nonce:     arguments.Nonce,
		Signature: arguments.Signature,
	}

	err = title.Engine.Authorize(request)
	if nil != err {
		return err
	}

	reply.Ref = ref
	reply.Status = titleEscrow.Status().String()
	reply.Beneficiary = titleEscrow.Beneficiary()
	reply.Holder = titleEscrow.Holder()
	reply.Nominee = titleEscrow.Nominee()

	return nil
}
