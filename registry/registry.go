// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - token registry backed by the record store
//
// issuance opens a title escrow for the new token with the owner as
// both beneficiary and holder; later escrow operations go through the
// authorization engine, not this package
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/record"
)

// Registry - the live token registry
type Registry struct {
	log     *logger.L
	escrows *escrow.Manager
}

// New - create a registry around an escrow manager
func New(escrows *escrow.Manager) *Registry {
	return &Registry{
		log:     logger.New("registry"),
		escrows: escrows,
	}
}

// IssueToken - allocate a token for an asset and open its escrow
//
// issuance and escrow creation succeed or fail together
func (registry *Registry) IssueToken(id record.AssetId, owner principal.Principal, status string) (uint64, error) {
	return record.IssueToken(id, owner, status, registry.onIssue)
}

// runs inside the issuance transaction, before the records commit
func (registry *Registry) onIssue(id record.AssetId, owner principal.Principal, tokenId uint64) error {
	ref := escrow.DeriveRef(id, tokenId)
	_, err := registry.escrows.Create(ref, owner, owner)
	if nil != err {
		registry.log.Errorf("issue %s: escrow create failed: %s", id, err)
		return err
	}
	registry.log.Infof("issue %s: token %d escrow %s", id, tokenId, ref)
	return nil
}

// TransferToken - move a title token between principals
//
// title tokens are indivisible so the amount must be exactly one
func (registry *Registry) TransferToken(from principal.Principal, to principal.Principal, tokenId uint64, amount uint64, data []byte, operator principal.Principal) error {
	if 1 != amount {
		return fault.InvalidError("title tokens are indivisible")
	}
	err := record.TransferTokenOwner(from, to, tokenId)
	if nil != err {
		return err
	}
	registry.log.Infof("transfer token %d: %s → %s by %s", tokenId, from, to, operator)
	return nil
}

// GetAsset - fetch a stored asset record
func (registry *Registry) GetAsset(id record.AssetId) (*record.AssetRecord, error) {
	return record.GetAsset(id)
}

// Escrow - look up the escrow opened for an issued token
func (registry *Registry) Escrow(id record.AssetId, tokenId uint64) (*escrow.TitleEscrow, error) {
	return registry.escrows.Get(escrow.DeriveRef(id, tokenId))
}
