// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorization - signature and proof gated dispatch
//
// every escrow operation arrives as a meta transaction: the request
// carries the approving owner's signature over the canonical hash of
// the operation parameters plus that owner's current nonce; registry
// mutations instead carry a zero knowledge proof
package authorization

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/nonce"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/snark"
)

// OperationKind - tag selecting one escrow operation
type OperationKind uint64

// the signature gated escrow operations
const (
	Nominate OperationKind = iota
	TransferBeneficiary
	TransferHolder
	TransferOwners
	Surrender
	Shred
)

// String - printable operation name
func (kind OperationKind) String() string {
	switch kind {
	case Nominate:
		return "nominate"
	case TransferBeneficiary:
		return "transfer-beneficiary"
	case TransferHolder:
		return "transfer-holder"
	case TransferOwners:
		return "transfer-owners"
	case Surrender:
		return "surrender"
	case Shred:
		return "shred"
	default:
		return "unknown"
	}
}

// targets returns how many destination principals the operation names
func (kind OperationKind) targets() int {
	switch kind {
	case Nominate, TransferBeneficiary, TransferHolder:
		return 1
	case TransferOwners:
		return 2
	default:
		return 0
	}
}

// EscrowRequest - one meta transaction against a title escrow
//
// Ref is the escrow reference bound into the signed hash so a
// signature for one escrow can never authorise another
type EscrowRequest struct {
	Escrow    escrow.Escrow
	Ref       principal.Principal
	Kind      OperationKind
	Owner     principal.Principal
	To        principal.Principal
	To2       principal.Principal
	Payload   []byte
	Nonce     uint64
	Signature principal.Signature
}

// RoleChecker - injected capability check, nil disables role gating
type RoleChecker func(p principal.Principal, role string) bool

// Engine - the authorization gate in front of escrow and registry
type Engine struct {
	sync.Mutex
	log       *logger.L
	validator *snark.Validator
	hasRole   RoleChecker
}

// NewEngine - create an engine around a proof validator
func NewEngine(validator *snark.Validator, hasRole RoleChecker) *Engine {
	return &Engine{
		log:       logger.New("authorization"),
		validator: validator,
		hasRole:   hasRole,
	}
}

// Authorize - validate and forward one escrow operation
//
// all six operations share this sequence, differing only in the
// hashed field set and the forwarded call
//
// note that the owner's nonce is consumed before the signature is
// checked, so a failed signature still burns the nonce; a replayed
// request is therefore rejected by the nonce comparison alone
func (engine *Engine) Authorize(request *EscrowRequest) error {
	engine.Lock()
	defer engine.Unlock()

	if nil == request.Escrow {
		return fault.MissingTarget
	}
	if request.Owner.IsZero() || request.Ref.IsZero() {
		return fault.InvalidPrincipal
	}

	targets := request.Kind.targets()
	if targets >= 1 && request.To.IsZero() {
		return fault.OperationToZeroPrincipal
	}
	if targets >= 2 && request.To2.IsZero() {
		return fault.OperationToZeroPrincipal
	}

	// the escrow state, not the request, decides whose signature is
	// required; a caller naming any other principal is refused before
	// the ledger is touched
	if request.Owner != request.approver() {
		engine.log.Warnf("%s: %s is not the authority of escrow %s", request.Kind, request.Owner, request.Ref)
		return fault.NotEscrowAuthority
	}

	if principal.SignatureLength != len(request.Signature) {
		return fault.InvalidSignatureLength
	}

	digest := request.SigningDigest()

	if !nonce.CheckAndAdvance(request.Owner, request.Nonce) {
		engine.log.Warnf("%s: nonce mismatch for %s", request.Kind, request.Owner)
		return fault.InvalidNonce
	}

	if !principal.VerifyApprover(request.Owner, digest, request.Signature) {
		engine.log.Warnf("%s: signature mismatch for %s", request.Kind, request.Owner)
		return fault.InvalidSignature
	}

	err := request.forward()
	if nil != err {
		engine.log.Warnf("%s: escrow rejected: %s", request.Kind, err)
		return err
	}
	engine.log.Infof("%s: authorised for %s", request.Kind, request.Owner)
	return nil
}

// SigningDigest - the canonical hash of the operation parameters
//
// the approver signs this digest; field order is part of the
// authorization contract: reference, kind, destinations, payload,
// nonce
func (request *EscrowRequest) SigningDigest() canonical.Digest {
	hasher := canonical.NewHasher().
		Address(request.Ref).
		Uint64(uint64(request.Kind))

	targets := request.Kind.targets()
	if targets >= 1 {
		hasher.Address(request.To)
	}
	if targets >= 2 {
		hasher.Address(request.To2)
	}

	return hasher.
		Bytes(request.Payload).
		Uint64(request.Nonce).
		Digest()
}

// approver - the principal whose signature authorises the operation
//
// nominate and transfer-beneficiary belong to the beneficiary,
// transfer-holder, surrender and shred to the holder; transfer-owners
// requires a sole owner holding both positions, otherwise no single
// signature can authorise it
func (request *EscrowRequest) approver() principal.Principal {
	switch request.Kind {
	case Nominate, TransferBeneficiary:
		return request.Escrow.Beneficiary()
	case TransferHolder, Surrender, Shred:
		return request.Escrow.Holder()
	case TransferOwners:
		beneficiary := request.Escrow.Beneficiary()
		if beneficiary != request.Escrow.Holder() {
			return principal.Principal{}
		}
		return beneficiary
	default:
		return principal.Principal{}
	}
}

// invoke the escrow operation selected by the kind tag
func (request *EscrowRequest) forward() error {
	switch request.Kind {
	case Nominate:
		return request.Escrow.Nominate(request.To)
	case TransferBeneficiary:
		return request.Escrow.TransferBeneficiary(request.To)
	case TransferHolder:
		return request.Escrow.TransferHolder(request.To)
	case TransferOwners:
		return request.Escrow.TransferOwners(request.To, request.To2)
	case Surrender:
		return request.Escrow.Surrender()
	case Shred:
		return request.Escrow.Shred()
	default:
		return fault.InvalidError("unknown operation kind")
	}
}
