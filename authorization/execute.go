// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorization

import (
	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/nonce"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/record"
	"github.com/bitmark-inc/titled/snark"
)

// roles checked through the injected RoleChecker
const (
	// RoleMinter - required to issue tokens; unconfigured gating
	// leaves issuance open
	RoleMinter = "minter"

	// RoleAttorney - required to transfer a token the operator does
	// not own; never implicit
	RoleAttorney = "attorney"
)

// Target - opaque registry dispatch
//
// the engine forwards the payload without interpreting it
type Target interface {
	Call(payload []byte) ([]byte, error)
}

// Registry - the token registry operations the engine can forward
type Registry interface {
	IssueToken(id record.AssetId, owner principal.Principal, status string) (uint64, error)
	TransferToken(from principal.Principal, to principal.Principal, tokenId uint64, amount uint64, data []byte, operator principal.Principal) error
	GetAsset(id record.AssetId) (*record.AssetRecord, error)
}

// Execute - proof gated opaque call
//
// the proof is fully verified before the target sees the payload; a
// failing delegate call surfaces with its own reason and leaves no
// partial effects in this layer
func (engine *Engine) Execute(target Target, payload []byte, proof snark.Proof, signals snark.PublicSignals) ([]byte, error) {
	engine.Lock()
	defer engine.Unlock()

	if nil == target {
		return nil, fault.MissingTarget
	}
	if 0 == len(payload) {
		return nil, fault.EmptyPayload
	}

	if err := engine.validator.Verify(proof, signals); nil != err {
		engine.log.Warnf("execute: proof rejected: %s", err)
		return nil, err
	}

	result, err := target.Call(payload)
	if nil != err {
		engine.log.Warnf("execute: delegate failed: %s", err)
		return nil, fault.ProcessError("delegate call failed: " + err.Error())
	}
	return result, nil
}

// ExecuteTransferToken - signature gated token transfer
//
// the operator signs the canonical hash of
// (from, to, id, amount, data, operator, nonce) and must either be
// the sender or hold the attorney role; nonce consumption precedes
// the signature check, matching Authorize
func (engine *Engine) ExecuteTransferToken(registry Registry, from principal.Principal, to principal.Principal, tokenId uint64, amount uint64, data []byte, operator principal.Principal, operatorNonce uint64, signature principal.Signature) error {
	engine.Lock()
	defer engine.Unlock()

	if nil == registry {
		return fault.MissingTarget
	}
	if from.IsZero() || to.IsZero() || operator.IsZero() {
		return fault.OperationToZeroPrincipal
	}
	if principal.SignatureLength != len(signature) {
		return fault.InvalidSignatureLength
	}

	// the sender approves their own transfer; any other operator
	// needs the attorney role, and absent role gating nobody has it
	if operator != from {
		if nil == engine.hasRole || !engine.hasRole(operator, RoleAttorney) {
			engine.log.Warnf("transfer token %d: %s cannot act for %s", tokenId, operator, from)
			return fault.PrincipalLacksRole
		}
	}

	digest := TransferTokenDigest(from, to, tokenId, amount, data, operator, operatorNonce)

	if !nonce.CheckAndAdvance(operator, operatorNonce) {
		return fault.InvalidNonce
	}
	if !principal.VerifyApprover(operator, digest, signature) {
		return fault.InvalidSignature
	}

	return registry.TransferToken(from, to, tokenId, amount, data, operator)
}

// ExecuteIssueToken - signature gated token issuance
//
// same machinery as ExecuteTransferToken over
// (id, owner, status, data, operator, nonce); the operator must also
// hold the minter role when role gating is configured
func (engine *Engine) ExecuteIssueToken(registry Registry, id record.AssetId, owner principal.Principal, status string, data []byte, operator principal.Principal, operatorNonce uint64, signature principal.Signature) (uint64, error) {
	engine.Lock()
	defer engine.Unlock()

	if nil == registry {
		return 0, fault.MissingTarget
	}
	if owner.IsZero() || operator.IsZero() {
		return 0, fault.OperationToZeroPrincipal
	}
	if principal.SignatureLength != len(signature) {
		return 0, fault.InvalidSignatureLength
	}
	if nil != engine.hasRole && !engine.hasRole(operator, RoleMinter) {
		return 0, fault.PrincipalLacksRole
	}

	digest := IssueTokenDigest(id, owner, status, data, operator, operatorNonce)

	if !nonce.CheckAndAdvance(operator, operatorNonce) {
		return 0, fault.InvalidNonce
	}
	if !principal.VerifyApprover(operator, digest, signature) {
		return 0, fault.InvalidSignature
	}

	return registry.IssueToken(id, owner, status)
}

// TransferTokenDigest - the canonical hash an operator signs to
// approve a token transfer
func TransferTokenDigest(from principal.Principal, to principal.Principal, tokenId uint64, amount uint64, data []byte, operator principal.Principal, operatorNonce uint64) canonical.Digest {
	return canonical.NewHasher().
		Address(from).
		Address(to).
		Uint64(tokenId).
		Uint64(amount).
		Bytes(data).
		Address(operator).
		Uint64(operatorNonce).
		Digest()
}

// IssueTokenDigest - the canonical hash an operator signs to approve
// a token issuance
func IssueTokenDigest(id record.AssetId, owner principal.Principal, status string, data []byte, operator principal.Principal, operatorNonce uint64) canonical.Digest {
	return canonical.NewHasher().
		Bytes(id[:]).
		Address(owner).
		Bytes([]byte(status)).
		Bytes(data).
		Address(operator).
		Uint64(operatorNonce).
		Digest()
}
