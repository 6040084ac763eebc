// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/authorization"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/record"
	reg "github.com/bitmark-inc/titled/registry"
	"github.com/bitmark-inc/titled/snark"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - type for the RPC
type Registry struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Engine     *authorization.Engine
	Registry   *reg.Registry
	Dispatcher *reg.Dispatcher
	Validator  *snark.Validator
}

// NewRegistry - create the registry RPC service
func NewRegistry(log *logger.L, engine *authorization.Engine, registry *reg.Registry, dispatcher *reg.Dispatcher, validator *snark.Validator) *Registry {
	return &Registry{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Engine:     engine,
		Registry:   registry,
		Dispatcher: dispatcher,
		Validator:  validator,
	}
}

// ---

// ExecuteArguments - proof gated opaque mutation
type ExecuteArguments struct {
	Payload []byte              `json:"payload"`
	Proof   snark.Proof         `json:"proof"`
	Signals snark.PublicSignals `json:"signals"`
}

// ExecuteReply - result returned by the dispatch target
type ExecuteReply struct {
	Result []byte `json:"result"`
}

// Execute - verify the proof and apply one packed mutation
//
// the payload is a packed asset record; it is added, or updated in
// place when the id already exists
func (registry *Registry) Execute(arguments *ExecuteArguments, reply *ExecuteReply) error {
	if err := rateLimit(registry.Limiter); nil != err {
		return err
	}

	registry.Log.Infof("Registry.Execute: %d byte payload", len(arguments.Payload))

	result, err := registry.Engine.Execute(registry.Dispatcher, arguments.Payload, arguments.Proof, arguments.Signals)
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

// ---

// IssueArguments - signed token issuance
type IssueArguments struct {
	AssetId   record.AssetId      `json:"assetId"`
	Owner     principal.Principal `json:"owner"`
	Status    string              `json:"status"`
	Data      []byte              `json:"data"`
	Operator  principal.Principal `json:"operator"`
	Nonce     uint64              `json:"nonce,string"`
	Signature principal.Signature `json:"signature"`
}

// IssueReply - the allocated token
type IssueReply struct {
	TokenId uint64 `json:"tokenId,string"`
}

// IssueToken - allocate a token for an asset
//
// the operator needs the minter role and a valid approval signature
func (registry *Registry) IssueToken(arguments *IssueArguments, reply *IssueReply) error {
	if err := rateLimit(registry.Limiter); nil != err {
		return err
	}

	registry.Log.Infof("Registry.IssueToken: %s for %s", arguments.AssetId, arguments.Owner)

	tokenId, err := registry.Engine.ExecuteIssueToken(
		registry.Registry,
		arguments.AssetId,
		arguments.Owner,
		arguments.Status,
		arguments.Data,
		arguments.Operator,
		arguments.Nonce,
		arguments.Signature,
	)
	if nil != err {
		return err
	}
	reply.TokenId = tokenId
	return nil
}

// ---

// TransferArguments - signed token transfer
type TransferArguments struct {
	From      principal.Principal `json:"from"`
	To        principal.Principal `json:"to"`
	TokenId   uint64              `json:"tokenId,string"`
	Amount    uint64              `json:"amount,string"`
	Data      []byte              `json:"data"`
	Operator  principal.Principal `json:"operator"`
	Nonce     uint64              `json:"nonce,string"`
	Signature principal.Signature `json:"signature"`
}

// TransferReply - owner after the transfer
type TransferReply struct {
	AssetId record.AssetId      `json:"assetId"`
	Owner   principal.Principal `json:"owner"`
}

// TransferToken - move a title token between principals
func (registry *Registry) TransferToken(arguments *TransferArguments, reply *TransferReply) error {
	if err := rateLimit(registry.Limiter); nil != err {
		return err
	}

	registry.Log.Infof("Registry.TransferToken: %d: %s to %s", arguments.TokenId, arguments.From, arguments.To)

	err := registry.Engine.ExecuteTransferToken(
		registry.Registry,
		arguments.From,
		arguments.To,
		arguments.TokenId,
		arguments.Amount,
		arguments.Data,
		arguments.Operator,
		arguments.Nonce,
		arguments.Signature,
	)
	if nil != err {
		return err
	}

	id, owner, err := record.TokenOwner(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.AssetId = id
	reply.Owner = owner
	return nil
}

// ---

// ProofArguments - proof record for one asset
type ProofArguments struct {
	AssetId record.AssetId      `json:"assetId"`
	Proof   snark.Proof         `json:"proof"`
	Signals snark.PublicSignals `json:"signals"`
}

// ProofReply - proof records stored so far
type ProofReply struct {
	Count uint64 `json:"count,string"`
}

// RecordProof - verify and store a write once proof record
func (registry *Registry) RecordProof(arguments *ProofArguments, reply *ProofReply) error {
	if err := rateLimit(registry.Limiter); nil != err {
		return err
	}

	registry.Log.Infof("Registry.RecordProof: %s", arguments.AssetId)

	err := record.RecordAndVerify(arguments.AssetId, arguments.Proof, arguments.Signals, registry.Validator)
	if nil != err {
		return err
	}
	reply.Count = record.ProofCount()
	return nil
}

// ---

// AssetGetArguments - asset lookup
type AssetGetArguments struct {
	AssetId record.AssetId `json:"assetId"`
}

// AssetGetReply - the stored record with its proof state
type AssetGetReply struct {
	Asset    *record.AssetRecord `json:"asset"`
	HasProof bool                `json:"hasProof"`
}

// Get - fetch a stored asset record
func (registry *Registry) Get(arguments *AssetGetArguments, reply *AssetGetReply) error {
	if err := rateLimit(registry.Limiter); nil != err {
		return err
	}

	asset, err := registry.Registry.GetAsset(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Asset = asset
	reply.HasProof = record.HasProof(arguments.AssetId)
	return nil
}
