// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/counter"
	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/record"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Escrows *escrow.Manager
	counter *counter.Counter
}

// NewNode - create the node status RPC service
func NewNode(log *logger.L, start time.Time, version string, rpcCount *counter.Counter, escrows *escrow.Manager) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Escrows: escrows,
		counter: rpcCount,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	RPCs    uint64 `json:"rpcs"`
	Tokens  uint64 `json:"tokens,string"`
	Proofs  uint64 `json:"proofs,string"`
	Escrows int    `json:"escrows"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := rateLimit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Tokens = record.TokenCount()
	reply.Proofs = record.ProofCount()
	reply.Escrows = node.Escrows.Count()

	return nil
}
