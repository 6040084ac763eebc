// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/titled/rpc"
)

// GetAsset - fetch one asset record with its proof state
func (client *Client) GetAsset(arguments *rpc.AssetGetArguments) (*rpc.AssetGetReply, error) {
	client.printJson("Get Request", arguments)

	var reply rpc.AssetGetReply
	if err := client.client.Call("Registry.Get", arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)
	return &reply, nil
}

// Execute - proof gated add or update of a packed asset record
func (client *Client) Execute(arguments *rpc.ExecuteArguments) (*rpc.ExecuteReply, error) {
	client.printJson("Execute Request", arguments)

	var reply rpc.ExecuteReply
	if err := client.client.Call("Registry.Execute", arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Execute Reply", reply)
	return &reply, nil
}

// RecordProof - verify and store a write once proof record
func (client *Client) RecordProof(arguments *rpc.ProofArguments) (*rpc.ProofReply, error) {
	client.printJson("RecordProof Request", arguments)

	var reply rpc.ProofReply
	if err := client.client.Call("Registry.RecordProof", arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("RecordProof Reply", reply)
	return &reply, nil
}

// IssueToken - signed token issuance
func (client *Client) IssueToken(arguments *rpc.IssueArguments) (*rpc.IssueReply, error) {
	client.printJson("IssueToken Request", arguments)

	var reply rpc.IssueReply
	if err := client.client.Call("Registry.IssueToken", arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("IssueToken Reply", reply)
	return &reply, nil
}

// TransferToken - signed token transfer
func (client *Client) TransferToken(arguments *rpc.TransferArguments) (*rpc.TransferReply, error) {
	client.printJson("TransferToken Request", arguments)

	var reply rpc.TransferReply
	if err := client.client.Call("Registry.TransferToken", arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("TransferToken Reply", reply)
	return &reply, nil
}
