// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/titled/rpc"
)

// the six escrow operations share one argument and reply shape so a
// single call path covers them all
var titleMethods = map[string]string{
	"nominate":             "Title.Nominate",
	"transfer-beneficiary": "Title.TransferBeneficiary",
	"transfer-holder":      "Title.TransferHolder",
	"transfer-owners":      "Title.TransferOwners",
	"surrender":            "Title.Surrender",
	"shred":                "Title.Shred",
}

// TitleOperation - invoke one signed escrow operation by name
func (client *Client) TitleOperation(operation string, arguments *rpc.TitleArguments) (*rpc.TitleReply, error) {
	method, ok := titleMethods[operation]
	if !ok {
		return nil, ErrUnknownOperation
	}

	client.printJson(method+" Request", arguments)

	var reply rpc.TitleReply
	if err := client.client.Call(method, arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson(method+" Reply", reply)
	return &reply, nil
}
