// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/titled/rpc"
)

// GetInfo - request status from titled (must be matching version)
func (client *Client) GetInfo() (*rpc.InfoReply, error) {
	var reply rpc.InfoReply
	if err := client.client.Call("Node.Info", rpc.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// GetInfoCompat - request status from titled (any version)
func (client *Client) GetInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.client.Call("Node.Info", rpc.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return reply, nil
}
