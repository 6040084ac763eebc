// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/record"
)

// Dispatcher - opaque call target for proof gated registry mutation
//
// the payload is a packed record; an asset record is added, or
// updated when the id already exists, so one proof gated entry point
// covers both mutations
type Dispatcher struct {
	log *logger.L
}

// NewDispatcher - create the registry dispatch target
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		log: logger.New("dispatcher"),
	}
}

// Call - decode and apply one packed mutation
//
// returns the asset id the mutation touched
func (dispatcher *Dispatcher) Call(payload []byte) ([]byte, error) {
	unpacked, _, err := record.Packed(payload).Unpack()
	if nil != err {
		return nil, err
	}

	switch item := unpacked.(type) {
	case *record.AssetRecord:
		err = record.AddAsset(item)
		if fault.AssetAlreadyExists == err {
			dispatcher.log.Debugf("call: updating existing asset %s", item.Id)
			err = record.UpdateAsset(item)
		}
		if nil != err {
			return nil, err
		}
		return item.Id[:], nil

	default:
		return nil, fault.InvalidError("unsupported payload record")
	}
}
