// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nonce - per-principal monotonic counters for replay
// protection
//
// a request is only authorised if it carries the principal's current
// counter value; the counter advances by exactly one on each
// successful check, so an observed request can never be replayed
package nonce

import (
	"sync"

	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/storage"
)

// serialize check-and-advance cycles
//
// the storage pool is already safe for concurrent access, but the
// read-compare-write must be atomic per ledger to keep the
// strictly-increasing guarantee under a concurrent host
var ledgerLock sync.Mutex

// Current - the nonce expected from a principal's next request
//
// zero for a principal that has never been seen
func Current(p principal.Principal) uint64 {
	n, _ := storage.Pool.Nonces.GetN(p[:])
	return n
}

// CheckAndAdvance - validate a supplied nonce and advance the ledger
//
// fails closed: returns false and leaves the ledger unchanged unless
// the supplied nonce equals the current value; on success the stored
// nonce increases by exactly 1
func CheckAndAdvance(p principal.Principal, supplied uint64) bool {
	ledgerLock.Lock()
	defer ledgerLock.Unlock()

	current, _ := storage.Pool.Nonces.GetN(p[:])
	if supplied != current {
		return false
	}
	storage.Pool.Nonces.PutN(p[:], current+1)
	return true
}
