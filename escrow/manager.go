// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"sync"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/principal"
)

// DeriveRef - the deterministic reference of an escrow
//
// the low 20 bytes of Keccak-256(assetId ++ tokenId), so an escrow
// reference has the same shape as a principal and can flow through
// the same canonical hashing
func DeriveRef(assetId [32]byte, tokenId uint64) principal.Principal {
	digest := canonical.NewHasher().
		Bytes(assetId[:]).
		Uint64(tokenId).
		Digest()

	var ref principal.Principal
	copy(ref[:], digest[canonical.DigestLength-principal.PrincipalLength:])
	return ref
}

// Manager - the set of live title escrows keyed by reference
type Manager struct {
	sync.RWMutex
	escrows map[principal.Principal]*TitleEscrow
}

// NewManager - create an empty escrow manager
func NewManager() *Manager {
	return &Manager{
		escrows: make(map[principal.Principal]*TitleEscrow),
	}
}

// Create - open an escrow under a reference
func (manager *Manager) Create(ref principal.Principal, beneficiary principal.Principal, holder principal.Principal) (*TitleEscrow, error) {
	if ref.IsZero() {
		return nil, fault.InvalidPrincipal
	}

	manager.Lock()
	defer manager.Unlock()

	if _, ok := manager.escrows[ref]; ok {
		return nil, fault.EscrowAlreadyExists
	}
	titleEscrow, err := NewTitleEscrow(beneficiary, holder)
	if nil != err {
		return nil, err
	}
	manager.escrows[ref] = titleEscrow
	return titleEscrow, nil
}

// Get - look up an escrow by reference
func (manager *Manager) Get(ref principal.Principal) (*TitleEscrow, error) {
	manager.RLock()
	defer manager.RUnlock()

	titleEscrow, ok := manager.escrows[ref]
	if !ok {
		return nil, fault.EscrowNotFound
	}
	return titleEscrow, nil
}

// Count - number of live escrows
func (manager *Manager) Count() int {
	manager.RLock()
	defer manager.RUnlock()
	return len(manager.escrows)
}
