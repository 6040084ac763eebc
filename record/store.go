// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/storage"
)

// counter keys in the counters pool
var (
	tokenCounterKey = []byte("token")
	proofCounterKey = []byte("proof")
)

// serialize all record mutation
//
// individual pool operations are safe, but read-modify-write cycles
// like issuance must not interleave
var storeLock sync.Mutex

// IssuanceCallback - runs inside the issuance transaction before any
// record is committed; an error aborts the issuance with no effects
type IssuanceCallback func(id AssetId, owner principal.Principal, tokenId uint64) error

// AddAsset - store a new asset record
//
// the id must be unused and the token id unassigned
func AddAsset(asset *AssetRecord) error {
	if 0 != asset.TokenId {
		return fault.InvalidError("token id must not be preassigned")
	}
	packed, err := asset.Pack()
	if nil != err {
		return err
	}

	storeLock.Lock()
	defer storeLock.Unlock()

	if storage.Pool.Assets.Has(asset.Id[:]) {
		return fault.AssetAlreadyExists
	}
	storage.Pool.Assets.Put(asset.Id[:], packed)
	return nil
}

// UpdateAsset - replace the descriptive fields of a stored asset
//
// the stored token id is preserved; issuance is the only way it
// changes
func UpdateAsset(asset *AssetRecord) error {
	if err := asset.CheckFields(); nil != err {
		return err
	}

	storeLock.Lock()
	defer storeLock.Unlock()

	stored, err := fetchAsset(asset.Id)
	if nil != err {
		return err
	}
	asset.TokenId = stored.TokenId

	packed, err := asset.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Assets.Put(asset.Id[:], packed)
	return nil
}

// GetAsset - fetch a stored asset record
func GetAsset(id AssetId) (*AssetRecord, error) {
	return fetchAsset(id)
}

// read and unpack without taking the store lock
func fetchAsset(id AssetId) (*AssetRecord, error) {
	packed := storage.Pool.Assets.Get(id[:])
	if nil == packed {
		return nil, fault.AssetNotFound
	}
	unpacked, _, err := Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	asset, ok := unpacked.(*AssetRecord)
	if !ok {
		return nil, fault.DataInconsistent
	}
	return asset, nil
}

// IssueToken - allocate the next sequential token id for an asset
//
// the asset's token id transitions exactly once from zero; the
// callback, if any, fires before the records are committed so its
// failure leaves the store untouched
func IssueToken(id AssetId, owner principal.Principal, status string, notify IssuanceCallback) (uint64, error) {
	if owner.IsZero() {
		return 0, fault.InvalidPrincipal
	}
	if "" == status {
		return 0, fault.InvalidError("status is not set")
	}

	storeLock.Lock()
	defer storeLock.Unlock()

	asset, err := fetchAsset(id)
	if nil != err {
		return 0, err
	}
	if 0 != asset.TokenId {
		return 0, fault.TokenAlreadyIssued
	}

	next, _ := storage.Pool.Counters.GetN(tokenCounterKey)
	tokenId := next + 1

	asset.TokenId = tokenId
	asset.Status = status
	packed, err := asset.Pack()
	if nil != err {
		return 0, err
	}

	if nil != notify {
		if err := notify(id, owner, tokenId); nil != err {
			return 0, err
		}
	}

	storage.Pool.Counters.PutN(tokenCounterKey, tokenId)
	storage.Pool.Assets.Put(id[:], packed)

	// token entry: asset id ++ owner
	value := make([]byte, 0, AssetIdLength+principal.PrincipalLength)
	value = append(value, id[:]...)
	value = append(value, owner[:]...)
	storage.Pool.Tokens.Put(tokenKey(tokenId), value)

	return tokenId, nil
}

// TokenOwner - look up the asset and current owner of a token
func TokenOwner(tokenId uint64) (AssetId, principal.Principal, error) {
	var id AssetId
	var owner principal.Principal

	value := storage.Pool.Tokens.Get(tokenKey(tokenId))
	if nil == value {
		return id, owner, fault.TokenNotFound
	}
	if AssetIdLength+principal.PrincipalLength != len(value) {
		return id, owner, fault.DataInconsistent
	}
	copy(id[:], value[:AssetIdLength])
	copy(owner[:], value[AssetIdLength:])
	return id, owner, nil
}

// TransferTokenOwner - move a token between principals
//
// the sender must be the current owner
func TransferTokenOwner(from principal.Principal, to principal.Principal, tokenId uint64) error {
	if to.IsZero() {
		return fault.OperationToZeroPrincipal
	}

	storeLock.Lock()
	defer storeLock.Unlock()

	id, owner, err := TokenOwner(tokenId)
	if nil != err {
		return err
	}
	if from != owner {
		return fault.TokenNotOwned
	}

	value := make([]byte, 0, AssetIdLength+principal.PrincipalLength)
	value = append(value, id[:]...)
	value = append(value, to[:]...)
	storage.Pool.Tokens.Put(tokenKey(tokenId), value)
	return nil
}

// TokenCount - number of tokens issued so far
func TokenCount() uint64 {
	count, _ := storage.Pool.Counters.GetN(tokenCounterKey)
	return count
}

func tokenKey(tokenId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tokenId)
	return key
}
