// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - asset and proof records and their binary form
//
// a record packs to a Varint64 type tag followed by its fields in
// struct order; variable length fields carry a Varint64 length prefix
// and numeric fields are Varint64 encoded, so the packed form is
// unambiguous and byte comparable
package record

import (
	"encoding/hex"
	"math/big"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/snark"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetRecordTag = TagType(iota)
	ProofRecordTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes for various fields
const (
	AssetIdLength      = 32
	maxAssetTypeLength = 64
	maxLegalEntityIdLength = 64
	maxStatusLength    = 64
	scalarLength       = 32
)

// AssetId - the fixed length identifier of an asset record
type AssetId [AssetIdLength]byte

// IsZero - check if an asset id is unset
func (assetId AssetId) IsZero() bool {
	return AssetId{} == assetId
}

// String - convert an asset id to hex for printf
func (assetId AssetId) String() string {
	return hex.EncodeToString(assetId[:])
}

// MarshalText - convert an asset id to hex text
func (assetId AssetId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(assetId)))
	hex.Encode(buffer, assetId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an asset id
func (assetId *AssetId) UnmarshalText(s []byte) error {
	if hex.EncodedLen(AssetIdLength) != len(s) {
		return fault.DataInconsistent
	}
	buffer := make([]byte, AssetIdLength)
	if _, err := hex.Decode(buffer, s); nil != err {
		return err
	}
	copy(assetId[:], buffer)
	return nil
}

// AssetIdFromBytes - convert a byte slice into an asset id
func AssetIdFromBytes(buffer []byte) (AssetId, error) {
	var assetId AssetId
	if AssetIdLength != len(buffer) {
		return assetId, fault.DataInconsistent
	}
	copy(assetId[:], buffer)
	return assetId, nil
}

// AssetRecord - the unpacked asset record structure
//
// TokenId stays zero until issuance and transitions exactly once
type AssetRecord struct {
	Id                  AssetId             `json:"id"`
	TokenId             uint64              `json:"tokenId"`
	MerkleRoot          canonical.Digest    `json:"merkleRoot"`
	AssetType           string              `json:"assetType"`
	LegalEntityId       string              `json:"legalEntityId"`
	LeiVerificationDate uint64              `json:"leiVerificationDate"`
	Originator          principal.Principal `json:"originator"`
	Status              string              `json:"status"`
	AuxiliaryCount      uint64              `json:"auxiliaryCount"`
}

// ProofRecord - the unpacked proof record structure
//
// retains the proof and public signals that authorised a past state
// change so it can be re-verified later
type ProofRecord struct {
	Proof   snark.Proof        `json:"proof"`
	Signals snark.PublicSignals `json:"signals"`
}

// CheckFields - validate a record before storing
//
// every descriptive field must be set; the token id is deliberately
// not checked here since it is only assigned by issuance
func (asset *AssetRecord) CheckFields() error {
	if asset.Id.IsZero() {
		return fault.InvalidError("asset id is zero")
	}
	if asset.MerkleRoot.IsZero() {
		return fault.InvalidError("merkle root is zero")
	}
	if "" == asset.AssetType {
		return fault.InvalidError("asset type is not set")
	}
	if "" == asset.LegalEntityId {
		return fault.InvalidError("legal entity id is not set")
	}
	if 0 == asset.LeiVerificationDate {
		return fault.InvalidLeiDate
	}
	if asset.Originator.IsZero() {
		return fault.InvalidError("originator is zero")
	}
	if "" == asset.Status {
		return fault.InvalidError("status is not set")
	}
	return nil
}

// limit scalars to one 256 bit word
var scalarMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*scalarLength), big.NewInt(1))

// fixed width scalar encoding, nil packs as zero
func appendScalar(buffer []byte, value *big.Int) []byte {
	word := make([]byte, scalarLength)
	if nil != value {
		new(big.Int).And(value, scalarMask).FillBytes(word)
	}
	return append(buffer, word...)
}
