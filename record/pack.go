// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"unicode/utf8"

	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/util"
)

// pack AssetRecord
//
// Pack Varint64(tag) followed by fields in order as struct above
func (asset *AssetRecord) Pack() (Packed, error) {
	if err := asset.CheckFields(); nil != err {
		return nil, err
	}
	if utf8.RuneCountInString(asset.AssetType) > maxAssetTypeLength {
		return nil, fault.InvalidError("asset type is too long")
	}
	if utf8.RuneCountInString(asset.LegalEntityId) > maxLegalEntityIdLength {
		return nil, fault.InvalidError("legal entity id is too long")
	}
	if utf8.RuneCountInString(asset.Status) > maxStatusLength {
		return nil, fault.InvalidError("status is too long")
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(AssetRecordTag))
	message = appendBytes(message, asset.Id[:])
	message = appendUint64(message, asset.TokenId)
	message = appendBytes(message, asset.MerkleRoot[:])
	message = appendString(message, asset.AssetType)
	message = appendString(message, asset.LegalEntityId)
	message = appendUint64(message, asset.LeiVerificationDate)
	message = appendBytes(message, asset.Originator[:])
	message = appendString(message, asset.Status)
	message = appendUint64(message, asset.AuxiliaryCount)

	return message, nil
}

// pack ProofRecord
//
// Pack Varint64(tag) followed by the eight proof scalars then the
// public signals, each as a fixed 32 byte big endian word
func (proofRecord *ProofRecord) Pack() (Packed, error) {

	message := util.ToVarint64(uint64(ProofRecordTag))
	message = appendScalar(message, proofRecord.Proof.A[0])
	message = appendScalar(message, proofRecord.Proof.A[1])
	for i := 0; i < 2; i += 1 {
		for j := 0; j < 2; j += 1 {
			message = appendScalar(message, proofRecord.Proof.B[i][j])
		}
	}
	message = appendScalar(message, proofRecord.Proof.C[0])
	message = appendScalar(message, proofRecord.Proof.C[1])
	for _, signal := range proofRecord.Signals {
		message = appendScalar(message, signal)
	}

	return message, nil
}

// internal pack helpers
// all data is: Varint64(length) followed by bytes

func appendString(buffer []byte, s string) []byte {
	return appendBytes(buffer, []byte(s))
}

func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}
