// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"math/big"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/snark"
	"github.com/bitmark-inc/titled/util"
)

// turn a byte slice back into a record
//
// must cast result to correct type
//
// e.g.
//   asset, ok := result.(*record.AssetRecord)
func (record Packed) Unpack() (interface{}, int, error) {

	recordType, n := util.ClippedVarint64(record, 1, int(InvalidTag)-1)
	if 0 == n {
		return nil, 0, fault.DataInconsistent
	}

	switch TagType(recordType) {

	case AssetRecordTag:
		asset := &AssetRecord{}

		// id
		idBytes, length := unpackBytes(record[n:], AssetIdLength, AssetIdLength)
		if 0 == length {
			return nil, 0, fault.DataInconsistent
		}
		copy(asset.Id[:], idBytes)
		n += length

		// token id
		tokenId, tokenIdLength := util.FromVarint64(record[n:])
		if 0 == tokenIdLength {
			return nil, 0, fault.DataInconsistent
		}
		asset.TokenId = tokenId
		n += tokenIdLength

		// merkle root
		rootBytes, length := unpackBytes(record[n:], canonical.DigestLength, canonical.DigestLength)
		if 0 == length {
			return nil, 0, fault.DataInconsistent
		}
		copy(asset.MerkleRoot[:], rootBytes)
		n += length

		// asset type
		assetType, length := unpackBytes(record[n:], 1, maxAssetTypeLength)
		if 0 == length {
			return nil, 0, fault.DataInconsistent
		}
		asset.AssetType = string(assetType)
		n += length

		// legal entity id
		legalEntityId, length := unpackBytes(record[n:], 1, maxLegalEntityIdLength)
		if 0 == length {
			return nil, 0, fault.DataInconsistent
		}
		asset.LegalEntityId = string(legalEntityId)
		n += length

		// lei verification date
		date, dateLength := util.FromVarint64(record[n:])
		if 0 == dateLength {
			return nil, 0, fault.DataInconsistent
		}
		asset.LeiVerificationDate = date
		n += dateLength

		// originator
		originatorBytes, length := unpackBytes(record[n:], principal.PrincipalLength, principal.PrincipalLength)
		if 0 == length {
			return nil, 0, fault.DataInconsistent
		}
		copy(asset.Originator[:], originatorBytes)
		n += length

		// status
		status, length := unpackBytes(record[n:], 1, maxStatusLength)
		if 0 == length {
			return nil, 0, fault.DataInconsistent
		}
		asset.Status = string(status)
		n += length

		// auxiliary count
		auxiliaryCount, countLength := util.FromVarint64(record[n:])
		if 0 == countLength {
			return nil, 0, fault.DataInconsistent
		}
		asset.AuxiliaryCount = auxiliaryCount
		n += countLength

		return asset, n, nil

	case ProofRecordTag:
		proofRecord := &ProofRecord{}

		scalars := make([]*big.Int, 0, 8+snark.SignalCount)
		for i := 0; i < 8+snark.SignalCount; i += 1 {
			if len(record) < n+scalarLength {
				return nil, 0, fault.DataInconsistent
			}
			scalars = append(scalars, new(big.Int).SetBytes(record[n:n+scalarLength]))
			n += scalarLength
		}

		proofRecord.Proof.A[0] = scalars[0]
		proofRecord.Proof.A[1] = scalars[1]
		proofRecord.Proof.B[0][0] = scalars[2]
		proofRecord.Proof.B[0][1] = scalars[3]
		proofRecord.Proof.B[1][0] = scalars[4]
		proofRecord.Proof.B[1][1] = scalars[5]
		proofRecord.Proof.C[0] = scalars[6]
		proofRecord.Proof.C[1] = scalars[7]
		for i := 0; i < snark.SignalCount; i += 1 {
			proofRecord.Signals[i] = scalars[8+i]
		}

		return proofRecord, n, nil

	default:
		return nil, 0, fault.DataInconsistent
	}
}

// length prefixed bytes, returns data and total bytes consumed
func unpackBytes(buffer []byte, minimum int, maximum int) ([]byte, int) {
	dataLength, offset := util.ClippedVarint64(buffer, minimum, maximum)
	if 0 == offset || len(buffer) < offset+dataLength {
		return nil, 0
	}
	return buffer[offset : offset+dataLength], offset + dataLength
}
