// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/snark"
	"github.com/bitmark-inc/titled/storage"
)

// HasProof - check whether a proof record exists for an id
//
// existence is a key presence check, so a legitimately zero signal
// value can never masquerade as absence
func HasProof(id AssetId) bool {
	return storage.Pool.Proofs.Has(id[:])
}

// StoreProof - persist a proof record, write once per id
func StoreProof(id AssetId, proof snark.Proof, signals snark.PublicSignals) error {
	storeLock.Lock()
	defer storeLock.Unlock()
	return storeProof(id, proof, signals)
}

// caller holds storeLock
func storeProof(id AssetId, proof snark.Proof, signals snark.PublicSignals) error {
	if storage.Pool.Proofs.Has(id[:]) {
		return fault.ProofRecordAlreadyExists
	}

	proofRecord := &ProofRecord{
		Proof:   proof,
		Signals: signals,
	}
	packed, err := proofRecord.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Proofs.Put(id[:], packed)

	count, _ := storage.Pool.Counters.GetN(proofCounterKey)
	storage.Pool.Counters.PutN(proofCounterKey, count+1)
	return nil
}

// GetProof - fetch the stored proof record for an id
func GetProof(id AssetId) (*ProofRecord, error) {
	packed := storage.Pool.Proofs.Get(id[:])
	if nil == packed {
		return nil, fault.ProofRecordNotFound
	}
	unpacked, _, err := Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	proofRecord, ok := unpacked.(*ProofRecord)
	if !ok {
		return nil, fault.DataInconsistent
	}
	return proofRecord, nil
}

// ProofCount - total number of proof records ever stored
func ProofCount() uint64 {
	count, _ := storage.Pool.Counters.GetN(proofCounterKey)
	return count
}

// RecordAndVerify - validate a proof and persist it against an id
//
// the existence check runs first so a duplicate id fails without any
// curve arithmetic; validation errors pass through unchanged
func RecordAndVerify(id AssetId, proof snark.Proof, signals snark.PublicSignals, validator *snark.Validator) error {
	storeLock.Lock()
	defer storeLock.Unlock()

	if storage.Pool.Proofs.Has(id[:]) {
		return fault.ProofRecordAlreadyExists
	}
	if err := validator.Verify(proof, signals); nil != err {
		return err
	}
	return storeProof(id, proof, signals)
}
