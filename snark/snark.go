// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snark - validation of Groth16 proofs attached to registry
// operations
//
// a proof arrives as raw calldata scalars; it is first checked
// structurally (no zero component, no zero public signal) and only
// then handed to the pairing verifier, so malformed submissions are
// rejected before any curve arithmetic runs
package snark

import (
	"math/big"

	"github.com/bitmark-inc/titled/fault"
)

// SignalCount - number of public signals bound to every proof
const SignalCount = 3

// Proof - a Groth16 proof as affine curve coordinates
//
// b is the G2 point with the imaginary component of each coordinate
// first, matching the snarkjs calldata ordering
type Proof struct {
	A [2]*big.Int    `json:"a"`
	B [2][2]*big.Int `json:"b"`
	C [2]*big.Int    `json:"c"`
}

// PublicSignals - the public inputs bound to a proof
type PublicSignals [SignalCount]*big.Int

// nil counts as zero so partially decoded requests cannot slip past
func isZeroScalar(n *big.Int) bool {
	return nil == n || 0 == n.Sign()
}

// StructuralCheck - ensure no proof component is zero
func (proof Proof) StructuralCheck() error {
	components := [...]*big.Int{
		proof.A[0], proof.A[1],
		proof.B[0][0], proof.B[0][1],
		proof.B[1][0], proof.B[1][1],
		proof.C[0], proof.C[1],
	}
	for _, component := range components {
		if isZeroScalar(component) {
			return fault.InvalidProofComponent
		}
	}
	return nil
}

// StructuralCheck - ensure no public signal is zero
func (signals PublicSignals) StructuralCheck() error {
	for _, signal := range signals {
		if isZeroScalar(signal) {
			return fault.InvalidPublicSignal
		}
	}
	return nil
}

// PairingVerifier - the curve arithmetic behind proof validation
//
// replaceable so the engine can be tested without a trusted setup and
// so an alternate proving system with identically shaped inputs can
// be swapped in
type PairingVerifier interface {
	VerifyProof(proof Proof, signals PublicSignals) bool
}

// Validator - structural checks in front of a pairing verifier
type Validator struct {
	verifier PairingVerifier
}

// NewValidator - create a validator around a pairing verifier
func NewValidator(verifier PairingVerifier) *Validator {
	return &Validator{
		verifier: verifier,
	}
}

// Verify - full proof validation
//
// structural rejection happens before the pairing verifier is
// consulted; the verifier's verdict is passed through unmodified and
// never cached
func (validator *Validator) Verify(proof Proof, signals PublicSignals) error {
	if err := proof.StructuralCheck(); nil != err {
		return err
	}
	if err := signals.StructuralCheck(); nil != err {
		return err
	}
	if !validator.verifier.VerifyProof(proof, signals) {
		return fault.ProofVerificationFailed
	}
	return nil
}
