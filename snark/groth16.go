// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snark

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/bitmark-inc/titled/fault"
)

// serialised point sizes, uncompressed big endian
const (
	g1Size = 2 * fp.Bytes
	g2Size = 4 * fp.Bytes

	// alpha ++ beta ++ gamma ++ delta ++ K[0..SignalCount]
	VerifyingKeySize = g1Size + 3*g2Size + (SignalCount+1)*g1Size
)

// VerifyingKey - the Groth16 verifying key for the title circuit
//
// K carries one point per public signal plus the constant term K[0]
type VerifyingKey struct {
	Alpha bn254.G1Affine
	Beta  bn254.G2Affine
	Gamma bn254.G2Affine
	Delta bn254.G2Affine
	K     [SignalCount + 1]bn254.G1Affine
}

// ParseVerifyingKey - deserialise a verifying key
//
// fixed width layout: alpha(64) beta(128) gamma(128) delta(128)
// K[0..3](64 each); all points are subgroup checked so a corrupted
// trusted setup file is rejected at load, not at first verification
func ParseVerifyingKey(data []byte) (*VerifyingKey, error) {
	if VerifyingKeySize != len(data) {
		return nil, fault.InvalidVerifyingKey
	}

	vk := &VerifyingKey{}
	offset := 0

	if err := vk.Alpha.Unmarshal(data[offset : offset+g1Size]); nil != err {
		return nil, fault.InvalidVerifyingKey
	}
	offset += g1Size

	g2Points := []*bn254.G2Affine{&vk.Beta, &vk.Gamma, &vk.Delta}
	for _, point := range g2Points {
		if err := point.Unmarshal(data[offset : offset+g2Size]); nil != err {
			return nil, fault.InvalidVerifyingKey
		}
		offset += g2Size
	}

	for i := 0; i <= SignalCount; i += 1 {
		if err := vk.K[i].Unmarshal(data[offset : offset+g1Size]); nil != err {
			return nil, fault.InvalidVerifyingKey
		}
		offset += g1Size
	}

	if err := vk.validate(); nil != err {
		return nil, err
	}
	return vk, nil
}

// Pack - serialise a verifying key, inverse of ParseVerifyingKey
func (vk *VerifyingKey) Pack() []byte {
	buffer := make([]byte, 0, VerifyingKeySize)
	buffer = append(buffer, vk.Alpha.Marshal()...)
	buffer = append(buffer, vk.Beta.Marshal()...)
	buffer = append(buffer, vk.Gamma.Marshal()...)
	buffer = append(buffer, vk.Delta.Marshal()...)
	for i := 0; i <= SignalCount; i += 1 {
		buffer = append(buffer, vk.K[i].Marshal()...)
	}
	return buffer
}

// subgroup membership of every verifying key point
func (vk *VerifyingKey) validate() error {
	if !vk.Alpha.IsInSubGroup() {
		return fault.InvalidVerifyingKey
	}
	g2Points := []*bn254.G2Affine{&vk.Beta, &vk.Gamma, &vk.Delta}
	for _, point := range g2Points {
		if !point.IsInSubGroup() {
			return fault.InvalidVerifyingKey
		}
	}
	for i := 0; i <= SignalCount; i += 1 {
		if !vk.K[i].IsInSubGroup() {
			return fault.InvalidVerifyingKey
		}
	}
	return nil
}

// Groth16Verifier - pairing based proof verification over BN254
type Groth16Verifier struct {
	vk *VerifyingKey
}

// NewGroth16Verifier - create a verifier around a validated key
func NewGroth16Verifier(vk *VerifyingKey) *Groth16Verifier {
	return &Groth16Verifier{
		vk: vk,
	}
}

// VerifyProof - the Groth16 pairing check
//
//	e(A, B) == e(alpha, beta) · e(Σ sᵢ·K[i], gamma) · e(C, delta)
//
// evaluated as a single multi pairing with A negated; points that are
// off curve, outside the subgroup or out of field range simply fail
// verification
func (verifier *Groth16Verifier) VerifyProof(proof Proof, signals PublicSignals) bool {
	a, ok := g1FromScalars(proof.A)
	if !ok {
		return false
	}
	b, ok := g2FromScalars(proof.B)
	if !ok {
		return false
	}
	c, ok := g1FromScalars(proof.C)
	if !ok {
		return false
	}

	// linear combination of the public signals, K[0] is the
	// constant term
	linearCombination := verifier.vk.K[0]
	for i, signal := range signals {
		if nil == signal {
			return false
		}
		var reduced fr.Element
		reduced.SetBigInt(signal)

		var term bn254.G1Affine
		term.ScalarMultiplication(&verifier.vk.K[i+1], reduced.BigInt(new(big.Int)))
		linearCombination.Add(&linearCombination, &term)
	}

	var negA bn254.G1Affine
	negA.Neg(&a)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{negA, verifier.vk.Alpha, linearCombination, c},
		[]bn254.G2Affine{b, verifier.vk.Beta, verifier.vk.Gamma, verifier.vk.Delta},
	)
	return nil == err && ok
}

// coordinate must be a canonical field element
func validCoordinate(n *big.Int) bool {
	return nil != n && n.Sign() >= 0 && n.Cmp(fp.Modulus()) < 0
}

func g1FromScalars(coordinates [2]*big.Int) (bn254.G1Affine, bool) {
	var point bn254.G1Affine
	if !validCoordinate(coordinates[0]) || !validCoordinate(coordinates[1]) {
		return point, false
	}
	point.X.SetBigInt(coordinates[0])
	point.Y.SetBigInt(coordinates[1])
	if !point.IsOnCurve() || !point.IsInSubGroup() {
		return point, false
	}
	return point, true
}

func g2FromScalars(coordinates [2][2]*big.Int) (bn254.G2Affine, bool) {
	var point bn254.G2Affine
	for i := 0; i < 2; i += 1 {
		for j := 0; j < 2; j += 1 {
			if !validCoordinate(coordinates[i][j]) {
				return point, false
			}
		}
	}

	// calldata carries the imaginary part of each coordinate first
	point.X.A1.SetBigInt(coordinates[0][0])
	point.X.A0.SetBigInt(coordinates[0][1])
	point.Y.A1.SetBigInt(coordinates[1][0])
	point.Y.A0.SetBigInt(coordinates[1][1])

	if !point.IsOnCurve() || !point.IsInSubGroup() {
		return point, false
	}
	return point, true
}
