// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snark_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/snark"
)

// records whether the pairing arithmetic was ever consulted
type flagVerifier struct {
	invoked bool
	verdict bool
}

func (f *flagVerifier) VerifyProof(proof snark.Proof, signals snark.PublicSignals) bool {
	f.invoked = true
	return f.verdict
}

// a proof with every component nonzero; the scalars are arbitrary
func makeProof() snark.Proof {
	return snark.Proof{
		A: [2]*big.Int{big.NewInt(1), big.NewInt(2)},
		B: [2][2]*big.Int{
			{big.NewInt(3), big.NewInt(4)},
			{big.NewInt(5), big.NewInt(6)},
		},
		C: [2]*big.Int{big.NewInt(7), big.NewInt(8)},
	}
}

func makeSignals() snark.PublicSignals {
	return snark.PublicSignals{big.NewInt(11), big.NewInt(12), big.NewInt(13)}
}

func TestStructuralCheckProofComponents(t *testing.T) {

	zeroers := []struct {
		name string
		zero func(p *snark.Proof)
	}{
		{"a[0]", func(p *snark.Proof) { p.A[0] = big.NewInt(0) }},
		{"a[1]", func(p *snark.Proof) { p.A[1] = nil }},
		{"b[0][0]", func(p *snark.Proof) { p.B[0][0] = big.NewInt(0) }},
		{"b[0][1]", func(p *snark.Proof) { p.B[0][1] = big.NewInt(0) }},
		{"b[1][0]", func(p *snark.Proof) { p.B[1][0] = nil }},
		{"b[1][1]", func(p *snark.Proof) { p.B[1][1] = big.NewInt(0) }},
		{"c[0]", func(p *snark.Proof) { p.C[0] = big.NewInt(0) }},
		{"c[1]", func(p *snark.Proof) { p.C[1] = big.NewInt(0) }},
	}

	for _, item := range zeroers {
		proof := makeProof()
		item.zero(&proof)

		verifier := &flagVerifier{verdict: true}
		err := snark.NewValidator(verifier).Verify(proof, makeSignals())
		if fault.InvalidProofComponent != err {
			t.Fatalf("zero %s error: %v", item.name, err)
		}
		if !fault.IsErrInvalid(err) {
			t.Fatalf("zero %s error class: %T", item.name, err)
		}
		if verifier.invoked {
			t.Fatalf("zero %s reached the pairing verifier", item.name)
		}
	}
}

func TestStructuralCheckPublicSignals(t *testing.T) {

	for i := 0; i < snark.SignalCount; i += 1 {
		signals := makeSignals()
		if 0 == i%2 {
			signals[i] = big.NewInt(0)
		} else {
			signals[i] = nil
		}

		verifier := &flagVerifier{verdict: true}
		err := snark.NewValidator(verifier).Verify(makeProof(), signals)
		if fault.InvalidPublicSignal != err {
			t.Fatalf("zero signal %d error: %v", i, err)
		}
		if !fault.IsErrInvalid(err) {
			t.Fatalf("zero signal %d error class: %T", i, err)
		}
		if verifier.invoked {
			t.Fatalf("zero signal %d reached the pairing verifier", i)
		}
	}
}

func TestValidatorPassesThroughVerdict(t *testing.T) {

	accept := &flagVerifier{verdict: true}
	if err := snark.NewValidator(accept).Verify(makeProof(), makeSignals()); nil != err {
		t.Fatalf("accepted proof returned: %s", err)
	}
	if !accept.invoked {
		t.Fatal("pairing verifier was not consulted")
	}

	reject := &flagVerifier{verdict: false}
	err := snark.NewValidator(reject).Verify(makeProof(), makeSignals())
	if fault.ProofVerificationFailed != err {
		t.Fatalf("rejected proof returned: %v", err)
	}
}

// extract calldata scalars from affine points; the G2 convention is
// imaginary part first
func g1Scalars(p bn254.G1Affine) [2]*big.Int {
	return [2]*big.Int{
		p.X.BigInt(new(big.Int)),
		p.Y.BigInt(new(big.Int)),
	}
}

func g2Scalars(p bn254.G2Affine) [2][2]*big.Int {
	return [2][2]*big.Int{
		{p.X.A1.BigInt(new(big.Int)), p.X.A0.BigInt(new(big.Int))},
		{p.Y.A1.BigInt(new(big.Int)), p.Y.A0.BigInt(new(big.Int))},
	}
}

// a verifying key and matching proof built from small multiples of
// the generators
//
// with alpha = 3·G1, beta = 5·G2, gamma = delta = G2, C = 2·G1,
// K[1..3] = G1, K[0] = -4·G1 and all signals 1, the linear
// combination is -G1 and the exponents balance:
// e(4·G1, 4·G2) = e(G1, G2)^16 = e(G1, G2)^(15 - 1 + 2)
func makePairingFixture() (*snark.VerifyingKey, snark.Proof, snark.PublicSignals) {
	_, _, g1, g2 := bn254.Generators()

	vk := &snark.VerifyingKey{}
	vk.Alpha.ScalarMultiplication(&g1, big.NewInt(3))
	vk.Beta.ScalarMultiplication(&g2, big.NewInt(5))
	vk.Gamma = g2
	vk.Delta = g2

	var four bn254.G1Affine
	four.ScalarMultiplication(&g1, big.NewInt(4))
	vk.K[0].Neg(&four)
	vk.K[1] = g1
	vk.K[2] = g1
	vk.K[3] = g1

	var a bn254.G1Affine
	var b bn254.G2Affine
	var c bn254.G1Affine
	a.ScalarMultiplication(&g1, big.NewInt(4))
	b.ScalarMultiplication(&g2, big.NewInt(4))
	c.ScalarMultiplication(&g1, big.NewInt(2))

	proof := snark.Proof{
		A: g1Scalars(a),
		B: g2Scalars(b),
		C: g1Scalars(c),
	}
	signals := snark.PublicSignals{big.NewInt(1), big.NewInt(1), big.NewInt(1)}
	return vk, proof, signals
}

func TestGroth16PairingCheck(t *testing.T) {

	vk, proof, signals := makePairingFixture()
	verifier := snark.NewGroth16Verifier(vk)

	if !verifier.VerifyProof(proof, signals) {
		t.Fatal("balanced pairing rejected")
	}

	// any change to a public signal unbalances the equation
	tampered := signals
	tampered[2] = big.NewInt(3)
	if verifier.VerifyProof(proof, tampered) {
		t.Fatal("tampered signal accepted")
	}

	// as does a change to a proof point
	badProof := proof
	var c bn254.G1Affine
	_, _, g1, _ := bn254.Generators()
	c.ScalarMultiplication(&g1, big.NewInt(3))
	badProof.C = g1Scalars(c)
	if verifier.VerifyProof(badProof, signals) {
		t.Fatal("tampered proof accepted")
	}
}

func TestGroth16RejectsMalformedPoints(t *testing.T) {

	vk, proof, signals := makePairingFixture()
	verifier := snark.NewGroth16Verifier(vk)

	// coordinate out of field range
	overflow := proof
	overflow.A = [2]*big.Int{fp.Modulus(), proof.A[1]}
	if verifier.VerifyProof(overflow, signals) {
		t.Fatal("out of range coordinate accepted")
	}

	// point off the curve
	offCurve := proof
	offCurve.A = [2]*big.Int{
		proof.A[0],
		new(big.Int).Add(proof.A[1], big.NewInt(1)),
	}
	if verifier.VerifyProof(offCurve, signals) {
		t.Fatal("off curve point accepted")
	}
}

func TestVerifyingKeyPackParse(t *testing.T) {

	vk, proof, signals := makePairingFixture()

	packed := vk.Pack()
	if snark.VerifyingKeySize != len(packed) {
		t.Fatalf("packed length: %d  expected: %d", len(packed), snark.VerifyingKeySize)
	}

	parsed, err := snark.ParseVerifyingKey(packed)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	if !snark.NewGroth16Verifier(parsed).VerifyProof(proof, signals) {
		t.Fatal("parsed key rejects a valid proof")
	}

	if _, err := snark.ParseVerifyingKey(packed[:len(packed)-1]); fault.InvalidVerifyingKey != err {
		t.Fatalf("truncated key error: %v", err)
	}
}
