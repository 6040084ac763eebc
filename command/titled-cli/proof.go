// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/bitmark-inc/titled/snark"
)

// snarkjs proof.json and public.json layout: projective points with a
// trailing one, coordinates as decimal strings, G2 pairs stored real
// component first
type proofDocument struct {
	PiA     []string   `json:"pi_a"`
	PiB     [][]string `json:"pi_b"`
	PiC     []string   `json:"pi_c"`
	Signals []string   `json:"signals"`
}

// read a proof file produced by snarkjs
func readProofFile(fileName string) (snark.Proof, snark.PublicSignals, error) {
	var proof snark.Proof
	var signals snark.PublicSignals

	data, err := os.ReadFile(fileName)
	if nil != err {
		return proof, signals, err
	}

	document := proofDocument{}
	if err := json.Unmarshal(data, &document); nil != err {
		return proof, signals, err
	}

	if len(document.PiA) < 2 || len(document.PiB) < 2 || len(document.PiC) < 2 {
		return proof, signals, fmt.Errorf("proof file: %q is incomplete", fileName)
	}
	if snark.SignalCount != len(document.Signals) {
		return proof, signals, fmt.Errorf("proof file: %q has %d signals, need %d", fileName, len(document.Signals), snark.SignalCount)
	}

	for i := 0; i < 2; i += 1 {
		if proof.A[i], err = parseScalar(document.PiA[i]); nil != err {
			return proof, signals, err
		}
		if proof.C[i], err = parseScalar(document.PiC[i]); nil != err {
			return proof, signals, err
		}
		if len(document.PiB[i]) < 2 {
			return proof, signals, fmt.Errorf("proof file: %q is incomplete", fileName)
		}
		// the verifier wants the imaginary component first
		if proof.B[i][0], err = parseScalar(document.PiB[i][1]); nil != err {
			return proof, signals, err
		}
		if proof.B[i][1], err = parseScalar(document.PiB[i][0]); nil != err {
			return proof, signals, err
		}
	}

	for i := 0; i < snark.SignalCount; i += 1 {
		if signals[i], err = parseScalar(document.Signals[i]); nil != err {
			return proof, signals, err
		}
	}

	return proof, signals, nil
}

func parseScalar(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("scalar: %q is not a decimal number", s)
	}
	return n, nil
}
