// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package principal

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/fault"
)

// personal-message envelope prefix; the "32" is the byte length of
// the wrapped digest and must track canonical.DigestLength
const envelopePrefix = "\x19Ethereum Signed Message:\n32"

// EnvelopeDigest - wrap a raw digest in the personal-message signing
// envelope and re-hash
//
// must stay bit compatible with the personal_sign convention so that
// signatures produced by standard wallets verify here
func EnvelopeDigest(raw canonical.Digest) canonical.Digest {
	return canonical.NewHasher().
		Bytes([]byte(envelopePrefix)).
		Bytes(raw[:]).
		Digest()
}

// Recover - recover the signing principal from a signed digest
//
// the signature must be exactly 65 bytes: r ++ s ++ v with v either
// {27, 28} (wallet convention) or {0, 1} (raw recovery id)
func Recover(signedDigest canonical.Digest, signature Signature) (Principal, error) {
	if SignatureLength != len(signature) {
		return Principal{}, fault.InvalidSignatureLength
	}

	// normalize the recovery id
	sig := make([]byte, SignatureLength)
	copy(sig, signature)
	switch sig[64] {
	case 0, 1:
	case 27, 28:
		sig[64] -= 27
	default:
		return Principal{}, fault.SignatureRecoveryFailed
	}

	publicKey, err := ethcrypto.Ecrecover(signedDigest[:], sig)
	if nil != err {
		return Principal{}, fault.SignatureRecoveryFailed
	}

	// identity is the low 20 bytes of Keccak-256 over the
	// uncompressed public key without its 0x04 prefix
	var p Principal
	digest := canonical.NewDigest(publicKey[1:])
	copy(p[:], digest[canonical.DigestLength-PrincipalLength:])
	return p, nil
}

// VerifyApprover - check that a payload digest was approved by the
// expected principal
//
// a mismatched or unrecoverable signature is an authorization
// failure, not a system fault, so the result is a plain bool
func VerifyApprover(expected Principal, payloadDigest canonical.Digest, signature Signature) bool {
	if expected.IsZero() {
		return false
	}
	recovered, err := Recover(EnvelopeDigest(payloadDigest), signature)
	if nil != err {
		return false
	}
	return recovered == expected
}
