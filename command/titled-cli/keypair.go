// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ecdsa"
	"errors"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/principal"
)

// signer - a local secp256k1 key and its principal
type signer struct {
	key       *ecdsa.PrivateKey
	principal principal.Principal
}

// load a hex encoded private key from the command line
func newSigner(hexKey string) (*signer, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if "" == hexKey {
		return nil, errors.New("missing private key")
	}

	key, err := ethcrypto.HexToECDSA(hexKey)
	if nil != err {
		return nil, err
	}

	address := ethcrypto.PubkeyToAddress(key.PublicKey)
	p, err := principal.FromBytes(address[:])
	if nil != err {
		return nil, err
	}

	return &signer{
		key:       key,
		principal: p,
	}, nil
}

// sign a canonical digest the way the daemon verifies it
func (s *signer) sign(digest canonical.Digest) (principal.Signature, error) {
	signed := principal.EnvelopeDigest(digest)
	return ethcrypto.Sign(signed[:], s.key)
}
