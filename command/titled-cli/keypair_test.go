// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/principal"
)

const testPrivateKeyHex = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"

func TestNewSigner(t *testing.T) {
	s, err := newSigner(testPrivateKeyHex)
	assert.Nil(t, err, "new signer")
	assert.False(t, s.principal.IsZero(), "principal")

	// a 0x prefix is accepted and gives the same principal
	prefixed, err := newSigner("0x" + testPrivateKeyHex)
	assert.Nil(t, err, "prefixed signer")
	assert.Equal(t, s.principal, prefixed.principal, "principal match")

	_, err = newSigner("")
	assert.NotNil(t, err, "empty key")

	_, err = newSigner("not-hex")
	assert.NotNil(t, err, "bad key")
}

func TestSignVerifies(t *testing.T) {
	s, err := newSigner(testPrivateKeyHex)
	assert.Nil(t, err, "new signer")

	digest := canonical.NewDigest([]byte("signed payload"))
	signature, err := s.sign(digest)
	assert.Nil(t, err, "sign")
	assert.Equal(t, principal.SignatureLength, len(signature), "signature length")

	assert.True(t, principal.VerifyApprover(s.principal, digest, signature), "verify")

	other := canonical.NewDigest([]byte("different payload"))
	assert.False(t, principal.VerifyApprover(s.principal, other, signature), "wrong digest")
}
