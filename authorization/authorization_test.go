// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorization_test

import (
	"math/big"
	"os"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/authorization"
	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/mocks"
	"github.com/bitmark-inc/titled/nonce"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/snark"
	"github.com/bitmark-inc/titled/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = "authorization-test.leveldb"

	// fixed keys so the expected principals are stable
	testPrivateKeyHex   = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
	secondPrivateKeyHex = "8a1f9a8f95be41cd7ccb6168179afb4504aefe388d1e14474d32c45c72ce7b7a"
)

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
	_ = os.RemoveAll(databaseFileName)
}

func testKey(t *testing.T) (principal.Principal, func(canonical.Digest) principal.Signature) {
	return keyFromHex(t, testPrivateKeyHex)
}

func keyFromHex(t *testing.T, keyHex string) (principal.Principal, func(canonical.Digest) principal.Signature) {
	t.Helper()

	key, err := ethcrypto.HexToECDSA(keyHex)
	if nil != err {
		t.Fatalf("bad test key: %s", err)
	}

	address := ethcrypto.PubkeyToAddress(key.PublicKey)
	p, err := principal.FromBytes(address[:])
	if nil != err {
		t.Fatalf("principal from address: %s", err)
	}

	return p, func(digest canonical.Digest) principal.Signature {
		signed := principal.EnvelopeDigest(digest)
		sig, err := ethcrypto.Sign(signed[:], key)
		if nil != err {
			t.Fatalf("sign: %s", err)
		}
		return principal.Signature(sig)
	}
}

// an always accepting proof validator for signature path tests
func acceptingValidator() *snark.Validator {
	return snark.NewValidator(acceptAll{})
}

type acceptAll struct{}

func (acceptAll) VerifyProof(proof snark.Proof, signals snark.PublicSignals) bool {
	return true
}

type rejectAll struct{}

func (rejectAll) VerifyProof(proof snark.Proof, signals snark.PublicSignals) bool {
	return false
}

func makeProof() (snark.Proof, snark.PublicSignals) {
	proof := snark.Proof{
		A: [2]*big.Int{big.NewInt(1), big.NewInt(2)},
		B: [2][2]*big.Int{
			{big.NewInt(3), big.NewInt(4)},
			{big.NewInt(5), big.NewInt(6)},
		},
		C: [2]*big.Int{big.NewInt(7), big.NewInt(8)},
	}
	signals := snark.PublicSignals{big.NewInt(9), big.NewInt(10), big.NewInt(11)}
	return proof, signals
}

// the canonical hash an approver signs for an escrow operation
func requestDigest(request *authorization.EscrowRequest) canonical.Digest {
	hasher := canonical.NewHasher().
		Address(request.Ref).
		Uint64(uint64(request.Kind))

	switch request.Kind {
	case authorization.Nominate, authorization.TransferBeneficiary, authorization.TransferHolder:
		hasher.Address(request.To)
	case authorization.TransferOwners:
		hasher.Address(request.To).Address(request.To2)
	}

	return hasher.
		Bytes(request.Payload).
		Uint64(request.Nonce).
		Digest()
}

func TestAuthorizeTransferHolder(t *testing.T) {
	setup(t)
	defer teardown()

	owner, sign := testKey(t)
	bob := principal.Principal{0xb0}

	titleEscrow, err := escrow.NewTitleEscrow(owner, owner)
	assert.Nil(t, err, "new escrow")

	engine := authorization.NewEngine(acceptingValidator(), nil)

	request := &authorization.EscrowRequest{
		Escrow:  titleEscrow,
		Ref:     escrow.DeriveRef([32]byte{0x01}, 1),
		Kind:    authorization.TransferHolder,
		Owner:   owner,
		To:      bob,
		Payload: []byte("approved-transferHolder"),
		Nonce:   0,
	}
	request.Signature = sign(requestDigest(request))

	err = engine.Authorize(request)
	assert.Nil(t, err, "authorize")
	assert.Equal(t, bob, titleEscrow.Holder(), "holder")
	assert.Equal(t, uint64(1), nonce.Current(owner), "nonce after success")

	// an identical replay is rejected by the nonce comparison
	err = engine.Authorize(request)
	assert.Equal(t, fault.InvalidNonce, err, "replay")
	assert.Equal(t, uint64(1), nonce.Current(owner), "nonce after replay")
}

func TestAuthorizeBurnsNonceOnBadSignature(t *testing.T) {
	setup(t)
	defer teardown()

	owner, sign := testKey(t)
	bob := principal.Principal{0xb0}

	titleEscrow, _ := escrow.NewTitleEscrow(owner, owner)
	engine := authorization.NewEngine(acceptingValidator(), nil)

	request := &authorization.EscrowRequest{
		Escrow:    titleEscrow,
		Ref:       escrow.DeriveRef([32]byte{0x01}, 1),
		Kind:      authorization.Nominate,
		Owner:     owner,
		To:        bob,
		Payload:   []byte("approved-nominate"),
		Nonce:     0,
		Signature: make(principal.Signature, principal.SignatureLength),
	}

	// a garbage signature fails, but the nonce is already consumed
	err := engine.Authorize(request)
	assert.Equal(t, fault.InvalidSignature, err, "bad signature")
	assert.Equal(t, uint64(1), nonce.Current(owner), "nonce burned")

	// signing over the stale nonce is now useless
	request.Signature = sign(requestDigest(request))
	err = engine.Authorize(request)
	assert.Equal(t, fault.InvalidNonce, err, "stale nonce")

	// the current nonce succeeds
	request.Nonce = 1
	request.Signature = sign(requestDigest(request))
	err = engine.Authorize(request)
	assert.Nil(t, err, "fresh nonce")
	assert.Equal(t, bob, titleEscrow.Nominee(), "nominee")
}

func TestAuthorizeValidation(t *testing.T) {
	setup(t)
	defer teardown()

	owner, _ := testKey(t)
	bob := principal.Principal{0xb0}
	ref := escrow.DeriveRef([32]byte{0x01}, 1)
	titleEscrow, _ := escrow.NewTitleEscrow(owner, owner)

	engine := authorization.NewEngine(acceptingValidator(), nil)

	err := engine.Authorize(&authorization.EscrowRequest{
		Ref: ref, Kind: authorization.Surrender, Owner: owner,
	})
	assert.Equal(t, fault.MissingTarget, err, "nil escrow")

	err = engine.Authorize(&authorization.EscrowRequest{
		Escrow: titleEscrow, Ref: ref, Kind: authorization.Surrender,
	})
	assert.Equal(t, fault.InvalidPrincipal, err, "zero owner")

	err = engine.Authorize(&authorization.EscrowRequest{
		Escrow: titleEscrow, Ref: ref, Kind: authorization.Nominate, Owner: owner,
	})
	assert.Equal(t, fault.OperationToZeroPrincipal, err, "zero destination")

	err = engine.Authorize(&authorization.EscrowRequest{
		Escrow: titleEscrow, Ref: ref, Kind: authorization.TransferOwners,
		Owner: owner, To: bob,
	})
	assert.Equal(t, fault.OperationToZeroPrincipal, err, "zero second destination")

	err = engine.Authorize(&authorization.EscrowRequest{
		Escrow: titleEscrow, Ref: ref, Kind: authorization.Nominate,
		Owner: owner, To: bob, Signature: make(principal.Signature, 64),
	})
	assert.Equal(t, fault.InvalidSignatureLength, err, "short signature")

	// none of the rejected requests may touch the ledger
	assert.Equal(t, uint64(0), nonce.Current(owner), "nonce untouched")
}

func TestAuthorizeRejectsUnrelatedPrincipal(t *testing.T) {
	setup(t)
	defer teardown()

	alice, _ := testKey(t)
	mallory, signMallory := keyFromHex(t, secondPrivateKeyHex)

	titleEscrow, err := escrow.NewTitleEscrow(alice, alice)
	assert.Nil(t, err, "new escrow")

	engine := authorization.NewEngine(acceptingValidator(), nil)

	// a stranger naming themselves as owner fails the authority
	// binding before the ledger is touched
	request := &authorization.EscrowRequest{
		Escrow: titleEscrow,
		Ref:    escrow.DeriveRef([32]byte{0x01}, 1),
		Kind:   authorization.TransferHolder,
		Owner:  mallory,
		To:     mallory,
		Nonce:  0,
	}
	request.Signature = signMallory(requestDigest(request))

	err = engine.Authorize(request)
	assert.Equal(t, fault.NotEscrowAuthority, err, "stranger as owner")
	assert.Equal(t, alice, titleEscrow.Holder(), "holder unchanged")
	assert.Equal(t, uint64(0), nonce.Current(mallory), "stranger nonce untouched")
	assert.Equal(t, uint64(0), nonce.Current(alice), "holder nonce untouched")

	// naming the true holder but signing with another key fails the
	// signature check
	request.Owner = alice
	request.Signature = signMallory(requestDigest(request))

	err = engine.Authorize(request)
	assert.Equal(t, fault.InvalidSignature, err, "stranger signature")
	assert.Equal(t, alice, titleEscrow.Holder(), "holder still unchanged")
}

func TestAuthorizeBindsOperationToPosition(t *testing.T) {
	setup(t)
	defer teardown()

	beneficiary, sign := testKey(t)
	holder := principal.Principal{0xd0}
	carol := principal.Principal{0xcc}

	titleEscrow, err := escrow.NewTitleEscrow(beneficiary, holder)
	assert.Nil(t, err, "new escrow")

	engine := authorization.NewEngine(acceptingValidator(), nil)
	ref := escrow.DeriveRef([32]byte{0x03}, 3)

	// the beneficiary does not hold the document
	request := &authorization.EscrowRequest{
		Escrow: titleEscrow,
		Ref:    ref,
		Kind:   authorization.TransferHolder,
		Owner:  beneficiary,
		To:     carol,
		Nonce:  0,
	}
	request.Signature = sign(requestDigest(request))
	err = engine.Authorize(request)
	assert.Equal(t, fault.NotEscrowAuthority, err, "beneficiary moving possession")
	assert.Equal(t, holder, titleEscrow.Holder(), "holder unchanged")

	// transfer-owners needs a sole owner holding both positions
	request = &authorization.EscrowRequest{
		Escrow: titleEscrow,
		Ref:    ref,
		Kind:   authorization.TransferOwners,
		Owner:  beneficiary,
		To:     carol,
		To2:    carol,
		Nonce:  0,
	}
	request.Signature = sign(requestDigest(request))
	err = engine.Authorize(request)
	assert.Equal(t, fault.NotEscrowAuthority, err, "split owner transfer-owners")

	// beneficiary operations still pass
	request = &authorization.EscrowRequest{
		Escrow: titleEscrow,
		Ref:    ref,
		Kind:   authorization.Nominate,
		Owner:  beneficiary,
		To:     carol,
		Nonce:  0,
	}
	request.Signature = sign(requestDigest(request))
	err = engine.Authorize(request)
	assert.Nil(t, err, "nominate")
	assert.Equal(t, carol, titleEscrow.Nominee(), "nominee")
}

func TestAuthorizeSurfacesEscrowError(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	owner, sign := testKey(t)

	mockEscrow := mocks.NewMockEscrow(ctl)
	mockEscrow.EXPECT().Holder().Return(owner).Times(1)
	mockEscrow.EXPECT().Shred().Return(fault.EscrowNotSurrendered).Times(1)

	engine := authorization.NewEngine(acceptingValidator(), nil)

	request := &authorization.EscrowRequest{
		Escrow:  mockEscrow,
		Ref:     escrow.DeriveRef([32]byte{0x02}, 2),
		Kind:    authorization.Shred,
		Owner:   owner,
		Payload: []byte("approved-shred"),
		Nonce:   0,
	}
	request.Signature = sign(requestDigest(request))

	err := engine.Authorize(request)
	assert.Equal(t, fault.EscrowNotSurrendered, err, "escrow error passthrough")
}

func TestExecute(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	proof, signals := makeProof()
	engine := authorization.NewEngine(acceptingValidator(), nil)

	_, err := engine.Execute(nil, []byte{1}, proof, signals)
	assert.Equal(t, fault.MissingTarget, err, "nil target")

	target := mocks.NewMockTarget(ctl)

	_, err = engine.Execute(target, []byte{}, proof, signals)
	assert.Equal(t, fault.EmptyPayload, err, "empty payload")

	payload := []byte("issue asset 7")
	target.EXPECT().Call(payload).Return([]byte("ok"), nil).Times(1)

	result, err := engine.Execute(target, payload, proof, signals)
	assert.Nil(t, err, "execute")
	assert.Equal(t, []byte("ok"), result, "result")

	// delegate failure surfaces with its reason
	target.EXPECT().Call(payload).Return(nil, fault.AssetNotFound).Times(1)
	_, err = engine.Execute(target, payload, proof, signals)
	assert.True(t, fault.IsErrProcess(err), "delegate error class")
	assert.Contains(t, err.Error(), fault.AssetNotFound.Error(), "delegate reason")

	// a failing proof never reaches the target
	rejecting := authorization.NewEngine(snark.NewValidator(rejectAll{}), nil)
	_, err = rejecting.Execute(target, payload, proof, signals)
	assert.Equal(t, fault.ProofVerificationFailed, err, "proof rejected")
}

func TestExecuteTransferToken(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	operator, sign := testKey(t)
	from := principal.Principal{0xf0}
	to := principal.Principal{0x70}
	data := []byte("endorsement")

	registry := mocks.NewMockRegistry(ctl)

	digest := canonical.NewHasher().
		Address(from).
		Address(to).
		Uint64(7).
		Uint64(1).
		Bytes(data).
		Address(operator).
		Uint64(0).
		Digest()
	signature := sign(digest)

	// without the attorney role an operator can only move their own
	// tokens, even with a valid signature and nonce
	ungated := authorization.NewEngine(acceptingValidator(), nil)
	err := ungated.ExecuteTransferToken(registry, from, to, 7, 1, data, operator, 0, signature)
	assert.Equal(t, fault.PrincipalLacksRole, err, "operator without authority")
	assert.Equal(t, uint64(0), nonce.Current(operator), "nonce untouched")

	engine := authorization.NewEngine(acceptingValidator(),
		func(p principal.Principal, role string) bool {
			return p == operator && authorization.RoleAttorney == role
		})

	// a mismatched nonce is rejected and still burns nothing later
	err = engine.ExecuteTransferToken(registry, from, to, 7, 1, data, operator, 5, signature)
	assert.Equal(t, fault.InvalidNonce, err, "wrong nonce")

	registry.EXPECT().TransferToken(from, to, uint64(7), uint64(1), data, operator).Return(nil).Times(1)

	err = engine.ExecuteTransferToken(registry, from, to, 7, 1, data, operator, 0, signature)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, uint64(1), nonce.Current(operator), "operator nonce")

	err = engine.ExecuteTransferToken(registry, from, to, 7, 1, data, operator, 0, signature)
	assert.Equal(t, fault.InvalidNonce, err, "replay")
}

func TestExecuteTransferTokenBySender(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sender, sign := testKey(t)
	to := principal.Principal{0x70}

	registry := mocks.NewMockRegistry(ctl)
	engine := authorization.NewEngine(acceptingValidator(), nil)

	digest := authorization.TransferTokenDigest(sender, to, 9, 1, nil, sender, 0)
	signature := sign(digest)

	registry.EXPECT().TransferToken(sender, to, uint64(9), uint64(1), nil, sender).Return(nil).Times(1)

	// no role needed when the operator is the sender
	err := engine.ExecuteTransferToken(registry, sender, to, 9, 1, nil, sender, 0, signature)
	assert.Nil(t, err, "self transfer")
}

func TestExecuteIssueToken(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	operator, sign := testKey(t)
	owner := principal.Principal{0x11}
	id := [32]byte{0x42}
	data := []byte("mint")

	registry := mocks.NewMockRegistry(ctl)

	digest := canonical.NewHasher().
		Bytes(id[:]).
		Address(owner).
		Bytes([]byte("issued")).
		Bytes(data).
		Address(operator).
		Uint64(0).
		Digest()
	signature := sign(digest)

	// role gating runs before anything else
	denied := authorization.NewEngine(acceptingValidator(),
		func(p principal.Principal, role string) bool { return false })
	_, err := denied.ExecuteIssueToken(registry, id, owner, "issued", data, operator, 0, signature)
	assert.Equal(t, fault.PrincipalLacksRole, err, "role denied")
	assert.Equal(t, uint64(0), nonce.Current(operator), "nonce untouched")

	engine := authorization.NewEngine(acceptingValidator(),
		func(p principal.Principal, role string) bool {
			return p == operator && authorization.RoleMinter == role
		})

	registry.EXPECT().IssueToken(gomock.Any(), owner, "issued").Return(uint64(1), nil).Times(1)

	tokenId, err := engine.ExecuteIssueToken(registry, id, owner, "issued", data, operator, 0, signature)
	assert.Nil(t, err, "issue")
	assert.Equal(t, uint64(1), tokenId, "token id")
}
