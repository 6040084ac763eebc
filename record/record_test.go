// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/bitmark-inc/titled/canonical"
	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/record"
	"github.com/bitmark-inc/titled/snark"
)

func makeAsset() *record.AssetRecord {
	return &record.AssetRecord{
		Id:                  record.AssetId{0x01, 0x02, 0x03},
		TokenId:             0,
		MerkleRoot:          canonical.NewDigest([]byte("title document v1")),
		AssetType:           "bill-of-lading",
		LegalEntityId:       "5493001KJTIIGC8Y1R12",
		LeiVerificationDate: 20260801,
		Originator:          principal.Principal{0xaa, 0xbb},
		Status:              "active",
		AuxiliaryCount:      2,
	}
}

func TestAssetRecordPackUnpack(t *testing.T) {

	asset := makeAsset()
	asset.TokenId = 7

	packed, err := asset.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, n, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Fatalf("unpack consumed: %d  expected: %d", n, len(packed))
	}

	back, ok := unpacked.(*record.AssetRecord)
	if !ok {
		t.Fatalf("unpack type: %T", unpacked)
	}
	if !reflect.DeepEqual(asset, back) {
		t.Fatalf("unpacked: %+v  expected: %+v", back, asset)
	}
}

func TestAssetRecordFieldChecks(t *testing.T) {

	breakers := []struct {
		name  string
		apply func(a *record.AssetRecord)
	}{
		{"zero id", func(a *record.AssetRecord) { a.Id = record.AssetId{} }},
		{"zero merkle root", func(a *record.AssetRecord) { a.MerkleRoot = canonical.Digest{} }},
		{"empty asset type", func(a *record.AssetRecord) { a.AssetType = "" }},
		{"empty lei", func(a *record.AssetRecord) { a.LegalEntityId = "" }},
		{"zero date", func(a *record.AssetRecord) { a.LeiVerificationDate = 0 }},
		{"zero originator", func(a *record.AssetRecord) { a.Originator = principal.Principal{} }},
		{"empty status", func(a *record.AssetRecord) { a.Status = "" }},
	}

	for _, item := range breakers {
		asset := makeAsset()
		item.apply(asset)
		err := asset.CheckFields()
		if nil == err {
			t.Fatalf("%s accepted", item.name)
		}
		if !fault.IsErrInvalid(err) {
			t.Fatalf("%s error class: %T", item.name, err)
		}
	}

	if err := makeAsset().CheckFields(); nil != err {
		t.Fatalf("valid record rejected: %s", err)
	}
}

func TestProofRecordPackUnpack(t *testing.T) {

	proofRecord := &record.ProofRecord{
		Proof: snark.Proof{
			A: [2]*big.Int{big.NewInt(101), big.NewInt(102)},
			B: [2][2]*big.Int{
				{big.NewInt(201), big.NewInt(202)},
				{big.NewInt(203), big.NewInt(204)},
			},
			C: [2]*big.Int{big.NewInt(301), big.NewInt(302)},
		},
		Signals: snark.PublicSignals{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
	}

	packed, err := proofRecord.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, n, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Fatalf("unpack consumed: %d  expected: %d", n, len(packed))
	}

	back, ok := unpacked.(*record.ProofRecord)
	if !ok {
		t.Fatalf("unpack type: %T", unpacked)
	}
	if !reflect.DeepEqual(proofRecord, back) {
		t.Fatalf("unpacked: %+v  expected: %+v", back, proofRecord)
	}
}

func TestUnpackRejectsGarbage(t *testing.T) {

	testData := []record.Packed{
		{},
		{0x00},       // null tag
		{0x7f},       // out of range tag
		{0x01, 0x05}, // truncated asset record
	}
	for i, packed := range testData {
		if _, _, err := packed.Unpack(); nil == err {
			t.Fatalf("%d: garbage %x unpacked", i, packed)
		}
	}
}

func TestAssetIdText(t *testing.T) {

	id := record.AssetId{0xde, 0xad, 0xbe, 0xef}
	text, err := id.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var back record.AssetId
	if err := back.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if id != back {
		t.Fatalf("roundtrip: %v  expected: %v", back, id)
	}

	if err := back.UnmarshalText([]byte("zz")); nil == err {
		t.Fatal("short hex accepted")
	}
}
