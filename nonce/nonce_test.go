// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonce_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/titled/nonce"
	"github.com/bitmark-inc/titled/principal"
	"github.com/bitmark-inc/titled/storage"
)

const databaseFileName = "nonce-test.leveldb"

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func TestCheckAndAdvance(t *testing.T) {
	setup(t)
	defer teardown()

	alice := principal.Principal{0xa1}
	bob := principal.Principal{0xb0}

	if n := nonce.Current(alice); 0 != n {
		t.Fatalf("unseen principal nonce: %d  expected: 0", n)
	}

	// wrong nonce fails closed
	if nonce.CheckAndAdvance(alice, 5) {
		t.Fatal("advanced on mismatched nonce")
	}
	if n := nonce.Current(alice); 0 != n {
		t.Fatalf("ledger changed by failed check: %d", n)
	}

	// exact sequence advances by one each time
	for expected := uint64(0); expected < 10; expected += 1 {
		if n := nonce.Current(alice); expected != n {
			t.Fatalf("nonce: %d  expected: %d", n, expected)
		}
		if !nonce.CheckAndAdvance(alice, expected) {
			t.Fatalf("valid nonce %d rejected", expected)
		}
	}
	if n := nonce.Current(alice); 10 != n {
		t.Fatalf("final nonce: %d  expected: 10", n)
	}

	// replay of a consumed nonce is rejected
	if nonce.CheckAndAdvance(alice, 9) {
		t.Fatal("replayed nonce accepted")
	}

	// ledgers are per principal
	if n := nonce.Current(bob); 0 != n {
		t.Fatalf("bob inherited alice's nonce: %d", n)
	}
	if !nonce.CheckAndAdvance(bob, 0) {
		t.Fatal("bob's first nonce rejected")
	}
}
