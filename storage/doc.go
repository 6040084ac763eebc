// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a single LevelDB database split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. asset id  = 32 byte identifier
// 4. principal = 20 byte identity
// 5. count     = big endian uint64 (8 bytes)
//
// Assets:
//
//   A ++ asset id     - packed asset record
//
// Counters:
//
//   C ++ name         - count
//                       names: "token" (last allocated token id)
//                              "proof" (number of proof records)
//
// Nonces:
//
//   N ++ principal    - count (next expected nonce)
//
// Proofs:
//
//   P ++ asset id     - packed proof record (proof ++ public signals)
//
// Tokens:
//
//   T ++ count        - asset id ++ owner principal
//                       (count is the token id)
//
// Testing:
//
//   Z ++ key          - test data (only in test mode)
package storage
