// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"math/big"
)

// AddressLength - number of bytes in a canonical address field
const AddressLength = 20

// word size for integer fields
const uintLength = 32

// Hasher - accumulates the canonical fixed-width encoding of an
// ordered sequence of typed fields
//
// the concatenation has no separators and no length prefixes, so the
// order and type of the append calls IS the authorization contract:
// two field sequences hash equal exactly when their canonical
// encodings are byte identical
type Hasher struct {
	buffer []byte
}

// NewHasher - create an empty hasher
func NewHasher() *Hasher {
	return &Hasher{
		buffer: make([]byte, 0, 256),
	}
}

// Address - append a 20 byte address field
func (h *Hasher) Address(address [AddressLength]byte) *Hasher {
	h.buffer = append(h.buffer, address[:]...)
	return h
}

// Uint64 - append an unsigned integer as a 32 byte big endian word
func (h *Hasher) Uint64(value uint64) *Hasher {
	var word [uintLength]byte
	word[24] = byte(value >> 56)
	word[25] = byte(value >> 48)
	word[26] = byte(value >> 40)
	word[27] = byte(value >> 32)
	word[28] = byte(value >> 24)
	word[29] = byte(value >> 16)
	word[30] = byte(value >> 8)
	word[31] = byte(value)
	h.buffer = append(h.buffer, word[:]...)
	return h
}

// mask to reduce oversize integers to one word
var uint256Mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*uintLength), big.NewInt(1))

// Uint256 - append a big integer as a 32 byte big endian word
//
// values wider than 256 bits are reduced to their low 256 bits,
// negative values are reduced modulo 2^256
func (h *Hasher) Uint256(value *big.Int) *Hasher {
	var word [uintLength]byte
	v := value
	if v.Sign() < 0 || v.BitLen() > 8*uintLength {
		v = new(big.Int).And(v, uint256Mask)
	}
	v.FillBytes(word[:])
	h.buffer = append(h.buffer, word[:]...)
	return h
}

// Bytes - append a raw byte string field
func (h *Hasher) Bytes(data []byte) *Hasher {
	h.buffer = append(h.buffer, data...)
	return h
}

// Digest - the Keccak-256 of the accumulated encoding
//
// the hasher remains usable; further appends extend the same sequence
func (h *Hasher) Digest() Digest {
	return NewDigest(h.buffer)
}
