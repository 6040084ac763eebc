// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package principal

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/titled/fault"
)

// PrincipalLength - number of bytes in a principal identity
const PrincipalLength = 20

// Principal - a public-key-derived identity able to hold roles and
// approve operations
//
// the zero value means "no principal" and is never a valid approver
type Principal [PrincipalLength]byte

// IsZero - check for the null principal
func (p Principal) IsZero() bool {
	return Principal{} == p
}

// String - convert a principal to 0x prefixed hex for use by the fmt package (for %s)
func (p Principal) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

// GoString - convert a principal to hex for use by the fmt package (for %#v)
func (p Principal) GoString() string {
	return "<principal:" + hex.EncodeToString(p[:]) + ">"
}

// MarshalText - convert a principal to 0x prefixed hex text
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - convert hex text, with or without 0x prefix, into a principal
func (p *Principal) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(string(s), "0x")
	if PrincipalLength != hex.DecodedLen(len(text)) {
		return fault.InvalidPrincipal
	}
	buffer, err := hex.DecodeString(text)
	if nil != err {
		return fault.InvalidPrincipal
	}
	copy(p[:], buffer)
	return nil
}

// FromHexString - parse a 0x prefixed hex principal
func FromHexString(s string) (Principal, error) {
	var p Principal
	err := p.UnmarshalText([]byte(s))
	return p, err
}

// FromBytes - convert and validate a binary byte slice to a principal
func FromBytes(buffer []byte) (Principal, error) {
	var p Principal
	if PrincipalLength != len(buffer) {
		return p, fault.InvalidPrincipal
	}
	copy(p[:], buffer)
	return p, nil
}
