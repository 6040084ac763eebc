// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - in process title escrow
//
// a title escrow tracks the beneficiary and holder of one issued
// title document; the authorization engine forwards already
// authorised operations here, so this package enforces only the
// escrow lifecycle rules, never signatures
package escrow

import (
	"sync"

	"github.com/bitmark-inc/titled/fault"
	"github.com/bitmark-inc/titled/principal"
)

// Status - lifecycle state of a title escrow
type Status int

// active → surrendered → shredded, transitions are one way
const (
	StatusActive Status = iota
	StatusSurrendered
	StatusShredded
)

// String - printable status
func (status Status) String() string {
	switch status {
	case StatusActive:
		return "active"
	case StatusSurrendered:
		return "surrendered"
	case StatusShredded:
		return "shredded"
	default:
		return "unknown"
	}
}

// Escrow - the operations the authorization engine can forward
//
// the position accessors let the engine resolve which principal's
// signature authorises an operation
type Escrow interface {
	Beneficiary() principal.Principal
	Holder() principal.Principal
	Nominate(nominee principal.Principal) error
	TransferBeneficiary(to principal.Principal) error
	TransferHolder(to principal.Principal) error
	TransferOwners(beneficiary principal.Principal, holder principal.Principal) error
	Surrender() error
	Shred() error
}

// TitleEscrow - escrow state for a single title document
type TitleEscrow struct {
	sync.RWMutex
	status      Status
	beneficiary principal.Principal
	holder      principal.Principal
	nominee     principal.Principal
}

// NewTitleEscrow - create an active escrow with its initial owners
func NewTitleEscrow(beneficiary principal.Principal, holder principal.Principal) (*TitleEscrow, error) {
	if beneficiary.IsZero() || holder.IsZero() {
		return nil, fault.InvalidPrincipal
	}
	return &TitleEscrow{
		status:      StatusActive,
		beneficiary: beneficiary,
		holder:      holder,
	}, nil
}

// Nominate - record the beneficiary's chosen successor
//
// a zero nominee clears a standing nomination
func (escrow *TitleEscrow) Nominate(nominee principal.Principal) error {
	escrow.Lock()
	defer escrow.Unlock()

	if StatusActive != escrow.status {
		return fault.EscrowNotActive
	}
	escrow.nominee = nominee
	return nil
}

// TransferBeneficiary - endorse the title to a new beneficiary
//
// while a nomination stands only the nominee can receive
func (escrow *TitleEscrow) TransferBeneficiary(to principal.Principal) error {
	escrow.Lock()
	defer escrow.Unlock()
	return escrow.transferBeneficiary(to)
}

// TransferHolder - pass possession to a new holder
func (escrow *TitleEscrow) TransferHolder(to principal.Principal) error {
	escrow.Lock()
	defer escrow.Unlock()
	return escrow.transferHolder(to)
}

// TransferOwners - endorse and pass possession in one step
func (escrow *TitleEscrow) TransferOwners(beneficiary principal.Principal, holder principal.Principal) error {
	escrow.Lock()
	defer escrow.Unlock()

	if err := escrow.transferBeneficiary(beneficiary); nil != err {
		return err
	}
	return escrow.transferHolder(holder)
}

// caller holds the lock
func (escrow *TitleEscrow) transferBeneficiary(to principal.Principal) error {
	if StatusActive != escrow.status {
		return fault.EscrowNotActive
	}
	if to.IsZero() {
		return fault.OperationToZeroPrincipal
	}
	if !escrow.nominee.IsZero() && to != escrow.nominee {
		return fault.BeneficiaryNotNominated
	}
	escrow.beneficiary = to
	escrow.nominee = principal.Principal{}
	return nil
}

// caller holds the lock
func (escrow *TitleEscrow) transferHolder(to principal.Principal) error {
	if StatusActive != escrow.status {
		return fault.EscrowNotActive
	}
	if to.IsZero() {
		return fault.OperationToZeroPrincipal
	}
	escrow.holder = to
	return nil
}

// Surrender - return the title to the registry
func (escrow *TitleEscrow) Surrender() error {
	escrow.Lock()
	defer escrow.Unlock()

	if StatusActive != escrow.status {
		return fault.EscrowNotActive
	}
	escrow.status = StatusSurrendered
	return nil
}

// Shred - retire a surrendered title permanently
func (escrow *TitleEscrow) Shred() error {
	escrow.Lock()
	defer escrow.Unlock()

	if StatusSurrendered != escrow.status {
		return fault.EscrowNotSurrendered
	}
	escrow.status = StatusShredded
	return nil
}

// Status - current lifecycle state
func (escrow *TitleEscrow) Status() Status {
	escrow.RLock()
	defer escrow.RUnlock()
	return escrow.status
}

// Beneficiary - current beneficiary
func (escrow *TitleEscrow) Beneficiary() principal.Principal {
	escrow.RLock()
	defer escrow.RUnlock()
	return escrow.beneficiary
}

// Holder - current holder
func (escrow *TitleEscrow) Holder() principal.Principal {
	escrow.RLock()
	defer escrow.RUnlock()
	return escrow.holder
}

// Nominee - standing nomination, zero if none
func (escrow *TitleEscrow) Nominee() principal.Principal {
	escrow.RLock()
	defer escrow.RUnlock()
	return escrow.nominee
}
