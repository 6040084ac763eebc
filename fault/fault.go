// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// AuthorizationError - request was well formed but not authorised
	// (bad signature, stale nonce, failed proof)
	AuthorizationError GenericError

	// ExistsError - record create conflicts with an existing record
	ExistsError GenericError

	// InvalidError - caller supplied an unusable value
	InvalidError GenericError

	// LengthError - caller supplied data of the wrong size
	LengthError GenericError

	// NotFoundError - referenced record does not exist
	NotFoundError GenericError

	// ProcessError - internal failure or failed delegate call
	ProcessError GenericError

	// RecordError - stored record is unusable
	RecordError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	AssetAlreadyExists           = ExistsError("asset already exists")
	AssetNotFound                = NotFoundError("asset not found")
	BeneficiaryNotNominated      = AuthorizationError("beneficiary was not nominated")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DataInconsistent             = RecordError("data inconsistent")
	EmptyPayload                 = InvalidError("payload is empty")
	EscrowAlreadyExists          = ExistsError("escrow already exists")
	EscrowNotActive              = ProcessError("title escrow is not active")
	EscrowNotFound               = NotFoundError("escrow not found")
	EscrowNotSurrendered         = ProcessError("title escrow is not surrendered")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidLeiDate               = InvalidError("lei verification date is not set")
	InvalidNonce                 = AuthorizationError("nonce does not match ledger")
	InvalidPrincipal             = InvalidError("invalid principal")
	InvalidProofComponent        = InvalidError("proof component is zero")
	InvalidPublicSignal          = InvalidError("public signal is zero")
	InvalidSignature             = AuthorizationError("invalid signature")
	InvalidSignatureLength       = LengthError("signature length is invalid")
	InvalidVerifyingKey          = InvalidError("verifying key is invalid")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	MissingTarget                = InvalidError("target is missing")
	NotEscrowAuthority           = AuthorizationError("principal is not the escrow authority")
	NotInitialised               = ProcessError("not initialised")
	OperationToZeroPrincipal     = InvalidError("operation references zero principal")
	PrincipalLacksRole           = AuthorizationError("principal lacks required role")
	ProofRecordAlreadyExists     = ExistsError("proof record already exists")
	ProofRecordNotFound          = NotFoundError("proof record not found")
	ProofVerificationFailed      = AuthorizationError("proof verification failed")
	RateLimiting                 = ProcessError("rate limiting active")
	SignatureRecoveryFailed      = ProcessError("signature recovery failed")
	TokenAlreadyIssued           = ExistsError("token already issued")
	TokenNotFound                = NotFoundError("token not found")
	TokenNotOwned                = AuthorizationError("token is not owned by sender")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
