// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AddressIsNil                  = InvalidError("address is nil")
	AlreadyInitialised            = ExistsError("already initialised")
	AlreadyIssued                 = ExistsError("bank is already issued")
	BalanceOverflow               = ProcessError("balance sum overflow")
	BankAddressMismatch           = InvalidError("bank output address mismatch")
	BankNotIssued                 = NotFoundError("bank is not issued")
	BankTokenMissing              = NotFoundError("bank token is missing")
	BufferCapacityLimit           = ProcessError("buffer capacity limit")
	CannotDecodeAccount           = RecordError("cannot decode account")
	CannotDecodePrivateKey        = RecordError("cannot decode private key")
	CannotDecodeSeed              = RecordError("cannot decode seed")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = ProcessError("checksum mismatch")
	ConnectIsRequired             = InvalidError("connect is required")
	ConservationViolation         = InvalidError("token conservation violated")
	CryptoFailed                  = ProcessError("crypto failed")
	DataFieldEmpty                = InvalidError("data field empty")
	DatabaseIsNotSet              = InvalidError("database is not set")
	DeltaOutOfRange               = ProcessError("balance delta out of range")
	DescriptionIsRequired         = InvalidError("description is required")
	DoubleSpendAttempt            = InvalidError("double spend attempt")
	FileDoesNotExist              = NotFoundError("file does not exist")
	IdentityNameAlreadyExists     = ExistsError("identity name already exists")
	IdentityNameIsRequired        = InvalidError("identity name is required")
	IdentityNameNotFound          = NotFoundError("identity name not found")
	IncompatibleOptions           = InvalidError("incompatible options")
	IncorrectChain                = InvalidError("incorrect chain")
	InsufficientFee               = InvalidError("redemption fee is insufficient")
	InvalidChain                  = InvalidError("invalid chain")
	InvalidCount                  = InvalidError("invalid count")
	InvalidCursor                 = InvalidError("invalid cursor")
	InvalidDnsTxtRecord           = InvalidError("invalid dns txt record")
	InvalidFingerprint            = InvalidError("invalid fingerprint")
	InvalidIdentityName           = InvalidError("invalid identity name")
	InvalidIpAddress              = InvalidError("invalid ip Address")
	InvalidItem                   = InvalidError("invalid item")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidLoggerChannel          = InvalidError("invalid logger channel")
	InvalidMasterQuantity         = InvalidError("master token quantity is invalid")
	InvalidNodeDomain             = InvalidError("invalid node domain")
	InvalidNonce                  = InvalidError("invalid nonce")
	InvalidPeerResponse           = InvalidError("invalid peer response")
	InvalidPortNumber             = InvalidError("invalid port number")
	InvalidPrivateKey             = InvalidError("invalid private key")
	InvalidPrivateKeyFile         = InvalidError("invalid private key file")
	InvalidProofQuantity          = InvalidError("mining proof quantity is invalid")
	InvalidPublicKey              = InvalidError("invalid public key")
	InvalidPublicKeyFile          = InvalidError("invalid public key file")
	InvalidRedeemer               = InvalidError("invalid redeemer")
	InvalidSeedHeader             = InvalidError("invalid seed header")
	InvalidSeedLength             = InvalidError("invalid seed length")
	InvalidSignature              = InvalidError("invalid signature")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	InvalidTokenName              = InvalidError("invalid token name")
	IssuanceAnchorMissing         = InvalidError("issuance anchor not consumed")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	KeyFileNotFound               = NotFoundError("key file not found")
	LedgerDataMissing             = NotFoundError("ledger data is missing")
	LedgerKeysOutOfOrder          = RecordError("ledger snapshot keys out of order")
	MalformedLedger               = RecordError("ledger snapshot is malformed")
	MasterAddressMismatch         = InvalidError("master token is not at the bank address")
	MasterTokenMissing            = NotFoundError("master token is missing")
	MembershipViolation           = InvalidError("ledger member dropped")
	MissingParameters             = LengthError("missing parameters")
	NoAnnounceAddrs               = InvalidError("no announce addrs")
	NoListenAddrs                 = InvalidError("no listen addrs")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NotAvailableInReadOnlyMode    = ProcessError("not available in read only mode")
	NotBankTransaction            = RecordError("not bank transaction")
	NotConnected                  = NotFoundError("not connected")
	NotInitialised                = NotFoundError("not initialised")
	NotPrivateKey                 = RecordError("not private key")
	NotPublicKey                  = RecordError("not public key")
	OutOfPlaceVarint              = RecordError("out of place varint")
	ParametersLessThanExpect      = LengthError("parameters less than expect")
	PasswordLength                = InvalidError("password length is invalid")
	RateLimiting                  = ProcessError("rate limiting")
	RecordTooLong                 = LengthError("record too long")
	RecordTooShort                = LengthError("record too short")
	SaltSizeMismatch              = RecordError("salt size mismatch")
	SeedIsRequired                = InvalidError("seed is required")
	SnapshotMismatch              = InvalidError("snapshot does not match stored book")
	StaleTransition               = InvalidError("transition spends a superseded bank")
	TokenAmbiguous                = InvalidError("token matches more than one entry")
	TokenNotFound                 = NotFoundError("token not found")
	TransactionAlreadyExists      = ExistsError("transaction already exists")
	TransactionIdIsRequired       = InvalidError("transaction id is required")
	Unauthorized                  = InvalidError("balance change not authorized")
	UnableToRegenerateKeys        = InvalidError("unable to regenerate keys")
	UnexpectedTrailingBytes       = RecordError("unexpected trailing bytes")
	VerifiedPassword              = InvalidError("verified password is different")
	WrongIssuanceMint             = InvalidError("issuance mint is wrong")
	WrongNetworkForPrivateKey     = InvalidError("wrong network for private key")
	WrongNetworkForPublicKey      = InvalidError("wrong network for public key")
	WrongPassword                 = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
