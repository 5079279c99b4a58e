// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NoDefaultError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCertificateFile         = InvalidError("certificate file is invalid")
	ErrConfigDirPath           = InvalidError("config is not a folder")
	ErrContactExists           = ExistsError("contact already exists in address book")
	ErrEmptyInput              = InvalidError("input is empty")
	ErrIndexOutOfRange         = InvalidError("index is out of range")
	ErrInstrumentExpired       = InvalidError("instrument is expired")
	ErrInstrumentNotYetValid   = InvalidError("instrument is not yet valid")
	ErrInsufficientFunds       = ProcessError("insufficient funds in account")
	ErrInvalidAmount           = InvalidError("amount must be greater than zero")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidSubjectKind      = InvalidError("invalid subject kind")
	ErrLedgerConnectionFailure = ProcessError("ledger connection failure")
	ErrMismatchedAsset         = InvalidError("asset types do not match")
	ErrNoDefaultAccount        = NoDefaultError("no default account")
	ErrNoDefaultAsset          = NoDefaultError("no default asset")
	ErrNoDefaultNym            = NoDefaultError("no default nym")
	ErrNoDefaultServer         = NoDefaultError("no default server")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrNotFoundContact         = NotFoundError("contact not found in address book")
	ErrNotFoundSubject         = NotFoundError("subject not found")
	ErrNotImplemented          = ProcessError("not implemented")
	ErrNotInitialised          = ProcessError("not initialised")
	ErrPartialBatch            = ProcessError("some items in batch failed")
	ErrRateLimiting            = ProcessError("rate limiting")
	ErrRequiredConnect         = InvalidError("connect is required")
	ErrServerRejected          = ProcessError("server rejected the request")
	ErrSubjectExists           = ExistsError("subject with that name already exists")
	ErrTransactionNumbers      = ProcessError("not enough transaction numbers")
	ErrTransport               = ProcessError("transport error")
	ErrUnknownInstrumentType   = InvalidError("unknown instrument type")
	ErrWalletNotLoaded         = ProcessError("wallet could not be loaded")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NoDefaultError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrNoDefault(e error) bool { _, ok := e.(NoDefaultError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
