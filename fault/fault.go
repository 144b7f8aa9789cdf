// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
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
	AlreadyInitialised           = ProcessError("already initialised")
	CertificateFileExists        = ExistsError("certificate file already exists")
	CorruptedLedger              = RecordError("ledger references a missing record")
	EmailAlreadyRegistered       = ExistsError("email is already in use")
	ExhaustedIdentitySpace       = ProcessError("coin identity space is exhausted")
	InvalidCoinComponent         = InvalidError("coin component is out of range")
	InvalidCount                 = InvalidError("invalid record count")
	InvalidCursor                = InvalidError("invalid cursor")
	KeyFileExists                = ExistsError("key file already exists")
	MisconfiguredDistribution    = InvalidError("distribution range is empty or inverted")
	MissingParameters            = LengthError("missing parameters")
	NotAvailableDuringPopulation = ProcessError("not available during population")
	NotInitialised               = ProcessError("not initialised")
	PartyNotFound                = NotFoundError("party is not registered")
	PasswordLength               = LengthError("password length is invalid")
	PopulationExists             = ExistsError("population already generated")
	RateLimiting                 = ProcessError("rate limited")
	SelfTransfer                 = InvalidError("seller and buyer are the same party")
	TransferLoopDetected         = ProcessError("cannot pick a distinct buyer")
	TruncatedRecord              = RecordError("record is truncated")
	UnexpectedRecordTag          = RecordError("unexpected record tag")
	WrongPassword                = InvalidError("wrong password")
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
