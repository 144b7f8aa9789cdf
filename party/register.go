// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package party

import (
	"crypto/rand"
	"crypto/subtle"

	argon2 "github.com/bitmark-inc/go-argon2"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/record"
	"github.com/coinmint-inc/coinmintd/storage"
)

// password hashing parameters
const (
	hashIterations  = 5
	hashMemory      = 1 << 16
	hashParallelism = 4
	hashLength      = 32
	saltLength      = 16

	minimumPasswordLength = 8
	maximumPasswordLength = 128
)

// Register - create a party with an attached credential
//
// the email uniqueness invariant is checked before the party record
// is committed; the credential is stored as salt ‖ argon2(password)
func Register(name string, email string, phone string, address string, password string) (uint64, error) {
	if len(password) < minimumPasswordLength || len(password) > maximumPasswordLength {
		return 0, fault.PasswordLength
	}
	if storage.Pool.PartyEmails.Has([]byte(email)) {
		return 0, fault.EmailAlreadyRegistered
	}

	salt := make([]byte, saltLength)
	_, err := rand.Read(salt)
	if nil != err {
		return 0, err
	}

	hash, err := hashPassword(password, salt)
	if nil != err {
		return 0, err
	}

	partyId, err := store(&record.Party{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	})
	if nil != err {
		return 0, err
	}

	storage.Pool.Credentials.Put(idKey(partyId), append(salt, hash...))
	return partyId, nil
}

// Authenticate - look a party up by email and verify its credential
//
// a party without a credential record cannot authenticate even though
// it can appear as buyer or seller
func Authenticate(email string, password string) (uint64, error) {
	partyId, _, err := FindByEmail(email)
	if nil != err {
		return 0, err
	}

	credential := storage.Pool.Credentials.Get(idKey(partyId))
	if len(credential) != saltLength+hashLength {
		return 0, fault.PartyNotFound
	}

	hash, err := hashPassword(password, credential[:saltLength])
	if nil != err {
		return 0, err
	}

	if 1 != subtle.ConstantTimeCompare(hash, credential[saltLength:]) {
		return 0, fault.WrongPassword
	}
	return partyId, nil
}

func hashPassword(password string, salt []byte) ([]byte, error) {
	ctx := &argon2.Context{
		Iterations:  hashIterations,
		Memory:      hashMemory,
		Parallelism: hashParallelism,
		HashLen:     hashLength,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}
	return argon2.Hash(ctx, []byte(password), salt)
}
