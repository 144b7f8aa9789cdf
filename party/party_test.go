// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package party_test

import (
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/party"
	"github.com/coinmint-inc/coinmintd/storage"
)

var testDirectory string

func setup(t *testing.T) *logger.L {
	directory, err := ioutil.TempDir("", "coinmintd-party-test")
	if nil != err {
		t.Fatalf("temp directory error: %s", err)
	}
	testDirectory = directory

	err = logger.Initialise(logger.Configuration{
		Directory: testDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	err = storage.Initialise(filepath.Join(testDirectory, "test.leveldb"))
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return logger.New("testing")
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testDirectory)
}

func TestGenerateUniqueEmails(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(42))

	ids, err := party.Generate(log, rng, 40)
	assert.NoError(t, err, "generate error")
	assert.Equal(t, 40, len(ids), "wrong party count")

	seen := make(map[string]struct{})
	for _, id := range ids {
		p, err := party.Fetch(id)
		assert.NoError(t, err, "fetch error")
		assert.NotEqual(t, "", p.Name, "empty name")
		assert.True(t, strings.HasSuffix(p.Email, "@example.com"), "email: %q", p.Email)

		_, duplicated := seen[p.Email]
		assert.False(t, duplicated, "duplicate email: %q", p.Email)
		seen[p.Email] = struct{}{}

		foundId, _, err := party.FindByEmail(p.Email)
		assert.NoError(t, err, "find error")
		assert.Equal(t, id, foundId, "wrong id from email index")
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	_ = setup(t)
	defer teardown(t)

	partyId, err := party.Register("Ada Lovelace", "ada@coinmint.test", "+1-202-555-0001", "1 Analytical Way", "correct horse battery")
	assert.NoError(t, err, "register error")

	// authenticate with correct and wrong credentials
	foundId, err := party.Authenticate("ada@coinmint.test", "correct horse battery")
	assert.NoError(t, err, "authenticate error")
	assert.Equal(t, partyId, foundId, "wrong party id")

	_, err = party.Authenticate("ada@coinmint.test", "incorrect horse")
	assert.Equal(t, fault.WrongPassword, err, "wrong password not detected")

	_, err = party.Authenticate("nobody@coinmint.test", "correct horse battery")
	assert.Equal(t, fault.PartyNotFound, err, "unknown email not detected")

	// duplicate email
	_, err = party.Register("Ada Again", "ada@coinmint.test", "", "", "another password")
	assert.Equal(t, fault.EmailAlreadyRegistered, err, "duplicate email not detected")

	// password length limits
	_, err = party.Register("Short", "short@coinmint.test", "", "", "2short")
	assert.Equal(t, fault.PasswordLength, err, "short password not detected")

	_, err = party.Register("Long", "long@coinmint.test", "", "", strings.Repeat("x", 129))
	assert.Equal(t, fault.PasswordLength, err, "long password not detected")
}

// a generated counterparty has no credential record
func TestGeneratedPartyCannotAuthenticate(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(7))
	ids, err := party.Generate(log, rng, 1)
	assert.NoError(t, err, "generate error")

	p, err := party.Fetch(ids[0])
	assert.NoError(t, err, "fetch error")

	_, err = party.Authenticate(p.Email, "any password at all")
	assert.Equal(t, fault.PartyNotFound, err, "credential-less party authenticated")
}
