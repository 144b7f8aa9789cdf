// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transfers_test

import (
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/coin"
	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/ledger"
	"github.com/coinmint-inc/coinmintd/mode"
	"github.com/coinmint-inc/coinmintd/party"
	"github.com/coinmint-inc/coinmintd/provenance"
	"github.com/coinmint-inc/coinmintd/rpc/transfers"
	"github.com/coinmint-inc/coinmintd/storage"
)

var testDirectory string

func setup(t *testing.T) *logger.L {
	directory, err := ioutil.TempDir("", "coinmintd-rpc-test")
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

func generateLedger(t *testing.T, log *logger.L, eventCount int) {
	rng := rand.New(rand.NewSource(42))
	coins, err := coin.Generate(log, rng, coin.Limits{Bit1: 9, Bit2: 9, Bit3: 9}, 5)
	if nil != err {
		t.Fatalf("coin generate error: %s", err)
	}
	parties, err := party.Generate(log, rng, 10)
	if nil != err {
		t.Fatalf("party generate error: %s", err)
	}
	_, err = ledger.Generate(log, rng, coins, parties, eventCount, ledger.Distribution{
		MinimumCents: 50,
		MaximumCents: 10000,
		StartTime:    1704067200,
		EndTime:      1735689599,
	})
	if nil != err {
		t.Fatalf("ledger generate error: %s", err)
	}
}

func alwaysNormal(mode.Mode) bool { return true }
func neverNormal(mode.Mode) bool  { return false }

func TestListPagination(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	generateLedger(t, log, 30)

	service := transfers.New(log, alwaysNormal, provenance.Get())

	var first transfers.ListReply
	err := service.List(&transfers.ListArguments{Start: 0, Count: 25}, &first)
	assert.NoError(t, err, "list error")
	assert.Equal(t, 25, len(first.Transfers), "wrong page size")
	assert.Equal(t, uint64(25), first.Next, "wrong next offset")

	var second transfers.ListReply
	err = service.List(&transfers.ListArguments{Start: first.Next, Count: 25}, &second)
	assert.NoError(t, err, "list error")
	assert.Equal(t, 5, len(second.Transfers), "wrong final page size")
	assert.Equal(t, uint64(0), second.Next, "expected final page")

	// pages are contiguous in the newest first order
	assert.True(t, first.Transfers[24].OccurredAt >= second.Transfers[0].OccurredAt, "pages out of order")
}

func TestListInvalidCount(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	service := transfers.New(log, alwaysNormal, provenance.Get())

	var reply transfers.ListReply
	err := service.List(&transfers.ListArguments{Start: 0, Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")

	err = service.List(&transfers.ListArguments{Start: 0, Count: 1000}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversized count accepted")
}

func TestListModeGate(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	service := transfers.New(log, neverNormal, provenance.Get())

	var reply transfers.ListReply
	err := service.List(&transfers.ListArguments{Start: 0, Count: 10}, &reply)
	assert.Equal(t, fault.NotAvailableDuringPopulation, err, "gated call accepted")
}
