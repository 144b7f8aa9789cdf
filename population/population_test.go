// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package population_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/coin"
	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/ledger"
	"github.com/coinmint-inc/coinmintd/population"
	"github.com/coinmint-inc/coinmintd/storage"
)

var testDirectory string

func testConfiguration() *population.Configuration {
	return &population.Configuration{
		Coins:     5,
		Parties:   10,
		Transfers: 20,
		Seed:      1234,
		Limits: coin.Limits{
			Bit1: 9,
			Bit2: 9,
			Bit3: 9,
		},
		Distribution: ledger.Distribution{
			MinimumCents: 50,
			MaximumCents: 10000,
			StartTime:    1704067200,
			EndTime:      1735689599,
		},
	}
}

func setup(t *testing.T) *logger.L {
	directory, err := ioutil.TempDir("", "coinmintd-population-test")
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

func TestRun(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	result, err := population.Run(log, testConfiguration())
	if nil != err {
		t.Fatalf("run error: %s", err)
	}

	if 5 != len(result.Coins) {
		t.Errorf("coins: %d  expected: 5", len(result.Coins))
	}
	if 10 != len(result.Parties) {
		t.Errorf("parties: %d  expected: 10", len(result.Parties))
	}
	if 20 != len(result.Transfers) {
		t.Errorf("transfers: %d  expected: 20", len(result.Transfers))
	}
}

// refuse to overlay an existing population
func TestRunRefusesOverlay(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	_, err := population.Run(log, testConfiguration())
	if nil != err {
		t.Fatalf("run error: %s", err)
	}

	_, err = population.Run(log, testConfiguration())
	if fault.PopulationExists != err {
		t.Fatalf("error: %v  expected: %v", err, fault.PopulationExists)
	}
}

// clear_existing starts over from an empty store
func TestRunClearExisting(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	_, err := population.Run(log, testConfiguration())
	if nil != err {
		t.Fatalf("run error: %s", err)
	}

	configuration := testConfiguration()
	configuration.ClearExisting = true
	configuration.Coins = 3
	configuration.Transfers = 7

	result, err := population.Run(log, configuration)
	if nil != err {
		t.Fatalf("run error: %s", err)
	}

	if 3 != len(result.Coins) {
		t.Errorf("coins: %d  expected: 3", len(result.Coins))
	}
	if 7 != len(result.Transfers) {
		t.Errorf("transfers: %d  expected: 7", len(result.Transfers))
	}

	// ids restart after the wipe
	if 1 != result.Coins[0] {
		t.Errorf("first coin id: %d  expected: 1", result.Coins[0])
	}
}

func TestRunBadCounts(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	configuration := testConfiguration()
	configuration.Coins = 0

	_, err := population.Run(log, configuration)
	if fault.InvalidCount != err {
		t.Fatalf("error: %v  expected: %v", err, fault.InvalidCount)
	}
}
