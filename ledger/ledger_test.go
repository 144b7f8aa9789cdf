// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/binary"
	"io/ioutil"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/coin"
	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/ledger"
	"github.com/coinmint-inc/coinmintd/party"
	"github.com/coinmint-inc/coinmintd/record"
	"github.com/coinmint-inc/coinmintd/storage"
)

var testDirectory string

var testDistribution = ledger.Distribution{
	MinimumCents: 50,
	MaximumCents: 10000,
	StartTime:    1704067200,
	EndTime:      1735689599,
}

func setup(t *testing.T) *logger.L {
	directory, err := ioutil.TempDir("", "coinmintd-ledger-test")
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

// build the standard populations for the log tests
func generatePopulations(t *testing.T, log *logger.L, rng *rand.Rand, coinCount int, partyCount int) ([]uint64, []uint64) {
	coins, err := coin.Generate(log, rng, coin.Limits{Bit1: 9, Bit2: 9, Bit3: 9}, coinCount)
	if nil != err {
		t.Fatalf("coin generate error: %s", err)
	}
	parties, err := party.Generate(log, rng, partyCount)
	if nil != err {
		t.Fatalf("party generate error: %s", err)
	}
	return coins, parties
}

// read every stored transfer in id order
func storedTransfers(t *testing.T, ids []uint64) []*record.Transfer {
	transfers := make([]*record.Transfer, len(ids))
	for i, id := range ids {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, id)
		packed := storage.Pool.Transfers.Get(key)
		if nil == packed {
			t.Fatalf("transfer: %d is not stored", id)
		}
		transfer, err := record.Packed(packed).UnpackTransfer()
		if nil != err {
			t.Fatalf("transfer: %d unpack error: %s", id, err)
		}
		transfers[i] = transfer
	}
	return transfers
}

func TestGenerateChainOfCustody(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(42))
	coins, parties := generatePopulations(t, log, rng, 5, 10)

	ids, err := ledger.Generate(log, rng, coins, parties, 50, testDistribution)
	if nil != err {
		t.Fatalf("ledger generate error: %s", err)
	}
	if 50 != len(ids) {
		t.Fatalf("generated: %d transfers  expected: 50", len(ids))
	}

	transfers := storedTransfers(t, ids)

	// replay every coin's chain in event order
	holders := make(map[uint64]uint64)
	lastTimes := make(map[uint64]int64)

	for i, transfer := range transfers {
		if 0 == transfer.Buyer {
			t.Fatalf("transfer: %d has no buyer", ids[i])
		}
		if transfer.Seller == transfer.Buyer {
			t.Fatalf("transfer: %d is a self transfer", ids[i])
		}
		if transfer.Amount < testDistribution.MinimumCents || transfer.Amount > testDistribution.MaximumCents {
			t.Fatalf("transfer: %d amount: %d is out of range", ids[i], transfer.Amount)
		}

		holder, owned := holders[transfer.Coin]
		if !owned {
			// first event of this coin must be an issuance
			if !transfer.IsIssuance() {
				t.Fatalf("transfer: %d first event of coin %d has seller %d", ids[i], transfer.Coin, transfer.Seller)
			}
		} else if transfer.Seller != holder {
			t.Fatalf("transfer: %d seller: %d  expected holder: %d", ids[i], transfer.Seller, holder)
		}

		if last, ok := lastTimes[transfer.Coin]; ok && transfer.OccurredAt <= last {
			t.Fatalf("transfer: %d time: %d does not advance past: %d", ids[i], transfer.OccurredAt, last)
		}

		holders[transfer.Coin] = transfer.Buyer
		lastTimes[transfer.Coin] = transfer.OccurredAt
	}
}

// a second run continues the chains seeded by the first
func TestGenerateComposes(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(42))
	coins, parties := generatePopulations(t, log, rng, 3, 6)

	first, err := ledger.Generate(log, rng, coins, parties, 10, testDistribution)
	if nil != err {
		t.Fatalf("ledger generate error: %s", err)
	}
	second, err := ledger.Generate(log, rng, coins, parties, 10, testDistribution)
	if nil != err {
		t.Fatalf("ledger generate error: %s", err)
	}

	transfers := storedTransfers(t, append(first, second...))

	holders := make(map[uint64]uint64)
	for i, transfer := range transfers {
		holder, owned := holders[transfer.Coin]
		if !owned && !transfer.IsIssuance() {
			t.Fatalf("transfer: %d first event of coin %d is not an issuance", i, transfer.Coin)
		}
		if owned && transfer.Seller != holder {
			t.Fatalf("transfer: %d breaks the chain of custody", i)
		}
		holders[transfer.Coin] = transfer.Buyer
	}

	for coinId, holder := range holders {
		current, ok := ledger.CurrentHolder(coinId)
		if !ok || current != holder {
			t.Errorf("coin: %d holder: %d  expected: %d", coinId, current, holder)
		}
	}
}

// identical seeds must yield identical ledgers
func TestGenerateReproducible(t *testing.T) {
	log := setup(t)

	run := func() []*record.Transfer {
		rng := rand.New(rand.NewSource(1234))
		coins, parties := generatePopulations(t, log, rng, 5, 10)
		ids, err := ledger.Generate(log, rng, coins, parties, 20, testDistribution)
		if nil != err {
			t.Fatalf("ledger generate error: %s", err)
		}
		return storedTransfers(t, ids)
	}

	first := run()
	teardown(t)

	log = setup(t)
	defer teardown(t)
	second := run()

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if *first[i] != *second[i] {
			t.Errorf("transfer: %d differs: %#v vs %#v", i, first[i], second[i])
		}
	}
}

func TestGenerateBadArguments(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(1))
	coins, parties := generatePopulations(t, log, rng, 2, 3)

	_, err := ledger.Generate(log, rng, coins, parties, 0, testDistribution)
	if fault.MissingParameters != err {
		t.Errorf("error: %v  expected: %v", err, fault.MissingParameters)
	}

	_, err = ledger.Generate(log, rng, nil, parties, 5, testDistribution)
	if fault.MissingParameters != err {
		t.Errorf("error: %v  expected: %v", err, fault.MissingParameters)
	}

	bad := testDistribution
	bad.MinimumCents = 0
	_, err = ledger.Generate(log, rng, coins, parties, 5, bad)
	if fault.MisconfiguredDistribution != err {
		t.Errorf("error: %v  expected: %v", err, fault.MisconfiguredDistribution)
	}

	inverted := testDistribution
	inverted.StartTime = inverted.EndTime + 1
	_, err = ledger.Generate(log, rng, coins, parties, 5, inverted)
	if fault.MisconfiguredDistribution != err {
		t.Errorf("error: %v  expected: %v", err, fault.MisconfiguredDistribution)
	}

	// a non-inverted range can still be too wide to sample
	oversized := testDistribution
	oversized.MinimumCents = 1
	oversized.MaximumCents = math.MaxUint64
	_, err = ledger.Generate(log, rng, coins, parties, 5, oversized)
	if fault.MisconfiguredDistribution != err {
		t.Errorf("error: %v  expected: %v", err, fault.MisconfiguredDistribution)
	}

	// a single party can never buy from itself
	_, err = ledger.Generate(log, rng, coins, parties[:1], 5, testDistribution)
	if fault.TransferLoopDetected != err {
		t.Errorf("error: %v  expected: %v", err, fault.TransferLoopDetected)
	}
}
