// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin_test

import (
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/coin"
	"github.com/coinmint-inc/coinmintd/coinid"
	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/storage"
)

var testDirectory string

func setup(t *testing.T) *logger.L {
	directory, err := ioutil.TempDir("", "coinmintd-coin-test")
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

func TestGenerateDistinctValues(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(42))
	limits := coin.Limits{Bit1: 9, Bit2: 9, Bit3: 9}

	ids, err := coin.Generate(log, rng, limits, 20)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if 20 != len(ids) {
		t.Fatalf("generated: %d coins  expected: 20", len(ids))
	}

	seen := make(map[coinid.Value]struct{})
	for _, id := range ids {
		c, err := coin.Fetch(id)
		if nil != err {
			t.Fatalf("fetch: %d error: %s", id, err)
		}
		if c.Bit1 > limits.Bit1 || c.Bit2 > limits.Bit2 || c.Bit3 > limits.Bit3 {
			t.Errorf("coin: %d components out of limits: %#v", id, c)
		}
		value, err := coinid.Pack(c.Bit1, c.Bit2, c.Bit3)
		if nil != err {
			t.Fatalf("pack error: %s", err)
		}
		if value != c.Value {
			t.Errorf("coin: %d stored value: %#v  expected: %#v", id, c.Value, value)
		}
		if _, ok := seen[value]; ok {
			t.Errorf("duplicate value: %#v", value)
		}
		seen[value] = struct{}{}
	}
}

// a second batch must stay distinct from already stored coins
func TestGenerateComposes(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	limits := coin.Limits{Bit1: 1, Bit2: 1, Bit3: 1} // space of 8

	first, err := coin.Generate(log, rand.New(rand.NewSource(1)), limits, 4)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	second, err := coin.Generate(log, rand.New(rand.NewSource(2)), limits, 4)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	seen := make(map[coinid.Value]struct{})
	for _, id := range append(first, second...) {
		c, err := coin.Fetch(id)
		if nil != err {
			t.Fatalf("fetch: %d error: %s", id, err)
		}
		if _, ok := seen[c.Value]; ok {
			t.Errorf("duplicate value across batches: %#v", c.Value)
		}
		seen[c.Value] = struct{}{}
	}
}

// an impossible request must write nothing at all
func TestGenerateExhaustedSpace(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(7))
	limits := coin.Limits{Bit1: 0, Bit2: 0, Bit3: 1} // space of 2

	_, err := coin.Generate(log, rng, limits, 3)
	if fault.ExhaustedIdentitySpace != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ExhaustedIdentitySpace)
	}

	if !storage.IsEmpty() {
		t.Fatal("partial population was written")
	}
}

func TestGenerateBadArguments(t *testing.T) {
	log := setup(t)
	defer teardown(t)

	rng := rand.New(rand.NewSource(7))

	_, err := coin.Generate(log, rng, coin.Limits{Bit1: 9, Bit2: 9, Bit3: 9}, 0)
	if fault.InvalidCount != err {
		t.Errorf("error: %v  expected: %v", err, fault.InvalidCount)
	}

	_, err = coin.Generate(log, rng, coin.Limits{Bit1: 1 << 20, Bit2: 9, Bit3: 9}, 1)
	if fault.InvalidCoinComponent != err {
		t.Errorf("error: %v  expected: %v", err, fault.InvalidCoinComponent)
	}
}
