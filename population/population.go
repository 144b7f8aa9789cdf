// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package population - one-shot seeding of coins, parties and the
// transfer ledger
//
// the three generators share a single seeded random source so the
// same configuration always yields the same database
package population

import (
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/coin"
	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/ledger"
	"github.com/coinmint-inc/coinmintd/party"
	"github.com/coinmint-inc/coinmintd/storage"
)

// Configuration - the full seeding request
type Configuration struct {
	Coins         int                 `gluamapper:"coins" json:"coins"`
	Parties       int                 `gluamapper:"parties" json:"parties"`
	Transfers     int                 `gluamapper:"transfers" json:"transfers"`
	Seed          int64               `gluamapper:"seed" json:"seed"`
	ClearExisting bool                `gluamapper:"clear_existing" json:"clear_existing"`
	Limits        coin.Limits         `gluamapper:"limits" json:"limits"`
	Distribution  ledger.Distribution `gluamapper:"distribution" json:"distribution"`
}

// Result - ids created by a successful run
type Result struct {
	Coins     []uint64 `json:"coins"`
	Parties   []uint64 `json:"parties"`
	Transfers []uint64 `json:"transfers"`
}

// Run - seed the database according to the configuration
//
// refuses to overlay an already populated database unless the
// configuration asks for the existing data to be cleared first
func Run(log *logger.L, configuration *Configuration) (*Result, error) {
	if configuration.Coins <= 0 ||
		configuration.Parties <= 0 ||
		configuration.Transfers <= 0 {
		return nil, fault.InvalidCount
	}

	if !storage.IsEmpty() {
		if !configuration.ClearExisting {
			return nil, fault.PopulationExists
		}
		log.Warn("clearing existing population")
		if err := storage.Wipe(); nil != err {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(configuration.Seed))

	log.Infof("generating %d coins", configuration.Coins)
	coins, err := coin.Generate(log, rng, configuration.Limits, configuration.Coins)
	if nil != err {
		return nil, err
	}

	log.Infof("generating %d parties", configuration.Parties)
	parties, err := party.Generate(log, rng, configuration.Parties)
	if nil != err {
		return nil, err
	}

	log.Infof("generating %d transfers", configuration.Transfers)
	transfers, err := ledger.Generate(log, rng, coins, parties, configuration.Transfers, configuration.Distribution)
	if nil != err {
		return nil, err
	}

	return &Result{
		Coins:     coins,
		Parties:   parties,
		Transfers: transfers,
	}, nil
}
