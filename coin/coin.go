// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin - the coin population generator
//
// samples random component triples inside the configured limits and
// keeps only those whose packed value has not been seen before, so
// the derived value is unique across the whole population
package coin

import (
	"encoding/binary"
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/coinid"
	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/record"
	"github.com/coinmint-inc/coinmintd/storage"
)

// Limits - inclusive upper bound for each sampled component
type Limits struct {
	Bit1 uint64 `gluamapper:"bit1" json:"bit1"`
	Bit2 uint64 `gluamapper:"bit2" json:"bit2"`
	Bit3 uint64 `gluamapper:"bit3" json:"bit3"`
}

// attempts per coin before giving up on the configured space
const retryBudget = 1000

// Generate - create a population of coins with distinct values
//
// the whole population is built in memory first: on any failure
// nothing is written, there is never a partial population
func Generate(log *logger.L, rng *rand.Rand, limits Limits, count int) ([]uint64, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	if limits.Bit1 > coinid.ComponentLimit ||
		limits.Bit2 > coinid.ComponentLimit ||
		limits.Bit3 > coinid.ComponentLimit {
		return nil, fault.InvalidCoinComponent
	}

	// the space must be able to hold the requested count at all
	capacity := (limits.Bit1 + 1) * (limits.Bit2 + 1) * (limits.Bit3 + 1)
	if capacity < uint64(count) {
		log.Errorf("%d coins requested from a space of %d triples", count, capacity)
		return nil, fault.ExhaustedIdentitySpace
	}

	coins := make([]*record.Coin, 0, count)
	seen := make(map[coinid.Value]struct{}, count)

sampling:
	for i := 0; i < count; i += 1 {
		for attempt := 0; attempt < retryBudget; attempt += 1 {

			bit1 := uint64(rng.Int63n(int64(limits.Bit1 + 1)))
			bit2 := uint64(rng.Int63n(int64(limits.Bit2 + 1)))
			bit3 := uint64(rng.Int63n(int64(limits.Bit3 + 1)))

			value, err := coinid.Pack(bit1, bit2, bit3)
			if nil != err {
				return nil, err
			}

			if _, ok := seen[value]; ok {
				continue
			}
			valueKey := make([]byte, 8)
			binary.BigEndian.PutUint64(valueKey, uint64(value))
			if storage.Pool.CoinValues.Has(valueKey) {
				continue // collides with an already stored coin
			}

			seen[value] = struct{}{}
			coins = append(coins, &record.Coin{
				Bit1:  bit1,
				Bit2:  bit2,
				Bit3:  bit3,
				Value: value,
			})
			continue sampling
		}
		log.Errorf("no unused identity after %d attempts, %d of %d coins done", retryBudget, i, count)
		return nil, fault.ExhaustedIdentitySpace
	}

	// store the completed population
	ids := make([]uint64, len(coins))
	nextId := storage.Pool.Coins.NextN()
	for i, coin := range coins {
		packed, err := coin.Pack()
		if nil != err {
			return nil, err
		}

		id := nextId + uint64(i)
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, id)

		valueKey := make([]byte, 8)
		binary.BigEndian.PutUint64(valueKey, uint64(coin.Value))
		idValue := make([]byte, 8)
		binary.BigEndian.PutUint64(idValue, id)

		storage.Pool.Coins.Put(key, packed)
		storage.Pool.CoinValues.Put(valueKey, idValue)
		ids[i] = id
	}

	log.Infof("generated %d coins", len(ids))
	return ids, nil
}

// Fetch - read one coin record by id
func Fetch(coinId uint64) (*record.Coin, error) {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, coinId)

	packed := storage.Pool.Coins.Get(key)
	if nil == packed {
		return nil, fault.CorruptedLedger
	}
	return record.Packed(packed).UnpackCoin()
}
