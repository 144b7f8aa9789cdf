// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/record"
	"github.com/coinmint-inc/coinmintd/storage"
)

// attempts to pick a buyer different from the seller
const buyerRetryBudget = 100

// to ensure synchronised holder updates
var transferLock sync.Mutex

// Generate - create eventCount transfer events over the populations
//
// every event must satisfy the chain of custody: an unowned coin gets
// an issuance (no seller), an owned coin is sold by its current
// holder to a different party; timestamps are strictly increasing
// per coin
//
// the whole log is built in memory first and only written when every
// event succeeded, so a failed run leaves no partial ledger
func Generate(log *logger.L, rng *rand.Rand, coins []uint64, parties []uint64, eventCount int, distribution Distribution) ([]uint64, error) {
	if err := distribution.verify(); nil != err {
		return nil, err
	}
	if eventCount <= 0 || 0 == len(coins) || 0 == len(parties) {
		return nil, fault.MissingParameters
	}

	transferLock.Lock()
	defer transferLock.Unlock()

	// current holder and latest event time per coin id
	//
	// explicit state owned by this call, seeded from the stored log
	// so a composed run sees the true chain; zero holder means
	// unowned
	holders, lastTimes, err := replayHolders()
	if nil != err {
		return nil, err
	}

	transfers := make([]*record.Transfer, 0, eventCount)

	for i := 0; i < eventCount; i += 1 {

		coinId := coins[rng.Intn(len(coins))]
		seller := holders[coinId] // zero: issuance

		buyer, err := pickBuyer(log, rng, parties, seller)
		if nil != err {
			return nil, err
		}

		transfers = append(transfers, &record.Transfer{
			Coin:       coinId,
			Seller:     seller,
			Buyer:      buyer,
			Amount:     sampleAmount(rng, distribution),
			OccurredAt: sampleTime(rng, distribution, lastTimes[coinId]),
		})

		// the holder moves with the event so the next sale of this
		// coin sees the correct seller
		holders[coinId] = buyer
		lastTimes[coinId] = transfers[len(transfers)-1].OccurredAt
	}

	// persist the completed log
	ids := make([]uint64, len(transfers))
	nextId := storage.Pool.Transfers.NextN()
	for i, transfer := range transfers {
		packed, err := transfer.Pack()
		if nil != err {
			return nil, err
		}

		id := nextId + uint64(i)
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, id)
		storage.Pool.Transfers.Put(key, packed)
		ids[i] = id
	}

	log.Infof("generated %d transfers over %d coins", len(ids), len(coins))
	return ids, nil
}

// a buyer distinct from the seller; single rejections are recovered
// locally by resampling, running out of the budget is fatal
func pickBuyer(log *logger.L, rng *rand.Rand, parties []uint64, seller uint64) (uint64, error) {
	for attempt := 0; attempt < buyerRetryBudget; attempt += 1 {
		buyer := parties[rng.Intn(len(parties))]
		if buyer != seller {
			return buyer, nil
		}
		log.Debugf("rejected self transfer by party %d: %s", seller, fault.SelfTransfer)
	}
	return 0, fault.TransferLoopDetected
}

func sampleAmount(rng *rand.Rand, distribution Distribution) uint64 {
	span := int64(distribution.MaximumCents - distribution.MinimumCents + 1)
	return distribution.MinimumCents + uint64(rng.Int63n(span))
}

// strictly after the coin's previous event
//
// when the sampled time does not advance the chain it is clamped to
// one second past the previous event, which can run past the end of
// the configured range for a very busy coin
func sampleTime(rng *rand.Rand, distribution Distribution, lastTime int64) int64 {
	span := distribution.EndTime - distribution.StartTime + 1
	t := distribution.StartTime + rng.Int63n(span)
	if t <= lastTime {
		t = lastTime + 1
	}
	return t
}

// CurrentHolder - the party currently holding a coin
//
// derived from the stored log; zero and false when the coin has never
// been issued
func CurrentHolder(coinId uint64) (uint64, bool) {
	holders, _, err := replayHolders()
	if nil != err {
		return 0, false
	}
	holder, ok := holders[coinId]
	return holder, ok
}

// rebuild the per-coin holder and latest-event-time maps from the
// stored transfer log
func replayHolders() (map[uint64]uint64, map[uint64]int64, error) {
	holders := make(map[uint64]uint64)
	lastTimes := make(map[uint64]int64)

	err := storage.Pool.Transfers.NewFetchCursor().Map(func(key []byte, value []byte) error {
		transfer, err := record.Packed(value).UnpackTransfer()
		if nil != err {
			return err
		}
		if transfer.OccurredAt >= lastTimes[transfer.Coin] {
			holders[transfer.Coin] = transfer.Buyer
			lastTimes[transfer.Coin] = transfer.OccurredAt
		}
		return nil
	})
	if nil != err {
		return nil, nil, err
	}
	return holders, lastTimes, nil
}
