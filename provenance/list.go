// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package provenance

import (
	"encoding/binary"
	"sort"

	"github.com/coinmint-inc/coinmintd/coin"
	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/party"
	"github.com/coinmint-inc/coinmintd/record"
	"github.com/coinmint-inc/coinmintd/storage"
)

// cents to currency units
const centsPerUnit = 100

// enumerate the full transfer log, newest first
//
// any dangling coin or party reference makes the whole call fail so a
// caller never sees a partially joined view
func listTransfers() ([]Record, error) {

	records := make([]Record, 0, 64)

	err := storage.Pool.Transfers.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fault.CorruptedLedger
		}
		transfer, err := record.Packed(value).UnpackTransfer()
		if nil != err {
			return err
		}
		row, err := enrich(binary.BigEndian.Uint64(key), transfer)
		if nil != err {
			return err
		}
		records = append(records, *row)
		return nil
	})
	if nil != err {
		return nil, err
	}

	sort.Slice(records, func(i int, j int) bool {
		if records[i].OccurredAt != records[j].OccurredAt {
			return records[i].OccurredAt > records[j].OccurredAt
		}
		return records[i].Id > records[j].Id
	})

	return records, nil
}

// join one transfer with its coin and parties
func enrich(id uint64, transfer *record.Transfer) (*Record, error) {

	c, err := coin.Fetch(transfer.Coin)
	if nil != err {
		return nil, err
	}

	buyer, err := party.Fetch(transfer.Buyer)
	if nil != err {
		return nil, err
	}

	row := &Record{
		Id:         id,
		CoinId:     transfer.Coin,
		Amount:     float64(transfer.Amount) / centsPerUnit,
		OccurredAt: transfer.OccurredAt,
		BuyerId:    transfer.Buyer,
		BuyerName:  buyer.Name,
		Bit1:       c.Bit1,
		Bit2:       c.Bit2,
		Bit3:       c.Bit3,
		Value:      c.Value,
		Display:    c.Value.Display(),
	}

	if !transfer.IsIssuance() {
		seller, err := party.Fetch(transfer.Seller)
		if nil != err {
			return nil, err
		}
		sellerId := transfer.Seller
		sellerName := seller.Name
		row.SellerId = &sellerId
		row.SellerName = &sellerName
	}

	return row, nil
}
