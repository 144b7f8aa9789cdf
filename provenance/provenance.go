// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package provenance - read side of the transfer ledger
//
// joins transfer events with their coin and party records and
// recomputes the coin display string on every read
package provenance

import (
	"github.com/coinmint-inc/coinmintd/coinid"
)

// Record - one enriched transfer event
//
// seller fields are nil for an issuance; amount is decimal currency
// units
type Record struct {
	Id         uint64       `json:"id"`
	CoinId     uint64       `json:"coin_id"`
	Amount     float64      `json:"amount"`
	OccurredAt int64        `json:"occurred_at"`
	SellerId   *uint64      `json:"seller_id"`
	SellerName *string      `json:"seller_name"`
	BuyerId    uint64       `json:"buyer_id"`
	BuyerName  string       `json:"buyer_name"`
	Bit1       uint64       `json:"bit1"`
	Bit2       uint64       `json:"bit2"`
	Bit3       uint64       `json:"bit3"`
	Value      coinid.Value `json:"value"`
	Display    string       `json:"display"`
}

// Provenance - interface for the read side
type Provenance interface {
	List() ([]Record, error)
}

type provenance struct{}

var data provenance

// Get - return the read side interface
func Get() Provenance {
	return &data
}

func (p *provenance) List() ([]Record, error) {
	return listTransfers()
}
