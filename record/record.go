// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persisted record types
//
// all records are stored as a varint tag followed by the fields in
// struct order; strings are stored as varint length followed by the
// raw bytes
package record

import (
	"github.com/coinmint-inc/coinmintd/coinid"
)

// TagType - type code prefixed to each packed record
type TagType uint64

// record types
const (
	NullTag     TagType = iota
	CoinTag     TagType = iota
	PartyTag    TagType = iota
	TransferTag TagType = iota
)

// field limits
const (
	maxNameLength    = 64
	maxEmailLength   = 128
	maxPhoneLength   = 32
	maxAddressLength = 256
)

// Packed - a packed record ready for storage
type Packed []byte

// Coin - a synthetic coin
//
// identity is the three bounded components; Value is the packed form
// (must equal coinid.Pack of the components); the display string is
// not a field: it is recomputed from Value on demand
type Coin struct {
	Bit1  uint64       `json:"bit1"`
	Bit2  uint64       `json:"bit2"`
	Bit3  uint64       `json:"bit3"`
	Value coinid.Value `json:"value"`
}

// Party - a counterparty able to hold and transfer coins
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Transfer - one change of custody of a coin
//
// Seller is zero for an issuance: party ids are allocated from one so
// zero is never a valid reference
//
// Amount is held in cents to keep the record integral
type Transfer struct {
	Coin       uint64 `json:"coinId"`
	Seller     uint64 `json:"sellerId"`
	Buyer      uint64 `json:"buyerId"`
	Amount     uint64 `json:"amount"`
	OccurredAt int64  `json:"occurredAt"` // unix seconds
}

// IsIssuance - true for the first transfer of a coin
func (transfer *Transfer) IsIssuance() bool {
	return 0 == transfer.Seller
}
