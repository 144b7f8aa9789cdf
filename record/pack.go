// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/coinmint-inc/coinmintd/coinid"
	"github.com/coinmint-inc/coinmintd/fault"
)

// pack Coin
//
// Varint64(tag) followed by fields in order as struct above
func (coin *Coin) Pack() (Packed, error) {
	value, err := coinid.Pack(coin.Bit1, coin.Bit2, coin.Bit3)
	if nil != err {
		return nil, err
	}
	if value != coin.Value {
		return nil, fault.UnexpectedRecordTag
	}

	message := appendUint64(nil, uint64(CoinTag))
	message = appendUint64(message, coin.Bit1)
	message = appendUint64(message, coin.Bit2)
	message = appendUint64(message, coin.Bit3)
	message = appendUint64(message, uint64(coin.Value))
	return message, nil
}

// pack Party
//
// name and email are required, phone and address may be empty
func (party *Party) Pack() (Packed, error) {
	if "" == party.Name || "" == party.Email {
		return nil, fault.MissingParameters
	}
	if utf8.RuneCountInString(party.Name) > maxNameLength ||
		utf8.RuneCountInString(party.Email) > maxEmailLength ||
		utf8.RuneCountInString(party.Phone) > maxPhoneLength ||
		utf8.RuneCountInString(party.Address) > maxAddressLength {
		return nil, fault.MissingParameters
	}

	message := appendUint64(nil, uint64(PartyTag))
	message = appendString(message, party.Name)
	message = appendString(message, party.Email)
	message = appendString(message, party.Phone)
	message = appendString(message, party.Address)
	return message, nil
}

// pack Transfer
//
// enforces the representable invariants: a buyer is always present,
// the amount is strictly positive and a party never sells to itself
func (transfer *Transfer) Pack() (Packed, error) {
	if 0 == transfer.Buyer || 0 == transfer.Coin {
		return nil, fault.MissingParameters
	}
	if 0 == transfer.Amount {
		return nil, fault.MisconfiguredDistribution
	}
	if transfer.Seller == transfer.Buyer {
		return nil, fault.SelfTransfer
	}

	message := appendUint64(nil, uint64(TransferTag))
	message = appendUint64(message, transfer.Coin)
	message = appendUint64(message, transfer.Seller)
	message = appendUint64(message, transfer.Buyer)
	message = appendUint64(message, transfer.Amount)
	message = appendUint64(message, uint64(transfer.OccurredAt))
	return message, nil
}

// append a varint64 to a buffer
func appendUint64(buffer []byte, value uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], value)
	return append(buffer, scratch[:n]...)
}

// append a length prefixed string to a buffer
func appendString(buffer []byte, s string) []byte {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}
