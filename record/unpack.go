// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/coinmint-inc/coinmintd/coinid"
	"github.com/coinmint-inc/coinmintd/fault"
)

// UnpackCoin - turn a stored byte slice back into a coin
func (packed Packed) UnpackCoin() (*Coin, error) {
	fields, err := packed.fields(CoinTag, 4)
	if nil != err {
		return nil, err
	}

	coin := &Coin{
		Bit1:  fields[0],
		Bit2:  fields[1],
		Bit3:  fields[2],
		Value: coinid.Value(fields[3]),
	}

	// stored value must still match its components
	value, err := coinid.Pack(coin.Bit1, coin.Bit2, coin.Bit3)
	if nil != err {
		return nil, err
	}
	if value != coin.Value {
		return nil, fault.CorruptedLedger
	}
	return coin, nil
}

// UnpackParty - turn a stored byte slice back into a party
func (packed Packed) UnpackParty() (*Party, error) {
	n, err := packed.tag(PartyTag)
	if nil != err {
		return nil, err
	}

	party := &Party{}
	for _, field := range []*string{&party.Name, &party.Email, &party.Phone, &party.Address} {
		length, offset := binary.Uvarint(packed[n:])
		if offset <= 0 {
			return nil, fault.TruncatedRecord
		}
		n += offset
		if uint64(len(packed)-n) < length {
			return nil, fault.TruncatedRecord
		}
		*field = string(packed[n : n+int(length)])
		n += int(length)
	}
	return party, nil
}

// UnpackTransfer - turn a stored byte slice back into a transfer
func (packed Packed) UnpackTransfer() (*Transfer, error) {
	fields, err := packed.fields(TransferTag, 5)
	if nil != err {
		return nil, err
	}

	return &Transfer{
		Coin:       fields[0],
		Seller:     fields[1],
		Buyer:      fields[2],
		Amount:     fields[3],
		OccurredAt: int64(fields[4]),
	}, nil
}

// check the leading tag, returning the offset past it
func (packed Packed) tag(expected TagType) (int, error) {
	recordType, n := binary.Uvarint(packed)
	if n <= 0 {
		return 0, fault.TruncatedRecord
	}
	if TagType(recordType) != expected {
		return 0, fault.UnexpectedRecordTag
	}
	return n, nil
}

// read a fixed count of varint fields after the tag
func (packed Packed) fields(expected TagType, count int) ([]uint64, error) {
	n, err := packed.tag(expected)
	if nil != err {
		return nil, err
	}

	fields := make([]uint64, count)
	for i := 0; i < count; i += 1 {
		value, offset := binary.Uvarint(packed[n:])
		if offset <= 0 {
			return nil, fault.TruncatedRecord
		}
		fields[i] = value
		n += offset
	}
	return fields, nil
}
