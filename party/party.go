// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package party - counterparties that hold and transfer coins
//
// a party may exist purely as a generated counterparty; only parties
// created through Register carry a credential record
package party

import (
	"encoding/binary"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/record"
	"github.com/coinmint-inc/coinmintd/storage"
)

// Fetch - read one party record by id
func Fetch(partyId uint64) (*record.Party, error) {
	packed := storage.Pool.Parties.Get(idKey(partyId))
	if nil == packed {
		return nil, fault.CorruptedLedger
	}
	return record.Packed(packed).UnpackParty()
}

// FindByEmail - look a party up through the email index
func FindByEmail(email string) (uint64, *record.Party, error) {
	partyId, found := storage.Pool.PartyEmails.GetN([]byte(email))
	if !found {
		return 0, nil, fault.PartyNotFound
	}
	party, err := Fetch(partyId)
	if nil != err {
		return 0, nil, err
	}
	return partyId, party, nil
}

// store a party and its email index entry, allocating the next id
//
// the email must already be known to be unused
func store(party *record.Party) (uint64, error) {
	packed, err := party.Pack()
	if nil != err {
		return 0, err
	}

	partyId := storage.Pool.Parties.NextN()

	storage.Pool.Parties.Put(idKey(partyId), packed)
	storage.Pool.PartyEmails.Put([]byte(party.Email), idKey(partyId))
	return partyId, nil
}

func idKey(partyId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, partyId)
	return key
}
