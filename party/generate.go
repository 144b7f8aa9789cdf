// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package party

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/record"
	"github.com/coinmint-inc/coinmintd/storage"
)

const emailDomain = "example.com"

// Generate - create a population of counterparties
//
// emails are derived from the sampled name; a clash with an earlier
// party (generated or registered) gets a deterministic numeric
// suffix, so the email uniqueness invariant holds before anything is
// returned
func Generate(log *logger.L, rng *rand.Rand, count int) ([]uint64, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	parties := make([]*record.Party, 0, count)
	usedEmails := make(map[string]struct{}, count)

	for i := 0; i < count; i += 1 {
		given := givenNames[rng.Intn(len(givenNames))]
		family := familyNames[rng.Intn(len(familyNames))]

		base := strings.ToLower(given + "." + family)
		email := base + "@" + emailDomain
		for suffix := 2; isEmailTaken(email, usedEmails); suffix += 1 {
			email = fmt.Sprintf("%s.%d@%s", base, suffix, emailDomain)
		}
		usedEmails[email] = struct{}{}

		parties = append(parties, &record.Party{
			Name:  given + " " + family,
			Email: email,
			Phone: fmt.Sprintf("+1-202-555-%04d", rng.Intn(10000)),
			Address: fmt.Sprintf("%d %s, %s",
				1+rng.Intn(200),
				streetNames[rng.Intn(len(streetNames))],
				townNames[rng.Intn(len(townNames))],
			),
		})
	}

	// store the completed population
	ids := make([]uint64, len(parties))
	for i, party := range parties {
		partyId, err := store(party)
		if nil != err {
			return nil, err
		}
		ids[i] = partyId
	}

	log.Infof("generated %d parties", len(ids))
	return ids, nil
}

func isEmailTaken(email string, usedEmails map[string]struct{}) bool {
	if _, ok := usedEmails[email]; ok {
		return true
	}
	return storage.Pool.PartyEmails.Has([]byte(email))
}
