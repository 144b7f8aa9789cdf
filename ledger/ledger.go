// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the transfer event generator
//
// builds the append-only log of custody changes; the current holder
// of a coin is whatever the latest event says, it is never stored as
// a separate mutable field on the coin itself
package ledger

import (
	"math"

	"github.com/coinmint-inc/coinmintd/fault"
)

// Distribution - sampling ranges for generated events
//
// amounts are cents, dates are unix seconds; both ranges are
// inclusive
type Distribution struct {
	MinimumCents uint64 `gluamapper:"minimum_cents" json:"minimum_cents"`
	MaximumCents uint64 `gluamapper:"maximum_cents" json:"maximum_cents"`
	StartTime    int64  `gluamapper:"start_time" json:"start_time"`
	EndTime      int64  `gluamapper:"end_time" json:"end_time"`
}

// verify that the configured ranges can be sampled at all
func (distribution *Distribution) verify() error {
	if 0 == distribution.MinimumCents ||
		distribution.MinimumCents > distribution.MaximumCents {
		return fault.MisconfiguredDistribution
	}
	// the span is sampled with a signed source so it must stay
	// inside the signed range
	if distribution.MaximumCents-distribution.MinimumCents >= math.MaxInt64 {
		return fault.MisconfiguredDistribution
	}
	if distribution.StartTime <= 0 ||
		distribution.StartTime > distribution.EndTime {
		return fault.MisconfiguredDistribution
	}
	return nil
}
