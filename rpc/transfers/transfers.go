// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transfers

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/mode"
	"github.com/coinmint-inc/coinmintd/provenance"
	"github.com/coinmint-inc/coinmintd/rpc/ratelimit"
)

// Transfers - type for the RPC
type Transfers struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	IsNormal   func(mode.Mode) bool
	Provenance provenance.Provenance
}

const (
	maximumTransfers  = 100
	rateLimitTransfer = 200
	rateBurstTransfer = 100
)

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"` // offset into the newest first view
	Count int    `json:"count"`        // number of records
}

// ListReply - result of transfers RPC
type ListReply struct {
	Transfers []provenance.Record `json:"transfers"`
	Next      uint64              `json:"next,string"`
}

// New - create the service
func New(log *logger.L, isNormal func(mode.Mode) bool, pv provenance.Provenance) *Transfers {
	return &Transfers{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitTransfer, rateBurstTransfer),
		IsNormal:   isNormal,
		Provenance: pv,
	}
}

// List - a page of enriched transfer events, newest first
func (t *Transfers) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(t.Limiter, arguments.Count, maximumTransfers); nil != err {
		return err
	}

	if !t.IsNormal(mode.Normal) {
		return fault.NotAvailableDuringPopulation
	}

	log := t.Log
	log.Infof("Transfers.List: %+v", arguments)

	records, err := t.Provenance.List()
	if nil != err {
		return err
	}

	start := arguments.Start
	if start >= uint64(len(records)) {
		reply.Transfers = []provenance.Record{}
		reply.Next = 0
		return nil
	}

	end := start + uint64(arguments.Count)
	if end > uint64(len(records)) {
		end = uint64(len(records))
	}

	reply.Transfers = records[start:end]
	if end >= uint64(len(records)) {
		reply.Next = 0
	} else {
		reply.Next = end
	}

	return nil
}
