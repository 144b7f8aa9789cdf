// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parties

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/mode"
	"github.com/coinmint-inc/coinmintd/party"
	"github.com/coinmint-inc/coinmintd/rpc/ratelimit"
)

// Parties - type for the RPC
type Parties struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	IsNormal func(mode.Mode) bool
}

const (
	rateLimitParties = 200
	rateBurstParties = 100
)

// RegisterArguments - arguments for RPC
type RegisterArguments struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// RegisterReply - result of registration
type RegisterReply struct {
	PartyId uint64 `json:"partyId,string"`
}

// LoginArguments - arguments for RPC
type LoginArguments struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginReply - result of a successful login
type LoginReply struct {
	PartyId uint64 `json:"partyId,string"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// New - create the service
func New(log *logger.L, isNormal func(mode.Mode) bool) *Parties {
	return &Parties{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitParties, rateBurstParties),
		IsNormal: isNormal,
	}
}

// Register - create a party with a credential record
func (p *Parties) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if !p.IsNormal(mode.Normal) {
		return fault.NotAvailableDuringPopulation
	}

	log := p.Log
	log.Infof("Parties.Register: %q", arguments.Email)

	partyId, err := party.Register(arguments.Name, arguments.Email, arguments.Phone, arguments.Address, arguments.Password)
	if nil != err {
		return err
	}

	reply.PartyId = partyId
	return nil
}

// Login - verify a credential and return the party
func (p *Parties) Login(arguments *LoginArguments, reply *LoginReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if !p.IsNormal(mode.Normal) {
		return fault.NotAvailableDuringPopulation
	}

	log := p.Log
	log.Infof("Parties.Login: %q", arguments.Email)

	partyId, err := party.Authenticate(arguments.Email, arguments.Password)
	if nil != err {
		return err
	}

	partyRecord, err := party.Fetch(partyId)
	if nil != err {
		return err
	}

	reply.PartyId = partyId
	reply.Name = partyRecord.Name
	reply.Email = partyRecord.Email
	return nil
}
