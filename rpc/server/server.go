// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/counter"
	"github.com/coinmint-inc/coinmintd/mode"
	"github.com/coinmint-inc/coinmintd/provenance"
	"github.com/coinmint-inc/coinmintd/rpc/node"
	"github.com/coinmint-inc/coinmintd/rpc/parties"
	"github.com/coinmint-inc/coinmintd/rpc/transfers"
)

// Create - register all services on a fresh rpc server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(transfers.New(log, mode.Is, provenance.Get()))
	_ = server.Register(parties.New(log, mode.Is))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
