// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/binary"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/counter"
	"github.com/coinmint-inc/coinmintd/mode"
	"github.com/coinmint-inc/coinmintd/rpc/ratelimit"
	"github.com/coinmint-inc/coinmintd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	counter *counter.Counter
}

// New - create the service
func New(log *logger.L, start time.Time, version string, connections *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		counter: connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Mode      string `json:"mode"`
	Coins     uint64 `json:"coins"`
	Parties   uint64 `json:"parties"`
	Transfers uint64 `json:"transfers"`
	RPCs      uint64 `json:"rpcs"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Mode = mode.String()
	reply.Coins = lastId(storage.Pool.Coins)
	reply.Parties = lastId(storage.Pool.Parties)
	reply.Transfers = lastId(storage.Pool.Transfers)
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// record count for a pool with sequential 8 byte ids
func lastId(pool *storage.PoolHandle) uint64 {
	element, found := pool.LastElement()
	if !found || 8 != len(element.Key) {
		return 0
	}
	return binary.BigEndian.Uint64(element.Key)
}
