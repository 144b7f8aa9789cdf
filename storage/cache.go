// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read cache in front of the database
//
// deleted keys are kept as tombstones so a cached value cannot be
// returned after its key was removed
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(op int, key string, value []byte)
}

const (
	dbPut = iota
	dbDelete
)

const (
	defaultCleanup    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cachedEntry struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, defaultCleanup),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	entry := obj.(cachedEntry)
	if dbDelete == entry.op {
		return nil, false
	}
	return entry.value, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	c.cache.Set(key, cachedEntry{op: op, value: value}, cache.DefaultExpiration)
}
