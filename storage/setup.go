// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/coinmint-inc/coinmintd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Coins       *PoolHandle `prefix:"C"`
	CoinValues  *PoolHandle `prefix:"V"`
	Parties     *PoolHandle `prefix:"P"`
	PartyEmails *PoolHandle `prefix:"E"`
	Credentials *PoolHandle `prefix:"K"`
	Transfers   *PoolHandle `prefix:"T"`
	TestData    *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// holds the database handle
var poolData struct {
	sync.RWMutex
	database string
	db       *leveldb.DB
	cache    Cache
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	poolData.database = database
	return open()
}

// open the database and rebuild the pool handles
//
// hold the lock before calling
func open() error {
	db, err := leveldb.OpenFile(poolData.database, &ldb_opt.Options{
		ErrorIfExist: false,
	})
	if nil != err {
		return err
	}
	poolData.db = db
	poolData.cache = newCache()

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return nil
}

// Wipe - erase the whole store
//
// used by population generation when clear_existing is configured;
// re-creates an empty database with fresh pool handles
func Wipe() error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return fault.NotInitialised
	}

	poolData.db.Close()
	poolData.db = nil

	err := os.RemoveAll(poolData.database)
	if nil != err {
		return err
	}

	return open()
}

// IsEmpty - check that no pool holds any record
//
// used to detect a prior population before generating a new one
func IsEmpty() bool {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return true
	}

	iter := poolData.db.NewIterator(nil, nil)
	defer iter.Release()
	return !iter.Next()
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
}
