// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// one LevelDB database split into pools of key/value pairs, each
// pool distinguished by a one byte prefix on its keys
//
//	Coins       C  coin id       -> packed coin record
//	CoinValues  V  derived value -> coin id       (uniqueness index)
//	Parties     P  party id      -> packed party record
//	PartyEmails E  email         -> party id      (uniqueness index)
//	Credentials K  party id      -> argon2 encoded password
//	Transfers   T  transfer id   -> packed transfer record
//
// there is deliberately no current-owner pool: ownership is always
// derived from the transfer log
//
// ids are stored as 8 byte big endian so the natural key order of a
// pool is the allocation order
package storage
