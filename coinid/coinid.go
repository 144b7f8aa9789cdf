// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinid

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/coinmint-inc/coinmintd/fault"
)

// limits
//
// each component is a 16 bit field so the packed value is a total
// injective function of the triple: no two distinct triples inside
// the supported ranges can collide
const (
	ComponentLimit = 0xFFFF

	bit1Shift = 32
	bit2Shift = 16

	displayBytes = 12 // of the SHA3-256 digest
	displayGroup = 4  // hex digits per dash separated group
)

// Value - the packed numeric identity of a coin
type Value uint64

// Pack - combine the three components into a single value
//
// the only failure is a component outside its 16 bit range; the
// components are never truncated or wrapped
func Pack(bit1 uint64, bit2 uint64, bit3 uint64) (Value, error) {
	if bit1 > ComponentLimit || bit2 > ComponentLimit || bit3 > ComponentLimit {
		return 0, fault.InvalidCoinComponent
	}
	return Value(bit1<<bit1Shift | bit2<<bit2Shift | bit3), nil
}

// Unpack - split a value back into its three components
func (value Value) Unpack() (uint64, uint64, uint64) {
	v := uint64(value)
	return v >> bit1Shift & ComponentLimit, v >> bit2Shift & ComponentLimit, v & ComponentLimit
}

// Display - the human readable form of a value
//
// SHA3-256 of the big endian packed value, truncated and grouped as
// upper case hex: "XXXX-XXXX-XXXX-XXXX-XXXX-XXXX"
//
// this string is always recomputed on demand and never persisted, so
// the formatting rule can change without a data migration
func (value Value) Display() string {
	var buffer [8]byte
	binary.BigEndian.PutUint64(buffer[:], uint64(value))
	digest := sha3.Sum256(buffer[:])

	h := strings.ToUpper(hex.EncodeToString(digest[:displayBytes]))

	groups := make([]string, 0, len(h)/displayGroup)
	for i := 0; i < len(h); i += displayGroup {
		groups = append(groups, h[i:i+displayGroup])
	}
	return strings.Join(groups, "-")
}

// String - hex form of the packed value for use by the fmt package (for %s)
func (value Value) String() string {
	var buffer [8]byte
	binary.BigEndian.PutUint64(buffer[:], uint64(value))
	return hex.EncodeToString(buffer[:])
}

// GoString - hex form with a tag for use by the fmt package (for %#v)
func (value Value) GoString() string {
	return "<coin:" + value.String() + ">"
}
