// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"sync"
	"testing"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/rpc"
)

func TestFinaliseWithoutInitialise(t *testing.T) {
	err := rpc.Finalise()
	if fault.NotInitialised != err {
		t.Errorf("error: %v  expected: %v", err, fault.NotInitialised)
	}
}

// concurrent shutdown attempts must serialise on the global lock
func TestFinaliseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := rpc.Finalise()
			if fault.NotInitialised != err {
				t.Errorf("error: %v  expected: %v", err, fault.NotInitialised)
			}
		}()
	}
	wg.Wait()
}
