// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/coinmint-inc/coinmintd/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errInvalidOne  = fault.InvalidError("invalid one")
	errLengthOne   = fault.LengthError("length one")
	errNotFoundOne = fault.NotFoundError("not found one")
	errProcessOne  = fault.ProcessError("process one")
	errRecordOne   = fault.RecordError("record one")
)

// test that the error classes can be distinguished
func TestClassification(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{errExistsOne, true, false, false, false, false, false},
		{errInvalidOne, false, true, false, false, false, false},
		{errLengthOne, false, false, true, false, false, false},
		{errNotFoundOne, false, false, false, true, false, false},
		{errProcessOne, false, false, false, false, true, false},
		{errRecordOne, false, false, false, false, false, true},
		{fault.EmailAlreadyRegistered, true, false, false, false, false, false},
		{fault.InvalidCoinComponent, false, true, false, false, false, false},
		{fault.ExhaustedIdentitySpace, false, false, false, false, true, false},
		{fault.CorruptedLedger, false, false, false, false, false, true},
	}

	for i, item := range errorList {
		err := item.err
		if fault.IsErrExists(err) != item.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, item.exists, err)
		}
		if fault.IsErrInvalid(err) != item.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, item.invalid, err)
		}
		if fault.IsErrLength(err) != item.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, item.length, err)
		}
		if fault.IsErrNotFound(err) != item.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, item.notFound, err)
		}
		if fault.IsErrProcess(err) != item.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, item.process, err)
		}
		if fault.IsErrRecord(err) != item.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, item.record, err)
		}
	}
}
