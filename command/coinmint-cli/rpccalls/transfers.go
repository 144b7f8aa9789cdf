// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/coinmint-inc/coinmintd/rpc/transfers"
)

// ListTransfers - request a page of the transfer log, newest first
func (client *Client) ListTransfers(start uint64, count int) (*transfers.ListReply, error) {
	arguments := transfers.ListArguments{
		Start: start,
		Count: count,
	}

	client.printJson("Transfers.List request", arguments)

	var reply transfers.ListReply
	if err := client.client.Call("Transfers.List", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Transfers.List reply", reply)

	return &reply, nil
}
