// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/coinmint-inc/coinmintd/command/coinmint-cli/rpccalls"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing name")
	}
	email := c.String("email")
	if "" == email {
		return fmt.Errorf("missing email")
	}
	password := c.String("password")
	if "" == password {
		return fmt.Errorf("missing password")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterParty(&rpccalls.RegisterData{
		Name:     name,
		Email:    email,
		Phone:    c.String("phone"),
		Address:  c.String("address"),
		Password: password,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
