// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/coinmint-inc/coinmintd/rpc/parties"
)

// RegisterData - data for a registration request
type RegisterData struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// RegisterParty - create a new party with a credential
func (client *Client) RegisterParty(data *RegisterData) (*parties.RegisterReply, error) {
	arguments := parties.RegisterArguments{
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Address:  data.Address,
		Password: data.Password,
	}

	// never echo the password
	client.printJson("Parties.Register request", struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{Name: data.Name, Email: data.Email})

	var reply parties.RegisterReply
	if err := client.client.Call("Parties.Register", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Parties.Register reply", reply)

	return &reply, nil
}

// LoginParty - verify a credential
func (client *Client) LoginParty(email string, password string) (*parties.LoginReply, error) {
	arguments := parties.LoginArguments{
		Email:    email,
		Password: password,
	}

	var reply parties.LoginReply
	if err := client.client.Call("Parties.Login", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Parties.Login reply", reply)

	return &reply, nil
}
