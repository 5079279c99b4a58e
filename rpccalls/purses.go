// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/otclient/ledger"
)

func (c *Client) LoadPurse(server string, asset string, nym string) string {
	var result string
	c.call("Ledger.LoadPurse", &Arguments{
		Server: server,
		Asset:  asset,
		Nym:    nym,
	}, &result)
	return result
}

func (c *Client) Purse(server string, asset string, nym string, purse string) ledger.PurseContents {
	var result ledger.PurseContents
	c.call("Ledger.Purse", &Arguments{
		Server: server,
		Asset:  asset,
		Nym:    nym,
		Purse:  purse,
	}, &result)
	return result
}

func (c *Client) PurseHasPassword(server string, purse string) bool {
	var result bool
	c.call("Ledger.PurseHasPassword", &Arguments{
		Server: server,
		Purse:  purse,
	}, &result)
	return result
}

func (c *Client) CreatePurse(server string, asset string, owner string, signer string) string {
	var result string
	c.call("Ledger.CreatePurse", &Arguments{
		Server: server,
		Asset:  asset,
		Owner:  owner,
		Signer: signer,
	}, &result)
	return result
}

func (c *Client) SavePurse(server string, asset string, nym string, purse string) bool {
	var result bool
	c.call("Ledger.SavePurse", &Arguments{
		Server: server,
		Asset:  asset,
		Nym:    nym,
		Purse:  purse,
	}, &result)
	return result
}

func (c *Client) ImportPurse(server string, asset string, nym string, purse string) bool {
	var result bool
	c.call("Ledger.ImportPurse", &Arguments{
		Server: server,
		Asset:  asset,
		Nym:    nym,
		Purse:  purse,
	}, &result)
	return result
}
