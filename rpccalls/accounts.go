// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

func (c *Client) AccountNym(account string) string {
	var result string
	c.call("Ledger.AccountNym", &Arguments{
		Account: account,
	}, &result)
	return result
}

func (c *Client) AccountServer(account string) string {
	var result string
	c.call("Ledger.AccountServer", &Arguments{
		Account: account,
	}, &result)
	return result
}

func (c *Client) AccountAsset(account string) string {
	var result string
	c.call("Ledger.AccountAsset", &Arguments{
		Account: account,
	}, &result)
	return result
}

func (c *Client) AccountBalance(account string) int64 {
	var result int64
	c.call("Ledger.AccountBalance", &Arguments{
		Account: account,
	}, &result)
	return result
}

func (c *Client) AccountType(account string) string {
	var result string
	c.call("Ledger.AccountType", &Arguments{
		Account: account,
	}, &result)
	return result
}

func (c *Client) StatAccount(account string) string {
	var result string
	c.call("Ledger.StatAccount", &Arguments{
		Account: account,
	}, &result)
	return result
}

func (c *Client) FormatAmount(asset string, amount int64) string {
	var result string
	c.call("Ledger.FormatAmount", &Arguments{
		Asset:  asset,
		Amount: amount,
	}, &result)
	return result
}
