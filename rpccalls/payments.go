// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/otclient/ledger"
)

func (c *Client) OutpaymentCount(nym string) int32 {
	var result int32
	c.call("Ledger.OutpaymentCount", &Arguments{
		Nym: nym,
	}, &result)
	return result
}

func (c *Client) Outpayment(nym string, index int32) string {
	var result string
	c.call("Ledger.Outpayment", &Arguments{
		Nym:   nym,
		Index: index,
	}, &result)
	return result
}

func (c *Client) OutpaymentRecipient(nym string, index int32) string {
	var result string
	c.call("Ledger.OutpaymentRecipient", &Arguments{
		Nym:   nym,
		Index: index,
	}, &result)
	return result
}

func (c *Client) OutpaymentServer(nym string, index int32) string {
	var result string
	c.call("Ledger.OutpaymentServer", &Arguments{
		Nym:   nym,
		Index: index,
	}, &result)
	return result
}

func (c *Client) VerifyOutpayment(nym string, index int32) bool {
	var result bool
	c.call("Ledger.VerifyOutpayment", &Arguments{
		Nym:   nym,
		Index: index,
	}, &result)
	return result
}

func (c *Client) RemoveOutpayment(nym string, index int32) bool {
	var result bool
	c.call("Ledger.RemoveOutpayment", &Arguments{
		Nym:   nym,
		Index: index,
	}, &result)
	return result
}

func (c *Client) MailCount(nym string, box ledger.MailBox) int32 {
	var result int32
	c.call("Ledger.MailCount", &Arguments{
		Nym: nym,
		Box: int32(box),
	}, &result)
	return result
}

func (c *Client) Mail(nym string, box ledger.MailBox, index int32) string {
	var result string
	c.call("Ledger.Mail", &Arguments{
		Nym:   nym,
		Box:   int32(box),
		Index: index,
	}, &result)
	return result
}

func (c *Client) MailCounterparty(nym string, box ledger.MailBox, index int32) string {
	var result string
	c.call("Ledger.MailCounterparty", &Arguments{
		Nym:   nym,
		Box:   int32(box),
		Index: index,
	}, &result)
	return result
}

func (c *Client) MailServer(nym string, box ledger.MailBox, index int32) string {
	var result string
	c.call("Ledger.MailServer", &Arguments{
		Nym:   nym,
		Box:   int32(box),
		Index: index,
	}, &result)
	return result
}

func (c *Client) RemoveMail(nym string, box ledger.MailBox, index int32) bool {
	var result bool
	c.call("Ledger.RemoveMail", &Arguments{
		Nym:   nym,
		Box:   int32(box),
		Index: index,
	}, &result)
	return result
}
