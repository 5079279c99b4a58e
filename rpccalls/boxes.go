// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/otclient/ledger"
)

func (c *Client) LoadInbox(server string, nym string, account string) string {
	var result string
	c.call("Ledger.LoadInbox", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
	}, &result)
	return result
}

func (c *Client) LoadOutbox(server string, nym string, account string) string {
	var result string
	c.call("Ledger.LoadOutbox", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
	}, &result)
	return result
}

func (c *Client) LoadPaymentInbox(server string, nym string) string {
	var result string
	c.call("Ledger.LoadPaymentInbox", &Arguments{
		Server: server,
		Nym:    nym,
	}, &result)
	return result
}

func (c *Client) LoadRecordBox(server string, nym string, account string, verify bool) string {
	var result string
	c.call("Ledger.LoadRecordBox", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Verify:  verify,
	}, &result)
	return result
}

func (c *Client) LedgerCount(server string, nym string, account string, ledger string) int32 {
	var result int32
	c.call("Ledger.LedgerCount", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Ledger:  ledger,
	}, &result)
	return result
}

func (c *Client) LedgerTransaction(server string, nym string, account string, ledger string, index int32) string {
	var result string
	c.call("Ledger.LedgerTransaction", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Ledger:  ledger,
		Index:   index,
	}, &result)
	return result
}

func (c *Client) LedgerTransactionID(server string, nym string, account string, ledger string, index int32) int64 {
	var result int64
	c.call("Ledger.LedgerTransactionID", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Ledger:  ledger,
		Index:   index,
	}, &result)
	return result
}

func (c *Client) LedgerInstrument(server string, nym string, account string, ledger string, index int32) string {
	var result string
	c.call("Ledger.LedgerInstrument", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Ledger:  ledger,
		Index:   index,
	}, &result)
	return result
}

func (c *Client) Transaction(server string, nym string, account string, transaction string) ledger.Transaction {
	var result ledger.Transaction
	c.call("Ledger.Transaction", &Arguments{
		Server:      server,
		Nym:         nym,
		Account:     account,
		Transaction: transaction,
	}, &result)
	return result
}

func (c *Client) TransactionVoucher(server string, nym string, account string, transaction string) string {
	var result string
	c.call("Ledger.TransactionVoucher", &Arguments{
		Server:      server,
		Nym:         nym,
		Account:     account,
		Transaction: transaction,
	}, &result)
	return result
}

func (c *Client) MessageLedger(reply string) string {
	var result string
	c.call("Ledger.MessageLedger", &Arguments{
		Reply: reply,
	}, &result)
	return result
}

func (c *Client) RecordPayment(server string, nym string, inbox bool, index int32, saveCopy bool) bool {
	var result bool
	c.call("Ledger.RecordPayment", &Arguments{
		Server:   server,
		Nym:      nym,
		Inbox:    inbox,
		Index:    index,
		SaveCopy: saveCopy,
	}, &result)
	return result
}

func (c *Client) ClearRecord(server string, nym string, account string, index int32, all bool) bool {
	var result bool
	c.call("Ledger.ClearRecord", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Index:   index,
		All:     all,
	}, &result)
	return result
}

func (c *Client) ClearExpired(server string, nym string, index int32, all bool) bool {
	var result bool
	c.call("Ledger.ClearExpired", &Arguments{
		Server: server,
		Nym:    nym,
		Index:  index,
		All:    all,
	}, &result)
	return result
}
