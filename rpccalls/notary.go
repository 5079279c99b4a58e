// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/otclient/ledger"
)

func (c *Client) RetrieveAccount(server string, nym string, account string, force bool) bool {
	var result bool
	c.call("Ledger.RetrieveAccount", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Force:   force,
	}, &result)
	return result
}

func (c *Client) RetrieveNym(server string, nym string, force bool) bool {
	var result bool
	c.call("Ledger.RetrieveNym", &Arguments{
		Server: server,
		Nym:    nym,
		Force:  force,
	}, &result)
	return result
}

func (c *Client) RetrieveContract(server string, nym string, contract string) string {
	var result string
	c.call("Ledger.RetrieveContract", &Arguments{
		Server:   server,
		Nym:      nym,
		Contract: contract,
	}, &result)
	return result
}

func (c *Client) LoadOrRetrieveContract(server string, nym string, contract string) string {
	var result string
	c.call("Ledger.LoadOrRetrieveContract", &Arguments{
		Server:   server,
		Nym:      nym,
		Contract: contract,
	}, &result)
	return result
}

func (c *Client) LoadOrRetrieveMint(server string, nym string, asset string) string {
	var result string
	c.call("Ledger.LoadOrRetrieveMint", &Arguments{
		Server: server,
		Nym:    nym,
		Asset:  asset,
	}, &result)
	return result
}

func (c *Client) CheckNym(server string, nym string, target string) string {
	var result string
	c.call("Ledger.CheckNym", &Arguments{
		Server: server,
		Nym:    nym,
		Target: target,
	}, &result)
	return result
}

func (c *Client) RegisterNym(server string, nym string) string {
	var result string
	c.call("Ledger.RegisterNym", &Arguments{
		Server: server,
		Nym:    nym,
	}, &result)
	return result
}

func (c *Client) IssueAsset(server string, nym string, contract string) string {
	var result string
	c.call("Ledger.IssueAsset", &Arguments{
		Server:   server,
		Nym:      nym,
		Contract: contract,
	}, &result)
	return result
}

func (c *Client) CreateAccount(server string, nym string, asset string) string {
	var result string
	c.call("Ledger.CreateAccount", &Arguments{
		Server: server,
		Nym:    nym,
		Asset:  asset,
	}, &result)
	return result
}

func (c *Client) NewAccountID(reply string) string {
	var result string
	c.call("Ledger.NewAccountID", &Arguments{
		Reply: reply,
	}, &result)
	return result
}

func (c *Client) DeleteAccount(server string, nym string, account string) string {
	var result string
	c.call("Ledger.DeleteAccount", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
	}, &result)
	return result
}

func (c *Client) DepositCheque(server string, nym string, account string, cheque string) string {
	var result string
	c.call("Ledger.DepositCheque", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Cheque:  cheque,
	}, &result)
	return result
}

func (c *Client) DepositCash(server string, nym string, account string, purse string) ledger.Status {
	result := ledger.StatusError
	if nil != c.call("Ledger.DepositCash", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Purse:   purse,
	}, &result) {
		return ledger.StatusError
	}
	return result
}

func (c *Client) WithdrawCash(server string, nym string, account string, amount int64) string {
	var result string
	c.call("Ledger.WithdrawCash", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Amount:  amount,
	}, &result)
	return result
}

func (c *Client) WithdrawVoucher(server string, nym string, account string, recipient string, memo string, amount int64) string {
	var result string
	c.call("Ledger.WithdrawVoucher", &Arguments{
		Server:    server,
		Nym:       nym,
		Account:   account,
		Recipient: recipient,
		Memo:      memo,
		Amount:    amount,
	}, &result)
	return result
}

func (c *Client) InterpretReply(server string, nym string, account string, attempt string, reply string) ledger.Status {
	result := ledger.StatusError
	if nil != c.call("Ledger.InterpretReply", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Attempt: attempt,
		Reply:   reply,
	}, &result) {
		return ledger.StatusError
	}
	return result
}

func (c *Client) SendPayment(server string, nym string, recipient string, payment string) string {
	var result string
	c.call("Ledger.SendPayment", &Arguments{
		Server:    server,
		Nym:       nym,
		Recipient: recipient,
		Payment:   payment,
	}, &result)
	return result
}

func (c *Client) SendCash(server string, nym string, recipient string, purse string, retained string) string {
	var result string
	c.call("Ledger.SendCash", &Arguments{
		Server:    server,
		Nym:       nym,
		Recipient: recipient,
		Purse:     purse,
		Retained:  retained,
	}, &result)
	return result
}

func (c *Client) ExportCash(server string, nym string, asset string, recipient string, indices string, passwordProtected bool) (string, string) {
	var result ExportReply
	c.call("Ledger.ExportCash", &Arguments{
		Server:            server,
		Nym:               nym,
		Asset:             asset,
		Recipient:         recipient,
		Indices:           indices,
		PasswordProtected: passwordProtected,
	}, &result)
	return result.Exported, result.Retained
}

func (c *Client) SendTransfer(server string, nym string, from string, to string, amount int64, note string) string {
	var result string
	c.call("Ledger.SendTransfer", &Arguments{
		Server: server,
		Nym:    nym,
		From:   from,
		To:     to,
		Amount: amount,
		Note:   note,
	}, &result)
	return result
}

func (c *Client) SendMessage(server string, nym string, recipient string, message string) string {
	var result string
	c.call("Ledger.SendMessage", &Arguments{
		Server:    server,
		Nym:       nym,
		Recipient: recipient,
		Message:   message,
	}, &result)
	return result
}

func (c *Client) AcceptInboxItems(account string, itemType int32, indices string) bool {
	var result bool
	c.call("Ledger.AcceptInboxItems", &Arguments{
		Account:  account,
		ItemType: itemType,
		Indices:  indices,
	}, &result)
	return result
}

func (c *Client) CancelOutgoingPayments(nym string, account string, indices string) bool {
	var result bool
	c.call("Ledger.CancelOutgoingPayments", &Arguments{
		Nym:     nym,
		Account: account,
		Indices: indices,
	}, &result)
	return result
}

func (c *Client) DiscardIncomingPayments(server string, nym string, indices string) bool {
	var result bool
	c.call("Ledger.DiscardIncomingPayments", &Arguments{
		Server:  server,
		Nym:     nym,
		Indices: indices,
	}, &result)
	return result
}

func (c *Client) EnsureTransactionNumbers(count int32, server string, nym string) bool {
	var result bool
	c.call("Ledger.EnsureTransactionNumbers", &Arguments{
		Count:  count,
		Server: server,
		Nym:    nym,
	}, &result)
	return result
}

func (c *Client) HarvestTransactionNumbers(reply string, nym string) bool {
	var result bool
	c.call("Ledger.HarvestTransactionNumbers", &Arguments{
		Reply: reply,
		Nym:   nym,
	}, &result)
	return result
}

func (c *Client) MarketList(server string, nym string) string {
	var result string
	c.call("Ledger.MarketList", &Arguments{
		Server: server,
		Nym:    nym,
	}, &result)
	return result
}

func (c *Client) PingNotary(server string, nym string) int32 {
	result := int32(-1)
	if nil != c.call("Ledger.PingNotary", &Arguments{
		Server: server,
		Nym:    nym,
	}, &result) {
		return -1
	}
	return result
}

// VerifyMessageSuccess - an empty reply is a transport failure
func (c *Client) VerifyMessageSuccess(reply string) ledger.Status {
	if "" == reply {
		return ledger.StatusError
	}
	result := ledger.StatusError
	if nil != c.call("Ledger.VerifyMessageSuccess", &Arguments{
		Reply: reply,
	}, &result) {
		return ledger.StatusError
	}
	return result
}
