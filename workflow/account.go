// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"strconv"

	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/ledger"
	"github.com/bitmark-inc/otclient/subject"
)

// inbox accept item type selecting every kind of item
const acceptAllTypes = int32(0)

// AccountCreate - open a new named account for a nym on the default server
func (e *Engine) AccountCreate(nymRef string, assetRef string, name string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}

	if e.resolver.Exists(subject.Account, name) {
		return e.fail(fault.ErrSubjectExists, "create account: %q", name)
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}
	asset, ok := e.lookup(subject.Asset, assetRef)
	if !ok {
		return false
	}
	server, ok := e.defaultOf(subject.Server)
	if !ok {
		return false
	}

	reply := e.ledger.CreateAccount(server, nym, asset)
	if !e.verify("create account", reply) {
		return false
	}
	id := e.ledger.NewAccountID(reply)
	if "" == id {
		return e.fail(fault.ErrServerRejected, "create account: no account id in reply")
	}
	if !e.ledger.SetName(subject.Account, id, nym, name) {
		e.warn("create account: %s: could not set name: %q", id, name)
	}

	if !e.ledger.RetrieveAccount(server, nym, id, true) {
		return e.fail(fault.ErrServerRejected, "create account: %s: refresh", id)
	}
	return e.succeed("created account: %q (%s)", name, id)
}

// AccountDisplay - show the details of one account
func (e *Engine) AccountDisplay(ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(ref)
	if !ok {
		return false
	}

	e.console.Field("account", e.resolver.Name(subject.Account, a.id)+" ("+a.id+")")
	e.console.Field("nym", e.resolver.Name(subject.Nym, a.nym)+" ("+a.nym+")")
	e.console.Field("server", e.resolver.Name(subject.Server, a.server)+" ("+a.server+")")
	e.console.Field("asset", e.resolver.Name(subject.Asset, a.asset)+" ("+a.asset+")")
	e.console.Field("type", e.ledger.AccountType(a.id))
	e.console.Field("balance", e.ledger.FormatAmount(a.asset, e.ledger.AccountBalance(a.id)))
	if stat := e.ledger.StatAccount(a.id); "" != stat {
		e.console.Text(stat)
	}
	return true
}

// AccountDisplayAll - table of every wallet account
func (e *Engine) AccountDisplayAll(dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}

	count := e.ledger.Count(subject.Account)
	rows := make([][]string, 0, count)
	for i := int32(0); i < count; i += 1 {
		id := e.ledger.IDAt(subject.Account, i)
		asset := e.ledger.AccountAsset(id)
		rows = append(rows, []string{
			strconv.Itoa(int(i)),
			e.ledger.NameOf(subject.Account, id),
			id,
			e.ledger.FormatAmount(asset, e.ledger.AccountBalance(id)),
			e.resolver.Name(subject.Asset, asset),
			e.resolver.Name(subject.Nym, e.ledger.AccountNym(id)),
		})
	}
	e.console.Table([]string{"index", "name", "id", "balance", "asset", "nym"}, rows)
	return true
}

// AccountRefresh - download the latest account state, or every account
func (e *Engine) AccountRefresh(ref string, all bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}

	if !all {
		a, ok := e.account(ref)
		if !ok {
			return false
		}
		if !e.ledger.RetrieveAccount(a.server, a.nym, a.id, true) {
			return e.fail(fault.ErrServerRejected, "refresh account: %s", a.id)
		}
		return e.succeed("refreshed account: %s", e.resolver.Describe(subject.Account, "^"+a.id))
	}

	count := e.ledger.Count(subject.Account)
	if 0 == count {
		e.warn("refresh accounts: wallet has no accounts")
		return true
	}

	succeeded := int32(0)
	for i := int32(0); i < count; i += 1 {
		id := e.ledger.IDAt(subject.Account, i)
		if e.ledger.RetrieveAccount(e.ledger.AccountServer(id), e.ledger.AccountNym(id), id, false) {
			succeeded += 1
		} else {
			e.log.Warnf("refresh account: %s failed", id)
		}
	}
	return e.tally("refresh accounts", count, succeeded)
}

// AccountRemove - delete an account from the server and the wallet
func (e *Engine) AccountRemove(ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(ref)
	if !ok {
		return false
	}

	if !e.ledger.CanRemove(subject.Account, a.id) {
		return e.fail(fault.ErrServerRejected, "remove account: %s is not empty or has pending items", a.id)
	}
	if !e.verify("remove account", e.ledger.DeleteAccount(a.server, a.nym, a.id)) {
		return false
	}
	return e.succeed("removed account: %s", a.id)
}

// AccountRename - change the display name of an account
func (e *Engine) AccountRename(ref string, name string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if "" == name {
		return e.fail(fault.ErrEmptyInput, "rename account")
	}
	a, ok := e.account(ref)
	if !ok {
		return false
	}
	if !e.ledger.SetName(subject.Account, a.id, a.nym, name) {
		return e.fail(fault.ErrServerRejected, "rename account: %s", a.id)
	}
	return e.succeed("renamed account: %s to: %q", a.id, name)
}

// AccountTransfer - move an amount between accounts of the same asset
func (e *Engine) AccountTransfer(fromRef string, toRef string, amount int64, note string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if amount < 1 {
		return e.fail(fault.ErrInvalidAmount, "transfer: %d", amount)
	}
	from, ok := e.account(fromRef)
	if !ok {
		return false
	}
	to, ok := e.lookup(subject.Account, toRef)
	if !ok {
		return false
	}

	// a destination outside the wallet has no local asset to compare
	if toAsset := e.ledger.AccountAsset(to); "" != toAsset && toAsset != from.asset {
		return e.fail(fault.ErrMismatchedAsset, "transfer: %s to: %s", from.id, to)
	}

	reply := e.ledger.SendTransfer(from.server, from.nym, from.id, to, amount, note)
	if !e.verify("transfer", reply) {
		return false
	}
	if !e.ledger.RetrieveAccount(from.server, from.nym, from.id, true) {
		e.warn("transfer: refresh of: %s failed", from.id)
	}
	return e.succeed("transferred: %s from: %s to: %s", e.ledger.FormatAmount(from.asset, amount), from.id, to)
}

// AccountInDisplay - list the inbox of an account
func (e *Engine) AccountInDisplay(ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(ref)
	if !ok {
		return false
	}

	inbox := e.ledger.LoadInbox(a.server, a.nym, a.id)
	if "" == inbox {
		return e.fail(fault.ErrNotFoundSubject, "load inbox: %s", a.id)
	}
	return e.showLedger(a, inbox, true)
}

// AccountOutDisplay - list the outbox of an account
func (e *Engine) AccountOutDisplay(ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(ref)
	if !ok {
		return false
	}

	if !e.ledger.RetrieveAccount(a.server, a.nym, a.id, true) {
		e.warn("outbox: refresh of: %s failed", a.id)
	}
	outbox := e.ledger.LoadOutbox(a.server, a.nym, a.id)
	if "" == outbox {
		return e.fail(fault.ErrNotFoundSubject, "load outbox: %s", a.id)
	}
	return e.showLedger(a, outbox, false)
}

// table of the transactions in an account ledger
func (e *Engine) showLedger(a account, box string, incoming bool) bool {
	count := e.ledger.LedgerCount(a.server, a.nym, a.id, box)
	if 0 == count {
		e.console.Infof("no items")
		return true
	}

	ok := true
	rows := make([][]string, 0, count)
	for i := int32(0); i < count; i += 1 {
		txn := e.ledger.LedgerTransaction(a.server, a.nym, a.id, box, i)
		if "" == txn {
			ok = false
			rows = append(rows, []string{strconv.Itoa(int(i)), "ERROR", "", "", ""})
			continue
		}
		t := e.ledger.Transaction(a.server, a.nym, a.id, txn)
		counterparty := t.RecipientNym
		if incoming {
			counterparty = t.SenderNym
		}
		rows = append(rows, []string{
			strconv.Itoa(int(i)),
			strconv.FormatInt(e.ledger.LedgerTransactionID(a.server, a.nym, a.id, box, i), 10),
			t.Type,
			e.ledger.FormatAmount(a.asset, t.Amount),
			e.resolver.RecipientName(counterparty),
		})
	}
	e.console.Table([]string{"index", "transaction", "type", "amount", "counterparty"}, rows)
	return ok
}

// AccountInAccept - accept one inbox item or all of them
func (e *Engine) AccountInAccept(ref string, index int32, all bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(ref)
	if !ok {
		return false
	}

	if !all {
		if !e.ledger.AcceptInboxItems(a.id, acceptAllTypes, strconv.Itoa(int(index))) {
			return e.fail(fault.ErrServerRejected, "accept inbox item: %d of: %s", index, a.id)
		}
		return e.succeed("accepted inbox item: %d of: %s", index, a.id)
	}

	if !e.ledger.RetrieveAccount(a.server, a.nym, a.id, true) {
		e.warn("accept inbox: refresh of: %s failed", a.id)
	}
	inbox := e.ledger.LoadInbox(a.server, a.nym, a.id)
	if "" == inbox {
		return e.fail(fault.ErrNotFoundSubject, "load inbox: %s", a.id)
	}
	count := e.ledger.LedgerCount(a.server, a.nym, a.id, inbox)
	if 0 == count {
		e.warn("accept inbox: %s: inbox is empty", a.id)
		return true
	}

	// each accepted item leaves the inbox, so index zero is always next
	succeeded := int32(0)
	for i := int32(0); i < count; i += 1 {
		if e.acceptFirst(a.id) {
			succeeded += 1
		}
	}
	result := e.tally("accept inbox", count, succeeded)

	if succeeded == count && !e.ledger.RetrieveAccount(a.server, a.nym, a.id, true) {
		e.warn("accept inbox: refresh of: %s failed", a.id)
	}
	return result
}

// accept inbox item zero with a single retry
func (e *Engine) acceptFirst(account string) bool {
	if e.ledger.AcceptInboxItems(account, acceptAllTypes, "0") {
		return true
	}
	e.log.Warnf("accept inbox item of: %s failed, retrying", account)
	return e.ledger.AcceptInboxItems(account, acceptAllTypes, "0")
}

// AccountOutCancel - cancel an outgoing payment still in the outbox
func (e *Engine) AccountOutCancel(ref string, index int32, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(ref)
	if !ok {
		return false
	}
	if !e.ledger.CancelOutgoingPayments(a.nym, a.id, strconv.Itoa(int(index))) {
		return e.fail(fault.ErrServerRejected, "cancel outbox item: %d of: %s", index, a.id)
	}
	return e.succeed("cancelled outbox item: %d of: %s", index, a.id)
}

// balance check for accounts that cannot go negative
func (e *Engine) sufficient(a account, amount int64) bool {
	if ledger.SimpleAccount != e.ledger.AccountType(a.id) {
		return true
	}
	balance := e.ledger.AccountBalance(a.id)
	if balance < amount {
		return e.fail(fault.ErrInsufficientFunds, "account: %s  balance: %s  required: %s",
			a.id, e.ledger.FormatAmount(a.asset, balance), e.ledger.FormatAmount(a.asset, amount))
	}
	return true
}
