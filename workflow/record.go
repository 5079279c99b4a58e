// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"strconv"

	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

// RecordDisplay - table of an account's record box
func (e *Engine) RecordDisplay(accountRef string, noVerify bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(accountRef)
	if !ok {
		return false
	}
	e.recordHeader(a)

	box := e.ledger.LoadRecordBox(a.server, a.nym, a.id, !noVerify)
	if "" == box {
		return e.fail(fault.ErrNotFoundSubject, "record box of: %s is empty", a.id)
	}

	count := e.ledger.LedgerCount(a.server, a.nym, a.id, box)
	ok = true
	rows := make([][]string, 0, count)
	for i := int32(0); i < count; i += 1 {
		txn := e.ledger.LedgerTransaction(a.server, a.nym, a.id, box, i)
		if "" == txn {
			ok = false
			rows = append(rows, []string{"ERROR", "ERROR", "ERROR", "ERROR", "ERROR", ""})
			continue
		}
		t := e.ledger.Transaction(a.server, a.nym, a.id, txn)
		state := ""
		if t.Canceled {
			state = "canceled"
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ledger.LedgerTransactionID(a.server, a.nym, a.id, box, i), 10),
			t.Type,
			e.counterpartyName(t.SenderNym),
			e.counterpartyName(t.RecipientNym),
			e.ledger.FormatAmount(a.asset, t.Amount),
			state,
		})
	}
	e.console.Table([]string{"transaction", "type", "sender", "recipient", "amount", "state"}, rows)
	return ok
}

func (e *Engine) counterpartyName(id string) string {
	if "" == id {
		return "???"
	}
	return e.resolver.RecipientName(id)
}

// RecordClear - clear the whole record box, or only its expired items
func (e *Engine) RecordClear(accountRef string, all bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	a, ok := e.account(accountRef)
	if !ok {
		return false
	}
	e.recordHeader(a)

	if "" == e.ledger.LoadRecordBox(a.server, a.nym, a.id, true) {
		return e.fail(fault.ErrNotFoundSubject, "record box of: %s is empty", a.id)
	}

	if all {
		if !e.ledger.ClearRecord(a.server, a.nym, a.id, 0, true) {
			return e.fail(fault.ErrServerRejected, "clear record box of: %s", a.id)
		}
		return e.succeed("cleared record box of: %s", a.id)
	}
	if !e.ledger.ClearExpired(a.server, a.nym, 0, true) {
		return e.fail(fault.ErrServerRejected, "clear expired records of: %s", a.nym)
	}
	return e.succeed("cleared expired records of: %s", a.nym)
}

func (e *Engine) recordHeader(a account) {
	e.console.Field("nym", e.resolver.Name(subject.Nym, a.nym))
	e.console.Field("account", e.resolver.Name(subject.Account, a.id))
	e.console.Field("server", e.resolver.Name(subject.Server, a.server))
}
