// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"time"

	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

// how long a new cheque can be deposited
const chequeValidity = 180 * 24 * time.Hour

// ChequeCreate - write a cheque drawn on an account
func (e *Engine) ChequeCreate(accountRef string, recipientRef string, amount int64, memo string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if amount < 1 {
		return e.fail(fault.ErrInvalidAmount, "write cheque: %d", amount)
	}
	a, ok := e.account(accountRef)
	if !ok {
		return false
	}

	// a blank recipient makes a bearer cheque
	recipient := ""
	if "" != recipientRef {
		recipient = e.resolver.RecipientID(recipientRef, a.nym)
		if "" == recipient {
			return e.fail(fault.ErrNotFoundSubject, "write cheque: recipient: %q", recipientRef)
		}
	}

	if !e.ledger.RetrieveNym(a.server, a.nym, true) {
		return e.fail(fault.ErrServerRejected, "write cheque: refresh nym: %s", a.nym)
	}
	if !e.ledger.EnsureTransactionNumbers(1, a.server, a.nym) {
		return e.fail(fault.ErrTransactionNumbers, "write cheque")
	}

	from := e.ledger.Time()
	cheque := e.ledger.WriteCheque(a.server, amount, from, from.Add(chequeValidity), a.id, a.nym, memo, recipient)
	if "" == cheque {
		return e.fail(fault.ErrServerRejected, "write cheque")
	}

	refreshed := e.ledger.RetrieveAccount(a.server, a.nym, a.id, true)
	e.console.Text(cheque)
	e.instrumentInfo(cheque)
	if !refreshed {
		return e.fail(fault.ErrServerRejected, "write cheque: refresh account: %s", a.id)
	}
	return e.succeed("wrote cheque: %s from: %s", e.ledger.FormatAmount(a.asset, amount), a.id)
}

// ChequeDiscard - release the transaction number of an unused cheque,
// index -1 reads the cheque from the console
func (e *Engine) ChequeDiscard(accountRef string, nymRef string, index int32, dryrun bool) bool {
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
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}
	cheque, ok := e.instrumentAt(nym, index, "cheque")
	if !ok {
		return false
	}

	server := e.ledger.Instrument(cheque).Notary
	if "" == server {
		return e.fail(fault.ErrNotFoundSubject, "discard cheque: no server in cheque")
	}
	if !e.ledger.DiscardCheque(server, nym, a.id, cheque) {
		return e.fail(fault.ErrServerRejected, "discard cheque")
	}
	if index >= 0 && !e.ledger.RemoveOutpayment(nym, index) {
		e.warn("discard cheque: outgoing payment: %d was not removed", index)
	}
	if !e.ledger.RetrieveAccount(server, nym, a.id, true) {
		e.warn("discard cheque: refresh of: %s failed", a.id)
	}
	return e.succeed("discarded cheque from: %s", a.id)
}
