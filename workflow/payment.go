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

// PaymentAccept - accept one incoming payment into an account, or all
// of them; index -1 selects the newest
func (e *Engine) PaymentAccept(accountRef string, index int32, all bool, dryrun bool) bool {
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

	inbox := e.ledger.LoadPaymentInbox(a.server, a.nym)
	if "" == inbox {
		return e.fail(fault.ErrNotFoundSubject, "load payment inbox of: %s", a.nym)
	}
	count := e.ledger.LedgerCount(a.server, a.nym, a.nym, inbox)
	if 0 == count {
		return e.fail(fault.ErrIndexOutOfRange, "accept payment: payment inbox is empty")
	}

	if all {
		return e.reverse("accept payments", count, func(i int32) bool {
			return e.acceptPayment(a, i)
		})
	}

	if index < 0 {
		index = count - 1
	}
	if index >= count {
		return e.fail(fault.ErrIndexOutOfRange, "accept payment: %d of: %d", index, count)
	}
	return e.acceptPayment(a, index)
}

func (e *Engine) acceptPayment(a account, index int32) bool {
	inbox := e.ledger.LoadPaymentInbox(a.server, a.nym)
	if "" == inbox {
		return e.fail(fault.ErrNotFoundSubject, "load payment inbox of: %s", a.nym)
	}
	payment := e.ledger.LedgerInstrument(a.server, a.nym, a.nym, inbox, index)
	if "" == payment {
		return e.fail(fault.ErrNotFoundSubject, "accept payment: %d", index)
	}
	i := e.ledger.Instrument(payment)
	if "" == i.Type {
		return e.fail(fault.ErrUnknownInstrumentType, "accept payment: %d", index)
	}
	if i.Asset != a.asset {
		return e.fail(fault.ErrMismatchedAsset, "accept payment: %d  payment: %s  account: %s", index, i.Asset, a.asset)
	}

	switch err := e.valid("accept payment", i); err {
	case nil:
	case fault.ErrInstrumentExpired:
		// move the payment to the record box, it can never be accepted
		if !e.ledger.RecordPayment(a.server, a.nym, true, index, true) {
			e.warn("accept payment: %d: expired payment was not recorded", index)
		}
		return e.fail(err, "accept payment: %d", index)
	default:
		return e.fail(err, "accept payment: %d", index)
	}

	switch i.Type {
	case ledger.Cheque, ledger.Voucher:
		status := e.ledger.VerifyMessageSuccess(e.ledger.DepositCheque(a.server, a.nym, a.id, payment))
		e.refreshAfterDeposit(a)
		if !e.status("deposit "+i.Type, status) {
			return false
		}

	case ledger.Purse:
		deposited := e.depositCash(a, a.nym, a.server, payment)
		if deposited && !e.ledger.RecordPayment(a.server, a.nym, true, index, true) {
			e.warn("accept payment: %d: deposited purse was not recorded", index)
		}
		e.refreshAfterDeposit(a)
		if !deposited {
			return false
		}

	case ledger.Invoice:
		return e.fail(fault.ErrNotImplemented, "accept payment: %d: invoice", index)

	default:
		return e.fail(fault.ErrUnknownInstrumentType, "accept payment: %d: type: %q", index, i.Type)
	}

	return e.succeed("accepted payment: %d  %s  %s into: %s", index, i.Type, e.ledger.FormatAmount(a.asset, i.Amount), a.id)
}

// refresh failure is reported but does not change the deposit result
func (e *Engine) refreshAfterDeposit(a account) {
	if !e.ledger.RetrieveAccount(a.server, a.nym, a.id, true) {
		e.warn("refresh of: %s after deposit failed", a.id)
	}
}

// PaymentShow - table of the payment inbox of a nym on a server
func (e *Engine) PaymentShow(nymRef string, serverRef string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}
	server, ok := e.lookup(subject.Server, serverRef)
	if !ok {
		return false
	}

	inbox := e.ledger.LoadPaymentInbox(server, nym)
	if "" == inbox {
		return e.fail(fault.ErrNotFoundSubject, "load payment inbox of: %s", nym)
	}
	count := e.ledger.LedgerCount(server, nym, nym, inbox)
	now := e.ledger.Time()

	rows := make([][]string, 0, count)
	for j := int32(0); j < count; j += 1 {
		i := e.ledger.Instrument(e.ledger.LedgerInstrument(server, nym, nym, inbox, j))
		status := "valid"
		if i.Expired(now) {
			status = "expired"
		} else if i.NotYetValid(now) {
			status = "not yet valid"
		}
		rows = append(rows, []string{
			strconv.Itoa(int(j)),
			i.Type,
			e.ledger.FormatAmount(i.Asset, i.Amount),
			e.resolver.Name(subject.Asset, i.Asset),
			e.resolver.RecipientName(i.SenderNym),
			i.Memo,
			status,
		})
	}
	e.console.Table([]string{"index", "type", "amount", "asset", "from", "memo", "status"}, rows)
	return true
}

// PaymentDiscard - discard one or all incoming payments of a nym on the
// default server, an empty nym discards the newest payment of the
// default nym
func (e *Engine) PaymentDiscard(nymRef string, index int32, all bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	server, ok := e.defaultOf(subject.Server)
	if !ok {
		return false
	}

	var nym string
	if "" == nymRef {
		if nym, ok = e.defaultOf(subject.Nym); !ok {
			return false
		}
		index = -1
	} else if nym, ok = e.lookup(subject.Nym, nymRef); !ok {
		return false
	}
	return e.discardPayments(server, nym, index, all)
}

// PaymentDiscardAll - discard every incoming payment of every nym
func (e *Engine) PaymentDiscardAll(dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	server, ok := e.defaultOf(subject.Server)
	if !ok {
		return false
	}

	nyms := e.nyms.IDs()
	succeeded := int32(0)
	for _, nym := range nyms {
		if e.discardPayments(server, nym, -1, true) {
			succeeded += 1
		}
	}
	if 0 == len(nyms) {
		e.warn("discard payments: wallet has no nyms")
		return true
	}
	return e.tally("discard payments of all nyms", int32(len(nyms)), succeeded)
}

func (e *Engine) discardPayments(server string, nym string, index int32, all bool) bool {
	inbox := e.ledger.LoadPaymentInbox(server, nym)
	if "" == inbox {
		return e.fail(fault.ErrNotFoundSubject, "load payment inbox of: %s", nym)
	}
	count := e.ledger.LedgerCount(server, nym, nym, inbox)
	if 0 == count {
		e.log.Infof("discard payments: payment inbox of: %s is empty", nym)
		return true
	}

	if !all {
		if index < 0 {
			index = count - 1
		}
		if index >= count {
			return e.fail(fault.ErrIndexOutOfRange, "discard payment: %d of: %d", index, count)
		}
		if !e.ledger.DiscardIncomingPayments(server, nym, strconv.Itoa(int(index))) {
			return e.fail(fault.ErrServerRejected, "discard payment: %d", index)
		}
		return e.succeed("discarded payment: %d of: %s", index, nym)
	}

	// each discard shifts the remaining items down to index zero
	succeeded := int32(0)
	for i := int32(0); i < count; i += 1 {
		if e.ledger.DiscardIncomingPayments(server, nym, "0") {
			succeeded += 1
		}
	}
	return e.tally("discard payments of: "+nym, count, succeeded)
}
