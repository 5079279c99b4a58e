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

// OutpaymentCheckIndex - true if index selects an outgoing payment
func (e *Engine) OutpaymentCheckIndex(nymRef string, index int32) bool {
	if !e.ready() {
		return false
	}
	nym := e.resolver.ID(subject.Nym, nymRef)
	if "" == nym {
		return false
	}
	return index >= 0 && index < e.ledger.OutpaymentCount(nym)
}

// OutpaymentCount - number of outgoing payments of a nym
func (e *Engine) OutpaymentCount(nymRef string) int32 {
	if !e.ready() {
		return 0
	}
	nym := e.resolver.ID(subject.Nym, nymRef)
	if "" == nym {
		return 0
	}
	return e.ledger.OutpaymentCount(nym)
}

// OutpaymentDisplay - table of a nym's outgoing payments
func (e *Engine) OutpaymentDisplay(nymRef string, dryrun bool) bool {
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

	count := e.ledger.OutpaymentCount(nym)
	rows := make([][]string, 0, count)
	for i := int32(0); i < count; i += 1 {
		payment := e.ledger.Outpayment(nym, i)
		instrument := e.ledger.Instrument(payment)
		rows = append(rows, []string{
			strconv.Itoa(int(i)),
			instrument.Type,
			e.ledger.FormatAmount(instrument.Asset, instrument.Amount),
			e.resolver.RecipientName(e.ledger.OutpaymentRecipient(nym, i)),
			e.resolver.Name(subject.Server, e.ledger.OutpaymentServer(nym, i)),
		})
	}
	e.console.Table([]string{"index", "type", "amount", "recipient", "server"}, rows)
	return true
}

// OutpaymentShow - print one outgoing payment and verify it
func (e *Engine) OutpaymentShow(nymRef string, index int32, dryrun bool) bool {
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
	payment, ok := e.instrumentAt(nym, index, "")
	if !ok {
		return false
	}

	e.console.Text(payment)
	e.instrumentInfo(payment)
	if e.ledger.VerifyOutpayment(nym, index) {
		e.console.Successf("verification succeeded")
	} else {
		e.console.Failuref("verification failed")
	}
	return true
}

// OutpaymentSend - send one or all outgoing payments to a recipient
func (e *Engine) OutpaymentSend(senderRef string, recipientRef string, index int32, all bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	sender, ok := e.lookup(subject.Nym, senderRef)
	if !ok {
		return false
	}
	recipient := e.resolver.RecipientID(recipientRef, sender)
	if "" == recipient {
		return e.fail(fault.ErrNotFoundSubject, "send payment: recipient: %q", recipientRef)
	}

	if !all {
		return e.sendOutpayment(sender, recipient, index)
	}
	count := e.ledger.OutpaymentCount(sender)
	if 0 == count {
		e.warn("send payments: no outgoing payments for: %s", sender)
		return true
	}
	return e.reverse("send payments", count, func(i int32) bool {
		return e.sendOutpayment(sender, recipient, i)
	})
}

// the sender is always refreshed as the send may consume transaction
// numbers; numbers of a failed send are harvested
func (e *Engine) sendOutpayment(sender string, recipient string, index int32) bool {
	count := e.ledger.OutpaymentCount(sender)
	if index < 0 || index >= count {
		return e.fail(fault.ErrIndexOutOfRange, "send payment: %d of: %d", index, count)
	}

	payment := e.ledger.Outpayment(sender, index)
	e.instrumentInfo(payment)

	server := e.ledger.Instrument(payment).Notary
	if "" == server {
		server = e.ledger.OutpaymentServer(sender, index)
	}

	e.console.Infof("sending to: %s", e.resolver.RecipientName(recipient))
	reply := e.ledger.SendPayment(server, sender, recipient, payment)
	status := e.ledger.VerifyMessageSuccess(reply)
	refreshed := e.ledger.RetrieveNym(server, sender, true)

	if !e.status("send payment", status) {
		harvested := e.ledger.HarvestTransactionNumbers(reply, sender)
		e.log.Infof("send payment: harvested transaction numbers: %t", harvested)
		return false
	}
	if !refreshed {
		return e.fail(fault.ErrServerRejected, "send payment: refresh nym: %s", sender)
	}
	return e.succeed("sent payment: %d to: %s", index, e.resolver.RecipientName(recipient))
}

// OutpaymentRemove - delete one or all outgoing payments
func (e *Engine) OutpaymentRemove(nymRef string, index int32, all bool, dryrun bool) bool {
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
	count := e.ledger.OutpaymentCount(nym)
	if 0 == count {
		return e.fail(fault.ErrIndexOutOfRange, "remove payment: no outgoing payments")
	}

	remove := func(i int32) bool {
		return e.ledger.RemoveOutpayment(nym, i)
	}
	if all {
		return e.reverse("remove payments", count, remove)
	}
	if index < 0 || index >= count {
		return e.fail(fault.ErrIndexOutOfRange, "remove payment: %d of: %d", index, count)
	}
	if !remove(index) {
		return e.fail(fault.ErrServerRejected, "remove payment: %d", index)
	}
	return e.succeed("removed outgoing payment: %d", index)
}

// OutpaymentDiscard - cancel an outgoing payment according to its type
func (e *Engine) OutpaymentDiscard(accountRef string, nymRef string, index int32, dryrun bool) bool {
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
	payment, ok := e.instrumentAt(nym, index, "")
	if !ok {
		return false
	}

	switch t := e.ledger.Instrument(payment).Type; t {
	case ledger.Cheque:
		return e.ChequeDiscard(accountRef, "^"+nym, index, false)
	case ledger.Voucher:
		return e.VoucherCancel(accountRef, "^"+nym, index, false)
	case ledger.Invoice, ledger.Purse:
		return e.fail(fault.ErrNotImplemented, "discard %s", t)
	default:
		return e.fail(fault.ErrUnknownInstrumentType, "discard payment: type: %q", t)
	}
}
