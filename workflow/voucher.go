// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/ledger"
	"github.com/bitmark-inc/otclient/subject"
)

const (
	defaultMemo            = "(no memo)"
	withdrawVoucherAttempt = "withdraw_voucher"
)

// VoucherWithdraw - buy a voucher from the server payable to a
// recipient; the voucher is staged in the sender's outgoing payments
func (e *Engine) VoucherWithdraw(fromAccountRef string, fromNymRef string, toNymRef string, amount int64, memo string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if amount < 1 {
		return e.fail(fault.ErrInvalidAmount, "withdraw voucher: %d", amount)
	}
	a, ok := e.account(fromAccountRef)
	if !ok {
		return false
	}
	fromNym, ok := e.lookup(subject.Nym, fromNymRef)
	if !ok {
		return false
	}
	toNym := e.resolver.RecipientID(toNymRef, fromNym)
	if "" == toNym {
		return e.fail(fault.ErrNotFoundSubject, "withdraw voucher: recipient: %q", toNymRef)
	}

	if !e.sufficient(a, amount) {
		return false
	}
	if !e.ledger.EnsureTransactionNumbers(1, a.server, fromNym) {
		return e.fail(fault.ErrTransactionNumbers, "withdraw voucher")
	}
	if "" == memo {
		memo = defaultMemo
	}

	reply := e.ledger.WithdrawVoucher(a.server, fromNym, a.id, toNym, memo, amount)
	if !e.status("withdraw voucher", e.ledger.InterpretReply(a.server, fromNym, a.id, withdrawVoucherAttempt, reply)) {
		return false
	}

	replyLedger := e.ledger.MessageLedger(reply)
	if "" == replyLedger {
		return e.fail(fault.ErrServerRejected, "withdraw voucher: no ledger in reply")
	}
	transaction := e.ledger.LedgerTransaction(a.server, fromNym, a.id, replyLedger, 0)
	if "" == transaction {
		return e.fail(fault.ErrServerRejected, "withdraw voucher: no transaction in reply ledger")
	}
	voucher := e.ledger.TransactionVoucher(a.server, fromNym, a.id, transaction)
	if "" == voucher {
		return e.fail(fault.ErrServerRejected, "withdraw voucher: no voucher in transaction")
	}
	e.console.Text(voucher)

	// sending to itself places the voucher in the outgoing payments
	// ready to be forwarded
	if !e.verify("stage voucher", e.ledger.SendPayment(a.server, fromNym, fromNym, voucher)) {
		e.warn("withdraw voucher: voucher was not staged in outgoing payments of: %s", fromNym)
	}

	// the server has already debited the account
	if !e.ledger.RetrieveAccount(a.server, fromNym, a.id, true) {
		return e.fail(fault.ErrServerRejected, "withdraw voucher: refresh account: %s", a.id)
	}
	return e.succeed("withdrew voucher: %s for: %s", e.ledger.FormatAmount(a.asset, amount), e.resolver.RecipientName(toNym))
}

// VoucherCancel - deposit an unsent voucher back into its account,
// index -1 reads the voucher from the console
func (e *Engine) VoucherCancel(accountRef string, nymRef string, index int32, dryrun bool) bool {
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
	voucher, ok := e.instrumentAt(nym, index, "voucher")
	if !ok {
		return false
	}

	i := e.ledger.Instrument(voucher)
	if ledger.Voucher != i.Type {
		return e.fail(fault.ErrUnknownInstrumentType, "cancel voucher: type: %q", i.Type)
	}
	if i.Asset != a.asset {
		return e.fail(fault.ErrMismatchedAsset, "cancel voucher: voucher: %s  account: %s", i.Asset, a.asset)
	}

	if !e.verify("cancel voucher", e.ledger.DepositCheque(a.server, nym, a.id, voucher)) {
		return false
	}
	if index >= 0 && !e.ledger.RemoveOutpayment(nym, index) {
		e.warn("cancel voucher: outgoing payment: %d was not removed", index)
	}
	if !e.ledger.RetrieveAccount(a.server, nym, a.id, true) {
		return e.fail(fault.ErrServerRejected, "cancel voucher: refresh account: %s", a.id)
	}
	return e.succeed("cancelled voucher: %s into: %s", e.ledger.FormatAmount(a.asset, i.Amount), a.id)
}
