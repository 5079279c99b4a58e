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

const timeFormat = "2006-01-02 15:04:05"

// CashWithdraw - withdraw cash from an account into the owner's purse
func (e *Engine) CashWithdraw(accountRef string, amount int64, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if amount < 1 {
		return e.fail(fault.ErrInvalidAmount, "withdraw cash: %d", amount)
	}
	a, ok := e.account(accountRef)
	if !ok {
		return false
	}
	if !e.withdrawCash(a, amount) {
		return false
	}
	return e.succeed("withdrew cash: %s from: %s", e.ledger.FormatAmount(a.asset, amount), a.id)
}

// contract, then mint, then withdraw; the account's notary is used
// throughout
func (e *Engine) withdrawCash(a account, amount int64) bool {
	if "" == e.ledger.LoadAssetContract(a.asset) {
		e.log.Infof("withdraw cash: retrieving asset contract: %s", a.asset)
		if !e.verify("retrieve asset contract", e.ledger.RetrieveContract(a.server, a.nym, a.asset)) {
			return false
		}
		if "" == e.ledger.LoadAssetContract(a.asset) {
			return e.fail(fault.ErrNotFoundSubject, "withdraw cash: asset contract: %s", a.asset)
		}
	}

	if "" == e.ledger.LoadOrRetrieveMint(a.server, a.nym, a.asset) {
		return e.fail(fault.ErrNotFoundSubject, "withdraw cash: mint for asset: %s", a.asset)
	}

	return e.verify("withdraw cash", e.ledger.WithdrawCash(a.server, a.nym, a.id, amount))
}

// CashExport - export the whole purse of an account's asset to a recipient
func (e *Engine) CashExport(senderRef string, recipientRef string, accountRef string, passwordProtected bool, dryrun bool) bool {
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
	sender, ok := e.lookup(subject.Nym, senderRef)
	if !ok {
		return false
	}
	recipient := ""
	if !passwordProtected {
		recipient = e.resolver.RecipientID(recipientRef, sender)
		if "" == recipient {
			return e.fail(fault.ErrNotFoundSubject, "export cash: recipient: %q", recipientRef)
		}
	}

	exported, _, ok := e.exportCash(a, sender, recipient, passwordProtected)
	if !ok {
		return false
	}
	e.console.Text(exported)
	return e.succeed("exported cash of asset: %s", a.asset)
}

// returns the exported purse and the retained copy
func (e *Engine) exportCash(a account, sender string, recipient string, passwordProtected bool) (string, string, bool) {
	if "" == e.ledger.LoadOrRetrieveContract(a.server, sender, a.asset) {
		return "", "", e.fail(fault.ErrNotFoundSubject, "export cash: asset contract: %s", a.asset)
	}
	exported, retained := e.ledger.ExportCash(a.server, sender, a.asset, recipient, "", passwordProtected)
	if "" == exported {
		return "", "", e.fail(fault.ErrServerRejected, "export cash: asset: %s", a.asset)
	}
	return exported, retained, true
}

// CashSend - withdraw cash and send it to a recipient, a failed send
// puts the retained copy back into the purse
func (e *Engine) CashSend(accountRef string, recipientRef string, amount int64, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if amount < 1 {
		return e.fail(fault.ErrInvalidAmount, "send cash: %d", amount)
	}
	a, ok := e.account(accountRef)
	if !ok {
		return false
	}
	recipient := e.resolver.RecipientID(recipientRef, a.nym)
	if "" == recipient {
		return e.fail(fault.ErrNotFoundSubject, "send cash: recipient: %q", recipientRef)
	}

	if !e.withdrawCash(a, amount) {
		return false
	}
	exported, retained, ok := e.exportCash(a, a.nym, recipient, false)
	if !ok {
		return false
	}

	if e.verify("send cash", e.ledger.SendCash(a.server, a.nym, recipient, exported, retained)) {
		return e.succeed("sent cash: %s to: %s", e.ledger.FormatAmount(a.asset, amount), e.resolver.RecipientName(recipient))
	}

	if e.ledger.ImportPurse(a.server, a.asset, a.nym, retained) {
		e.warn("send cash failed: retained copy returned to the purse of: %s", a.nym)
	} else {
		e.log.Criticalf("send cash failed: retained copy could not be re-imported for: %s", a.nym)
		e.console.Failuref("send cash failed: retained copy could not be re-imported")
	}
	return false
}

// CashImport - add a composed purse to the wallet
func (e *Engine) CashImport(nymRef string, file string, dryrun bool) bool {
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
	purse, ok := e.text(file, "cash purse")
	if !ok {
		return false
	}

	i := e.ledger.Instrument(purse)
	if ledger.Purse != i.Type {
		return e.fail(fault.ErrUnknownInstrumentType, "import cash: type: %q", i.Type)
	}
	if "" == i.Notary {
		return e.fail(fault.ErrNotFoundSubject, "import cash: purse has no server")
	}
	if "" == i.Asset {
		return e.fail(fault.ErrNotFoundSubject, "import cash: purse has no asset")
	}

	owner := nym
	if !e.ledger.PurseHasPassword(i.Notary, purse) && "" != i.RecipientNym {
		owner = i.RecipientNym
	}
	if !e.ledger.ImportPurse(i.Notary, i.Asset, owner, purse) {
		return e.fail(fault.ErrServerRejected, "import cash for: %s", owner)
	}
	return e.succeed("imported cash of asset: %s for: %s", i.Asset, owner)
}

// CashDeposit - deposit a composed purse, or the local purse if
// nothing is composed, into an account
func (e *Engine) CashDeposit(accountRef string, file string, dryrun bool) bool {
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

	var purse string
	var err error
	if "" != file {
		purse, err = e.input.ReadFile(file)
	} else {
		purse, err = e.input.Compose("cash purse (empty for the local purse)")
	}
	if nil != err && fault.ErrEmptyInput != err {
		return e.fail(err, "deposit cash")
	}

	if !e.depositCash(a, a.nym, a.server, purse) {
		return false
	}
	return e.succeed("deposited cash into: %s", a.id)
}

// an empty purse means the nym's local purse
func (e *Engine) depositCash(a account, nym string, server string, purse string) bool {
	if "" == purse {
		purse = e.ledger.LoadPurse(server, a.asset, nym)
		if "" == purse {
			return e.fail(fault.ErrNotFoundSubject, "deposit cash: no local purse for: %s", nym)
		}
	}
	return e.status("deposit cash", e.ledger.DepositCash(server, nym, a.id, purse))
}

// CashShow - list the tokens in the purse of an account's owner
func (e *Engine) CashShow(accountRef string, dryrun bool) bool {
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
	purse := e.ledger.LoadPurse(a.server, a.asset, a.nym)
	if "" == purse {
		return e.fail(fault.ErrNotFoundSubject, "show cash: no purse for: %s", a.nym)
	}
	return e.showPurse(a.server, a.asset, a.nym, purse)
}

func (e *Engine) showPurse(server string, asset string, nym string, purse string) bool {
	contents := e.ledger.Purse(server, asset, nym, purse)
	now := e.ledger.Time()

	rows := make([][]string, 0, len(contents.Tokens))
	for i, t := range contents.Tokens {
		status := "valid"
		if now.Before(t.ValidFrom) {
			status = "not yet valid"
		} else if !t.ValidTo.IsZero() && now.After(t.ValidTo) {
			status = "expired"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			e.ledger.FormatAmount(asset, t.Denomination),
			strconv.Itoa(int(t.Series)),
			t.ValidFrom.Format(timeFormat),
			t.ValidTo.Format(timeFormat),
			status,
		})
	}
	e.console.Field("total", e.ledger.FormatAmount(asset, contents.Total))
	e.console.Table([]string{"index", "value", "series", "valid from", "valid to", "status"}, rows)
	return true
}
