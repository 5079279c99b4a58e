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

// PrintInstrumentInfo - describe a composed instrument
func (e *Engine) PrintInstrumentInfo(file string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	instrument, ok := e.text(file, "instrument")
	if !ok {
		return false
	}
	return e.instrumentInfo(instrument)
}

func (e *Engine) instrumentInfo(instrument string) bool {
	i := e.ledger.Instrument(instrument)
	if "" == i.Type {
		return e.fail(fault.ErrUnknownInstrumentType, "instrument info")
	}

	e.console.Field("type", i.Type)
	e.console.Field("amount", e.ledger.FormatAmount(i.Asset, i.Amount))
	e.console.Field("transaction", i.TransactionNumber)
	e.console.Field("asset", e.resolver.Name(subject.Asset, i.Asset)+" ("+i.Asset+")")
	e.console.Field("server", e.resolver.Name(subject.Server, i.Notary)+" ("+i.Notary+")")
	e.console.Field("sender", e.resolver.RecipientName(i.SenderNym))
	if "" != i.SenderAccount {
		e.console.Field("sender account", i.SenderAccount)
	}
	e.console.Field("recipient", e.resolver.RecipientName(i.RecipientNym))
	if "" != i.RecipientAccount {
		e.console.Field("recipient account", i.RecipientAccount)
	}
	if "" != i.Memo {
		e.console.Field("memo", i.Memo)
	}

	now := e.ledger.Time()
	e.console.Field("valid from", i.ValidFrom.Format(timeFormat))
	if i.ValidTo.IsZero() {
		e.console.Field("valid to", "no expiry")
	} else {
		e.console.Field("valid to", i.ValidTo.Format(timeFormat))
	}
	switch {
	case i.Expired(now):
		e.console.Warningf("instrument is EXPIRED")
	case i.NotYetValid(now):
		e.console.Warningf("instrument is not yet valid")
	}
	return true
}

// instrument from compose when index is negative, otherwise from the
// nym's outgoing payment slot
func (e *Engine) instrumentAt(nym string, index int32, prompt string) (string, bool) {
	if index < 0 {
		return e.text("", prompt)
	}
	count := e.ledger.OutpaymentCount(nym)
	if 0 == count || index >= count {
		return "", e.fail(fault.ErrIndexOutOfRange, "outpayment: %d of: %d", index, count)
	}
	instrument := e.ledger.Outpayment(nym, index)
	if "" == instrument {
		return "", e.fail(fault.ErrNotFoundSubject, "outpayment: %d", index)
	}
	return instrument, true
}

// validity window check against the ledger clock
func (e *Engine) valid(what string, i ledger.Instrument) error {
	now := e.ledger.Time()
	if i.NotYetValid(now) {
		return fault.ErrInstrumentNotYetValid
	}
	if i.Expired(now) {
		return fault.ErrInstrumentExpired
	}
	e.log.Debugf("%s: valid at: %s", what, now.Format(timeFormat))
	return nil
}
