// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/otclient/subject"
)

func runCashWithdraw(c *cli.Context) error {
	m := getMetadata(c)
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.CashWithdraw(account, amount, m.dryrun))
}

func runCashSend(c *cli.Context) error {
	m := getMetadata(c)
	recipient, err := checkRequired(c, "recipient")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.CashSend(account, recipient, amount, m.dryrun))
}

func runCashExport(c *cli.Context) error {
	m := getMetadata(c)
	password := c.Bool("password")
	recipient := c.String("recipient")
	if !password && "" == recipient {
		if _, err := checkRequired(c, "recipient"); nil != err {
			return err
		}
	}
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.CashExport(nym, recipient, account, password, m.dryrun))
}

func runCashImport(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.CashImport(nym, c.String("file"), m.dryrun))
}

func runCashDeposit(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.CashDeposit(account, c.String("file"), m.dryrun))
}

func runCashShow(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.CashShow(account, m.dryrun))
}

func runChequeCreate(c *cli.Context) error {
	m := getMetadata(c)
	recipient, err := checkRequired(c, "recipient")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.ChequeCreate(account, recipient, amount, c.String("memo"), m.dryrun))
}

func runChequeDiscard(c *cli.Context) error {
	m := getMetadata(c)
	account, nym, err := accountAndNym(c)
	if nil != err {
		return err
	}
	return result(m.engine.ChequeDiscard(account, nym, checkIndex(c), m.dryrun))
}

func runVoucherWithdraw(c *cli.Context) error {
	m := getMetadata(c)
	recipient, err := checkRequired(c, "recipient")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}
	account, nym, err := accountAndNym(c)
	if nil != err {
		return err
	}
	return result(m.engine.VoucherWithdraw(account, nym, recipient, amount, c.String("memo"), m.dryrun))
}

func runVoucherCancel(c *cli.Context) error {
	m := getMetadata(c)
	account, nym, err := accountAndNym(c)
	if nil != err {
		return err
	}
	return result(m.engine.VoucherCancel(account, nym, checkIndex(c), m.dryrun))
}

func runPaymentAccept(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.PaymentAccept(account, checkIndex(c), c.Bool("all"), m.dryrun))
}

func runPaymentShow(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	server, err := checkSubject(c, "server", subject.Server)
	if nil != err {
		return err
	}
	return result(m.engine.PaymentShow(nym, server, m.dryrun))
}

// an empty nym discards the newest payment of the default nym
func runPaymentDiscard(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.PaymentDiscard(c.String("nym"), checkIndex(c), c.Bool("all"), m.dryrun))
}

func runPaymentDiscardAll(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.PaymentDiscardAll(m.dryrun))
}

func runPrintInstrumentInfo(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.PrintInstrumentInfo(c.String("file"), m.dryrun))
}

func runOutpaymentDisplay(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.OutpaymentDisplay(nym, m.dryrun))
}

func runOutpaymentShow(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	if !m.dryrun && !m.engine.OutpaymentCheckIndex(nym, checkIndex(c)) {
		return errIndexOutOfRange
	}
	return result(m.engine.OutpaymentShow(nym, checkIndex(c), m.dryrun))
}

func runOutpaymentSend(c *cli.Context) error {
	m := getMetadata(c)
	recipient, err := checkRequired(c, "recipient")
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.OutpaymentSend(nym, recipient, checkIndex(c), c.Bool("all"), m.dryrun))
}

func runOutpaymentRemove(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.OutpaymentRemove(nym, checkIndex(c), c.Bool("all"), m.dryrun))
}

func runOutpaymentDiscard(c *cli.Context) error {
	m := getMetadata(c)
	account, nym, err := accountAndNym(c)
	if nil != err {
		return err
	}
	return result(m.engine.OutpaymentDiscard(account, nym, checkIndex(c), m.dryrun))
}

func accountAndNym(c *cli.Context) (string, string, error) {
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return "", "", err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return "", "", err
	}
	return account, nym, nil
}
