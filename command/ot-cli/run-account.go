// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/otclient/subject"
)

func runAccountCreate(c *cli.Context) error {
	m := getMetadata(c)

	name, err := checkRequired(c, "name")
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	asset, err := checkSubject(c, "asset", subject.Asset)
	if nil != err {
		return err
	}
	return result(m.engine.AccountCreate(nym, asset, name, m.dryrun))
}

func runAccountDisplayAll(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.AccountDisplayAll(m.dryrun))
}

func runAccountDisplay(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.AccountDisplay(account, m.dryrun))
}

func runAccountRefresh(c *cli.Context) error {
	m := getMetadata(c)
	all := c.Bool("all")
	account := ""
	if !all {
		var err error
		if account, err = checkSubject(c, "account", subject.Account); nil != err {
			return err
		}
	}
	return result(m.engine.AccountRefresh(account, all, m.dryrun))
}

func runAccountRemove(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkRequired(c, "account")
	if nil != err {
		return err
	}
	return result(m.engine.AccountRemove(account, m.dryrun))
}

func runAccountRename(c *cli.Context) error {
	m := getMetadata(c)
	name, err := checkRequired(c, "name")
	if nil != err {
		return err
	}
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.AccountRename(account, name, m.dryrun))
}

func runAccountTransfer(c *cli.Context) error {
	m := getMetadata(c)
	to, err := checkRequired(c, "to")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}
	from, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.AccountTransfer(from, to, amount, c.String("note"), m.dryrun))
}

func runAccountSetDefault(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkRequired(c, "account")
	if nil != err {
		return err
	}
	return result(m.engine.AccountSetDefault(account, m.dryrun))
}

func runAccountInDisplay(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.AccountInDisplay(account, m.dryrun))
}

func runAccountInAccept(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.AccountInAccept(account, checkIndex(c), c.Bool("all"), m.dryrun))
}

func runAccountOutDisplay(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.AccountOutDisplay(account, m.dryrun))
}

func runAccountOutCancel(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.AccountOutCancel(account, checkIndex(c), m.dryrun))
}
