// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/otclient/subject"
)

func runNymCreate(c *cli.Context) error {
	m := getMetadata(c)
	name, err := checkRequired(c, "name")
	if nil != err {
		return err
	}
	return result(m.engine.NymCreate(name, c.Bool("register"), m.dryrun))
}

func runNymCheck(c *cli.Context) error {
	m := getMetadata(c)
	target, err := checkRequired(c, "recipient")
	if nil != err {
		return err
	}
	return result(m.engine.NymCheck(target, m.dryrun))
}

func runNymDisplayAll(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.NymDisplayAll(m.dryrun))
}

func runNymDisplayInfo(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.NymDisplayInfo(nym, m.dryrun))
}

func runNymExport(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.NymExport(nym, c.String("file"), m.dryrun))
}

func runNymImport(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.NymImport(c.String("file"), m.dryrun))
}

func runNymRefresh(c *cli.Context) error {
	m := getMetadata(c)
	all := c.Bool("all")
	nym := ""
	if !all {
		var err error
		if nym, err = checkSubject(c, "nym", subject.Nym); nil != err {
			return err
		}
	}
	return result(m.engine.NymRefresh(nym, all, m.dryrun))
}

func runNymRegister(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.NymRegister(nym, m.dryrun))
}

func runNymRemove(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkRequired(c, "nym")
	if nil != err {
		return err
	}
	return result(m.engine.NymRemove(nym, m.dryrun))
}

func runNymRename(c *cli.Context) error {
	m := getMetadata(c)
	name, err := checkRequired(c, "name")
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.NymRename(nym, name, m.dryrun))
}

func runNymSetDefault(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkRequired(c, "nym")
	if nil != err {
		return err
	}
	return result(m.engine.NymSetDefault(nym, m.dryrun))
}

func runMsgSend(c *cli.Context) error {
	m := getMetadata(c)
	recipients := []string(c.Args())
	if 0 == len(recipients) {
		return errRecipientRequired
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.MsgSend(nym, recipients, c.String("subject"), c.String("text"), c.String("file"), m.dryrun))
}

func runMsgDisplayForNym(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.MsgDisplayForNym(nym, m.dryrun))
}

func runMsgDisplayInbox(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	if !m.dryrun && !m.engine.MsgInCheckIndex(nym, checkIndex(c)) {
		return errIndexOutOfRange
	}
	return result(m.engine.MsgDisplayForNymInbox(nym, checkIndex(c), m.dryrun))
}

func runMsgDisplayOutbox(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	if !m.dryrun && !m.engine.MsgOutCheckIndex(nym, checkIndex(c)) {
		return errIndexOutOfRange
	}
	return result(m.engine.MsgDisplayForNymOutbox(nym, checkIndex(c), m.dryrun))
}

func runMsgInRemove(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	if !m.dryrun && !m.engine.MsgInCheckIndex(nym, checkIndex(c)) {
		return errIndexOutOfRange
	}
	return result(m.engine.MsgInRemoveByIndex(nym, checkIndex(c), m.dryrun))
}

func runMsgOutRemove(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	if !m.dryrun && !m.engine.MsgOutCheckIndex(nym, checkIndex(c)) {
		return errIndexOutOfRange
	}
	return result(m.engine.MsgOutRemoveByIndex(nym, checkIndex(c), m.dryrun))
}

func runAddressBookAdd(c *cli.Context) error {
	m := getMetadata(c)
	name, err := checkRequired(c, "name")
	if nil != err {
		return err
	}
	id, err := checkRequired(c, "id")
	if nil != err {
		return err
	}
	owner, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.AddressBookAdd(owner, name, id, m.dryrun))
}

func runAddressBookDisplay(c *cli.Context) error {
	m := getMetadata(c)
	owner, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.AddressBookDisplay(owner, m.dryrun))
}

func runAddressBookRemove(c *cli.Context) error {
	m := getMetadata(c)
	contact, err := checkRequired(c, "contact")
	if nil != err {
		return err
	}
	owner, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.AddressBookRemove(owner, contact, m.dryrun))
}
