// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/otclient/subject"
)

func runServerAdd(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.ServerAdd(c.String("file"), m.dryrun))
}

func runServerCreate(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.ServerCreate(nym, c.String("file"), m.dryrun))
}

func runServerCheck(c *cli.Context) error {
	m := getMetadata(c)
	if m.dryrun {
		return nil
	}
	return result(m.engine.ServerCheck())
}

func runServerDisplayAll(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.ServerDisplayAll(m.dryrun))
}

func runServerRemove(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkRequired(c, "server")
	if nil != err {
		return err
	}
	return result(m.engine.ServerRemove(server, m.dryrun))
}

func runServerShowContract(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkSubject(c, "server", subject.Server)
	if nil != err {
		return err
	}
	return result(m.engine.ServerShowContract(server, c.String("file"), m.dryrun))
}

func runServerPing(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkSubject(c, "server", subject.Server)
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.ServerPing(server, nym, m.dryrun))
}

func runServerSetDefault(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkRequired(c, "server")
	if nil != err {
		return err
	}
	return result(m.engine.ServerSetDefault(server, m.dryrun))
}

func runAssetAdd(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.AssetAdd(c.String("file"), m.dryrun))
}

func runAssetDisplayAll(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.AssetDisplayAll(m.dryrun))
}

func runAssetIssue(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkSubject(c, "server", subject.Server)
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.AssetIssue(server, nym, c.String("file"), m.dryrun))
}

func runAssetNew(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.AssetNew(nym, c.String("file"), m.dryrun))
}

func runAssetRemove(c *cli.Context) error {
	m := getMetadata(c)
	asset, err := checkRequired(c, "asset")
	if nil != err {
		return err
	}
	return result(m.engine.AssetRemove(asset, m.dryrun))
}

func runAssetShowContract(c *cli.Context) error {
	m := getMetadata(c)
	asset, err := checkSubject(c, "asset", subject.Asset)
	if nil != err {
		return err
	}
	return result(m.engine.AssetShowContract(asset, c.String("file"), m.dryrun))
}

func runAssetSetDefault(c *cli.Context) error {
	m := getMetadata(c)
	asset, err := checkRequired(c, "asset")
	if nil != err {
		return err
	}
	return result(m.engine.AssetSetDefault(asset, m.dryrun))
}

func runPurseCreate(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkSubject(c, "server", subject.Server)
	if nil != err {
		return err
	}
	asset, err := checkSubject(c, "asset", subject.Asset)
	if nil != err {
		return err
	}
	owner, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	signer := c.String("signer")
	if "" == signer {
		signer = owner
	}
	return result(m.engine.PurseCreate(server, asset, owner, signer, m.dryrun))
}

func runPurseDisplay(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkSubject(c, "server", subject.Server)
	if nil != err {
		return err
	}
	asset, err := checkSubject(c, "asset", subject.Asset)
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.PurseDisplay(server, asset, nym, m.dryrun))
}

func runRecordDisplay(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.RecordDisplay(account, c.Bool("no-verify"), m.dryrun))
}

func runRecordClear(c *cli.Context) error {
	m := getMetadata(c)
	account, err := checkSubject(c, "account", subject.Account)
	if nil != err {
		return err
	}
	return result(m.engine.RecordClear(account, c.Bool("all"), m.dryrun))
}

func runTextEncode(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.TextEncode(c.String("text"), c.String("file"), c.String("out"), m.dryrun))
}

func runTextDecode(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.TextDecode(c.String("text"), c.String("file"), c.String("out"), m.dryrun))
}

func runTextEncrypt(c *cli.Context) error {
	m := getMetadata(c)
	recipient, err := checkRequired(c, "recipient")
	if nil != err {
		return err
	}
	return result(m.engine.TextEncrypt(recipient, c.String("text"), m.dryrun))
}

func runTextDecrypt(c *cli.Context) error {
	m := getMetadata(c)
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.TextDecrypt(nym, c.String("text"), m.dryrun))
}

func runMarketList(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkSubject(c, "server", subject.Server)
	if nil != err {
		return err
	}
	nym, err := checkSubject(c, "nym", subject.Nym)
	if nil != err {
		return err
	}
	return result(m.engine.MarketList(server, nym, m.dryrun))
}

func runMintShow(c *cli.Context) error {
	m := getMetadata(c)
	server, err := checkSubject(c, "server", subject.Server)
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
	return result(m.engine.MintShow(server, nym, asset, m.dryrun))
}

func runDefaults(c *cli.Context) error {
	m := getMetadata(c)
	if 0 == c.NArg() {
		return result(m.engine.DisplayAllDefaults(m.dryrun))
	}
	kind, err := checkKind(c.Args().Get(0))
	if nil != err {
		return err
	}
	return result(m.engine.DisplayDefault(kind, m.dryrun))
}

func runRefresh(c *cli.Context) error {
	m := getMetadata(c)
	return result(m.engine.Refresh(m.dryrun))
}

func runLookup(c *cli.Context) error {
	m := getMetadata(c)
	if 2 != c.NArg() {
		return errLookupArguments
	}
	kind, err := checkKind(c.Args().Get(0))
	if nil != err {
		return err
	}
	ref := c.Args().Get(1)
	if m.dryrun {
		return nil
	}

	if subject.Nym == kind {
		if id := m.engine.NymGetToNymID(ref, c.String("owner")); "" != id {
			fmt.Fprintf(m.w, "%s (%s)\n", m.engine.NymGetRecipientName(id), id)
			return nil
		}
	}
	if !m.engine.CheckIfExists(kind, ref) {
		return errNotFound
	}
	fmt.Fprintln(m.w, m.engine.SubjectDescription(kind, ref))
	return nil
}
