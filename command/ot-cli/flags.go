// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// "name, n" pairs shared by several commands
func stringFlag(name string, usage string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: usage,
	}
}

var (
	accountFlag   = stringFlag("account, a", " account `NAME` or ^ID [default account]")
	assetFlag     = stringFlag("asset, s", " asset `NAME` or ^ID [default asset]")
	nymFlag       = stringFlag("nym, n", " nym `NAME` or ^ID [default nym]")
	serverFlag    = stringFlag("server, S", " server `NAME` or ^ID [default server]")
	nameFlag      = stringFlag("name", "*new `NAME`")
	fileFlag      = stringFlag("file, f", " read or write `FILE` instead of the console")
	recipientFlag = stringFlag("recipient, r", "*recipient nym `NAME`, ^ID or address book contact")
	amountFlag    = stringFlag("amount, m", "*whole `AMOUNT` in minor units")
	memoFlag      = stringFlag("memo", " `TEXT` attached to the instrument")
	textFlag      = stringFlag("text, t", " `TEXT` to process [compose if empty]")

	allFlag = cli.BoolFlag{
		Name:  "all",
		Usage: " apply to every item",
	}
	indexFlag = cli.IntFlag{
		Name:  "index, i",
		Value: -1,
		Usage: " item `INDEX` [-1: newest item or composed input]",
	}
	firstIndexFlag = cli.IntFlag{
		Name:  "index, i",
		Value: 0,
		Usage: " item `INDEX`",
	}
)
