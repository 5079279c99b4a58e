// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

// MarketList - print the markets of a server
func (e *Engine) MarketList(serverRef string, nymRef string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	server, ok := e.lookup(subject.Server, serverRef)
	if !ok {
		return false
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}

	markets := e.ledger.MarketList(server, nym)
	if "" == markets {
		return e.fail(fault.ErrNotFoundSubject, "no markets available on: %s", e.resolver.Name(subject.Server, server))
	}
	e.console.Text(markets)
	return true
}

// MintShow - print the mint of an asset, retrieving it if necessary
func (e *Engine) MintShow(serverRef string, nymRef string, assetRef string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	server, ok := e.lookup(subject.Server, serverRef)
	if !ok {
		return false
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}
	asset, ok := e.lookup(subject.Asset, assetRef)
	if !ok {
		return false
	}

	e.console.Field("nym", e.resolver.Name(subject.Nym, nym))
	e.console.Field("asset", e.resolver.Name(subject.Asset, asset))
	e.console.Field("server", e.resolver.Name(subject.Server, server))

	mint := e.ledger.LoadOrRetrieveMint(server, nym, asset)
	if "" == mint {
		return e.fail(fault.ErrNotFoundSubject, "mint for asset: %s", asset)
	}
	e.console.Text(mint)
	return true
}
