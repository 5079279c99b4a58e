// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

// PurseCreate - create an empty purse and save it for the owner
func (e *Engine) PurseCreate(serverRef string, assetRef string, ownerRef string, signerRef string, dryrun bool) bool {
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
	asset, ok := e.lookup(subject.Asset, assetRef)
	if !ok {
		return false
	}
	owner, ok := e.lookup(subject.Nym, ownerRef)
	if !ok {
		return false
	}
	signer, ok := e.lookup(subject.Nym, signerRef)
	if !ok {
		return false
	}

	purse := e.ledger.CreatePurse(server, asset, owner, signer)
	if "" == purse {
		return e.fail(fault.ErrServerRejected, "create purse")
	}
	e.console.Text(purse)
	if !e.ledger.SavePurse(server, asset, owner, purse) {
		return e.fail(fault.ErrServerRejected, "save purse for: %s", owner)
	}
	return e.succeed("created purse for: %s", e.resolver.Name(subject.Nym, owner))
}

// PurseDisplay - list the tokens in a nym's purse
func (e *Engine) PurseDisplay(serverRef string, assetRef string, nymRef string, dryrun bool) bool {
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
	asset, ok := e.lookup(subject.Asset, assetRef)
	if !ok {
		return false
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}

	purse := e.ledger.LoadPurse(server, asset, nym)
	if "" == purse {
		return e.fail(fault.ErrNotFoundSubject, "no purse for: %s", nym)
	}
	return e.showPurse(server, asset, nym, purse)
}
