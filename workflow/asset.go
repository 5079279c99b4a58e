// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"strconv"

	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

// AssetAdd - add a signed asset contract to the wallet
func (e *Engine) AssetAdd(file string, dryrun bool) bool {
	return e.addContract(subject.Asset, file, dryrun)
}

// AssetDisplayAll - table of every wallet asset
func (e *Engine) AssetDisplayAll(dryrun bool) bool {
	return e.displayAll(subject.Asset, dryrun)
}

// AssetIssue - register an asset contract on a server, the nym
// becomes the issuer
func (e *Engine) AssetIssue(serverRef string, nymRef string, file string, dryrun bool) bool {
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
	contract, ok := e.text(file, "asset contract")
	if !ok {
		return false
	}

	if !e.verify("issue asset", e.ledger.IssueAsset(server, nym, contract)) {
		return false
	}
	return e.succeed("issued asset on: %s", e.resolver.Describe(subject.Server, "^"+server))
}

// AssetNew - create and sign a new asset contract from XML
func (e *Engine) AssetNew(nymRef string, file string, dryrun bool) bool {
	return e.newContract(subject.Asset, nymRef, file, dryrun)
}

// AssetRemove - remove an unused asset contract from the wallet
func (e *Engine) AssetRemove(ref string, dryrun bool) bool {
	return e.removeSubject(subject.Asset, ref, dryrun)
}

// AssetShowContract - print or save an asset contract
func (e *Engine) AssetShowContract(ref string, file string, dryrun bool) bool {
	return e.showContract(subject.Asset, ref, file, dryrun)
}

func (e *Engine) addContract(kind subject.Kind, file string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	contract, ok := e.text(file, kind.String()+" contract")
	if !ok {
		return false
	}
	if !e.ledger.AddContract(kind, contract) {
		return e.fail(fault.ErrServerRejected, "add %s contract", kind)
	}
	return e.succeed("added %s contract", kind)
}

func (e *Engine) newContract(kind subject.Kind, nymRef string, file string, dryrun bool) bool {
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
	xml, ok := e.text(file, kind.String()+" contract XML")
	if !ok {
		return false
	}

	id := e.ledger.CreateContract(kind, nym, xml)
	if "" == id {
		return e.fail(fault.ErrServerRejected, "create %s contract", kind)
	}
	e.console.Text(e.ledger.Contract(kind, id))
	return e.succeed("created %s contract: %s", kind, id)
}

func (e *Engine) removeSubject(kind subject.Kind, ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	id, ok := e.lookup(kind, ref)
	if !ok {
		return false
	}
	if !e.ledger.CanRemove(kind, id) {
		return e.fail(fault.ErrServerRejected, "remove %s: %s is still in use", kind, id)
	}
	if !e.ledger.Remove(kind, id) {
		return e.fail(fault.ErrServerRejected, "remove %s: %s", kind, id)
	}
	if subject.Nym == kind {
		e.nyms.Delete(id)
	}
	return e.succeed("removed %s: %s", kind, id)
}

func (e *Engine) showContract(kind subject.Kind, ref string, file string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	id, ok := e.lookup(kind, ref)
	if !ok {
		return false
	}
	contract := e.ledger.Contract(kind, id)
	if "" == contract {
		return e.fail(fault.ErrNotFoundSubject, "%s contract: %s", kind, id)
	}
	return e.output(file, contract)
}

func (e *Engine) displayAll(kind subject.Kind, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	count := e.ledger.Count(kind)
	rows := make([][]string, 0, count)
	for i := int32(0); i < count; i += 1 {
		id := e.ledger.IDAt(kind, i)
		rows = append(rows, []string{strconv.Itoa(int(i)), e.resolver.Name(kind, id), id})
	}
	e.console.Table([]string{"index", "name", "id"}, rows)
	return true
}
