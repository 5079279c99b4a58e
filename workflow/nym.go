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

// key size of newly created nyms
const nymKeyBits = int32(1024)

// NymCheck - download the public key of a nym using the default nym
// and server
func (e *Engine) NymCheck(targetRef string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	server, ok := e.defaultOf(subject.Server)
	if !ok {
		return false
	}
	nym, ok := e.defaultOf(subject.Nym)
	if !ok {
		return false
	}

	target := e.resolver.RecipientID(targetRef, nym)
	if "" == target {
		return e.fail(fault.ErrNotFoundSubject, "check nym: %q", targetRef)
	}
	if !e.verify("check nym", e.ledger.CheckNym(server, nym, target)) {
		return false
	}
	return e.succeed("checked nym: %s", target)
}

// NymCreate - create a named nym, optionally registered on the default
// server; the first nym becomes the default
func (e *Engine) NymCreate(name string, register bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if "" == name {
		return e.fail(fault.ErrEmptyInput, "create nym")
	}
	if e.resolver.Exists(subject.Nym, name) {
		return e.fail(fault.ErrSubjectExists, "create nym: %q", name)
	}

	id := e.ledger.CreateNym(nymKeyBits)
	if "" == id {
		return e.fail(fault.ErrServerRejected, "create nym: %q", name)
	}
	if !e.ledger.SetName(subject.Nym, id, id, name) {
		e.warn("create nym: %s: could not set name: %q", id, name)
	}
	e.nyms.Insert(id, name)

	if register {
		server, ok := e.defaultOf(subject.Server)
		if !ok || !e.registerNym(server, id) {
			return false
		}
	}

	if _, err := e.defaults.Get(subject.Nym); fault.ErrNoDefaultNym == err {
		if err := e.defaults.Set(subject.Nym, "^"+id); nil != err {
			e.warn("create nym: %s: could not become the default: %s", id, err)
		}
	}
	return e.succeed("created nym: %q (%s)", name, id)
}

// NymDisplayAll - table of every wallet nym
func (e *Engine) NymDisplayAll(dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	ids := e.nyms.IDs()
	rows := make([][]string, 0, len(ids))
	for i, id := range ids {
		rows = append(rows, []string{strconv.Itoa(i), e.resolver.Name(subject.Nym, id), id})
	}
	e.console.Table([]string{"index", "name", "id"}, rows)
	return true
}

// NymDisplayInfo - statistics of one nym
func (e *Engine) NymDisplayInfo(ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	id, ok := e.lookup(subject.Nym, ref)
	if !ok {
		return false
	}
	stats := e.ledger.NymStats(id)
	if "" == stats {
		return e.fail(fault.ErrNotFoundSubject, "nym statistics: %s", id)
	}
	e.console.Text(stats)
	return true
}

// NymExport - write an exported nym to a file or the console
func (e *Engine) NymExport(ref string, file string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	id, ok := e.lookup(subject.Nym, ref)
	if !ok {
		return false
	}
	exported := e.ledger.ExportNym(id)
	if "" == exported {
		return e.fail(fault.ErrServerRejected, "export nym: %s", id)
	}
	return e.output(file, exported)
}

// NymImport - add an exported nym to the wallet
func (e *Engine) NymImport(file string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	data, ok := e.text(file, "exported nym")
	if !ok {
		return false
	}
	id := e.ledger.ImportNym(data)
	if "" == id {
		return e.fail(fault.ErrServerRejected, "import nym")
	}
	name := e.ledger.NameOf(subject.Nym, id)
	e.nyms.Insert(id, name)
	return e.succeed("imported nym: %q (%s)", name, id)
}

// NymRefresh - download a nym from every server it is registered on,
// or every nym when all is set
func (e *Engine) NymRefresh(ref string, all bool, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}

	var nyms []string
	if all {
		nyms = e.nyms.IDs()
	} else {
		id, ok := e.lookup(subject.Nym, ref)
		if !ok {
			return false
		}
		nyms = []string{id}
	}

	servers := make([]string, 0, 4)
	count := e.ledger.Count(subject.Server)
	for i := int32(0); i < count; i += 1 {
		servers = append(servers, e.ledger.IDAt(subject.Server, i))
	}

	total := int32(0)
	succeeded := int32(0)
	for _, nym := range nyms {
		for _, server := range servers {
			if !e.ledger.IsNymRegistered(nym, server) {
				continue
			}
			total += 1
			if e.ledger.RetrieveNym(server, nym, true) {
				succeeded += 1
			} else {
				e.log.Warnf("refresh nym: %s on: %s failed", nym, server)
			}
		}
	}
	if 0 == total {
		e.warn("refresh nym: no registered nym and server pairs")
		return true
	}
	return e.tally("refresh nyms", total, succeeded)
}

// NymRegister - register a nym on the default server
func (e *Engine) NymRegister(ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	id, ok := e.lookup(subject.Nym, ref)
	if !ok {
		return false
	}
	server, ok := e.defaultOf(subject.Server)
	if !ok {
		return false
	}
	if !e.registerNym(server, id) {
		return false
	}
	return e.succeed("nym: %s is registered on: %s", id, e.resolver.Name(subject.Server, server))
}

// already registered is success
func (e *Engine) registerNym(server string, nym string) bool {
	if e.ledger.IsNymRegistered(nym, server) {
		e.log.Infof("nym: %s already registered on: %s", nym, server)
		return true
	}
	return e.verify("register nym", e.ledger.RegisterNym(server, nym))
}

// NymRemove - remove an unused nym from the wallet
func (e *Engine) NymRemove(ref string, dryrun bool) bool {
	return e.removeSubject(subject.Nym, ref, dryrun)
}

// NymRename - change the display name of a nym
func (e *Engine) NymRename(ref string, name string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if "" == name {
		return e.fail(fault.ErrEmptyInput, "rename nym")
	}
	id, ok := e.lookup(subject.Nym, ref)
	if !ok {
		return false
	}
	if !e.ledger.SetName(subject.Nym, id, id, name) {
		return e.fail(fault.ErrServerRejected, "rename nym: %s", id)
	}
	e.nyms.Insert(id, name)
	return e.succeed("renamed nym: %s to: %q", id, name)
}
