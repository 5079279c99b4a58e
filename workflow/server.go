// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/subject"
)

// ServerAdd - add a server contract to the wallet
func (e *Engine) ServerAdd(file string, dryrun bool) bool {
	return e.addContract(subject.Server, file, dryrun)
}

// ServerCreate - create and sign a new server contract from XML
func (e *Engine) ServerCreate(nymRef string, file string, dryrun bool) bool {
	return e.newContract(subject.Server, nymRef, file, dryrun)
}

// ServerCheck - ping the default server as the default nym
func (e *Engine) ServerCheck() bool {
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
	return e.ping(server, nym)
}

// ServerDisplayAll - table of every wallet server
func (e *Engine) ServerDisplayAll(dryrun bool) bool {
	return e.displayAll(subject.Server, dryrun)
}

// ServerRemove - remove an unused server contract from the wallet
func (e *Engine) ServerRemove(ref string, dryrun bool) bool {
	return e.removeSubject(subject.Server, ref, dryrun)
}

// ServerShowContract - print or save a server contract
func (e *Engine) ServerShowContract(ref string, file string, dryrun bool) bool {
	return e.showContract(subject.Server, ref, file, dryrun)
}

// ServerPing - check the connection to a server for a nym
func (e *Engine) ServerPing(serverRef string, nymRef string, dryrun bool) bool {
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
	return e.ping(server, nym)
}

func (e *Engine) ping(server string, nym string) bool {
	e.console.Infof("checking connection to: %s for nym: %s", e.resolver.Name(subject.Server, server), e.resolver.Name(subject.Nym, nym))

	result := e.ledger.PingNotary(server, nym)
	switch {
	case result < 0:
		e.log.Errorf("ping: %s: %d: connection failed", server, result)
		e.console.Failuref("connection failed")
		return false
	case 0 == result:
		e.log.Infof("ping: %s: no errors, no message sent", server)
		e.console.Successf("no errors reported, no message sent")
		return true
	default:
		return e.succeed("ping: %s: %d", server, result)
	}
}
