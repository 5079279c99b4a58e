// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

func (e *Engine) getDefault(kind subject.Kind) (string, error) {
	if !e.ready() {
		return "", fault.ErrNotInitialised
	}
	return e.defaults.Get(kind)
}

func (e *Engine) setDefault(kind subject.Kind, ref string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if err := e.defaults.Set(kind, ref); nil != err {
		return e.fail(err, "set default %s: %q", kind, ref)
	}
	id, _ := e.defaults.Get(kind)
	return e.succeed("default %s: %s", kind, e.resolver.Describe(kind, "^"+id))
}

// AccountGetDefault - the default account
func (e *Engine) AccountGetDefault() (string, error) {
	return e.getDefault(subject.Account)
}

// AssetGetDefault - the default asset
func (e *Engine) AssetGetDefault() (string, error) {
	return e.getDefault(subject.Asset)
}

// NymGetDefault - the default nym
func (e *Engine) NymGetDefault() (string, error) {
	return e.getDefault(subject.Nym)
}

// ServerGetDefault - the default server
func (e *Engine) ServerGetDefault() (string, error) {
	return e.getDefault(subject.Server)
}

// AccountSetDefault - make an account the default
func (e *Engine) AccountSetDefault(ref string, dryrun bool) bool {
	return e.setDefault(subject.Account, ref, dryrun)
}

// AssetSetDefault - make an asset the default
func (e *Engine) AssetSetDefault(ref string, dryrun bool) bool {
	return e.setDefault(subject.Asset, ref, dryrun)
}

// NymSetDefault - make a nym the default
func (e *Engine) NymSetDefault(ref string, dryrun bool) bool {
	return e.setDefault(subject.Nym, ref, dryrun)
}

// ServerSetDefault - make a server the default
func (e *Engine) ServerSetDefault(ref string, dryrun bool) bool {
	return e.setDefault(subject.Server, ref, dryrun)
}

// DisplayDefault - show the default of one kind
func (e *Engine) DisplayDefault(kind subject.Kind, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	id, err := e.defaults.Get(kind)
	if nil != err {
		return e.fail(err, "display default")
	}
	e.console.Field(kind.String(), e.resolver.Name(kind, id)+" ("+id+")")
	return true
}

// DisplayAllDefaults - show every default
func (e *Engine) DisplayAllDefaults(dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	rows := make([][]string, 0, 4)
	for _, entry := range e.defaults.All() {
		name := "-"
		id := entry.ID
		if "" == id {
			id = "-"
		} else {
			name = e.resolver.Name(entry.Kind, entry.ID)
		}
		rows = append(rows, []string{entry.Kind.String(), name, id})
	}
	e.console.Table([]string{"kind", "name", "id"}, rows)
	return true
}
