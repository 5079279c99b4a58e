// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/subject"
)

func (e *Engine) id(kind subject.Kind, ref string) string {
	if !e.ready() {
		return ""
	}
	return e.resolver.ID(kind, ref)
}

func (e *Engine) name(kind subject.Kind, id string) string {
	if !e.ready() {
		return ""
	}
	return e.resolver.Name(kind, id)
}

// AccountGetID - identifier of an account name or ^ID
func (e *Engine) AccountGetID(ref string) string {
	return e.id(subject.Account, ref)
}

// AssetGetID - identifier of an asset name or ^ID
func (e *Engine) AssetGetID(ref string) string {
	return e.id(subject.Asset, ref)
}

// NymGetID - identifier of a wallet nym name or ^ID
func (e *Engine) NymGetID(ref string) string {
	return e.id(subject.Nym, ref)
}

// ServerGetID - identifier of a server name or ^ID
func (e *Engine) ServerGetID(ref string) string {
	return e.id(subject.Server, ref)
}

// NymGetToNymID - identifier of a recipient, falling back to the
// address book of owner (the default nym if owner is empty)
func (e *Engine) NymGetToNymID(ref string, owner string) string {
	if !e.ready() {
		return ""
	}
	ownerID := e.resolver.ID(subject.Nym, owner)
	if "" == ownerID {
		ownerID, _ = e.defaults.Get(subject.Nym)
	}
	return e.resolver.RecipientID(ref, ownerID)
}

// AccountGetName - display name of an account
func (e *Engine) AccountGetName(id string) string {
	return e.name(subject.Account, id)
}

// AssetGetName - display name of an asset
func (e *Engine) AssetGetName(id string) string {
	return e.name(subject.Asset, id)
}

// NymGetName - display name of a nym
func (e *Engine) NymGetName(id string) string {
	return e.name(subject.Nym, id)
}

// NymGetRecipientName - display name of a nym, or the ID if it has none
func (e *Engine) NymGetRecipientName(id string) string {
	if !e.ready() {
		return ""
	}
	return e.resolver.RecipientName(id)
}

// ServerGetName - display name of a server
func (e *Engine) ServerGetName(id string) string {
	return e.name(subject.Server, id)
}

// AccountGetNymID - owner of an account
func (e *Engine) AccountGetNymID(ref string) string {
	id := e.id(subject.Account, ref)
	if "" == id {
		return ""
	}
	return e.ledger.AccountNym(id)
}

// AccountGetAssetID - asset held by an account
func (e *Engine) AccountGetAssetID(ref string) string {
	id := e.id(subject.Account, ref)
	if "" == id {
		return ""
	}
	return e.ledger.AccountAsset(id)
}

// AccountGetBalance - balance of an account in minor units
func (e *Engine) AccountGetBalance(ref string) int64 {
	id := e.id(subject.Account, ref)
	if "" == id {
		return 0
	}
	return e.ledger.AccountBalance(id)
}

// AccountIsOwnerNym - true if nym owns the account
func (e *Engine) AccountIsOwnerNym(accountRef string, nymRef string) bool {
	id := e.id(subject.Account, accountRef)
	nym := e.resolver.ID(subject.Nym, nymRef)
	if "" == id || "" == nym {
		return false
	}
	return nym == e.ledger.AccountNym(id)
}

// CheckIfExists - true if the reference resolves
func (e *Engine) CheckIfExists(kind subject.Kind, ref string) bool {
	if "" == ref || !e.ready() {
		return false
	}
	return e.resolver.Exists(kind, ref)
}

// SubjectDescription - "name (id)" for a reference
func (e *Engine) SubjectDescription(kind subject.Kind, ref string) string {
	if !e.ready() {
		return ""
	}
	return e.resolver.Describe(kind, ref)
}
