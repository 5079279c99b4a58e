// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/otclient/cache"
	"github.com/bitmark-inc/otclient/subject"
)

// AddressBook - contacts of nyms that are not in the local wallet
type AddressBook interface {
	NymID(owner string, name string) (string, bool)
	NymName(id string, owners []string) (string, bool)
}

// Resolver - name to identifier mapping for all subject kinds
type Resolver struct {
	log    *logger.L
	lister cache.Lister
	nyms   *cache.Identities
	book   AddressBook
}

// New - create a resolver, book may be nil
func New(lister cache.Lister, nyms *cache.Identities, book AddressBook, log *logger.L) *Resolver {
	return &Resolver{
		log:    log,
		lister: lister,
		nyms:   nyms,
		book:   book,
	}
}

// ID - resolve a reference to an identifier, empty if not found
func (r *Resolver) ID(kind subject.Kind, ref string) string {
	if "" == ref {
		return ""
	}
	if subject.IsLiteral(ref) {
		return subject.Strip(ref)
	}

	if subject.Nym == kind {
		return r.nymID(ref)
	}
	return r.scan(kind, ref)
}

func (r *Resolver) nymID(name string) string {
	if id, ok := r.nyms.Find(name); ok {
		return id
	}

	// a rebuild is itself a full pass over the live list
	if r.nyms.Sync(false) {
		id, _ := r.nyms.Find(name)
		return id
	}

	// same count but possibly renamed entries
	id := r.scan(subject.Nym, name)
	if "" != id {
		r.nyms.Insert(id, name)
	}
	return id
}

// first match in ledger enumeration order
func (r *Resolver) scan(kind subject.Kind, name string) string {
	n := r.lister.Count(kind)
	for i := int32(0); i < n; i += 1 {
		id := r.lister.IDAt(kind, i)
		if "" == id {
			continue
		}
		if name == r.lister.NameOf(kind, id) {
			return id
		}
	}
	r.log.Debugf("%s: %q not found in %d entries", kind, name, n)
	return ""
}

// RecipientID - resolve a nym that may only be known to the owner's address book
func (r *Resolver) RecipientID(ref string, owner string) string {
	id := r.ID(subject.Nym, ref)
	if "" != id {
		return id
	}
	if nil == r.book || "" == owner {
		return ""
	}
	id, ok := r.book.NymID(owner, ref)
	if !ok {
		r.log.Debugf("recipient: %q not in address book of: %s", ref, owner)
		return ""
	}
	return id
}

// Exists - true if the reference resolves to a non-empty identifier
func (r *Resolver) Exists(kind subject.Kind, ref string) bool {
	if "" == ref {
		return false
	}
	return "" != r.ID(kind, ref)
}

// Name - display name of an identifier
//
// nyms missing from the wallet are looked up in the address books of
// all wallet nyms and otherwise shown as cache.Unknown
func (r *Resolver) Name(kind subject.Kind, id string) string {
	if "" == id {
		return ""
	}
	if subject.Nym != kind {
		return r.lister.NameOf(kind, id)
	}

	if name, ok := r.nyms.Name(id); ok {
		return name
	}
	if r.nyms.Sync(false) {
		if name, ok := r.nyms.Name(id); ok {
			return name
		}
	}
	if nil != r.book {
		if name, ok := r.book.NymName(id, r.nyms.IDs()); ok {
			return name
		}
	}
	return cache.Unknown
}

// RecipientName - like Name but falls back to the identifier itself
func (r *Resolver) RecipientName(id string) string {
	name := r.Name(subject.Nym, id)
	if cache.Unknown == name || "" == name {
		return id
	}
	return name
}

// Describe - "name (id)" text for log and console lines
func (r *Resolver) Describe(kind subject.Kind, ref string) string {
	id := r.ID(kind, ref)
	if "" == id {
		return fmt.Sprintf("%q (not found)", ref)
	}
	return fmt.Sprintf("%s (%s)", r.Name(kind, id), id)
}
