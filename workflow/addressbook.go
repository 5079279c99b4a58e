// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/addressbook"
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

func (e *Engine) addressBook(ownerRef string) (*addressbook.Book, bool) {
	if nil == e.book {
		return nil, e.fail(fault.ErrNotInitialised, "address book")
	}
	owner, ok := e.lookup(subject.Nym, ownerRef)
	if !ok {
		return nil, false
	}
	return e.book.Get(owner), true
}

// AddressBookAdd - store a contact in a nym's address book
func (e *Engine) AddressBookAdd(ownerRef string, name string, contact string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	b, ok := e.addressBook(ownerRef)
	if !ok {
		return false
	}

	id := contact
	if subject.IsLiteral(contact) {
		id = subject.Strip(contact)
	}
	if err := b.Add(name, id); nil != err {
		return e.fail(err, "add contact: %q", name)
	}
	return e.succeed("added contact: %q (%s) for: %s", name, id, b.Owner())
}

// AddressBookDisplay - list a nym's contacts
func (e *Engine) AddressBookDisplay(ownerRef string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	b, ok := e.addressBook(ownerRef)
	if !ok {
		return false
	}

	contacts, err := b.Contacts()
	if nil != err {
		return e.fail(err, "address book of: %s", b.Owner())
	}
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{c.Name, c.ID})
	}
	e.console.Table([]string{"name", "id"}, rows)
	return true
}

// AddressBookRemove - delete a contact given its name or ^ID
func (e *Engine) AddressBookRemove(ownerRef string, contact string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	b, ok := e.addressBook(ownerRef)
	if !ok {
		return false
	}

	id := ""
	if subject.IsLiteral(contact) {
		id = subject.Strip(contact)
	} else if id, ok = b.NymID(contact); !ok {
		return e.fail(fault.ErrNotFoundContact, "remove contact: %q", contact)
	}
	if err := b.Remove(id); nil != err {
		return e.fail(err, "remove contact: %q", contact)
	}
	return e.succeed("removed contact: %s from: %s", id, b.Owner())
}
