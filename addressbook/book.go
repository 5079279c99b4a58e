// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addressbook

import (
	"sort"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/otclient/fault"
)

// Contact - one address book entry
type Contact struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Book - the contacts belonging to a single owner nym
type Book struct {
	store *Store
	owner string
}

// Owner - the nym that owns this book
func (b *Book) Owner() string {
	return b.owner
}

// Add - store a new contact, neither the name nor the ID may already exist
func (b *Book) Add(name string, id string) error {
	if "" == name || "" == id {
		return fault.ErrEmptyInput
	}
	if nil == b.store.db {
		return fault.ErrNotInitialised
	}

	duplicate := false
	err := b.store.scan(b.owner, func(cID string, cName string) bool {
		if cID == id || cName == name {
			duplicate = true
			return false
		}
		return true
	})
	if nil != err {
		return err
	}
	if duplicate {
		return fault.ErrContactExists
	}

	b.store.log.Infof("owner: %s  add contact: %q  id: %s", b.owner, name, id)
	return b.store.db.Put(b.store.key(b.owner, id), []byte(name), nil)
}

// Remove - delete the contact with the given ID
func (b *Book) Remove(id string) error {
	if nil == b.store.db {
		return fault.ErrNotInitialised
	}
	k := b.store.key(b.owner, id)
	_, err := b.store.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return fault.ErrNotFoundContact
	} else if nil != err {
		return err
	}

	b.store.log.Infof("owner: %s  remove contact: %s", b.owner, id)
	return b.store.db.Delete(k, nil)
}

// Contacts - all contacts sorted by name
func (b *Book) Contacts() ([]Contact, error) {
	contacts := make([]Contact, 0, 10)
	err := b.store.scan(b.owner, func(id string, name string) bool {
		contacts = append(contacts, Contact{Name: name, ID: id})
		return true
	})
	if nil != err {
		return nil, err
	}

	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].Name == contacts[j].Name {
			return contacts[i].ID < contacts[j].ID
		}
		return contacts[i].Name < contacts[j].Name
	})
	return contacts, nil
}

// NymID - the contact ID stored under a name
func (b *Book) NymID(name string) (string, bool) {
	if "" == name {
		return "", false
	}
	found := ""
	err := b.store.scan(b.owner, func(id string, cName string) bool {
		if cName == name {
			found = id
			return false
		}
		return true
	})
	if nil != err {
		b.store.log.Errorf("owner: %s  lookup name: %q  error: %s", b.owner, name, err)
		return "", false
	}
	return found, "" != found
}

// Name - the name stored for a contact ID
func (b *Book) Name(id string) (string, bool) {
	if "" == id || nil == b.store.db {
		return "", false
	}
	value, err := b.store.db.Get(b.store.key(b.owner, id), nil)
	if leveldb.ErrNotFound == err {
		return "", false
	} else if nil != err {
		b.store.log.Errorf("owner: %s  lookup id: %s  error: %s", b.owner, id, err)
		return "", false
	}
	return string(value), true
}
