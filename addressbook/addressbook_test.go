// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addressbook_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/otclient/addressbook"
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newStore(t *testing.T) *addressbook.Store {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	return addressbook.New(db, logger.New(fixtures.LogCategory))
}

func TestAddAndLookup(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	b := s.Get("OWNER1")
	assert.Equal(t, "OWNER1", b.Owner(), "wrong owner")

	err := b.Add("bob", "N-bob")
	assert.Nil(t, err, "add bob")
	err = b.Add("alice", "N-alice")
	assert.Nil(t, err, "add alice")

	id, ok := b.NymID("bob")
	assert.True(t, ok, "bob should be found")
	assert.Equal(t, "N-bob", id, "wrong id for bob")

	name, ok := b.Name("N-alice")
	assert.True(t, ok, "N-alice should be found")
	assert.Equal(t, "alice", name, "wrong name")

	_, ok = b.NymID("carol")
	assert.False(t, ok, "carol should be missing")

	contacts, err := b.Contacts()
	assert.Nil(t, err, "contacts")
	assert.Equal(t, []addressbook.Contact{
		{Name: "alice", ID: "N-alice"},
		{Name: "bob", ID: "N-bob"},
	}, contacts, "contacts must be sorted by name")
}

func TestDuplicates(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	b := s.Get("OWNER1")
	assert.Nil(t, b.Add("bob", "N-bob"), "first add")

	err := b.Add("bob", "N-other")
	assert.Equal(t, fault.ErrContactExists, err, "duplicate name")
	assert.True(t, fault.IsErrExists(err), "wrong error class")

	err = b.Add("robert", "N-bob")
	assert.Equal(t, fault.ErrContactExists, err, "duplicate id")

	err = b.Add("", "N-x")
	assert.Equal(t, fault.ErrEmptyInput, err, "empty name")
}

func TestOwnersAreIndependent(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	assert.Nil(t, s.Get("OWNER1").Add("bob", "N-bob"), "owner 1 add")
	assert.Nil(t, s.Get("OWNER2").Add("bobby", "N-bob"), "owner 2 add")
	assert.Nil(t, s.Get("OWNER10").Add("robert", "N-bob"), "owner 10 add")

	name, ok := s.Get("OWNER2").Name("N-bob")
	assert.True(t, ok, "owner 2 lookup")
	assert.Equal(t, "bobby", name, "owner 2 name")

	contacts, err := s.Get("OWNER1").Contacts()
	assert.Nil(t, err, "contacts")
	assert.Equal(t, 1, len(contacts), "prefix must not leak into OWNER10")

	name, ok = s.NymName("N-bob", []string{"OWNER3", "OWNER2", "OWNER1"})
	assert.True(t, ok, "search owners")
	assert.Equal(t, "bobby", name, "first owner holding the contact wins")

	_, ok = s.NymName("N-carol", []string{"OWNER1", "OWNER2"})
	assert.False(t, ok, "unknown contact")
}

func TestRemove(t *testing.T) {
	s := newStore(t)
	defer s.Close()

	b := s.Get("OWNER1")
	assert.Nil(t, b.Add("bob", "N-bob"), "add")
	assert.Nil(t, b.Remove("N-bob"), "remove")

	_, ok := b.Name("N-bob")
	assert.False(t, ok, "removed contact")

	err := b.Remove("N-bob")
	assert.Equal(t, fault.ErrNotFoundContact, err, "second remove")
}

func TestOpenFile(t *testing.T) {
	d := fixtures.TestDirectory("addressbook")

	s, err := addressbook.Open(d+"/book.leveldb", logger.New(fixtures.LogCategory))
	assert.Nil(t, err, "open")
	assert.Nil(t, s.Get("OWNER1").Add("bob", "N-bob"), "add")
	assert.Nil(t, s.Close(), "close")

	s, err = addressbook.Open(d+"/book.leveldb", logger.New(fixtures.LogCategory))
	assert.Nil(t, err, "reopen")
	defer s.Close()

	id, ok := s.Get("OWNER1").NymID("bob")
	assert.True(t, ok, "persisted contact")
	assert.Equal(t, "N-bob", id, "persisted id")
}
