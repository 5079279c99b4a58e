// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/otclient/cache"
	"github.com/bitmark-inc/otclient/fixtures"
	"github.com/bitmark-inc/otclient/ledger/mocks"
	"github.com/bitmark-inc/otclient/resolver"
	"github.com/bitmark-inc/otclient/subject"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type book map[string]map[string]string

func (b book) NymID(owner string, name string) (string, bool) {
	for id, n := range b[owner] {
		if n == name {
			return id, true
		}
	}
	return "", false
}

func (b book) NymName(id string, owners []string) (string, bool) {
	for _, owner := range owners {
		if n, ok := b[owner][id]; ok {
			return n, true
		}
	}
	return "", false
}

func expectList(m *mocks.MockService, kind subject.Kind, ids []string, names []string) {
	m.EXPECT().Count(kind).Return(int32(len(ids))).AnyTimes()
	for i, id := range ids {
		m.EXPECT().IDAt(kind, int32(i)).Return(id).AnyTimes()
		m.EXPECT().NameOf(kind, id).Return(names[i]).AnyTimes()
	}
}

func newResolver(m *mocks.MockService, b resolver.AddressBook) *resolver.Resolver {
	log := logger.New(fixtures.LogCategory)
	nyms := cache.New(subject.Nym, m, log)
	return resolver.New(m, nyms, b, log)
}

func TestLiteralMakesNoCalls(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: any ledger call fails the test
	m := mocks.NewMockService(ctl)
	r := newResolver(m, nil)

	for _, k := range subject.Kinds() {
		assert.Equal(t, "deadbeef", r.ID(k, "^deadbeef"), "literal for: %s", k)
		assert.Equal(t, "^x", r.ID(k, "^^x"), "only one prefix is stripped for: %s", k)
		assert.Equal(t, "", r.ID(k, ""), "empty for: %s", k)
		assert.False(t, r.Exists(k, ""), "empty must not exist for: %s", k)
	}
}

func TestScanFirstMatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	expectList(m, subject.Asset, []string{"G123", "S456", "G789"}, []string{"Gold", "Silver", "Gold"})

	r := newResolver(m, nil)
	assert.Equal(t, "G123", r.ID(subject.Asset, "Gold"), "first match in enumeration order")
	assert.Equal(t, "S456", r.ID(subject.Asset, "Silver"), "silver")
	assert.Equal(t, "", r.ID(subject.Asset, "Copper"), "missing asset")
	assert.True(t, r.Exists(subject.Asset, "Silver"), "silver exists")
	assert.False(t, r.Exists(subject.Asset, "Copper"), "copper does not exist")
	assert.Equal(t, "Silver (S456)", r.Describe(subject.Asset, "Silver"), "describe")
}

func TestNymUsesCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	m.EXPECT().Count(subject.Nym).Return(int32(2)).Times(1)
	m.EXPECT().IDAt(subject.Nym, int32(0)).Return("N1").Times(1)
	m.EXPECT().IDAt(subject.Nym, int32(1)).Return("N2").Times(1)
	m.EXPECT().NameOf(subject.Nym, "N1").Return("alice").Times(1)
	m.EXPECT().NameOf(subject.Nym, "N2").Return("bob").Times(1)

	r := newResolver(m, nil)
	assert.Equal(t, "N2", r.ID(subject.Nym, "bob"), "first lookup loads the cache")
	assert.Equal(t, "N1", r.ID(subject.Nym, "alice"), "second lookup is a cache hit")
	assert.Equal(t, "alice", r.Name(subject.Nym, "N1"), "cached name")
}

func TestRecipientFallsBackToAddressBook(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	expectList(m, subject.Nym, []string{"N1"}, []string{"alice"})

	b := book{"N1": {"EXT9": "carol"}}
	r := newResolver(m, b)

	assert.Equal(t, "", r.ID(subject.Nym, "carol"), "owned resolution must not use the address book")
	assert.Equal(t, "EXT9", r.RecipientID("carol", "N1"), "recipient from address book")
	assert.Equal(t, "", r.RecipientID("carol", "N2"), "other owner's book")
	assert.Equal(t, "N1", r.RecipientID("alice", "N1"), "wallet nym")

	assert.Equal(t, "carol", r.Name(subject.Nym, "EXT9"), "name from address book")
	assert.Equal(t, cache.Unknown, r.Name(subject.Nym, "EXT0"), "unknown nym label")
	assert.Equal(t, "EXT0", r.RecipientName("EXT0"), "recipient name falls back to id")
	assert.Equal(t, "carol", r.RecipientName("EXT9"), "recipient name")
}
