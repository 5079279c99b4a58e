// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/otclient/cache"
	"github.com/bitmark-inc/otclient/fixtures"
	"github.com/bitmark-inc/otclient/ledger/mocks"
	"github.com/bitmark-inc/otclient/subject"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func expectNyms(m *mocks.MockService, ids []string, names []string) {
	m.EXPECT().Count(subject.Nym).Return(int32(len(ids))).AnyTimes()
	for i, id := range ids {
		m.EXPECT().IDAt(subject.Nym, int32(i)).Return(id).AnyTimes()
		m.EXPECT().NameOf(subject.Nym, id).Return(names[i]).AnyTimes()
	}
}

func TestSyncLoadsOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	m.EXPECT().Count(subject.Nym).Return(int32(2)).Times(2)
	m.EXPECT().IDAt(subject.Nym, int32(0)).Return("N1").Times(1)
	m.EXPECT().IDAt(subject.Nym, int32(1)).Return("N2").Times(1)
	m.EXPECT().NameOf(subject.Nym, "N1").Return("alice").Times(1)
	m.EXPECT().NameOf(subject.Nym, "N2").Return("bob").Times(1)

	c := cache.New(subject.Nym, m, logger.New(fixtures.LogCategory))

	assert.True(t, c.Sync(false), "first sync should reload")
	assert.False(t, c.Sync(false), "second sync should not reload")
	assert.Equal(t, 2, c.Size(), "wrong size")
	assert.Equal(t, subject.Nym, c.Kind(), "wrong kind")
}

func TestSyncReloadsOnCountChange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	gomock.InOrder(
		m.EXPECT().Count(subject.Nym).Return(int32(1)),
		m.EXPECT().Count(subject.Nym).Return(int32(2)),
	)
	m.EXPECT().IDAt(subject.Nym, int32(0)).Return("N1").Times(2)
	m.EXPECT().IDAt(subject.Nym, int32(1)).Return("N2").Times(1)
	m.EXPECT().NameOf(subject.Nym, "N1").Return("alice").Times(2)
	m.EXPECT().NameOf(subject.Nym, "N2").Return("bob").Times(1)

	c := cache.New(subject.Nym, m, logger.New(fixtures.LogCategory))

	assert.True(t, c.Sync(false), "first sync")
	assert.Equal(t, 1, c.Size(), "wrong size after first sync")

	assert.True(t, c.Sync(false), "count change must reload")
	assert.Equal(t, 2, c.Size(), "wrong size after reload")
}

func TestForceReload(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	m.EXPECT().Count(subject.Nym).Return(int32(1)).Times(2)
	m.EXPECT().IDAt(subject.Nym, int32(0)).Return("N1").Times(2)
	m.EXPECT().NameOf(subject.Nym, "N1").Return("alice").Times(2)

	c := cache.New(subject.Nym, m, logger.New(fixtures.LogCategory))
	all := c.All(false)
	assert.Equal(t, map[string]string{"N1": "alice"}, all, "wrong map")

	all = c.All(true)
	assert.Equal(t, map[string]string{"N1": "alice"}, all, "wrong map after force")
}

func TestNameIsStable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	expectNyms(m, []string{"N1", "N2", "N3"}, []string{"alice", "bob", "alice"})

	c := cache.New(subject.Nym, m, logger.New(fixtures.LogCategory))
	c.Sync(false)

	for i := 0; i < 5; i += 1 {
		name, ok := c.Name("N3")
		assert.True(t, ok, "N3 should be cached")
		assert.Equal(t, "alice", name, "name must not change")
	}

	_, ok := c.Name("N9")
	assert.False(t, ok, "unknown id should miss")
}

func TestFindFirstMatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	expectNyms(m, []string{"Z9", "A1", "M5"}, []string{"alice", "bob", "alice"})

	c := cache.New(subject.Nym, m, logger.New(fixtures.LogCategory))
	c.Sync(false)

	id, ok := c.Find("alice")
	assert.True(t, ok, "alice should be found")
	assert.Equal(t, "Z9", id, "lowest enumeration index must win")

	_, ok = c.Find("carol")
	assert.False(t, ok, "carol should not be found")

	assert.Equal(t, []string{"Z9", "A1", "M5"}, c.IDs(), "wrong enumeration order")
}

func TestInsertDelete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	expectNyms(m, []string{"N1"}, []string{"alice"})

	c := cache.New(subject.Nym, m, logger.New(fixtures.LogCategory))
	c.Sync(false)

	c.Insert("N2", "bob")
	name, ok := c.Name("N2")
	assert.True(t, ok, "inserted entry")
	assert.Equal(t, "bob", name, "inserted name")

	c.Insert("N1", "alicia")
	name, _ = c.Name("N1")
	assert.Equal(t, "alicia", name, "renamed entry")
	assert.Equal(t, 2, c.Size(), "rename must not add")

	c.Delete("N2")
	assert.Equal(t, 1, c.Size(), "deleted entry")
	_, ok = c.Name("N2")
	assert.False(t, ok, "deleted entry should miss")
}

func TestEmptyIdentifierDoesNotForceReload(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	m.EXPECT().Count(subject.Nym).Return(int32(2)).Times(3)
	m.EXPECT().IDAt(subject.Nym, int32(0)).Return("N1").Times(1)
	m.EXPECT().IDAt(subject.Nym, int32(1)).Return("").Times(1)
	m.EXPECT().NameOf(subject.Nym, "N1").Return("alice").Times(1)

	c := cache.New(subject.Nym, m, logger.New(fixtures.LogCategory))

	assert.True(t, c.Sync(false), "first sync should reload")
	assert.Equal(t, 1, c.Size(), "empty identifier must not be cached")
	assert.False(t, c.Sync(false), "unchanged count must not reload")
	assert.False(t, c.Sync(false), "still unchanged")
}
