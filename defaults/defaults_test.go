// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package defaults_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/otclient/defaults"
	"github.com/bitmark-inc/otclient/fault"
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

type names map[string]string

func (n names) ID(kind subject.Kind, ref string) string {
	if subject.IsLiteral(ref) {
		return subject.Strip(ref)
	}
	return n[ref]
}

type memory struct {
	items map[subject.Kind]string
	saves int
}

func (m *memory) Load() (map[subject.Kind]string, error) {
	if nil == m.items {
		return nil, fault.ErrNotFoundConfigFile
	}
	return m.items, nil
}

func (m *memory) Save(items map[subject.Kind]string) error {
	m.items = items
	m.saves += 1
	return nil
}

func TestLoadFallsBackToFirstEntry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	m.EXPECT().Count(subject.Account).Return(int32(2)).Times(1)
	m.EXPECT().IDAt(subject.Account, int32(0)).Return("A1").Times(1)
	m.EXPECT().Count(subject.Asset).Return(int32(1)).Times(1)
	m.EXPECT().IDAt(subject.Asset, int32(0)).Return("G123").Times(1)
	m.EXPECT().Count(subject.Nym).Return(int32(0)).Times(1)
	m.EXPECT().Count(subject.Server).Return(int32(0)).Times(1)

	p := &memory{}
	s := defaults.New(m, names{}, p, logger.New(fixtures.LogCategory))
	s.Load()

	id, err := s.Get(subject.Account)
	assert.Nil(t, err, "account default")
	assert.Equal(t, "A1", id, "first account")

	id, err = s.Get(subject.Asset)
	assert.Nil(t, err, "asset default")
	assert.Equal(t, "G123", id, "first asset")

	_, err = s.Get(subject.Nym)
	assert.Equal(t, fault.ErrNoDefaultNym, err, "no nyms")
	assert.True(t, fault.IsErrNoDefault(err), "wrong error class")

	_, err = s.Get(subject.Server)
	assert.Equal(t, fault.ErrNoDefaultServer, err, "no servers")

	assert.Equal(t, 0, p.saves, "synthesised defaults are not saved")
}

func TestLoadPersisted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// persisted defaults need no ledger calls
	m := mocks.NewMockService(ctl)

	p := &memory{items: map[subject.Kind]string{
		subject.Nym:    "N1",
		subject.Server: "S1",
	}}
	s := defaults.New(m, names{}, p, logger.New(fixtures.LogCategory))
	s.Load()

	assert.Equal(t, []defaults.Entry{
		{Kind: subject.Account, ID: ""},
		{Kind: subject.Asset, ID: ""},
		{Kind: subject.Nym, ID: "N1"},
		{Kind: subject.Server, ID: "S1"},
	}, s.All(), "every kind must be present")
}

func TestSetResolvesAndPersists(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	p := &memory{items: map[subject.Kind]string{subject.Nym: "N1"}}
	s := defaults.New(m, names{"Gold": "G123"}, p, logger.New(fixtures.LogCategory))
	s.Load()

	err := s.Set(subject.Asset, "Gold")
	assert.Nil(t, err, "set asset")

	id, err := s.Get(subject.Asset)
	assert.Nil(t, err, "get asset")
	assert.Equal(t, "G123", id, "resolved asset")

	assert.Equal(t, 1, p.saves, "one save per set")
	assert.Equal(t, "G123", p.items[subject.Asset], "saved asset")
	assert.Equal(t, "N1", p.items[subject.Nym], "whole map is saved")

	err = s.Set(subject.Asset, "Copper")
	assert.Equal(t, fault.ErrNotFoundSubject, err, "unresolvable reference")
	id, _ = s.Get(subject.Asset)
	assert.Equal(t, "G123", id, "failed set must not change the default")
	assert.Equal(t, 1, p.saves, "failed set must not save")
}

func TestFileRoundTrip(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockService(ctl)
	m.EXPECT().Count(gomock.Any()).Return(int32(0)).AnyTimes()

	d := fixtures.TestDirectory("defaults")
	filename := filepath.Join(d, "defaults.yaml")
	p := defaults.NewFilePersister(filename)
	assert.Equal(t, filename, p.Filename(), "filename")

	s := defaults.New(m, names{}, p, logger.New(fixtures.LogCategory))
	s.Load()

	assert.Nil(t, s.Set(subject.Server, "^S1"), "set server")
	assert.Nil(t, s.Set(subject.Nym, "^N1"), "set nym")

	_, err := os.Stat(filename + ".bk")
	assert.Nil(t, err, "second save keeps a backup")

	data, err := ioutil.ReadFile(filename)
	assert.Nil(t, err, "read file")
	assert.Contains(t, string(data), "server: S1", "server line")
	assert.Contains(t, string(data), "nym: N1", "nym line")

	reloaded := defaults.New(m, names{}, defaults.NewFilePersister(filename), logger.New(fixtures.LogCategory))
	reloaded.Load()

	id, err := reloaded.Get(subject.Server)
	assert.Nil(t, err, "reloaded server")
	assert.Equal(t, "S1", id, "server round trip")

	id, err = reloaded.Get(subject.Nym)
	assert.Nil(t, err, "reloaded nym")
	assert.Equal(t, "N1", id, "nym round trip")
}
