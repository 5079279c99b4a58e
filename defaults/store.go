// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package defaults

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/otclient/cache"
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

// Resolver - turns a name or literal reference into an identifier
type Resolver interface {
	ID(kind subject.Kind, ref string) string
}

// Persister - whole map storage
type Persister interface {
	Load() (map[subject.Kind]string, error)
	Save(items map[subject.Kind]string) error
}

// Entry - one default for display
type Entry struct {
	Kind subject.Kind
	ID   string
}

// Store - current defaults
type Store struct {
	log       *logger.L
	lister    cache.Lister
	resolver  Resolver
	persister Persister
	items     map[subject.Kind]string
}

var noDefault = map[subject.Kind]error{
	subject.Account: fault.ErrNoDefaultAccount,
	subject.Asset:   fault.ErrNoDefaultAsset,
	subject.Nym:     fault.ErrNoDefaultNym,
	subject.Server:  fault.ErrNoDefaultServer,
}

// New - create an empty store, call Load once the ledger is available
func New(lister cache.Lister, resolver Resolver, persister Persister, log *logger.L) *Store {
	items := make(map[subject.Kind]string)
	for _, k := range subject.Kinds() {
		items[k] = ""
	}
	return &Store{
		log:       log,
		lister:    lister,
		resolver:  resolver,
		persister: persister,
		items:     items,
	}
}

// Load - read the persisted defaults, otherwise take the first
// identifier of each kind from the ledger
func (s *Store) Load() {
	items, err := s.persister.Load()
	if nil == err {
		for _, k := range subject.Kinds() {
			s.items[k] = items[k]
		}
		s.log.Infof("loaded defaults: %v", s.items)
		return
	}

	s.log.Warnf("cannot load defaults: %s  using first entry of each kind", err)

	for _, k := range subject.Kinds() {
		id := ""
		if s.lister.Count(k) > 0 {
			id = s.lister.IDAt(k, 0)
		}
		s.items[k] = id

		if "" != id {
			s.log.Infof("default %s: %s", k, id)
			continue
		}
		if subject.Server == k {
			s.log.Errorf("no %s available for default", k)
		} else {
			s.log.Warnf("no %s available for default", k)
		}
	}
}

// Get - the default identifier for a kind
func (s *Store) Get(kind subject.Kind) (string, error) {
	if !kind.Valid() {
		return "", fault.ErrInvalidSubjectKind
	}
	id := s.items[kind]
	if "" == id {
		return "", noDefault[kind]
	}
	return id, nil
}

// Set - resolve a reference, make it the default and persist all defaults
func (s *Store) Set(kind subject.Kind, ref string) error {
	if !kind.Valid() {
		return fault.ErrInvalidSubjectKind
	}
	id := s.resolver.ID(kind, ref)
	if "" == id {
		return fault.ErrNotFoundSubject
	}

	s.items[kind] = id
	s.log.Infof("set default %s: %s", kind, id)

	items := make(map[subject.Kind]string, len(s.items))
	for k, v := range s.items {
		items[k] = v
	}
	return s.persister.Save(items)
}

// All - every default in kind order
func (s *Store) All() []Entry {
	entries := make([]Entry, 0, len(s.items))
	for _, k := range subject.Kinds() {
		entries = append(entries, Entry{Kind: k, ID: s.items[k]})
	}
	return entries
}
