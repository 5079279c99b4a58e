// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addressbook

import (
	"bytes"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/otclient/fault"
)

const separator = byte(0x00)

// Store - the address books of all owners
type Store struct {
	log *logger.L
	db  *leveldb.DB
}

// Open - open or create the address book database
func Open(name string, log *logger.L) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
		ReadOnly:       false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	log.Infof("opened address book: %q", name)
	return New(db, log), nil
}

// New - wrap an already open database
func New(db *leveldb.DB, log *logger.L) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// Close - release the database
func (s *Store) Close() error {
	if nil == s.db {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get - the address book of one owner
func (s *Store) Get(owner string) *Book {
	return &Book{
		store: s,
		owner: owner,
	}
}

// NymName - search the books of each owner in turn for a name
func (s *Store) NymName(id string, owners []string) (string, bool) {
	if "" == id {
		return "", false
	}
	for _, owner := range owners {
		name, ok := s.Get(owner).Name(id)
		if ok {
			return name, true
		}
	}
	return "", false
}

func (s *Store) prefix(owner string) []byte {
	p := make([]byte, 0, len(owner)+1)
	p = append(p, owner...)
	return append(p, separator)
}

func (s *Store) key(owner string, id string) []byte {
	return append(s.prefix(owner), id...)
}

// scan all records of an owner, stops early if fn returns false
func (s *Store) scan(owner string, fn func(id string, name string) bool) error {
	if nil == s.db {
		return fault.ErrNotInitialised
	}
	prefix := s.prefix(owner)
	iter := s.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		id := string(bytes.TrimPrefix(iter.Key(), prefix))
		if !fn(id, string(iter.Value())) {
			break
		}
	}
	return iter.Error()
}

// NymID - look up a contact name in one owner's book
func (s *Store) NymID(owner string, name string) (string, bool) {
	return s.Get(owner).NymID(name)
}
