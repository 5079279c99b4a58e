// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"sort"

	"github.com/bitmark-inc/logger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/otclient/subject"
)

// Unknown - display label for an identifier with no known name
const Unknown = "???"

// Lister - the enumeration part of the ledger service
type Lister interface {
	Count(kind subject.Kind) int32
	IDAt(kind subject.Kind, index int32) string
	NameOf(kind subject.Kind, id string) string
}

type entry struct {
	name  string
	index int32
}

// Identities - identifier to name mapping for one subject kind
type Identities struct {
	log     *logger.L
	kind    subject.Kind
	lister  Lister
	items   *gocache.Cache
	skipped int // empty identifiers seen by the last reload
}

// New - create an empty cache for a kind
func New(kind subject.Kind, lister Lister, log *logger.L) *Identities {
	return &Identities{
		log:    log,
		kind:   kind,
		lister: lister,
		items:  gocache.New(gocache.NoExpiration, 0),
	}
}

// Kind - the subject kind held by this cache
func (c *Identities) Kind() subject.Kind {
	return c.kind
}

// Sync - compare with the live count and reload on any difference,
// returns true if a reload happened
func (c *Identities) Sync(force bool) bool {
	live := c.lister.Count(c.kind)
	size := c.items.ItemCount()

	if !force && int(live) == size+c.skipped {
		return false
	}

	c.log.Debugf("reloading %s cache: cached: %d  live: %d  force: %t", c.kind, size, live, force)

	c.items.Flush()
	c.skipped = 0
	for i := int32(0); i < live; i += 1 {
		id := c.lister.IDAt(c.kind, i)
		if "" == id {
			c.log.Warnf("%s at index: %d has empty identifier", c.kind, i)
			c.skipped += 1
			continue
		}
		c.items.Set(id, entry{
			name:  c.lister.NameOf(c.kind, id),
			index: i,
		}, gocache.NoExpiration)
	}
	return true
}

// All - synchronise then return a copy of the identifier to name map
func (c *Identities) All(force bool) map[string]string {
	c.Sync(force)

	m := make(map[string]string, c.items.ItemCount())
	for id, item := range c.items.Items() {
		m[id] = item.Object.(entry).name
	}
	return m
}

// IDs - synchronise then return the identifiers in enumeration order
func (c *Identities) IDs() []string {
	c.Sync(false)
	return c.ordered()
}

func (c *Identities) ordered() []string {
	type pair struct {
		id    string
		index int32
	}
	items := c.items.Items()
	pairs := make([]pair, 0, len(items))
	for id, item := range items {
		pairs = append(pairs, pair{id: id, index: item.Object.(entry).index})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].index == pairs[j].index {
			return pairs[i].id < pairs[j].id
		}
		return pairs[i].index < pairs[j].index
	})

	ids := make([]string, len(pairs))
	for i, p := range pairs {
		ids[i] = p.id
	}
	return ids
}

// Name - cached name for an identifier
func (c *Identities) Name(id string) (string, bool) {
	item, ok := c.items.Get(id)
	if !ok {
		return "", false
	}
	return item.(entry).name, true
}

// Find - identifier for an exact name, lowest enumeration index wins
func (c *Identities) Find(name string) (string, bool) {
	found := ""
	lowest := int32(-1)
	for id, item := range c.items.Items() {
		e := item.Object.(entry)
		if name != e.name {
			continue
		}
		if -1 == lowest || e.index < lowest || (e.index == lowest && id < found) {
			found = id
			lowest = e.index
		}
	}
	return found, "" != found
}

// Insert - add or rename an entry, a new entry goes after all others
func (c *Identities) Insert(id string, name string) {
	index := int32(c.items.ItemCount())
	if item, ok := c.items.Get(id); ok {
		index = item.(entry).index
	}
	c.items.Set(id, entry{name: name, index: index}, gocache.NoExpiration)
}

// Delete - remove an entry
func (c *Identities) Delete(id string) {
	c.items.Delete(id)
}

// Size - number of cached entries
func (c *Identities) Size() int {
	return c.items.ItemCount()
}
