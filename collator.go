package storage

import (
	"math"
	"sort"
)

// StorageCollator orders identifiers by the position of their storage's
// domain in a canonical register list, such as the return registers of a
// calling convention. Domains missing from the list sort last, all with the
// same rank.
//
// A StorageCollator is immutable and safe for concurrent use.
type StorageCollator struct {
	ranks map[Domain]int
}

// NewStorageCollator builds a collator from representative storages, one per
// domain. When a domain appears more than once its first position is used.
func NewStorageCollator(order ...Storage) *StorageCollator {
	ranks := make(map[Domain]int, len(order))
	for i, stg := range order {
		if absent(stg) {
			continue
		}
		if _, seen := ranks[stg.Domain()]; !seen {
			ranks[stg.Domain()] = i
		}
	}
	return &StorageCollator{ranks: ranks}
}

// Rank returns the position of d in the collation order.
func (c *StorageCollator) Rank(d Domain) (int, bool) {
	r, ok := c.ranks[d]
	return r, ok
}

func (c *StorageCollator) rank(id *Identifier) int {
	if r, ok := c.ranks[id.storage.Domain()]; ok {
		return r
	}
	return math.MaxInt
}

// Compare returns a negative number if x sorts before y, zero if they have
// the same rank and a positive number otherwise. A nil identifier, or one
// without a storage, sorts before everything else.
func (c *StorageCollator) Compare(x, y *Identifier) int {
	switch xa, ya := x.absent(), y.absent(); {
	case xa && ya:
		return 0
	case xa:
		return -1
	case ya:
		return 1
	}

	rx, ry := c.rank(x), c.rank(y)
	switch {
	case rx < ry:
		return -1
	case rx > ry:
		return 1
	}
	return 0
}

func (c *StorageCollator) Less(x, y *Identifier) bool {
	return c.Compare(x, y) < 0
}

// Sort sorts ids in collation order, keeping the relative order of
// identifiers with equal rank.
func (c *StorageCollator) Sort(ids []*Identifier) {
	sort.SliceStable(ids, func(i, j int) bool {
		return c.Less(ids[i], ids[j])
	})
}
