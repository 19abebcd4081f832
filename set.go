package storage

import (
	"github.com/BarrensZeppelin/storage/internal/slices"
	"golang.org/x/tools/container/intsets"
)

// Set is a collection of storages indexed by domain, used to answer
// interference queries such as "which live storages does this definition
// clobber". The zero value is an empty set.
//
// A Set must not be mutated concurrently.
type Set struct {
	domains  intsets.Sparse
	byDomain map[Domain][]Storage
	order    []Storage
}

func NewSet(stgs ...Storage) *Set {
	s := &Set{}
	for _, stg := range stgs {
		s.Add(stg)
	}
	return s
}

// Add inserts stg unless an equal storage is already present. It returns
// whether the set changed.
func (s *Set) Add(stg Storage) bool {
	if absent(stg) || s.Has(stg) {
		return false
	}
	if s.byDomain == nil {
		s.byDomain = make(map[Domain][]Storage)
	}

	d := stg.Domain()
	s.domains.Insert(int(d))
	s.byDomain[d] = append(s.byDomain[d], stg)
	s.order = append(s.order, stg)
	return true
}

func (s *Set) Has(stg Storage) bool {
	if absent(stg) {
		return false
	}
	return slices.ContainsFunc(s.byDomain[stg.Domain()], func(x Storage) bool {
		return Equal(x, stg)
	})
}

func (s *Set) Len() int { return len(s.order) }

// Storages returns the members in insertion order.
func (s *Set) Storages() []Storage {
	return append([]Storage(nil), s.order...)
}

// Domains returns the domains of the members in ascending order.
func (s *Set) Domains() []Domain {
	return slices.Map(s.domains.AppendTo(nil), func(d int) Domain { return Domain(d) })
}

// Overlapping returns the members that overlap stg, in insertion order.
func (s *Set) Overlapping(stg Storage) []Storage {
	if absent(stg) {
		return nil
	}
	return slices.Filter(s.byDomain[stg.Domain()], stg.OverlapsWith)
}

// Covering returns the first member, in insertion order, that covers stg.
func (s *Set) Covering(stg Storage) (Storage, bool) {
	if absent(stg) {
		return nil, false
	}
	for _, x := range s.byDomain[stg.Domain()] {
		if x.Covers(stg) {
			return x, true
		}
	}
	return nil, false
}

// Interferes reports whether some member of s overlaps some member of o.
func (s *Set) Interferes(o *Set) bool {
	if o == nil || !s.domains.Intersects(&o.domains) {
		return false
	}

	var common intsets.Sparse
	common.Intersection(&s.domains, &o.domains)
	for _, d := range common.AppendTo(nil) {
		for _, x := range s.byDomain[Domain(d)] {
			if slices.ContainsFunc(o.byDomain[Domain(d)], x.OverlapsWith) {
				return true
			}
		}
	}
	return false
}
