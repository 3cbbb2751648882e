// Package station holds the per-station accumulator and the worker-local
// and global hash tables keyed on raw station name bytes.
package station

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/kamstrup/intmap"
)

// Stats is the accumulator record for one station, in tenths-of-a-degree
// fixed point. Invariant: Min <= Max, Count >= 1, Min*Count <= Sum <= Max*Count.
type Stats struct {
	Name      []byte
	MinTenths int16
	MaxTenths int16
	SumTenths int64
	Count     uint64
}

// Observe folds one sample into the accumulator.
func (s *Stats) Observe(tenths int16) {
	if tenths < s.MinTenths {
		s.MinTenths = tenths
	}
	if tenths > s.MaxTenths {
		s.MaxTenths = tenths
	}
	s.SumTenths += int64(tenths)
	s.Count++
}

// Merge folds another accumulator for the same station into s.
func (s *Stats) Merge(other *Stats) {
	if other.MinTenths < s.MinTenths {
		s.MinTenths = other.MinTenths
	}
	if other.MaxTenths > s.MaxTenths {
		s.MaxTenths = other.MaxTenths
	}
	s.SumTenths += other.SumTenths
	s.Count += other.Count
}

// bucket chains entries that share a hash. Distinct stations can share an
// xxhash64 value; the teacher's original table keyed directly on the hash
// and assumed that never happened. We verify by byte equality instead.
type bucket []*Stats

// Table is a station name -> Stats map, open-addressed on xxhash64 of the
// name with byte-equality-verified collision chains. Pre-reserve capacity
// at construction time so the hot scan loop never triggers a rehash.
type Table struct {
	m *intmap.Map[uint64, bucket]
}

// New constructs a table pre-sized for the expected station cardinality.
func New(capacity int) *Table {
	return &Table{m: intmap.New[uint64, bucket](capacity)}
}

// Hash returns the table's hash of a station name. Exposed so callers that
// already have the hash (e.g. after a lookup) don't recompute it.
func Hash(name []byte) uint64 {
	return xxhash.Sum64(name)
}

// Observe looks up name (hashing it), folding tenths into its Stats,
// inserting a fresh record with an owned copy of name on first sight.
func (t *Table) Observe(name []byte, tenths int16) {
	h := Hash(name)
	t.ObserveHashed(h, name, tenths)
}

// ObserveHashed is Observe with a precomputed hash, for callers (the
// mapper's hot loop) that compute the hash once per line and want to
// avoid a second pass over name.
func (t *Table) ObserveHashed(h uint64, name []byte, tenths int16) {
	b, _ := t.m.Get(h)
	for _, s := range b {
		if bytes.Equal(s.Name, name) {
			s.Observe(tenths)
			return
		}
	}
	s := &Stats{Name: append([]byte(nil), name...), MinTenths: tenths, MaxTenths: tenths, SumTenths: int64(tenths), Count: 1}
	t.m.Put(h, append(b, s))
}

// MergeFrom folds every entry of other into t, creating new entries for
// stations t hasn't seen and merging into existing ones otherwise. Merge
// is associative and commutative, so the order tables are merged in, and
// the order workers observed lines in, does not affect the result.
func (t *Table) MergeFrom(other *Table) {
	other.m.ForEach(func(h uint64, b bucket) {
		for _, s := range b {
			t.mergeOne(h, s)
		}
	})
}

func (t *Table) mergeOne(h uint64, s *Stats) {
	b, _ := t.m.Get(h)
	for _, existing := range b {
		if bytes.Equal(existing.Name, s.Name) {
			existing.Merge(s)
			return
		}
	}
	cp := &Stats{Name: s.Name, MinTenths: s.MinTenths, MaxTenths: s.MaxTenths, SumTenths: s.SumTenths, Count: s.Count}
	t.m.Put(h, append(b, cp))
}

// Len returns the number of distinct stations currently held.
func (t *Table) Len() int {
	n := 0
	t.m.ForEach(func(_ uint64, b bucket) { n += len(b) })
	return n
}

// ForEach visits every Stats record. Iteration order is unspecified.
func (t *Table) ForEach(fn func(*Stats)) {
	t.m.ForEach(func(_ uint64, b bucket) {
		for _, s := range b {
			fn(s)
		}
	})
}
