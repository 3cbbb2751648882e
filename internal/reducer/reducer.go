// Package reducer merges the per-worker station tables produced by the
// mapper into one global table, after every worker has joined.
package reducer

import "github.com/coldcutz/onebrc/internal/station"

// Merge creates an empty global table sized to the largest contributor
// and folds every worker table into it. Merge is associative and
// commutative (station.Stats.Merge is componentwise min/max/sum/count),
// so the order tables arrive in does not affect the result (spec §4.4,
// §8 "Laws").
func Merge(tables []*station.Table) *station.Table {
	if len(tables) == 0 {
		return station.New(0)
	}

	largest := 0
	for _, t := range tables {
		if n := t.Len(); n > largest {
			largest = n
		}
	}

	global := station.New(largest)
	for _, t := range tables {
		global.MergeFrom(t)
	}
	return global
}
