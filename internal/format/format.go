// Package format renders a global station.Table into the challenge's
// output string: {name=min/mean/max, ...}.
package format

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/coldcutz/onebrc/internal/station"
	"golang.org/x/exp/maps"
)

// Render formats tbl as "{NAME1=MIN/MEAN/MAX, NAME2=..., ...}\n". Station
// names are sorted lexicographically on raw bytes for reproducibility
// (spec §4.5 permits, does not require, this ordering).
func Render(tbl *station.Table) string {
	byName := make(map[string]*station.Stats, tbl.Len())
	tbl.ForEach(func(s *station.Stats) {
		byName[string(s.Name)] = s
	})

	names := maps.Keys(byName)
	slices.Sort(names)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteString(", ")
		}
		s := byName[name]
		fmt.Fprintf(&buf, "%s=%s/%s/%s", name,
			formatTenths(s.MinTenths), formatMean(s.SumTenths, s.Count), formatTenths(s.MaxTenths))
	}
	buf.WriteString("}\n")
	return buf.String()
}

// formatTenths renders a tenths-of-a-degree fixed-point value with
// exactly one fractional digit, no '+' sign on positives.
func formatTenths(tenths int16) string {
	neg := tenths < 0
	if neg {
		tenths = -tenths
	}
	whole := tenths / 10
	frac := tenths % 10
	if neg {
		return fmt.Sprintf("-%d.%d", whole, frac)
	}
	return fmt.Sprintf("%d.%d", whole, frac)
}

// formatMean computes round_to_tenth(sum/count/10.0) as a single divide on
// the int64 sum followed by half-away-from-zero rounding to the nearest
// tenth (spec §4.5, §9: floating point appears only here, never in the
// accumulation path, so the result is deterministic regardless of scan
// or merge order).
func formatMean(sumTenths int64, count uint64) string {
	mean := float64(sumTenths) / float64(count)
	rounded := roundHalfAwayFromZero(mean)
	return formatTenths(int16(rounded))
}

func roundHalfAwayFromZero(tenths float64) int64 {
	if tenths < 0 {
		return -int64(-tenths + 0.5)
	}
	return int64(tenths + 0.5)
}
