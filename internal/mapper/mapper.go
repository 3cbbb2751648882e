// Package mapper runs the per-worker scan: walk a line-aligned byte
// range, split each line on ';', parse the temperature, and fold it into
// a worker-local station.Table.
package mapper

import (
	"fmt"

	"github.com/coldcutz/onebrc/internal/scanner"
	"github.com/coldcutz/onebrc/internal/station"
)

// expectedCardinality sizes each worker-local table so the hot loop never
// triggers a rehash; ~10k distinct stations is the challenge's stated
// dictionary size (spec §3 "Worker-local table").
const expectedCardinality = 10_000

// NewTable returns a table pre-reserved at the expected station
// cardinality, ready to be handed to Scan.
func NewTable() *station.Table {
	return station.New(expectedCardinality)
}

// Scan walks chunk (already guaranteed to contain only whole lines) and
// folds every (station, temperature) pair into tbl. Empty lines (two
// consecutive '\n', or a leading one) are skipped silently. A line with no
// ';', or with a temperature too short to index, panics inside the
// scanner; Scan recovers that panic and returns it as an error, so the
// caller gets a diagnostic (spec §7). Other violations of the
// measurements.txt grammar are not detected: such a line is folded into
// tbl with whatever value ParseTemperature computes for it.
func Scan(chunk []byte, tbl *station.Table) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mapper: malformed line: %v", r)
		}
	}()

	lineStart := 0
	for lineStart < len(chunk) {
		nl := scanner.FindByte(chunk[lineStart:], '\n')
		var line []byte
		var next int
		if nl == -1 {
			// final line with no trailing newline (spec §8 boundary case)
			line = chunk[lineStart:]
			next = len(chunk)
		} else {
			line = chunk[lineStart : lineStart+nl]
			next = lineStart + nl + 1
		}

		if len(line) == 0 {
			lineStart = next
			continue
		}

		name, tempBytes := scanner.SplitOnSemicolon(line)
		tenths := scanner.ParseTemperature(tempBytes)
		tbl.ObserveHashed(station.Hash(name), name, tenths)

		lineStart = next
	}
	return nil
}
