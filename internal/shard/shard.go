// Package shard splits a memory-mapped file into line-aligned byte ranges,
// one per worker, so no worker ever sees a partial line.
package shard

import "github.com/coldcutz/onebrc/internal/scanner"

// Range is a half-open, line-aligned byte range [Start, End).
type Range struct {
	Start, End int
}

// Split divides data into k contiguous ranges whose boundaries all fall
// immediately after a '\n' (or at 0 / len(data)). Grounded on the
// teacher's run() chunking loop, generalized into a standalone function:
// choose k-1 candidate cut points at len*i/k, then walk forward to the
// next newline at or after the candidate. The last range always ends at
// len(data). Tolerates k > number of lines (trailing ranges come out
// empty) and len(data) == 0 (every range is empty).
func Split(data []byte, k int) []Range {
	if k < 1 {
		k = 1
	}
	ranges := make([]Range, k)
	n := len(data)
	start := 0
	for i := 0; i < k; i++ {
		if i == k-1 {
			ranges[i] = Range{Start: start, End: n}
			break
		}
		candidate := n * (i + 1) / k
		end := candidate
		if candidate < n {
			if nl := scanner.FindByte(data[candidate:], '\n'); nl != -1 {
				end = candidate + nl + 1
			} else {
				end = n
			}
		}
		ranges[i] = Range{Start: start, End: end}
		start = end
	}
	return ranges
}
