//go:build !amd64

package scanner

import "bytes"

// findByte on non-amd64 targets falls back to the standard library's
// IndexByte, which each platform's assembly subrepo already vectorizes
// appropriately (NEON on arm64, and so on) — there is no portable way to
// hand-roll the amd64 package's SWAR widening without reimplementing that
// per architecture, and spec.md only requires that a scalar-safe fallback
// exist, not that every architecture get a bespoke hot path.
func findByte(haystack []byte, needle byte) int {
	return bytes.IndexByte(haystack, needle)
}

func findByteReverse(haystack []byte, needle byte) int {
	return bytes.LastIndexByte(haystack, needle)
}
