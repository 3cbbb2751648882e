// Package scanner provides the byte-exact scan primitives the mapper's hot
// loop is built on: find the next newline, find the semicolon within a
// line (scanning backward, since the temperature suffix is short and
// bounded while station names vary), and parse a temperature straight to
// tenths-of-a-degree fixed point. Behavior on bytes that don't match the
// measurements.txt grammar is undefined — the hot path trusts its input.
package scanner

import "math/bits"

const noIndex = -1

// FindByte returns the index of the first occurrence of needle in
// haystack, or -1 if absent. The SIMD-within-a-register path (see
// scanner_amd64.go) processes one machine word per iteration, or two when
// the CPU reports AVX2.
func FindByte(haystack []byte, needle byte) int {
	return findByte(haystack, needle)
}

// FindByteReverse returns the index of the last occurrence of needle in
// haystack, or -1 if absent. Used to locate the ';' from the end of a
// line: the temperature suffix is at most 6 bytes, so scanning backward
// from '\n' is cheaper in expectation than scanning forward past a
// variable-length station name.
func FindByteReverse(haystack []byte, needle byte) int {
	return findByteReverse(haystack, needle)
}

// hasByteSWAR implements the "SIMD within a register" zero-byte test:
// broadcast needle across a uint64, XOR with the word so matching bytes
// become zero, then set the high bit of exactly those zero bytes. The
// carry-free form is used, so no lane beside a match is flagged by a
// borrow and both firstMatchIndex and lastMatchIndex stay exact. Used by
// the amd64 scan path (scanner_amd64.go), which additionally widens to two
// words per iteration when golang.org/x/sys/cpu reports a wide enough
// vector unit.
func hasByteSWAR(word, needle uint64) uint64 {
	const lo = 0x0101010101010101
	const low7 = 0x7F7F7F7F7F7F7F7F
	x := word ^ (needle * lo)
	return ^(((x & low7) + low7) | x | low7)
}

// firstMatchIndex returns the byte offset (0..7) of the first matching
// lane in a hasByteSWAR result, assuming the machine is little-endian
// (amd64 and arm64 both are).
func firstMatchIndex(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// lastMatchIndex returns the byte offset (0..7) of the last matching lane.
func lastMatchIndex(mask uint64) int {
	return 7 - bits.LeadingZeros64(mask)/8
}
