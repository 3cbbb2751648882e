//go:build amd64

package scanner

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// wideLanes is true when the CPU's vector unit is wide enough to make it
// worth unrolling two words per iteration instead of one. This mirrors the
// AVX2-vs-SSE dispatch entreya-csvquery's internal/simd package does for
// its quote/comma/newline scan, except we stay in scalar SWAR registers
// rather than emitting AVX assembly: the win here is fewer branches per
// word, not wider SIMD lanes, since Go doesn't expose vector intrinsics
// without cgo or hand-written .s files.
var wideLanes = cpu.X86.HasAVX2

func findByte(haystack []byte, needle byte) int {
	n := len(haystack)
	i := 0
	stride := 8
	if wideLanes {
		stride = 16
	}
	for ; i+stride <= n; i += stride {
		w0 := binary.LittleEndian.Uint64(haystack[i:])
		if m := hasByteSWAR(w0, uint64(needle)); m != 0 {
			return i + firstMatchIndex(m)
		}
		if stride == 16 {
			w1 := binary.LittleEndian.Uint64(haystack[i+8:])
			if m := hasByteSWAR(w1, uint64(needle)); m != 0 {
				return i + 8 + firstMatchIndex(m)
			}
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return noIndex
}

func findByteReverse(haystack []byte, needle byte) int {
	n := len(haystack)
	i := n
	for i-8 >= 0 {
		i -= 8
		w := binary.LittleEndian.Uint64(haystack[i:])
		if m := hasByteSWAR(w, uint64(needle)); m != 0 {
			return i + lastMatchIndex(m)
		}
	}
	for j := i - 1; j >= 0; j-- {
		if haystack[j] == needle {
			return j
		}
	}
	return noIndex
}
