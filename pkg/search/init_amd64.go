package search

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

func init() {
	// bytes.Index is vectorized on CPUs with AVX2, so it serves as the
	// accelerated path. Everything else gets the portable scan.
	if cpu.X86.HasAVX2 {
		index = func(haystack []byte, needle []byte) int64 { return int64(bytes.Index(haystack, needle)) }
	} else {
		index = IndexPortable
	}
}
