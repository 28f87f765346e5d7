package search

var (
	// index is selected at startup by the per-arch init files.
	index func([]byte, []byte) int64
)

// Index returns the first position the needle is in the haystack or -1 if
// needle was not found. An empty needle matches at position 0, even when
// the haystack is empty. When the needle occurs more than once the leftmost
// position is returned.
func Index(haystack []byte, needle []byte) int64 {
	return index(haystack, needle)
}

// Contains reports whether needle occurs anywhere in haystack.
func Contains(haystack []byte, needle []byte) bool {
	return Index(haystack, needle) >= 0
}
