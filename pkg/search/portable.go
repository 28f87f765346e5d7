package search

// IndexPortable is the fallback used where no accelerated search is
// available. It scans candidate start positions left to right and compares
// the needle at each one: no preprocessing, no skip tables. Worst case is
// O(len(haystack) * len(needle)).
//
// The inputs are never written to and the function allocates nothing, so it
// is safe to call concurrently on shared buffers.
func IndexPortable(haystack []byte, needle []byte) int64 {
	n := len(needle)
	if n == 0 {
		return 0
	}
	if n > len(haystack) {
		return -1
	}

	last := len(haystack) - n
	for i := 0; i <= last; i++ {
		j := 0
		for j < n && haystack[i+j] == needle[j] {
			j++
		}
		if j == n {
			return int64(i)
		}
	}
	return -1
}
