package search

import "iter"

// IndexFrom returns the first position of needle in haystack at or after
// start, or -1 if there is none. The returned offset is absolute, not
// relative to start. A negative start is treated as 0 and a start past the
// end of the haystack finds nothing.
func IndexFrom(haystack []byte, needle []byte, start int64) int64 {
	if start < 0 {
		start = 0
	}
	if start > int64(len(haystack)) {
		return -1
	}
	i := Index(haystack[start:], needle)
	if i < 0 {
		return -1
	}
	return start + i
}

// All returns an iterator over every position of needle in haystack, in
// increasing order. After each hit the scan resumes step bytes later, so a
// step below len(needle) reports overlapping occurrences and a step of
// len(needle) or more reports disjoint ones. A step below 1 is treated
// as 1. An empty needle yields nothing.
func All(haystack []byte, needle []byte, step int64) iter.Seq[int64] {
	if step < 1 {
		step = 1
	}
	return func(yield func(int64) bool) {
		if len(needle) == 0 {
			return
		}
		offset := int64(0)
		for {
			found := IndexFrom(haystack, needle, offset)
			if found < 0 {
				return
			}
			if !yield(found) {
				return
			}
			offset = found + step
		}
	}
}

// Count returns the number of non-overlapping occurrences of needle in
// haystack. An empty needle counts the len(haystack)+1 positions between
// bytes, matching bytes.Count.
func Count(haystack []byte, needle []byte) int64 {
	if len(needle) == 0 {
		return int64(len(haystack)) + 1
	}
	var n int64
	for range All(haystack, needle, int64(len(needle))) {
		n++
	}
	return n
}
