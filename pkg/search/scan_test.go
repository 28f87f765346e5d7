package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexFrom(t *testing.T) {
	haystack := []byte(`foo bar foo bar`)
	needle := []byte(`bar`)

	require.Equal(t, int64(4), IndexFrom(haystack, needle, 0))
	require.Equal(t, int64(4), IndexFrom(haystack, needle, 4))
	require.Equal(t, int64(12), IndexFrom(haystack, needle, 5))
	require.Equal(t, int64(-1), IndexFrom(haystack, needle, 13))

	// Negative start clamps to 0, start past the end finds nothing.
	require.Equal(t, int64(4), IndexFrom(haystack, needle, -7))
	require.Equal(t, int64(-1), IndexFrom(haystack, needle, int64(len(haystack))+1))

	// Empty needle matches at the (clamped) start position.
	require.Equal(t, int64(3), IndexFrom(haystack, nil, 3))
}

func TestAll(t *testing.T) {
	for _, tt := range []struct {
		name     string
		needle   []byte
		haystack []byte
		step     int64
		offsets  []int64
	}{
		{
			"overlapping",
			[]byte(`aa`),
			[]byte(`aaaa`),
			1,
			[]int64{0, 1, 2},
		},
		{
			"non overlapping",
			[]byte(`aa`),
			[]byte(`aaaa`),
			2,
			[]int64{0, 2},
		},
		{
			"step skips matches",
			[]byte{0xFF, 0xFF},
			[]byte{0xFF, 0xFF, 0, 0xFF, 0xFF, 0, 0xFF, 0xFF},
			4,
			[]int64{0, 6},
		},
		{
			"zero step treated as one",
			[]byte(`aa`),
			[]byte(`aaa`),
			0,
			[]int64{0, 1},
		},
		{
			"no match",
			[]byte(`zz`),
			[]byte(`aaaa`),
			1,
			nil,
		},
		{
			"empty needle yields nothing",
			nil,
			[]byte(`aaaa`),
			1,
			nil,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got []int64
			for off := range All(tt.haystack, tt.needle, tt.step) {
				got = append(got, off)
			}
			require.Equal(t, tt.offsets, got)
		})
	}
}

func TestAllEarlyBreak(t *testing.T) {
	haystack := []byte(`ab ab ab ab`)
	var got []int64
	for off := range All(haystack, []byte(`ab`), 1) {
		got = append(got, off)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []int64{0, 3}, got)
}

func TestCount(t *testing.T) {
	require.Equal(t, int64(2), Count([]byte(`aaaa`), []byte(`aa`)))
	require.Equal(t, int64(3), Count([]byte(`cheese`), []byte(`e`)))
	require.Equal(t, int64(0), Count([]byte(`abc`), []byte(`xyz`)))
	require.Equal(t, int64(6), Count([]byte(`banana`), nil))
	require.Equal(t, int64(1), Count(nil, nil))
}

func TestContains(t *testing.T) {
	require.True(t, Contains([]byte(`hello world`), []byte(`o w`)))
	require.True(t, Contains([]byte(`hello world`), nil))
	require.False(t, Contains([]byte(`hello world`), []byte(`O W`)))
	require.False(t, Contains(nil, []byte(`x`)))
}
