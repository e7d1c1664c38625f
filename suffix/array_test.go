package suffix

import (
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveSuffixArray sorts suffix offsets by direct string comparison.
func naiveSuffixArray(seq string) []int {
	sa := make([]int, len(seq))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool { return seq[sa[i]:] < seq[sa[j]:] })
	return sa
}

func TestSAISMatchesNaiveSort(t *testing.T) {
	fixed := []string{"", "A", "AB", "BA", "ABCABC", "AAABBBCCC", "DCBADCBA", "ABAABAABA", strings.Repeat("A", 33)}
	for _, seq := range fixed {
		arr, err := NewArray(seq)
		require.NoError(t, err)
		assert.Equal(t, naiveSuffixArray(seq), arr.sa, "sequence %q", seq)
	}

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		seq := randomSequence(r, r.IntN(300), 1+r.IntN(AlphabetSize))
		arr, err := NewArray(seq)
		require.NoError(t, err)
		require.Equal(t, naiveSuffixArray(seq), arr.sa, "sequence %q", seq)
	}
}

func TestComputeLCP(t *testing.T) {
	seq := "ABCABC"
	arr, err := NewArray(seq)
	require.NoError(t, err)

	// Sorted suffixes: ABC, ABCABC, BC, BCABC, C, CABC
	assert.Equal(t, []int{3, 0, 4, 1, 5, 2}, arr.sa)
	assert.Equal(t, []int{0, 3, 0, 2, 0, 1}, arr.lcp)
}

func TestLongestRepeat(t *testing.T) {
	tests := []struct {
		seq       string
		repeat    string
		positions []int
	}{
		{"ABCABC", "ABC", []int{0, 3}},
		{"AAAA", "AAA", []int{0, 1}},
		{"AAABBBCCC", "AA", []int{0, 1}},
		{"ABCD", "", []int{}},
		{"", "", []int{}},
	}
	for _, tt := range tests {
		arr, err := NewArray(tt.seq)
		require.NoError(t, err)
		repeat, positions := arr.LongestRepeat()
		assert.Equal(t, tt.repeat, repeat, "sequence %q", tt.seq)
		assert.Equal(t, tt.positions, positions, "sequence %q", tt.seq)
	}
}

func TestArrayInvalidSymbol(t *testing.T) {
	_, err := NewArray("ABCN")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	arr, err := NewArray("ABCD")
	require.NoError(t, err)
	_, err = arr.Search("x")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func BenchmarkNewTrie(b *testing.B) {
	seq := strings.Repeat("ABCD", 500)
	for i := 0; i < b.N; i++ {
		_, _ = NewTrie(seq)
	}
}

func BenchmarkSAIS(b *testing.B) {
	seq := strings.Repeat("ACDB", 1000000)
	encoded := encode(seq)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sais(encoded, AlphabetSize+1)
	}
}

func BenchmarkTrieSearch(b *testing.B) {
	trie, _ := NewTrie(strings.Repeat("ABCD", 500))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trie.Search("CDABCDAB")
	}
}
