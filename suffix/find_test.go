package suffix

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engines builds every Index implementation over seq.
func engines(t testing.TB, seq string) map[string]Index {
	t.Helper()
	trie, err := NewTrie(seq)
	require.NoError(t, err)
	arr, err := NewArray(seq)
	require.NoError(t, err)
	return map[string]Index{"trie": trie, "array": arr}
}

func randomSequence(r *rand.Rand, n int, symbols int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte(firstSymbol + r.IntN(symbols)))
	}
	return b.String()
}

// naiveSearch scans seq for query at every offset.
func naiveSearch(seq, query string) []int {
	positions := []int{}
	if query == "" {
		return positions
	}
	for i := 0; i+len(query) <= len(seq); i++ {
		if seq[i:i+len(query)] == query {
			positions = append(positions, i)
		}
	}
	return positions
}

// naiveFind enumerates every substring of seq by start, then end.
func naiveFind(seq, prefix, suffix string) []string {
	matches := []string{}
	for i := 0; i < len(seq); i++ {
		for j := i + len(prefix) + len(suffix); j <= len(seq); j++ {
			sub := seq[i:j]
			if strings.HasPrefix(sub, prefix) && strings.HasSuffix(sub, suffix) {
				matches = append(matches, sub)
			}
		}
	}
	return matches
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name   string
		seq    string
		prefix string
		suffix string
		want   []string
	}{
		{"adjacent and extended", "AAABBBCCC", "AAA", "BB", []string{"AAABB", "AAABBB"}},
		{"prefix occurs twice", "ABCABC", "AB", "C", []string{"ABC", "ABCABC", "ABC"}},
		{"single match spans all", "ABCD", "AB", "CD", []string{"ABCD"}},
		{"motifs longer than sequence", "ABCD", "ABC", "CD", []string{}},
		{"prefix absent", "ABCD", "DA", "A", []string{}},
		{"suffix absent", "ABCABC", "A", "D", []string{}},
		{"no overlap with prefix", "ABA", "AB", "BA", []string{}},
		{"repeated symbol", "AAAA", "A", "A", []string{"AA", "AAA", "AAAA", "AA", "AAA", "AA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, idx := range engines(t, tt.seq) {
				got, err := idx.Find(tt.prefix, tt.suffix)
				require.NoError(t, err, name)
				assert.Equal(t, tt.want, got, name)
			}
		})
	}
}

func TestFindMatchesOffsets(t *testing.T) {
	trie, err := NewTrie("AAABBBCCC")
	require.NoError(t, err)

	got, err := trie.FindMatches("AAA", "BB")
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Start: 0, End: 4, Text: "AAABB"},
		{Start: 0, End: 5, Text: "AAABBB"},
	}, got)
}

func TestFindEmptyMotif(t *testing.T) {
	for name, idx := range engines(t, "ABCD") {
		_, err := idx.Find("", "D")
		assert.ErrorIs(t, err, ErrEmptyMotif, name)
		_, err = idx.Find("A", "")
		assert.ErrorIs(t, err, ErrEmptyMotif, name)
	}
}

func TestSearchMatchesNaiveScan(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 40; round++ {
		seq := randomSequence(r, 1+r.IntN(120), 1+r.IntN(AlphabetSize))
		idxs := engines(t, seq)
		for q := 0; q < 30; q++ {
			query := randomSequence(r, r.IntN(6), AlphabetSize)
			want := naiveSearch(seq, query)
			for name, idx := range idxs {
				got, err := idx.Search(query)
				require.NoError(t, err)
				require.Equal(t, want, got, "%s: Search(%q) over %q", name, query, seq)
			}
		}
	}
}

func TestFindMatchesNaiveScan(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for round := 0; round < 40; round++ {
		seq := randomSequence(r, 1+r.IntN(60), 1+r.IntN(AlphabetSize))
		idxs := engines(t, seq)
		for q := 0; q < 20; q++ {
			prefix := randomSequence(r, 1+r.IntN(3), AlphabetSize)
			suffix := randomSequence(r, 1+r.IntN(3), AlphabetSize)
			want := naiveFind(seq, prefix, suffix)
			for name, idx := range idxs {
				got, err := idx.Find(prefix, suffix)
				require.NoError(t, err)
				require.Equal(t, want, got, "%s: Find(%q, %q) over %q", name, prefix, suffix, seq)
				for _, m := range got {
					assert.True(t, strings.HasPrefix(m, prefix))
					assert.True(t, strings.HasSuffix(m, suffix))
					assert.GreaterOrEqual(t, len(m), len(prefix)+len(suffix))
				}
			}
		}
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	for name, idx := range engines(t, "ABCDDCBAABCD") {
		first, _ := idx.Search("BC")
		second, _ := idx.Search("BC")
		assert.Equal(t, first, second, name)

		f1, _ := idx.Find("AB", "CD")
		f2, _ := idx.Find("AB", "CD")
		assert.Equal(t, f1, f2, name)
	}
}
