package suffix

import (
	"slices"
	"strings"
)

var _ Index = (*Array)(nil)

// Array is a suffix array over a fixed sequence, built with SA-IS in linear
// time. It answers the same queries as Trie in O(N) space; Search pays a
// binary search and a sort of the matching offsets instead.
type Array struct {
	seq string
	sa  []int // suffix start offsets in lexicographic order
	lcp []int // lcp[i] is the common prefix length of sa[i-1] and sa[i]
}

// NewArray validates seq and builds its suffix and LCP arrays.
func NewArray(seq string) (*Array, error) {
	if err := Validate(seq); err != nil {
		return nil, err
	}
	// The sentinel suffix always sorts first; drop it.
	sa := sais(encode(seq), AlphabetSize+1)[1:]
	return &Array{
		seq: seq,
		sa:  sa,
		lcp: computeLCP(seq, sa),
	}, nil
}

// Len returns the length of the indexed sequence.
func (a *Array) Len() int { return len(a.seq) }

// Search returns every offset at which query occurs, in ascending order.
// As with Trie, an empty query has no occurrences.
func (a *Array) Search(query string) ([]int, error) {
	if err := Validate(query); err != nil {
		return nil, err
	}
	if query == "" {
		return []int{}, nil
	}
	lo, hi := a.lowerBound(query), a.upperBound(query)
	positions := append([]int{}, a.sa[lo:hi]...)
	slices.Sort(positions)
	return positions, nil
}

// Find returns every substring that starts with prefix and ends with suffix.
func (a *Array) Find(prefix, suffix string) ([]string, error) {
	matches, err := a.FindMatches(prefix, suffix)
	if err != nil {
		return nil, err
	}
	return matchTexts(matches), nil
}

// FindMatches is Find with the offsets of every match.
func (a *Array) FindMatches(prefix, suffix string) ([]Match, error) {
	return findMatches(a, a.seq, prefix, suffix)
}

// LongestRepeat returns the longest substring occurring at least twice and
// its offsets in ascending order. It returns "" and no offsets if no symbol
// repeats.
func (a *Array) LongestRepeat() (string, []int) {
	best, at := 0, -1
	for i, h := range a.lcp {
		if h > best {
			best, at = h, i
		}
	}
	if at < 0 {
		return "", []int{}
	}
	start := a.sa[at]
	repeat := a.seq[start : start+best]
	positions, _ := a.Search(repeat)
	return repeat, positions
}

// lowerBound finds the first suffix that is not less than query.
func (a *Array) lowerBound(query string) int {
	lo, hi := 0, len(a.sa)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a.compareSuffix(a.sa[mid], query) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound finds the first suffix that neither has query as a prefix nor
// sorts before it.
func (a *Array) upperBound(query string) int {
	lo, hi := 0, len(a.sa)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a.compareSuffix(a.sa[mid], query) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// compareSuffix compares the suffix starting at pos with query, treating a
// suffix that has query as a prefix as equal.
func (a *Array) compareSuffix(pos int, query string) int {
	suffix := a.seq[pos:]
	if strings.HasPrefix(suffix, query) {
		return 0
	}
	return strings.Compare(suffix, query)
}
