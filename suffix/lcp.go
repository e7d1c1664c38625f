package suffix

// computeLCP computes the Longest Common Prefix array using Kasai's algorithm.
// lcp[0] is always 0.
func computeLCP(s string, sa []int) []int {
	n := len(sa)
	lcp := make([]int, n)
	rank := make([]int, n)
	for i, pos := range sa {
		rank[pos] = i
	}
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := sa[rank[i]-1]
		for i+h < len(s) && j+h < len(s) && s[i+h] == s[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
