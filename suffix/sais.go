package suffix

// encode maps seq onto 1..AlphabetSize and appends the sentinel 0, so that
// 0 stays reserved for the end of the string.
func encode(seq string) []int {
	encoded := make([]int, len(seq)+1)
	for i := 0; i < len(seq); i++ {
		idx, _ := symbolIndex(seq[i])
		encoded[i] = idx + 1
	}
	return encoded
}

// sais constructs the suffix array of s using the SA-IS algorithm.
// s must end with a unique smallest symbol 0; k is the alphabet size
// including that sentinel.
func sais(s []int, k int) []int {
	n := len(s)
	sa := make([]int, n)
	if n == 0 {
		return sa
	}
	if n == 1 {
		return sa
	}

	// Step 1: classify suffixes into S-type (true) and L-type (false).
	t := make([]bool, n)
	t[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			t[i] = true
		case s[i] == s[i+1]:
			t[i] = t[i+1]
		}
	}

	// Step 2: collect LMS positions and induce-sort them.
	var lms []int
	for i := 1; i < n; i++ {
		if isLMS(t, i) {
			lms = append(lms, i)
		}
	}
	induceSort(s, sa, t, k, lms)

	// Step 3: name the LMS substrings in their sorted order. The sentinel
	// always sorts first and keeps the unique name 0.
	sorted := make([]int, 0, len(lms))
	for _, pos := range sa {
		if isLMS(t, pos) {
			sorted = append(sorted, pos)
		}
	}
	names := make([]int, n)
	name := 0
	for i := 1; i < len(sorted); i++ {
		if !lmsSubstringEqual(s, t, sorted[i-1], sorted[i]) {
			name++
		}
		names[sorted[i]] = name
	}

	// Step 4: solve the reduced problem, recursing only when names repeat.
	reduced := make([]int, len(lms))
	for i, pos := range lms {
		reduced[i] = names[pos]
	}
	var order []int
	if name+1 < len(reduced) {
		order = sais(reduced, name+1)
	} else {
		order = make([]int, len(reduced))
		for i, nm := range reduced {
			order[nm] = i
		}
	}

	// Step 5: map the order back onto LMS positions and induce again.
	ordered := make([]int, len(order))
	for i, idx := range order {
		ordered[i] = lms[idx]
	}
	induceSort(s, sa, t, k, ordered)
	return sa
}

func isLMS(t []bool, i int) bool {
	return i > 0 && t[i] && !t[i-1]
}

// induceSort places the LMS positions at the ends of their buckets and
// induces L-type then S-type suffixes from them.
func induceSort(s, sa []int, t []bool, k int, lms []int) {
	for i := range sa {
		sa[i] = -1
	}
	sizes := bucketSizes(s, k)

	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketHeads(sizes)
	for i := 0; i < len(sa); i++ {
		pos := sa[i]
		if pos > 0 && !t[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketTails(sizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && t[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
}

// bucketSizes returns a slice with the counts for each symbol.
func bucketSizes(s []int, k int) []int {
	bs := make([]int, k)
	for _, c := range s {
		bs[c]++
	}
	return bs
}

// bucketHeads returns the starting index for each bucket.
func bucketHeads(bs []int) []int {
	heads := make([]int, len(bs))
	sum := 0
	for i, v := range bs {
		heads[i] = sum
		sum += v
	}
	return heads
}

// bucketTails returns the ending index for each bucket.
func bucketTails(bs []int) []int {
	tails := make([]int, len(bs))
	sum := 0
	for i, v := range bs {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

// lmsSubstringEqual compares the LMS substrings starting at a and b,
// including the closing LMS symbol.
func lmsSubstringEqual(s []int, t []bool, a, b int) bool {
	n := len(s)
	if a == n-1 || b == n-1 {
		return a == b
	}
	for k := 0; ; k++ {
		if s[a+k] != s[b+k] || t[a+k] != t[b+k] {
			return false
		}
		if k > 0 {
			aEnd, bEnd := isLMS(t, a+k), isLMS(t, b+k)
			if aEnd || bEnd {
				return aEnd && bEnd
			}
		}
	}
}
