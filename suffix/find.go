package suffix

// Index is implemented by both suffix engines.
type Index interface {
	Len() int
	Search(query string) ([]int, error)
	Find(prefix, suffix string) ([]string, error)
	FindMatches(prefix, suffix string) ([]Match, error)
}

// Match is one substring bounded by a prefix and a suffix motif.
// Start and End are inclusive offsets into the indexed sequence.
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// findMatches takes the prefix occurrences from idx and scans forward from
// each of them for suffix. The suffix region may touch the prefix region but
// never overlaps it. Results are ordered by prefix offset, then by the start
// of the suffix region.
func findMatches(idx Index, seq, prefix, suffix string) ([]Match, error) {
	if prefix == "" || suffix == "" {
		return nil, ErrEmptyMotif
	}
	if err := Validate(suffix); err != nil {
		return nil, err
	}
	starts, err := idx.Search(prefix)
	if err != nil {
		return nil, err
	}

	matches := []Match{}
	n, plen, slen := len(seq), len(prefix), len(suffix)
	for _, s := range starts {
		for e := s + plen; e <= n-slen; e++ {
			if !hasMotifAt(seq, e, suffix) {
				continue
			}
			end := e + slen - 1
			matches = append(matches, Match{Start: s, End: end, Text: seq[s : end+1]})
		}
	}
	return matches, nil
}

// hasMotifAt compares seq[at:] with motif symbol by symbol, stopping at the
// first mismatch.
func hasMotifAt(seq string, at int, motif string) bool {
	for k := 0; k < len(motif); k++ {
		if seq[at+k] != motif[k] {
			return false
		}
	}
	return true
}

func matchTexts(matches []Match) []string {
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Text
	}
	return texts
}
