package suffix

import "fmt"

// MaxTrieLength is the longest sequence NewTrie accepts. An all-suffixes trie
// over N symbols holds at most N(N+1)/2 nodes, which must fit int32 indices.
const MaxTrieLength = 1<<16 - 1

var _ Index = (*Trie)(nil)

// Trie is an explicit all-suffixes trie over a fixed sequence.
// It is built once by NewTrie and is read-only afterwards, so a single
// Trie may be queried from many goroutines.
type Trie struct {
	seq   string
	nodes []node // nodes[0] is the root
}

// Stats describes the shape of a built trie.
type Stats struct {
	Length      int `json:"length"`
	Nodes       int `json:"nodes"`
	Terminals   int `json:"terminals"`
	Occurrences int `json:"occurrences"`
}

// NewTrie validates seq and inserts every one of its suffixes.
func NewTrie(seq string) (*Trie, error) {
	if len(seq) > MaxTrieLength {
		return nil, fmt.Errorf("%w: %d symbols, max %d", ErrTooLong, len(seq), MaxTrieLength)
	}
	if err := Validate(seq); err != nil {
		return nil, err
	}
	t := &Trie{
		seq:   seq,
		nodes: make([]node, 1, len(seq)+1),
	}
	t.insertSuffixes()
	return t, nil
}

// insertSuffixes walks every suffix seq[i:] from the root, creating missing
// children and recording (i, j) on each node visited. Quadratic in time and
// space: there is no suffix-link compression.
func (t *Trie) insertSuffixes() {
	n := len(t.seq)
	for i := 0; i < n; i++ {
		cur := int32(0)
		for j := i; j < n; j++ {
			idx, _ := symbolIndex(t.seq[j])
			next := t.nodes[cur].children[idx]
			if next == 0 {
				next = int32(len(t.nodes))
				t.nodes = append(t.nodes, node{})
				t.nodes[cur].children[idx] = next
			}
			cur = next
			t.nodes[cur].occurrences = append(t.nodes[cur].occurrences, Occurrence{Start: i, End: j})
		}
		t.nodes[cur].terminal = true
	}
}

// walk follows query from the root. It reports false if some symbol has no
// child, and an error if any symbol of query is outside the alphabet.
func (t *Trie) walk(query string) (*node, bool, error) {
	if err := Validate(query); err != nil {
		return nil, false, err
	}
	cur := &t.nodes[0]
	for i := 0; i < len(query); i++ {
		next := cur.children[query[i]-firstSymbol]
		if next == 0 {
			return nil, false, nil
		}
		cur = &t.nodes[next]
	}
	return cur, true, nil
}

// Len returns the length of the indexed sequence.
func (t *Trie) Len() int { return len(t.seq) }

// Search returns every offset at which query occurs, in ascending order.
// An empty query lands on the root, which holds no occurrences, so it
// yields an empty result rather than every offset.
func (t *Trie) Search(query string) ([]int, error) {
	n, ok, err := t.walk(query)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []int{}, nil
	}
	positions := make([]int, len(n.occurrences))
	for i, occ := range n.occurrences {
		positions[i] = occ.Start
	}
	return positions, nil
}

// Occurrences returns the (start, end) markers stored on the node query lands on.
func (t *Trie) Occurrences(query string) ([]Occurrence, error) {
	n, ok, err := t.walk(query)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Occurrence{}, nil
	}
	return append([]Occurrence{}, n.occurrences...), nil
}

// Count returns how many times query occurs.
func (t *Trie) Count(query string) (int, error) {
	n, ok, err := t.walk(query)
	if err != nil || !ok {
		return 0, err
	}
	return len(n.occurrences), nil
}

// IsSuffix reports whether query is a suffix of the indexed sequence.
func (t *Trie) IsSuffix(query string) (bool, error) {
	n, ok, err := t.walk(query)
	if err != nil || !ok {
		return false, err
	}
	return n.terminal, nil
}

// Find returns every substring that starts with prefix and ends with suffix.
func (t *Trie) Find(prefix, suffix string) ([]string, error) {
	matches, err := t.FindMatches(prefix, suffix)
	if err != nil {
		return nil, err
	}
	return matchTexts(matches), nil
}

// FindMatches is Find with the offsets of every match.
func (t *Trie) FindMatches(prefix, suffix string) ([]Match, error) {
	return findMatches(t, t.seq, prefix, suffix)
}

// Stats counts nodes, terminal nodes and occurrence markers.
func (t *Trie) Stats() Stats {
	st := Stats{Length: len(t.seq), Nodes: len(t.nodes)}
	for i := range t.nodes {
		if t.nodes[i].terminal {
			st.Terminals++
		}
		st.Occurrences += len(t.nodes[i].occurrences)
	}
	return st
}
