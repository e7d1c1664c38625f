package suffix

// Occurrence marks one suffix passing through a trie node.
// Start is where the suffix begins in the source sequence and End is the
// offset of the last symbol consumed to reach the node along that suffix.
type Occurrence struct {
	Start int
	End   int
}

// node represents a node in the suffix trie.
// Children are arena indices; 0 means the branch is unexplored since the
// root (index 0) is never anybody's child.
type node struct {
	children    [AlphabetSize]int32
	occurrences []Occurrence
	terminal    bool
}
