// Package suffix indexes a sequence over the four-symbol alphabet A-D so that
// substring occurrences can be looked up and motif-bounded substrings can be
// enumerated.
//
// Two engines implement Index:
//
//   - Trie:  an explicit all-suffixes trie. Every node keeps the (start, end)
//     marker of every suffix passing through it, so Search is a walk of the
//     query length. Construction is O(N²) in time and space.
//   - Array: an SA-IS suffix array with Kasai LCP. Linear construction and
//     space; Search is a binary search plus a sort of the matched offsets.
//
// Both are built eagerly by their constructor and never modified afterwards,
// so they may be shared by concurrent readers.
//
// Symbols outside the alphabet are rejected with ErrInvalidSymbol, both at
// construction and at query time. A query that does not occur yields an
// empty result, never an error.
package suffix
