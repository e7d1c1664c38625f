package suffix

import (
	"errors"
	"fmt"
)

// AlphabetSize is the number of distinct symbols an indexed sequence may hold.
const AlphabetSize = 4

// firstSymbol is the symbol mapped to index 0; the rest follow contiguously.
const firstSymbol = 'A'

var (
	// ErrInvalidSymbol is returned when a sequence or query holds a byte outside A-D.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrEmptyMotif is returned by Find when the prefix or suffix motif is empty.
	ErrEmptyMotif = errors.New("empty motif")
	// ErrTooLong is returned when a sequence is too long for the trie arena.
	ErrTooLong = errors.New("sequence too long")
)

// symbolIndex converts an alphabet symbol to its child slot (0-3).
func symbolIndex(c byte) (int, bool) {
	idx := int(c) - firstSymbol
	if idx < 0 || idx >= AlphabetSize {
		return 0, false
	}
	return idx, true
}

// Validate checks that every byte of seq belongs to the alphabet.
func Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		if _, ok := symbolIndex(seq[i]); !ok {
			return fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, seq[i], i)
		}
	}
	return nil
}
