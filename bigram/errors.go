package bigram

import "errors"

var (
	// ErrEmptyCorpus is returned when alphabet derivation or counting
	// is attempted over zero words. A zero-size alphabet leaves the
	// dense representation with undefined dimensions, so the condition
	// is reported instead of producing an empty table.
	ErrEmptyCorpus = errors.New("bigram: empty corpus")

	// ErrUnknownSymbol is returned when dense counting meets a
	// character absent from the supplied alphabet. It signals caller
	// misuse: the alphabet must be derived from the corpus being
	// counted, or be a superset of it.
	ErrUnknownSymbol = errors.New("bigram: symbol not in alphabet")

	// ErrAlphabetMismatch is returned when merging matrices built
	// against different alphabets.
	ErrAlphabetMismatch = errors.New("bigram: alphabet mismatch")
)
