package bigram

import "sort"

// Alphabet is the symbol set of a corpus with a fixed total order:
// Boundary at index 0, then the distinct word characters in code-point
// order. It carries both the symbol→index and index→symbol mappings
// needed to interpret dense matrix cells. Immutable once built.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// DeriveAlphabet collects the distinct characters of all words and
// returns the alphabet with Boundary reserved at index 0. The words
// must not contain Boundary itself.
//
// Returns ErrEmptyCorpus for a zero-word input.
func DeriveAlphabet(words []string) (*Alphabet, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}

	seen := make(map[rune]struct{})
	for _, word := range words {
		for _, r := range word {
			seen[r] = struct{}{}
		}
	}

	letters := make([]rune, 0, len(seen))
	for r := range seen {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	return newAlphabet(letters), nil
}

func newAlphabet(letters []rune) *Alphabet {
	symbols := make([]rune, 0, len(letters)+1)
	symbols = append(symbols, Boundary)
	symbols = append(symbols, letters...)

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		index[r] = i
	}

	return &Alphabet{symbols: symbols, index: index}
}

// Len returns the number of symbols, including the boundary.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the full symbol sequence, boundary first.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Letters returns a copy of the symbol sequence without the boundary,
// in code-point order.
func (a *Alphabet) Letters() []rune {
	out := make([]rune, len(a.symbols)-1)
	copy(out, a.symbols[1:])
	return out
}

// Index returns the position of r in the alphabet order.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Symbol returns the symbol at position i. It panics if i is out of
// range, matching slice semantics.
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// equal reports whether both alphabets hold the same symbol sequence.
func (a *Alphabet) equal(other *Alphabet) bool {
	if len(a.symbols) != len(other.symbols) {
		return false
	}
	for i, r := range a.symbols {
		if other.symbols[i] != r {
			return false
		}
	}
	return true
}
