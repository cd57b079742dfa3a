package bigram

import "fmt"

// Matrix is the dense bigram representation: a square alphabet×alphabet
// count grid with explicit zeros, plus the alphabet that interprets its
// rows and columns.
type Matrix struct {
	alphabet *Alphabet
	counts   [][]int
}

// CountDense tallies the bigram frequencies of words into a zeroed
// |A|×|A| grid indexed by alphabet position. The alphabet must cover
// every character of every word; derive it from the same corpus, or a
// superset of it.
//
// Returns ErrEmptyCorpus for a zero-word input and ErrUnknownSymbol if
// a word contains a character outside the alphabet.
func CountDense(words []string, alphabet *Alphabet) (*Matrix, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}

	n := alphabet.Len()
	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}

	for _, word := range words {
		for _, pair := range Pairs(word) {
			row, ok := alphabet.Index(pair.Prev)
			if !ok {
				return nil, fmt.Errorf("%w: %q in word %q", ErrUnknownSymbol, pair.Prev, word)
			}
			col, ok := alphabet.Index(pair.Next)
			if !ok {
				return nil, fmt.Errorf("%w: %q in word %q", ErrUnknownSymbol, pair.Next, word)
			}
			counts[row][col]++
		}
	}

	return &Matrix{alphabet: alphabet, counts: counts}, nil
}

// Alphabet returns the alphabet the matrix is indexed by.
func (m *Matrix) Alphabet() *Alphabet {
	return m.alphabet
}

// At returns the count of the (prev, next) transition, or zero when
// either symbol is outside the alphabet.
func (m *Matrix) At(prev, next rune) int {
	row, ok := m.alphabet.Index(prev)
	if !ok {
		return 0
	}
	col, ok := m.alphabet.Index(next)
	if !ok {
		return 0
	}
	return m.counts[row][col]
}

// Row returns a copy of the counts out of the symbol at position i.
func (m *Matrix) Row(i int) []int {
	out := make([]int, len(m.counts[i]))
	copy(out, m.counts[i])
	return out
}

// Total returns the sum over all cells.
func (m *Matrix) Total() int {
	sum := 0
	for _, row := range m.counts {
		for _, count := range row {
			sum += count
		}
	}
	return sum
}

// Merge adds other into m, element-wise. Both matrices must be built
// against the same alphabet so their indices line up.
//
// Returns ErrAlphabetMismatch otherwise.
func (m *Matrix) Merge(other *Matrix) error {
	if !m.alphabet.equal(other.alphabet) {
		return ErrAlphabetMismatch
	}

	for i := range m.counts {
		for j := range m.counts[i] {
			m.counts[i][j] += other.counts[i][j]
		}
	}

	return nil
}
