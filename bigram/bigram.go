// Package bigram builds character-pair frequency tables over word corpora.
//
// Every word is bracketed by the Boundary marker, so a word of N
// characters contributes N+1 transitions: one entering from the
// boundary, N-1 internal, one exiting to the boundary. The package
// offers two equivalent representations:
//   - Table: sparse map holding only pairs that occurred
//   - Matrix: dense alphabet×alphabet grid with explicit zeros
//
// All counting operations are pure batch transforms: they hold no state
// between calls and are safe for concurrent use.
package bigram

import "fmt"

// Boundary marks the start and end of a word. It must not occur inside
// any corpus word; DeriveAlphabet reserves index 0 for it.
const Boundary rune = '#'

// Pair is an ordered pair of consecutive symbols. Each symbol is either
// a word character or Boundary.
type Pair struct {
	Prev rune
	Next rune
}

// String returns the two symbols concatenated, e.g. "#a".
func (p Pair) String() string {
	return fmt.Sprintf("%c%c", p.Prev, p.Next)
}

// less orders pairs by Prev, then Next, by code point.
func (p Pair) less(other Pair) bool {
	if p.Prev != other.Prev {
		return p.Prev < other.Prev
	}
	return p.Next < other.Next
}

// Pairs returns the bigram decomposition of a single word, including
// the boundary transitions. An empty word yields the single pair
// (Boundary, Boundary).
func Pairs(word string) []Pair {
	runes := []rune(word)

	symbols := make([]rune, 0, len(runes)+2)
	symbols = append(symbols, Boundary)
	symbols = append(symbols, runes...)
	symbols = append(symbols, Boundary)

	pairs := make([]Pair, 0, len(symbols)-1)
	for i := 0; i < len(symbols)-1; i++ {
		pairs = append(pairs, Pair{Prev: symbols[i], Next: symbols[i+1]})
	}

	return pairs
}
