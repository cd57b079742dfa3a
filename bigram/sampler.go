package bigram

import "math/rand"

// Sampler draws random words from a counted transition matrix. Each
// next character is picked with probability proportional to its
// transition count out of the current one, starting from the boundary
// and stopping when the walk returns to it.
//
// A Sampler is not safe for concurrent use; its random source is not
// synchronized.
type Sampler struct {
	matrix *Matrix
	rnd    *rand.Rand
}

// NewSampler creates a Sampler over m seeded with seed, so sampling is
// reproducible for a fixed matrix and seed.
func NewSampler(m *Matrix, seed int64) *Sampler {
	return &Sampler{
		matrix: m,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Word samples one word of at most maxLen characters. The walk also
// stops early on a symbol with no outgoing transitions, which can occur
// only in merged or imported matrices.
//
// If maxLen <= 0, a default of 64 is used.
func (s *Sampler) Word(maxLen int) string {
	if maxLen <= 0 {
		maxLen = 64
	}

	current, _ := s.matrix.alphabet.Index(Boundary)
	word := make([]rune, 0, 16)

	for len(word) < maxLen {
		next, ok := s.pick(current)
		if !ok {
			break
		}
		if s.matrix.alphabet.Symbol(next) == Boundary {
			break
		}
		word = append(word, s.matrix.alphabet.Symbol(next))
		current = next
	}

	return string(word)
}

// pick draws a column from row weighted by its counts.
func (s *Sampler) pick(row int) (int, bool) {
	counts := s.matrix.counts[row]

	sum := 0
	for _, count := range counts {
		sum += count
	}
	if sum == 0 {
		return 0, false
	}

	n := s.rnd.Intn(sum)
	for col, count := range counts {
		n -= count
		if n < 0 {
			return col, true
		}
	}

	return 0, false
}
