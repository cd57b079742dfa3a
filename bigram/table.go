package bigram

// Table is the sparse bigram representation: it maps each observed pair
// to its count and never holds explicit zero entries.
type Table map[Pair]int

// CountSparse tallies the bigram frequencies of words into a fresh
// Table. For a corpus of W words totaling C characters, the table's
// Total is always C+W.
//
// Returns ErrEmptyCorpus for a zero-word input.
func CountSparse(words []string) (Table, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}

	table := make(Table)
	for _, word := range words {
		for _, pair := range Pairs(word) {
			table[pair]++
		}
	}

	return table, nil
}

// Total returns the sum of all counts in the table.
func (t Table) Total() int {
	sum := 0
	for _, count := range t {
		sum += count
	}
	return sum
}

// Merge adds the counts of other into t, key-wise. Used to combine
// tables counted over shards of a corpus; addition is commutative, so
// the merged result does not depend on shard order.
func (t Table) Merge(other Table) {
	for pair, count := range other {
		t[pair] += count
	}
}
