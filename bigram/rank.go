package bigram

import "sort"

// Entry is a ranked bigram with its count.
type Entry struct {
	Pair  Pair
	Count int
}

// Top returns the n most frequent pairs, sorted by count descending.
// Ties are broken by ascending pair order so the ranking is fully
// deterministic. If n exceeds the number of distinct pairs, all of them
// are returned; n <= 0 yields nil.
func (t Table) Top(n int) []Entry {
	if n <= 0 {
		return nil
	}

	entries := make([]Entry, 0, len(t))
	for pair, count := range t {
		entries = append(entries, Entry{Pair: pair, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Pair.less(entries[j].Pair)
		}
		return entries[i].Count > entries[j].Count
	})

	if n > len(entries) {
		n = len(entries)
	}

	return entries[:n]
}
