package bigram

import (
	"bytes"
	"encoding/gob"
)

// pairRecord is the gob form of one sparse table entry.
type pairRecord struct {
	Prev  rune
	Next  rune
	Count int
}

// matrixData is the gob form of a dense matrix: the count grid plus the
// ordered symbol sequence needed to interpret it.
type matrixData struct {
	Symbols []rune
	Counts  [][]int
}

// Export serializes the table as a list of (prev, next, count) records
// using gob encoding.
func (t Table) Export() ([]byte, error) {
	records := make([]pairRecord, 0, len(t))
	for pair, count := range t {
		records = append(records, pairRecord{
			Prev:  pair.Prev,
			Next:  pair.Next,
			Count: count,
		})
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ImportTable deserializes a table produced by Export.
func ImportTable(data []byte) (Table, error) {
	var records []pairRecord
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&records); err != nil {
		return nil, err
	}

	table := make(Table, len(records))
	for _, rec := range records {
		table[Pair{Prev: rec.Prev, Next: rec.Next}] = rec.Count
	}

	return table, nil
}

// Export serializes the matrix and its alphabet using gob encoding.
func (m *Matrix) Export() ([]byte, error) {
	data := matrixData{
		Symbols: m.alphabet.Symbols(),
		Counts:  m.counts,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ImportMatrix deserializes a matrix produced by Export, rebuilding the
// symbol→index mapping from the stored symbol order.
func ImportMatrix(data []byte) (*Matrix, error) {
	var md matrixData
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&md); err != nil {
		return nil, err
	}

	return &Matrix{
		alphabet: newAlphabet(md.Symbols[1:]),
		counts:   md.Counts,
	}, nil
}
