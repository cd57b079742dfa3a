package bigram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSparse(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		expected Table
	}{
		{
			name:  "Two mirrored words",
			words: []string{"ab", "ba"},
			expected: Table{
				{Boundary, 'a'}: 1,
				{'a', 'b'}:      1,
				{'b', Boundary}: 1,
				{Boundary, 'b'}: 1,
				{'b', 'a'}:      1,
				{'a', Boundary}: 1,
			},
		},
		{
			name:  "Repeated letter",
			words: []string{"aa"},
			expected: Table{
				{Boundary, 'a'}: 1,
				{'a', 'a'}:      1,
				{'a', Boundary}: 1,
			},
		},
		{
			name:  "Counts accumulate across words",
			words: []string{"ab", "ab"},
			expected: Table{
				{Boundary, 'a'}: 2,
				{'a', 'b'}:      2,
				{'b', Boundary}: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := CountSparse(tt.words)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, table)
		})
	}

	t.Run("Empty corpus", func(t *testing.T) {
		table, err := CountSparse([]string{})
		assert.ErrorIs(t, err, ErrEmptyCorpus)
		assert.Nil(t, table)
	})
}

func TestCountSparse_TotalInvariant(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"Two words", []string{"ab", "ba"}},
		{"Single word", []string{"aa"}},
		{"Longer corpus", []string{"emma", "olivia", "ava", "isabella", "sophia"}},
		{"Contains empty word", []string{"", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := CountSparse(tt.words)
			require.NoError(t, err)

			chars := 0
			for _, w := range tt.words {
				chars += len([]rune(w))
			}

			assert.Equal(t, chars+len(tt.words), table.Total())
		})
	}
}

func TestCountSparse_Idempotent(t *testing.T) {
	words := []string{"emma", "olivia", "ava"}

	first, err := CountSparse(words)
	require.NoError(t, err)

	second, err := CountSparse(words)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTable_Merge(t *testing.T) {
	t.Run("Sharded count equals whole count", func(t *testing.T) {
		words := []string{"emma", "olivia", "ava", "isabella"}

		whole, err := CountSparse(words)
		require.NoError(t, err)

		left, err := CountSparse(words[:2])
		require.NoError(t, err)

		right, err := CountSparse(words[2:])
		require.NoError(t, err)

		left.Merge(right)
		assert.Equal(t, whole, left)
	})

	t.Run("Disjoint keys union", func(t *testing.T) {
		a := Table{{'a', 'b'}: 1}
		b := Table{{'b', 'c'}: 2}

		a.Merge(b)
		assert.Equal(t, Table{{'a', 'b'}: 1, {'b', 'c'}: 2}, a)
	})
}
