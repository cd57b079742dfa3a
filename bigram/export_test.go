package bigram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ExportImport(t *testing.T) {
	words := []string{"emma", "olivia", "ava"}

	table, err := CountSparse(words)
	require.NoError(t, err)

	data, err := table.Export()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	imported, err := ImportTable(data)
	require.NoError(t, err)

	assert.Equal(t, table, imported)
}

func TestMatrix_ExportImport(t *testing.T) {
	words := []string{"emma", "olivia", "ava"}

	alphabet, err := DeriveAlphabet(words)
	require.NoError(t, err)

	matrix, err := CountDense(words, alphabet)
	require.NoError(t, err)

	data, err := matrix.Export()
	require.NoError(t, err)

	imported, err := ImportMatrix(data)
	require.NoError(t, err)

	assert.Equal(t, alphabet.Symbols(), imported.Alphabet().Symbols())
	assert.Equal(t, matrix.Total(), imported.Total())
	for i := range alphabet.Symbols() {
		assert.Equal(t, matrix.Row(i), imported.Row(i))
	}
}

func TestImportTable_Corrupt(t *testing.T) {
	_, err := ImportTable([]byte("not gob data"))
	assert.Error(t, err)
}

func TestImportMatrix_Corrupt(t *testing.T) {
	_, err := ImportMatrix([]byte{0x01, 0x02})
	assert.Error(t, err)
}
