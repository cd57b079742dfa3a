package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/bigramkit/bigram"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the dense bigram count matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := loadWords()
		if err != nil {
			return err
		}

		alphabet, err := bigram.DeriveAlphabet(words)
		if err != nil {
			return err
		}

		matrix, err := bigram.CountDense(words, alphabet)
		if err != nil {
			return err
		}

		printMatrix(matrix)

		return nil
	},
}

func printMatrix(m *bigram.Matrix) {
	symbols := m.Alphabet().Symbols()

	header := make([]string, 0, len(symbols)+1)
	header = append(header, "")
	for _, s := range symbols {
		header = append(header, string(s))
	}
	fmt.Println(strings.Join(header, "\t"))

	for i, prev := range symbols {
		row := make([]string, 0, len(symbols)+1)
		row = append(row, string(prev))
		for _, count := range m.Row(i) {
			row = append(row, fmt.Sprintf("%d", count))
		}
		fmt.Println(strings.Join(row, "\t"))
	}
}
