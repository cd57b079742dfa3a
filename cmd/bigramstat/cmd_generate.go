package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/bigramkit/bigram"
)

var (
	generateCount int
	generateSeed  int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Sample words from the bigram transition frequencies",
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

		sampler := bigram.NewSampler(matrix, generateSeed)
		for i := 0; i < generateCount; i++ {
			fmt.Println(sampler.Word(0))
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "c", 10, "number of words to sample")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 1, "random seed")
}
