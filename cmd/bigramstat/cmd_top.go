package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/bigramkit/bigram"
)

var topN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the most frequent bigrams",
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := loadWords()
		if err != nil {
			return err
		}

		table, err := bigram.CountSparse(words)
		if err != nil {
			return err
		}

		for _, entry := range table.Top(topN) {
			fmt.Printf("%s\t%d\n", entry.Pair, entry.Count)
		}

		return nil
	},
}

func init() {
	topCmd.Flags().IntVarP(&topN, "count", "n", 10, "number of bigrams to print")
}
