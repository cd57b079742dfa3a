// bigramstat prints bigram statistics over a word list: one word per
// line, as produced by the corpus package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/bigramkit/corpus"
)

var inputPath string

var rootCmd = &cobra.Command{
	Use:           "bigramstat",
	Short:         "Character bigram statistics over a word list",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "path to the word list (one word per line)")

	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(generateCmd)
}

func loadWords() ([]string, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("missing required flag: --input")
	}

	return corpus.ReadFile(inputPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
