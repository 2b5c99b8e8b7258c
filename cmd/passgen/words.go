package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/random"
)

var (
	wordsSource string
	wordsList   bool
	wordsSample int
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Describe a passphrase word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsSource, "wordlist", "builtin", `word list: "builtin", "bip39", a name under the config dir, or a path`)
	cmd.Flags().BoolVar(&wordsList, "list", false, "print every word")
	cmd.Flags().IntVar(&wordsSample, "sample", 5, "number of random sample words")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	words, err := loadWordList(wordsSource)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if wordsList {
		for _, w := range words.Words() {
			if _, err := fmt.Fprintln(out, w); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}

	rnd := random.NewCrypto()
	sample := make([]string, 0, max(wordsSample, 0))
	for i := 0; i < wordsSample; i++ {
		sample = append(sample, words.At(rnd.Intn(words.Len())))
	}
	lines := []string{
		fmt.Sprintf("Source: %s", wordsSource),
		fmt.Sprintf("Words: %d", words.Len()),
		fmt.Sprintf("Shortest: %d", words.Shortest()),
	}
	if len(sample) > 0 {
		lines = append(lines, "Sample: "+strings.Join(sample, " "))
	}
	_, err = fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}
