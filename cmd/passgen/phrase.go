package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/config"
	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/logging"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/random"
	"github.com/verte-zerg/passgen/internal/wordlist"
)

func newPhraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "phrase",
		Aliases: []string{"passphrase"},
		Short:   "Generate passphrases from a word list",
		Args:    cobra.NoArgs,
		RunE:    runPhraseCmd,
	}
	bindPassphraseFlags(cmd)
	return cmd
}

func runPhraseCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyPassphraseConfig(cmd, fileCfg.Passphrase)
	if err := validateCount(); err != nil {
		return err
	}
	opts := passphraseOptions()
	if err := validateOptions(opts); err != nil {
		return err
	}
	words, err := loadWordList(opts.WordList)
	if err != nil {
		return err
	}

	gen := generator.NewWithSource(random.NewCrypto(), words)
	constraints := generator.PassphraseConstraintsFromOptions(opts)
	results := make([]result, 0, outCount)
	for i := 0; i < outCount; i++ {
		value, err := gen.Passphrase(constraints)
		if errors.Is(err, generator.ErrUnreachableTarget) {
			return fmt.Errorf("no word fits in %d characters (shortest word has %d): %w", constraints.TargetLength, words.Shortest(), err)
		}
		if err != nil {
			return fmt.Errorf("failed to generate passphrase: %w", err)
		}
		r := newResult("passphrase", value, nil)
		if constraints.LengthMode == model.CharacterLength {
			acc := generator.TargetAccuracy(value, constraints.TargetLength)
			r.Accuracy = &acc
		}
		results = append(results, r)
	}
	logging.Debugf("generated %d passphrase(s) from %d words", len(results), words.Len())

	if err := recordResults(cmd, fileCfg.History, results); err != nil {
		logging.Warnf("failed to record history: %v", err)
	}
	return writeResults(cmd.OutOrStdout(), results, outAssess, outJSON)
}

func loadWordList(source string) (wordlist.List, error) {
	words, err := wordlist.Resolve(config.ResolveWordList(source))
	if err != nil {
		return wordlist.List{}, fmt.Errorf("failed to load word list: %w", err)
	}
	return words, nil
}
