// Package main provides the CLI entrypoint for passgen.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/logging"
)

const (
	defaultLength      = 12
	defaultWords       = 4
	defaultTarget      = 20
	defaultSeparator   = "-"
	defaultMinNumbers  = 1
	defaultCount       = 1
	defaultTrendWindow = 5
	maxCount           = 1000
)

var (
	outCount  int
	outAssess bool
	outJSON   bool
	record    bool
	debug     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate passwords and passphrases and estimate their strength",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPasswordCmd,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.SetDebug(debug)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&outCount, "count", "n", defaultCount, "number of secrets to generate")
	pf.BoolVarP(&outAssess, "assess", "a", false, "print a strength assessment for each secret")
	pf.BoolVar(&outJSON, "json", false, "print JSON instead of text")
	pf.BoolVar(&record, "record", false, "store assessment metrics in the history database")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")

	bindPasswordFlags(rootCmd)

	rootCmd.AddCommand(newPhraseCmd())
	rootCmd.AddCommand(newAssessCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}
