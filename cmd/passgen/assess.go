package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/logging"
)

func newAssessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assess [secret|-]",
		Short: "Estimate the strength of existing secrets",
		Long: "Estimate the strength of existing secrets. With no argument or \"-\", " +
			"one secret per line is read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: runAssessCmd,
	}
}

func runAssessCmd(cmd *cobra.Command, args []string) error {
	var secrets []string
	if len(args) == 1 && args[0] != "-" {
		logging.Warnf("secrets passed as arguments may be kept in shell history; prefer stdin")
		secrets = []string{args[0]}
	} else {
		var err error
		secrets, err = readSecrets(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}
	if len(secrets) == 0 {
		return fmt.Errorf("no secrets to assess")
	}

	results := make([]result, 0, len(secrets))
	for _, s := range secrets {
		results = append(results, newResult("", s, nil))
	}
	return writeResults(cmd.OutOrStdout(), results, true, outJSON)
}

func readSecrets(r io.Reader) ([]string, error) {
	var secrets []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		secrets = append(secrets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return secrets, nil
}
