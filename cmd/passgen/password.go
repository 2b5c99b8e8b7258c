package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/logging"
)

func runPasswordCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyPasswordConfig(cmd, fileCfg.Password)
	if err := validateCount(); err != nil {
		return err
	}
	opts := passwordOptions()
	if err := validateOptions(opts); err != nil {
		return err
	}

	gen := generator.New()
	constraints := generator.ConstraintsFromOptions(opts)
	results := make([]result, 0, outCount)
	for i := 0; i < outCount; i++ {
		secret, err := gen.Password(constraints)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		results = append(results, newResult("password", secret.Value, secret.Composition))
	}
	logging.Debugf("generated %d password(s) of length %d", len(results), opts.Length)

	if err := recordResults(cmd, fileCfg.History, results); err != nil {
		logging.Warnf("failed to record history: %v", err)
	}
	return writeResults(cmd.OutOrStdout(), results, outAssess, outJSON)
}
