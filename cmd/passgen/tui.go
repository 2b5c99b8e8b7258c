package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/random"
	"github.com/verte-zerg/passgen/internal/tui"
)

var tuiPassphrase bool

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive generator",
		Args:  cobra.NoArgs,
		RunE:  runTUICmd,
	}
	bindPasswordFlags(cmd)
	bindPassphraseFlags(cmd)
	cmd.Flags().BoolVarP(&tuiPassphrase, "passphrase", "p", false, "start in passphrase mode")
	return cmd
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyPasswordConfig(cmd, fileCfg.Password)
	applyPassphraseConfig(cmd, fileCfg.Passphrase)
	pw := passwordOptions()
	if err := validateOptions(pw); err != nil {
		return err
	}
	pp := passphraseOptions()
	if err := validateOptions(pp); err != nil {
		return err
	}
	words, err := loadWordList(pp.WordList)
	if err != nil {
		return err
	}

	var recorder tui.Recorder
	if historyEnabled(cmd, fileCfg.History) {
		st, err := openHistory(fileCfg.History)
		if err != nil {
			return err
		}
		defer closeHistory(st)
		recorder = &storeRecorder{st: st, batch: uuid.NewString()}
	}

	mode := tui.ModePassword
	if tuiPassphrase {
		mode = tui.ModePassphrase
	}
	gen := generator.NewWithSource(random.NewCrypto(), words)
	m := tui.NewModel(gen, mode, pw, generator.PassphraseConstraintsFromOptions(pp), recorder)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
