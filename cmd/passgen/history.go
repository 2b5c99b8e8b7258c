package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/config"
	"github.com/verte-zerg/passgen/internal/logging"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/stats"
	"github.com/verte-zerg/passgen/internal/store"
	"github.com/verte-zerg/passgen/internal/strength"
)

var (
	historyMode   string
	historySince  string
	historyLast   int
	historyWindow int
	historyClear  bool
)

func historyEnabled(cmd *cobra.Command, c config.HistoryConfig) bool {
	if cmd.Flags().Changed("record") {
		return record
	}
	return c.Enabled != nil && *c.Enabled
}

func historyDBPath(c config.HistoryConfig) string {
	if c.DB != nil && *c.DB != "" {
		return *c.DB
	}
	return config.DefaultDBPath()
}

func openHistory(c config.HistoryConfig) (*store.Store, error) {
	st, err := store.Open(historyDBPath(c))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeHistory(st *store.Store) {
	if err := st.Close(); err != nil {
		logging.Warnf("failed to close db: %v", err)
	}
}

func recordResults(cmd *cobra.Command, c config.HistoryConfig, results []result) error {
	if !historyEnabled(cmd, c) || len(results) == 0 {
		return nil
	}
	st, err := openHistory(c)
	if err != nil {
		return err
	}
	defer closeHistory(st)

	batch := uuid.NewString()
	now := time.Now()
	records := make([]model.AssessmentRecord, len(results))
	for i, r := range results {
		records[i] = newRecord(batch, now, r.Mode, len([]rune(r.Value)), r.assessment)
	}
	if _, err := st.InsertAssessments(cmd.Context(), records); err != nil {
		return err
	}
	logging.Debugf("recorded %d assessment(s) in batch %s", len(records), batch)
	return nil
}

func newRecord(batch string, at time.Time, mode string, length int, a strength.Assessment) model.AssessmentRecord {
	return model.AssessmentRecord{
		BatchID:     batch,
		CreatedAt:   at,
		Mode:        mode,
		Length:      length,
		EntropyBits: a.EntropyBits,
		Score:       a.Score,
		Level:       a.Level.String(),
	}
}

// storeRecorder records TUI generations under one batch id.
type storeRecorder struct {
	st    *store.Store
	batch string
}

func (r *storeRecorder) Record(mode string, length int, a strength.Assessment) {
	rec := newRecord(r.batch, time.Now(), mode, length, a)
	if _, err := r.st.InsertAssessments(context.Background(), []model.AssessmentRecord{rec}); err != nil {
		logging.Warnf("failed to record history: %v", err)
	}
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded strength history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyMode, "mode", "", "filter by mode: password or passphrase")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to the last N records")
	cmd.Flags().IntVar(&historyWindow, "window", defaultTrendWindow, "moving average window for the entropy trend")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded history")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	switch historyMode {
	case "", "password", "passphrase":
	default:
		return fmt.Errorf("invalid --mode %q: want password or passphrase", historyMode)
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := openHistory(fileCfg.History)
	if err != nil {
		return err
	}
	defer closeHistory(st)

	out := cmd.OutOrStdout()
	if historyClear {
		n, err := st.Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		_, err = fmt.Fprintf(out, "Deleted %d record(s).\n", n)
		return err
	}

	filter := model.HistoryFilter{Mode: historyMode, Since: sinceTime, Last: historyLast}
	report, err := stats.BuildReport(cmd.Context(), st, filter, historyWindow)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	return report.Render(out, time.Now(), terminalWidth(out, 60)-2)
}
