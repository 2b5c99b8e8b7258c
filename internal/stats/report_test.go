package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	if _, err := st.InsertAssessments(ctx, sampleRecords()); err != nil {
		t.Fatalf("insert assessments: %v", err)
	}

	report, err := BuildReport(ctx, st, model.HistoryFilter{Mode: "password", Last: 2}, 2)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(report.Records))
	}
	if report.Records[0].Length != 8 || report.Records[1].Length != 12 {
		t.Fatalf("unexpected records: %+v", report.Records)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, base.Add(24*time.Hour), 40); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Summary", "By Level", "Entropy trend (window 2)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report:\n%s", want, out)
		}
	}
}
