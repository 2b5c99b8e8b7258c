package stats

import (
	"context"
	"io"
	"time"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/store"
)

// Report holds the records behind a history report.
type Report struct {
	Records []model.AssessmentRecord
	Window  int
}

// BuildReport loads history matching filter.
func BuildReport(ctx context.Context, st *store.Store, filter model.HistoryFilter, window int) (Report, error) {
	records, err := st.ListAssessments(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	return Report{Records: records, Window: window}, nil
}

// Render writes the summary, the per-level table and the entropy trend.
func (r Report) Render(w io.Writer, now time.Time, width int) error {
	if err := RenderSummary(w, r.Records, now); err != nil {
		return err
	}
	if err := RenderLevelTable(w, r.Records); err != nil {
		return err
	}
	return RenderEntropyTrend(w, r.Records, r.Window, width)
}
