package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/passgen/internal/model"
)

var base = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func sampleRecords() []model.AssessmentRecord {
	return []model.AssessmentRecord{
		{BatchID: "a", CreatedAt: base, Mode: "password", Length: 16, EntropyBits: 100, Score: 100, Level: "very strong"},
		{BatchID: "a", CreatedAt: base.Add(time.Hour), Mode: "password", Length: 8, EntropyBits: 40, Score: 50, Level: "moderate"},
		{BatchID: "b", CreatedAt: base.Add(2 * time.Hour), Mode: "passphrase", Length: 24, EntropyBits: 60, Score: 60, Level: "strong"},
		{BatchID: "c", CreatedAt: base.Add(3 * time.Hour), Mode: "password", Length: 12, EntropyBits: 80, Score: 90, Level: "very strong"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())
	if s.Count != 4 || s.Batches != 3 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.AvgEntropy != 70 || s.MinEntropy != 40 || s.MaxEntropy != 100 {
		t.Fatalf("unexpected entropy: %+v", s)
	}
	if s.AvgScore != 75 || s.AvgLength != 15 {
		t.Fatalf("unexpected averages: %+v", s)
	}
	if !s.First.Equal(base) || !s.Last.Equal(base.Add(3*time.Hour)) {
		t.Fatalf("unexpected span: %v..%v", s.First, s.Last)
	}
	if empty := Summarize(nil); empty.Count != 0 {
		t.Fatalf("expected zero summary")
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	in := []float64{1, 2}
	out := MovingAverage(in, 1)
	out[0] = 9
	if in[0] != 1 {
		t.Fatalf("MovingAverage must not alias its input")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, sampleRecords(), base.Add(5*time.Hour)); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Secrets: 4 in 3 batches", "Avg entropy: 70.0 bits", "First: 5 hours ago", "Last: 2 hours ago"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderSummary(&buf, nil, base); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No history found.") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}
}

func TestRenderLevelTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLevelTable(&buf, sampleRecords()); err != nil {
		t.Fatalf("RenderLevelTable failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title, header and 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "very strong") || !strings.HasPrefix(lines[3], "strong") || !strings.HasPrefix(lines[4], "moderate") {
		t.Fatalf("expected strongest first:\n%s", buf.String())
	}
	if !strings.Contains(lines[2], "50.0%") || !strings.Contains(lines[2], "90.0") {
		t.Fatalf("unexpected very strong row %q", lines[2])
	}
}

func TestRenderLevelTableSkipsUnknownLevels(t *testing.T) {
	records := []model.AssessmentRecord{
		{Level: "weak", EntropyBits: 20, Length: 6},
		{Level: "legendary", EntropyBits: 500, Length: 80},
	}
	var buf bytes.Buffer
	if err := RenderLevelTable(&buf, records); err != nil {
		t.Fatalf("RenderLevelTable failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[2], "weak") {
		t.Fatalf("expected a single weak row:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "legendary") {
		t.Fatalf("unknown level rendered:\n%s", buf.String())
	}
}

func TestRenderEntropyTrend(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderEntropyTrend(&buf, sampleRecords(), 1, 3); err != nil {
		t.Fatalf("RenderEntropyTrend failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[1] != "[ +@]" {
		t.Fatalf("unexpected trend output %q", buf.String())
	}
	buf.Reset()
	if err := RenderEntropyTrend(&buf, sampleRecords()[:1], 1, 0); err != nil || buf.Len() != 0 {
		t.Fatalf("expected no trend for a single record")
	}
}
