// Package stats summarizes assessment history.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/strength"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a set of history records.
type Summary struct {
	Count       int
	Batches     int
	AvgEntropy  float64
	MinEntropy  float64
	MaxEntropy  float64
	AvgScore    float64
	AvgLength   float64
	First, Last time.Time
}

// Summarize computes aggregate metrics. Records are expected oldest first.
func Summarize(records []model.AssessmentRecord) Summary {
	var s Summary
	if len(records) == 0 {
		return s
	}
	batches := map[string]struct{}{}
	s.MinEntropy = math.Inf(1)
	var entropy, score, length float64
	for _, r := range records {
		batches[r.BatchID] = struct{}{}
		entropy += r.EntropyBits
		score += float64(r.Score)
		length += float64(r.Length)
		s.MinEntropy = math.Min(s.MinEntropy, r.EntropyBits)
		s.MaxEntropy = math.Max(s.MaxEntropy, r.EntropyBits)
	}
	n := float64(len(records))
	s.Count = len(records)
	s.Batches = len(batches)
	s.AvgEntropy = entropy / n
	s.AvgScore = score / n
	s.AvgLength = length / n
	s.First = records[0].CreatedAt
	s.Last = records[len(records)-1].CreatedAt
	return s
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the headline numbers. now anchors relative times.
func RenderSummary(w io.Writer, records []model.AssessmentRecord, now time.Time) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No history found.")
		return err
	}
	s := Summarize(records)
	lines := []string{
		"Summary",
		fmt.Sprintf("Secrets: %s in %s batches", humanize.Comma(int64(s.Count)), humanize.Comma(int64(s.Batches))),
		fmt.Sprintf("Avg entropy: %.1f bits (min %.1f, max %.1f)", s.AvgEntropy, s.MinEntropy, s.MaxEntropy),
		fmt.Sprintf("Avg score: %.1f", s.AvgScore),
		fmt.Sprintf("Avg length: %.1f", s.AvgLength),
		fmt.Sprintf("First: %s", humanize.RelTime(s.First, now, "ago", "from now")),
		fmt.Sprintf("Last: %s", humanize.RelTime(s.Last, now, "ago", "from now")),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderLevelTable prints counts and averages per strength level, strongest
// first. Levels with no records are omitted, as are unrecognized labels.
func RenderLevelTable(w io.Writer, records []model.AssessmentRecord) error {
	if len(records) == 0 {
		return nil
	}
	type bucket struct {
		count   int
		entropy float64
		length  int
	}
	buckets := map[strength.Level]*bucket{}
	for _, r := range records {
		level, ok := strength.ParseLevel(r.Level)
		if !ok {
			continue
		}
		b, ok := buckets[level]
		if !ok {
			b = &bucket{}
			buckets[level] = b
		}
		b.count++
		b.entropy += r.EntropyBits
		b.length += r.Length
	}

	if _, err := fmt.Fprintln(w, "By Level"); err != nil {
		return err
	}
	headers := []string{"Level", "Count", "Share", "Avg Entropy", "Avg Length"}
	var rows [][]string
	for l := strength.VeryStrong; l >= strength.VeryWeak; l-- {
		b, ok := buckets[l]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			l.String(),
			humanize.Comma(int64(b.count)),
			fmt.Sprintf("%.1f%%", float64(b.count)/float64(len(records))*100),
			fmt.Sprintf("%.1f", b.entropy/float64(b.count)),
			fmt.Sprintf("%.1f", float64(b.length)/float64(b.count)),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderEntropyTrend prints a smoothed sparkline of entropy over time.
func RenderEntropyTrend(w io.Writer, records []model.AssessmentRecord, window, width int) error {
	if len(records) < 2 {
		return nil
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.EntropyBits
	}
	values = MovingAverage(values, window)
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	if _, err := fmt.Fprintf(w, "Entropy trend (window %d)\n", max(window, 1)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "[%s]\n", Sparkline(values))
	return err
}
