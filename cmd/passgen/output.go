package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/strength"
	"github.com/verte-zerg/passgen/internal/tui"
)

// result is one generated (or assessed) secret as printed by the CLI.
type result struct {
	Mode        string                       `json:"mode,omitempty"`
	Value       string                       `json:"value"`
	Composition map[string]int               `json:"composition,omitempty"`
	Accuracy    *generator.Accuracy          `json:"accuracy,omitempty"`
	Assessment  *strength.Assessment         `json:"assessment,omitempty"`
	Dictionary  *strength.DictionaryEstimate `json:"dictionary,omitempty"`

	assessment strength.Assessment
}

func newResult(mode, value string, composition map[model.ClassKind]int) result {
	r := result{Mode: mode, Value: value, assessment: strength.Assess(value)}
	if len(composition) > 0 {
		r.Composition = make(map[string]int, len(composition))
		for kind, n := range composition {
			r.Composition[kind.String()] = n
		}
	}
	return r
}

// withAssessment exposes the strength fields for output.
func (r result) withAssessment() result {
	a := r.assessment
	d := strength.Dictionary(r.Value)
	r.Assessment = &a
	r.Dictionary = &d
	return r
}

func writeResults(w io.Writer, results []result, assess, asJSON bool) error {
	if assess {
		for i := range results {
			results[i] = results[i].withAssessment()
		}
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}
	color := isTerminal(w)
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Value); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if !assess {
			continue
		}
		if err := writeAssessment(w, r, color); err != nil {
			return err
		}
	}
	return nil
}

const dictionaryWarning = "Contains common words or patterns"

func writeAssessment(w io.Writer, r result, color bool) error {
	a := r.assessment
	level := a.Level.String()
	if color {
		level = tui.LevelStyle(a.Level).Render(level)
	}
	lines := []string{
		fmt.Sprintf("  strength: %s (score %d/100)", level, a.Score),
		fmt.Sprintf("  entropy:  %.1f bits over %d symbols", a.EntropyBits, a.CharsetSize),
		fmt.Sprintf("  crack:    %s at 1e9 guesses/s", a.CrackTimeLabel),
	}
	if d := r.Dictionary; d != nil {
		line := fmt.Sprintf("  zxcvbn:   %d/4, %s", d.Score, d.CrackTime)
		if d.Truncated {
			line += fmt.Sprintf(" (first %d characters)", strength.MaxDictionaryRunes)
		}
		lines = append(lines, line)
	}
	if r.Accuracy != nil {
		lines = append(lines, fmt.Sprintf("  target:   off by %d (%d%% accurate)", r.Accuracy.Difference, r.Accuracy.Percent))
	}
	for _, f := range a.Feedback {
		lines = append(lines, "  - "+f)
	}
	if d := r.Dictionary; d != nil && d.Weak() {
		lines = append(lines, "  - "+dictionaryWarning)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
