package strength

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestAssessEmpty(t *testing.T) {
	a := Assess("")
	if a.Score != 0 || a.Level != VeryWeak {
		t.Fatalf("expected zero score at very weak, got %d %s", a.Score, a.Level)
	}
	if a.EntropyBits != 0 || a.CharsetSize != 0 {
		t.Fatalf("expected zero entropy and charset, got %v %d", a.EntropyBits, a.CharsetSize)
	}
	if a.CrackTimeLabel != "Instant" {
		t.Fatalf("expected Instant, got %q", a.CrackTimeLabel)
	}
}

func TestAssessRepeatedLowercase(t *testing.T) {
	a := Assess("aaaaaaaaaaaa")
	if a.Level != VeryWeak && a.Level != Weak {
		t.Fatalf("expected weak level, got %s (score %d)", a.Level, a.Score)
	}
	if a.Score != 35 {
		t.Fatalf("expected score 35, got %d", a.Score)
	}
	want := []string{MsgUpper, MsgDigit, MsgSymbol, MsgVariety, MsgRepetition}
	if !slices.Equal(a.Feedback, want) {
		t.Fatalf("unexpected feedback %q", a.Feedback)
	}
}

func TestAssessScoring(t *testing.T) {
	tests := []struct {
		secret   string
		score    int
		level    Level
		feedback []string
	}{
		{"Abcdef1!ghij", 100, VeryStrong, []string{MsgGood}},
		{"Abcdef1!", 90, VeryStrong, []string{MsgLength}},
		{"abcdef12", 50, Moderate, []string{MsgLength, MsgUpper, MsgSymbol, MsgVariety}},
		{"abc", 25, Weak, []string{MsgLength, MsgUpper, MsgDigit, MsgSymbol, MsgVariety}},
		{"111", 15, VeryWeak, []string{MsgLength, MsgUpper, MsgLower, MsgSymbol, MsgVariety, MsgRepetition}},
	}
	for _, tc := range tests {
		t.Run(tc.secret, func(t *testing.T) {
			a := Assess(tc.secret)
			if a.Score != tc.score || a.Level != tc.level {
				t.Fatalf("expected %d/%s, got %d/%s", tc.score, tc.level, a.Score, a.Level)
			}
			if !slices.Equal(a.Feedback, tc.feedback) {
				t.Fatalf("expected feedback %q, got %q", tc.feedback, a.Feedback)
			}
		})
	}
}

func TestCharsetSize(t *testing.T) {
	manySymbols := "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~¡¢£¤¥¦§¨©ª«"
	tests := map[string]int{
		"abc":       26,
		"aB1":       62,
		"a!":        58,
		"Zz9~":      94,
		"日本":        32,
		manySymbols: 43,
	}
	for secret, want := range tests {
		if got := CharsetSize(secret); got != want {
			t.Fatalf("CharsetSize(%q) = %d, want %d", secret, got, want)
		}
	}
}

func TestEntropyMonotonicInLength(t *testing.T) {
	prev := -1.0
	for n := 1; n <= 64; n++ {
		secret := "aB3$" + strings.Repeat("q", n)
		bits := Assess(secret).EntropyBits
		if bits < prev {
			t.Fatalf("entropy decreased at length %d: %v < %v", n+4, bits, prev)
		}
		prev = bits
	}
	want := 4 * math.Log2(26)
	if got := Assess("abcd").EntropyBits; math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v bits, got %v", want, got)
	}
}

func TestCrackTimeClamped(t *testing.T) {
	a := Assess(strings.Repeat("aB3$", 100))
	if math.IsInf(a.CrackTimeSeconds, 0) || a.CrackTimeSeconds != math.MaxFloat64 {
		t.Fatalf("expected clamped crack time, got %v", a.CrackTimeSeconds)
	}
	if _, err := json.Marshal(a); err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
}

func TestCrackTimeLabel(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "Instant"},
		{0.99, "Instant"},
		{1, "1 second"},
		{59, "59 seconds"},
		{120, "2 minutes"},
		{3 * hour, "3 hours"},
		{2 * day, "2 days"},
		{5 * year, "5 years"},
		{999 * year, "999 years"},
		{2500 * year, "2 thousand years"},
		{3.5e6 * year, "3 million years"},
		{4.2e9 * year, "4 billion years"},
		{1.50005e16 * year, "15,000 trillion years"},
	}
	for _, tc := range tests {
		if got := CrackTimeLabel(tc.seconds); got != tc.want {
			t.Fatalf("CrackTimeLabel(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
	if got := CrackTimeLabel(math.MaxFloat64); !strings.HasSuffix(got, " trillion years") || !strings.Contains(got, "e+") {
		t.Fatalf("unexpected label for max float: %q", got)
	}
}

func TestLevelText(t *testing.T) {
	for l := VeryWeak; l <= VeryStrong; l++ {
		got, ok := ParseLevel(l.String())
		if !ok || got != l {
			t.Fatalf("ParseLevel(%q) = %v, %v", l.String(), got, ok)
		}
	}
	if _, ok := ParseLevel("mighty"); ok {
		t.Fatalf("expected unknown level to fail")
	}
	out, err := json.Marshal(Assess("abc"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), `"level":"weak"`) {
		t.Fatalf("expected level name in %s", out)
	}
}
