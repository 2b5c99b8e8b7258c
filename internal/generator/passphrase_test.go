package generator

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/random"
	"github.com/verte-zerg/passgen/internal/wordlist"
)

func isDigitToken(tok string) bool {
	return len(tok) == 1 && tok[0] >= '0' && tok[0] <= '9'
}

func TestWordCountScenarioPlain(t *testing.T) {
	words := wordlist.Builtin()
	c := model.PassphraseConstraints{LengthMode: model.WordCount, WordCount: 4, Separator: "-"}
	for seed := uint64(0); seed < 50; seed++ {
		value := PassphraseByWordCount(c, words, random.NewSeeded(seed))
		tokens := strings.Split(value, "-")
		require.Len(t, tokens, 4, "value %q", value)
		for _, tok := range tokens {
			assert.True(t, words.Contains(tok), "token %q not in word list", tok)
		}
	}
}

func TestWordCountCapitalizeAndNumbers(t *testing.T) {
	words := wordlist.Builtin()
	tests := []struct {
		name       string
		wordCount  int
		minNumbers int
		wantDigits int
	}{
		{name: "fewer_than_boundaries", wordCount: 5, minNumbers: 2, wantDigits: 2},
		{name: "exactly_boundaries", wordCount: 4, minNumbers: 3, wantDigits: 3},
		{name: "boundaries_run_out", wordCount: 3, minNumbers: 5, wantDigits: 2},
		{name: "single_word", wordCount: 1, minNumbers: 3, wantDigits: 0},
		{name: "zero_requested", wordCount: 4, minNumbers: 0, wantDigits: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := model.PassphraseConstraints{
				WordCount:      tc.wordCount,
				Separator:      "_",
				Capitalize:     true,
				IncludeNumbers: true,
				MinNumberCount: tc.minNumbers,
			}
			value := PassphraseByWordCount(c, words, random.NewSeeded(5))
			tokens := strings.Split(value, "_")
			digits, wordsSeen := 0, 0
			for i, tok := range tokens {
				if isDigitToken(tok) {
					digits++
					require.NotZero(t, i, "digit must not lead: %q", value)
					require.NotEqual(t, len(tokens)-1, i, "digit must not trail: %q", value)
					require.False(t, isDigitToken(tokens[i-1]), "digits must alternate with words: %q", value)
					continue
				}
				wordsSeen++
				first, _ := utf8.DecodeRuneInString(tok)
				require.True(t, first >= 'A' && first <= 'Z', "token %q not capitalized", tok)
				require.True(t, words.Contains(strings.ToLower(tok)), "token %q not in word list", tok)
			}
			assert.Equal(t, tc.wordCount, wordsSeen)
			assert.Equal(t, tc.wantDigits, digits)
		})
	}
}

func TestWordCountEmptySeparator(t *testing.T) {
	c := model.PassphraseConstraints{WordCount: 3, IncludeNumbers: true, MinNumberCount: 2}
	value := PassphraseByWordCount(c, wordlist.Builtin(), random.NewSeeded(8))
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	assert.Equal(t, 2, digits, "value %q", value)
}

func TestTargetLengthScenario(t *testing.T) {
	words := wordlist.Builtin()
	c := model.PassphraseConstraints{LengthMode: model.CharacterLength, TargetLength: 20, Separator: "-"}
	for seed := uint64(0); seed < 30; seed++ {
		value := PassphraseByLength(c, words, random.NewSeeded(seed))
		require.NotEmpty(t, value)
		diff := abs(utf8.RuneCountInString(value) - 20)
		assert.LessOrEqual(t, diff, 3, "value %q", value)
		for _, tok := range strings.Split(value, "-") {
			assert.True(t, words.Contains(tok), "token %q not in word list", tok)
		}
	}
}

func TestTargetLengthReturnsBestAttempt(t *testing.T) {
	words := wordlist.Builtin()
	c := model.PassphraseConstraints{
		LengthMode:     model.CharacterLength,
		TargetLength:   37,
		Separator:      "..",
		Capitalize:     true,
		IncludeNumbers: true,
		MinNumberCount: 2,
	}
	for seed := uint64(0); seed < 20; seed++ {
		var attempts []int
		value := searchByLength(c, words, random.NewSeeded(seed), func(v string) {
			attempts = append(attempts, abs(utf8.RuneCountInString(v)-c.TargetLength))
		})
		require.NotEmpty(t, attempts)
		require.LessOrEqual(t, len(attempts), MaxLengthAttempts)
		got := abs(utf8.RuneCountInString(value) - c.TargetLength)
		for _, d := range attempts {
			assert.LessOrEqual(t, got, d)
		}
		assert.LessOrEqual(t, utf8.RuneCountInString(value), c.TargetLength)
	}
}

func TestTargetLengthStopsEarly(t *testing.T) {
	words := wordlist.Builtin()
	c := model.PassphraseConstraints{LengthMode: model.CharacterLength, TargetLength: 25, Separator: " "}
	for seed := uint64(0); seed < 20; seed++ {
		var last string
		attempts := 0
		value := searchByLength(c, words, random.NewSeeded(seed), func(v string) {
			last = v
			attempts++
		})
		if abs(utf8.RuneCountInString(value)-25) <= 1 {
			assert.Equal(t, last, value, "search continued after a close match")
		} else {
			assert.Equal(t, MaxLengthAttempts, attempts)
		}
	}
}

func TestTargetLengthUnreachable(t *testing.T) {
	words := wordlist.Builtin()
	c := model.PassphraseConstraints{LengthMode: model.CharacterLength, TargetLength: 3, Separator: "-"}
	assert.Empty(t, PassphraseByLength(c, words, random.NewSeeded(1)))

	_, err := Passphrase(c, words, random.NewSeeded(1))
	assert.True(t, errors.Is(err, ErrUnreachableTarget), "got %v", err)

	// Number reservation can also leave no room for a word.
	c = model.PassphraseConstraints{
		LengthMode:     model.CharacterLength,
		TargetLength:   8,
		Separator:      "--",
		IncludeNumbers: true,
		MinNumberCount: 2,
	}
	assert.Empty(t, PassphraseByLength(c, words, random.NewSeeded(1)))
}

func TestTargetLengthNumbersRespectBudget(t *testing.T) {
	words := wordlist.Builtin()
	c := model.PassphraseConstraints{
		LengthMode:     model.CharacterLength,
		TargetLength:   30,
		Separator:      "-",
		IncludeNumbers: true,
		MinNumberCount: 2,
	}
	for seed := uint64(0); seed < 30; seed++ {
		value := PassphraseByLength(c, words, random.NewSeeded(seed))
		require.NotEmpty(t, value)
		assert.LessOrEqual(t, utf8.RuneCountInString(value), 30, "value %q", value)
		digits := 0
		for _, tok := range strings.Split(value, "-") {
			if isDigitToken(tok) {
				digits++
			}
		}
		assert.LessOrEqual(t, digits, 2, "value %q", value)
	}
}

func TestPassphraseDispatchValidation(t *testing.T) {
	words := wordlist.Builtin()
	tests := []struct {
		name string
		c    model.PassphraseConstraints
	}{
		{name: "zero_words", c: model.PassphraseConstraints{WordCount: 0, Separator: "-"}},
		{name: "long_separator", c: model.PassphraseConstraints{WordCount: 3, Separator: "----"}},
		{name: "negative_numbers", c: model.PassphraseConstraints{WordCount: 3, MinNumberCount: -1}},
		{name: "zero_target", c: model.PassphraseConstraints{LengthMode: model.CharacterLength}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Passphrase(tc.c, words, random.NewSeeded(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
		})
	}

	value, err := Passphrase(model.PassphraseConstraints{WordCount: 2, Separator: "→·←"}, words, random.NewSeeded(1))
	require.NoError(t, err)
	assert.Len(t, strings.Split(value, "→·←"), 2)
}

func TestMaxNumberCount(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 1, 3: 2, 6: 5, 8: 5}
	for words, want := range cases {
		assert.Equal(t, want, MaxNumberCount(words), "wordCount %d", words)
	}
}

func TestTargetAccuracy(t *testing.T) {
	assert.Equal(t, Accuracy{Difference: 0, Percent: 100}, TargetAccuracy("abcde", 5))
	assert.Equal(t, Accuracy{Difference: 3, Percent: 70}, TargetAccuracy("ab", 5))
	assert.Equal(t, Accuracy{Difference: 12, Percent: 0}, TargetAccuracy("", 12))
}

func TestGeneratorUsesInjectedSource(t *testing.T) {
	a := NewWithSource(random.NewSeeded(4), wordlist.Builtin())
	b := NewWithSource(random.NewSeeded(4), wordlist.Builtin())
	c := model.PassphraseConstraints{WordCount: 6, Separator: " "}
	assert.Equal(t, a.PassphraseByWordCount(c), b.PassphraseByWordCount(c))
	assert.Equal(t, wordlist.Builtin().Len(), New().Words().Len())
}
