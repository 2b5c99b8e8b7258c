package generator

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/random"
	"github.com/verte-zerg/passgen/internal/wordlist"
)

const (
	// MaxLengthAttempts bounds the character-length search.
	MaxLengthAttempts = 100
	maxSeparatorRunes = 3
	maxNumberCount    = 5
)

// Passphrase dispatches on c.LengthMode. It validates c and reports
// ErrUnreachableTarget when character-length mode produced nothing.
func Passphrase(c model.PassphraseConstraints, words wordlist.List, src random.Source) (string, error) {
	if utf8.RuneCountInString(c.Separator) > maxSeparatorRunes {
		return "", invalid(ReasonSeparatorTooLong)
	}
	if c.MinNumberCount < 0 {
		return "", invalid(ReasonNegativeMinimum)
	}
	if c.LengthMode == model.CharacterLength {
		if c.TargetLength < 1 {
			return "", invalid(ReasonLengthTooShort)
		}
		value := PassphraseByLength(c, words, src)
		if value == "" {
			return "", ErrUnreachableTarget
		}
		return value, nil
	}
	if c.WordCount < 1 {
		return "", invalid(ReasonNoWords)
	}
	return PassphraseByWordCount(c, words, src), nil
}

// PassphraseByWordCount joins c.WordCount uniformly drawn words. When
// c.IncludeNumbers is set, up to c.MinNumberCount single digits are inserted
// as standalone tokens at internal word boundaries, left to right.
func PassphraseByWordCount(c model.PassphraseConstraints, words wordlist.List, src random.Source) string {
	if c.WordCount < 1 || words.Len() == 0 {
		return ""
	}
	capitalize := capitalizer(c.Capitalize)
	tokens := make([]string, 0, c.WordCount)
	for i := 0; i < c.WordCount; i++ {
		tokens = append(tokens, capitalize(words.At(src.Intn(words.Len()))))
	}
	if c.IncludeNumbers {
		tokens = insertDigits(tokens, c.MinNumberCount, src, func() bool { return true })
	}
	return strings.Join(tokens, c.Separator)
}

// PassphraseByLength searches for a passphrase whose length is as close as
// possible to c.TargetLength. It returns "" when no attempt placed a word.
func PassphraseByLength(c model.PassphraseConstraints, words wordlist.List, src random.Source) string {
	return searchByLength(c, words, src, nil)
}

type candidate struct {
	word  string
	runes int
}

func searchByLength(c model.PassphraseConstraints, words wordlist.List, src random.Source, observe func(value string)) string {
	if c.TargetLength < 1 || words.Len() == 0 {
		return ""
	}
	capitalize := capitalizer(c.Capitalize)
	candidates := make([]candidate, words.Len())
	for i := range candidates {
		w := capitalize(words.At(i))
		candidates[i] = candidate{word: w, runes: utf8.RuneCountInString(w)}
	}

	sepLen := utf8.RuneCountInString(c.Separator)
	reserved := 0
	if c.IncludeNumbers {
		reserved = c.MinNumberCount * (sepLen + 1)
	}

	best := ""
	bestDiff := -1
	filtered := make([]candidate, 0, len(candidates))
	for attempt := 0; attempt < MaxLengthAttempts; attempt++ {
		var chosen []string
		length := 0
		for {
			sep := 0
			if len(chosen) > 0 {
				sep = sepLen
			}
			filtered = filtered[:0]
			for _, cand := range candidates {
				if length+sep+cand.runes+reserved <= c.TargetLength {
					filtered = append(filtered, cand)
				}
			}
			if len(filtered) == 0 {
				break
			}
			pick := filtered[src.Intn(len(filtered))]
			chosen = append(chosen, pick.word)
			length += sep + pick.runes
		}
		if len(chosen) == 0 {
			continue
		}

		if c.IncludeNumbers && len(chosen) > 1 {
			chosen = insertDigits(chosen, c.MinNumberCount, src, func() bool {
				if length+sepLen+1 > c.TargetLength {
					return false
				}
				length += sepLen + 1
				return true
			})
		}

		value := strings.Join(chosen, c.Separator)
		if observe != nil {
			observe(value)
		}
		diff := abs(length - c.TargetLength)
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = value, diff
			if diff <= 1 {
				break
			}
		}
	}
	return best
}

// insertDigits places up to limit random digits between consecutive tokens.
// fits is consulted before each insertion and may reserve budget.
func insertDigits(tokens []string, limit int, src random.Source, fits func() bool) []string {
	if limit <= 0 || len(tokens) < 2 {
		return tokens
	}
	out := make([]string, 0, len(tokens)+limit)
	added := 0
	for i, tok := range tokens {
		out = append(out, tok)
		if i < len(tokens)-1 && added < limit && fits() {
			out = append(out, strconv.Itoa(src.Intn(10)))
			added++
		}
	}
	return out
}

func capitalizer(enabled bool) func(string) string {
	if !enabled {
		return func(w string) string { return w }
	}
	// Casers keep state; one per generation call keeps callers reentrant.
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String
}

// MaxNumberCount is the largest useful MinNumberCount for wordCount words.
func MaxNumberCount(wordCount int) int {
	n := wordCount - 1
	if n < 1 {
		n = 1
	}
	if n > maxNumberCount {
		n = maxNumberCount
	}
	return n
}

// Accuracy describes how close a passphrase landed to its target length.
type Accuracy struct {
	Difference int
	Percent    int
}

// TargetAccuracy scores value against target, losing 10 points per
// character of difference.
func TargetAccuracy(value string, target int) Accuracy {
	diff := abs(utf8.RuneCountInString(value) - target)
	pct := 100 - diff*10
	if pct < 0 {
		pct = 0
	}
	return Accuracy{Difference: diff, Percent: pct}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
