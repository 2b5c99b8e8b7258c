// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// ClassKind identifies a character class usable in password generation.
type ClassKind int

// Character class kinds, in generation order.
const (
	ClassUpper ClassKind = iota
	ClassLower
	ClassDigit
	ClassSymbol
	ClassCustomSymbol
)

// Built-in alphabets.
const (
	UpperAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerAlphabet  = "abcdefghijklmnopqrstuvwxyz"
	DigitAlphabet  = "0123456789"
	SymbolAlphabet = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

func (k ClassKind) String() string {
	switch k {
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	case ClassCustomSymbol:
		return "custom"
	default:
		return "unknown"
	}
}

// CharacterClassSpec describes one enabled or disabled character class.
type CharacterClassSpec struct {
	Kind     ClassKind
	Alphabet string
	MinCount int
	Enabled  bool
}

// GenerationConstraints configures character-mode generation.
// The sum of MinCount over enabled classes must not exceed TotalLength.
type GenerationConstraints struct {
	TotalLength int
	Classes     []CharacterClassSpec
}

// LengthMode selects how passphrase length is controlled.
type LengthMode int

const (
	// WordCount draws a fixed number of words.
	WordCount LengthMode = iota
	// CharacterLength approximates a target character length.
	CharacterLength
)

func (m LengthMode) String() string {
	if m == CharacterLength {
		return "character-length"
	}
	return "word-count"
}

// PassphraseConstraints configures passphrase generation.
//
// MinNumberCount is an upper bound: digits are only placed at internal word
// boundaries, so fewer are inserted when boundaries (or, in CharacterLength
// mode, the length budget) run out.
type PassphraseConstraints struct {
	LengthMode     LengthMode
	WordCount      int
	TargetLength   int
	Separator      string
	Capitalize     bool
	IncludeNumbers bool
	MinNumberCount int
}

// GeneratedSecret is the result of a character-mode generation.
type GeneratedSecret struct {
	Value       string
	Composition map[ClassKind]int
}

// DefaultClasses returns the four built-in classes plus a custom-symbol class,
// each with the given enabled flag and minimum counts of zero.
func DefaultClasses(upper, lower, digit, symbol bool, custom string) []CharacterClassSpec {
	custom = DedupAlphabet(custom)
	return []CharacterClassSpec{
		{Kind: ClassUpper, Alphabet: UpperAlphabet, Enabled: upper},
		{Kind: ClassLower, Alphabet: LowerAlphabet, Enabled: lower},
		{Kind: ClassDigit, Alphabet: DigitAlphabet, Enabled: digit},
		{Kind: ClassSymbol, Alphabet: SymbolAlphabet, Enabled: symbol},
		{Kind: ClassCustomSymbol, Alphabet: custom, Enabled: custom != ""},
	}
}

// DedupAlphabet removes repeated characters, keeping the first occurrence.
func DedupAlphabet(alphabet string) string {
	seen := make(map[rune]struct{}, len(alphabet))
	var b strings.Builder
	for _, r := range alphabet {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	return b.String()
}

// PasswordOptions holds CLI-level password settings before they are turned
// into GenerationConstraints.
type PasswordOptions struct {
	Length        int `validate:"min=1,max=1024"`
	Upper         bool
	Lower         bool
	Digits        bool
	Symbols       bool
	CustomSymbols string `validate:"max=128"`
	MinUpper      int    `validate:"min=0"`
	MinLower      int    `validate:"min=0"`
	MinDigits     int    `validate:"min=0"`
	MinSymbols    int    `validate:"min=0"`
	MinCustom     int    `validate:"min=0"`
}

// PassphraseOptions holds CLI-level passphrase settings.
type PassphraseOptions struct {
	Mode         string `validate:"oneof=word-count character-length"`
	Words        int    `validate:"min=1,max=64"`
	TargetLength int    `validate:"min=1,max=512"`
	Separator    string `validate:"max=3"`
	Capitalize   bool
	Numbers      bool
	MinNumbers   int `validate:"min=0"`
	WordList     string
}

// AssessmentRecord is a persisted summary of one assessment. The secret
// itself is never stored.
type AssessmentRecord struct {
	ID          int64
	BatchID     string
	CreatedAt   time.Time
	Mode        string
	Length      int
	EntropyBits float64
	Score       int
	Level       string
}

// HistoryFilter narrows history queries.
type HistoryFilter struct {
	Mode  string
	Since *time.Time
	Last  int
}
