// Package strength estimates how hard a generated secret is to guess.
package strength

import "math"

// Level buckets a heuristic score.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

func (l Level) String() string {
	switch l {
	case Weak:
		return "weak"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "very weak"
	}
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLevel is the inverse of Level.String.
func ParseLevel(s string) (Level, bool) {
	for l := VeryWeak; l <= VeryStrong; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return VeryWeak, false
}

const (
	guessesPerSecond = 1e9
	minSymbolPool    = 32
	maxScore         = 100
)

// Assessment is the result of Assess.
type Assessment struct {
	EntropyBits      float64  `json:"entropy_bits"`
	CharsetSize      int      `json:"charset_size,omitempty"`
	CrackTimeSeconds float64  `json:"crack_time_seconds"`
	CrackTimeLabel   string   `json:"crack_time"`
	Score            int      `json:"score"`
	Level            Level    `json:"level"`
	Feedback         []string `json:"feedback"`
}

const (
	MsgLength     = "Use at least 12 characters"
	MsgUpper      = "Add uppercase letters"
	MsgLower      = "Add lowercase letters"
	MsgDigit      = "Add numbers"
	MsgSymbol     = "Add symbols"
	MsgVariety    = "Mix at least three kinds of characters"
	MsgRepetition = "Avoid repeated characters"
	MsgGood       = "Strong password"
)

type composition struct {
	length   int
	upper    bool
	lower    bool
	digit    bool
	symbols  map[rune]struct{}
	distinct int
}

func analyze(secret string) composition {
	c := composition{symbols: map[rune]struct{}{}}
	seen := map[rune]struct{}{}
	for _, r := range secret {
		c.length++
		seen[r] = struct{}{}
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbols[r] = struct{}{}
		}
	}
	c.distinct = len(seen)
	return c
}

// CharsetSize estimates the alphabet an attacker would have to search. Letters
// and digits are ASCII; anything else is a symbol, and any symbol counts as a
// pool of at least 32 characters.
func CharsetSize(secret string) int {
	return analyze(secret).charset()
}

func (c composition) charset() int {
	size := 0
	if c.lower {
		size += 26
	}
	if c.upper {
		size += 26
	}
	if c.digit {
		size += 10
	}
	if n := len(c.symbols); n > 0 {
		size += max(n, minSymbolPool)
	}
	return size
}

func (c composition) classes() int {
	n := 0
	for _, ok := range []bool{c.upper, c.lower, c.digit, len(c.symbols) > 0} {
		if ok {
			n++
		}
	}
	return n
}

// Assess scores secret. It never fails; the empty string yields a zero
// assessment at VeryWeak.
func Assess(secret string) Assessment {
	if secret == "" {
		return Assessment{CrackTimeLabel: CrackTimeLabel(0), Level: VeryWeak, Feedback: []string{MsgLength}}
	}
	c := analyze(secret)
	charset := c.charset()

	a := Assessment{CharsetSize: charset}
	if charset > 1 {
		a.EntropyBits = float64(c.length) * math.Log2(float64(charset))
	}
	a.CrackTimeSeconds = crackSeconds(a.EntropyBits)
	a.CrackTimeLabel = CrackTimeLabel(a.CrackTimeSeconds)
	a.Score, a.Feedback = score(c)
	a.Level = levelFor(a.Score)
	return a
}

// crackSeconds is 2^bits / 2 guesses at guessesPerSecond, clamped to the
// float range.
func crackSeconds(bits float64) float64 {
	s := math.Exp2(bits) / 2 / guessesPerSecond
	if math.IsInf(s, 1) {
		return math.MaxFloat64
	}
	return s
}

func score(c composition) (int, []string) {
	var points int
	var feedback []string

	switch {
	case c.length >= 12:
		points += 20
	case c.length >= 8:
		points += 10
		feedback = append(feedback, MsgLength)
	default:
		feedback = append(feedback, MsgLength)
	}
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.upper, MsgUpper},
		{c.lower, MsgLower},
		{c.digit, MsgDigit},
		{len(c.symbols) > 0, MsgSymbol},
	}
	for _, ch := range checks {
		if ch.ok {
			points += 15
			continue
		}
		feedback = append(feedback, ch.msg)
	}
	if c.classes() >= 3 {
		points += 10
	} else {
		feedback = append(feedback, MsgVariety)
	}
	if float64(c.distinct)/float64(c.length) > 0.6 {
		points += 10
	} else {
		feedback = append(feedback, MsgRepetition)
	}

	if len(feedback) == 0 {
		feedback = []string{MsgGood}
	}
	return min(points, maxScore), feedback
}

func levelFor(score int) Level {
	switch {
	case score >= 80:
		return VeryStrong
	case score >= 60:
		return Strong
	case score >= 40:
		return Moderate
	case score >= 20:
		return Weak
	default:
		return VeryWeak
	}
}
