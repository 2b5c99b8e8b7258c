package strength

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// DictionaryEstimate is zxcvbn's pattern-aware view of a secret. Unlike
// Assess it penalizes dictionary words, keyboard walks and dates, so a
// passphrase scores lower here than its character heuristic suggests.
type DictionaryEstimate struct {
	Score       int     `json:"score"`
	EntropyBits float64 `json:"entropy_bits"`
	CrackTime   string  `json:"crack_time"`
	// Truncated is set when only the first MaxDictionaryRunes were matched.
	Truncated bool `json:"truncated,omitempty"`
}

// WeakDictionaryScore is the zxcvbn score below which a secret is flagged.
const WeakDictionaryScore = 3

// MaxDictionaryRunes bounds the input handed to zxcvbn. Its matcher grows
// much faster than cubically with length; 64 runes stays near 100ms.
const MaxDictionaryRunes = 64

// Dictionary runs zxcvbn over secret. userInputs are extra words (user names,
// site names) treated as known to an attacker. Secrets longer than
// MaxDictionaryRunes are scored on their prefix and marked Truncated.
func Dictionary(secret string, userInputs ...string) DictionaryEstimate {
	if secret == "" {
		return DictionaryEstimate{CrackTime: "instant"}
	}
	var truncated bool
	if runes := []rune(secret); len(runes) > MaxDictionaryRunes {
		secret = string(runes[:MaxDictionaryRunes])
		truncated = true
	}
	r := zxcvbn.PasswordStrength(secret, userInputs)
	return DictionaryEstimate{
		Score:       r.Score,
		EntropyBits: r.Entropy,
		CrackTime:   r.CrackTimeDisplay,
		Truncated:   truncated,
	}
}

// Weak reports whether the estimate falls below WeakDictionaryScore.
func (d DictionaryEstimate) Weak() bool {
	return d.Score < WeakDictionaryScore
}
