// Package wordlist provides passphrase dictionaries.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tyler-smith/go-bip39"
)

// MinWords is the smallest dictionary accepted for passphrases.
const MinWords = 50

// ErrTooFewWords is returned when a dictionary is smaller than MinWords.
var ErrTooFewWords = errors.New("word list has too few words")

// List is an immutable, ordered set of lowercase words.
type List struct {
	words    []string
	index    map[string]struct{}
	shortest int
}

var builtinWords = []string{
	"apple", "banana", "cherry", "dragon", "elephant", "falcon", "guitar", "harbor",
	"island", "jungle", "kitten", "lemon", "mountain", "ocean", "piano", "quartz",
	"rainbow", "sunset", "tiger", "umbrella", "valley", "wizard", "yellow", "zebra",
	"bridge", "castle", "flower", "garden", "happy", "magic", "nature", "purple",
	"river", "silver", "thunder", "winter", "bright", "cloud", "dream", "forest",
	"golden", "honest", "journey", "kindness", "light", "moon", "noble", "peace",
	"quiet", "royal", "star", "truth", "unique", "voice", "wisdom", "youth",
}

var builtin = mustNew(builtinWords)

// Builtin returns the default dictionary.
func Builtin() List {
	return builtin
}

// BIP39 returns the BIP39 English mnemonic list.
func BIP39() (List, error) {
	return New(bip39.GetWordList())
}

// New builds a List from words. Words are trimmed, filtered to lowercase ASCII
// and deduplicated in order.
func New(words []string) (List, error) {
	l := List{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if !filterLowerASCII(w) {
			continue
		}
		if _, ok := l.index[w]; ok {
			continue
		}
		l.index[w] = struct{}{}
		l.words = append(l.words, w)
		if n := utf8.RuneCountInString(w); l.shortest == 0 || n < l.shortest {
			l.shortest = n
		}
	}
	if len(l.words) < MinWords {
		return List{}, fmt.Errorf("%w: got %d, need %d", ErrTooFewWords, len(l.words), MinWords)
	}
	return l, nil
}

func mustNew(words []string) List {
	l, err := New(words)
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of words.
func (l List) Len() int {
	return len(l.words)
}

// At returns the i-th word.
func (l List) At(i int) string {
	return l.words[i]
}

// Contains reports whether word is in the list.
func (l List) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

// Shortest returns the rune length of the shortest word.
func (l List) Shortest() int {
	return l.shortest
}

// Words returns a copy of the words.
func (l List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Resolve returns the dictionary named by source: "" or "builtin", "bip39",
// or a path to a word-per-line file.
func Resolve(source string) (List, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "", "builtin":
		return Builtin(), nil
	case "bip39":
		return BIP39()
	}
	words, err := LoadWords(source)
	if err != nil {
		return List{}, fmt.Errorf("failed to load word list %s: %w", source, err)
	}
	return New(words)
}
