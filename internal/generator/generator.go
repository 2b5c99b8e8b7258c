// Package generator builds passwords and passphrases from declarative constraints.
package generator

import (
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/random"
	"github.com/verte-zerg/passgen/internal/wordlist"
)

// Generator binds a random source and a dictionary. The zero value is not usable.
type Generator struct {
	rnd   random.Source
	words wordlist.List
}

// New returns a Generator backed by crypto/rand and the built-in dictionary.
func New() *Generator {
	return &Generator{rnd: random.NewCrypto(), words: wordlist.Builtin()}
}

// NewWithSource returns a Generator using src and words.
func NewWithSource(src random.Source, words wordlist.List) *Generator {
	return &Generator{rnd: src, words: words}
}

// Words returns the dictionary in use.
func (g *Generator) Words() wordlist.List {
	return g.words
}

// Password generates a character-mode secret.
func (g *Generator) Password(c model.GenerationConstraints) (model.GeneratedSecret, error) {
	return Password(c, g.rnd)
}

// Passphrase generates a passphrase in the mode selected by c.
func (g *Generator) Passphrase(c model.PassphraseConstraints) (string, error) {
	return Passphrase(c, g.words, g.rnd)
}

// PassphraseByWordCount generates a fixed word-count passphrase.
func (g *Generator) PassphraseByWordCount(c model.PassphraseConstraints) string {
	return PassphraseByWordCount(c, g.words, g.rnd)
}

// PassphraseByLength generates a passphrase near c.TargetLength.
func (g *Generator) PassphraseByLength(c model.PassphraseConstraints) string {
	return PassphraseByLength(c, g.words, g.rnd)
}
