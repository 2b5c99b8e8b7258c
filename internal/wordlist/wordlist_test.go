package wordlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	l := Builtin()
	if l.Len() < MinWords {
		t.Fatalf("builtin list has %d words", l.Len())
	}
	if !l.Contains("apple") || l.Contains("Apple") {
		t.Fatalf("unexpected membership results")
	}
	if l.Shortest() != 4 {
		t.Fatalf("expected shortest word of 4 runes, got %d", l.Shortest())
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	l := Builtin()
	words := l.Words()
	words[0] = "mutated"
	if l.At(0) == "mutated" {
		t.Fatalf("Words must not expose internal storage")
	}
}

func TestNewRejectsSmallList(t *testing.T) {
	_, err := New([]string{"one", "two", "three"})
	if !errors.Is(err, ErrTooFewWords) {
		t.Fatalf("expected ErrTooFewWords, got %v", err)
	}
}

func TestNewFiltersAndDedups(t *testing.T) {
	words := make([]string, 0, 60)
	for i := 0; i < 55; i++ {
		words = append(words, fmt.Sprintf("w%s", strings.Repeat("a", i+1)))
	}
	words = append(words, "waa", "Upper", "with space", "")
	l, err := New(words)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if l.Len() != 55 {
		t.Fatalf("expected 55 words, got %d", l.Len())
	}
}

func TestBIP39(t *testing.T) {
	l, err := BIP39()
	if err != nil {
		t.Fatalf("BIP39 failed: %v", err)
	}
	if l.Len() != 2048 {
		t.Fatalf("expected 2048 words, got %d", l.Len())
	}
	if !l.Contains("abandon") {
		t.Fatalf("expected abandon in bip39 list")
	}
}

func TestResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	var b strings.Builder
	b.WriteString("# comment\n")
	for _, w := range Builtin().Words() {
		b.WriteString(w + "\n\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	l, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if l.Len() != Builtin().Len() {
		t.Fatalf("expected %d words, got %d", Builtin().Len(), l.Len())
	}
}

func TestResolveMissingFile(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
