package wordlist

import "testing"

func TestFilterLowerASCII(t *testing.T) {
	if !filterLowerASCII("hello") {
		t.Fatalf("expected hello to pass filter")
	}
	for _, word := range []string{"", "Hello", "résumé", "naïve", "don’t", "co-op", "abc1"} {
		if filterLowerASCII(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
