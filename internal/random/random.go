// Package random provides the uniform sampling primitives used by the generators.
package random

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source picks uniform indices and permutations.
type Source interface {
	// Intn returns a uniform int in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Shuffle permutes n elements uniformly using swap.
	Shuffle(n int, swap func(i, j int))
}

// Crypto draws from crypto/rand. It is safe for concurrent use.
type Crypto struct {
	rnd *mrand.Rand
}

// NewCrypto returns a Source backed by the operating system CSPRNG.
func NewCrypto() *Crypto {
	return &Crypto{rnd: mrand.New(cryptoSource{})}
}

// Intn implements Source.
func (c *Crypto) Intn(n int) int {
	return c.rnd.IntN(n)
}

// Shuffle implements Source.
func (c *Crypto) Shuffle(n int, swap func(i, j int)) {
	fisherYates(c, n, swap)
}

// Seeded is a deterministic Source for tests and reproducible runs.
// It is not safe for concurrent use.
type Seeded struct {
	rnd *mrand.Rand
}

// NewSeeded returns a PCG-backed Source seeded with seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rnd: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn implements Source.
func (s *Seeded) Intn(n int) int {
	return s.rnd.IntN(n)
}

// Shuffle implements Source.
func (s *Seeded) Shuffle(n int, swap func(i, j int)) {
	fisherYates(s, n, swap)
}

func fisherYates(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// cryptoSource adapts crypto/rand to math/rand/v2's Source. rand.Read never
// returns an error on supported platforms.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
