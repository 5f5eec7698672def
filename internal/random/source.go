// Package random provides the seedable randomness every generator draws from.
//
// Generators never touch a global random state: a *Source is threaded through
// each call so a failing worksheet can be replayed from its seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// pcgStream is the fixed second word of the PCG state; the seed alone selects the sequence.
const pcgStream = 0x9e3779b97f4a7c15

// Source is a deterministic pseudo-random source. It is not safe for concurrent use;
// give each goroutine its own Source (see Derive).
type Source struct {
	seed uint64
	r    *rand.Rand
}

// New returns a Source that replays the same sequence for the same seed.
func New(seed uint64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewPCG(seed, pcgStream))}
}

// NewSeed returns a fresh non-zero seed from the operating system.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64() | 1
	}
	if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
		return s
	}
	return 1
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Derive returns an independent Source for sub-task i. The result depends only
// on the parent seed and i, never on how much of the parent was consumed.
func (s *Source) Derive(i int) *Source {
	return New(s.seed ^ (uint64(i+1) * 0xbf58476d1ce4e5b9))
}

// Int returns a uniform integer in [min, max]. Reversed bounds are swapped.
func (s *Source) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.r.IntN(max-min+1)
}

// Intn returns a uniform integer in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return s.r.IntN(n)
}

// Float64 returns a uniform float in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Bool returns true with probability one half.
func (s *Source) Bool() bool {
	return s.r.IntN(2) == 0
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Shuffle returns a uniformly permuted copy of items (Fisher–Yates).
// The input slice is left untouched.
func Shuffle[T any](s *Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := s.r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns one uniformly chosen element. items must be non-empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.r.IntN(len(items))]
}

// Sample returns k distinct elements in random order. If k exceeds len(items)
// every element is returned.
func Sample[T any](s *Source, items []T, k int) []T {
	shuffled := Shuffle(s, items)
	if k > len(shuffled) {
		k = len(shuffled)
	}
	if k < 0 {
		k = 0
	}
	return shuffled[:k]
}
