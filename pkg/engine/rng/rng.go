// Package rng provides the random sources used by level generation.
// A single source is shared by every stage of a run, so the order of draws
// is part of what makes a seeded run reproducible.
package rng

import (
	"math/rand"
	"time"
)

// Source supplies uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Seeded is a Source backed by a seeded math/rand generator
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// NewSeeded creates a source that always yields the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// NewTimeSeeded creates a source seeded from the current time
func NewTimeSeeded() *Seeded {
	return NewSeeded(time.Now().UnixNano())
}

// Seed returns the seed the source was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn implements Source
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// Scripted replays a fixed list of values, each reduced modulo n.
// After the script runs out it yields 0. It counts every draw.
type Scripted struct {
	values []int
	next   int
	calls  int
}

// NewScripted creates a source that replays values in order
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Intn implements Source. Panics if n <= 0, like math/rand.
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	s.calls++
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next] % n
	if v < 0 {
		v += n
	}
	s.next++
	return v
}

// Calls returns the number of draws made so far
func (s *Scripted) Calls() int {
	return s.calls
}

// Counting wraps a Source and counts draws
type Counting struct {
	Source
	calls int
}

// NewCounting wraps src
func NewCounting(src Source) *Counting {
	return &Counting{Source: src}
}

// Intn implements Source
func (c *Counting) Intn(n int) int {
	c.calls++
	return c.Source.Intn(n)
}

// Calls returns the number of draws made so far
func (c *Counting) Calls() int {
	return c.calls
}
