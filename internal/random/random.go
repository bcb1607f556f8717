// Package random provides the random source used for tie-breaks and
// creative rotation. Sources are injectable so tests can fix the seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source is the subset of *rand.Rand the allocation path draws from.
// Implementations must be safe for concurrent use.
type Source interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Locked is a PCG generator guarded by a mutex.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a goroutine-safe Source seeded with seed. The same seed
// always yields the same sequence.
func New(seed uint64) *Locked {
	return &Locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewFromCrypto returns a Source seeded from crypto/rand.
func NewFromCrypto() (*Locked, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
