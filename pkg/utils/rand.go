package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seeded uniform random stream. One instance is owned
// by each cell worker during discovery, so draws within a cell are
// sequential and reproducible given the seed; instances are not safe
// for concurrent use.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed is replaced by the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0).
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Uniform returns a random float64 in [min, max).
func (r *RandSource) Uniform(min, max float64) float64 {
	return min + (max-min)*r.rng.Float64()
}

// Intn returns a random int in [0, n).
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// Fork derives an independent stream keyed by a worker index. Forked
// streams keep per-worker draws reproducible without serializing the
// workers on a shared parent stream.
func (r *RandSource) Fork(index int64) *RandSource {
	seed := int64(uint64(r.rng.Int63()) ^ uint64(index+1)*0x9e3779b97f4a7c15)
	return NewRandSource(seed)
}
