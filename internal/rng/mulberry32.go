package rng

import "fmt"

// Mulberry32 is a small, fast PRNG. Strategies that need their own randomness
// use it so their draws never touch the wheel's stream.
// Algorithm: https://gist.github.com/tommyettinger/46a874533244883189143505d203312c
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 creates a new Mulberry32 PRNG with the given seed
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Next returns the next random uint32
func (m *Mulberry32) Next() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns a random float64 in [0, 1)
func (m *Mulberry32) Float64() float64 {
	return float64(m.Next()) / 4294967296.0
}

// Intn returns a uniform integer in [0, n).
func (m *Mulberry32) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: Intn called with n=%d", n))
	}
	idx := int(m.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
