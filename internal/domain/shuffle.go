package domain

import "math/rand/v2"

// Randomizer yields uniform integers in [0, n).
type Randomizer interface {
	IntN(n int) int
}

type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int { return rand.IntN(n) }

// NewRandomizer returns a Randomizer backed by the runtime's auto-seeded source.
func NewRandomizer() Randomizer {
	return globalRandomizer{}
}

// NewSeededRandomizer returns a deterministic Randomizer, used for reproducible sessions.
func NewSeededRandomizer(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](rng Randomizer, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
