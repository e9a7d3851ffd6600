package powerpong

import "math/rand"

// angleSeedMix separates the angle stream from the integer stream when both
// are derived from one seed.
const angleSeedMix = 0x5DEECE66D

// Sampler is the source of randomness the simulation consumes.
//
// UniformInt and UnitFloat are separate policies and must draw from
// separate generators: integer rolls (reward chances, spawn positions,
// power-up types) never shift the sequence of ball angles, and vice versa.
type Sampler interface {
	// UniformInt returns a uniformly distributed integer in [min, max].
	UniformInt(min, max int) int
	// UnitFloat returns a uniformly distributed value in [0, 1).
	UnitFloat() float64
}

// Random is the default Sampler, seeded once per game.
type Random struct {
	ints   *rand.Rand
	angles *rand.Rand
}

// NewRandom creates both generators from a single seed.
func NewRandom(seed int64) *Random {
	return &Random{
		ints:   rand.New(rand.NewSource(seed)),
		angles: rand.New(rand.NewSource(seed ^ angleSeedMix)),
	}
}

// UniformInt returns a uniformly distributed integer in [min, max].
// A reversed range collapses to min.
func (r *Random) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.ints.Intn(max-min+1)
}

// UnitFloat returns a uniformly distributed value in [0, 1).
func (r *Random) UnitFloat() float64 {
	return r.angles.Float64()
}

// CalculateChance rolls [1, chance] and succeeds when the roll is even.
// The odds are floor(chance/2) in chance, not 1 in chance.
func CalculateChance(s Sampler, chance int) bool {
	return s.UniformInt(1, chance)%2 == 0
}
