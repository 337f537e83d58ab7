package sample

// PRNG is a Linear Congruential Generator, giving the same texts on every
// platform for a given seed.
type PRNG struct {
	state uint64
}

// NewPRNG creates a new PRNG with the given seed
func NewPRNG(seed uint64) *PRNG {
	return &PRNG{state: seed}
}

// Next generates the next random number
// Multiplier and increment from Numerical Recipes
func (p *PRNG) Next() uint64 {
	p.state = p.state*6364136223846793005 + 1442695040888963407
	return p.state
}

// Uint64N returns a random number in [0, n)
func (p *PRNG) Uint64N(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return (p.Next() >> 11) % n
}

// Shuffle performs an in-place Fisher-Yates shuffle of runes
func (p *PRNG) Shuffle(runes []rune) {
	for i := len(runes) - 1; i > 0; i-- {
		j := int(p.Uint64N(uint64(i + 1)))
		runes[i], runes[j] = runes[j], runes[i]
	}
}
