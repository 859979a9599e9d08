package order

import (
	"fmt"
	"math/rand/v2"
)

// CookTimeGenerator produces randomized cook durations, in minutes,
// uniformly distributed within fixed inclusive bounds. Bounds come
// from configuration once at startup and never change afterwards.
type CookTimeGenerator struct {
	min int
	max int
}

// NewCookTimeGenerator validates the bounds and returns a generator.
// Invalid bounds are a startup error, never a request-time surprise.
func NewCookTimeGenerator(min, max int) (*CookTimeGenerator, error) {
	if min < 1 {
		return nil, fmt.Errorf("cook time minimum must be at least 1, got %d", min)
	}
	if min > max {
		return nil, fmt.Errorf("cook time minimum %d exceeds maximum %d", min, max)
	}
	return &CookTimeGenerator{min: min, max: max}, nil
}

// Minutes returns a uniform random cook time in [min, max] inclusive.
func (g *CookTimeGenerator) Minutes() int {
	return g.min + rand.IntN(g.max-g.min+1)
}
