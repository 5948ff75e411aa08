package rng

import (
	"golang.org/x/exp/rand"
)

// Source draws uniform integers from a seedable PCG generator.
type Source struct {
	r *rand.Rand
}

func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// UniformInt returns a uniform integer in [min, max], both inclusive.
func (s *Source) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}
