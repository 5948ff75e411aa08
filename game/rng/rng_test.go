package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformIntRange(t *testing.T) {
	s := New(42)
	seen := make(map[int]bool)

	for i := 0; i < 5000; i++ {
		v := s.UniformInt(0, 24)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 24)
		seen[v] = true
	}

	assert.Len(t, seen, 25, "both bounds are inclusive")
}

func TestUniformIntDegenerate(t *testing.T) {
	s := New(1)

	assert.Equal(t, 7, s.UniformInt(7, 7))
	assert.Equal(t, 7, s.UniformInt(7, 3))
}

func TestDeterministic(t *testing.T) {
	a, b := New(12345), New(12345)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.UniformInt(0, 24), b.UniformInt(0, 24))
	}
}
