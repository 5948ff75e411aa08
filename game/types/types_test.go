package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionToPoint(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{X: 0, Y: -1}},
		{Down, Point{X: 0, Y: 1}},
		{Left, Point{X: -1, Y: 0}},
		{Right, Point{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dir.ToPoint())
		})
	}
}

func TestDirectionAxes(t *testing.T) {
	assert.True(t, Up.IsVertical())
	assert.True(t, Down.IsVertical())
	assert.False(t, Left.IsVertical())
	assert.False(t, Right.IsVertical())

	assert.True(t, Left.IsHorizontal())
	assert.True(t, Right.IsHorizontal())
	assert.False(t, Up.IsHorizontal())
	assert.False(t, Down.IsHorizontal())

	assert.True(t, Right.SameAxis(Left))
	assert.True(t, Up.SameAxis(Down))
	assert.False(t, Right.SameAxis(Up))
}

func TestEyeOffsetsInsideCell(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		a, b := d.EyeOffsets()
		assert.NotEqual(t, a, b, d.String())
		for _, eye := range []Point{a, b} {
			assert.True(t, eye.X >= 0 && eye.X+5 <= 30, d.String())
			assert.True(t, eye.Y >= 0 && eye.Y+5 <= 30, d.String())
		}
	}
}

func TestGrid(t *testing.T) {
	g := Square(25)

	assert.Equal(t, 625, g.Cells())
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 24, Y: 24}))
	assert.False(t, g.Contains(Point{X: -1, Y: 3}))
	assert.False(t, g.Contains(Point{X: 3, Y: 25}))
}

func TestContainsPoint(t *testing.T) {
	body := []Point{{X: 6, Y: 9}, {X: 5, Y: 9}}

	assert.True(t, ContainsPoint(body, Point{X: 5, Y: 9}))
	assert.False(t, ContainsPoint(body, Point{X: 4, Y: 9}))
	assert.False(t, ContainsPoint(nil, Point{}))
	assert.Equal(t, Point{X: 7, Y: 8}, Point{X: 6, Y: 9}.Add(Point{X: 1, Y: -1}))
}
