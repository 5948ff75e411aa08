package types

// Point is one grid cell.
type Point struct {
	X, Y int
}

// Add returns the cell reached by moving p by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Square returns a grid with the same number of cells on both axes.
func Square(cellCount int) Grid {
	return Grid{Width: cellCount, Height: cellCount}
}

// Cells is the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// ContainsPoint reports whether body holds p.
func ContainsPoint(body []Point, p Point) bool {
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}
