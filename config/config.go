package config

import (
	"image/color"
	"time"
)

// Config carries every fixed value of the game. It is built once by Default
// and handed by pointer to the components that need it; nothing mutates it.
type Config struct {
	CellSize  int // Pixel size of one grid cell
	CellCount int // Cells per side of the square board
	Offset    int // Pixel margin between window edge and board

	TickInterval time.Duration // Minimum time between two simulation ticks
	TargetFPS    int32

	Title string

	Background color.RGBA
	Foreground color.RGBA

	// InitialBody is the head-first starting layout of the snake.
	InitialBody [][2]int

	// FoodPlacementAttempts bounds the random draws before placement falls
	// back to scanning the free cells.
	FoodPlacementAttempts int
}

// Default returns the fixed game configuration.
func Default() *Config {
	return &Config{
		CellSize:              30,
		CellCount:             25,
		Offset:                75,
		TickInterval:          200 * time.Millisecond,
		TargetFPS:             60,
		Title:                 "Snake Game",
		Background:            color.RGBA{R: 173, G: 204, B: 96, A: 255},
		Foreground:            color.RGBA{R: 43, G: 51, B: 24, A: 255},
		InitialBody:           [][2]int{{6, 9}, {5, 9}, {4, 9}},
		FoodPlacementAttempts: 4096,
	}
}

// WindowSize is the side of the square window in pixels.
func (c *Config) WindowSize() int {
	return 2*c.Offset + c.CellSize*c.CellCount
}

// BoardSize is the side of the playable board in pixels.
func (c *Config) BoardSize() int {
	return c.CellSize * c.CellCount
}

// ScreenPos maps a grid coordinate to its top-left pixel.
func (c *Config) ScreenPos(gridCoord int) int {
	return c.Offset + gridCoord*c.CellSize
}
