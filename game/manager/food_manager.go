package manager

import (
	"errors"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// ErrNoFreeCell is returned when every cell of the grid is covered by the snake.
var ErrNoFreeCell = errors.New("no free cell left for food")

// RandomSource yields uniform integers in [min, max], both inclusive.
type RandomSource interface {
	UniformInt(min, max int) int
}

type FoodManager struct {
	grid        types.Grid
	rng         RandomSource
	maxAttempts int
}

// NewFoodManager places food on grid using rng. After maxAttempts rejected
// draws it stops sampling blindly and picks among the free cells directly.
func NewFoodManager(grid types.Grid, rng RandomSource, maxAttempts int) *FoodManager {
	return &FoodManager{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// RandomCell draws each axis independently over the whole grid.
func (fm *FoodManager) RandomCell() types.Point {
	return types.Point{
		X: fm.rng.UniformInt(0, fm.grid.Width-1),
		Y: fm.rng.UniformInt(0, fm.grid.Height-1),
	}
}

// GenerateFood returns a random cell that is not part of body.
func (fm *FoodManager) GenerateFood(body []types.Point) (types.Point, error) {
	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		food := fm.RandomCell()
		if !types.ContainsPoint(body, food) {
			return food, nil
		}
	}

	free := fm.freeCells(body)
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	return free[fm.rng.UniformInt(0, len(free)-1)], nil
}

// Spawn creates a new food item away from body.
func (fm *FoodManager) Spawn(body []types.Point) (*entity.Food, error) {
	pos, err := fm.GenerateFood(body)
	if err != nil {
		return nil, err
	}
	return entity.NewFood(pos), nil
}

// Relocate moves food to a new free cell. Food keeps its position on error.
func (fm *FoodManager) Relocate(food *entity.Food, body []types.Point) error {
	pos, err := fm.GenerateFood(body)
	if err != nil {
		return err
	}
	food.Pos = pos
	return nil
}

func (fm *FoodManager) freeCells(body []types.Point) []types.Point {
	occupied := make(map[types.Point]struct{}, len(body))
	for _, part := range body {
		occupied[part] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
