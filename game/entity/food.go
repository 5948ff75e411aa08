package entity

import "snake-classic/game/types"

// Food is the single item on the board.
type Food struct {
	Pos types.Point
}

func NewFood(pos types.Point) *Food {
	return &Food{Pos: pos}
}

// IsEatenBy reports whether head sits on the food.
func (f *Food) IsEatenBy(head types.Point) bool {
	return f.Pos == head
}
