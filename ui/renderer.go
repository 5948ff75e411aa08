package ui

import (
	"fmt"
	"image/color"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize      = 40
	hintFontSize  = 20
	borderPadding = 5 // Gap between board and frame
	eyeSize       = 5
	roundness     = 0.5
	segments      = 6
)

type Renderer struct {
	cfg        *config.Config
	assets     *Assets
	background rl.Color
	foreground rl.Color
}

func NewRenderer(cfg *config.Config, assets *Assets) *Renderer {
	return &Renderer{
		cfg:        cfg,
		assets:     assets,
		background: toColor(cfg.Background),
		foreground: toColor(cfg.Foreground),
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw renders one frame of g.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(r.background)
	r.drawFrame()
	r.drawHUD(g)
	r.drawFood(g.GetFood().Pos)
	r.drawSnake(g.GetSnake().Body, g.GetSnake().Direction)
}

func (r *Renderer) drawFrame() {
	offset := float32(r.cfg.Offset - borderPadding)
	side := float32(r.cfg.BoardSize() + 2*borderPadding)
	rl.DrawRectangleLinesEx(rl.NewRectangle(offset, offset, side, side), borderPadding, r.foreground)
}

func (r *Renderer) drawHUD(g *game.Game) {
	left := int32(r.cfg.Offset - borderPadding)
	bottom := int32(r.cfg.Offset + r.cfg.BoardSize() + 10)

	rl.DrawText("snake", left, 20, fontSize, r.foreground)
	rl.DrawText(fmt.Sprintf("%d", g.Score()), left, bottom, fontSize, r.foreground)

	if g.Running() {
		return
	}

	right := int32(r.cfg.Offset + r.cfg.BoardSize() + borderPadding)
	hint := "press ENTER to play again"
	rl.DrawText(hint, right-rl.MeasureText(hint, hintFontSize), bottom, hintFontSize, r.foreground)

	best := fmt.Sprintf("best %d", g.GetStats().GetHighScore())
	rl.DrawText(best, right-rl.MeasureText(best, hintFontSize), bottom+hintFontSize+2, hintFontSize, r.foreground)
}

func (r *Renderer) drawFood(pos types.Point) {
	rl.DrawTexture(r.assets.FoodTexture,
		int32(r.cfg.ScreenPos(pos.X)),
		int32(r.cfg.ScreenPos(pos.Y)),
		rl.White)
}

func (r *Renderer) drawSnake(body []types.Point, direction types.Direction) {
	for i, segment := range body {
		rl.DrawRectangleRounded(r.cellRect(segment), roundness, segments, r.foreground)

		if i == 0 {
			eye1, eye2 := direction.EyeOffsets()
			rl.DrawRectangleRounded(r.eyeRect(segment, eye1), roundness, segments, r.background)
			rl.DrawRectangleRounded(r.eyeRect(segment, eye2), roundness, segments, r.background)
		}
	}
}

// cellRect is the pixel rectangle covered by cell p.
func (r *Renderer) cellRect(p types.Point) rl.Rectangle {
	size := float32(r.cfg.CellSize)
	return rl.NewRectangle(
		float32(r.cfg.ScreenPos(p.X)),
		float32(r.cfg.ScreenPos(p.Y)),
		size, size)
}

func (r *Renderer) eyeRect(head, eye types.Point) rl.Rectangle {
	return rl.NewRectangle(
		float32(r.cfg.ScreenPos(head.X)+eye.X),
		float32(r.cfg.ScreenPos(head.Y)+eye.Y),
		eyeSize, eyeSize)
}
