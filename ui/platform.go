package ui

import (
	"time"

	"snake-classic/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCodes = map[game.Key]int32{
	game.KeyUp:      rl.KeyUp,
	game.KeyDown:    rl.KeyDown,
	game.KeyLeft:    rl.KeyLeft,
	game.KeyRight:   rl.KeyRight,
	game.KeyRestart: rl.KeyEnter,
}

// Clock reads raylib's timer, which starts when the window opens.
type Clock struct{}

func (Clock) Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// Keyboard reports raylib key presses for the game's keys.
type Keyboard struct{}

func (Keyboard) IsKeyPressed(key game.Key) bool {
	code, ok := keyCodes[key]
	if !ok {
		return false
	}
	return rl.IsKeyPressed(code)
}

// Speaker plays the loaded sound effects.
type Speaker struct {
	sounds map[game.Sound]rl.Sound
}

func NewSpeaker(assets *Assets) *Speaker {
	return &Speaker{
		sounds: map[game.Sound]rl.Sound{
			game.SoundEat:  assets.EatSound,
			game.SoundWall: assets.WallSound,
		},
	}
}

func (s *Speaker) Play(sound game.Sound) {
	if snd, ok := s.sounds[sound]; ok {
		rl.PlaySound(snd)
	}
}
