package game

import (
	"time"

	"snake-classic/game/manager"
)

// Key identifies one of the inputs the game reacts to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyRestart
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundWall
)

// Clock returns monotonic time elapsed since some fixed origin.
type Clock interface {
	Now() time.Duration
}

// InputSource reports keys on the frame they went down.
type InputSource interface {
	IsKeyPressed(key Key) bool
}

// AudioSink plays sound effects without blocking.
type AudioSink interface {
	Play(sound Sound)
}

// RandomSource yields uniform integers in [min, max], both inclusive.
type RandomSource = manager.RandomSource
