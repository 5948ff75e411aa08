package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"snake-classic/config"
	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Direction keys in the order they are polled.
var directionKeys = []struct {
	key Key
	dir types.Direction
}{
	{KeyUp, types.Up},
	{KeyDown, types.Down},
	{KeyLeft, types.Left},
	{KeyRight, types.Right},
}

// Game owns the snake, the food and the score, and moves between the running
// and game over states.
type Game struct {
	Grid types.Grid

	cfg        *config.Config
	snake      *entity.Snake
	food       *entity.Food
	running    bool
	score      int
	lastUpdate time.Duration
	allowMove  bool // Re-armed on every tick, spent by one direction change

	clock Clock
	input InputSource
	audio AudioSink

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame builds a running game with the snake in its initial layout and the
// food on a free cell.
func NewGame(cfg *config.Config, clock Clock, input InputSource, audio AudioSink, rng RandomSource) (*Game, error) {
	grid := types.Square(cfg.CellCount)

	initial := make([]types.Point, len(cfg.InitialBody))
	for i, cell := range cfg.InitialBody {
		initial[i] = types.Point{X: cell[0], Y: cell[1]}
	}
	snake := entity.NewSnake(initial)

	foodMgr := manager.NewFoodManager(grid, rng, cfg.FoodPlacementAttempts)
	food, err := foodMgr.Spawn(snake.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to place initial food: %w", err)
	}

	g := &Game{
		Grid:         grid,
		cfg:          cfg,
		snake:        snake,
		food:         food,
		running:      true,
		clock:        clock,
		input:        input,
		audio:        audio,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(),
	}

	runID := g.stateMgr.StartRun(clock.Now())
	log.Printf("[GAME] [INFO] run %s started, food at (%d,%d)", runID, food.Pos.X, food.Pos.Y)
	return g, nil
}

// HandleInput is called once per frame. While running it advances the
// simulation when a tick interval has elapsed and then admits at most one
// direction change; during game over it waits for the restart key.
func (g *Game) HandleInput() {
	if !g.running {
		if g.input.IsKeyPressed(KeyRestart) {
			g.restart()
		}
		return
	}

	now := g.clock.Now()
	if now-g.lastUpdate >= g.cfg.TickInterval {
		g.lastUpdate = now
		g.Update()
		g.allowMove = true
	}

	// The tick may have ended the run; the reset snake keeps its direction.
	if !g.running {
		return
	}

	for _, dk := range directionKeys {
		if !g.input.IsKeyPressed(dk.key) || !g.allowMove {
			continue
		}
		if g.snake.SetDirection(dk.dir) {
			g.allowMove = false
			break
		}
	}
}

// Update performs one tick: advance, eat, then wall and self collisions.
func (g *Game) Update() {
	if !g.running {
		return
	}

	g.snake.Advance()
	g.stateMgr.Tick()

	if !g.checkCollisionWithFood() {
		return
	}

	if collision := g.collisionMgr.CheckCollision(g.snake); collision != manager.NoCollision {
		g.gameOver(collision)
	}
}

// checkCollisionWithFood handles an eat event and reports whether the run
// is still going.
func (g *Game) checkCollisionWithFood() bool {
	head := g.snake.GetHead()
	if !g.collisionMgr.IsFoodCollision(head, g.food) {
		return true
	}

	err := g.foodMgr.Relocate(g.food, g.snake.Body)
	g.snake.Grow()
	g.score++
	g.audio.Play(SoundEat)

	if errors.Is(err, manager.ErrNoFreeCell) {
		log.Printf("[GAME] [WARN] run %s filled the board: %v", g.stateMgr.RunID(), err)
		g.gameOver(manager.BoardFull)
		return false
	}
	return true
}

// gameOver ends the run and immediately rebuilds the initial state, leaving
// the game paused until restart.
func (g *Game) gameOver(cause manager.CollisionType) {
	record := g.stateMgr.EndRun(g.score, cause, g.clock.Now())
	log.Printf("[GAME] [INFO] run %s over: cause=%s score=%d ticks=%d",
		record.ID, cause, record.Score, record.Ticks)

	g.snake.Reset()
	if err := g.foodMgr.Relocate(g.food, g.snake.Body); err != nil {
		log.Printf("[GAME] [ERROR] failed to relocate food after game over: %v", err)
	}
	g.running = false
	g.score = 0
	g.audio.Play(SoundWall)
}

func (g *Game) restart() {
	g.running = true
	runID := g.stateMgr.StartRun(g.clock.Now())
	log.Printf("[GAME] [INFO] run %s started", runID)
}

// Running reports whether a run is in progress.
func (g *Game) Running() bool {
	return g.running
}

// Score is the number of food items eaten in the current run.
func (g *Game) Score() int {
	return g.score
}

// GetSnake returns the live snake; callers must not mutate it.
func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the current food item.
func (g *Game) GetFood() *entity.Food {
	return g.food
}

// GetStats returns the session statistics.
func (g *Game) GetStats() *manager.StateManager {
	return g.stateMgr
}
