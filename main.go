package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/rng"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	env := config.LoadEnv()

	logFile := setupLogging(env.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(config.Default(), env); err != nil {
		log.Printf("[APP] [FATAL] %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, env config.Env) error {
	rl.SetTraceLogLevel(rl.LogWarning)

	size := int32(cfg.WindowSize())
	rl.InitWindow(size, size, cfg.Title)
	defer rl.CloseWindow()

	if err := ui.InitAudio(); err != nil {
		return err
	}
	defer ui.CloseAudio()

	assets, err := ui.LoadAssets(env.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}
	defer assets.Unload()

	rl.SetTargetFPS(cfg.TargetFPS)

	g, err := game.NewGame(cfg, ui.Clock{}, ui.Keyboard{}, ui.NewSpeaker(assets), rng.New(uint64(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(cfg, assets)
	for !rl.WindowShouldClose() {
		g.HandleInput()
		renderer.Draw(g)
	}

	stats := g.GetStats()
	log.Printf("[APP] [INFO] session closed: games=%d best=%d avg=%.2f",
		stats.GetGamesPlayed(), stats.GetHighScore(), stats.GetAverageScore())
	return nil
}
