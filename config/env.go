package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envAssetsDir = "SNAKE_ASSETS_DIR"
	envDebug     = "SNAKE_DEBUG"

	defaultAssetsDir = "assets"
)

// Env holds the settings that do not affect gameplay.
type Env struct {
	AssetsDir string // Directory containing images/ and sounds/
	Debug     bool   // Write the log to logs/snake.log
}

// LoadEnv reads the process environment, seeded from a .env file when one is
// present in the working directory.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] [WARN] .env file could not be loaded: %v", err)
	}
	return envFromLookup(os.LookupEnv)
}

func envFromLookup(lookup func(string) (string, bool)) Env {
	env := Env{
		AssetsDir: defaultAssetsDir,
	}

	if dir, ok := lookup(envAssetsDir); ok && dir != "" {
		env.AssetsDir = dir
	}

	if raw, ok := lookup(envDebug); ok && raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("[CONFIG] [WARN] %s must be a boolean, got %q", envDebug, raw)
		} else {
			env.Debug = debug
		}
	}

	return env
}
