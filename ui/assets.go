package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrAudioDevice = errors.New("audio device unavailable")

// Assets owns the texture and sounds loaded for one window.
type Assets struct {
	FoodTexture rl.Texture2D
	EatSound    rl.Sound
	WallSound   rl.Sound
}

type assetPaths struct {
	food string
	eat  string
	wall string
}

func resolveAssetPaths(dir string) assetPaths {
	return assetPaths{
		food: filepath.Join(dir, "images", "food.png"),
		eat:  filepath.Join(dir, "sounds", "eat.mp3"),
		wall: filepath.Join(dir, "sounds", "wall.mp3"),
	}
}

// checkFiles fails on the first path that is missing or not a regular file.
func checkFiles(paths ...string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("asset %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("asset %s: not a regular file", path)
		}
	}
	return nil
}

// InitAudio opens the audio device. Call CloseAudio when done.
func InitAudio() error {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return ErrAudioDevice
	}
	return nil
}

func CloseAudio() {
	rl.CloseAudioDevice()
}

// LoadAssets loads the food texture and sound effects from dir. The window
// and the audio device must already be open.
func LoadAssets(dir string) (*Assets, error) {
	paths := resolveAssetPaths(dir)
	if err := checkFiles(paths.food, paths.eat, paths.wall); err != nil {
		return nil, err
	}

	assets := &Assets{
		FoodTexture: rl.LoadTexture(paths.food),
	}
	if !rl.IsTextureReady(assets.FoodTexture) {
		return nil, fmt.Errorf("failed to load texture %s", paths.food)
	}

	assets.EatSound = rl.LoadSound(paths.eat)
	if !rl.IsSoundReady(assets.EatSound) {
		rl.UnloadTexture(assets.FoodTexture)
		return nil, fmt.Errorf("failed to load sound %s", paths.eat)
	}

	assets.WallSound = rl.LoadSound(paths.wall)
	if !rl.IsSoundReady(assets.WallSound) {
		rl.UnloadSound(assets.EatSound)
		rl.UnloadTexture(assets.FoodTexture)
		return nil, fmt.Errorf("failed to load sound %s", paths.wall)
	}

	return assets, nil
}

func (a *Assets) Unload() {
	rl.UnloadSound(a.WallSound)
	rl.UnloadSound(a.EatSound)
	rl.UnloadTexture(a.FoodTexture)
}
