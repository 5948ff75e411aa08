package ui

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCodes(t *testing.T) {
	assert.Equal(t, int32(rl.KeyUp), keyCodes[game.KeyUp])
	assert.Equal(t, int32(rl.KeyDown), keyCodes[game.KeyDown])
	assert.Equal(t, int32(rl.KeyLeft), keyCodes[game.KeyLeft])
	assert.Equal(t, int32(rl.KeyRight), keyCodes[game.KeyRight])
	assert.Equal(t, int32(rl.KeyEnter), keyCodes[game.KeyRestart])
	assert.Len(t, keyCodes, 5)
}

func TestResolveAssetPaths(t *testing.T) {
	paths := resolveAssetPaths("assets")

	assert.Equal(t, filepath.Join("assets", "images", "food.png"), paths.food)
	assert.Equal(t, filepath.Join("assets", "sounds", "eat.mp3"), paths.eat)
	assert.Equal(t, filepath.Join("assets", "sounds", "wall.mp3"), paths.wall)
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "food.png")
	require.NoError(t, os.WriteFile(present, []byte("png"), 0644))

	assert.NoError(t, checkFiles(present))

	err := checkFiles(present, filepath.Join(dir, "eat.mp3"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.Error(t, checkFiles(dir), "directories are rejected")
}

func TestLoadAssetsMissingDir(t *testing.T) {
	_, err := LoadAssets(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestCellGeometry(t *testing.T) {
	r := NewRenderer(config.Default(), &Assets{})

	assert.Equal(t, rl.NewRectangle(75, 75, 30, 30), r.cellRect(types.Point{X: 0, Y: 0}))
	assert.Equal(t, rl.NewRectangle(75+6*30, 75+9*30, 30, 30), r.cellRect(types.Point{X: 6, Y: 9}))

	eye, _ := types.Right.EyeOffsets()
	assert.Equal(t, rl.NewRectangle(75+6*30+20, 75+9*30+5, 5, 5), r.eyeRect(types.Point{X: 6, Y: 9}, eye))
}

func TestRendererColors(t *testing.T) {
	r := NewRenderer(config.Default(), &Assets{})

	assert.Equal(t, rl.NewColor(173, 204, 96, 255), r.background)
	assert.Equal(t, rl.NewColor(43, 51, 24, 255), r.foreground)
}
