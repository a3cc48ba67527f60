package engine

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prisma/engine/core"
)

// OrthoVolume is the orthographic view box handed to the scene's
// projection.
type OrthoVolume struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
	Near   float64 `toml:"near"`
	Far    float64 `toml:"far"`
}

// ApplicationConfig is the renderer's startup configuration, loaded from a
// TOML file next to the binary.
type ApplicationConfig struct {
	Name        string      `toml:"name"`
	StartWidth  int         `toml:"width"`
	StartHeight int         `toml:"height"`
	LogLevel    string      `toml:"log_level"`
	AssetsDir   string      `toml:"assets_dir"`
	FontPath    string      `toml:"font"`
	Background  []float64   `toml:"background"` // hue, saturation, lightness, alpha
	Ortho       OrthoVolume `toml:"ortho"`
	Meshes      []string    `toml:"meshes"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Prisma Renderer",
		StartWidth:  800,
		StartHeight: 600,
		LogLevel:    "info",
		AssetsDir:   "assets",
		Background:  []float64{220, 15, 12, 1},
		Ortho:       OrthoVolume{Left: -2, Right: 2, Bottom: -1.5, Top: 1.5, Near: 0.1, Far: 100},
	}
}

// LoadApplicationConfig reads a TOML config file over the defaults. A
// missing file is not an error; the defaults are returned unchanged.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		core.LogDebug("no config at '%s', using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		core.LogError("parsing config '%s': %v", path, err)
		return nil, err
	}
	if cfg.StartWidth <= 0 || cfg.StartHeight <= 0 {
		return nil, errors.New("config: width and height must be positive")
	}
	return cfg, nil
}
