package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadApplicationConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StartWidth != 800 || cfg.StartHeight != 600 {
		t.Errorf("defaults not applied: %dx%d", cfg.StartWidth, cfg.StartHeight)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q", cfg.LogLevel)
	}
}

func TestLoadApplicationConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prisma.toml")
	content := `
name = "Demo"
width = 640
height = 480
log_level = "debug"
meshes = ["meshes/cube.mesh"]
background = [200, 40, 20, 1]

[ortho]
left = -4.0
right = 4.0
bottom = -3.0
top = 3.0
near = 0.1
far = 50.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadApplicationConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "Demo" || cfg.StartWidth != 640 || cfg.StartHeight != 480 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Ortho.Right != 4 || cfg.Ortho.Far != 50 {
		t.Errorf("ortho volume not applied: %+v", cfg.Ortho)
	}
	if len(cfg.Meshes) != 1 {
		t.Errorf("meshes = %v", cfg.Meshes)
	}
	// Unset keys keep their defaults.
	if cfg.AssetsDir != "assets" {
		t.Errorf("assets_dir default lost: %q", cfg.AssetsDir)
	}
}

func TestLoadApplicationConfigRejectsBadDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prisma.toml")
	if err := os.WriteFile(path, []byte("width = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadApplicationConfig(path); err == nil {
		t.Fatal("expected an error for negative width")
	}
}

func TestLoadApplicationConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prisma.toml")
	if err := os.WriteFile(path, []byte("width = = 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadApplicationConfig(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
