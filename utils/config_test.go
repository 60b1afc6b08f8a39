package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 10, "renderer": "window", "seed_file": "glider.txt", "frame_rate": 1000000}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if config.Width != 10 || config.Renderer != RendererWindow || config.SeedFile != "glider.txt" {
		t.Fatalf("file values not applied: %+v", config)
	}
	if config.FrameRate != time.Millisecond {
		t.Fatalf("frame rate = %v, expected 1ms", config.FrameRate)
	}
	if config.Height != DefaultConfig().Height {
		t.Fatalf("missing keys should keep defaults, height = %d", config.Height)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file should report not-exist, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil || os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("malformed file should fail to decode, got %v", err)
	}
}

func TestBindFlags(t *testing.T) {
	config := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.Bind(fs)

	args := []string{"-zoom", "2.5", "-seed-file", "x.txt", "-workers", "3", "-center-x", "-7"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if config.Zoom != 2.5 || config.SeedFile != "x.txt" || config.Workers != 3 || config.CenterX != -7 {
		t.Fatalf("flags not applied: %+v", config)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	mutations := map[string]func(*Config){
		"width":    func(c *Config) { c.Width = 0 },
		"window":   func(c *Config) { c.WindowHeight = -1 },
		"zoom":     func(c *Config) { c.Zoom = 0 },
		"density":  func(c *Config) { c.RandomDensity = 1.5 },
		"renderer": func(c *Config) { c.Renderer = "sdl" },
	}
	for name, mutate := range mutations {
		config := DefaultConfig()
		mutate(&config)
		if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}
