package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// RendererTerminal draws the grid as text in the terminal
	RendererTerminal = "terminal"
	// RendererWindow opens a window (requires the ebiten build tag)
	RendererWindow = "window"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	SeedFile            string        `json:"seed_file"`
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	RandomDensity       float64       `json:"random_density"`
	Seed                uint64        `json:"seed"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	AutoRestart         bool          `json:"auto_restart"`
	Workers             int           `json:"workers"`
	UseFramePool        bool          `json:"use_frame_pool"`
	Renderer            string        `json:"renderer"`
	WindowWidth         int           `json:"window_width"`
	WindowHeight        int           `json:"window_height"`
	Zoom                float64       `json:"zoom"`
	CenterX             int           `json:"center_x"`
	CenterY             int           `json:"center_y"`
	TPS                 int           `json:"tps"`
	Snapshot            string        `json:"snapshot"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		RandomDensity:       0.15,
		Seed:                42,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		StagnationThreshold: 5,
		AutoRestart:         false,
		UseFramePool:        true,
		Renderer:            RendererTerminal,
		WindowWidth:         800,
		WindowHeight:        600,
		Zoom:                5,
		TPS:                 60,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override file values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.SeedFile, "seed-file", c.SeedFile, "seed file with #P blocks (random soup when empty)")
	fs.IntVar(&c.Width, "width", c.Width, "width of the random soup and terminal viewport, in cells")
	fs.IntVar(&c.Height, "height", c.Height, "height of the random soup and terminal viewport, in cells")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "random soup density")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random soup seed")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between terminal frames")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = unlimited)")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stagnant generations before stopping or restarting")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "rebuild generation 0 on extinction or stagnation")
	fs.IntVar(&c.Workers, "workers", c.Workers, "step workers (0 = one per CPU)")
	fs.BoolVar(&c.UseFramePool, "frame-pool", c.UseFramePool, "reuse pixel buffers between frames")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "terminal or window")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "initial window width in pixels")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "initial window height in pixels")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "pixels per cell")
	fs.IntVar(&c.CenterX, "center-x", c.CenterX, "camera center x")
	fs.IntVar(&c.CenterY, "center-y", c.CenterY, "camera center y")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window simulation steps per second")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "write the last terminal generation to this PNG file")
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size %dx%d", c.Width, c.Height)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] window %dx%d", c.WindowWidth, c.WindowHeight)
	case c.Zoom <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] zoom %v", c.Zoom)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density %v", c.RandomDensity)
	case c.Renderer != RendererTerminal && c.Renderer != RendererWindow:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}
