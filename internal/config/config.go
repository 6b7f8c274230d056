package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"sketchlab/internal/geometry"
	"sketchlab/internal/logger"
)

// ConfigPath is the sketch config file, relative to the process working directory.
const ConfigPath = "config/sketch.yaml"

// Config holds the parameters of both sketches. Animation state is never stored here.
type Config struct {
	// Seed drives jitter noise and blob sampling. 0 picks a new seed every run.
	Seed     int64    `yaml:"seed"`
	LogFile  string   `yaml:"log_file"`
	ShowFPS  bool     `yaml:"show_fps"`
	ShowMem  bool     `yaml:"show_memalloc"`
	Wormhole Wormhole `yaml:"wormhole"`
	Lava     Lava     `yaml:"lava"`
}

// Wormhole configures the mesh, its reveal and how it is drawn.
type Wormhole struct {
	Throat       float32 `yaml:"throat_radius"`
	DepthMin     float32 `yaml:"depth_min"`
	DepthMax     float32 `yaml:"depth_max"`
	Longitudes   int     `yaml:"longitudes"`
	Depths       int     `yaml:"depths"`
	JitterStep   float32 `yaml:"jitter_step"`
	JitterScale  float32 `yaml:"jitter_scale"`
	FPS          int     `yaml:"fps"`
	TiltDegrees  float32 `yaml:"tilt_degrees"`
	Stroke       Color   `yaml:"stroke"`
	StrokeWeight float32 `yaml:"stroke_weight"`
	Background   Color   `yaml:"background"`
	ShowProgress bool    `yaml:"show_progress"`
}

// Surface returns the mesh geometry described by w.
func (w Wormhole) Surface() geometry.Surface {
	return geometry.Surface{
		Throat:     w.Throat,
		DepthMin:   w.DepthMin,
		DepthMax:   w.DepthMax,
		Longitudes: w.Longitudes,
		Depths:     w.Depths,
	}
}

// Lava configures the blob simulation.
type Lava struct {
	Blobs      int     `yaml:"blobs"`
	FPS        int     `yaml:"fps"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Trail      Color   `yaml:"trail"`
	Sway       float32 `yaml:"sway_frequency"`
	SpawnBelow float32 `yaml:"spawn_below"`
}

// Default returns the configuration of the original sketches.
func Default() Config {
	s := geometry.DefaultSurface()
	return Config{
		Seed:    0,
		LogFile: logger.LogFilePath,
		ShowFPS: false,
		ShowMem: false,
		Wormhole: Wormhole{
			Throat:       s.Throat,
			DepthMin:     s.DepthMin,
			DepthMax:     s.DepthMax,
			Longitudes:   s.Longitudes,
			Depths:       s.Depths,
			JitterStep:   0.1,
			JitterScale:  2,
			FPS:          25,
			TiltDegrees:  45,
			Stroke:       Color{R: 10, G: 50, B: 110, A: 200},
			StrokeWeight: 1.5,
			Background:   Color{A: 255},
			ShowProgress: true,
		},
		Lava: Lava{
			Blobs:      15,
			FPS:        60,
			Width:      960,
			Height:     720,
			Trail:      Color{R: 10, G: 10, B: 20, A: 20},
			Sway:       0.01,
			SpawnBelow: 50,
		},
	}
}

// Validate reports values the sketches cannot run with.
func (c Config) Validate() error {
	if err := c.Wormhole.Surface().Validate(); err != nil {
		return fmt.Errorf("wormhole: %w", err)
	}
	if c.Wormhole.FPS <= 0 {
		return fmt.Errorf("wormhole: fps must be > 0, got %d", c.Wormhole.FPS)
	}
	if c.Wormhole.StrokeWeight <= 0 {
		return fmt.Errorf("wormhole: stroke_weight must be > 0, got %g", c.Wormhole.StrokeWeight)
	}
	if c.Lava.Blobs < 0 {
		return fmt.Errorf("lava: blobs must be >= 0, got %d", c.Lava.Blobs)
	}
	if c.Lava.FPS <= 0 {
		return fmt.Errorf("lava: fps must be > 0, got %d", c.Lava.FPS)
	}
	if c.Lava.Width <= 0 || c.Lava.Height <= 0 {
		return fmt.Errorf("lava: size must be positive, got %dx%d", c.Lava.Width, c.Lava.Height)
	}
	return nil
}

// Load reads the config at path on top of Default(). A missing file yields Default()
// and does not create one. Invalid YAML or values are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Env variables read by ApplyEnv.
const (
	EnvSeed        = "SKETCH_SEED"
	EnvWormholeFPS = "SKETCH_WORMHOLE_FPS"
	EnvLavaFPS     = "SKETCH_LAVA_FPS"
	EnvLavaBlobs   = "SKETCH_LAVA_BLOBS"
)

// ApplyEnv overrides cfg from environment variables found by lookup (usually os.LookupEnv).
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvWormholeFPS, &cfg.Wormhole.FPS},
		{EnvLavaFPS, &cfg.Lava.FPS},
		{EnvLavaBlobs, &cfg.Lava.Blobs},
	}
	for _, e := range ints {
		v, ok := lookup(e.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = n
	}
	return cfg.Validate()
}
