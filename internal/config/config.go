package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	Scene     string `json:"scene"`
	Model     string `json:"model"`
	Texture   string `json:"texture"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Supersample int      `json:"supersample"`
	Frames      int      `json:"frames"`
	FOV         float32  `json:"fov"`
	Background  [4]uint8 `json:"background"`
	Workers     int      `json:"workers"`
}

// Load reads a JSON config file and returns Config. Relative paths in
// the file are taken against the file's directory unless base_dir is set.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file. Paths given on the command line
	// are relative to the working directory, not BaseDir.
	if flags.Scene != "" {
		c.Scene = abs(flags.Scene)
	}
	if flags.Model != "" {
		c.Model = abs(flags.Model)
	}
	if flags.Texture != "" {
		c.Texture = abs(flags.Texture)
	}
	if flags.OutputDir != "" {
		c.OutputDir = abs(flags.OutputDir)
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		c.Scene = join(c.BaseDir, c.Scene)
		c.Model = join(c.BaseDir, c.Model)
		c.Texture = join(c.BaseDir, c.Texture)
		c.OutputDir = join(c.BaseDir, c.OutputDir)
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		c.FOV = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that cannot be rendered.
func (c *Config) Validate() error {
	if c.Scene == "" && c.Model == "" {
		return fmt.Errorf("config: need a scene or a model")
	}
	if c.Scene != "" && c.Model != "" {
		return fmt.Errorf("config: scene and model are exclusive")
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene       string
	Model       string
	Texture     string
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Frames      int
	FOV         float32
	Workers     int
}

func join(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func abs(p string) string {
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return p
}
