package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"lifehistory/life"
	"lifehistory/ui"
)

// Config holds the startup settings.
type Config struct {
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
	CellSize int     `json:"cell_size"`
	Density  float64 `json:"density"`
	SpeedMS  int     `json:"speed_ms"`
	Palette  string  `json:"palette"`
	Seed     int64   `json:"seed"` // 0 seeds from the clock
	Terminal bool    `json:"terminal"`
}

func DefaultConfig() Config {
	return Config{
		Cols:     50,
		Rows:     50,
		CellSize: 10,
		Density:  0.5,
		SpeedMS:  100,
		Palette:  "Classic",
	}
}

// LoadConfig reads a JSON file over the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse %s: %w", filename, err)
	}
	return config, nil
}

// ParseConfig applies an optional -config file and then any flags set on
// the command line.
func ParseConfig(args []string) (Config, error) {
	cfg := DefaultConfig()
	flags := cfg

	fs := flag.NewFlagSet("lifehistory", flag.ContinueOnError)
	path := fs.String("config", "", "JSON config file")
	fs.IntVar(&flags.Cols, "cols", cfg.Cols, "grid width in cells")
	fs.IntVar(&flags.Rows, "rows", cfg.Rows, "grid height in cells")
	fs.IntVar(&flags.CellSize, "cell", cfg.CellSize, "cell size in pixels")
	fs.Float64Var(&flags.Density, "density", cfg.Density, "probability a seeded cell is alive")
	fs.IntVar(&flags.SpeedMS, "speed", cfg.SpeedMS, "milliseconds between generations while playing")
	fs.StringVar(&flags.Palette, "palette", cfg.Palette, "colour palette")
	fs.Int64Var(&flags.Seed, "seed", cfg.Seed, "random seed, 0 for time based")
	fs.BoolVar(&flags.Terminal, "tui", cfg.Terminal, "run in the terminal instead of a window")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *path != "" {
		loaded, err := LoadConfig(*path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cols":
			cfg.Cols = flags.Cols
		case "rows":
			cfg.Rows = flags.Rows
		case "cell":
			cfg.CellSize = flags.CellSize
		case "density":
			cfg.Density = flags.Density
		case "speed":
			cfg.SpeedMS = flags.SpeedMS
		case "palette":
			cfg.Palette = flags.Palette
		case "seed":
			cfg.Seed = flags.Seed
		case "tui":
			cfg.Terminal = flags.Terminal
		}
	})
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Cols < 1 || c.Rows < 1:
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Cols, c.Rows)
	case c.CellSize < 1:
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density must be within [0,1], got %v", c.Density)
	case c.SpeedMS < 1:
		return fmt.Errorf("speed must be positive, got %d", c.SpeedMS)
	}
	if _, ok := ui.PaletteByName(c.Palette); !ok {
		return fmt.Errorf("unknown palette %q, want one of %v", c.Palette, ui.PaletteNames())
	}
	return nil
}

func (c Config) Settings() life.Settings {
	return life.Settings{Cols: c.Cols, Rows: c.Rows, CellSize: c.CellSize, Density: c.Density}
}

func (c Config) Speed() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}
