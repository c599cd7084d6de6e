package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifeterm/internal/config"
	"github.com/san-kum/lifeterm/internal/life"
)

func addBoardFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().IntVar(&width, "width", def.Width, "board width in cells")
	cmd.Flags().IntVar(&height, "height", def.Height, "board height in cells")
	cmd.Flags().IntVar(&margin, "margin", def.Margin, "extra rows and columns around the board")
	cmd.Flags().StringVar(&interval, "interval", def.Interval.String(), "pause between generations")
	cmd.Flags().Float64Var(&density, "density", def.Density, "probability a random cell starts alive")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&pattern, "pattern", def.Pattern, "seed pattern")
	cmd.Flags().StringVar(&backend, "backend", def.Backend, "terminal backend (ansi, tcell)")
	cmd.Flags().StringVar(&alive, "alive", def.Palette.Alive, "alive cell color (0-255 or #rrggbb)")
	cmd.Flags().StringVar(&background, "background", def.Palette.Background, "background color (0-255 or #rrggbb)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges defaults, the preset, the config file and the flags
// the user set, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("margin") {
		cfg.Margin = margin
	}
	if flags.Changed("interval") {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval: %w", err)
		}
		cfg.Interval = d
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("alive") {
		cfg.Palette.Alive = alive
	}
	if flags.Changed("background") {
		cfg.Palette.Background = background
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func seedGrid(cfg *config.Config) (*life.Grid, error) {
	log.Printf("seeding %s %dx%d, seed %d", cfg.Pattern, cfg.Width, cfg.Height, cfg.Seed)
	return life.Seed(cfg.Pattern, cfg.Width, cfg.Height, cfg.Density, rand.New(rand.NewSource(cfg.Seed)))
}
