package config

import "sort"

// Presets override only the fields they set; Apply copies them over a base.
var Presets = map[string]*Config{
	"classic": {
		Width: DefaultWidth, Height: DefaultHeight, Pattern: "random", Density: DefaultDensity,
	},
	"wide": {
		Width: 120, Height: 40, Pattern: "random", Density: 0.35,
	},
	"stripes": {
		Width: DefaultWidth, Height: DefaultHeight, Pattern: "stripes",
	},
	"blinker": {
		Width: 9, Height: 9, Pattern: "blinker",
	},
	"glider": {
		Width: 20, Height: 20, Pattern: "glider",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the non-zero fields of p onto c.
func (c *Config) Apply(p *Config) {
	if p.Width != 0 {
		c.Width = p.Width
	}
	if p.Height != 0 {
		c.Height = p.Height
	}
	if p.Margin != 0 {
		c.Margin = p.Margin
	}
	if p.Interval != 0 {
		c.Interval = p.Interval
	}
	if p.Density != 0 {
		c.Density = p.Density
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	if p.Pattern != "" {
		c.Pattern = p.Pattern
	}
	if p.Backend != "" {
		c.Backend = p.Backend
	}
	if p.Palette.Alive != "" {
		c.Palette.Alive = p.Palette.Alive
	}
	if p.Palette.Background != "" {
		c.Palette.Background = p.Palette.Background
	}
	if p.Generations != 0 {
		c.Generations = p.Generations
	}
}
