// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPalette is the fixed ordered color cycle used for region assignment
// when the configuration does not provide its own.
var DefaultPalette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231", "#911eb4",
	"#46f0f0", "#f032e6", "#bcf60c", "#008080", "#9a6324",
}

// Center is the default map center in WGS84 degrees.
type Center struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

// Config represents the root configuration file structure.
type Config struct {
	Title       string   `yaml:"title,omitempty" json:"title"`
	Attribution string   `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	TileURL     string   `yaml:"tile_url,omitempty" json:"tile_url"`
	Dataset     string   `yaml:"dataset,omitempty" json:"-"`
	Center      Center   `yaml:"center,omitempty" json:"center"`
	Zoom        int      `yaml:"zoom,omitempty" json:"zoom"`
	Palette     []string `yaml:"palette,omitempty" json:"palette"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if len(cfg.Palette) < 2 {
		return nil, fmt.Errorf("palette must contain at least 2 colors, got %d", len(cfg.Palette))
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Historical Places"
	}
	if c.TileURL == "" {
		c.TileURL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	}
	if c.Attribution == "" {
		c.Attribution = "&copy; OpenStreetMap contributors"
	}
	if c.Dataset == "" {
		c.Dataset = "data/places.geojson"
	}
	if c.Zoom <= 0 {
		c.Zoom = 6
	}
	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), DefaultPalette...)
	}
}
