// Package config loads star control descriptions from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/starrating"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// File describes one control and the canvas it is drawn on.
type File struct {
	Rating           float64 `toml:"rating" yaml:"rating"`
	Spacing          float64 `toml:"spacing" yaml:"spacing"`
	InnerRadiusRatio float64 `toml:"inner_radius_ratio" yaml:"inner_radius_ratio"`
	PointCount       int     `toml:"point_count" yaml:"point_count"`
	Direction        string  `toml:"direction" yaml:"direction"`

	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	FullColor  string `toml:"full_color" yaml:"full_color"`
	EmptyColor string `toml:"empty_color" yaml:"empty_color"`
	Background string `toml:"background" yaml:"background"`

	// Locale selects number formatting for captions, e.g. "de" or "en-US".
	Locale string `toml:"locale" yaml:"locale"`
}

// Defaults returns the built-in control description: 2.5 stars, spacing 5,
// five points at ratio 0.5, drawn on a 500x100 canvas.
func Defaults() File {
	return File{
		Rating:           float64(starrating.DefaultRating),
		Spacing:          starrating.DefaultSpacing,
		InnerRadiusRatio: starrating.DefaultInnerRadiusRatio,
		PointCount:       starrating.DefaultPointCount,
		Direction:        starrating.LeftToRight.String(),
		Width:            500,
		Height:           100,
		Locale:           "en",
	}
}

// Load reads path on top of Defaults. Keys missing from the file keep their
// default values. The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (File, error) {
	f := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return File{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Validate checks canvas size, colours and the control configuration.
func (f File) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", f.Width, f.Height)
	}
	for name, c := range map[string]string{
		"full_color":  f.FullColor,
		"empty_color": f.EmptyColor,
		"background":  f.Background,
	} {
		if c != "" && !validHex(c) {
			return fmt.Errorf("%s: invalid hex colour %q", name, c)
		}
	}
	cfg, err := f.Config()
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// Config returns the starrating configuration described by the file.
func (f File) Config() (starrating.Config, error) {
	dir, err := starrating.ParseDirection(f.Direction)
	if err != nil {
		return starrating.Config{}, err
	}
	return starrating.Config{
		Spacing: f.Spacing,
		Shape: starrating.StarShape{
			Points:     f.PointCount,
			InnerRatio: f.InnerRadiusRatio,
		},
		Direction: dir,
	}, nil
}

// Options converts the file into controller options.
func (f File) Options() ([]starrating.Option, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}
	return []starrating.Option{
		starrating.WithRating(f.Rating),
		starrating.WithConfig(cfg),
	}, nil
}

// Palette returns DefaultPalette with the colours set in the file.
func (f File) Palette() starrating.Palette {
	p := starrating.DefaultPalette()
	if f.FullColor != "" {
		p.Full = gg.Hex(f.FullColor)
	}
	if f.EmptyColor != "" {
		p.Empty = gg.Hex(f.EmptyColor)
	}
	if f.Background != "" {
		p.Background = gg.Hex(f.Background)
	}
	return p
}

// validHex accepts RGB, RGBA, RRGGBB and RRGGBBAA with an optional '#'.
func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
