// Package config loads the optional sketch.yaml file used by the sketch
// command.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
	"honnef.co/go/sketch"
	"honnef.co/go/sketch/render"
)

// FileName is the name of the configuration file looked up by [Load].
const FileName = "sketch.yaml"

// Config mirrors the structure of sketch.yaml.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Curves CurvesConfig `yaml:"curves"`
	Style  StyleConfig  `yaml:"style"`
	Log    LogConfig    `yaml:"log"`
}

type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

type CurvesConfig struct {
	Count        int    `yaml:"count"`
	Mode         string `yaml:"mode"`
	Polygon      *bool  `yaml:"polygon,omitempty"`
	GlobalSteps  int    `yaml:"global_steps"`
	SegmentSteps int    `yaml:"segment_steps"`
}

type StyleConfig struct {
	Curve         string  `yaml:"curve"`
	Polygon       string  `yaml:"polygon"`
	Marker        string  `yaml:"marker"`
	MarkerRadius  float64 `yaml:"marker_radius"`
	LineWidth     float64 `yaml:"line_width"`
	InactiveAlpha float64 `yaml:"inactive_alpha"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	on := true
	return &Config{
		Canvas: CanvasConfig{Width: 800, Height: 600, Background: "black"},
		Curves: CurvesConfig{
			Count:        sketch.DefaultSlotCount,
			Mode:         sketch.Global.String(),
			Polygon:      &on,
			GlobalSteps:  sketch.GlobalSteps,
			SegmentSteps: sketch.SegmentSteps,
		},
		Style: StyleConfig{
			Curve:         "white",
			Polygon:       "lime",
			Marker:        "#ff3333",
			MarkerRadius:  render.DefaultMarkerRadius,
			LineWidth:     2,
			InactiveAlpha: 0.35,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the file at path. A missing file yields [Default].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of [Default] and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Curves.Count < 1 {
		return fmt.Errorf("curves.count must be at least 1, got %d", c.Curves.Count)
	}
	if _, err := sketch.ParseInterpolation(c.Curves.Mode); err != nil {
		return fmt.Errorf("curves.mode: %w", err)
	}
	if c.Curves.GlobalSteps < 1 || c.Curves.SegmentSteps < 1 {
		return errors.New("curves.global_steps and curves.segment_steps must be at least 1")
	}
	for name, v := range map[string]string{
		"canvas.background": c.Canvas.Background,
		"style.curve":       c.Style.Curve,
		"style.polygon":     c.Style.Polygon,
		"style.marker":      c.Style.Marker,
	} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.Style.MarkerRadius <= 0 || c.Style.LineWidth <= 0 {
		return errors.New("style.marker_radius and style.line_width must be positive")
	}
	if c.Style.InactiveAlpha < 0 || c.Style.InactiveAlpha > 1 {
		return fmt.Errorf("style.inactive_alpha must be in [0, 1], got %g", c.Style.InactiveAlpha)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// SlotOptions returns the options every curve slot is created with.
func (c *Config) SlotOptions() sketch.SlotOptions {
	mode, _ := sketch.ParseInterpolation(c.Curves.Mode)
	return sketch.SlotOptions{
		Mode:         mode,
		Polygon:      c.Curves.Polygon == nil || *c.Curves.Polygon,
		GlobalSteps:  c.Curves.GlobalSteps,
		SegmentSteps: c.Curves.SegmentSteps,
	}
}

// Viewport returns the canvas size.
func (c *Config) Viewport() render.Viewport {
	return render.Viewport{Width: c.Canvas.Width, Height: c.Canvas.Height}
}

// RenderStyle returns the drawing style. Colours are assumed valid, see
// [Config.Validate].
func (c *Config) RenderStyle() render.Style {
	col := func(s string) color.Color {
		v, _ := ParseColor(s)
		return v
	}
	return render.Style{
		Background:    col(c.Canvas.Background),
		Curve:         col(c.Style.Curve),
		Polygon:       col(c.Style.Polygon),
		Marker:        col(c.Style.Marker),
		LineWidth:     c.Style.LineWidth,
		InactiveAlpha: c.Style.InactiveAlpha,
	}
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() slog.Level {
	l, _ := ParseLevel(c.Log.Level)
	return l
}

// ParseColor accepts SVG colour names ("white", "lime") and hex colours
// ("#f33", "#ff3333", "#ff3333cc").
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown colour %q", s)
}

func parseHex(s string) (color.Color, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex colour #%s", s)
	}
	switch len(s) {
	case 3:
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{r * 17, g * 17, b * 17, 0xff}, nil
	case 6:
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
	case 8:
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	default:
		return nil, fmt.Errorf("invalid hex colour #%s", s)
	}
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return l, nil
}
