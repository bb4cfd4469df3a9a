package radial

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Gravity anchors the indicator to one edge of the progress arc.
type Gravity uint8

const (
	GravityStart Gravity = iota
	GravityEnd
)

func (g Gravity) String() string {
	if g == GravityEnd {
		return "end"
	}
	return "start"
}

// Toggle returns the opposite gravity.
func (g Gravity) Toggle() Gravity {
	if g == GravityEnd {
		return GravityStart
	}
	return GravityEnd
}

// ParseGravity accepts "start" or "end" (case-insensitive).
func ParseGravity(s string) (Gravity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "":
		return GravityStart, nil
	case "end":
		return GravityEnd, nil
	}
	return GravityStart, fmt.Errorf("unknown indicator gravity %q (want start or end)", s)
}

func (g Gravity) MarshalYAML() (any, error) {
	return g.String(), nil
}

func (g *Gravity) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseGravity(node.Value)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Color is an RGB color that reads and writes as a #RRGGBB hex string.
type Color struct {
	colorful.Color
}

// Hex parses a #RRGGBB string and panics on malformed input. Use it for
// constants only.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses a #RRGGBB or #RGB string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{c}, nil
}

func (c Color) String() string { return c.Hex() }

func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Blend mixes a toward b by t in RGB space.
func (c Color) Blend(b Color, t float64) Color {
	return Color{c.BlendRgb(b.Color, clamp(t, 0, 1)).Clamped()}
}

const (
	DefaultStartAngle        = 270.0
	DefaultProgress          = 0.0
	DefaultMaxProgress       = 100.0
	DefaultRoundedCap        = true
	DefaultProgressWidth     = 20.0
	DefaultBackgroundWidth   = 2.0
	DefaultIndicatorFraction = 0.5
	DefaultHideIndicator     = false
	DefaultIndicatorOffset   = 0.0
	DefaultDensity           = 1.0
)

var (
	DefaultIndicatorColor  = Hex("#FFFFFF")
	DefaultProgressColor   = Hex("#FF8C00")
	DefaultBackgroundColor = Hex("#CCCCCC")
)

// Padding is the layout inset around the view, in surface units.
type Padding struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// Config is the construction bundle for a View. Every field maps to one
// piece of view state.
type Config struct {
	StartAngle              float64 `yaml:"start_angle"`
	Progress                float64 `yaml:"progress"`
	MaxProgress             float64 `yaml:"max_progress"`
	IndicatorColor          Color   `yaml:"indicator_color"`
	ProgressColor           Color   `yaml:"progress_color"`
	BackgroundProgressColor Color   `yaml:"progress_background_color"`
	IndicatorFraction       float64 `yaml:"indicator_fraction"`
	ProgressWidth           float64 `yaml:"progress_width"`
	ProgressBackgroundWidth float64 `yaml:"progress_background_width"`
	ProgressRoundedCap      bool    `yaml:"progress_rounded_cap"`
	HideIndicator           bool    `yaml:"hide_indicator"`
	IndicatorGravity        Gravity `yaml:"indicator_gravity"`
	IndicatorAngleOffset    float64 `yaml:"indicator_angle_offset"`

	// Density converts dp widths into surface units.
	Density      float64 `yaml:"density"`
	MinimumWidth int     `yaml:"minimum_width"`
	Padding      Padding `yaml:"padding"`
}

// DefaultConfig returns the configuration a View gets when nothing is set.
func DefaultConfig() Config {
	return Config{
		StartAngle:              DefaultStartAngle,
		Progress:                DefaultProgress,
		MaxProgress:             DefaultMaxProgress,
		IndicatorColor:          DefaultIndicatorColor,
		ProgressColor:           DefaultProgressColor,
		BackgroundProgressColor: DefaultBackgroundColor,
		IndicatorFraction:       DefaultIndicatorFraction,
		ProgressWidth:           DefaultProgressWidth,
		ProgressBackgroundWidth: DefaultBackgroundWidth,
		ProgressRoundedCap:      DefaultRoundedCap,
		HideIndicator:           DefaultHideIndicator,
		IndicatorGravity:        GravityStart,
		IndicatorAngleOffset:    DefaultIndicatorOffset,
		Density:                 DefaultDensity,
	}
}
