// Package config loads the radial demo configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olivier-w/radial/internal/radial"
	"gopkg.in/yaml.v3"
)

// Curve names accepted in the animation section.
const (
	CurveDecelerate = "decelerate"
	CurveLinear     = "linear"
	CurveSpring     = "spring"
)

// Animation tunes the transitions the demo triggers.
type Animation struct {
	Curve            string        `yaml:"curve"`
	ProgressDuration time.Duration `yaml:"progress_duration"`
	AngleDuration    time.Duration `yaml:"angle_duration"`
	SpringFrequency  float64       `yaml:"spring_frequency"`
	SpringDamping    float64       `yaml:"spring_damping"`
}

// Config is the full demo configuration.
type Config struct {
	View      radial.Config `yaml:"view"`
	Animation Animation     `yaml:"animation"`
	// StateFile is where the progress snapshot survives between runs.
	StateFile string `yaml:"state_file"`
}

// Default returns the configuration used when no file sets anything.
func Default() Config {
	view := radial.DefaultConfig()
	// Terminal dots are coarse; 20dp strokes would swallow a small ring.
	view.Density = 0.25
	return Config{
		View: view,
		Animation: Animation{
			Curve:            CurveDecelerate,
			ProgressDuration: radial.ProgressAnimationDuration,
			AngleDuration:    radial.AngleAnimationDuration,
			SpringFrequency:  6.0,
			SpringDamping:    0.5,
		},
	}
}

// Load returns Default merged with the file at path. An empty path falls
// back to the user config file, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	if explicit := strings.TrimSpace(path); explicit != "" {
		if err := mergeFile(&cfg, explicit, true); err != nil {
			return Config{}, err
		}
	} else {
		userPath, err := UserConfigPath()
		if err != nil {
			return Config{}, err
		}
		if err := mergeFile(&cfg, userPath, false); err != nil {
			return Config{}, err
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file does not exist: %s", path)
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(payload, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.StateFile = strings.TrimSpace(cfg.StateFile)
	cfg.Animation.Curve = strings.ToLower(strings.TrimSpace(cfg.Animation.Curve))
	return nil
}

// Validate rejects values no view could draw sensibly. It does not touch
// max_progress: the view clamps a non-positive maximum on its own.
func Validate(cfg Config) error {
	var errs []error
	if cfg.View.ProgressWidth < 0 {
		errs = append(errs, fmt.Errorf("view.progress_width must not be negative"))
	}
	if cfg.View.ProgressBackgroundWidth < 0 {
		errs = append(errs, fmt.Errorf("view.progress_background_width must not be negative"))
	}
	if cfg.View.Density <= 0 {
		errs = append(errs, fmt.Errorf("view.density must be positive"))
	}
	if cfg.Animation.ProgressDuration < 0 || cfg.Animation.AngleDuration < 0 {
		errs = append(errs, fmt.Errorf("animation durations must not be negative"))
	}
	switch cfg.Animation.Curve {
	case "", CurveDecelerate, CurveLinear:
	case CurveSpring:
		if cfg.Animation.SpringFrequency <= 0 {
			errs = append(errs, fmt.Errorf("animation.spring_frequency must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown animation.curve %q", cfg.Animation.Curve))
	}
	return errors.Join(errs...)
}

// CurveFunc returns the interpolation curve named by the animation section.
func (a Animation) CurveFunc() radial.Curve {
	switch a.Curve {
	case CurveLinear:
		return radial.Linear
	case CurveSpring:
		return radial.Spring(a.SpringFrequency, a.SpringDamping)
	default:
		return radial.Decelerate
	}
}

// ProgressHooks returns the hooks that apply this section to a progress
// animation.
func (a Animation) ProgressHooks() []func(*radial.Animation) {
	return []func(*radial.Animation){
		radial.WithDuration(a.ProgressDuration),
		radial.WithCurve(a.CurveFunc()),
	}
}

// AngleHooks is ProgressHooks for the rotation.
func (a Animation) AngleHooks() []func(*radial.Animation) {
	return []func(*radial.Animation){
		radial.WithDuration(a.AngleDuration),
		radial.WithCurve(a.CurveFunc()),
	}
}

// UserConfigPath is $XDG_CONFIG_HOME/radial/config.yaml, or ~/.config when
// XDG_CONFIG_HOME is unset.
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); strings.TrimSpace(xdg) != "" {
		return filepath.Join(xdg, "radial", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "radial", "config.yaml"), nil
}

// DefaultStatePath is where the snapshot goes when state_file is unset.
func DefaultStatePath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); strings.TrimSpace(xdg) != "" {
		return filepath.Join(xdg, "radial", "state.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".radial-state.yaml")
	}
	return filepath.Join(home, ".local", "state", "radial", "state.yaml")
}
