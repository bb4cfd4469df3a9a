package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/olivier-w/radial/internal/radial"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "radial.yaml", `view:
  progress: 40
  indicator_gravity: end
  hide_indicator: true
animation:
  curve: Spring
  progress_duration: 500ms
state_file: " /tmp/radial-state.yaml "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.View.Progress != 40 || cfg.View.IndicatorGravity != radial.GravityEnd || !cfg.View.HideIndicator {
		t.Fatalf("view section not applied: %+v", cfg.View)
	}
	if cfg.View.MaxProgress != radial.DefaultMaxProgress || cfg.View.StartAngle != radial.DefaultStartAngle {
		t.Fatalf("unset view fields should keep defaults: %+v", cfg.View)
	}
	if cfg.Animation.Curve != CurveSpring || cfg.Animation.ProgressDuration != 500*time.Millisecond {
		t.Fatalf("animation section not applied: %+v", cfg.Animation)
	}
	if cfg.Animation.AngleDuration != radial.AngleAnimationDuration {
		t.Fatalf("angle duration = %v, want default", cfg.Animation.AngleDuration)
	}
	if cfg.StateFile != "/tmp/radial-state.yaml" {
		t.Fatalf("state file = %q", cfg.StateFile)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func TestLoadUserConfigOptional(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults without a user config, got %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if err := os.MkdirAll(filepath.Join(xdg, "radial"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(xdg, "radial"), "config.yaml", "view:\n  start_angle: 0\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.View.StartAngle != 0 {
		t.Fatalf("start angle = %v, want 0", cfg.View.StartAngle)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax.yaml":  "view: [",
		"gravity.yaml": "view:\n  indicator_gravity: sideways\n",
		"curve.yaml":   "animation:\n  curve: bounce\n",
		"width.yaml":   "view:\n  progress_width: -1\n",
		"density.yaml": "view:\n  density: 0\n",
	}
	for name, body := range cases {
		path := writeFile(t, dir, name, body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestValidateAllowsZeroMaxProgress(t *testing.T) {
	cfg := Default()
	cfg.View.MaxProgress = 0
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestAnimationHooks(t *testing.T) {
	a := Default().Animation
	a.Curve = CurveLinear
	a.ProgressDuration = time.Second

	anim := radial.NewAnimation(0, 1, 0, nil, nil)
	for _, hook := range a.ProgressHooks() {
		hook(anim)
	}
	if anim.Duration != time.Second {
		t.Fatalf("duration = %v, want 1s", anim.Duration)
	}
	if got := anim.Curve(0.25); got != 0.25 {
		t.Fatalf("linear curve at 0.25 = %v", got)
	}

	for _, hook := range a.AngleHooks() {
		hook(anim)
	}
	if anim.Duration != radial.AngleAnimationDuration {
		t.Fatalf("angle duration = %v", anim.Duration)
	}
}

func TestDefaultStatePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	if got := DefaultStatePath(); got != filepath.Join(dir, "radial", "state.yaml") {
		t.Fatalf("state path = %q", got)
	}
}
