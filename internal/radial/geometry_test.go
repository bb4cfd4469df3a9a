package radial

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestProgressAngleClampsRatio(t *testing.T) {
	cases := []struct {
		progress, max, want float64
	}{
		{0, 100, 0},
		{25, 100, 90},
		{100, 100, 360},
		{250, 100, 360},
		{-10, 100, 0},
		{50, 0, 0},
		{50, -100, 0},
		{0, 0, 0},
		{math.Inf(1), 100, 360},
		{math.NaN(), 100, 0},
	}
	for _, tc := range cases {
		got := ProgressAngle(tc.progress, tc.max)
		if !near(got, tc.want) {
			t.Fatalf("ProgressAngle(%v, %v) = %v, want %v", tc.progress, tc.max, got, tc.want)
		}
	}
}

func TestProgressAngleMonotonic(t *testing.T) {
	prev := ProgressAngle(-50, 80)
	for p := -50.0; p <= 150; p += 0.5 {
		got := ProgressAngle(p, 80)
		if got < prev {
			t.Fatalf("angle decreased at progress %v: %v < %v", p, got, prev)
		}
		if math.IsNaN(got) || got < 0 || got > 360 {
			t.Fatalf("angle out of range at progress %v: %v", p, got)
		}
		prev = got
	}
}

func TestIndicatorAngleClampsOffset(t *testing.T) {
	if got := IndicatorAngle(270, 90, 1000, GravityStart); !near(got, 360) {
		t.Fatalf("start gravity: got %v, want 360", got)
	}
	if got := IndicatorAngle(270, 90, 1000, GravityEnd); !near(got, 270) {
		t.Fatalf("end gravity: got %v, want 270", got)
	}
	if got := IndicatorAngle(270, 90, -30, GravityStart); !near(got, 300) {
		t.Fatalf("negative offset: got %v, want 300", got)
	}
	if got := IndicatorAngle(270, 90, 30, GravityEnd); !near(got, 330) {
		t.Fatalf("end gravity offset: got %v, want 330", got)
	}
	if got := IndicatorAngle(0, 0, 45, GravityEnd); !near(got, 0) {
		t.Fatalf("empty arc: got %v, want 0", got)
	}
}

func TestIndicatorPositionScreenConvention(t *testing.T) {
	// size 100, width 10 -> radius 40 around (50, 50)
	x, y := IndicatorPosition(100, 10, 0)
	if !near(x, 90) || !near(y, 50) {
		t.Fatalf("0 deg: got (%v, %v), want (90, 50)", x, y)
	}
	x, y = IndicatorPosition(100, 10, 90)
	if !near(x, 50) || !near(y, 90) {
		t.Fatalf("90 deg should point down: got (%v, %v)", x, y)
	}
	x, y = IndicatorPosition(100, 10, 270)
	if !near(x, 50) || !near(y, 10) {
		t.Fatalf("270 deg should point up: got (%v, %v)", x, y)
	}
}

func TestIndicatorRadiusClampsFraction(t *testing.T) {
	if got := IndicatorRadius(20, 2.5); !near(got, 10) {
		t.Fatalf("fraction 2.5: got %v, want 10", got)
	}
	if got := IndicatorRadius(20, 0.5); !near(got, 5) {
		t.Fatalf("fraction 0.5: got %v, want 5", got)
	}
	if got := IndicatorRadius(20, -1); got != 0 {
		t.Fatalf("negative fraction: got %v, want 0", got)
	}
	if got := IndicatorRadius(20, math.NaN()); got != 0 {
		t.Fatalf("NaN fraction: got %v, want 0", got)
	}
}

func TestGeometryInsets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProgressWidth = 10
	cfg.ProgressBackgroundWidth = 4
	cfg.Progress = 25
	v := New(cfg)

	g := v.Geometry(100)
	if want := Inset(100, 7); g.BackgroundOval != want {
		t.Fatalf("background oval = %+v, want %+v", g.BackgroundOval, want)
	}
	if want := Inset(100, 10); g.ProgressOval != want {
		t.Fatalf("progress oval = %+v, want %+v", g.ProgressOval, want)
	}
	if !near(g.ProgressAngle, 90) || !near(g.StartAngle, 270) {
		t.Fatalf("unexpected angles: start %v sweep %v", g.StartAngle, g.ProgressAngle)
	}
	if !g.ShowIndicator || !near(g.IndicatorAngle, 270) {
		t.Fatalf("expected indicator at start edge, got %+v", g)
	}
	if !near(g.IndicatorX, 50) || !near(g.IndicatorY, 10) {
		t.Fatalf("indicator at (%v, %v), want (50, 10)", g.IndicatorX, g.IndicatorY)
	}
}

func TestGeometryScalesByDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 0.5
	g := New(cfg).Geometry(100)
	if !near(g.ProgressWidth, 10) || !near(g.BackgroundWidth, 1) {
		t.Fatalf("widths = %v, %v; want 10, 1", g.ProgressWidth, g.BackgroundWidth)
	}
}

func TestGeometrySuppressesIndicator(t *testing.T) {
	v := New(DefaultConfig())
	if v.Geometry(100).ShowIndicator {
		t.Fatal("indicator should be hidden at zero progress")
	}

	v.SetProgress(40, false)
	if !v.Geometry(100).ShowIndicator {
		t.Fatal("indicator should show with progress")
	}

	v.SetHideIndicator(true)
	if v.Geometry(100).ShowIndicator {
		t.Fatal("indicator should be hidden when hideIndicator is set")
	}
}

func TestGeometryZeroMaxProgressIsFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxProgress = 0
	cfg.Progress = 30
	g := New(cfg).Geometry(64)
	if g.ProgressAngle != 0 {
		t.Fatalf("progress angle = %v, want 0", g.ProgressAngle)
	}
	for _, f := range []float64{g.IndicatorAngle, g.IndicatorX, g.IndicatorY, g.IndicatorRadius} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("non-finite geometry: %+v", g)
		}
	}
}
