package radial

import "math"

// clamp maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ratio is progress/maxProgress clamped to [0,1]. A non-positive maximum or
// a NaN ratio yields 0.
func Ratio(progress, maxProgress float64) float64 {
	if maxProgress <= 0 || math.IsNaN(maxProgress) {
		return 0
	}
	r := progress / maxProgress
	if math.IsNaN(r) {
		return 0
	}
	return clamp(r, 0, 1)
}

// ProgressAngle is the sweep of the progress arc in degrees, in [0,360].
func ProgressAngle(progress, maxProgress float64) float64 {
	return Ratio(progress, maxProgress) * 360
}

// IndicatorAngle places the indicator along an arc that starts at start and
// sweeps progressAngle degrees. The offset is measured inward from the
// gravity edge and never leaves the arc.
func IndicatorAngle(start, progressAngle, offset float64, gravity Gravity) float64 {
	off := clamp(math.Abs(offset), 0, progressAngle)
	if gravity == GravityEnd {
		return start + progressAngle - off
	}
	return start + off
}

// IndicatorPosition converts an indicator angle to surface coordinates for a
// square surface of the given size. 0 degrees points right and angles grow
// clockwise, since y grows downward.
func IndicatorPosition(size, progressWidth, angle float64) (x, y float64) {
	r := (size - 2*progressWidth) / 2
	rad := angle * math.Pi / 180
	c := size / 2
	return c + math.Cos(rad)*r, c + math.Sin(rad)*r
}

// IndicatorRadius is the radius of the indicator dot.
func IndicatorRadius(progressWidth, fraction float64) float64 {
	return progressWidth * clamp(fraction, 0, 1) / 2
}

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Inset returns a square rect of the given size shrunk by d on every side.
func Inset(size, d float64) Rect {
	return Rect{Left: d, Top: d, Right: size - d, Bottom: size - d}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of the rect.
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Geometry is everything the renderer needs for one frame.
type Geometry struct {
	Size            float64
	ProgressWidth   float64
	BackgroundWidth float64
	BackgroundOval  Rect
	ProgressOval    Rect
	StartAngle      float64
	ProgressAngle   float64

	ShowIndicator   bool
	IndicatorAngle  float64
	IndicatorX      float64
	IndicatorY      float64
	IndicatorRadius float64
}

// Geometry computes the drawable layout of the view for a square surface of
// the given size. Widths are scaled by the view density.
func (v *View) Geometry(size float64) Geometry {
	pw := v.progressWidth * v.density
	bw := v.progressBackgroundWidth * v.density
	g := Geometry{
		Size:            size,
		ProgressWidth:   pw,
		BackgroundWidth: bw,
		BackgroundOval:  Inset(size, (pw+bw)/2),
		ProgressOval:    Inset(size, pw),
		StartAngle:      v.startAngle,
		ProgressAngle:   ProgressAngle(v.progress, v.maxProgress),
	}
	if v.hideIndicator || v.progress == 0 {
		return g
	}
	g.ShowIndicator = true
	g.IndicatorAngle = IndicatorAngle(v.startAngle, g.ProgressAngle, v.indicatorAngleOffset, v.indicatorGravity)
	g.IndicatorX, g.IndicatorY = IndicatorPosition(size, pw, g.IndicatorAngle)
	g.IndicatorRadius = IndicatorRadius(pw, v.indicatorFraction)
	return g
}
