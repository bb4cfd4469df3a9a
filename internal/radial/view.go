// Package radial implements a circular progress indicator: a background
// ring, a progress arc swept from a start angle, and an indicator dot at one
// edge of the arc.
//
// A View is owned by a single host loop. Setters, draws and animation ticks
// must all happen on that loop; nothing here locks.
package radial

// ProgressListener receives the progress value and progress/maxProgress
// (unclamped).
type ProgressListener func(progress, fraction float64)

// View holds the state of one indicator.
type View struct {
	startAngle              float64
	progress                float64
	maxProgress             float64
	indicatorColor          Color
	progressColor           Color
	backgroundProgressColor Color
	indicatorFraction       float64
	progressWidth           float64
	progressBackgroundWidth float64
	progressRoundedCap      bool
	hideIndicator           bool
	indicatorGravity        Gravity
	indicatorAngleOffset    float64

	density      float64
	minimumWidth int
	padding      Padding

	listener    ProgressListener
	invalidator func()
	dirty       bool

	progressAnim *Animation
	angleAnim    *Animation
}

// Option customizes a View at construction.
type Option func(*View)

// WithInvalidator registers fn to be called whenever the view needs a
// repaint.
func WithInvalidator(fn func()) Option {
	return func(v *View) { v.invalidator = fn }
}

// New builds a View from cfg. The initial progress is stored without
// notifying anyone.
func New(cfg Config, opts ...Option) *View {
	v := &View{}
	for _, opt := range opts {
		opt(v)
	}
	v.SetIndicatorAngleOffset(cfg.IndicatorAngleOffset)
	v.SetIndicatorGravity(cfg.IndicatorGravity)
	v.SetProgressRoundedCap(cfg.ProgressRoundedCap)
	v.SetHideIndicator(cfg.HideIndicator)
	v.SetStartAngle(cfg.StartAngle)
	v.SetProgress(cfg.Progress, false)
	v.SetMaxProgress(cfg.MaxProgress)
	v.SetIndicatorColor(cfg.IndicatorColor)
	v.SetIndicatorFraction(cfg.IndicatorFraction)
	v.SetProgressColor(cfg.ProgressColor)
	v.SetBackgroundProgressColor(cfg.BackgroundProgressColor)
	v.SetProgressWidth(cfg.ProgressWidth)
	v.SetProgressBackgroundWidth(cfg.ProgressBackgroundWidth)
	v.SetDensity(cfg.Density)
	v.SetMinimumWidth(cfg.MinimumWidth)
	v.SetPadding(cfg.Padding)
	return v
}

// Config returns the current state as a Config.
func (v *View) Config() Config {
	return Config{
		StartAngle:              v.startAngle,
		Progress:                v.progress,
		MaxProgress:             v.maxProgress,
		IndicatorColor:          v.indicatorColor,
		ProgressColor:           v.progressColor,
		BackgroundProgressColor: v.backgroundProgressColor,
		IndicatorFraction:       v.indicatorFraction,
		ProgressWidth:           v.progressWidth,
		ProgressBackgroundWidth: v.progressBackgroundWidth,
		ProgressRoundedCap:      v.progressRoundedCap,
		HideIndicator:           v.hideIndicator,
		IndicatorGravity:        v.indicatorGravity,
		IndicatorAngleOffset:    v.indicatorAngleOffset,
		Density:                 v.density,
		MinimumWidth:            v.minimumWidth,
		Padding:                 v.padding,
	}
}

func (v *View) invalidate() {
	v.dirty = true
	if v.invalidator != nil {
		v.invalidator()
	}
}

// Dirty reports whether state changed since the last Draw.
func (v *View) Dirty() bool { return v.dirty }

// Progress returns the stored value. It may lie outside [0, MaxProgress].
func (v *View) Progress() float64 { return v.progress }

// SetProgressValue is the property setter for progress: it stores the
// value, notifies the listener and repaints.
func (v *View) SetProgressValue(p float64) {
	v.SetProgress(p, true)
}

// SetProgress stores p and repaints. The listener is only called when notify
// is true.
func (v *View) SetProgress(p float64, notify bool) {
	v.progress = p
	v.invalidate()
	if notify {
		v.notify()
	}
}

func (v *View) notify() {
	if v.listener != nil {
		v.listener(v.progress, v.Fraction())
	}
}

// Fraction is progress/maxProgress without clamping.
func (v *View) Fraction() float64 {
	return v.progress / v.maxProgress
}

// OnProgressChanged replaces the listener and calls it once with the current
// value. A nil fn clears the listener.
func (v *View) OnProgressChanged(fn ProgressListener) {
	v.listener = fn
	v.notify()
}

func (v *View) StartAngle() float64 { return v.startAngle }

func (v *View) SetStartAngle(deg float64) {
	v.startAngle = deg
	v.invalidate()
}

func (v *View) MaxProgress() float64 { return v.maxProgress }

func (v *View) SetMaxProgress(m float64) {
	v.maxProgress = m
	v.invalidate()
}

func (v *View) IndicatorColor() Color { return v.indicatorColor }

func (v *View) SetIndicatorColor(c Color) {
	v.indicatorColor = c
	v.invalidate()
}

func (v *View) ProgressColor() Color { return v.progressColor }

func (v *View) SetProgressColor(c Color) {
	v.progressColor = c
	v.invalidate()
}

func (v *View) BackgroundProgressColor() Color { return v.backgroundProgressColor }

func (v *View) SetBackgroundProgressColor(c Color) {
	v.backgroundProgressColor = c
	v.invalidate()
}

// IndicatorFraction is the dot diameter relative to the progress width. The
// stored value is unclamped; drawing clamps it to [0,1].
func (v *View) IndicatorFraction() float64 { return v.indicatorFraction }

func (v *View) SetIndicatorFraction(f float64) {
	v.indicatorFraction = f
	v.invalidate()
}

func (v *View) ProgressWidth() float64 { return v.progressWidth }

func (v *View) SetProgressWidth(w float64) {
	v.progressWidth = w
	v.invalidate()
}

func (v *View) ProgressBackgroundWidth() float64 { return v.progressBackgroundWidth }

func (v *View) SetProgressBackgroundWidth(w float64) {
	v.progressBackgroundWidth = w
	v.invalidate()
}

func (v *View) ProgressRoundedCap() bool { return v.progressRoundedCap }

func (v *View) SetProgressRoundedCap(rounded bool) {
	v.progressRoundedCap = rounded
	v.invalidate()
}

func (v *View) HideIndicator() bool { return v.hideIndicator }

func (v *View) SetHideIndicator(hide bool) {
	v.hideIndicator = hide
	v.invalidate()
}

func (v *View) IndicatorGravity() Gravity { return v.indicatorGravity }

func (v *View) SetIndicatorGravity(g Gravity) {
	v.indicatorGravity = g
	v.invalidate()
}

func (v *View) IndicatorAngleOffset() float64 { return v.indicatorAngleOffset }

func (v *View) SetIndicatorAngleOffset(deg float64) {
	v.indicatorAngleOffset = deg
	v.invalidate()
}

// Density is the number of surface units per dp.
func (v *View) Density() float64 { return v.density }

// SetDensity sets the dp scale. Non-positive values fall back to 1.
func (v *View) SetDensity(d float64) {
	if d <= 0 {
		d = DefaultDensity
	}
	v.density = d
	v.invalidate()
}
