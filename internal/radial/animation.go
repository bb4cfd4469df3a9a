package radial

import "time"

// Curve maps linear time t in [0,1] to animation progress. Curves must
// return 0 at t=0 and 1 at t=1.
type Curve func(t float64) float64

// Decelerate eases out: fast at the start, slowing to a stop.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Linear advances at a constant rate.
func Linear(t float64) float64 { return t }

const (
	AngleAnimationDuration    = 750 * time.Millisecond
	ProgressAnimationDuration = 250 * time.Millisecond
)

// Animation interpolates one scalar from From to To. It does not own a
// clock: the host calls Step once per frame and the first Step latches the
// start time.
type Animation struct {
	From     float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
	Curve    Curve

	onTick   func(float64)
	onEnd    []func()
	onCancel []func()

	start     time.Time
	started   bool
	running   bool
	cancelled bool
	value     float64
}

// NewAnimation returns an animation that calls onTick with each
// interpolated value.
func NewAnimation(from, to float64, d time.Duration, curve Curve, onTick func(float64)) *Animation {
	return &Animation{
		From:     from,
		To:       to,
		Duration: d,
		Curve:    curve,
		onTick:   onTick,
		running:  true,
		value:    from,
	}
}

// OnEnd registers fn to run after the final tick of a completed animation.
func (a *Animation) OnEnd(fn func()) { a.onEnd = append(a.onEnd, fn) }

// OnCancel registers fn to run when the animation is cancelled.
func (a *Animation) OnCancel(fn func()) { a.onCancel = append(a.onCancel, fn) }

// Running reports whether the animation still expects ticks.
func (a *Animation) Running() bool { return a != nil && a.running }

// Cancelled reports whether Cancel stopped the animation.
func (a *Animation) Cancelled() bool { return a != nil && a.cancelled }

// Value is the most recently emitted value.
func (a *Animation) Value() float64 { return a.value }

// Fraction is the linear time progress in [0,1] at now.
func (a *Animation) Fraction(now time.Time) float64 {
	if !a.started {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.start) - a.Delay
	if elapsed <= 0 {
		return 0
	}
	return clamp(float64(elapsed)/float64(a.Duration), 0, 1)
}

// Step advances the animation to now, emits a tick and reports whether more
// ticks are needed. Steps after the end or after Cancel do nothing.
func (a *Animation) Step(now time.Time) bool {
	if !a.running {
		return false
	}
	if !a.started {
		a.start = now
		a.started = true
	}
	if now.Sub(a.start) < a.Delay {
		return true
	}

	t := a.Fraction(now)
	curve := a.Curve
	if curve == nil {
		curve = Decelerate
	}
	eased := curve(t)
	if t >= 1 {
		eased = 1
	}
	a.value = a.From + (a.To-a.From)*eased
	if a.onTick != nil {
		a.onTick(a.value)
	}
	if t < 1 || !a.running {
		return a.running
	}

	a.running = false
	for _, fn := range a.onEnd {
		fn()
	}
	return false
}

// Cancel stops the animation where it is. The value is left as it was after
// the last tick.
func (a *Animation) Cancel() {
	if a == nil || !a.running {
		return
	}
	a.running = false
	a.cancelled = true
	for _, fn := range a.onCancel {
		fn()
	}
}

// AnimateProgress animates progress from its current value to target. Each
// tick goes through SetProgressValue, so the listener sees every frame. Any
// progress animation already running is cancelled first.
func (v *View) AnimateProgress(target float64, hooks ...func(*Animation)) *Animation {
	v.progressAnim.Cancel()
	v.progressAnim = nil

	a := NewAnimation(v.progress, target, ProgressAnimationDuration, Decelerate, v.SetProgressValue)
	for _, hook := range hooks {
		hook(a)
	}
	v.progressAnim = a
	v.invalidate()
	return a
}

// AnimateAngle spins the start angle through a full turn, ending back at the
// default start angle. Like AnimateProgress, a new rotation replaces one in
// flight.
func (v *View) AnimateAngle(hooks ...func(*Animation)) *Animation {
	v.angleAnim.Cancel()
	v.angleAnim = nil

	a := NewAnimation(0, 360, AngleAnimationDuration, Decelerate, func(offset float64) {
		v.SetStartAngle(DefaultStartAngle + offset)
	})
	for _, hook := range hooks {
		hook(a)
	}
	v.angleAnim = a
	v.invalidate()
	return a
}

// CancelAnimations stops both animation slots.
func (v *View) CancelAnimations() {
	v.progressAnim.Cancel()
	v.angleAnim.Cancel()
	v.progressAnim = nil
	v.angleAnim = nil
}

// Animating reports whether any animation still needs ticks.
func (v *View) Animating() bool {
	return v.progressAnim.Running() || v.angleAnim.Running()
}

// Tick advances every running animation to now and reports whether any of
// them needs another frame.
func (v *View) Tick(now time.Time) bool {
	// A tick may start a replacement animation from inside a listener, so
	// only clear the slot if it still holds the finished one.
	if a := v.angleAnim; a != nil && !a.Step(now) && v.angleAnim == a {
		v.angleAnim = nil
	}
	if a := v.progressAnim; a != nil && !a.Step(now) && v.progressAnim == a {
		v.progressAnim = nil
	}
	return v.Animating()
}

// WithDuration is a hook that overrides the animation duration.
func WithDuration(d time.Duration) func(*Animation) {
	return func(a *Animation) { a.Duration = d }
}

// WithCurve is a hook that overrides the interpolation curve.
func WithCurve(c Curve) func(*Animation) {
	return func(a *Animation) { a.Curve = c }
}

// WithDelay is a hook that holds the first tick back by d.
func WithDelay(d time.Duration) func(*Animation) {
	return func(a *Animation) { a.Delay = d }
}
