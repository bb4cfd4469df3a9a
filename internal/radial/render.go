package radial

// Draw repaints the whole view onto c: background ring, progress arc, then
// the indicator dot. The surface is treated as a square of c.Width() units.
func (v *View) Draw(c Canvas) {
	v.dirty = false
	size := float64(c.Width())
	if size <= 0 {
		return
	}
	g := v.Geometry(size)

	c.StrokeArc(g.BackgroundOval, 0, 360, Paint{
		Color:       v.backgroundProgressColor,
		StrokeWidth: g.BackgroundWidth,
	})

	capStyle := CapSquare
	if v.progressRoundedCap {
		capStyle = CapRound
	}
	c.StrokeArc(g.ProgressOval, g.StartAngle, g.ProgressAngle, Paint{
		Color:       v.progressColor,
		StrokeWidth: g.ProgressWidth,
		Cap:         capStyle,
	})

	if !g.ShowIndicator {
		return
	}
	c.FillCircle(g.IndicatorX, g.IndicatorY, g.IndicatorRadius, v.indicatorColor)
}
