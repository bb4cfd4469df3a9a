package radial

// Cap is the stroke end style of an arc.
type Cap uint8

const (
	CapSquare Cap = iota
	CapRound
)

// Paint describes how a stroke is drawn.
type Paint struct {
	Color       Color
	StrokeWidth float64
	Cap         Cap
}

// Canvas is a 2D drawing surface. Coordinates are surface units with the
// origin at the top-left and y growing downward. Angles are degrees, 0
// pointing right and growing clockwise.
type Canvas interface {
	Width() int
	Height() int
	// StrokeArc strokes the arc of the ellipse inscribed in oval, starting
	// at startDeg and sweeping sweepDeg degrees clockwise.
	StrokeArc(oval Rect, startDeg, sweepDeg float64, p Paint)
	FillCircle(cx, cy, r float64, c Color)
}
