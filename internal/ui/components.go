package ui

import (
	"math"

	"github.com/olivier-w/radial/internal/radial"
)

var (
	lowColor  = radial.Hex("#00FF00")
	highColor = radial.Hex("#FF0000")
)

// progressColorAt blends from green to red as the fraction fills.
func progressColorAt(fraction float64) radial.Color {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	return lowColor.Blend(highColor, fraction)
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
