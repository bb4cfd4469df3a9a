package util

import (
	"fmt"
	"math"
)

// FormatPercent formats a progress value as a whole percentage. Values that
// cannot be shown render as "--%".
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

// FormatDegrees normalizes an angle into [0,360) and formats it.
func FormatDegrees(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "--°"
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return fmt.Sprintf("%d°", int(math.Round(deg))%360)
}
