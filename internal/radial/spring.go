package radial

import "github.com/charmbracelet/harmonica"

const springSamples = 120

// Spring returns a curve that follows a damped spring settling on 1. An
// underdamped spring (damping < 1) overshoots before it settles.
//
// The trajectory is simulated once into a table; the last sample is pinned
// to 1 so the animation always lands on its target.
func Spring(frequency, damping float64) Curve {
	s := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)
	table := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		t = clamp(t, 0, 1)
		f := t * springSamples
		lo := int(f)
		if lo >= springSamples {
			return 1
		}
		frac := f - float64(lo)
		return table[lo]*(1-frac) + table[lo+1]*frac
	}
}
