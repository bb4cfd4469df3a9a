// Package canvas provides drawing surfaces for radial views: a Unicode
// Braille dot grid for terminals and an image raster for PNG output.
package canvas

import (
	"math"
	"strings"

	"github.com/muesli/termenv"
	"github.com/olivier-w/radial/internal/radial"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type dot struct {
	on    bool
	color radial.Color
	layer uint32
}

// Braille is a dot grid where every terminal cell holds 2x4 dots. A cell
// takes the color of the most recently drawn dot inside it.
type Braille struct {
	cols  int
	rows  int
	dots  []dot
	layer uint32
}

// NewBraille allocates a grid of cols x rows terminal cells.
func NewBraille(cols, rows int) *Braille {
	b := &Braille{}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates the grid if the cell size changed. The grid is cleared
// either way.
func (b *Braille) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if cols != b.cols || rows != b.rows {
		b.cols, b.rows = cols, rows
		b.dots = make([]dot, cols*2*rows*4)
		b.layer = 0
		return
	}
	b.Clear()
}

// Clear turns every dot off.
func (b *Braille) Clear() {
	clear(b.dots)
	b.layer = 0
}

// Cols and Rows are the grid size in terminal cells.
func (b *Braille) Cols() int { return b.cols }
func (b *Braille) Rows() int { return b.rows }

// Width and Height are the grid size in dots.
func (b *Braille) Width() int  { return b.cols * 2 }
func (b *Braille) Height() int { return b.rows * 4 }

// At reports whether the dot at (x, y) is lit and its color.
func (b *Braille) At(x, y int) (radial.Color, bool) {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return radial.Color{}, false
	}
	d := b.dots[y*b.Width()+x]
	return d.color, d.on
}

func (b *Braille) set(x, y int, c radial.Color) {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return
	}
	b.dots[y*b.Width()+x] = dot{on: true, color: c, layer: b.layer}
}

// StrokeArc implements radial.Canvas. Ovals are treated as circles of their
// mean radius; strokes thinner than one dot are widened to one dot.
func (b *Braille) StrokeArc(oval radial.Rect, startDeg, sweepDeg float64, p radial.Paint) {
	if sweepDeg == 0 {
		return
	}
	if sweepDeg < 0 {
		startDeg += sweepDeg
		sweepDeg = -sweepDeg
	}
	b.layer++

	cx, cy := oval.Center()
	r := (oval.Width() + oval.Height()) / 4
	half := math.Max(p.StrokeWidth, 1) / 2

	full := sweepDeg >= 360
	if !full && p.Cap == radial.CapSquare && r > 0 {
		ext := half / r * 180 / math.Pi
		startDeg -= ext
		sweepDeg += 2 * ext
		full = sweepDeg >= 360
	}

	var capA, capB [2]float64
	roundCaps := !full && p.Cap == radial.CapRound
	if roundCaps {
		capA = pointOn(cx, cy, r, startDeg)
		capB = pointOn(cx, cy, r, startDeg+sweepDeg)
	}

	reach := r + half + 1
	x0, x1 := int(math.Floor(cx-reach)), int(math.Ceil(cx+reach))
	y0, y1 := int(math.Floor(cy-reach)), int(math.Ceil(cy+reach))
	for y := max(y0, 0); y <= min(y1, b.Height()-1); y++ {
		for x := max(x0, 0); x <= min(x1, b.Width()-1); x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			dx, dy := px-cx, py-cy
			inBand := math.Abs(math.Hypot(dx, dy)-r) <= half
			if inBand && (full || inSweep(angleOf(dx, dy), startDeg, sweepDeg)) {
				b.set(x, y, p.Color)
				continue
			}
			if roundCaps && (within(px, py, capA, half) || within(px, py, capB, half)) {
				b.set(x, y, p.Color)
			}
		}
	}
}

// FillCircle implements radial.Canvas. A circle smaller than a dot still
// lights the dot under its center.
func (b *Braille) FillCircle(cx, cy, r float64, c radial.Color) {
	if r <= 0 {
		return
	}
	b.layer++
	if r < 0.5 {
		b.set(int(math.Floor(cx)), int(math.Floor(cy)), c)
		return
	}
	for y := max(int(math.Floor(cy-r)), 0); y <= min(int(math.Ceil(cy+r)), b.Height()-1); y++ {
		for x := max(int(math.Floor(cx-r)), 0); x <= min(int(math.Ceil(cx+r)), b.Width()-1); x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				b.set(x, y, c)
			}
		}
	}
}

func pointOn(cx, cy, r, deg float64) [2]float64 {
	rad := deg * math.Pi / 180
	return [2]float64{cx + math.Cos(rad)*r, cy + math.Sin(rad)*r}
}

func within(px, py float64, p [2]float64, r float64) bool {
	return math.Hypot(px-p[0], py-p[1]) <= r
}

// angleOf returns the screen angle of (dx, dy) in [0,360).
func angleOf(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func inSweep(deg, start, sweep float64) bool {
	rel := math.Mod(deg-start, 360)
	if rel < 0 {
		rel += 360
	}
	return rel <= sweep
}

// Render returns the grid as rows of Braille characters, colored for the
// given terminal profile. Empty cells are spaces.
func (b *Braille) Render(profile termenv.Profile) string {
	rows := make([]string, b.rows)
	for row := range b.rows {
		var line strings.Builder
		var run strings.Builder
		var runColor string

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				line.WriteString(run.String())
			} else {
				line.WriteString(profile.String(run.String()).Foreground(profile.Color(runColor)).String())
			}
			run.Reset()
		}

		for col := range b.cols {
			ch, color := b.cell(col, row)
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(ch)
		}
		flush()
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

// cell returns the character for one terminal cell and the hex color of its
// topmost dot, or "" when the cell is empty.
func (b *Braille) cell(col, row int) (rune, string) {
	var pattern uint
	var top dot
	for dx := range 2 {
		for dy := range 4 {
			d := b.dots[(row*4+dy)*b.Width()+col*2+dx]
			if !d.on {
				continue
			}
			pattern |= 1 << brailleBits[dx][dy]
			if !top.on || d.layer > top.layer {
				top = d
			}
		}
	}
	if pattern == 0 {
		return ' ', ""
	}
	return rune(0x2800 + pattern), top.color.Hex()
}
