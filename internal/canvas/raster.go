package canvas

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/olivier-w/radial/internal/radial"
)

// Raster is an anti-aliased image surface.
type Raster struct {
	dc *gg.Context
}

// NewRaster creates a transparent size x size image.
func NewRaster(size int) *Raster {
	return &Raster{dc: gg.NewContext(size, size)}
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

// Clear resets every pixel to transparent.
func (r *Raster) Clear() {
	r.dc.SetRGBA(0, 0, 0, 0)
	r.dc.Clear()
}

// StrokeArc implements radial.Canvas.
func (r *Raster) StrokeArc(oval radial.Rect, startDeg, sweepDeg float64, p radial.Paint) {
	if sweepDeg == 0 || p.StrokeWidth <= 0 {
		return
	}
	cx, cy := oval.Center()
	rx, ry := oval.Width()/2, oval.Height()/2

	r.dc.NewSubPath()
	if math.Abs(sweepDeg) >= 360 {
		r.dc.DrawEllipse(cx, cy, rx, ry)
	} else {
		a1 := gg.Radians(startDeg)
		a2 := gg.Radians(startDeg + sweepDeg)
		if a2 < a1 {
			a1, a2 = a2, a1
		}
		r.dc.DrawEllipticalArc(cx, cy, rx, ry, a1, a2)
	}

	if p.Cap == radial.CapRound {
		r.dc.SetLineCap(gg.LineCapRound)
	} else {
		r.dc.SetLineCap(gg.LineCapSquare)
	}
	r.dc.SetLineWidth(p.StrokeWidth)
	r.dc.SetColor(p.Color)
	r.dc.Stroke()
}

// FillCircle implements radial.Canvas.
func (r *Raster) FillCircle(cx, cy, radius float64, c radial.Color) {
	if radius <= 0 {
		return
	}
	r.dc.NewSubPath()
	r.dc.DrawCircle(cx, cy, radius)
	r.dc.SetColor(c)
	r.dc.Fill()
}

// Image returns the backing image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to path.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
