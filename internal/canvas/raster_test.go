package canvas

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/olivier-w/radial/internal/radial"
)

func alphaAt(r *Raster, x, y int) uint32 {
	_, _, _, a := r.Image().At(x, y).RGBA()
	return a
}

func TestRasterFullRing(t *testing.T) {
	r := NewRaster(64)
	r.StrokeArc(radial.Inset(64, 8), 0, 360, radial.Paint{Color: red, StrokeWidth: 4})

	if alphaAt(r, 32, 8) == 0 {
		t.Fatal("expected ring pixel at the top")
	}
	if alphaAt(r, 32, 56) == 0 {
		t.Fatal("expected ring pixel at the bottom")
	}
	if alphaAt(r, 32, 32) != 0 {
		t.Fatal("ring center should stay transparent")
	}
}

func TestRasterPartialArcIsClockwise(t *testing.T) {
	r := NewRaster(64)
	r.StrokeArc(radial.Inset(64, 8), 270, 90, radial.Paint{Color: red, StrokeWidth: 4, Cap: radial.CapRound})

	if alphaAt(r, 40, 9) == 0 {
		t.Fatal("arc should pass through the upper right")
	}
	if alphaAt(r, 56, 32) == 0 {
		t.Fatal("arc should reach the right-hand side")
	}
	if alphaAt(r, 32, 56) != 0 || alphaAt(r, 8, 32) != 0 {
		t.Fatal("arc should not cover the bottom or left")
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(32)
	r.FillCircle(16, 16, 5, blue)
	cr, cg, cb, ca := r.Image().At(16, 16).RGBA()
	if ca != 0xffff || cb != 0xffff || cr != 0 || cg != 0 {
		t.Fatalf("center pixel = %v %v %v %v, want opaque blue", cr, cg, cb, ca)
	}
	if alphaAt(r, 2, 2) != 0 {
		t.Fatal("corner should stay transparent")
	}

	r.Clear()
	if alphaAt(r, 16, 16) != 0 {
		t.Fatal("clear should reset pixels")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	cfg := radial.DefaultConfig()
	cfg.Progress = 75
	r := NewRaster(48)
	radial.New(cfg).Draw(r)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 48 || img.Bounds().Dy() != 48 {
		t.Fatalf("bounds = %v, want 48x48", img.Bounds())
	}
}
