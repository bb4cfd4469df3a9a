package radial

// MeasureMode says how a parent constrains one dimension.
type MeasureMode uint8

const (
	Unspecified MeasureMode = iota
	Exactly
	AtMost
)

// MeasureSpec is a layout constraint for one dimension.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

func (v *View) MinimumWidth() int { return v.minimumWidth }

func (v *View) SetMinimumWidth(w int) {
	v.minimumWidth = w
	v.invalidate()
}

func (v *View) Padding() Padding { return v.padding }

func (v *View) SetPadding(p Padding) {
	v.padding = p
	v.invalidate()
}

// Measure resolves the view size. The view is always square: both
// dimensions come from the width constraint and the height constraint is
// ignored.
func (v *View) Measure(widthSpec, _ MeasureSpec) (width, height int) {
	desired := max(v.minimumWidth, 0) + v.padding.Left + v.padding.Right
	size := resolveSize(desired, widthSpec)
	return size, size
}

func resolveSize(desired int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(desired, spec.Size)
	default:
		return desired
	}
}
