// Package heightfield provides elevation data for displacing terrain
// meshes, loaded from heightmap images or procedurally generated.
package heightfield

// Field is a rectangular grid of elevation samples in [0, 1].
type Field struct {
	Width  int
	Height int
	// Samples holds Width*Height values in row-major order.
	Samples []float32
}

// New returns a zeroed field of the given dimensions.
func New(width, height int) *Field {
	return &Field{
		Width:   width,
		Height:  height,
		Samples: make([]float32, width*height),
	}
}

// At returns the sample at grid position (x, y). Coordinates are
// clamped to the field bounds.
func (f *Field) At(x, y int) float32 {
	x = clampi(x, 0, f.Width-1)
	y = clampi(y, 0, f.Height-1)
	return f.Samples[y*f.Width+x]
}

// Sample returns the bilinearly interpolated elevation at normalized
// coordinates u, v in [0, 1]. Out-of-range coordinates are clamped.
func (f *Field) Sample(u, v float32) float32 {
	fx := clampf(u, 0, 1) * float32(f.Width-1)
	fy := clampf(v, 0, 1) * float32(f.Height-1)

	x0 := int(fx)
	y0 := int(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	h00 := f.At(x0, y0)
	h10 := f.At(x0+1, y0)
	h01 := f.At(x0, y0+1)
	h11 := f.At(x0+1, y0+1)

	top := h00 + (h10-h00)*tx
	bottom := h01 + (h11-h01)*tx
	return top + (bottom-top)*ty
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
