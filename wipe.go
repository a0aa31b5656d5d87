package transition

import (
	"math"

	"github.com/gogpu/transition/internal/mask"
)

// maskComposite blends a and b through m with the configured blur.
func maskComposite(a, b *Frame, m *mask.Mask, blur MaskBlur) (*Frame, error) {
	return mask.Composite(a, b, m, blur)
}

// appearRight reveals B as a growing column band on the right edge.
type appearRight struct {
	blur MaskBlur
}

func (v appearRight) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	n := int(math.Round(te * float64(w)))
	m.FillRect(w-n, 0, w, h, 255)
	return maskComposite(a, b, m, v.blur)
}

// wipe reveals B with a rectangle growing from one edge.
type wipe struct {
	dir  Direction
	blur MaskBlur
}

func (v wipe) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	fill := v.blur.Fill(te)

	switch v.dir {
	case LeftToRight:
		m.FillRect(0, 0, int(math.Round(te*float64(w))), h, fill)
	case RightToLeft:
		m.FillRect(w-int(math.Round(te*float64(w))), 0, w, h, fill)
	case TopToBottom:
		m.FillRect(0, 0, w, int(math.Round(te*float64(h))), fill)
	case BottomToTop:
		m.FillRect(0, h-int(math.Round(te*float64(h))), w, h, fill)
	}
	return maskComposite(a, b, m, v.blur)
}

// barndoor opens a band centred on the frame. Horizontal doors open along
// x; vertical doors open along y.
type barndoor struct {
	axis Axis
	blur MaskBlur
}

func (v barndoor) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)

	if v.axis == Vertical {
		half := int(math.Round(0.5 * te * float64(h)))
		cy := h / 2
		m.FillRect(0, cy-half, w, cy+half, 255)
	} else {
		half := int(math.Round(0.5 * te * float64(w)))
		cx := w / 2
		m.FillRect(cx-half, 0, cx+half, h, 255)
	}
	return maskComposite(a, b, m, v.blur)
}
