package transition

import "math"

// slider moves B in over A from one edge. Pixels are copied, not blended.
type slider struct {
	dir Direction
}

func newSlider(dir Direction) slider {
	return slider{dir: dir}
}

func (s slider) composite(te float64, a, b *Frame) (*Frame, error) {
	out := a.Clone()
	w, h := a.Width(), a.Height()

	if s.dir.horizontal() {
		var x int
		if s.dir == LeftToRight {
			x = int(math.Round((te - 1) * float64(w)))
		} else {
			x = int(math.Round((1 - te) * float64(w)))
		}
		x0 := max(0, x)
		width := min(w, x+w) - x0
		if width <= 0 {
			return out, nil
		}
		return out, out.CopyRect(b, max(0, -x), 0, x0, 0, width, h)
	}

	var y int
	if s.dir == TopToBottom {
		y = int(math.Round((te - 1) * float64(h)))
	} else {
		y = int(math.Round((1 - te) * float64(h)))
	}
	y0 := max(0, y)
	height := min(h, y+h) - y0
	if height <= 0 {
		return out, nil
	}
	return out, out.CopyRect(b, 0, max(0, -y), 0, y0, w, height)
}
