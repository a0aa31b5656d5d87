package transition

import "github.com/gogpu/transition/internal/mask"

// Stepwise checkerboard thresholds: even cells appear once te passes
// evenCellOn, odd cells once te reaches 0.5 and the second half has
// progressed past oddCellOn.
const (
	evenCellOn = 0.0005
	oddCellOn  = 0.001
)

// grid lays rows×cols cells over a w×h frame. The last row and column
// absorb the division remainder.
type grid struct {
	rows, cols int
}

func (g grid) cell(r, c, w, h int) (x0, y0, x1, y1 int) {
	cw, ch := max(1, w/g.cols), max(1, h/g.rows)
	x0, y0 = c*cw, r*ch
	x1, y1 = x0+cw, y0+ch
	if c == g.cols-1 {
		x1 = w
	}
	if r == g.rows-1 {
		y1 = h
	}
	return x0, y0, x1, y1
}

// newGrid returns the cell grid of p, at least 2×2.
func newGrid(p Params) grid {
	return grid{rows: max(2, p.Rows), cols: max(2, p.Cols)}
}

// checkerboard reveals alternating cells. In stepwise mode even cells
// appear in the first half and odd cells join them in the second; in
// offset mode odd cells lag by a quarter.
type checkerboard struct {
	grid
	stepwise bool
	blur     MaskBlur
}

func newCheckerboard(p Params, blur MaskBlur) checkerboard {
	return checkerboard{grid: newGrid(p), stepwise: p.Stepwise, blur: blur}
}

func (v checkerboard) filled(te float64, parity int) bool {
	if !v.stepwise {
		return min(max(te-0.25*float64(parity), 0), 1) > 0
	}
	if parity == 0 {
		return te > evenCellOn
	}
	return te >= 0.5 && (te-0.5)/0.5 > oddCellOn
}

func (v checkerboard) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	for r := range v.rows {
		for c := range v.cols {
			if !v.filled(te, (r+c)&1) {
				continue
			}
			x0, y0, x1, y1 := v.cell(r, c, w, h)
			m.FillRect(x0, y0, x1, y1, 255)
		}
	}
	return maskComposite(a, b, m, v.blur)
}

// animatedCheckerboard reveals cells one at a time in a precomputed rank
// order. A cell is filled once its rank reaches int(te·rows·cols).
type animatedCheckerboard struct {
	grid
	ranks []int
	blur  MaskBlur
}

func newAnimatedCheckerboard(p Params, blur MaskBlur) animatedCheckerboard {
	g := newGrid(p)
	return animatedCheckerboard{grid: g, ranks: rankGrid(g.rows, g.cols, p.Order, p.Seed), blur: blur}
}

// rankGrid returns the reveal rank of every cell, row-major.
func rankGrid(rows, cols int, order Order, seed uint64) []int {
	n := rows * cols
	ranks := make([]int, n)

	switch order {
	case OrderColumn:
		for r := range rows {
			for c := range cols {
				ranks[r*cols+c] = c*rows + r
			}
		}
	case OrderDiagonal, OrderInvDiagonal:
		rank := 0
		for s := 0; s <= rows+cols-2; s++ {
			for r := range rows {
				c := s - r
				if c < 0 || c >= cols {
					continue
				}
				if order == OrderInvDiagonal {
					ranks[(rows-1-r)*cols+(cols-1-c)] = rank
				} else {
					ranks[r*cols+c] = rank
				}
				rank++
			}
		}
	case OrderRandom:
		for i := range ranks {
			ranks[i] = i
		}
		rng := newRand(seed)
		rng.Shuffle(n, func(i, j int) { ranks[i], ranks[j] = ranks[j], ranks[i] })
	default:
		for i := range ranks {
			ranks[i] = i
		}
	}
	return ranks
}

func (v animatedCheckerboard) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	fill := v.blur.Fill(te)
	index := int(te * float64(v.rows*v.cols))

	for r := range v.rows {
		for c := range v.cols {
			if v.ranks[r*v.cols+c] > index {
				continue
			}
			x0, y0, x1, y1 := v.cell(r, c, w, h)
			m.FillRect(x0, y0, x1, y1, fill)
		}
	}
	return maskComposite(a, b, m, v.blur)
}
