package transition

import "testing"

// solid returns a w×h RGBA8 frame filled with v in every colour channel.
func solid(t testing.TB, w, h int, v uint8) *Frame {
	t.Helper()
	f, err := NewFrame(w, h, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	f.Fill(v, v, v, 255)
	return f
}

// gradient returns a w×h RGBA8 frame whose red channel encodes x and
// green channel encodes y.
func gradient(t testing.TB, w, h int) *Frame {
	t.Helper()
	f, err := NewFrame(w, h, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	for y := range h {
		for x := range w {
			if err := f.SetRGBA(x, y, uint8(x), uint8(y), 7, 255); err != nil {
				t.Fatalf("SetRGBA: %v", err)
			}
		}
	}
	return f
}

// red returns the red channel of f at (x, y).
func red(f *Frame, x, y int) uint8 {
	r, _, _, _ := f.GetRGBA(x, y)
	return r
}

// countB returns how many pixels of f equal the fill of b when a and b
// are solid frames of values 0 and 255.
func countB(f *Frame) int {
	n := 0
	for y := range f.Height() {
		for x := range f.Width() {
			if red(f, x, y) == 255 {
				n++
			}
		}
	}
	return n
}

func mustNew(t testing.TB, cfg Config) *Transition {
	t.Helper()
	tr, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%v): %v", cfg.Kind, err)
	}
	return tr
}
