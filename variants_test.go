package transition

import (
	"image"
	"slices"
	"testing"
)

func composite(t *testing.T, k Kind, p Params, blur MaskBlur, te float64, a, b *Frame) *Frame {
	t.Helper()
	tr := mustNew(t, Config{Kind: k, Duration: 1, FPS: 10, Params: p, MaskBlur: blur})
	f, err := tr.Composite(te, a, b)
	if err != nil {
		t.Fatalf("%v.Composite(%v): %v", k, te, err)
	}
	return f
}

func TestSlider_RightToLeftHalf(t *testing.T) {
	a, b := solid(t, 100, 100, 10), gradient(t, 100, 100)
	f := composite(t, KindSlider, DefaultParams(KindSlider), MaskBlur{}, 0.5, a, b)

	for y := range 100 {
		for x := range 100 {
			got := red(f, x, y)
			if x < 50 {
				if got != 10 {
					t.Fatalf("(%d,%d) = %d, want A unchanged", x, y, got)
				}
				continue
			}
			// Column x shows B's column x−50.
			if want := uint8(x - 50); got != want {
				t.Fatalf("(%d,%d) = %d, want B column %d", x, y, got, want)
			}
		}
	}
}

func TestSlider_Directions(t *testing.T) {
	a, b := solid(t, 10, 10, 0), gradient(t, 10, 10)
	tests := []struct {
		dir  Direction
		x, y int
		want uint8 // red at (x, y) for te = 0.3
		g    bool  // compare green instead of red
	}{
		{LeftToRight, 2, 0, 9, false}, // B column 7..9 at x 0..2
		{LeftToRight, 3, 0, 0, false},
		{RightToLeft, 7, 0, 0, false},
		{RightToLeft, 9, 0, 2, false},
		{TopToBottom, 0, 2, 9, true},
		{BottomToTop, 0, 9, 2, true},
	}
	for _, tt := range tests {
		p := DefaultParams(KindSlider)
		p.Direction = tt.dir
		f := composite(t, KindSlider, p, MaskBlur{}, 0.3, a, b)
		_, g, _, _ := f.GetRGBA(tt.x, tt.y)
		got := red(f, tt.x, tt.y)
		if tt.g {
			got = g
		}
		if got != tt.want {
			t.Errorf("%v at (%d,%d) = %d, want %d", tt.dir, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSlider_Endpoints(t *testing.T) {
	a, b := gradient(t, 12, 8), solid(t, 12, 8, 200)
	for _, dir := range []Direction{LeftToRight, RightToLeft, TopToBottom, BottomToTop} {
		p := Params{Direction: dir}
		if f := composite(t, KindSlider, p, MaskBlur{}, 0, a, b); !f.Equal(a) {
			t.Errorf("%v: te=0 should equal A", dir)
		}
		if f := composite(t, KindSlider, p, MaskBlur{}, 1, a, b); !f.Equal(b) {
			t.Errorf("%v: te=1 should equal B", dir)
		}
	}
}

// maskKinds lists the effects whose frames come from a mask and whose
// mask is empty at te = 0 and full at te = 1 with default parameters.
var maskKinds = []Kind{
	KindAppearRight, KindWipe, KindBarndoor, KindRadial, KindPie, KindPieAdvanced,
	KindInterleave, KindBlinds, KindMovingBars,
}

func TestMaskVariants_Endpoints(t *testing.T) {
	a, b := gradient(t, 37, 23), solid(t, 37, 23, 250)
	for _, k := range maskKinds {
		t.Run(k.String(), func(t *testing.T) {
			tr := mustNew(t, Config{Kind: k, Duration: 1, FPS: 10, Params: DefaultParams(k)})
			first, err := tr.RenderFrame(0, a, b)
			if err != nil {
				t.Fatal(err)
			}
			if !first.Equal(a) {
				t.Error("first frame should equal A")
			}
			last, err := tr.RenderFrame(tr.FrameCount()-1, a, b)
			if err != nil {
				t.Fatal(err)
			}
			if !last.Equal(b) {
				t.Error("last frame should equal B")
			}
		})
	}
}

func TestMaskVariants_EndpointsWithBlur(t *testing.T) {
	a, b := solid(t, 20, 20, 0), solid(t, 20, 20, 255)
	for _, kind := range []BlurKind{BlurBox, BlurGaussian, BlurMedian} {
		blur := MaskBlur{Kind: kind, KSize: 4}
		for _, k := range []Kind{KindWipe, KindRadial, KindBarndoor} {
			if f := composite(t, k, DefaultParams(k), blur, 0, a, b); !f.Equal(a) {
				t.Errorf("%v/%v: te=0 should equal A", k, kind)
			}
			if f := composite(t, k, DefaultParams(k), blur, 1, a, b); !f.Equal(b) {
				t.Errorf("%v/%v: te=1 should equal B", k, kind)
			}
		}
	}
}

func TestMaskVariants_AreaGrows(t *testing.T) {
	a, b := solid(t, 40, 30, 0), solid(t, 40, 30, 255)
	for _, k := range append(slices.Clone(maskKinds), KindCheckerboard, KindCheckerboardAnimated) {
		t.Run(k.String(), func(t *testing.T) {
			prev := -1
			for i := 0; i <= 20; i++ {
				te := float64(i) / 20
				n := countB(composite(t, k, DefaultParams(k), MaskBlur{}, te, a, b))
				if n < prev {
					t.Fatalf("te=%v: area %d shrank from %d", te, n, prev)
				}
				prev = n
			}
			if prev != 40*30 {
				t.Fatalf("te=1 covers %d pixels, want all", prev)
			}
		})
	}
}

func TestOpacityRamp(t *testing.T) {
	a, b := solid(t, 10, 10, 0), solid(t, 10, 10, 255)
	ramp := MaskBlur{OpacityRamp: true}

	// Ramp-aware: the wipe's covered pixels are half opaque at te 0.5.
	f := composite(t, KindWipe, DefaultParams(KindWipe), ramp, 0.5, a, b)
	if got := red(f, 0, 0); got != 128 {
		t.Errorf("wipe ramp at covered pixel = %d, want 128", got)
	}
	if got := red(f, 9, 0); got != 0 {
		t.Errorf("wipe ramp at uncovered pixel = %d, want 0", got)
	}

	// Not ramp-aware: appearright always fills with 255.
	f = composite(t, KindAppearRight, DefaultParams(KindAppearRight), ramp, 0.5, a, b)
	if got := red(f, 9, 0); got != 255 {
		t.Errorf("appearright with ramp = %d, want 255", got)
	}
}

func TestWipe_Directions(t *testing.T) {
	a, b := solid(t, 10, 10, 0), solid(t, 10, 10, 255)
	tests := []struct {
		dir     Direction
		in, out image.Point
	}{
		{LeftToRight, image.Pt(2, 5), image.Pt(3, 5)},
		{RightToLeft, image.Pt(7, 5), image.Pt(6, 5)},
		{TopToBottom, image.Pt(5, 2), image.Pt(5, 3)},
		{BottomToTop, image.Pt(5, 7), image.Pt(5, 6)},
	}
	for _, tt := range tests {
		p := DefaultParams(KindWipe)
		p.Direction = tt.dir
		f := composite(t, KindWipe, p, MaskBlur{}, 0.3, a, b)
		if red(f, tt.in.X, tt.in.Y) != 255 || red(f, tt.out.X, tt.out.Y) != 0 {
			t.Errorf("%v: covered %v=%d, uncovered %v=%d", tt.dir,
				tt.in, red(f, tt.in.X, tt.in.Y), tt.out, red(f, tt.out.X, tt.out.Y))
		}
		if n := countB(f); n != 30 {
			t.Errorf("%v: area %d, want 30", tt.dir, n)
		}
	}
}

func TestBarndoor(t *testing.T) {
	a, b := solid(t, 20, 10, 0), solid(t, 20, 10, 255)
	f := composite(t, KindBarndoor, DefaultParams(KindBarndoor), MaskBlur{}, 0.5, a, b)
	// half = round(0.5·0.5·20) = 5 around x = 10.
	if red(f, 5, 0) != 255 || red(f, 14, 9) != 255 || red(f, 4, 0) != 0 || red(f, 15, 0) != 0 {
		t.Error("horizontal door should cover columns 5..14")
	}

	p := DefaultParams(KindBarndoor)
	p.Axis = Vertical
	f = composite(t, KindBarndoor, p, MaskBlur{}, 0.4, a, b)
	// half = round(0.5·0.4·10) = 2 around y = 5.
	if red(f, 0, 3) != 255 || red(f, 19, 6) != 255 || red(f, 0, 2) != 0 || red(f, 0, 7) != 0 {
		t.Error("vertical door should cover rows 3..6")
	}
}

func TestRadial(t *testing.T) {
	a, b := solid(t, 21, 21, 0), solid(t, 21, 21, 255)
	p := DefaultParams(KindRadial)
	p.Center = &image.Point{X: 0, Y: 0}

	// Radius 0 draws nothing, so te = 0 leaves A.
	if n := countB(composite(t, KindRadial, p, MaskBlur{}, 0, a, b)); n != 0 {
		t.Fatalf("te=0 area = %d", n)
	}
	f := composite(t, KindRadial, p, MaskBlur{}, 0.2, a, b)
	// maxR = hypot(21,21) ≈ 29.7, r = ceil(5.94) = 6.
	if red(f, 6, 0) != 255 || red(f, 7, 0) != 0 || red(f, 4, 4) != 255 || red(f, 5, 5) != 0 {
		t.Error("unexpected circle extent from a corner centre")
	}
}

func TestPie_HalfSweep(t *testing.T) {
	a, b := solid(t, 40, 40, 0), solid(t, 40, 40, 255)
	f := composite(t, KindPie, DefaultParams(KindPie), MaskBlur{}, 0.5, a, b)
	// Start at −90° (up) sweeping 180° with positive angle, which runs
	// through +x: the right half is covered.
	if red(f, 30, 20) != 255 || red(f, 10, 20) != 0 {
		t.Errorf("ccw half sweep: right=%d left=%d", red(f, 30, 20), red(f, 10, 20))
	}
	n := countB(f)
	if n < 780 || n > 820 {
		t.Errorf("half sweep covers %d pixels, want about 800", n)
	}

	p := DefaultParams(KindPie)
	p.Rotation = Clockwise
	f = composite(t, KindPie, p, MaskBlur{}, 0.5, a, b)
	if red(f, 10, 20) != 255 || red(f, 30, 20) != 0 {
		t.Errorf("cw half sweep: left=%d right=%d", red(f, 10, 20), red(f, 30, 20))
	}
}

func TestPieAdvanced_Radius(t *testing.T) {
	a, b := solid(t, 40, 40, 0), solid(t, 40, 40, 255)
	p := DefaultParams(KindPieAdvanced)
	p.R0Frac, p.R1Frac = 0.25, 0.25
	f := composite(t, KindPieAdvanced, p, MaskBlur{}, 1, a, b)
	// Radius 0.25·hypot(20,20) ≈ 7.07 around (20,20).
	if red(f, 20, 20) != 255 || red(f, 25, 20) != 255 || red(f, 30, 20) != 0 || red(f, 0, 0) != 0 {
		t.Error("advanced pie radius not respected")
	}

	p = DefaultParams(KindPieAdvanced)
	p.SweepDeg = 90
	f = composite(t, KindPieAdvanced, p, MaskBlur{}, 1, a, b)
	if n := countB(f); n < 380 || n > 420 {
		t.Errorf("quarter sweep covers %d pixels, want about 400", n)
	}
}

func TestFade_BlendModes(t *testing.T) {
	a, b := solid(t, 4, 4, 100), solid(t, 4, 4, 50)
	tests := []struct {
		mode BlendMode
		te   float64
		want uint8
	}{
		{BlendNormal, 1, 50},
		{BlendAdd, 1, 150},
		{BlendAdd, 0.5, 125},
		// 255·(1 − (155/255)·(205/255)) = 130.4
		{BlendScreen, 1, 130},
	}
	for _, tt := range tests {
		p := DefaultParams(KindFade)
		p.Blend = tt.mode
		if got := red(composite(t, KindFade, p, MaskBlur{}, tt.te, a, b), 1, 1); got != tt.want {
			t.Errorf("%v at te=%v: red = %d, want %d", tt.mode, tt.te, got, tt.want)
		}
	}
}

func TestPie_ScreenSense(t *testing.T) {
	a, b := solid(t, 40, 40, 0), solid(t, 40, 40, 255)
	// CounterClockwise advances the angle from −90°, which on a y-down
	// frame runs from 12 o'clock toward 3 o'clock.
	f := composite(t, KindPie, DefaultParams(KindPie), MaskBlur{}, 0.25, a, b)
	if red(f, 30, 10) != 255 || red(f, 10, 10) != 0 || red(f, 30, 30) != 0 {
		t.Errorf("ccw quarter: top-right=%d top-left=%d bottom-right=%d",
			red(f, 30, 10), red(f, 10, 10), red(f, 30, 30))
	}

	p := DefaultParams(KindPie)
	p.Rotation = Clockwise
	f = composite(t, KindPie, p, MaskBlur{}, 0.25, a, b)
	if red(f, 10, 10) != 255 || red(f, 30, 10) != 0 {
		t.Errorf("cw quarter: top-left=%d top-right=%d", red(f, 10, 10), red(f, 30, 10))
	}
}

func TestZoom(t *testing.T) {
	a, b := solid(t, 16, 16, 0), solid(t, 16, 16, 200)
	for _, mode := range []ZoomMode{ZoomIn, ZoomOut} {
		p := DefaultParams(KindZoom)
		p.Zoom = mode
		if f := composite(t, KindZoom, p, MaskBlur{}, 0, a, b); !f.Equal(a) {
			t.Errorf("%v: te=0 should equal A", mode)
		}
		// Uniform B stays uniform under scaling with replicated borders.
		if f := composite(t, KindZoom, p, MaskBlur{}, 1, a, b); !f.Equal(b) {
			t.Errorf("%v: te=1 should equal B", mode)
		}
	}

	b = gradient(t, 16, 16)
	f := composite(t, KindZoom, DefaultParams(KindZoom), MaskBlur{}, 1, solid(t, 16, 16, 0), b)
	if !f.Equal(b) {
		t.Error("zoom in at scale 1 should reproduce B")
	}
}

func TestBlurTransition(t *testing.T) {
	a, b := gradient(t, 24, 24), solid(t, 24, 24, 99)
	// At te = 0 A is blurred with a 1-pixel kernel and fully weighted.
	if f := composite(t, KindBlur, Params{}, MaskBlur{}, 0, a, b); !f.Equal(a) {
		t.Error("te=0 should equal A")
	}
	if f := composite(t, KindBlur, Params{}, MaskBlur{}, 1, a, b); !f.Equal(b) {
		t.Error("te=1 should equal B")
	}
	f := composite(t, KindBlur, Params{}, MaskBlur{}, 0.5, a, b)
	if f.Equal(a) || f.Equal(b) {
		t.Error("midpoint should differ from both inputs")
	}
}

func TestRandomShapes_AreaMonotone(t *testing.T) {
	a, b := solid(t, 64, 48, 0), solid(t, 64, 48, 255)
	for _, k := range []Kind{KindRandomCircles, KindRandomSquares} {
		t.Run(k.String(), func(t *testing.T) {
			prev := -1
			for i := 0; i <= 30; i++ {
				te := float64(i) / 30
				n := countB(composite(t, k, DefaultParams(k), MaskBlur{}, te, a, b))
				if n < prev {
					t.Fatalf("te=%v: area %d < previous %d", te, n, prev)
				}
				prev = n
			}
			if prev == 0 {
				t.Fatal("shapes never revealed B")
			}
		})
	}
}

func TestRandomShapes_Deterministic(t *testing.T) {
	a, b := solid(t, 200, 200, 0), solid(t, 200, 200, 255)
	p := DefaultParams(KindRandomCircles)
	p.Count = 3
	f1 := composite(t, KindRandomCircles, p, MaskBlur{}, 0.3, a, b)
	f2 := composite(t, KindRandomCircles, p, MaskBlur{}, 0.3, a, b)
	if !f1.Equal(f2) {
		t.Fatal("same seed should render identical frames")
	}
	if countB(f1) == 0 {
		t.Fatal("expected visible shapes at te=0.3")
	}
	p.Seed++
	if f3 := composite(t, KindRandomCircles, p, MaskBlur{}, 0.3, a, b); f3.Equal(f1) {
		t.Error("different seed should move the shapes")
	}
}

func TestCheckerboard_Stepwise(t *testing.T) {
	a, b := solid(t, 8, 8, 0), solid(t, 8, 8, 255)
	p := DefaultParams(KindCheckerboard)
	p.Rows, p.Cols = 2, 2

	tests := []struct {
		te   float64
		want int
	}{
		{0, 0},
		{0.25, 32},
		{0.5, 32},
		{0.75, 64},
		{1, 64},
	}
	for _, tt := range tests {
		if n := countB(composite(t, KindCheckerboard, p, MaskBlur{}, tt.te, a, b)); n != tt.want {
			t.Errorf("te=%v: area %d, want %d", tt.te, n, tt.want)
		}
	}

	f := composite(t, KindCheckerboard, p, MaskBlur{}, 0.25, a, b)
	if red(f, 0, 0) != 255 || red(f, 7, 7) != 255 || red(f, 7, 0) != 0 {
		t.Error("even cells should appear first")
	}
}

func TestCheckerboard_Offset(t *testing.T) {
	a, b := solid(t, 8, 8, 0), solid(t, 8, 8, 255)
	p := DefaultParams(KindCheckerboard)
	p.Rows, p.Cols, p.Stepwise = 2, 2, false

	if n := countB(composite(t, KindCheckerboard, p, MaskBlur{}, 0.1, a, b)); n != 32 {
		t.Errorf("te=0.1: area %d, want 32", n)
	}
	if n := countB(composite(t, KindCheckerboard, p, MaskBlur{}, 0.3, a, b)); n != 64 {
		t.Errorf("te=0.3: area %d, want 64", n)
	}
}

func TestRankGrid(t *testing.T) {
	tests := []struct {
		order Order
		want  []int
	}{
		{OrderRow, []int{0, 1, 2, 3, 4, 5}},
		{OrderColumn, []int{0, 2, 4, 1, 3, 5}},
		{OrderDiagonal, []int{0, 1, 3, 2, 4, 5}},
		{OrderInvDiagonal, []int{5, 4, 2, 3, 1, 0}},
	}
	for _, tt := range tests {
		if got := rankGrid(2, 3, tt.order, 1); !slices.Equal(got, tt.want) {
			t.Errorf("%v: got %v, want %v", tt.order, got, tt.want)
		}
	}
}

func TestRankGrid_RandomReproducible(t *testing.T) {
	r1 := rankGrid(10, 10, OrderRandom, 1234)
	r2 := rankGrid(10, 10, OrderRandom, 1234)
	if !slices.Equal(r1, r2) {
		t.Fatal("same seed produced different orders")
	}
	if r3 := rankGrid(10, 10, OrderRandom, 4321); slices.Equal(r1, r3) {
		t.Fatal("different seeds produced the same order")
	}
	sorted := slices.Sorted(slices.Values(r1))
	for i, v := range sorted {
		if v != i {
			t.Fatalf("order is not a permutation: %v", r1)
		}
	}
}

func TestAnimatedCheckerboard_RandomRuns(t *testing.T) {
	a, b := solid(t, 30, 30, 0), solid(t, 30, 30, 255)
	p := DefaultParams(KindCheckerboardAnimated)
	p.Order = OrderRandom
	p.Seed = 77

	render := func() []*Frame {
		tr := mustNew(t, Config{Kind: KindCheckerboardAnimated, Duration: 1, FPS: 6, Params: p})
		var out []*Frame
		for f, err := range tr.Frames(a, b) {
			if err != nil {
				t.Fatal(err)
			}
			out = append(out, f)
		}
		return out
	}
	run1, run2 := render(), render()
	for i := range run1 {
		if !run1[i].Equal(run2[i]) {
			t.Fatalf("frame %d differs between runs", i)
		}
	}
}

func TestAnimatedCheckerboard_Rank(t *testing.T) {
	a, b := solid(t, 20, 20, 0), solid(t, 20, 20, 255)
	p := DefaultParams(KindCheckerboardAnimated)
	p.Rows, p.Cols = 2, 2
	// index = int(0.5·4) = 2: ranks 0..2 are filled.
	f := composite(t, KindCheckerboardAnimated, p, MaskBlur{}, 0.5, a, b)
	if n := countB(f); n != 300 {
		t.Errorf("area = %d, want 300", n)
	}
	if red(f, 15, 15) != 0 {
		t.Error("rank 3 cell should still show A")
	}
}

func TestInterleave(t *testing.T) {
	a, b := solid(t, 20, 4, 0), solid(t, 20, 4, 255)
	p := DefaultParams(KindInterleave)
	p.Bands = 2
	f := composite(t, KindInterleave, p, MaskBlur{}, 0.3, a, b)
	// Band widths 10; round(3) = 3 columns from the left of band 0 and
	// from the right of band 1.
	for x, want := range map[int]uint8{0: 255, 2: 255, 3: 0, 16: 0, 17: 255, 19: 255} {
		if got := red(f, x, 1); got != want {
			t.Errorf("x=%d: %d, want %d", x, got, want)
		}
	}
}

func TestBlinds(t *testing.T) {
	a, b := solid(t, 20, 20, 0), solid(t, 20, 20, 255)
	p := DefaultParams(KindBlinds)
	p.Count = 4
	f := composite(t, KindBlinds, p, MaskBlur{}, 0.4, a, b)
	// Bands of 5 columns, 2 filled from the left of each.
	if red(f, 5, 0) != 255 || red(f, 6, 0) != 255 || red(f, 7, 0) != 0 || countB(f) != 160 {
		t.Errorf("vertical blinds: area %d", countB(f))
	}

	p.Axis, p.Direction = Horizontal, TopToBottom
	f = composite(t, KindBlinds, p, MaskBlur{}, 0.4, a, b)
	if red(f, 0, 10) != 255 || red(f, 0, 12) != 0 {
		t.Error("horizontal blinds should fill from the top of each band")
	}

	p.Direction = BottomToTop
	f = composite(t, KindBlinds, p, MaskBlur{}, 0.4, a, b)
	if red(f, 0, 14) != 255 || red(f, 0, 12) != 0 {
		t.Error("horizontal blinds should fill from the bottom of each band")
	}
}

func TestBlinds_Wave(t *testing.T) {
	v := newBlinds(Params{Count: 4, WaveAmplitude: 0.9, WavePhase: 0}, MaskBlur{})
	if v.amplitude != maxWaveAmplitude {
		t.Fatalf("amplitude = %v, want clamp to %v", v.amplitude, maxWaveAmplitude)
	}
	if got := v.progress(0.5, 0); got != 0.5 {
		t.Errorf("band 0 progress = %v, want 0.5 (sin 0)", got)
	}
	if got := v.progress(0.5, 1); got != 0.99 {
		t.Errorf("band 1 progress = %v, want 0.99", got)
	}
	if got := v.progress(0.9, 1); got != 1 {
		t.Errorf("band 1 progress = %v, want clamp to 1", got)
	}
}

func TestMovingBars(t *testing.T) {
	v := newMovingBars(Params{Axis: Vertical, Direction: BottomToTop, Count: 5, SpeedMin: 0.2, SpeedMax: 3, Seed: 9}, MaskBlur{})
	for i, s := range v.speeds {
		if s < minBarSpeed || s > 3 {
			t.Errorf("speed %d = %v outside [1, 3]", i, s)
		}
	}
	w := newMovingBars(Params{Axis: Vertical, Direction: BottomToTop, Count: 5, SpeedMin: 0.2, SpeedMax: 3, Seed: 9}, MaskBlur{})
	if !slices.Equal(v.speeds, w.speeds) {
		t.Error("speeds should be reproducible from the seed")
	}

	// Mismatched directions fall back to the axis default.
	if d := newMovingBars(Params{Axis: Vertical, Direction: RightToLeft, Count: 1}, MaskBlur{}).dir; d != TopToBottom {
		t.Errorf("vertical fallback = %v", d)
	}
	if d := newMovingBars(Params{Axis: Horizontal, Direction: BottomToTop, Count: 1}, MaskBlur{}).dir; d != LeftToRight {
		t.Errorf("horizontal fallback = %v", d)
	}

	a, b := solid(t, 10, 10, 0), solid(t, 10, 10, 255)
	p := Params{Axis: Vertical, Direction: BottomToTop, Count: 2, SpeedMin: 1, SpeedMax: 1}
	f := composite(t, KindMovingBars, p, MaskBlur{}, 0.3, a, b)
	if red(f, 0, 9) != 255 || red(f, 9, 7) != 255 || red(f, 0, 6) != 0 {
		t.Error("vertical bars should grow up from the bottom edge")
	}
	p = Params{Axis: Horizontal, Direction: RightToLeft, Count: 2, SpeedMin: 1, SpeedMax: 1}
	f = composite(t, KindMovingBars, p, MaskBlur{}, 0.3, a, b)
	if red(f, 9, 0) != 255 || red(f, 7, 9) != 255 || red(f, 6, 0) != 0 {
		t.Error("horizontal bars should grow from the right edge")
	}
}

func TestMovingBars_DefaultSpeedFloor(t *testing.T) {
	p := DefaultParams(KindMovingBars)
	if p.SpeedMin >= minBarSpeed {
		t.Fatalf("default speed_min = %v, want below the floor", p.SpeedMin)
	}
	p.Count = 64
	v := newMovingBars(p, MaskBlur{})
	for i, s := range v.speeds {
		if s < minBarSpeed || s > p.SpeedMax {
			t.Errorf("speed %d = %v outside [%v, %v]", i, s, minBarSpeed, p.SpeedMax)
		}
	}

	// Every bar finishes by te = 1 even with a configured minimum below 1.
	a, b := solid(t, 16, 16, 0), solid(t, 16, 16, 255)
	f := composite(t, KindMovingBars, DefaultParams(KindMovingBars), MaskBlur{}, 1, a, b)
	for y := range 16 {
		for x := range 16 {
			if got := red(f, x, y); got != 255 {
				t.Fatalf("(%d,%d) = %d at te=1, want B", x, y, got)
			}
		}
	}
}
