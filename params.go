package transition

import (
	"fmt"
	"image"
)

// Direction is the sense of motion of a directional effect, named by the
// edge it starts from and the edge it moves toward.
type Direction uint8

// Directions.
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// horizontal reports whether d moves along the x axis.
func (d Direction) horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// ParseDirection decodes a direction named by its starting edge:
// "left-to-right", "ltr" and "left" all mean LeftToRight.
func ParseDirection(name string) (Direction, error) {
	switch fold(name) {
	case "left-to-right", "ltr", "left":
		return LeftToRight, nil
	case "right-to-left", "rtl", "right":
		return RightToLeft, nil
	case "top-to-bottom", "ttb", "top":
		return TopToBottom, nil
	case "bottom-to-top", "btt", "bottom":
		return BottomToTop, nil
	}
	return 0, fmt.Errorf("%w: direction %q", ErrInvalidParam, name)
}

// ParseBarDirection decodes a moving-bars direction. Bars are named by
// the edge they grow toward, so "bottom" means TopToBottom and "right"
// means LeftToRight. The long forms of ParseDirection are also accepted.
func ParseBarDirection(name string) (Direction, error) {
	switch fold(name) {
	case "bottom":
		return TopToBottom, nil
	case "top":
		return BottomToTop, nil
	case "right":
		return LeftToRight, nil
	case "left":
		return RightToLeft, nil
	}
	return ParseDirection(name)
}

// Axis selects horizontal or vertical layout. Barndoor uses it as the
// door orientation; moving bars and blinds use it to lay out their bands.
type Axis uint8

// Axes.
const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis decodes "horizontal" or "vertical" (or "h", "v").
func ParseAxis(name string) (Axis, error) {
	switch fold(name) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: axis %q", ErrInvalidParam, name)
}

// Rotation is the sweep sense of pie effects. The names follow the
// mathematical convention with y pointing up: CounterClockwise sweeps
// toward increasing angles. Frame rows grow downward, so on screen a
// CounterClockwise pie turns clockwise (from 12 o'clock toward 3 o'clock
// with the default start angle) and a Clockwise pie turns the other way.
type Rotation uint8

// Rotations.
const (
	CounterClockwise Rotation = iota
	Clockwise
)

func (r Rotation) String() string {
	if r == Clockwise {
		return "cw"
	}
	return "ccw"
}

// sign returns the sign of the angle increment: +1 for CounterClockwise
// and −1 for Clockwise.
func (r Rotation) sign() float64 {
	if r == Clockwise {
		return -1
	}
	return 1
}

// ParseRotation decodes "ccw"/"counterclockwise" or "cw"/"clockwise".
func ParseRotation(name string) (Rotation, error) {
	switch fold(name) {
	case "ccw", "counterclockwise", "counter-clockwise":
		return CounterClockwise, nil
	case "cw", "clockwise":
		return Clockwise, nil
	}
	return 0, fmt.Errorf("%w: direction %q", ErrInvalidParam, name)
}

// Order is the reveal order of the animated checkerboard.
type Order uint8

// Reveal orders.
const (
	OrderRow Order = iota
	OrderColumn
	OrderDiagonal
	OrderInvDiagonal
	OrderRandom
)

func (o Order) String() string {
	switch o {
	case OrderRow:
		return "row"
	case OrderColumn:
		return "col"
	case OrderDiagonal:
		return "diag"
	case OrderInvDiagonal:
		return "invdiag"
	case OrderRandom:
		return "random"
	default:
		return fmt.Sprintf("Order(%d)", o)
	}
}

// ParseOrder decodes a reveal order: row, col (column, columns), diag
// (diagonal), invdiag (invdiagonal) or random.
func ParseOrder(name string) (Order, error) {
	switch fold(name) {
	case "row", "rows":
		return OrderRow, nil
	case "col", "column", "columns":
		return OrderColumn, nil
	case "diag", "diagonal":
		return OrderDiagonal, nil
	case "invdiag", "invdiagonal":
		return OrderInvDiagonal, nil
	case "random":
		return OrderRandom, nil
	}
	return 0, fmt.Errorf("%w: order %q", ErrInvalidParam, name)
}

// ZoomMode selects whether B zooms in from half size or out from 1.5×.
type ZoomMode uint8

// Zoom modes.
const (
	ZoomIn ZoomMode = iota
	ZoomOut
)

func (z ZoomMode) String() string {
	if z == ZoomOut {
		return "out"
	}
	return "in"
}

// ParseZoomMode decodes "in" or "out".
func ParseZoomMode(name string) (ZoomMode, error) {
	switch fold(name) {
	case "in":
		return ZoomIn, nil
	case "out":
		return ZoomOut, nil
	}
	return 0, fmt.Errorf("%w: mode %q", ErrInvalidParam, name)
}

// Params holds the effect-specific settings. Each effect reads only the
// fields it documents; DefaultParams fills in the documented defaults.
type Params struct {
	// Direction: slider, wipe, moving bars, blinds.
	Direction Direction

	// Axis: barndoor orientation, moving-bar and blind band layout.
	Axis Axis

	// Center: radial and pie effects. Nil means the frame centre.
	Center *image.Point

	// StartAngle in degrees, Rotation and SweepDeg: pie effects.
	StartAngle float64
	Rotation   Rotation
	SweepDeg   float64

	// R0Frac and R1Frac: pie-advanced radius at te 0 and 1, as fractions
	// of the distance from the centre to the farthest corner.
	R0Frac float64
	R1Frac float64

	// Rows and Cols: checkerboards. Stepwise: plain checkerboard.
	Rows     int
	Cols     int
	Stepwise bool

	// Order: animated checkerboard.
	Order Order

	// Count: number of moving bars, blinds or random shapes.
	Count int

	// Bands: interleave.
	Bands int

	// Seed: checkerboards, moving bars and random shapes.
	Seed uint64

	// SpeedMin and SpeedMax: moving-bar speed range. SpeedMin is raised
	// to at least 1 so every bar completes by te = 1; the default range
	// [0.5, 1.5] therefore draws speeds from [1, 1.5].
	SpeedMin float64
	SpeedMax float64

	// WaveAmplitude (clamped to [0, 0.49]) and WavePhase in radians: blinds.
	WaveAmplitude float64
	WavePhase     float64

	// Zoom: zoom mode.
	Zoom ZoomMode

	// Blend: how fade, zoom and blur combine the two frames.
	Blend BlendMode
}

// DefaultParams returns the documented defaults for k.
func DefaultParams(k Kind) Params {
	p := Params{
		StartAngle: -90,
		Rotation:   CounterClockwise,
		SweepDeg:   360,
		R0Frac:     0,
		R1Frac:     1,
		Rows:       8,
		Cols:       8,
		Stepwise:   true,
		Order:      OrderRow,
		Count:      16,
		Bands:      8,
		Seed:       1234,
		SpeedMin:   0.5,
		SpeedMax:   1.5,
		Zoom:       ZoomIn,
	}

	switch k {
	case KindSlider:
		p.Direction = RightToLeft
	case KindWipe:
		p.Direction = LeftToRight
	case KindCheckerboardAnimated:
		p.Rows, p.Cols = 10, 10
	case KindMovingBars:
		p.Axis = Horizontal
		p.Direction = TopToBottom
		p.Seed = 42
	case KindBlinds:
		p.Axis = Vertical
		p.Direction = LeftToRight
	case KindRandomCircles, KindRandomSquares:
		p.Count = 20
		p.Seed = 12345
	}
	return p
}
