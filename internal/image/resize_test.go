package image

import (
	"errors"
	"testing"
)

func TestResize(t *testing.T) {
	src, _ := NewImageBuf(4, 4, FormatRGBA8)
	src.Fill(200, 100, 50, 255)

	out, err := Resize(src, 10, 6)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if out.Width() != 10 || out.Height() != 6 || out.Format() != FormatRGBA8 {
		t.Fatalf("Resize() = %dx%d %v", out.Width(), out.Height(), out.Format())
	}
	r, g, b, a := out.GetRGBA(5, 3)
	if r != 200 || g != 100 || b != 50 || a != 255 {
		t.Errorf("uniform colour changed: %d,%d,%d,%d", r, g, b, a)
	}
}

func TestResize_SameSize(t *testing.T) {
	src, _ := NewImageBuf(3, 2, FormatRGB8)
	src.Fill(1, 2, 3, 255)

	out, err := Resize(src, 3, 2)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if out.Format() != FormatRGBA8 {
		t.Errorf("Format() = %v, want RGBA8", out.Format())
	}
	if r, g, b, _ := out.GetRGBA(2, 1); r != 1 || g != 2 || b != 3 {
		t.Errorf("pixel = %d,%d,%d", r, g, b)
	}
}

func TestResize_InvalidSize(t *testing.T) {
	src, _ := NewImageBuf(3, 2, FormatRGB8)
	if _, err := Resize(src, 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 2) error = %v", err)
	}
}
