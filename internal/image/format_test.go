package image

import "testing"

func TestFormat_Info(t *testing.T) {
	tests := []struct {
		format Format
		bpp    int
		name   string
	}{
		{FormatGray8, 1, "Gray8"},
		{FormatRGB8, 3, "RGB8"},
		{FormatRGBA8, 4, "RGBA8"},
		{Format(200), 0, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.format.IsValid(); got != (tt.bpp > 0) {
				t.Errorf("IsValid() = %v", got)
			}
		})
	}
}

func TestFormat_RowBytes(t *testing.T) {
	if got := FormatRGB8.RowBytes(10); got != 30 {
		t.Errorf("RowBytes(10) = %d, want 30", got)
	}
}
