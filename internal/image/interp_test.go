package image

import "testing"

func TestSampleBilinear(t *testing.T) {
	img, _ := NewImageBuf(2, 1, FormatRGB8)
	_ = img.SetRGBA(0, 0, 0, 100, 200, 255)
	_ = img.SetRGBA(1, 0, 100, 200, 0, 255)

	tests := []struct {
		name string
		x, y float64
		want [3]byte
	}{
		{"left pixel", 0, 0, [3]byte{0, 100, 200}},
		{"right pixel", 1, 0, [3]byte{100, 200, 0}},
		{"midpoint", 0.5, 0, [3]byte{50, 150, 100}},
		{"clamped left", -3, 0, [3]byte{0, 100, 200}},
		{"clamped right", 9, 5, [3]byte{100, 200, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out [3]byte
			SampleBilinear(img, tt.x, tt.y, out[:])
			if out != tt.want {
				t.Errorf("SampleBilinear(%v, %v) = %v, want %v", tt.x, tt.y, out, tt.want)
			}
		})
	}
}
