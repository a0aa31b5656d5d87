package blend

import "testing"

func TestDiv255Round(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		want := (x + 127) / 255
		if got := div255Round(x); got != want {
			t.Fatalf("div255Round(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestLerp255_Endpoints(t *testing.T) {
	for a := range 256 {
		for _, b := range []byte{0, 77, 255} {
			if got := lerp255(byte(a), b, 0); got != byte(a) {
				t.Fatalf("lerp255(%d, %d, 0) = %d", a, b, got)
			}
			if got := lerp255(byte(a), b, 255); got != b {
				t.Fatalf("lerp255(%d, %d, 255) = %d", a, b, got)
			}
		}
	}
}

func TestScreen(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{255, 0, 255},
		{0, 255, 255},
		{128, 128, 192}, // 255 - 127*127/255 = 191.75
		{100, 50, 130},  // 255 - 155*205/255 = 130.39
	}
	for _, tt := range tests {
		if got := screen(tt.a, tt.b); got != tt.want {
			t.Errorf("screen(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddClamp(t *testing.T) {
	if got := addClamp(200, 100); got != 255 {
		t.Errorf("addClamp(200, 100) = %d, want 255", got)
	}
	if got := addClamp(20, 30); got != 50 {
		t.Errorf("addClamp(20, 30) = %d, want 50", got)
	}
}
