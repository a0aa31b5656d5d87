package filter

// Test helper functions shared across filter tests.

// uniformPlane creates a plane with every sample set to v.
func uniformPlane(w, h, ch int, v byte) Plane {
	p := Plane{Data: make([]byte, w*h*ch), Width: w, Height: h, Channels: ch}
	for i := range p.Data {
		p.Data[i] = v
	}
	return p
}

// at returns sample c of pixel (x, y).
func at(p Plane, x, y, c int) byte {
	return p.Data[(y*p.Width+x)*p.Channels+c]
}

// set writes v to every channel of pixel (x, y).
func set(p Plane, x, y int, v byte) {
	for c := range p.Channels {
		p.Data[(y*p.Width+x)*p.Channels+c] = v
	}
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
