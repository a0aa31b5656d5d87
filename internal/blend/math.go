// Package blend combines two equally sized frames per pixel.
//
// Mask weights are bytes, so masked interpolation stays in uint32
// arithmetic with round-to-nearest division by 255. Frame-wide blends take
// a float alpha and round once per channel.
package blend

import "math"

// div255Round divides x by 255, rounding to nearest.
//
// Formula: (x + 127) / 255 computed without division as
// ((x + 128) + ((x + 128) >> 8)) >> 8, exact for x in [0, 65535+127].
func div255Round(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}

// lerp255 interpolates a toward b by weight w/255, rounded.
func lerp255(a, b, w byte) byte {
	return byte(div255Round(uint32(a)*uint32(255-w) + uint32(b)*uint32(w)))
}

// lerpf computes (1−t)·a + t·b for t in [0, 1], rounded to nearest.
func lerpf(a, b byte, t float64) byte {
	return byte(math.Round((1-t)*float64(a) + t*float64(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// screen computes 255·(1−(1−a/255)(1−b/255)), rounded.
func screen(a, b byte) byte {
	return byte(255 - div255Round(uint32(255-a)*uint32(255-b)))
}

// clamp01 clamps v to [0, 1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
