// Package filter provides neighbourhood filters over 8-bit interleaved
// pixel planes: frames (1, 3 or 4 channels) and single-channel masks.
//
// This package contains:
//   - Box and Gaussian blur (separable, two passes)
//   - Median blur (sliding histogram)
//   - Erosion with an elliptical structuring element
//
// Every filter replicates the edge pixel for samples that fall outside the
// plane, except erosion, which ignores out-of-range samples. Filters never
// modify their input; they write a new plane.
package filter
