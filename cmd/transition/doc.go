// Command transition renders an image-to-image transition into a video
// or a PNG sequence.
//
//	transition <image1> <image2> <config> <output> [fps]
//	transition list
//
// The exit status reports the failing stage: 1 usage, 2 image read,
// 3 config parse, 4 transition construction, 5 encoder, 10 other.
package main
