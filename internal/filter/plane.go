package filter

import (
	"errors"

	intImage "github.com/gogpu/transition/internal/image"
)

// ErrInvalidPlane is returned when a plane's data does not match its shape.
var ErrInvalidPlane = errors.New("filter: invalid plane")

// Plane is a tightly packed grid of Width×Height pixels with Channels
// interleaved 8-bit samples each.
type Plane struct {
	Data     []byte
	Width    int
	Height   int
	Channels int
}

// MaskPlane wraps a single-channel buffer.
func MaskPlane(data []byte, width, height int) Plane {
	return Plane{Data: data, Width: width, Height: height, Channels: 1}
}

// ImagePlane views the pixels of img as a Plane without copying.
func ImagePlane(img *intImage.ImageBuf) Plane {
	return Plane{
		Data:     img.Data(),
		Width:    img.Width(),
		Height:   img.Height(),
		Channels: img.Format().BytesPerPixel(),
	}
}

func (p Plane) valid() bool {
	return p.Width > 0 && p.Height > 0 && p.Channels > 0 &&
		len(p.Data) == p.Width*p.Height*p.Channels
}

// like allocates an empty plane with the shape of p.
func (p Plane) like() Plane {
	return Plane{
		Data:     make([]byte, len(p.Data)),
		Width:    p.Width,
		Height:   p.Height,
		Channels: p.Channels,
	}
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}

// applyImage runs fn over the pixels of img and wraps the result in a new
// buffer of the same format.
func applyImage(img *intImage.ImageBuf, fn func(Plane) (Plane, error)) (*intImage.ImageBuf, error) {
	out, err := fn(ImagePlane(img))
	if err != nil {
		return nil, err
	}
	return intImage.FromRaw(out.Data, out.Width, out.Height, img.Format())
}
