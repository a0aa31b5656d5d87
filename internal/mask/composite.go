package mask

import (
	"fmt"

	"github.com/gogpu/transition/internal/blend"
	intImage "github.com/gogpu/transition/internal/image"
)

// Composite smooths m in place according to opts, then returns
// a·(1−m/255) + b·(m/255) per channel. m must match the frame size.
func Composite(a, b *intImage.ImageBuf, m *Mask, opts Blur) (*intImage.ImageBuf, error) {
	if m.width != a.Width() || m.height != a.Height() {
		return nil, fmt.Errorf("%w: mask %dx%d for %dx%d frame", blend.ErrSizeMismatch,
			m.width, m.height, a.Width(), a.Height())
	}
	if err := opts.Apply(m); err != nil {
		return nil, err
	}
	return blend.Masked(a, b, m.data)
}
