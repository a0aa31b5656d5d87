package filter

// MedianBlur replaces every sample with the median of its ksize×ksize
// neighbourhood, channel by channel. The size is forced odd; a size of 1
// returns a copy.
func MedianBlur(src Plane, ksize int) (Plane, error) {
	if !src.valid() {
		return Plane{}, ErrInvalidPlane
	}
	ksize = OddKernelSize(ksize)
	dst := src.like()
	if ksize == 1 {
		copy(dst.Data, src.Data)
		return dst, nil
	}

	half := ksize / 2
	rank := ksize * ksize / 2
	ch := src.Channels
	rowLen := src.Width * ch

	sample := func(x, y, c int) byte {
		x = clampInt(x, 0, src.Width-1)
		y = clampInt(y, 0, src.Height-1)
		return src.Data[y*rowLen+x*ch+c]
	}

	var hist [256]int
	for c := range ch {
		for y := range src.Height {
			// Seed the histogram with the window centred on x = 0, then
			// slide it one column at a time.
			hist = [256]int{}
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					hist[sample(dx, y+dy, c)]++
				}
			}
			for x := range src.Width {
				if x > 0 {
					for dy := -half; dy <= half; dy++ {
						hist[sample(x-half-1, y+dy, c)]--
						hist[sample(x+half, y+dy, c)]++
					}
				}
				dst.Data[y*rowLen+x*ch+c] = histogramRank(&hist, rank)
			}
		}
	}
	return dst, nil
}

// histogramRank returns the value at zero-based position rank of the
// sorted samples counted in hist.
func histogramRank(hist *[256]int, rank int) byte {
	seen := 0
	for v, n := range hist {
		seen += n
		if seen > rank {
			return byte(v)
		}
	}
	return 255
}
