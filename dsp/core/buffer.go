package core

// Deinterleave splits frames of interleaved samples in src into the planar
// channel slices of dst. Only min(len(src)/len(dst), len(dst[ch])) frames are
// written. It returns the number of frames copied.
func Deinterleave(dst [][]float64, src []float64) int {
	channels := len(dst)
	if channels == 0 {
		return 0
	}

	frames := len(src) / channels
	for ch := range dst {
		frames = min(frames, len(dst[ch]))
	}

	for ch, plane := range dst {
		for i := range frames {
			plane[i] = src[i*channels+ch]
		}
	}

	return frames
}

// Interleave is the inverse of Deinterleave: it writes frames of the planar
// channels in src into dst and returns the number of frames copied.
func Interleave(dst []float64, src [][]float64) int {
	channels := len(src)
	if channels == 0 {
		return 0
	}

	frames := len(dst) / channels
	for ch := range src {
		frames = min(frames, len(src[ch]))
	}

	for ch, plane := range src {
		for i := range frames {
			dst[i*channels+ch] = plane[i]
		}
	}

	return frames
}
