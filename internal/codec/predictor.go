// Package codec implements the byte-level opcode codec shared by the dtm
// plane encoder and decoder: the Paeth-style spatial predictor, the 64-slot
// recency cache, and the opcode dispatch table.
package codec

// Predict returns the Paeth-style reference sample for the pixel at linear
// index i within a plane of the given width, given the samples written so
// far (samples[0:i] must already be valid; samples[i] itself is ignored).
//
// On the first row or first column the predictor degenerates to the
// previous sample (or 0 at the very first pixel). Elsewhere it picks
// whichever of the left, above, or above-left neighbor lies closest to
// A+B-C, breaking ties in order A, then B, then C.
func Predict(samples []uint16, i, width int) uint16 {
	if i < width || i%width == 0 {
		return Previous(samples, i)
	}

	a := samples[i-1]
	b := samples[i-width]
	c := samples[i-width-1]
	p := a + b - c // wraps like any other 16-bit arithmetic

	dA := abs32(int32(p) - int32(a))
	dB := abs32(int32(p) - int32(b))
	dC := abs32(int32(p) - int32(c))

	switch {
	case dA <= dB && dA <= dC:
		return uint16(a)
	case dB <= dC:
		return uint16(b)
	default:
		return uint16(c)
	}
}

// Previous returns the sample immediately preceding i in scan order, or 0
// when i is the first pixel of the plane.
func Previous(samples []uint16, i int) uint16 {
	if i == 0 {
		return 0
	}
	return samples[i-1]
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
