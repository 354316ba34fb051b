package codec

import (
	"math/rand"
	"testing"
)

// syntheticTerrain builds a smooth, gently sloped plane reminiscent of a
// real elevation raster: a broad gradient with small per-pixel jitter,
// which is exactly the statistic this codec is tuned for.
func syntheticTerrain(width, height int) []uint16 {
	rng := rand.New(rand.NewSource(42))
	samples := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := 20000 + x*3 + y*2
			jitter := rng.Intn(5) - 2
			samples[y*width+x] = uint16(base + jitter)
		}
	}
	return samples
}

func BenchmarkEncodePlaneTerrain(b *testing.B) {
	const width, height = 512, 512
	samples := syntheticTerrain(width, height)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodePlane(samples, width, height)
	}
}

func BenchmarkDecodePlaneTerrain(b *testing.B) {
	const width, height = 512, 512
	samples := syntheticTerrain(width, height)
	encoded := EncodePlane(samples, width, height)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodePlane(encoded, width, height); err != nil {
			b.Fatal(err)
		}
	}
}
