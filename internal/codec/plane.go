package codec

import "encoding/binary"

// EncodePlane greedily opcode-encodes one channel plane of width*height
// 16-bit samples in row-major order. If the resulting stream would not beat
// (or would only match) the raw little-endian encoding of the plane, it
// abandons the attempt and returns the raw encoding instead; callers cannot
// tell the two cases apart from the return value alone, which is the point
// of the fallback (DecodePlane distinguishes them purely by length).
func EncodePlane(samples []uint16, width, height int) []byte {
	n := width * height
	raw := 2 * n
	out := make([]byte, 0, raw+raw/2)

	var (
		cache      Cache
		runLength  uint8
		pending    int32
		hasPending bool
		previous   uint16
	)

	abandoned := false
	for i := 0; i < n; i++ {
		pixel := samples[i]
		// The first pixel has no previous pixel to repeat, so it always
		// takes the predictor-diff path below, even when it happens to
		// equal the zero value that `previous` starts out holding.
		atStart := i == 0
		out = encodePixel(out, samples, &cache, &hasPending, &pending, &runLength, i, previous, pixel, width, atStart)
		previous = pixel
		cache.Store(pixel)

		if len(out) >= raw {
			abandoned = true
			break
		}
	}

	if !abandoned {
		if runLength > 0 {
			out = flushRun(samples, out, &hasPending, &pending, &runLength, n, width)
		}
		if hasPending {
			out = EncodeSingleDiff(out, pending)
		}
	}

	if abandoned || len(out) >= raw {
		return rawPlaneBytes(samples, n)
	}
	return out
}

// encodePixel handles one scan-order pixel: run extension/break, the
// two-pixel diff look-ahead, and the cache/default fallback. It only reads
// the recency cache, never writes it — the caller updates it unconditionally
// after every pixel, run members included.
func encodePixel(out []byte, samples []uint16, cache *Cache, hasPending *bool, pending *int32, runLength *uint8, i int, previous, pixel uint16, width int, atStart bool) []byte {
	if !atStart && pixel == previous {
		*runLength++
		if *runLength == MaxRunLength {
			out = flushRun(samples, out, hasPending, pending, runLength, i, width)
		}
		return out
	}

	if *runLength > 0 {
		out = flushRun(samples, out, hasPending, pending, runLength, i, width)
	}

	ref := Predict(samples, i, width)
	diff := int32(pixel) - int32(ref)

	if InDoubleDiffRange(diff) {
		if *hasPending {
			out = EncodeDoubleDiff(out, *pending, diff)
			*hasPending = false
		} else {
			*pending = diff
			*hasPending = true
		}
		return out
	}

	if *hasPending {
		out = EncodeSingleDiff(out, *pending)
		*hasPending = false
	}

	switch {
	case InSingleDiffRange(diff):
		out = EncodeSingleDiff(out, diff)
	case cache.Has(pixel):
		out = EncodeCache(out, pixel)
	default:
		out = EncodeDefault(out, pixel)
	}
	return out
}

// flushRun closes out the current run of *runLength repeated pixels, folding
// a pending single diff into a DOUBLE_DIFF opcode when the run is exactly one
// pixel long and both diffs fit; that one-pixel run is taken to be the pixel
// just before `index`.
func flushRun(samples []uint16, out []byte, hasPending *bool, pending *int32, runLength *uint8, index, width int) []byte {
	emitRun := true

	if *hasPending {
		previousDiff := *pending
		if *runLength == 1 {
			pixel := samples[index-1]
			ref := Predict(samples, index-1, width)
			diff := int32(pixel) - int32(ref)
			if InDoubleDiffRange(previousDiff) && InDoubleDiffRange(diff) {
				out = EncodeDoubleDiff(out, previousDiff, diff)
				emitRun = false
			}
		}
		if emitRun {
			out = EncodeSingleDiff(out, previousDiff)
		}
		*hasPending = false
	}

	if emitRun {
		out = EncodeRunLength(out, *runLength)
	}
	*runLength = 0
	return out
}

func rawPlaneBytes(samples []uint16, n int) []byte {
	buf := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:], samples[i])
	}
	return buf
}

// DecodePlane reconstructs one channel plane of width*height samples from
// its encoded byte slice. A slice exactly 2*width*height bytes long is
// treated as a raw little-endian copy; a shorter slice is treated as an
// opcode stream; a longer slice is rejected, since no encoder ever produces
// one.
func DecodePlane(data []byte, width, height int) ([]uint16, error) {
	n := width * height
	raw := 2 * n

	switch {
	case len(data) == raw:
		return decodeRawPlane(data, n), nil
	case len(data) > raw:
		return nil, ErrInvalidChannels
	}

	samples := make([]uint16, 0, n)
	var cache Cache
	cursor := 0

	for cursor < len(data) {
		b := data[cursor]
		switch Classify(b) {
		case KindCache:
			v := cache.Load(CacheSlot(b))
			samples = append(samples, v)
			cache.Store(v)
			cursor++

		case KindSingleDiff:
			ref := Predict(samples, len(samples), width)
			v := uint16(int32(ref) + SingleDiffValue(b))
			samples = append(samples, v)
			cache.Store(v)
			cursor++

		case KindDoubleDiff:
			first, second := DoubleDiffValues(b)

			ref := Predict(samples, len(samples), width)
			v1 := uint16(int32(ref) + first)
			samples = append(samples, v1)
			cache.Store(v1)

			ref = Predict(samples, len(samples), width)
			v2 := uint16(int32(ref) + second)
			samples = append(samples, v2)
			cache.Store(v2)
			cursor++

		case KindRunLength:
			count := RunLengthValue(b)
			previous := Previous(samples, len(samples))
			for k := uint8(0); k < count; k++ {
				samples = append(samples, previous)
				cache.Store(previous)
			}
			cursor++

		case KindDefault:
			if cursor+3 > len(data) {
				return nil, ErrInsufficientInputData
			}
			v := uint16(data[cursor+1]) | uint16(data[cursor+2])<<8
			samples = append(samples, v)
			cache.Store(v)
			cursor += 3
		}

		if len(samples) > n {
			return nil, ErrInsufficientInputData
		}
	}

	if len(samples) != n {
		return nil, ErrInsufficientInputData
	}
	return samples, nil
}

func decodeRawPlane(data []byte, n int) []uint16 {
	samples := make([]uint16, n)
	for i := 0; i < n; i++ {
		samples[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return samples
}
