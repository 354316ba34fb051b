// Package dtm implements a lossless codec for 16-bit-per-sample raster
// planes such as digital terrain models: a byte-oriented opcode stream
// driven by a Paeth-style spatial predictor and a small recency cache,
// specialized for the smooth-gradient statistics of elevation and
// intensity imagery. Decoding is substantially cheaper than a general
// DEFLATE-based format such as PNG, at the cost of a format with no
// integrity checking and no random access.
package dtm

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/kurtkuehnert/dtm/internal/codec"
)

// Descriptor describes the shape of a dtm image: how many bytes each
// sample occupies, how many channels are interleaved per pixel, and the
// plane dimensions. It is produced by Decode when parsing a file, and
// supplied by the caller when encoding one.
type Descriptor struct {
	// PixelSize is the number of bytes per sample. The format only ever
	// stores 2 (16-bit samples); any other value is rejected on decode.
	PixelSize int
	// ChannelCount is the number of interleaved channels, 1 to 4.
	ChannelCount int
	// Width is the plane width in samples.
	Width int
	// Height is the plane height in samples.
	Height int
}

// PixelCount returns the total number of samples across all channels.
func (d Descriptor) PixelCount() int {
	return d.ChannelCount * d.Width * d.Height
}

// PlaneSize returns the raw byte size of a single channel plane.
func (d Descriptor) PlaneSize() int {
	return d.PixelSize * d.Width * d.Height
}

// pixelBufferSize is the number of bytes a pixel-interleaved buffer must
// hold for the given descriptor.
func (d Descriptor) pixelBufferSize() int {
	return d.PixelSize * d.PixelCount()
}

// Encode compresses a pixel-interleaved buffer of 16-bit samples according
// to the descriptor and returns the encoded container bytes.
//
// pixels must hold at least d.PixelSize*d.ChannelCount*d.Width*d.Height
// bytes, sample (i, c) residing at byte offset 2*(i*d.ChannelCount+c) in
// little-endian order; otherwise ErrInsufficientInputData is returned.
func Encode(d Descriptor, pixels []byte) ([]byte, error) {
	if d.ChannelCount <= 0 || d.ChannelCount > maxChannels {
		return nil, errors.WithStack(ErrInvalidChannels)
	}
	if err := checkPixelBuffer(d, pixels); err != nil {
		return nil, err
	}

	planes := make([][]byte, d.ChannelCount)
	for c := 0; c < d.ChannelCount; c++ {
		samples := deinterleaveChannel(pixels, d, c)
		planes[c] = codec.EncodePlane(samples, d.Width, d.Height)
	}

	h := &header{
		pixelSize: expectedPixelSize,
		width:     uint32(d.Width),
		height:    uint32(d.Height),
	}
	for c, plane := range planes {
		h.planeLengths[c] = uint32(len(plane))
	}

	total := HeaderSize
	for _, plane := range planes {
		total += len(plane)
	}
	out := make([]byte, 0, total)
	out = append(out, h.marshal()...)
	for _, plane := range planes {
		out = append(out, plane...)
	}
	return out, nil
}

// EncodeInto behaves like Encode but writes into a caller-provided buffer,
// returning the number of bytes written. It fails with
// ErrInsufficientOutputBuffer if dst is too small to hold the result; dst's
// contents are undefined in that case.
func EncodeInto(dst []byte, d Descriptor, pixels []byte) (int, error) {
	encoded, err := Encode(d, pixels)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(encoded) {
		return 0, errors.WithStack(ErrInsufficientOutputBuffer)
	}
	return copy(dst, encoded), nil
}

// EncodeFile encodes pixels per the descriptor and writes the result to
// path, creating or truncating the file as needed.
func EncodeFile(path string, d Descriptor, pixels []byte) error {
	encoded, err := Encode(d, pixels)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return ioErr(err)
	}
	return nil
}

// Decode parses an encoded dtm container and returns its descriptor along
// with the reconstructed pixel-interleaved sample buffer.
func Decode(data []byte) (Descriptor, []byte, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Descriptor{}, nil, err
	}

	d := Descriptor{
		PixelSize:    expectedPixelSize,
		ChannelCount: h.channelCount(),
		Width:        int(h.width),
		Height:       int(h.height),
	}

	pixels := make([]byte, d.pixelBufferSize())
	cursor := HeaderSize
	for c := 0; c < d.ChannelCount; c++ {
		planeLen := int(h.planeLengths[c])
		if cursor+planeLen > len(data) {
			return Descriptor{}, nil, errors.WithStack(ErrInsufficientInputData)
		}

		samples, err := codec.DecodePlane(data[cursor:cursor+planeLen], d.Width, d.Height)
		if err != nil {
			return Descriptor{}, nil, mapCodecErr(err)
		}
		interleaveChannel(pixels, d, c, samples)
		cursor += planeLen
	}

	return d, pixels, nil
}

// DecodeFile reads path whole and parses it as a dtm container.
func DecodeFile(path string) (Descriptor, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, nil, ioErr(err)
	}
	return Decode(data)
}

// ioErr wraps a filesystem error so that both errors.Is(result, ErrIoError)
// and errors.Is(result, err) hold, keeping the sentinel and the concrete
// os error (e.g. *os.PathError) both inspectable by callers.
func ioErr(err error) error {
	return fmt.Errorf("%w: %w", ErrIoError, err)
}

func checkPixelBuffer(d Descriptor, pixels []byte) error {
	if len(pixels) < d.pixelBufferSize() {
		return errors.WithStack(ErrInsufficientInputData)
	}
	return nil
}

// deinterleaveChannel extracts channel c of a pixel-interleaved buffer into
// its own contiguous plane of samples.
func deinterleaveChannel(pixels []byte, d Descriptor, c int) []uint16 {
	n := d.Width * d.Height
	samples := make([]uint16, n)
	for i := 0; i < n; i++ {
		off := 2 * (i*d.ChannelCount + c)
		samples[i] = binary.LittleEndian.Uint16(pixels[off : off+2])
	}
	return samples
}

// interleaveChannel scatters a decoded plane's samples back into channel c
// of a pixel-interleaved buffer.
func interleaveChannel(pixels []byte, d Descriptor, c int, samples []uint16) {
	for i, v := range samples {
		off := 2 * (i*d.ChannelCount + c)
		binary.LittleEndian.PutUint16(pixels[off:off+2], v)
	}
}

func mapCodecErr(err error) error {
	switch {
	case errors.Is(err, codec.ErrInsufficientInputData):
		return errors.WithStack(ErrInsufficientInputData)
	case errors.Is(err, codec.ErrInvalidChannels):
		return errors.WithStack(ErrInvalidChannels)
	default:
		return errors.WithStack(err)
	}
}
