package dtm_test

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kurtkuehnert/dtm"
)

func removeQuietly(path string) {
	_ = os.Remove(path)
}

// ExampleEncode encodes a small single-channel plane and inspects the
// resulting container's total size.
func ExampleEncode() {
	d := dtm.Descriptor{PixelSize: 2, ChannelCount: 1, Width: 4, Height: 4}
	pixels := make([]byte, d.PixelSize*d.PixelCount())

	encoded, err := dtm.Encode(d, pixels)
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}
	fmt.Println(len(encoded))
	// Output: 30
}

// ExampleDecode encodes a small 2x2 single-channel plane and decodes it back.
func ExampleDecode() {
	d := dtm.Descriptor{PixelSize: 2, ChannelCount: 1, Width: 2, Height: 2}
	pixels := make([]byte, d.PixelSize*d.PixelCount())
	binary.LittleEndian.PutUint16(pixels[0:2], 100)
	binary.LittleEndian.PutUint16(pixels[2:4], 200)
	binary.LittleEndian.PutUint16(pixels[4:6], 300)
	binary.LittleEndian.PutUint16(pixels[6:8], 400)

	encoded, err := dtm.Encode(d, pixels)
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}

	gotD, gotPixels, err := dtm.Decode(encoded)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	fmt.Println(gotD.Width, gotD.Height, gotD.ChannelCount)
	fmt.Println(
		binary.LittleEndian.Uint16(gotPixels[0:2]),
		binary.LittleEndian.Uint16(gotPixels[2:4]),
		binary.LittleEndian.Uint16(gotPixels[4:6]),
		binary.LittleEndian.Uint16(gotPixels[6:8]),
	)
	// Output:
	// 2 2 1
	// 100 200 300 400
}

// ExampleEncodeFile writes a two-channel image to disk and reads it back
// through the file-based API.
func ExampleEncodeFile() {
	dir, err := filepath.Abs(".")
	if err != nil {
		fmt.Println("path error:", err)
		return
	}
	path := filepath.Join(dir, "example_dual_channel_test_tmp.dtm")

	d := dtm.Descriptor{PixelSize: 2, ChannelCount: 2, Width: 3, Height: 3}
	pixels := make([]byte, d.PixelSize*d.PixelCount())
	for i := 0; i < d.Width*d.Height; i++ {
		off := 2 * (i*2 + 0)
		binary.LittleEndian.PutUint16(pixels[off:off+2], uint16(i))
		off = 2 * (i*2 + 1)
		binary.LittleEndian.PutUint16(pixels[off:off+2], uint16(255-i))
	}

	if err := dtm.EncodeFile(path, d, pixels); err != nil {
		fmt.Println("encode error:", err)
		return
	}
	defer removeQuietly(path)

	gotD, _, err := dtm.DecodeFile(path)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	fmt.Println(gotD.ChannelCount)
	// Output: 2
}
