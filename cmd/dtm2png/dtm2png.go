// dtm2png is a tool which converts dtm files to 16-bit grayscale or
// grayscale+alpha PNG files, for quick visual inspection of a plane with any
// standard image viewer.
package main

import (
	"encoding/binary"
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"

	"github.com/kurtkuehnert/dtm"
)

// flagForce specifies if file overwriting should be forced, when a PNG file
// of the same name already exists.
var flagForce bool

func init() {
	flag.BoolVar(&flagForce, "f", false, "Force overwrite.")
}

func main() {
	flag.Parse()
	for _, path := range flag.Args() {
		if err := dtm2png(path); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

// dtm2png converts the provided dtm file to a PNG file.
func dtm2png(path string) error {
	d, pixels, err := dtm.DecodeFile(path)
	if err != nil {
		return errors.WithStack(err)
	}

	img, err := toImage(d, pixels)
	if err != nil {
		return err
	}

	pngPath := pathutil.TrimExt(path) + ".png"
	if !flagForce {
		exists, err := osutil.Exists(pngPath)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errors.Errorf("the file %q exists already", pngPath)
		}
	}

	fw, err := os.Create(pngPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer fw.Close()

	if err := png.Encode(fw, img); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// toImage converts a decoded plane buffer into a standard library image,
// choosing between 16-bit grayscale and grayscale+alpha depending on the
// channel count. Only 1 and 2 channel descriptors are supported; anything
// else cannot be represented as a single PNG without a color model decision
// this tool does not make for the caller.
//
// dtm samples are little-endian; image.Gray16 and image.NRGBA64 store their
// Pix buffers big-endian, so every sample is re-encoded rather than copied.
func toImage(d dtm.Descriptor, pixels []byte) (image.Image, error) {
	rect := image.Rect(0, 0, d.Width, d.Height)
	n := d.Width * d.Height
	switch d.ChannelCount {
	case 1:
		img := image.NewGray16(rect)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(pixels[2*i : 2*i+2])
			binary.BigEndian.PutUint16(img.Pix[2*i:2*i+2], v)
		}
		return img, nil
	case 2:
		img := image.NewNRGBA64(rect)
		for i := 0; i < n; i++ {
			gray := binary.LittleEndian.Uint16(pixels[4*i : 4*i+2])
			alpha := binary.LittleEndian.Uint16(pixels[4*i+2 : 4*i+4])
			dst := img.Pix[8*i : 8*i+8]
			binary.BigEndian.PutUint16(dst[0:2], gray)
			binary.BigEndian.PutUint16(dst[2:4], gray)
			binary.BigEndian.PutUint16(dst[4:6], gray)
			binary.BigEndian.PutUint16(dst[6:8], alpha)
		}
		return img, nil
	default:
		return nil, errors.Errorf("dtm2png: unsupported channel count %d, want 1 or 2", d.ChannelCount)
	}
}
