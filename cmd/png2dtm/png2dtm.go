// png2dtm is a tool which converts 16-bit grayscale or grayscale+alpha PNG
// files to dtm files.
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

// flagForce specifies if file overwriting should be forced, when a dtm file
// of the same name already exists.
var flagForce bool

func init() {
	flag.BoolVar(&flagForce, "f", false, "Force overwrite.")
}

func main() {
	flag.Parse()
	for _, path := range flag.Args() {
		if err := png2dtm(path); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

// png2dtm converts the provided PNG file to a dtm file.
func png2dtm(path string) error {
	fr, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer fr.Close()

	img, err := png.Decode(fr)
	if err != nil {
		return errors.WithStack(err)
	}

	d, pixels, err := fromImage(img)
	if err != nil {
		return err
	}

	dtmPath := pathutil.TrimExt(path) + ".dtm"
	if !flagForce {
		exists, err := osutil.Exists(dtmPath)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errors.Errorf("the file %q exists already", dtmPath)
		}
	}

	if err := dtm.EncodeFile(dtmPath, d, pixels); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// fromImage converts a 16-bit grayscale or grayscale+alpha PNG into a dtm
// descriptor and little-endian pixel-interleaved sample buffer. Any other
// color model is rejected outright; this tool never quantizes or reduces
// bit depth on the caller's behalf.
func fromImage(img image.Image) (dtm.Descriptor, []byte, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray16:
		d := dtm.Descriptor{PixelSize: 2, ChannelCount: 1, Width: width, Height: height}
		pixels := make([]byte, d.PixelSize*d.PixelCount())
		for i := 0; i < width*height; i++ {
			v := binary.BigEndian.Uint16(src.Pix[2*i : 2*i+2])
			binary.LittleEndian.PutUint16(pixels[2*i:2*i+2], v)
		}
		return d, pixels, nil
	case *image.NRGBA64:
		d := dtm.Descriptor{PixelSize: 2, ChannelCount: 2, Width: width, Height: height}
		pixels := make([]byte, d.PixelSize*d.PixelCount())
		for i := 0; i < width*height; i++ {
			s := src.Pix[8*i : 8*i+8]
			gray := binary.BigEndian.Uint16(s[0:2])
			alpha := binary.BigEndian.Uint16(s[6:8])
			binary.LittleEndian.PutUint16(pixels[4*i:4*i+2], gray)
			binary.LittleEndian.PutUint16(pixels[4*i+2:4*i+4], alpha)
		}
		return d, pixels, nil
	default:
		return dtm.Descriptor{}, nil, errors.Errorf("png2dtm: unsupported PNG color model %T, want 16-bit grayscale or grayscale+alpha", img)
	}
}
