package dtm

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// HeaderSize is the fixed size, in bytes, of a dtm container header.
const HeaderSize = 28

// maxChannels is the number of plane-length slots carried in the header,
// and therefore the largest channel count the format supports.
const maxChannels = 4

// magic is present at the beginning of every dtm file.
var magic = [3]byte{'d', 't', 'm'}

// expectedPixelSize is the only pixel size this codec understands. The
// field is carried on the wire for forward compatibility but its value is
// semantically fixed; decode rejects anything else.
const expectedPixelSize = 2

// header mirrors the 28-byte on-disk layout:
//
//	offset  size  field
//	0       3     magic "dtm"
//	3       1     pixel size
//	4       4     width, big-endian
//	8       4     height, big-endian
//	12      16    four big-endian plane byte lengths
type header struct {
	pixelSize    uint8
	width        uint32
	height       uint32
	planeLengths [maxChannels]uint32
}

func (h *header) channelCount() int {
	for i, n := range h.planeLengths {
		if n == 0 {
			return i
		}
	}
	return maxChannels
}

func (h *header) marshal() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:3], magic[:])
	buf[3] = h.pixelSize
	binary.BigEndian.PutUint32(buf[4:8], h.width)
	binary.BigEndian.PutUint32(buf[8:12], h.height)
	for i, n := range h.planeLengths {
		binary.BigEndian.PutUint32(buf[12+4*i:16+4*i], n)
	}
	return buf
}

func parseHeader(data []byte) (*header, error) {
	if len(data) < HeaderSize {
		return nil, errors.WithStack(ErrInsufficientInputData)
	}
	if data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] {
		return nil, errors.WithStack(ErrInvalidMagic)
	}

	h := &header{
		pixelSize: data[3],
		width:     binary.BigEndian.Uint32(data[4:8]),
		height:    binary.BigEndian.Uint32(data[8:12]),
	}
	for i := range h.planeLengths {
		off := 12 + 4*i
		h.planeLengths[i] = binary.BigEndian.Uint32(data[off : off+4])
	}

	if h.pixelSize != expectedPixelSize {
		return nil, errors.Wrapf(ErrInvalidChannels, "unsupported pixel size %d", h.pixelSize)
	}
	if h.channelCount() == 0 {
		return nil, errors.WithStack(ErrInvalidChannels)
	}
	return h, nil
}
