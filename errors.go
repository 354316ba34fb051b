package dtm

import "errors"

// Error taxonomy. None of these are retried internally; on any of them the
// caller's output buffers have undefined content and must be discarded.
var (
	// ErrInsufficientInputData indicates a truncated encoded buffer, an
	// opcode stream that finished without exactly filling its plane, or an encode
	// call whose pixel buffer was shorter than the descriptor requires.
	ErrInsufficientInputData = errors.New("dtm: insufficient input data")
	// ErrInvalidMagic indicates the first three bytes of the encoded buffer
	// are not the ASCII string "dtm".
	ErrInvalidMagic = errors.New("dtm: invalid magic")
	// ErrInvalidChannels indicates a plane's declared byte length exceeds
	// its raw size, the header's implicit channel count resolved to zero,
	// the header's pixel size is not 2, or an encode call's descriptor has a
	// channel count outside 1 to 4.
	ErrInvalidChannels = errors.New("dtm: invalid channel count")
	// ErrInsufficientOutputBuffer indicates a caller-provided output slice
	// in EncodeInto was too small to hold the encoded result.
	ErrInsufficientOutputBuffer = errors.New("dtm: insufficient output buffer")
	// ErrIoError indicates a filesystem operation failed in a file-variant
	// call.
	ErrIoError = errors.New("dtm: I/O error")
)
