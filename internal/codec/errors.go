package codec

import "errors"

// Errors returned by plane decoding. The root dtm package maps these onto
// its own exported sentinel errors.
var (
	// ErrInsufficientInputData indicates an opcode stream ended without
	// filling the plane, produced more samples than the plane holds, or a
	// DEFAULT opcode's payload ran past the end of the input.
	ErrInsufficientInputData = errors.New("codec: opcode stream did not fill the plane")
	// ErrInvalidChannels indicates a plane's byte length exceeds the raw
	// plane size; no valid encoder produces this.
	ErrInvalidChannels = errors.New("codec: plane byte length exceeds raw size")
)
