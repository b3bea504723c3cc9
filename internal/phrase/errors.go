package phrase

import "errors"

// Validation failures surfaced to callers. Every user-facing entry point
// returns one of these; details are wrapped in, so match with errors.Is.
var (
	ErrInvalidChecksum      = errors.New("invalid checksum")
	ErrInvalidWord          = errors.New("invalid word in phrase")
	ErrInvalidKeysize       = errors.New("invalid keysize")
	ErrInvalidWordLength    = errors.New("invalid number of words in phrase")
	ErrInvalidEntropyLength = errors.New("invalid entropy length")
)
