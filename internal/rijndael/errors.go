package rijndael

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not 16, 24 or 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidBlockLength is returned when a block is not exactly 16 bytes.
	ErrInvalidBlockLength = errors.New("invalid block length")
)
