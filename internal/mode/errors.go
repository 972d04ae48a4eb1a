package mode

import "errors"

var (
	// ErrInvalidIVLength is returned when a CBC IV or CTR counter is not
	// exactly one block long.
	ErrInvalidIVLength = errors.New("invalid IV length")

	// ErrInvalidPadding is returned when PKCS#7 padding fails validation on
	// decryption. The error never says which byte was wrong.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrUnsupportedMode is returned for a mode outside ECB, CBC and CTR.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrInvalidDataLength is returned when block-mode input is not a
	// positive multiple of the block size.
	ErrInvalidDataLength = errors.New("input not a multiple of the block size")
)
