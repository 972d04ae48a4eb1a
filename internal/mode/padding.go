package mode

import (
	"crypto/subtle"
	"fmt"
)

// Pad returns a copy of data extended with PKCS#7 padding to a multiple of
// blockSize. Padding is always added: block-aligned input, including empty
// input, gains one full block of value blockSize.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad validates and strips PKCS#7 padding. The whole final block is
// inspected regardless of where a mismatch occurs, and every failure yields
// the same ErrInvalidPadding.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	n := len(data)
	if n == 0 || n%blockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPadding, n)
	}

	pad := int(data[n-1])
	good := subtle.ConstantTimeLessOrEq(1, pad) & subtle.ConstantTimeLessOrEq(pad, blockSize)
	for i := 0; i < blockSize; i++ {
		inPad := subtle.ConstantTimeLessOrEq(i+1, pad)
		match := subtle.ConstantTimeByteEq(data[n-1-i], byte(pad))
		good &= (inPad ^ 1) | match
	}
	if good != 1 {
		return nil, ErrInvalidPadding
	}
	return data[:n-pad], nil
}
