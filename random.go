package cryptoran

import (
	"crypto/rand"
	"fmt"
)

// GenerateKey returns a random key of the given size in bits: 128, 192 or 256.
func GenerateKey(bits int) ([]byte, error) {
	switch bits {
	case 128, 192, 256:
	default:
		return nil, fmt.Errorf("%w: got %d bits, want 128, 192 or 256", ErrInvalidKeySize, bits)
	}
	key := make([]byte, bits/8)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateIV returns a random 16-byte CBC IV or CTR initial counter.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}
	return iv, nil
}
