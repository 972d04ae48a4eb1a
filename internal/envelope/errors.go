package envelope

import (
	"errors"
	"fmt"

	"github.com/cryptoran/cryptoran-go/internal/mode"
)

var (
	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrKeypairMismatch is returned when a public key is not the one embedded
	// in the secret key it is paired with.
	ErrKeypairMismatch = errors.New("public key does not match secret key")

	// ErrInvalidCiphertextSize is returned when the KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrSignatureVerificationFailed is returned when signature verification fails.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrSignerKeyMismatch is returned when the envelope's signing key does
	// not match the key the caller expected.
	ErrSignerKeyMismatch = errors.New("signer public key mismatch")

	// ErrDecryptionFailed is returned when the payload does not decrypt, for
	// example because its padding is invalid.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPayload is returned when the envelope structure is invalid.
	// This includes malformed JSON, missing required fields, or invalid encoding.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidAlgorithm is returned when an unrecognized or unsupported
	// algorithm is named in the envelope.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
)

func errUnsupportedMode(m mode.Mode) error {
	return fmt.Errorf("%w: %v cannot seal an envelope", mode.ErrUnsupportedMode, m)
}
