package cryptoran

import (
	"errors"
	"fmt"

	"github.com/cryptoran/cryptoran-go/internal/envelope"
	"github.com/cryptoran/cryptoran-go/internal/mode"
	"github.com/cryptoran/cryptoran-go/internal/rijndael"
)

// Sentinel errors for errors.Is() checks. They are the same values the
// internal layers return.
var (
	// ErrInvalidKeyLength is returned when a key is not 16, 24 or 32 bytes.
	ErrInvalidKeyLength = rijndael.ErrInvalidKeyLength

	// ErrInvalidBlockLength is returned when a single-block operation is given
	// anything other than 16 bytes.
	ErrInvalidBlockLength = rijndael.ErrInvalidBlockLength

	// ErrInvalidDataLength is returned when ECB or CBC ciphertext is empty or
	// not a multiple of 16 bytes.
	ErrInvalidDataLength = mode.ErrInvalidDataLength

	// ErrInvalidIVLength is returned when a CBC IV or CTR counter is missing
	// or not 16 bytes.
	ErrInvalidIVLength = mode.ErrInvalidIVLength

	// ErrInvalidPadding is returned when PKCS#7 padding fails validation.
	ErrInvalidPadding = mode.ErrInvalidPadding

	// ErrUnsupportedMode is returned for a mode outside ECB, CBC and CTR.
	ErrUnsupportedMode = mode.ErrUnsupportedMode

	// ErrInvalidKeySize is returned when a key size in bits is not 128, 192
	// or 256.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrDecryptionFailed is returned when an envelope does not decrypt.
	ErrDecryptionFailed = envelope.ErrDecryptionFailed

	// ErrSignatureInvalid is returned when envelope signature verification fails.
	ErrSignatureInvalid = envelope.ErrSignatureVerificationFailed
)

// CryptoranError is implemented by all typed errors in this package.
type CryptoranError interface {
	error
	CryptoranError() // marker method
}

// CipherError describes a failed encryption or decryption.
type CipherError struct {
	// Op is the operation that failed, e.g. "encrypt" or "decrypt block".
	Op string
	// Mode is the mode of operation, or zero for single-block operations.
	Mode Mode
	Err  error
}

func (e *CipherError) Error() string {
	if e.Mode != 0 {
		return fmt.Sprintf("cryptoran: %s %s: %v", e.Mode, e.Op, e.Err)
	}
	return fmt.Sprintf("cryptoran: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CipherError) Unwrap() error {
	return e.Err
}

// CryptoranError implements the CryptoranError interface.
func (e *CipherError) CryptoranError() {}

// DecryptionError represents a failure to open an envelope.
type DecryptionError struct {
	Stage string // "parse" or "open"
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// CryptoranError implements the CryptoranError interface.
func (e *DecryptionError) CryptoranError() {}

// SignatureVerificationError indicates potential tampering with an envelope.
type SignatureVerificationError struct {
	Err error
}

func (e *SignatureVerificationError) Error() string {
	return fmt.Sprintf("signature verification failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SignatureVerificationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SignatureVerificationError) Is(target error) bool {
	return target == ErrSignatureInvalid
}

// CryptoranError implements the CryptoranError interface.
func (e *SignatureVerificationError) CryptoranError() {}

func wrapError(op string, m Mode, err error) error {
	if err == nil {
		return nil
	}
	return &CipherError{Op: op, Mode: m, Err: err}
}
