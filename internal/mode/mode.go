package mode

import (
	"fmt"
	"strings"
)

// Mode selects a mode of operation. The zero value is not a valid mode.
type Mode int

const (
	// ECB encrypts every block independently.
	ECB Mode = iota + 1
	// CBC chains each plaintext block with the previous ciphertext block.
	CBC
	// CTR XORs the message with an encrypted big-endian counter.
	CTR
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ECB:
		return "ecb"
	case CBC:
		return "cbc"
	case CTR:
		return "ctr"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// NeedsIV reports whether the mode requires an IV or initial counter.
func (m Mode) NeedsIV() bool {
	return m == CBC || m == CTR
}

// Padded reports whether the mode applies PKCS#7 padding.
func (m Mode) Padded() bool {
	return m == ECB || m == CBC
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ecb":
		return ECB, nil
	case "cbc":
		return CBC, nil
	case "ctr":
		return CTR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}

// Encrypt encrypts plaintext under b in the given mode. iv is the CBC IV or
// the CTR initial counter and is ignored for ECB. The result is a new slice;
// neither plaintext nor iv is modified.
func Encrypt(b Block, m Mode, iv, plaintext []byte) ([]byte, error) {
	switch m {
	case ECB:
		padded := Pad(plaintext, b.BlockSize())
		if err := encryptECB(b, padded, padded); err != nil {
			return nil, err
		}
		return padded, nil
	case CBC:
		enc, err := NewCBCEncrypter(b, iv)
		if err != nil {
			return nil, err
		}
		padded := Pad(plaintext, b.BlockSize())
		if err := enc.CryptBlocks(padded, padded); err != nil {
			return nil, err
		}
		return padded, nil
	case CTR:
		return xorCTR(b, iv, plaintext)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, m)
	}
}

// Decrypt reverses Encrypt. For ECB and CBC the padding is validated and
// stripped.
func Decrypt(b Block, m Mode, iv, ciphertext []byte) ([]byte, error) {
	switch m {
	case ECB:
		if err := checkBlocks(ciphertext, b.BlockSize()); err != nil {
			return nil, err
		}
		out := make([]byte, len(ciphertext))
		if err := decryptECB(b, out, ciphertext); err != nil {
			return nil, err
		}
		return Unpad(out, b.BlockSize())
	case CBC:
		dec, err := NewCBCDecrypter(b, iv)
		if err != nil {
			return nil, err
		}
		if err := checkBlocks(ciphertext, b.BlockSize()); err != nil {
			return nil, err
		}
		out := make([]byte, len(ciphertext))
		if err := dec.CryptBlocks(out, ciphertext); err != nil {
			return nil, err
		}
		return Unpad(out, b.BlockSize())
	case CTR:
		return xorCTR(b, iv, ciphertext)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, m)
	}
}

// xorCTR is both CTR encryption and decryption.
func xorCTR(b Block, counter, in []byte) ([]byte, error) {
	stream, err := NewCTR(b, counter)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(in))
	if err := stream.XORKeyStream(out, in); err != nil {
		return nil, err
	}
	return out, nil
}

// checkBlocks requires a non-empty, block-aligned padded ciphertext.
func checkBlocks(data []byte, blockSize int) error {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return fmt.Errorf("%w: got %d bytes, block size %d", ErrInvalidDataLength, len(data), blockSize)
	}
	return nil
}

func checkIV(iv []byte, blockSize int) error {
	if len(iv) != blockSize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidIVLength, len(iv), blockSize)
	}
	return nil
}
