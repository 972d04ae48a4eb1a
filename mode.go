package cryptoran

import "github.com/cryptoran/cryptoran-go/internal/mode"

// Mode selects a mode of operation. The zero value is not a valid mode.
type Mode = mode.Mode

// Supported modes.
const (
	// ECB encrypts every block independently. Identical plaintext blocks
	// produce identical ciphertext blocks.
	ECB = mode.ECB
	// CBC chains blocks through the previous ciphertext. Requires a 16-byte IV.
	CBC = mode.CBC
	// CTR turns the cipher into a stream. Requires a 16-byte initial counter;
	// no padding is applied.
	CTR = mode.CTR
)

// ParseMode parses "ecb", "cbc" or "ctr", ignoring case.
func ParseMode(s string) (Mode, error) {
	return mode.ParseMode(s)
}
