package cryptoran

import (
	"go.uber.org/zap"

	"github.com/cryptoran/cryptoran-go/internal/mode"
	"github.com/cryptoran/cryptoran-go/internal/rijndael"
)

// BlockSize is the AES block size in bytes.
const BlockSize = rijndael.BlockSize

// Cipher is an AES cipher with its key schedule expanded once. The schedule
// is read-only after New, so a Cipher is safe for concurrent use.
type Cipher struct {
	block  *rijndael.Cipher
	logger *zap.Logger
}

// New expands key and returns a Cipher. key must be 16, 24 or 32 bytes.
// WithIV is ignored here; pass the IV to each Encrypt or Decrypt call.
func New(key []byte, opts ...Option) (*Cipher, error) {
	cfg := newConfig(opts)

	block, err := rijndael.NewCipher(key)
	if err != nil {
		return nil, wrapError("new cipher", 0, err)
	}
	cfg.logger.Debug("key expanded",
		zap.Int("key_bits", len(key)*8),
		zap.Int("rounds", block.Schedule().Rounds()),
	)
	return &Cipher{block: block, logger: cfg.logger}, nil
}

// Rounds returns the number of rounds: 10, 12 or 14.
func (c *Cipher) Rounds() int {
	return c.block.Schedule().Rounds()
}

// KeySize returns the key length in bytes.
func (c *Cipher) KeySize() int {
	return c.block.Schedule().KeyWords() * 4
}

// EncryptBlock encrypts exactly one 16-byte block.
func (c *Cipher) EncryptBlock(src []byte) ([]byte, error) {
	dst := make([]byte, BlockSize)
	if err := c.block.Encrypt(dst, src); err != nil {
		return nil, wrapError("encrypt block", 0, err)
	}
	return dst, nil
}

// DecryptBlock decrypts exactly one 16-byte block.
func (c *Cipher) DecryptBlock(src []byte) ([]byte, error) {
	dst := make([]byte, BlockSize)
	if err := c.block.Decrypt(dst, src); err != nil {
		return nil, wrapError("decrypt block", 0, err)
	}
	return dst, nil
}

// Encrypt encrypts plaintext of any length in mode m. iv is required for CBC
// and CTR and ignored for ECB. ECB and CBC output is PKCS#7 padded; CTR
// output has the length of the input.
func (c *Cipher) Encrypt(plaintext []byte, m Mode, iv []byte) ([]byte, error) {
	out, err := mode.Encrypt(c.block, m, iv, plaintext)
	if err != nil {
		return nil, wrapError("encrypt", m, err)
	}
	c.logger.Debug("encrypted",
		zap.Stringer("mode", m),
		zap.Int("bytes", len(plaintext)),
		zap.Int("rounds", c.Rounds()),
	)
	return out, nil
}

// Decrypt reverses Encrypt. For ECB and CBC the padding is validated and
// removed; a bad pad yields ErrInvalidPadding without further detail.
func (c *Cipher) Decrypt(ciphertext []byte, m Mode, iv []byte) ([]byte, error) {
	out, err := mode.Decrypt(c.block, m, iv, ciphertext)
	if err != nil {
		return nil, wrapError("decrypt", m, err)
	}
	c.logger.Debug("decrypted",
		zap.Stringer("mode", m),
		zap.Int("bytes", len(ciphertext)),
		zap.Int("rounds", c.Rounds()),
	)
	return out, nil
}

// Encrypt is a one-shot encryption under key in mode m. Use WithIV for CBC
// and CTR.
func Encrypt(plaintext, key []byte, m Mode, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	c, err := New(key, WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext, m, cfg.iv)
}

// Decrypt is a one-shot decryption under key in mode m. Use WithIV for CBC
// and CTR.
func Decrypt(ciphertext, key []byte, m Mode, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	c, err := New(key, WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ciphertext, m, cfg.iv)
}
