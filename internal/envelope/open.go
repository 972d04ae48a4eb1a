package envelope

import (
	"fmt"

	"github.com/cryptoran/cryptoran-go/internal/mode"
	"github.com/cryptoran/cryptoran-go/internal/rijndael"
)

// Open decrypts an envelope with the recipient's keypair.
//
// The decryption process:
//  1. ML-KEM-768 decapsulation to recover the shared secret
//  2. HKDF-SHA-512 key derivation using the shared secret, AAD, and KEM ciphertext
//  3. AES-256 decryption in the mode named by the algorithm suite
//
// Security: Open does NOT verify signatures. Callers MUST call
// [VerifySignature] first; CBC and CTR provide no integrity of their own.
func Open(env *Envelope, keypair *Keypair) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidPayload)
	}
	if keypair == nil {
		return nil, fmt.Errorf("%w: nil keypair", ErrInvalidSecretKeySize)
	}
	m, err := env.Algs.Mode()
	if err != nil {
		return nil, err
	}

	d, err := env.decode()
	if err != nil {
		return nil, err
	}

	// 1. KEM Decapsulation
	sharedSecret, err := keypair.Decapsulate(d.ctKem)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}

	// 2. Key Derivation (HKDF-SHA-512)
	aesKey, err := messageKey(sharedSecret, d.aad, d.ctKem)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	// 3. AES Decryption
	block, err := rijndael.NewCipher(aesKey)
	if err != nil {
		return nil, err
	}
	plaintext, err := mode.Decrypt(block, m, d.iv, d.ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
