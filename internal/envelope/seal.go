package envelope

import (
	"fmt"
	"io"

	"github.com/cryptoran/cryptoran-go/internal/mode"
	"github.com/cryptoran/cryptoran-go/internal/rijndael"
)

// Seal encrypts plaintext for the holder of recipientPublicKey and signs the
// result with signer.
//
// The sealing process:
//  1. ML-KEM-768 encapsulation to the recipient produces a shared secret
//  2. HKDF-SHA-512 derives an AES-256 key from the secret, AAD and KEM ciphertext
//  3. AES-256 in mode m encrypts plaintext under a random IV
//  4. ML-DSA-65 signs the transcript of every field
func Seal(recipientPublicKey, plaintext, aad []byte, m mode.Mode, signer *SigningKeypair) (*Envelope, error) {
	algs, err := Suite(m)
	if err != nil {
		return nil, err
	}
	if signer == nil || len(signer.PublicKey) != MLDSAPublicKeySize {
		return nil, fmt.Errorf("signer: %w", ErrInvalidPublicKeySize)
	}

	// 1. KEM Encapsulation
	ctKem, sharedSecret, err := encapsulate(recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("encapsulate: %w", err)
	}

	// 2. Key Derivation (HKDF-SHA-512)
	aesKey, err := messageKey(sharedSecret, aad, ctKem)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	// 3. AES Encryption
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(random(), iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	block, err := rijndael.NewCipher(aesKey)
	if err != nil {
		return nil, err
	}
	ciphertext, err := mode.Encrypt(block, m, iv, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	// 4. Signature
	transcript := buildTranscript(Version, algs, ctKem, iv, aad, ciphertext, signer.PublicKey)
	sig, err := signer.Sign(transcript)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	return &Envelope{
		V:          Version,
		Algs:       algs,
		CtKem:      ToBase64URL(ctKem),
		IV:         ToBase64URL(iv),
		AAD:        ToBase64URL(aad),
		Ciphertext: ToBase64URL(ciphertext),
		Sig:        ToBase64URL(sig),
		SigPk:      ToBase64URL(signer.PublicKey),
	}, nil
}
