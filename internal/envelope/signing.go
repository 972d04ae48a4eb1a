package envelope

import (
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// SigningKeypair is an ML-DSA-65 keypair used to sign envelopes.
type SigningKeypair struct {
	// PublicKey is the packed ML-DSA-65 public key.
	PublicKey []byte
	// SecretKey is the packed ML-DSA-65 private key.
	SecretKey []byte
}

// GenerateSigningKeypair creates a new ML-DSA-65 keypair.
func GenerateSigningKeypair() (*SigningKeypair, error) {
	pub, priv, err := mldsa65.GenerateKey(random())
	if err != nil {
		return nil, err
	}

	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &SigningKeypair{PublicKey: pubBytes, SecretKey: privBytes}, nil
}

// NewSigningKeypairFromBytes rebuilds a signing keypair from its packed
// private key. The public key is recomputed.
func NewSigningKeypairFromBytes(secretKey []byte) (*SigningKeypair, error) {
	if len(secretKey) != MLDSASecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, err
	}
	pub, _ := priv.Public().(*mldsa65.PublicKey).MarshalBinary()

	return &SigningKeypair{PublicKey: pub, SecretKey: secretKey}, nil
}

// Sign signs message with the keypair's private key.
func (k *SigningKeypair) Sign(message []byte) ([]byte, error) {
	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(k.SecretKey); err != nil {
		return nil, err
	}

	sig := make([]byte, mldsa65.SignatureSize)
	if err := mldsa65.SignTo(&priv, message, nil, false, sig); err != nil {
		return nil, err
	}
	return sig, nil
}
