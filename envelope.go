package cryptoran

import (
	"github.com/cryptoran/cryptoran-go/internal/envelope"
)

// Envelope is a message sealed for one recipient and signed by its sender.
// It marshals to JSON with base64url fields.
type Envelope = envelope.Envelope

// Keypair is an ML-KEM-768 recipient keypair.
type Keypair = envelope.Keypair

// SigningKeypair is an ML-DSA-65 sender keypair.
type SigningKeypair = envelope.SigningKeypair

// GenerateKeypair creates a new recipient keypair.
func GenerateKeypair() (*Keypair, error) {
	return envelope.GenerateKeypair()
}

// KeypairFromSecretKey rebuilds a recipient keypair from its secret key.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	return envelope.KeypairFromSecretKey(secretKey)
}

// GenerateSigningKeypair creates a new sender keypair.
func GenerateSigningKeypair() (*SigningKeypair, error) {
	return envelope.GenerateSigningKeypair()
}

// SigningKeypairFromSecretKey rebuilds a sender keypair from its secret key.
func SigningKeypairFromSecretKey(secretKey []byte) (*SigningKeypair, error) {
	return envelope.NewSigningKeypairFromBytes(secretKey)
}

// Seal encrypts plaintext for recipientPublicKey in CBC or CTR mode and signs
// the envelope with signer. aad is bound into the key derivation and
// carried in the clear.
func Seal(recipientPublicKey, plaintext, aad []byte, m Mode, signer *SigningKeypair) (*Envelope, error) {
	env, err := envelope.Seal(recipientPublicKey, plaintext, aad, m, signer)
	if err != nil {
		return nil, wrapError("seal", m, err)
	}
	return env, nil
}

// ParseEnvelope decodes a JSON envelope without verifying it.
func ParseEnvelope(data []byte) (*Envelope, error) {
	env, err := envelope.Parse(data)
	if err != nil {
		return nil, &DecryptionError{Stage: "parse", Err: err}
	}
	return env, nil
}

// Open verifies the envelope signature and then decrypts it. If
// trustedSigner is non-nil the envelope must have been signed by that key.
func Open(env *Envelope, recipient *Keypair, trustedSigner []byte) ([]byte, error) {
	if env == nil {
		return nil, &DecryptionError{Stage: "parse", Err: envelope.ErrInvalidPayload}
	}
	if recipient == nil {
		return nil, &DecryptionError{Stage: "open", Err: envelope.ErrInvalidSecretKeySize}
	}

	var err error
	if trustedSigner != nil {
		err = envelope.VerifySignatureFrom(env, trustedSigner)
	} else {
		err = envelope.VerifySignature(env)
	}
	if err != nil {
		return nil, &SignatureVerificationError{Err: err}
	}

	plaintext, err := envelope.Open(env, recipient)
	if err != nil {
		return nil, &DecryptionError{Stage: "open", Err: err}
	}
	return plaintext, nil
}
