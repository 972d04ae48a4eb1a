package envelope

import (
	"bytes"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// VerifySignature verifies the ML-DSA-65 signature on the envelope against
// the signing key it carries.
// CRITICAL: This MUST be called BEFORE Open.
func VerifySignature(env *Envelope) error {
	if env == nil {
		return fmt.Errorf("%w: nil envelope", ErrInvalidPayload)
	}
	d, err := env.decode()
	if err != nil {
		return err
	}

	transcript := buildTranscript(env.V, env.Algs, d.ctKem, d.iv, d.aad, d.ciphertext, d.sigPk)
	return Verify(d.sigPk, transcript, d.sig)
}

// VerifySignatureFrom is VerifySignature with the signer pinned to
// expectedPublicKey.
func VerifySignatureFrom(env *Envelope, expectedPublicKey []byte) error {
	if env == nil {
		return fmt.Errorf("%w: nil envelope", ErrInvalidPayload)
	}
	sigPk, err := FromBase64URL(env.SigPk)
	if err != nil {
		return fmt.Errorf("%w: decode sig_pk: %v", ErrInvalidPayload, err)
	}
	if !bytes.Equal(sigPk, expectedPublicKey) {
		return ErrSignerKeyMismatch
	}
	return VerifySignature(env)
}

// ValidateSigningPublicKey reports whether a base64url-encoded key has the
// size of an ML-DSA-65 public key.
func ValidateSigningPublicKey(publicKey string) bool {
	b, err := FromBase64URL(publicKey)
	if err != nil {
		return false
	}
	return len(b) == MLDSAPublicKeySize
}

// Verify verifies an ML-DSA-65 signature (low-level function).
func Verify(publicKey, message, signature []byte) error {
	pk := &mldsa65.PublicKey{}
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}

	if !mldsa65.Verify(pk, message, nil, signature) {
		return ErrSignatureVerificationFailed
	}

	return nil
}
