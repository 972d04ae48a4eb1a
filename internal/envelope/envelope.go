package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/cryptoran/cryptoran-go/internal/mode"
)

// Envelope is a sealed, signed message.
type Envelope struct {
	// V is the format version number.
	V int `json:"v"`
	// Algs specifies the algorithm suite used.
	Algs AlgorithmSuite `json:"algs"`
	// CtKem is the ML-KEM-768 ciphertext (base64url-encoded).
	CtKem string `json:"ct_kem"`
	// IV is the CBC IV or CTR initial counter (base64url-encoded).
	IV string `json:"iv"`
	// AAD is the associated data bound into the key derivation (base64url-encoded).
	AAD string `json:"aad"`
	// Ciphertext is the AES-encrypted payload (base64url-encoded).
	Ciphertext string `json:"ciphertext"`
	// Sig is the ML-DSA-65 signature over the transcript (base64url-encoded).
	Sig string `json:"sig"`
	// SigPk is the signer's ML-DSA-65 public key (base64url-encoded).
	SigPk string `json:"sig_pk"`
}

// AlgorithmSuite names the algorithms an envelope was sealed with.
type AlgorithmSuite struct {
	// KEM is the key encapsulation mechanism (e.g., "ML-KEM-768").
	KEM string `json:"kem"`
	// Sig is the signature algorithm (e.g., "ML-DSA-65").
	Sig string `json:"sig"`
	// Cipher is the symmetric cipher and mode (e.g., "AES-256-CTR").
	Cipher string `json:"cipher"`
	// KDF is the key derivation function (e.g., "HKDF-SHA-512").
	KDF string `json:"kdf"`
}

// String returns the colon-joined suite, as it appears in the transcript.
func (a AlgorithmSuite) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", a.KEM, a.Sig, a.Cipher, a.KDF)
}

// Mode returns the cipher mode named by the suite.
func (a AlgorithmSuite) Mode() (mode.Mode, error) {
	if a.KEM != AlgKEM || a.Sig != AlgSig || a.KDF != AlgKDF {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, a)
	}
	m, ok := cipherModes[a.Cipher]
	if !ok {
		return 0, fmt.Errorf("%w: cipher %q", ErrInvalidAlgorithm, a.Cipher)
	}
	return m, nil
}

// Marshal encodes the envelope as JSON.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Parse decodes and structurally validates a JSON envelope. It does not
// verify the signature.
func Parse(data []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if e.V != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPayload, e.V)
	}
	if _, err := e.Algs.Mode(); err != nil {
		return nil, err
	}
	if e.CtKem == "" || e.IV == "" || e.Sig == "" || e.SigPk == "" {
		return nil, fmt.Errorf("%w: missing required field", ErrInvalidPayload)
	}
	if !ValidateSigningPublicKey(e.SigPk) {
		return nil, fmt.Errorf("%w: sig_pk is not an %s public key", ErrInvalidPayload, AlgSig)
	}
	return &e, nil
}

// decoded holds the raw bytes of every envelope field.
type decoded struct {
	ctKem, iv, aad, ciphertext, sig, sigPk []byte
}

func (e *Envelope) decode() (*decoded, error) {
	var d decoded
	fields := []struct {
		name string
		in   string
		out  *[]byte
	}{
		{"ct_kem", e.CtKem, &d.ctKem},
		{"iv", e.IV, &d.iv},
		{"aad", e.AAD, &d.aad},
		{"ciphertext", e.Ciphertext, &d.ciphertext},
		{"sig", e.Sig, &d.sig},
		{"sig_pk", e.SigPk, &d.sigPk},
	}

	for _, f := range fields {
		b, err := FromBase64URL(f.in)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidPayload, f.name, err)
		}
		*f.out = b
	}
	return &d, nil
}

// buildTranscript constructs the bytes covered by the signature.
func buildTranscript(version int, algs AlgorithmSuite, ctKem, iv, aad, ciphertext, sigPk []byte) []byte {
	// version (1 byte)
	transcript := []byte{byte(version)}

	// algs ciphersuite string
	transcript = append(transcript, algs.String()...)

	// context string
	transcript = append(transcript, HKDFContext...)

	// raw bytes
	transcript = append(transcript, ctKem...)
	transcript = append(transcript, iv...)
	transcript = append(transcript, aad...)
	transcript = append(transcript, ciphertext...)
	transcript = append(transcript, sigPk...)

	return transcript
}
