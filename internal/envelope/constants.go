package envelope

import "github.com/cryptoran/cryptoran-go/internal/mode"

const (
	// Version is the envelope format version written by Seal.
	Version = 1

	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "cryptoran:envelope:v1"

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSAPublicKeySize = 1952
	// MLDSASecretKeySize is the size of a packed ML-DSA-65 private key in bytes.
	MLDSASecretKeySize = 4032
	// MLDSASignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSASignatureSize = 3309

	// AESKeySize is the size of the derived AES-256 key in bytes.
	AESKeySize = 32
	// IVSize is the size of the CBC IV or CTR initial counter in bytes.
	IVSize = 16

	// PublicKeyOffset is the byte offset where the public key is embedded
	// within an ML-KEM-768 secret key.
	PublicKeyOffset = 1152
)

// Algorithm names carried in the envelope.
const (
	AlgKEM    = "ML-KEM-768"
	AlgSig    = "ML-DSA-65"
	AlgKDF    = "HKDF-SHA-512"
	AlgAESCBC = "AES-256-CBC"
	AlgAESCTR = "AES-256-CTR"
)

// cipherModes maps a cipher algorithm name to the mode it runs in.
var cipherModes = map[string]mode.Mode{
	AlgAESCBC: mode.CBC,
	AlgAESCTR: mode.CTR,
}

// Suite returns the algorithm suite Seal writes for m. Only CBC and CTR are
// accepted; ECB would leak plaintext structure.
func Suite(m mode.Mode) (AlgorithmSuite, error) {
	var cipher string
	switch m {
	case mode.CBC:
		cipher = AlgAESCBC
	case mode.CTR:
		cipher = AlgAESCTR
	default:
		return AlgorithmSuite{}, errUnsupportedMode(m)
	}
	return AlgorithmSuite{KEM: AlgKEM, Sig: AlgSig, Cipher: cipher, KDF: AlgKDF}, nil
}
