package envelope

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// randReader overrides crypto/rand for key generation and IVs in tests.
var randReader io.Reader

func random() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

var kemScheme kem.Scheme = mlkem768.Scheme()

// Keypair is an ML-KEM-768 recipient keypair in packed form.
type Keypair struct {
	PublicKey []byte
	SecretKey []byte
}

// GenerateKeypair creates a new recipient keypair.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := mlkem768.GenerateKeyPair(random())
	if err != nil {
		return nil, err
	}

	// Packing a freshly generated key cannot fail.
	pk, _ := pub.MarshalBinary()
	sk, _ := priv.MarshalBinary()
	return &Keypair{PublicKey: pk, SecretKey: sk}, nil
}

// KeypairFromSecretKey rebuilds a keypair from a packed secret key, which
// carries the public key at PublicKeyOffset.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	if len(secretKey) != MLKEMSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), MLKEMSecretKeySize)
	}
	kp := &Keypair{
		PublicKey: bytes.Clone(embeddedPublicKey(secretKey)),
		SecretKey: bytes.Clone(secretKey),
	}
	if _, err := kp.unpack(); err != nil {
		return nil, err
	}
	return kp, nil
}

// NewKeypairFromBytes pairs a secret and a public key after checking that
// they belong together.
func NewKeypairFromBytes(secretKey, publicKey []byte) (*Keypair, error) {
	if len(publicKey) != MLKEMPublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), MLKEMPublicKeySize)
	}
	kp, err := KeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(kp.PublicKey, publicKey) {
		return nil, ErrKeypairMismatch
	}
	return kp, nil
}

// Validate checks key sizes and that PublicKey is the key embedded in
// SecretKey.
func (k *Keypair) Validate() error {
	if k == nil {
		return ErrInvalidSecretKeySize
	}
	if len(k.PublicKey) != MLKEMPublicKeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(k.PublicKey), MLKEMPublicKeySize)
	}
	if len(k.SecretKey) != MLKEMSecretKeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(k.SecretKey), MLKEMSecretKeySize)
	}
	if !bytes.Equal(embeddedPublicKey(k.SecretKey), k.PublicKey) {
		return ErrKeypairMismatch
	}
	return nil
}

// Decapsulate recovers the shared secret from a KEM ciphertext.
func (k *Keypair) Decapsulate(ctKem []byte) ([]byte, error) {
	if k == nil {
		return nil, ErrInvalidSecretKeySize
	}
	if len(ctKem) != MLKEMCiphertextSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidCiphertextSize, len(ctKem), MLKEMCiphertextSize)
	}
	sk, err := k.unpack()
	if err != nil {
		return nil, err
	}
	return kemScheme.Decapsulate(sk, ctKem)
}

func (k *Keypair) unpack() (kem.PrivateKey, error) {
	sk, err := kemScheme.UnmarshalBinaryPrivateKey(k.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKeySize, err)
	}
	return sk, nil
}

func embeddedPublicKey(secretKey []byte) []byte {
	return secretKey[PublicKeyOffset : PublicKeyOffset+MLKEMPublicKeySize]
}

// encapsulate produces a fresh KEM ciphertext and shared secret for the
// recipient public key.
func encapsulate(publicKey []byte) (ctKem, sharedSecret []byte, err error) {
	if len(publicKey) != MLKEMPublicKeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), MLKEMPublicKeySize)
	}
	pk, err := kemScheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPublicKeySize, err)
	}
	return kemScheme.Encapsulate(pk)
}
