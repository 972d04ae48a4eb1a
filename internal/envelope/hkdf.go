package envelope

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// messageKey derives the AES-256 key of one envelope with HKDF-SHA-512:
// the KEM shared secret is the input keying material, SHA-256(ct_kem) the
// salt, and HKDFContext || BE32(len(aad)) || aad the info.
func messageKey(sharedSecret, aad, ctKem []byte) ([]byte, error) {
	salt := sha256.Sum256(ctKem)
	prk := hkdf.Extract(sha512.New, sharedSecret, salt[:])
	return expand(prk, kdfInfo(aad), AESKeySize)
}

func kdfInfo(aad []byte) []byte {
	info := make([]byte, 0, len(HKDFContext)+4+len(aad))
	info = append(info, HKDFContext...)
	info = binary.BigEndian.AppendUint32(info, uint32(len(aad)))
	return append(info, aad...)
}

// DeriveKey runs HKDF-SHA-512 over secret. A nil salt is treated as a
// string of zero bytes.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	return expand(hkdf.Extract(sha512.New, secret, salt), info, length)
}

func expand(prk, info []byte, length int) ([]byte, error) {
	key := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(sha512.New, prk, info), key); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return key, nil
}
