package mode

// Block is the single-block capability every mode is built on. AES satisfies
// it; so would any other 64 or 128-bit block cipher sharing the contract.
type Block interface {
	// BlockSize returns the cipher block size in bytes.
	BlockSize() int
	// Encrypt encrypts exactly one block from src into dst.
	Encrypt(dst, src []byte) error
	// Decrypt decrypts exactly one block from src into dst.
	Decrypt(dst, src []byte) error
}

func dup(p []byte) []byte {
	q := make([]byte, len(p))
	copy(q, p)
	return q
}

// xorBytes sets dst[i] = a[i] ^ b[i] for the shorter of a and b and returns
// the number of bytes written.
func xorBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
