package rijndael

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// Nb is the number of 32-bit columns in the state.
	Nb = 4

	// KeySize128 is the size of an AES-128 key in bytes.
	KeySize128 = 16
	// KeySize192 is the size of an AES-192 key in bytes.
	KeySize192 = 24
	// KeySize256 is the size of an AES-256 key in bytes.
	KeySize256 = 32

	// sboxAffineConstant is the constant term of the S-box affine transform.
	sboxAffineConstant = 0x63

	// maxRoundConstants covers the longest schedule (AES-128 uses Rcon[1..10]).
	maxRoundConstants = 10
)

// Rounds returns the number of rounds Nr for a key of keyLen bytes, or 0 if
// the length is not a valid AES key size.
func Rounds(keyLen int) int {
	switch keyLen {
	case KeySize128, KeySize192, KeySize256:
		return keyLen/4 + 6
	default:
		return 0
	}
}
