package rijndael

import "fmt"

// EncryptBlock encrypts one 16-byte block from src into dst using the
// expanded key s. dst and src may overlap entirely.
func EncryptBlock(dst, src []byte, s *Schedule) error {
	if err := checkBlock(dst, src); err != nil {
		return err
	}

	var st State
	copy(st[:], src)

	st.AddRoundKey(&s.keys[0])
	for round := 1; round < s.nr; round++ {
		st.SubBytes()
		st.ShiftRows()
		st.MixColumns()
		st.AddRoundKey(&s.keys[round])
	}
	st.SubBytes()
	st.ShiftRows()
	st.AddRoundKey(&s.keys[s.nr])

	copy(dst, st[:])
	return nil
}

// DecryptBlock decrypts one 16-byte block from src into dst using the
// expanded key s. dst and src may overlap entirely.
func DecryptBlock(dst, src []byte, s *Schedule) error {
	if err := checkBlock(dst, src); err != nil {
		return err
	}

	var st State
	copy(st[:], src)

	st.AddRoundKey(&s.keys[s.nr])
	st.InvShiftRows()
	st.InvSubBytes()
	for round := s.nr - 1; round > 0; round-- {
		st.AddRoundKey(&s.keys[round])
		st.InvMixColumns()
		st.InvShiftRows()
		st.InvSubBytes()
	}
	st.AddRoundKey(&s.keys[0])

	copy(dst, st[:])
	return nil
}

func checkBlock(dst, src []byte) error {
	if len(src) != BlockSize {
		return fmt.Errorf("%w: input is %d bytes, want %d", ErrInvalidBlockLength, len(src), BlockSize)
	}
	if len(dst) < BlockSize {
		return fmt.Errorf("%w: output is %d bytes, want at least %d", ErrInvalidBlockLength, len(dst), BlockSize)
	}
	return nil
}

// Cipher binds an expanded key to the block operations. It is safe for
// concurrent use.
type Cipher struct {
	schedule *Schedule
}

// NewCipher expands key and returns a cipher ready for block operations.
func NewCipher(key []byte) (*Cipher, error) {
	s, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: s}, nil
}

// BlockSize returns the AES block size in bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the single block src into dst.
func (c *Cipher) Encrypt(dst, src []byte) error {
	return EncryptBlock(dst, src, c.schedule)
}

// Decrypt decrypts the single block src into dst.
func (c *Cipher) Decrypt(dst, src []byte) error {
	return DecryptBlock(dst, src, c.schedule)
}

// Schedule returns the expanded key backing the cipher.
func (c *Cipher) Schedule() *Schedule {
	return c.schedule
}
