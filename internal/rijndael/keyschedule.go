package rijndael

import (
	"encoding/binary"
	"fmt"
)

// Schedule is an expanded AES key: 4*(Nr+1) words, one 16-byte round key per
// round plus the initial whitening key. It is immutable after ExpandKey
// returns.
type Schedule struct {
	nk    int
	nr    int
	words []uint32
	keys  [][BlockSize]byte
}

// ExpandKey runs the FIPS-197 key expansion over key.
func ExpandKey(key []byte) (*Schedule, error) {
	nr := Rounds(len(key))
	if nr == 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 24 or 32", ErrInvalidKeyLength, len(key))
	}
	loadTables()

	nk := len(key) / 4
	total := Nb * (nr + 1)
	w := make([]uint32, total)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < total; i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ uint32(rcon[i/nk-1])<<24
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}

	s := &Schedule{
		nk:    nk,
		nr:    nr,
		words: w,
		keys:  make([][BlockSize]byte, nr+1),
	}
	for r := range s.keys {
		for c := 0; c < Nb; c++ {
			binary.BigEndian.PutUint32(s.keys[r][4*c:], w[r*Nb+c])
		}
	}
	return s, nil
}

// rotWord rotates a word one byte to the left: [a0 a1 a2 a3] -> [a1 a2 a3 a0].
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord applies the S-box to each byte of w.
func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// Rounds returns Nr, the number of cipher rounds.
func (s *Schedule) Rounds() int {
	return s.nr
}

// KeyWords returns Nk, the key length in 32-bit words.
func (s *Schedule) KeyWords() int {
	return s.nk
}

// Len returns the number of words in the schedule, 4*(Nr+1).
func (s *Schedule) Len() int {
	return len(s.words)
}

// Words returns a copy of the expanded key words.
func (s *Schedule) Words() []uint32 {
	out := make([]uint32, len(s.words))
	copy(out, s.words)
	return out
}

// RoundKey returns round key r in state layout. ok is false if r is outside
// [0, Nr].
func (s *Schedule) RoundKey(r int) (k [BlockSize]byte, ok bool) {
	if r < 0 || r > s.nr {
		return k, false
	}
	return s.keys[r], true
}
