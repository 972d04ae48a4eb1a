package rijndael

import (
	"encoding/hex"
	"fmt"
)

// State is the 4x4 byte matrix the round transforms operate on, stored
// column-major: index i is row i%4, column i/4.
type State [BlockSize]byte

// NewState copies a 16-byte block into a state.
func NewState(block []byte) (State, error) {
	var s State
	if len(block) != BlockSize {
		return s, fmt.Errorf("%w: got %d, want %d", ErrInvalidBlockLength, len(block), BlockSize)
	}
	copy(s[:], block)
	return s, nil
}

// At returns the byte at row r, column c.
func (s *State) At(r, c int) byte {
	return s[r+4*c]
}

// Set stores v at row r, column c.
func (s *State) Set(r, c int, v byte) {
	s[r+4*c] = v
}

// Row returns a copy of row r.
func (s *State) Row(r int) [4]byte {
	return [4]byte{s[r], s[r+4], s[r+8], s[r+12]}
}

// Column returns a copy of column c.
func (s *State) Column(c int) [4]byte {
	return [4]byte{s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]}
}

// String renders the state as 32 hex digits in block order.
func (s State) String() string {
	return hex.EncodeToString(s[:])
}
