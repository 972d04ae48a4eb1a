package rijndael

import "github.com/cryptoran/cryptoran-go/internal/gf"

// SubBytes replaces every byte of the state through the S-box.
func (s *State) SubBytes() {
	loadTables()
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

// InvSubBytes replaces every byte of the state through the inverse S-box.
func (s *State) InvSubBytes() {
	loadTables()
	for i := range s {
		s[i] = invSBox[s[i]]
	}
}

// ShiftRows rotates row r left by r positions.
func (s *State) ShiftRows() {
	for r := 1; r < 4; r++ {
		row := s.Row(r)
		for c := 0; c < Nb; c++ {
			s.Set(r, c, row[(c+r)%Nb])
		}
	}
}

// InvShiftRows rotates row r right by r positions.
func (s *State) InvShiftRows() {
	for r := 1; r < 4; r++ {
		row := s.Row(r)
		for c := 0; c < Nb; c++ {
			s.Set(r, (c+r)%Nb, row[c])
		}
	}
}

var (
	mixMatrix = [4][4]byte{
		{0x02, 0x03, 0x01, 0x01},
		{0x01, 0x02, 0x03, 0x01},
		{0x01, 0x01, 0x02, 0x03},
		{0x03, 0x01, 0x01, 0x02},
	}
	invMixMatrix = [4][4]byte{
		{0x0e, 0x0b, 0x0d, 0x09},
		{0x09, 0x0e, 0x0b, 0x0d},
		{0x0d, 0x09, 0x0e, 0x0b},
		{0x0b, 0x0d, 0x09, 0x0e},
	}
)

// MixColumns multiplies each column by the fixed MixColumns matrix.
func (s *State) MixColumns() {
	s.mix(&mixMatrix)
}

// InvMixColumns multiplies each column by the inverse MixColumns matrix.
func (s *State) InvMixColumns() {
	s.mix(&invMixMatrix)
}

func (s *State) mix(m *[4][4]byte) {
	for c := 0; c < Nb; c++ {
		col := s.Column(c)
		for r := 0; r < 4; r++ {
			var v byte
			for k := 0; k < 4; k++ {
				v ^= gf.Mul(m[r][k], col[k])
			}
			s.Set(r, c, v)
		}
	}
}

// AddRoundKey XORs a round key into the state. It is its own inverse.
func (s *State) AddRoundKey(k *[BlockSize]byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}
