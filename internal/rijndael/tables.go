package rijndael

import (
	"math/bits"
	"sync"

	"github.com/cryptoran/cryptoran-go/internal/gf"
)

var (
	sbox    [256]byte
	invSBox [256]byte
	rcon    [maxRoundConstants]byte

	tablesOnce sync.Once
)

func loadTables() {
	tablesOnce.Do(func() {
		sbox = buildSBox()
		invSBox = buildInverseSBox(&sbox)
		copy(rcon[:], RoundConstants(maxRoundConstants))
	})
}

// affine applies the FIPS-197 S-box affine transform to b.
func affine(b byte) byte {
	return b ^
		bits.RotateLeft8(b, 1) ^
		bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^
		sboxAffineConstant
}

func buildSBox() [256]byte {
	var s [256]byte
	for i := range s {
		s[i] = affine(gf.Inverse(byte(i)))
	}
	return s
}

func buildInverseSBox(s *[256]byte) [256]byte {
	var inv [256]byte
	for i, v := range s {
		inv[v] = byte(i)
	}
	return inv
}

// SBox returns a copy of the forward substitution table.
func SBox() [256]byte {
	loadTables()
	return sbox
}

// InvSBox returns a copy of the inverse substitution table.
func InvSBox() [256]byte {
	loadTables()
	return invSBox
}

// RoundConstants returns the first n round constants. Element k-1 holds
// Rcon[k], so the result starts 0x01, 0x02, 0x04, ...
func RoundConstants(n int) []byte {
	if n <= 0 {
		return nil
	}
	rc := make([]byte, n)
	rc[0] = 0x01
	for i := 1; i < n; i++ {
		rc[i] = gf.Mul(rc[i-1], 0x02)
	}
	return rc
}
