package rijndael

import (
	"encoding/hex"
	"errors"
	"testing"
)

func stateFromHex(t *testing.T, s string) State {
	t.Helper()
	st, err := NewState(mustHex(t, s))
	if err != nil {
		t.Fatalf("NewState(%q) error = %v", s, err)
	}
	return st
}

// Worked example of FIPS-197 Appendix B, round 1.
const (
	exampleStartRound1 = "193de3bea0f4e22b9ac68d2ae9f84808"
	exampleAfterSub    = "d42711aee0bf98f1b8b45de51e415230"
	exampleAfterShift  = "d4bf5d30e0b452aeb84111f11e2798e5"
	exampleAfterMix    = "046681e5e0cb199a48f8d37a2806264c"
	exampleRoundKey1   = "a0fafe1788542cb123a339392a6c7605"
	exampleStartRound2 = "a49c7ff2689f352b6b5bea43026a5049"
)

func TestState_Layout(t *testing.T) {
	st := stateFromHex(t, "000102030405060708090a0b0c0d0e0f")

	for i := 0; i < BlockSize; i++ {
		r, c := i%4, i/4
		if got := st.At(r, c); got != byte(i) {
			t.Errorf("At(%d, %d) = %#02x, want %#02x", r, c, got, i)
		}
	}
	if got := st.Row(1); got != [4]byte{0x01, 0x05, 0x09, 0x0d} {
		t.Errorf("Row(1) = %x", got)
	}
	if got := st.Column(2); got != [4]byte{0x08, 0x09, 0x0a, 0x0b} {
		t.Errorf("Column(2) = %x", got)
	}

	st.Set(3, 1, 0xff)
	if st[7] != 0xff {
		t.Errorf("Set(3, 1) wrote index other than 7: %s", st)
	}
}

func TestNewState_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		if _, err := NewState(make([]byte, n)); !errors.Is(err, ErrInvalidBlockLength) {
			t.Errorf("NewState(%d bytes) error = %v, want ErrInvalidBlockLength", n, err)
		}
	}
}

func TestSubBytes_WorkedExample(t *testing.T) {
	st := stateFromHex(t, exampleStartRound1)
	st.SubBytes()
	if got := st.String(); got != exampleAfterSub {
		t.Errorf("SubBytes() = %s, want %s", got, exampleAfterSub)
	}
	st.InvSubBytes()
	if got := st.String(); got != exampleStartRound1 {
		t.Errorf("InvSubBytes() = %s, want %s", got, exampleStartRound1)
	}
}

func TestShiftRows_WorkedExample(t *testing.T) {
	st := stateFromHex(t, exampleAfterSub)
	st.ShiftRows()
	if got := st.String(); got != exampleAfterShift {
		t.Errorf("ShiftRows() = %s, want %s", got, exampleAfterShift)
	}
	st.InvShiftRows()
	if got := st.String(); got != exampleAfterSub {
		t.Errorf("InvShiftRows() = %s, want %s", got, exampleAfterSub)
	}
}

func TestShiftRows_RowOffsets(t *testing.T) {
	st := stateFromHex(t, "000102030405060708090a0b0c0d0e0f")
	st.ShiftRows()

	want := [4][4]byte{
		{0x00, 0x04, 0x08, 0x0c},
		{0x05, 0x09, 0x0d, 0x01},
		{0x0a, 0x0e, 0x02, 0x06},
		{0x0f, 0x03, 0x07, 0x0b},
	}
	for r := 0; r < 4; r++ {
		if got := st.Row(r); got != want[r] {
			t.Errorf("row %d = %x, want %x", r, got, want[r])
		}
	}
}

func TestMixColumns_WorkedExample(t *testing.T) {
	st := stateFromHex(t, exampleAfterShift)
	st.MixColumns()
	if got := st.String(); got != exampleAfterMix {
		t.Errorf("MixColumns() = %s, want %s", got, exampleAfterMix)
	}
	st.InvMixColumns()
	if got := st.String(); got != exampleAfterShift {
		t.Errorf("InvMixColumns() = %s, want %s", got, exampleAfterShift)
	}
}

func TestMixColumns_SingleColumn(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"db135345", "8e4da1bc"},
		{"f20a225c", "9fdc589d"},
		{"01010101", "01010101"},
		{"c6c6c6c6", "c6c6c6c6"},
		{"d4d4d4d5", "d5d5d7d6"},
		{"2d26314c", "4d7ebdf8"},
	}

	for _, tt := range tests {
		col := mustHex(t, tt.in)
		var st State
		copy(st[:4], col)
		st.MixColumns()
		if got := hex.EncodeToString(st[:4]); got != tt.want {
			t.Errorf("MixColumns(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestAddRoundKey_WorkedExample(t *testing.T) {
	st := stateFromHex(t, exampleAfterMix)
	var k [BlockSize]byte
	copy(k[:], mustHex(t, exampleRoundKey1))

	st.AddRoundKey(&k)
	if got := st.String(); got != exampleStartRound2 {
		t.Errorf("AddRoundKey() = %s, want %s", got, exampleStartRound2)
	}
	st.AddRoundKey(&k)
	if got := st.String(); got != exampleAfterMix {
		t.Errorf("AddRoundKey() twice = %s, want %s", got, exampleAfterMix)
	}
}

func TestRoundTransforms_Inverses(t *testing.T) {
	for seed := 0; seed < 64; seed++ {
		var orig State
		for i := range orig {
			orig[i] = byte(seed*31 + i*17)
		}

		st := orig
		st.SubBytes()
		st.ShiftRows()
		st.MixColumns()
		st.InvMixColumns()
		st.InvShiftRows()
		st.InvSubBytes()
		if st != orig {
			t.Fatalf("inverse transforms did not restore %s, got %s", orig, st)
		}
	}
}
