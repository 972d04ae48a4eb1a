package gf

import "testing"

// slowMul is the schoolbook polynomial product followed by long division,
// used as an independent reference for Mul.
func slowMul(a, b byte) byte {
	var prod uint16
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			prod ^= uint16(a) << i
		}
	}
	for deg := 15; deg >= 8; deg-- {
		if prod&(1<<deg) != 0 {
			prod ^= Polynomial << (deg - 8)
		}
	}
	return byte(prod)
}

func TestMul_KnownValues(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x57, 0x13, 0xfe},
		{0x57, 0x02, 0xae},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8e},
		{0x57, 0x10, 0x07},
		{0x80, 0x02, 0x1b},
		{0x00, 0xff, 0x00},
		{0x01, 0xab, 0xab},
	}

	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%#02x, %#02x) = %#02x, want %#02x", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMul_MatchesReference(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			got := Mul(byte(a), byte(b))
			want := slowMul(byte(a), byte(b))
			if got != want {
				t.Fatalf("Mul(%#02x, %#02x) = %#02x, want %#02x", a, b, got, want)
			}
			if got != Mul(byte(b), byte(a)) {
				t.Fatalf("Mul is not commutative for %#02x, %#02x", a, b)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	if got := Add(0x57, 0x83); got != 0xd4 {
		t.Errorf("Add(0x57, 0x83) = %#02x, want 0xd4", got)
	}
	if got := Add(0xaa, 0xaa); got != 0 {
		t.Errorf("Add(x, x) = %#02x, want 0", got)
	}
}

func TestInverse(t *testing.T) {
	if got := Inverse(0); got != 0 {
		t.Errorf("Inverse(0) = %#02x, want 0", got)
	}
	if got := Inverse(0x53); got != 0xca {
		t.Errorf("Inverse(0x53) = %#02x, want 0xca", got)
	}
	if got := Inverse(0x01); got != 0x01 {
		t.Errorf("Inverse(0x01) = %#02x, want 0x01", got)
	}

	for a := 1; a < 256; a++ {
		inv := Inverse(byte(a))
		if p := Mul(byte(a), inv); p != 1 {
			t.Fatalf("Mul(%#02x, Inverse(%#02x)) = %#02x, want 1", a, a, p)
		}
	}
}

func TestExpLog(t *testing.T) {
	seen := make(map[byte]bool, Order)
	for i := 0; i < Order; i++ {
		e := Exp(i)
		if seen[e] {
			t.Fatalf("Exp(%d) = %#02x repeats; generator is not primitive", i, e)
		}
		seen[e] = true

		l, ok := Log(e)
		if !ok || l != i {
			t.Fatalf("Log(Exp(%d)) = %d, %v", i, l, ok)
		}
	}
	if len(seen) != Order {
		t.Errorf("Exp covers %d elements, want %d", len(seen), Order)
	}

	if _, ok := Log(0); ok {
		t.Error("Log(0) should report ok = false")
	}
	if Exp(Order) != Exp(0) || Exp(-1) != Exp(Order-1) {
		t.Error("Exp should reduce exponents modulo the group order")
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		a    byte
		n    int
		want byte
	}{
		{"zero exponent", 0x57, 0, 0x01},
		{"zero base", 0x00, 5, 0x00},
		{"zero to zero", 0x00, 0, 0x01},
		{"square", 0x02, 2, 0x04},
		{"x^8 reduces", 0x02, 8, 0x1b},
		{"order", 0x57, Order, 0x01},
		{"inverse", 0x53, -1, 0xca},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pow(tt.a, tt.n); got != tt.want {
				t.Errorf("Pow(%#02x, %d) = %#02x, want %#02x", tt.a, tt.n, got, tt.want)
			}
		})
	}

	// Pow must agree with repeated multiplication.
	for a := 0; a < 256; a++ {
		acc := byte(1)
		for n := 0; n < 10; n++ {
			if got := Pow(byte(a), n); got != acc {
				t.Fatalf("Pow(%#02x, %d) = %#02x, want %#02x", a, n, got, acc)
			}
			acc = Mul(acc, byte(a))
		}
	}
}
