package gf256

import (
	"errors"
	"testing"
)

func TestExpTable(t *testing.T) {
	cases := []struct {
		e    int
		want byte
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{7, 128},
		{8, 29}, // first reduction by the primitive polynomial
		{9, 58},
		{254, 142},
		{255, 1},
	}

	for _, c := range cases {
		if got := Exp(c.e); got != c.want {
			t.Errorf("Exp(%d) = %d, want %d", c.e, got, c.want)
		}
	}
}

func TestLogExpRoundTrip(t *testing.T) {
	for x := 1; x < 256; x++ {
		if got := Exp(Log(byte(x))); got != byte(x) {
			t.Fatalf("Exp(Log(%d)) = %d", x, got)
		}
	}
}

func TestAddSub(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			a, b := byte(x), byte(y)

			if Add(a, b) != Add(b, a) {
				t.Fatalf("Add(%d, %d) not commutative", a, b)
			}

			if Add(a, b) != Sub(a, b) {
				t.Fatalf("Add(%d, %d) != Sub(%d, %d)", a, b, a, b)
			}

			if Sub(Add(a, b), b) != a {
				t.Fatalf("Sub(Add(%d, %d), %d) != %d", a, b, b, a)
			}
		}
	}
}

func TestMulCommutes(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			if Mul(byte(x), byte(y)) != Mul(byte(y), byte(x)) {
				t.Fatalf("Mul(%d, %d) not commutative", x, y)
			}
		}
	}
}

func TestMulByZeroAndOne(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got := Mul(byte(x), 0); got != 0 {
			t.Fatalf("Mul(%d, 0) = %d", x, got)
		}

		if got := Mul(byte(x), 1); got != byte(x) {
			t.Fatalf("Mul(%d, 1) = %d", x, got)
		}
	}
}

func TestMulInverse(t *testing.T) {
	for x := 1; x < 256; x++ {
		inv, err := Inverse(byte(x))
		if err != nil {
			t.Fatalf("Inverse(%d): %v", x, err)
		}

		if got := Mul(byte(x), inv); got != 1 {
			t.Fatalf("Mul(%d, Inverse(%d)) = %d, want 1", x, x, got)
		}
	}
}

func TestDiv(t *testing.T) {
	for x := 1; x < 256; x++ {
		got, err := Div(byte(x), byte(x))
		if err != nil {
			t.Fatalf("Div(%d, %d): %v", x, x, err)
		}

		if got != 1 {
			t.Fatalf("Div(%d, %d) = %d, want 1", x, x, got)
		}

		got, err = Div(0, byte(x))
		if err != nil {
			t.Fatalf("Div(0, %d): %v", x, err)
		}

		if got != 0 {
			t.Fatalf("Div(0, %d) = %d, want 0", x, got)
		}
	}
}

func TestDivMulRoundTrip(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 1; y < 256; y++ {
			q, err := Div(byte(x), byte(y))
			if err != nil {
				t.Fatalf("Div(%d, %d): %v", x, y, err)
			}

			if got := Mul(q, byte(y)); got != byte(x) {
				t.Fatalf("Mul(Div(%d, %d), %d) = %d", x, y, y, got)
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, err := Div(5, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div(5, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestInverseOfZero(t *testing.T) {
	if _, err := Inverse(0); !errors.Is(err, ErrInverseOfZero) {
		t.Errorf("Inverse(0) error = %v, want ErrInverseOfZero", err)
	}
}

func TestPow(t *testing.T) {
	for e := 0; e < 20; e++ {
		if got := Pow(2, e); got != Exp(e) {
			t.Errorf("Pow(2, %d) = %d, want %d", e, got, Exp(e))
		}
	}

	for x := 1; x < 256; x++ {
		if got := Pow(byte(x), 1); got != byte(x) {
			t.Errorf("Pow(%d, 1) = %d", x, got)
		}
	}
}
