package reedsolomon

import (
	"bytes"
	"testing"
)

func TestGeneratorDegree(t *testing.T) {
	for n := 1; n <= 16; n++ {
		g := Generator(n)

		if len(g) != n+1 {
			t.Errorf("Generator(%d) has %d terms, want %d", n, len(g), n+1)
		}

		if g[0] != 1 {
			t.Errorf("Generator(%d) leading coefficient = %d, want 1", n, g[0])
		}
	}
}

func TestGeneratorSeven(t *testing.T) {
	// (x-2^0)(x-2^1)...(x-2^6) over GF(2^8).
	want := []byte{1, 127, 122, 154, 164, 11, 68, 117}

	if got := Generator(7); !bytes.Equal(got, want) {
		t.Errorf("Generator(7) = %v, want %v", got, want)
	}
}

func TestEncodeLength(t *testing.T) {
	for _, n := range []int{2, 7, 10} {
		message := []byte{16, 32, 12, 86, 97, 128, 236, 17, 236}

		encoded := Encode(message, n)

		if len(encoded) != len(message)+n {
			t.Errorf("Encode(_, %d) length = %d, want %d", n, len(encoded), len(message)+n)
		}

		if !bytes.Equal(encoded[:len(message)], message) {
			t.Errorf("Encode(_, %d) does not preserve the message prefix", n)
		}
	}
}

func TestEncodeKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		message []byte
		want    []byte
	}{
		{
			name: "hello world",
			message: []byte{
				32, 91, 11, 120, 209, 114, 220, 77, 67, 64,
				236, 17, 236, 17, 236, 17, 236, 17, 236,
			},
			want: []byte{209, 239, 196, 207, 78, 195, 109},
		},
		{
			name: "numeric",
			message: []byte{
				16, 32, 12, 86, 97, 128, 236, 17, 236, 17,
				236, 17, 236, 17, 236, 17, 236, 17, 236,
			},
			want: []byte{83, 85, 151, 103, 16, 5, 132},
		},
		{
			name:    "zero message",
			message: make([]byte, 19),
			want:    make([]byte, 7),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			encoded := Encode(tc.message, 7)

			if got := encoded[len(tc.message):]; !bytes.Equal(got, tc.want) {
				t.Errorf("error correction bytes = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	message := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64}

	first := Encode(message, 7)
	second := Encode(message, 7)

	if !bytes.Equal(first, second) {
		t.Errorf("repeated Encode calls differ: %v vs %v", first, second)
	}
}

func TestEncoderReuse(t *testing.T) {
	e := NewEncoder(7)

	a := e.Encode([]byte{1, 2, 3})
	b := e.Encode([]byte{4, 5, 6})
	c := e.Encode([]byte{1, 2, 3})

	if bytes.Equal(a, b) {
		t.Error("distinct messages encoded identically")
	}

	if !bytes.Equal(a, c) {
		t.Errorf("same message encoded differently across calls: %v vs %v", a, c)
	}
}

func TestEncodeDoesNotMutateMessage(t *testing.T) {
	message := []byte{32, 91, 11, 120}
	original := append([]byte(nil), message...)

	Encode(message, 7)

	if !bytes.Equal(message, original) {
		t.Errorf("Encode mutated its input: %v", message)
	}
}
