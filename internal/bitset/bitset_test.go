package bitset

import (
	"bytes"
	"testing"
)

func TestAppendUint32(t *testing.T) {
	b := New()
	b.AppendUint32(0x2, 4)   // 0010
	b.AppendUint32(0x13, 9)  // 000010011
	b.AppendUint32(0x672, 11)

	if got := b.Len(); got != 24 {
		t.Fatalf("Len() = %d, want 24", got)
	}

	if got, want := b.String(), "001000001001111001110010"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAppendByteAndBools(t *testing.T) {
	b := New(true, false)
	b.AppendByte(0xec, 8)
	b.AppendNumBools(3, true)
	b.AppendBools(false)

	if got, want := b.String(), "10111011001110"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAt(t *testing.T) {
	b := New()
	b.AppendByte(0xa5, 8) // 10100101

	want := []bool{true, false, true, false, false, true, false, true}

	for i, v := range want {
		if got := b.At(i); got != v {
			t.Errorf("At(%d) = %v, want %v", i, got, v)
		}
	}
}

func TestBytes(t *testing.T) {
	b := New()
	b.AppendBytes([]byte{0x20, 0x5b, 0x0b})

	if got := b.Bytes(); !bytes.Equal(got, []byte{0x20, 0x5b, 0x0b}) {
		t.Errorf("Bytes() = %v", got)
	}

	// A partial final byte pads with low zero bits.
	b.AppendBools(true, true, true)

	if got := b.Bytes(); !bytes.Equal(got, []byte{0x20, 0x5b, 0x0b, 0xe0}) {
		t.Errorf("Bytes() with partial byte = %v", got)
	}

	if got := b.Len(); got != 27 {
		t.Errorf("Len() = %d, want 27", got)
	}
}

func TestBytesIsACopy(t *testing.T) {
	b := New()
	b.AppendByte(0xff, 8)

	data := b.Bytes()
	data[0] = 0

	if got := b.Bytes()[0]; got != 0xff {
		t.Errorf("mutating Bytes() result changed the bitset: %#x", got)
	}
}
