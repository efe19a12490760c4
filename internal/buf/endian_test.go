package buf

import "testing"

func TestBlock12(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x10, 0x20, 0x30, 0x40, 0xff}

	a, b, c := Block12(data)
	if a != 0x67452301 || b != 0xefcdab89 || c != 0x40302010 {
		t.Fatalf("Block12 = 0x%x 0x%x 0x%x", a, b, c)
	}
}

func TestPartialU32LE(t *testing.T) {
	tests := []struct {
		in   []byte
		want uint32
	}{
		{nil, 0},
		{[]byte{0x61}, 0x61},
		{[]byte{0x61, 0x62}, 0x6261},
		{[]byte{0x61, 0x62, 0x63}, 0x636261},
		{[]byte{0x61, 0x62, 0x63, 0x64}, 0x64636261},
		{[]byte{0x61, 0x62, 0x63, 0x64, 0x65}, 0x64636261},
	}
	for _, tt := range tests {
		if got := PartialU32LE(tt.in); got != tt.want {
			t.Errorf("PartialU32LE(%x) = 0x%x, want 0x%x", tt.in, got, tt.want)
		}
	}
}

func TestBlockAndTail(t *testing.T) {
	block := []byte("abcdefghijkl")
	a, b, c := Block12(block)
	if a != 0x64636261 || b != 0x68676665 || c != 0x6c6b6a69 {
		t.Fatalf("Block12 = %x %x %x", a, b, c)
	}

	a, b, c = Tail12(block)
	if a != 0x64636261 || b != 0x68676665 || c != 0x6c6b6a69 {
		t.Fatalf("Tail12 full = %x %x %x", a, b, c)
	}

	a, b, c = Tail12([]byte("abcde"))
	if a != 0x64636261 || b != 0x65 || c != 0 {
		t.Fatalf("Tail12 short = %x %x %x", a, b, c)
	}

	a, b, c = Tail12(nil)
	if a != 0 || b != 0 || c != 0 {
		t.Fatalf("Tail12 empty = %x %x %x", a, b, c)
	}
}
