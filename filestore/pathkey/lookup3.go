package pathkey

import (
	"math/bits"

	"github.com/joshuapare/m2kit/internal/buf"
)

// hashlittle2 is lookup3's two-result hash. pc and pb seed the primary and
// secondary results; the first return value is the primary (c) and the
// second the secondary (b).
func hashlittle2(key []byte, pc, pb uint32) (uint32, uint32) {
	a := 0xdeadbeef + uint32(len(key)) + pc
	b := a
	c := a + pb

	for len(key) > 12 {
		k0, k1, k2 := buf.Block12(key)
		a += k0
		b += k1
		c += k2
		a, b, c = mix(a, b, c)
		key = key[12:]
	}

	if len(key) == 0 {
		return c, b
	}

	k0, k1, k2 := buf.Tail12(key)
	a += k0
	b += k1
	c += k2
	a, b, c = final(a, b, c)
	return c, b
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= bits.RotateLeft32(c, 4)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 6)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 8)
	b += a
	a -= c
	a ^= bits.RotateLeft32(c, 16)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 19)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)
	return a, b, c
}
