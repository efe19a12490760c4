// Package buf contains helpers for endian-safe word reads used by the path hash.
package buf

import "encoding/binary"

// PartialU32LE reads up to four bytes of b as a little-endian word.
// Missing high bytes are treated as zero, so a 3-byte tail "abc"
// yields 'a' | 'b'<<8 | 'c'<<16.
func PartialU32LE(b []byte) uint32 {
	if len(b) >= 4 {
		return binary.LittleEndian.Uint32(b)
	}
	var w uint32
	for i := len(b) - 1; i >= 0; i-- {
		w = w<<8 | uint32(b[i])
	}
	return w
}

// Block12 splits the first twelve bytes of b into three little-endian words.
// b must hold at least twelve bytes.
func Block12(b []byte) (uint32, uint32, uint32) {
	_ = b[11]
	return binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12])
}

// Tail12 splits a final block of at most twelve bytes into three
// little-endian words, zero-filling whatever is missing.
func Tail12(b []byte) (uint32, uint32, uint32) {
	var w [3]uint32
	for i := 0; i < 3 && len(b) > 0; i++ {
		n := min(len(b), 4)
		w[i] = PartialU32LE(b[:n])
		b = b[n:]
	}
	return w[0], w[1], w[2]
}
