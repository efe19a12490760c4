// Package pathkey turns asset paths into lookup keys.
//
// Two forms are produced from a raw path:
//
//   - Normalize: the display form. Backslashes become forward slashes; case is
//     preserved. This is what records store and what partial-path matching
//     compares against.
//   - Hash: a 64-bit key. The path is normalized, ASCII letters are folded to
//     lower case, and the bytes are run through Bob Jenkins' lookup3
//     hashlittle2 with both seeds zero. The result is (c << 32) | b.
//
// Lookup3 words are always assembled little-endian, so keys are identical on
// every platform and match keys computed by other tools over the same
// listings.
//
// Every path key in this module goes through Hash or HashBytes: listing
// insertion, path lookups, and direct record insertion. Mixing case policies
// would make keys incomparable. Registry directories are not path keys; they
// are matched by their exact string.
package pathkey

import "strings"

// Normalize converts backslashes to forward slashes. Case is not changed.
func Normalize(path string) string {
	if strings.IndexByte(path, '\\') < 0 {
		return path
	}
	return strings.ReplaceAll(path, `\`, "/")
}

// FoldByte maps a single path byte to its hash form: '\' becomes '/' and
// ASCII upper-case letters become lower-case.
func FoldByte(c byte) byte {
	switch {
	case c == '\\':
		return '/'
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	default:
		return c
	}
}

// Fold returns the string that Hash actually digests.
func Fold(path string) string {
	b := make([]byte, len(path))
	for i := 0; i < len(path); i++ {
		b[i] = FoldByte(path[i])
	}
	return string(b)
}

// Hash returns the 64-bit lookup key of path.
func Hash(path string) uint64 {
	scratch := acquire(len(path))
	for i := 0; i < len(path); i++ {
		scratch.b = append(scratch.b, FoldByte(path[i]))
	}
	h := sum64(scratch.b)
	release(scratch)
	return h
}

// HashBytes is Hash for a byte slice, used while scanning mapped listings so
// the path string is only allocated once its keys are known to be free.
func HashBytes(path []byte) uint64 {
	scratch := acquire(len(path))
	for _, c := range path {
		scratch.b = append(scratch.b, FoldByte(c))
	}
	h := sum64(scratch.b)
	release(scratch)
	return h
}

// Equal reports whether a and b produce the same key material.
func Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if FoldByte(a[i]) != FoldByte(b[i]) {
			return false
		}
	}
	return true
}

func sum64(folded []byte) uint64 {
	c, b := hashlittle2(folded, 0, 0)
	return uint64(c)<<32 | uint64(b)
}
