// Package textenc strips byte-order marks from listing files.
//
// Community listings are plain ASCII/UTF-8, but files re-saved by Windows
// editors may carry a byte-order mark or be written as UTF-16. Decode drops a
// UTF-8 BOM and converts BOM-marked UTF-16 to UTF-8. Anything without a BOM
// is returned unchanged, byte for byte, even when it is not valid UTF-8.
// Paths are keyed by their raw bytes.
package textenc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the detected source encoding.
type Encoding string

const (
	UTF8    Encoding = "utf-8"
	UTF8BOM Encoding = "utf-8-bom"
	UTF16LE Encoding = "utf-16le"
	UTF16BE Encoding = "utf-16be"
	// Raw marks BOM-less data that is not valid UTF-8. It is passed through.
	Raw Encoding = "raw"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect reports the encoding of data without decoding it.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	case utf8.Valid(data):
		return UTF8
	default:
		return Raw
	}
}

// Decode returns data without its BOM, converting UTF-16 to UTF-8, along
// with the encoding it was detected as. BOM-less input is never copied.
func Decode(data []byte) ([]byte, Encoding, error) {
	enc := Detect(data)

	var dec *encoding.Decoder
	switch enc {
	case UTF8, Raw:
		return data, enc, nil
	case UTF8BOM:
		return data[len(bomUTF8):], enc, nil
	case UTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	default:
		dec = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	}

	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, enc, fmt.Errorf("textenc: decode %s: %w", enc, err)
	}
	return out, enc, nil
}
