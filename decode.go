package rankcode

import (
	"strings"
	"unicode/utf8"
)

// Decode maps every byte of data back to its rune. The first byte with no
// entry in rm aborts the decode.
func Decode(data []byte, rm ReverseMapping) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))
	for i, code := range data {
		r, ok := rm[code]
		if !ok {
			return "", &InvalidByteError{Byte: code, Offset: i}
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// AppendDecode appends the UTF-8 encoding of the decoded runes to dst.
// On error dst is returned with its original length.
func AppendDecode(dst []byte, data []byte, rm ReverseMapping) ([]byte, error) {
	n := len(dst)
	for i, code := range data {
		r, ok := rm[code]
		if !ok {
			return dst[:n], &InvalidByteError{Byte: code, Offset: i}
		}
		dst = utf8.AppendRune(dst, r)
	}
	return dst, nil
}
