package rankcode

import "unicode/utf8"

// Encode maps every rune of text to its code. The result holds one byte
// per rune, in input order.
func Encode(text string, m CodeMapping) ([]byte, error) {
	out, err := AppendEncode(make([]byte, 0, utf8.RuneCountInString(text)), text, m)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendEncode appends the codes of text to dst.
// On error dst is returned with its original length.
func AppendEncode(dst []byte, text string, m CodeMapping) ([]byte, error) {
	n := len(dst)
	i := 0
	for _, r := range text {
		code, ok := m[r]
		if !ok {
			return dst[:n], &UnmappedSymbolError{Symbol: r, Offset: i}
		}
		dst = append(dst, code)
		i++
	}
	return dst, nil
}
