// Package sample provides input texts: the embedded demonstration text and
// synthetic alphabets and texts for exercising the codec.
package sample

import (
	_ "embed"
	"strings"
)

// Text is the demonstration input: rows of emoji, including multi-rune
// sequences joined by ZWJ and variation selectors.
//
//go:embed text/emoji.txt
var Text string

// alphabetBase is the first rune handed out by Alphabet. Runes from here up
// to the surrogate block are all valid scalars.
const alphabetBase = 0x100

// MaxAlphabet is the largest alphabet Alphabet can return.
const MaxAlphabet = 0xD800 - alphabetBase

// Alphabet returns n distinct runes.
func Alphabet(n int) []rune {
	if n < 0 {
		n = 0
	}
	if n > MaxAlphabet {
		n = MaxAlphabet
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = rune(alphabetBase + i)
	}
	return runes
}

// Distinct returns a text that uses each of the n runes of Alphabet(n) once.
func Distinct(n int) string {
	return string(Alphabet(n))
}

// Random returns a text of length runes drawn from alphabet with rng.
// Draws are skewed towards the front of alphabet so counts differ.
func Random(rng *PRNG, alphabet []rune, length int) string {
	if len(alphabet) == 0 || length <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length * 2)
	n := uint64(len(alphabet))
	for i := 0; i < length; i++ {
		a := rng.Uint64N(n)
		b := rng.Uint64N(n)
		sb.WriteRune(alphabet[min(a, b)])
	}
	return sb.String()
}
