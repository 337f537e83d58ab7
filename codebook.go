package rankcode

import (
	"fmt"
	"sort"
)

// CodeMapping assigns each symbol its single-byte code.
type CodeMapping map[rune]byte

// ReverseMapping maps codes back to symbols.
type ReverseMapping map[byte]rune

// Reverse returns the byte to rune inverse of m.
func (m CodeMapping) Reverse() ReverseMapping {
	rm := make(ReverseMapping, len(m))
	for r, code := range m {
		rm[code] = r
	}
	return rm
}

// Reverse returns the rune to byte inverse of rm.
func (rm ReverseMapping) Reverse() CodeMapping {
	m := make(CodeMapping, len(rm))
	for code, r := range rm {
		m[r] = code
	}
	return m
}

type symbolFrequency struct {
	symbol rune
	Frequency
}

// BuildCodeMapping ranks the symbols of freq by descending count and assigns
// them the codes 0, 1, 2, ... in that order.
func BuildCodeMapping(freq FrequencyTable, opts ...Option) (CodeMapping, error) {
	if len(freq) >= maxCodeValue {
		return nil, fmt.Errorf("%w: %d distinct symbols, at most %d fit single-byte codes", ErrTooManyUniqueSymbols, len(freq), MaxSymbols)
	}

	frequencies := make([]symbolFrequency, 0, len(freq))
	for r, f := range freq {
		frequencies = append(frequencies, symbolFrequency{symbol: r, Frequency: f})
	}

	byFirst := resolveTieBreak(newConfig(opts)) == TieBreakFirstOccurrence
	sort.Slice(frequencies, func(i, j int) bool {
		a, b := frequencies[i], frequencies[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if byFirst && a.First != b.First {
			return a.First < b.First
		}
		return a.symbol < b.symbol
	})

	mapping := make(CodeMapping, len(frequencies))
	for i, sf := range frequencies {
		mapping[sf.symbol] = byte(i)
	}
	return mapping, nil
}
