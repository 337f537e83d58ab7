package rankcode

import (
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Frequency is the occurrence record of one symbol.
type Frequency struct {
	Count int // How often the symbol appeared
	First int // Rune index of its first appearance
}

// FrequencyTable maps each distinct rune of a text to its occurrences.
type FrequencyTable map[rune]Frequency

// Len returns the number of distinct symbols.
func (t FrequencyTable) Len() int { return len(t) }

// Total returns the number of runes counted.
func (t FrequencyTable) Total() int {
	n := 0
	for _, f := range t {
		n += f.Count
	}
	return n
}

// Counts returns the plain symbol to count view of the table.
func (t FrequencyTable) Counts() map[rune]int {
	counts := make(map[rune]int, len(t))
	for r, f := range t {
		counts[r] = f.Count
	}
	return counts
}

// CountFrequencies counts every rune in text.
// Invalid UTF-8 is counted as utf8.RuneError, as range does.
func CountFrequencies(text string) FrequencyTable {
	return countFrom(text, 0)
}

// countFrom counts text whose first rune sits at rune index base.
func countFrom(text string, base int) FrequencyTable {
	table := make(FrequencyTable)
	i := base
	for _, r := range text {
		f, ok := table[r]
		if !ok {
			f.First = i
		}
		f.Count++
		table[r] = f
		i++
	}
	return table
}

// CountFrequenciesSharded splits text at rune boundaries into up to shards
// pieces, counts them concurrently and merges the partial tables.
// The result equals CountFrequencies(text).
func CountFrequenciesSharded(text string, shards int) FrequencyTable {
	if shards <= 1 || len(text) < 2*minShardLen {
		return CountFrequencies(text)
	}
	if limit := len(text) / minShardLen; shards > limit {
		shards = limit
	}

	pieces := splitRunes(text, shards)
	partials := make([]FrequencyTable, len(pieces))

	// Rune offsets of each piece, so First stays global.
	bases := make([]int, len(pieces))
	for i := 1; i < len(pieces); i++ {
		bases[i] = bases[i-1] + utf8.RuneCountInString(pieces[i-1])
	}

	var g errgroup.Group
	for i, piece := range pieces {
		i, piece := i, piece // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			partials[i] = countFrom(piece, bases[i])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	merged := partials[0]
	for _, partial := range partials[1:] {
		for r, f := range partial {
			m, ok := merged[r]
			if !ok {
				merged[r] = f
				continue
			}
			m.Count += f.Count
			if f.First < m.First {
				m.First = f.First
			}
			merged[r] = m
		}
	}
	return merged
}

// splitRunes cuts text into n contiguous pieces of roughly equal byte length
// without splitting a UTF-8 sequence.
func splitRunes(text string, n int) []string {
	pieces := make([]string, 0, n)
	size := len(text) / n
	start := 0
	for i := 1; i < n && start < len(text); i++ {
		end := start + size
		if end >= len(text) {
			break
		}
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end++
		}
		if end >= len(text) {
			break
		}
		pieces = append(pieces, text[start:end])
		start = end
	}
	return append(pieces, text[start:])
}
