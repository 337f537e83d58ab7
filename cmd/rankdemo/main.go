// rankdemo runs the rank codec over the embedded sample text and prints each
// stage of the pipeline followed by size metrics.
package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/seiflotfy/rankcode"
	"github.com/seiflotfy/rankcode/internal/sample"
	"github.com/seiflotfy/rankcode/stats"
)

var errRoundTrip = errors.New("decoded text differs from input")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Stdout, sample.Text); err != nil {
		logger.Error("pipeline failed", "err", err)
		os.Exit(1)
	}
}

// run encodes text, decodes it again and writes every stage to w.
func run(w io.Writer, text string) error {
	fmt.Fprintf(w, "Input: %q\n", text)

	freq := rankcode.CountFrequencies(text)
	fmt.Fprintf(w, "Frequency-Table: %s\n", formatFrequencies(freq))

	mapping, err := rankcode.BuildCodeMapping(freq)
	if err != nil {
		return fmt.Errorf("build mapping: %w", err)
	}
	fmt.Fprintf(w, "Mapping: %s\n", formatMapping(mapping))

	encoded, err := rankcode.Encode(text, mapping)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Fprintf(w, "Encoded: %v\n", encoded)

	decoded, err := rankcode.Decode(encoded, mapping.Reverse())
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if decoded != text {
		return errRoundTrip
	}

	report, err := stats.Measure(text, encoded, len(mapping))
	if err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	_, err = report.WriteTo(w)
	return err
}

// formatFrequencies lists symbols by descending count.
func formatFrequencies(freq rankcode.FrequencyTable) string {
	symbols := make([]rune, 0, len(freq))
	for r := range freq {
		symbols = append(symbols, r)
	}
	slices.SortFunc(symbols, func(a, b rune) int {
		if c := cmp.Compare(freq[b].Count, freq[a].Count); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q: %d", r, freq[r].Count)
	}
	sb.WriteByte('}')
	return sb.String()
}

// formatMapping lists symbols in code order.
func formatMapping(mapping rankcode.CodeMapping) string {
	rm := mapping.Reverse()
	var sb strings.Builder
	sb.WriteByte('{')
	for code := 0; code < len(rm); code++ {
		if code > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q: %d", rm[byte(code)], code)
	}
	sb.WriteByte('}')
	return sb.String()
}
