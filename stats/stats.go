// Package stats measures the footprint of an encoded text and how well the
// encoded bytes would feed a byte-oriented compressor.
package stats

import (
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
	"unsafe"

	"github.com/klauspost/compress"
	"github.com/klauspost/compress/huff0"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report holds the size metrics of one encode.
type Report struct {
	// Handle sizes are the in-memory headers, not the data they point to.
	InputHandle  uintptr // string header of the input
	OutputHandle uintptr // slice header of the encoded bytes

	InputBytes  int // UTF-8 length of the input
	OutputBytes int // length of the encoded bytes
	Runes       int // runes in the input
	Symbols     int // distinct runes in the input

	ShannonBytes int     // entropy bound of the encoded bytes
	Huff0Bytes   int     // huff0 size of the encoded bytes
	FlateInput   int     // flate size of the input
	FlateOutput  int     // flate size of the encoded bytes
	Estimate     float64 // klauspost compressibility estimate of the encoded bytes (0 = random)
}

// Measure builds the Report for text and its encoding.
func Measure(text string, encoded []byte, symbols int) (Report, error) {
	r := Report{
		InputHandle:  unsafe.Sizeof(text),
		OutputHandle: unsafe.Sizeof(encoded),
		InputBytes:   len(text),
		OutputBytes:  len(encoded),
		Runes:        utf8.RuneCountInString(text),
		Symbols:      symbols,
		ShannonBytes: (compress.ShannonEntropyBits(encoded) + 7) / 8,
		Estimate:     compress.Estimate(encoded),
	}

	var err error
	if r.Huff0Bytes, err = huff0Size(encoded); err != nil {
		return Report{}, fmt.Errorf("huff0: %w", err)
	}
	if r.FlateInput, err = flateSize([]byte(text)); err != nil {
		return Report{}, fmt.Errorf("flate input: %w", err)
	}
	if r.FlateOutput, err = flateSize(encoded); err != nil {
		return Report{}, fmt.Errorf("flate output: %w", err)
	}
	return r, nil
}

// Ratio returns input bytes per encoded byte, or 0 for an empty encoding.
func (r Report) Ratio() float64 {
	if r.OutputBytes == 0 {
		return 0
	}
	return float64(r.InputBytes) / float64(r.OutputBytes)
}

// WriteTo prints the report, one metric per line.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	p := message.NewPrinter(language.English) // For commas between thousands
	lines := []struct {
		format string
		arg    any
	}{
		{"Stack Memory Input: %d\n", r.InputHandle},
		{"Stack Memory Output: %d\n", r.OutputHandle},
		{"Heap Memory Input (UTF-8 bytes): %d\n", r.InputBytes},
		{"Heap Memory Output (compressed bytes): %d\n", r.OutputBytes},
		{"Runes: %d\n", r.Runes},
		{"Symbols: %d\n", r.Symbols},
		{"Ratio: %.2fx\n", r.Ratio()},
		{"Shannon bound of output: %d bytes\n", r.ShannonBytes},
		{"huff0 of output: %d bytes\n", r.Huff0Bytes},
		{"flate of input: %d bytes\n", r.FlateInput},
		{"flate of output: %d bytes\n", r.FlateOutput},
		{"Compressibility estimate of output: %.2f\n", r.Estimate},
	}

	var total int64
	for _, line := range lines {
		n, err := p.Fprintf(w, line.format, line.arg)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// huff0Size compresses data block by block and sums the sizes. Blocks huff0
// refuses count at their raw length, single-symbol blocks as one byte.
func huff0Size(data []byte) (int, error) {
	var s huff0.Scratch
	total := 0
	for len(data) > 0 {
		block := data
		if len(block) > huff0.BlockSizeMax {
			block = block[:huff0.BlockSizeMax]
		}
		data = data[len(block):]

		out, _, err := huff0.Compress1X(block, &s)
		switch {
		case err == nil:
			total += len(out)
		case errors.Is(err, huff0.ErrIncompressible):
			total += len(block)
		case errors.Is(err, huff0.ErrUseRLE):
			total++
		default:
			return 0, err
		}
	}
	return total, nil
}

func flateSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
