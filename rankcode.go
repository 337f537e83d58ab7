// Package rankcode implements a static frequency-rank symbol codec.
//
// Every distinct rune of a text gets a single-byte code, with the most
// frequent rune receiving code 0, the next code 1, and so on. Encoding maps
// each rune to its code; decoding maps codes back through the inverse table.
// The output is one byte per rune, so texts dominated by multi-byte UTF-8
// characters shrink, while the code order favors byte-oriented compressors
// applied downstream.
package rankcode

import (
	"errors"
	"fmt"
)

const (
	maxCodeValue = 255              // maxCodeValue is the largest value a single-byte code can hold.
	MaxSymbols   = maxCodeValue - 1 // MaxSymbols is the largest alphabet BuildCodeMapping accepts.
	minShardLen  = 4096             // minShardLen is the smallest text slice worth counting on its own goroutine.
)

// TieBreak selects how symbols with equal counts are ordered.
type TieBreak uint8

const (
	// TieBreakCodePoint orders equal counts by ascending rune value.
	TieBreakCodePoint TieBreak = iota
	// TieBreakFirstOccurrence orders equal counts by first appearance in the text.
	TieBreakFirstOccurrence
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakCodePoint:
		return "code-point"
	case TieBreakFirstOccurrence:
		return "first-occurrence"
	default:
		return fmt.Sprintf("TieBreak(%d)", uint8(t))
	}
}

// Config holds configuration for code assignment and training.
type Config struct {
	Concurrency int      // Shards used to count frequencies (0 or 1 = sequential)
	TieBreak    TieBreak // Ordering of symbols with equal counts
}

// Option is a functional option for configuring code assignment.
type Option func(*Config)

// WithConcurrency counts frequencies on up to n goroutines.
func WithConcurrency(n int) Option {
	return func(c *Config) {
		c.Concurrency = n
	}
}

// WithTieBreak sets the ordering of symbols with equal counts.
// Unknown values fall back to TieBreakCodePoint.
func WithTieBreak(t TieBreak) Option {
	return func(c *Config) {
		c.TieBreak = t
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func resolveTieBreak(cfg Config) TieBreak {
	switch cfg.TieBreak {
	case TieBreakFirstOccurrence:
		return TieBreakFirstOccurrence
	default:
		return TieBreakCodePoint
	}
}

var (
	// ErrTooManyUniqueSymbols indicates the alphabet does not fit single-byte codes.
	ErrTooManyUniqueSymbols = errors.New("too many unique symbols")
	// ErrUnmappedSymbol indicates a rune has no code in the mapping used to encode.
	ErrUnmappedSymbol = errors.New("unmapped symbol")
	// ErrInvalidByte indicates a byte has no rune in the mapping used to decode.
	ErrInvalidByte = errors.New("invalid byte")
	// ErrUntrainedModel indicates Encode or Decode was called before a model was trained.
	ErrUntrainedModel = errors.New("model is not trained")
	// ErrInvalidUTF8 indicates a model was given text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// UnmappedSymbolError reports the rune that could not be encoded.
type UnmappedSymbolError struct {
	Symbol rune
	Offset int // rune index in the input
}

func (e *UnmappedSymbolError) Error() string {
	return fmt.Sprintf("%v: %q (U+%04X) at rune %d", ErrUnmappedSymbol, e.Symbol, e.Symbol, e.Offset)
}

func (e *UnmappedSymbolError) Unwrap() error { return ErrUnmappedSymbol }

// InvalidByteError reports the byte that could not be decoded.
type InvalidByteError struct {
	Byte   byte
	Offset int // byte index in the input
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("%v: %d at offset %d", ErrInvalidByte, e.Byte, e.Offset)
}

func (e *InvalidByteError) Unwrap() error { return ErrInvalidByte }
