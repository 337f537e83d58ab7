package rankcode

import (
	"maps"
	"unicode/utf8"
)

// Model is a reusable trained code table.
type Model struct {
	config      Config
	frequencies FrequencyTable
	mapping     CodeMapping
	reverse     ReverseMapping
}

// NewModel creates an empty model with the provided options.
func NewModel(opts ...Option) *Model {
	return &Model{config: newConfig(opts)}
}

// TrainModel trains a reusable model from a sample text.
func TrainModel(text string, opts ...Option) (*Model, error) {
	m := NewModel(opts...)
	if err := m.Train(text); err != nil {
		return nil, err
	}
	return m, nil
}

// Train counts the symbols of text and builds the code table for subsequent
// Encode and Decode calls. On error the model keeps its previous table.
func (m *Model) Train(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	freq := CountFrequenciesSharded(text, m.config.Concurrency)
	mapping, err := BuildCodeMapping(freq, WithTieBreak(m.config.TieBreak))
	if err != nil {
		return err
	}
	m.frequencies = freq
	m.mapping = mapping
	m.reverse = mapping.Reverse()
	return nil
}

// Encode maps text through the trained table.
func (m *Model) Encode(text string) ([]byte, error) {
	if m.mapping == nil {
		return nil, ErrUntrainedModel
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	return Encode(text, m.mapping)
}

// Decode maps data back through the trained table.
func (m *Model) Decode(data []byte) (string, error) {
	if m.reverse == nil {
		return "", ErrUntrainedModel
	}
	return Decode(data, m.reverse)
}

// Trained reports whether the model is ready for Encode.
func (m *Model) Trained() bool {
	return m.mapping != nil
}

// Symbols returns the alphabet size of the trained table.
func (m *Model) Symbols() int {
	return len(m.mapping)
}

// Mapping returns a copy of the rune to code table.
func (m *Model) Mapping() CodeMapping {
	return maps.Clone(m.mapping)
}

// Reverse returns a copy of the code to rune table.
func (m *Model) Reverse() ReverseMapping {
	return maps.Clone(m.reverse)
}

// Frequencies returns a copy of the table the model was trained from.
func (m *Model) Frequencies() FrequencyTable {
	return maps.Clone(m.frequencies)
}
