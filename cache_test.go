package rankcode

import (
	"errors"
	"maps"
	"testing"

	"github.com/seiflotfy/rankcode/internal/sample"
)

func TestCacheReusesModels(t *testing.T) {
	c, err := NewCache(4)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	first, err := c.Model(sample.Text)
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	second, err := c.Model(sample.Text)
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached model on the second call")
	}
	if c.Len() != 1 {
		t.Errorf("Len: expected 1, got %d", c.Len())
	}

	if _, err := c.Model("aab"); err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len: expected 2, got %d", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge: expected 0, got %d", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c, err := NewCache(1)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	a, _ := c.Model("aab")
	if _, err := c.Model("xyz"); err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	again, _ := c.Model("aab")
	if a == again {
		t.Error("expected the evicted model to be retrained")
	}
	if c.Len() != 1 {
		t.Errorf("Len: expected 1, got %d", c.Len())
	}
}

func TestCacheAppliesOptions(t *testing.T) {
	c, err := NewCache(2, WithTieBreak(TieBreakFirstOccurrence))
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}
	m, err := c.Model("cba")
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	want := CodeMapping{'c': 0, 'b': 1, 'a': 2}
	if !maps.Equal(m.Mapping(), want) {
		t.Errorf("expected %v, got %v", want, m.Mapping())
	}
}

func TestCacheTrainError(t *testing.T) {
	c, err := NewCache(2)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}
	if _, err := c.Model(sample.Distinct(MaxSymbols + 1)); !errors.Is(err, ErrTooManyUniqueSymbols) {
		t.Errorf("expected ErrTooManyUniqueSymbols, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed training should not be cached, Len=%d", c.Len())
	}
}

func TestNewCacheInvalidSize(t *testing.T) {
	if _, err := NewCache(0); err == nil {
		t.Error("expected an error for a zero-sized cache")
	}
}
