package spread

import (
	"testing"

	"github.com/spatialmodel/firesim/internal/fuel"
)

func TestFBPCacheReturnsConsistentResults(t *testing.T) {
	cache := NewFBPCache(2, 100)
	a, err := cache.Calculate(fuel.C2, 20, 90, 45, 300, 50, 60)
	if err != nil {
		t.Fatal(err)
	}
	b, err := cache.Calculate(fuel.C2, 20, 90, 45, 300, 50, 60)
	if err != nil {
		t.Fatal(err)
	}
	if a.RosFinal != b.RosFinal {
		t.Errorf("cached result mismatch: %v vs %v", a.RosFinal, b.RosFinal)
	}
}

func TestFBPCachePropagatesError(t *testing.T) {
	cache := NewFBPCache(2, 100)
	if _, err := cache.Calculate(fuel.Code("bogus"), 20, 90, 45, 300, 50, 60); err == nil {
		t.Error("expected error for unknown fuel type")
	}
}
