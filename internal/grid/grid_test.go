package grid

import (
	"testing"

	"github.com/spatialmodel/firesim/internal/fuel"
)

func testBounds() Bounds {
	return Bounds{LatMin: 50.0, LatMax: 51.0, LngMin: -115.0, LngMax: -114.0, Rows: 10, Cols: 10}
}

func TestFuelGridDefaultNonFuel(t *testing.T) {
	g := NewFuelGrid(testBounds())
	if _, ok := g.At(50.5, -114.5); ok {
		t.Error("expected default cell to be non-fuel")
	}
}

func TestFuelGridSetAndLookup(t *testing.T) {
	g := NewFuelGrid(testBounds())
	if err := g.Set(0, 0, fuel.C2); err != nil {
		t.Fatal(err)
	}
	// Row 0 is lat_max; col 0 is lng_min.
	code, ok := g.At(50.99, -114.99)
	if !ok {
		t.Fatal("expected fuel at row 0, col 0")
	}
	if code != fuel.C2 {
		t.Errorf("got %v, want C2", code)
	}
}

func TestFuelGridOutsideBounds(t *testing.T) {
	g := NewFuelGrid(testBounds())
	if err := g.Set(0, 0, fuel.C2); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.At(60.0, -114.5); ok {
		t.Error("expected out-of-bounds lookup to report not-ok")
	}
}

func TestFuelGridSetUnknownCode(t *testing.T) {
	g := NewFuelGrid(testBounds())
	if err := g.Set(0, 0, fuel.Code("bogus")); err == nil {
		t.Error("expected error for unknown fuel code")
	}
}

func TestFuelGridClearedCellIsNonFuel(t *testing.T) {
	g := NewFuelGrid(testBounds())
	if err := g.Set(5, 5, ""); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.At(50.5, -114.5); ok {
		t.Error("expected cleared cell to remain non-fuel")
	}
}

func TestTerrainGridDefaultFlat(t *testing.T) {
	g := NewTerrainGrid(testBounds())
	slope, aspect := g.At(50.5, -114.5)
	if slope != 0 || aspect != 0 {
		t.Errorf("got (%v,%v), want (0,0)", slope, aspect)
	}
}

func TestTerrainGridOutsideBoundsDefaultsFlat(t *testing.T) {
	g := NewTerrainGrid(testBounds())
	g.Set(0, 0, 50.0, 180.0)
	slope, aspect := g.At(90.0, 0.0)
	if slope != 0 || aspect != 0 {
		t.Errorf("got (%v,%v), want (0,0) outside bounds", slope, aspect)
	}
}

func TestTerrainGridSetAndLookup(t *testing.T) {
	g := NewTerrainGrid(testBounds())
	g.Set(3, 4, 35.0, 270.0)
	// Row 3 of 10 spans lat (51 - 4/10) to (51 - 3/10): pick a lat in that band.
	lat := 51.0 - 3.5/10.0
	lng := -115.0 + 4.5/10.0
	slope, aspect := g.At(lat, lng)
	if slope != 35.0 || aspect != 270.0 {
		t.Errorf("got (%v,%v), want (35,270)", slope, aspect)
	}
}
