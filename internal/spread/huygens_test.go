package spread

import (
	"math"
	"testing"

	"github.com/spatialmodel/firesim/internal/fuel"
	"github.com/spatialmodel/firesim/internal/grid"
)

func baseConditions() SpreadConditions {
	return SpreadConditions{
		WindSpeed:     20,
		WindDirection: 270, // wind FROM the west: fire spreads east
		FFMC:          90,
		DMC:           45,
		DC:            300,
		PC:            50,
		GrassCure:     60,
	}
}

func TestExpandVertexProducesRays(t *testing.T) {
	cache := NewDefaultFBPCache()
	v := FireVertex{Lat: 51.0, Lng: -115.0}
	points, err := ExpandVertex(cache, v, baseConditions(), fuel.C2, 0, 0, 30, DefaultNumRays)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != DefaultNumRays {
		t.Fatalf("got %d points, want %d", len(points), DefaultNumRays)
	}
	for _, p := range points {
		if p.Lat == v.Lat && p.Lng == v.Lng {
			t.Error("expected displaced points, got the ignition vertex unchanged")
		}
	}
}

func TestExpandVertexNoSpreadReturnsVertexUnchanged(t *testing.T) {
	cache := NewDefaultFBPCache()
	v := FireVertex{Lat: 51.0, Lng: -115.0}
	cond := SpreadConditions{WindSpeed: 0, WindDirection: 0, FFMC: 0, DMC: 0, DC: 0, PC: 50, GrassCure: 60}
	points, err := ExpandVertex(cache, v, cond, fuel.C2, 0, 0, 30, DefaultNumRays)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 1 || points[0] != v {
		t.Errorf("expected [%v] for negligible ROS, got %v", v, points)
	}
}

func TestExpandFireFrontSkipsNonFuel(t *testing.T) {
	cache := NewDefaultFBPCache()
	b := grid.Bounds{LatMin: 50.0, LatMax: 51.0, LngMin: -115.0, LngMax: -114.0, Rows: 10, Cols: 10}
	fg := grid.NewFuelGrid(b)
	// Entire grid left as non-fuel (zero value).
	front := []FireVertex{{Lat: 50.5, Lng: -114.5}}
	result, err := ExpandFireFront(cache, front, baseConditions(), fg, nil, 30, fuel.C2, DefaultNumRays)
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 1 || result[0] != front[0] {
		t.Errorf("expected front returned unchanged over non-fuel grid, got %+v", result)
	}
}

func TestExpandFireFrontDefaultFuelWithoutGrid(t *testing.T) {
	cache := NewDefaultFBPCache()
	front := []FireVertex{{Lat: 51.0, Lng: -115.0}}
	result, err := ExpandFireFront(cache, front, baseConditions(), nil, nil, 30, fuel.C2, DefaultNumRays)
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != DefaultNumRays {
		t.Errorf("got %d points, want %d", len(result), DefaultNumRays)
	}
}

func TestExpandVertexScalesWithTimestep(t *testing.T) {
	cache := NewDefaultFBPCache()
	v := FireVertex{Lat: 51.0, Lng: -115.0}
	cond := baseConditions()

	short, err := ExpandVertex(cache, v, cond, fuel.C2, 0, 0, 15, DefaultNumRays)
	if err != nil {
		t.Fatal(err)
	}
	long, err := ExpandVertex(cache, v, cond, fuel.C2, 0, 0, 60, DefaultNumRays)
	if err != nil {
		t.Fatal(err)
	}

	maxDist := func(pts []FireVertex) float64 {
		var max float64
		for _, p := range pts {
			d := math.Hypot(p.Lat-v.Lat, p.Lng-v.Lng)
			if d > max {
				max = d
			}
		}
		return max
	}

	if !(maxDist(long) > maxDist(short)) {
		t.Error("expected a longer timestep to produce a farther-displaced wavelet")
	}
}
