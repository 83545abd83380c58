package spread

import "testing"

func TestSimplifyFrontPassthroughSmall(t *testing.T) {
	pts := []FireVertex{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}, {Lat: 0, Lng: 1}}
	got := SimplifyFront(pts)
	if len(got) != len(pts) {
		t.Errorf("got %d points, want %d passthrough", len(got), len(pts))
	}
}

func TestSimplifyFrontSquareCloud(t *testing.T) {
	// A 10x10 grid cloud plus interior points: the simplified front should
	// be a subset of the convex hull (the four corners), never an interior
	// point, and should contain at least one point at each extreme.
	var cloud []FireVertex
	for i := 0; i <= 10; i++ {
		for j := 0; j <= 10; j++ {
			cloud = append(cloud, FireVertex{Lat: float64(i), Lng: float64(j)})
		}
	}

	front := SimplifyFront(cloud)
	if len(front) == 0 {
		t.Fatal("expected a non-empty simplified front")
	}

	var minLat, maxLat, minLng, maxLng = front[0].Lat, front[0].Lat, front[0].Lng, front[0].Lng
	for _, p := range front {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lng < minLng {
			minLng = p.Lng
		}
		if p.Lng > maxLng {
			maxLng = p.Lng
		}
	}
	if minLat < 0 || maxLat > 10 || minLng < 0 || maxLng > 10 {
		t.Errorf("simplified front escaped cloud bounding box: lat [%v,%v] lng [%v,%v]", minLat, maxLat, minLng, maxLng)
	}
	for _, p := range front {
		if (p.Lat != 0 && p.Lat != 10) || (p.Lng != 0 && p.Lng != 10) {
			t.Errorf("simplified front contains non-corner point %v", p)
		}
	}
	if minLat != 0 || maxLat != 10 || minLng != 0 || maxLng != 10 {
		t.Errorf("simplified front misses an extreme: lat [%v,%v] lng [%v,%v]", minLat, maxLat, minLng, maxLng)
	}
}

func TestConvexHullTriangle(t *testing.T) {
	pts := []FireVertex{
		{Lat: 0, Lng: 0}, {Lat: 2, Lng: 0}, {Lat: 1, Lng: 2}, {Lat: 1, Lng: 0.5}, // interior point
	}
	hull := convexHull(pts)
	if len(hull) != 3 {
		t.Errorf("got hull of %d points, want 3 (interior point excluded)", len(hull))
	}
}

func TestResampleAngularDedupes(t *testing.T) {
	hull := []FireVertex{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}, {Lat: 0, Lng: 1}}
	result := resampleAngular(hull, 0.33, 0.33, 4)
	seen := make(map[FireVertex]bool)
	for _, p := range result {
		if seen[p] {
			t.Errorf("duplicate point %v in resampled output", p)
		}
		seen[p] = true
	}
}
