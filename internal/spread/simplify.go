/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package spread

import (
	"math"
	"sort"
)

// SimplifyFront reduces a cloud of expanded wavelet points to an ordered
// fire front: the convex hull of the cloud, resampled at regular angular
// intervals from the centroid for a clean, evenly-spaced perimeter.
//
// Fronts of three points or fewer are returned unchanged — there is nothing
// to simplify.
func SimplifyFront(points []FireVertex) []FireVertex {
	if len(points) <= 3 {
		return points
	}

	var cx, cy float64
	for _, p := range points {
		cx += p.Lat
		cy += p.Lng
	}
	n := float64(len(points))
	cx /= n
	cy /= n

	hull := convexHull(points)
	if len(hull) < 3 {
		return hull
	}

	numOutput := len(hull)
	if numOutput < DefaultNumRays {
		numOutput = DefaultNumRays
	}
	return resampleAngular(hull, cx, cy, numOutput)
}

func convexHull(points []FireVertex) []FireVertex {
	pts := append([]FireVertex(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Lat != pts[j].Lat {
			return pts[i].Lat < pts[j].Lat
		}
		return pts[i].Lng < pts[j].Lng
	})

	if len(pts) <= 2 {
		return pts
	}

	lower := make([]FireVertex, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]FireVertex, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := make([]FireVertex, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// cross is the 2D cross product of vectors OA and OB.
func cross(o, a, b FireVertex) float64 {
	return (a.Lat-o.Lat)*(b.Lng-o.Lng) - (a.Lng-o.Lng)*(b.Lat-o.Lat)
}

func resampleAngular(hull []FireVertex, cx, cy float64, numPoints int) []FireVertex {
	if len(hull) == 0 {
		return hull
	}

	angle := func(p FireVertex) float64 {
		return math.Atan2(p.Lng-cy, p.Lat-cx)
	}

	hullSorted := append([]FireVertex(nil), hull...)
	sort.Slice(hullSorted, func(i, j int) bool {
		return angle(hullSorted[i]) < angle(hullSorted[j])
	})

	result := make([]FireVertex, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		target := -math.Pi + 2.0*math.Pi*float64(i)/float64(numPoints)

		best := hullSorted[0]
		bestDiff := math.Abs(angle(best) - target)
		for _, p := range hullSorted[1:] {
			if diff := math.Abs(angle(p) - target); diff < bestDiff {
				best, bestDiff = p, diff
			}
		}
		result = append(result, best)
	}

	seen := make(map[[2]float64]bool, len(result))
	unique := make([]FireVertex, 0, len(result))
	for _, p := range result {
		key := [2]float64{roundTo(p.Lat, 8), roundTo(p.Lng, 8)}
		if !seen[key] {
			seen[key] = true
			unique = append(unique, p)
		}
	}
	return unique
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
