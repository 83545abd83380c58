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

// Package perimeter computes area and centroid analytics over a closed fire
// front and encodes it as GeoJSON, using github.com/ctessum/geom's planar
// Polygon for the shoelace area math and
// github.com/twpayne/gogeom/geom/encoding/geojson for output, the way the
// teacher's output writer encodes its grid cells.
package perimeter

import (
	"github.com/ctessum/geom"
	twgeom "github.com/twpayne/gogeom/geom"
	"github.com/twpayne/gogeom/geom/encoding/geojson"

	"github.com/spatialmodel/firesim/internal/geoproj"
	"github.com/spatialmodel/firesim/internal/spread"
)

// ToPolygon projects a fire front into a local equirectangular plane (meters)
// anchored at the front's centroid latitude, closing the ring if necessary,
// for use with geom.Polygon's area/centroid methods.
func ToPolygon(front []spread.FireVertex) geom.Polygon {
	if len(front) == 0 {
		return geom.Polygon{}
	}
	anchorLat := meanLat(front)

	ring := make([]geom.Point, 0, len(front)+1)
	for _, v := range front {
		ring = append(ring, geom.Point{
			X: v.Lng * geoproj.MetersPerDegreeLng(anchorLat),
			Y: v.Lat * geoproj.MetersPerDegreeLat,
		})
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return geom.Polygon{ring}
}

// AreaHectares returns the shoelace area of the closed fire front in
// hectares. The result is invariant to the vertex winding order.
func AreaHectares(front []spread.FireVertex) float64 {
	if len(front) < 3 {
		return 0
	}
	return ToPolygon(front).Area() / 10000.0
}

// Centroid returns the arithmetic mean of the fire front's vertex lat/lng,
// matching the original's calculate_centroid rather than the area-weighted
// polygon centroid — the two only coincide for symmetric shapes, and the
// wind-driven elliptical fronts this simulator produces are not symmetric.
func Centroid(front []spread.FireVertex) (lat, lng float64) {
	if len(front) == 0 {
		return 0, 0
	}
	return meanLat(front), meanLng(front)
}

// Feature is a minimal GeoJSON Feature wrapper around the fire front's
// geometry plus caller-supplied properties (e.g. frame time, burned area).
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   *geojson.Geometry      `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// ToGeoJSON encodes the fire front as a closed GeoJSON polygon Feature in
// geographic (lat/lng) coordinates.
func ToGeoJSON(front []spread.FireVertex, properties map[string]interface{}) (*Feature, error) {
	if len(front) == 0 {
		return nil, nil
	}

	ring := make([]twgeom.Point, 0, len(front)+1)
	for _, v := range front {
		ring = append(ring, twgeom.Point{X: v.Lng, Y: v.Lat})
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	g, err := geojson.ToGeoJSON(twgeom.Polygon{ring})
	if err != nil {
		return nil, err
	}
	return &Feature{Type: "Feature", Geometry: g, Properties: properties}, nil
}

func meanLat(front []spread.FireVertex) float64 {
	var sum float64
	for _, v := range front {
		sum += v.Lat
	}
	return sum / float64(len(front))
}

func meanLng(front []spread.FireVertex) float64 {
	var sum float64
	for _, v := range front {
		sum += v.Lng
	}
	return sum / float64(len(front))
}
