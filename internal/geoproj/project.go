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

// Package geoproj provides the local equirectangular projection used
// throughout the core (anchored at whichever vertex or centroid is being
// processed) and the elliptical fire-shape geometry (length-to-breadth
// ratio, eccentricity, directional rate of spread) derived from FBP ROS
// output.
package geoproj

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MetersPerDegreeLat is the (constant) number of meters per degree of
// latitude used by the local equirectangular approximation.
const MetersPerDegreeLat = 111320.0

// MetersPerDegreeLng returns the number of meters per degree of longitude
// at the given latitude (degrees).
func MetersPerDegreeLng(latDeg float64) float64 {
	return MetersPerDegreeLat * math.Cos(radians(latDeg))
}

// BearingVector returns a unit vector for a compass bearing (degrees,
// clockwise from north), with X = north component, Y = east component.
func BearingVector(bearingDeg float64) r2.Vec {
	rad := radians(bearingDeg)
	return r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Displace returns the geographic point reached by moving (north, east)
// meters from (lat, lng) under the local equirectangular projection
// anchored at lat.
func Displace(lat, lng float64, offset r2.Vec) (newLat, newLng float64) {
	newLat = lat + offset.X/MetersPerDegreeLat
	newLng = lng + offset.Y/MetersPerDegreeLng(lat)
	return newLat, newLng
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
