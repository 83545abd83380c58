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

// Package spread implements Huygens-wavelet fire front propagation: each
// vertex on the fire front is expanded as an elliptical wavelet from local
// FBP output, and the envelope of all wavelets becomes the new front
// (Tymstra et al. 2010, Prometheus NOR-X-417).
package spread

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/spatialmodel/firesim/internal/fuel"
	"github.com/spatialmodel/firesim/internal/geoproj"
	"github.com/spatialmodel/firesim/internal/grid"
)

// DefaultNumRays is the number of directional samples per wavelet absent an
// explicit override.
const DefaultNumRays = 36

// FireVertex is a single point on the fire front.
type FireVertex struct {
	Lat, Lng float64
}

// SpreadConditions carries the weather and fuel-moisture conditions that
// apply uniformly to one expansion tick.
type SpreadConditions struct {
	WindSpeed     float64 // km/h
	WindDirection float64 // degrees, meteorological FROM convention
	FFMC, DMC, DC float64
	PC            float64 // percent conifer, for M1/M2
	GrassCure     float64 // percent curing, for O1a/O1b
}

// ExpandVertex expands a single fire front vertex as a Huygens wavelet,
// sampling FBP-derived rate of spread at numRays directions. It returns
// []FireVertex{vertex} unchanged when the local head fire ROS is
// negligible (no spread).
func ExpandVertex(cache *FBPCache, vertex FireVertex, cond SpreadConditions, fuelType fuel.Code, slopePercent, aspectDeg, dtMinutes float64, numRays int) ([]FireVertex, error) {
	res, err := cache.Calculate(fuelType, cond.WindSpeed, cond.FFMC, cond.DMC, cond.DC, cond.PC, cond.GrassCure)
	if err != nil {
		return nil, err
	}

	headROS := res.RosFinal
	if headROS <= 0.001 {
		return []FireVertex{vertex}, nil
	}

	lbr := geoproj.LengthToBreadthRatio(cond.WindSpeed)
	backROS := geoproj.BackROS(headROS, lbr)
	flankROS := geoproj.FlankROS(headROS, lbr)

	spreadDir := math.Mod(cond.WindDirection+180.0, 360.0)
	spreadDirRad := radians(spreadDir)

	aROS := (headROS + backROS) / 2.0
	bROS := flankROS
	centerOffsetROS := (headROS - backROS) / 2.0

	offset := r2.Vec{
		X: centerOffsetROS * dtMinutes * math.Cos(spreadDirRad),
		Y: centerOffsetROS * dtMinutes * math.Sin(spreadDirRad),
	}

	points := make([]FireVertex, 0, numRays)
	for i := 0; i < numRays; i++ {
		rayDeg := 360.0 * float64(i) / float64(numRays)
		angleFromHead := rayDeg - spreadDir

		rayROS := geoproj.DirectionalROS(aROS, bROS, angleFromHead)
		rayROS *= DirectionalSlopeFactor(slopePercent, aspectDeg, rayDeg)

		distM := rayROS * dtMinutes
		ray := geoproj.BearingVector(rayDeg)

		disp := r2.Vec{
			X: offset.X + distM*ray.X,
			Y: offset.Y + distM*ray.Y,
		}
		lat, lng := geoproj.Displace(vertex.Lat, vertex.Lng, disp)
		points = append(points, FireVertex{Lat: lat, Lng: lng})
	}

	return points, nil
}

// ExpandFireFront expands every vertex on front by one Huygens wavelet
// timestep. Vertices over non-fuel cells do not spread and contribute no
// points. If the whole front fails to produce any points (e.g. an
// all-non-fuel front), the original front is returned unchanged.
//
// Per-vertex expansion is embarrassingly parallel (§5): a bounded worker
// pool fans the front out across runtime.GOMAXPROCS(0) goroutines, one
// slot per vertex index, so the results slice fills in deterministic
// input order regardless of completion order — simplification downstream
// only needs a point cloud, not a particular concatenation order, but
// preserving it keeps runs reproducible for a fixed GOMAXPROCS.
func ExpandFireFront(cache *FBPCache, front []FireVertex, cond SpreadConditions, fuelGrid *grid.FuelGrid, terrainGrid *grid.TerrainGrid, dtMinutes float64, defaultFuel fuel.Code, numRays int) ([]FireVertex, error) {
	perVertex := make([][]FireVertex, len(front))
	errs := make([]error, len(front))

	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > len(front) {
		nprocs = len(front)
	}
	if nprocs < 1 {
		nprocs = 1
	}

	var wg sync.WaitGroup
	wg.Add(nprocs)
	for w := 0; w < nprocs; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(front); i += nprocs {
				vertex := front[i]

				fuelType := defaultFuel
				if fuelGrid != nil {
					localFuel, ok := fuelGrid.At(vertex.Lat, vertex.Lng)
					if !ok {
						continue
					}
					fuelType = localFuel
				}

				slopePercent, aspectDeg := 0.0, 0.0
				if terrainGrid != nil {
					slopePercent, aspectDeg = terrainGrid.At(vertex.Lat, vertex.Lng)
				}

				wavelet, err := ExpandVertex(cache, vertex, cond, fuelType, slopePercent, aspectDeg, dtMinutes, numRays)
				if err != nil {
					errs[i] = err
					continue
				}
				perVertex[i] = wavelet
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var allPoints []FireVertex
	for _, wavelet := range perVertex {
		allPoints = append(allPoints, wavelet...)
	}

	if len(allPoints) == 0 {
		return front, nil
	}
	return allPoints, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
