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

// Package grid holds the spatial fuel and terrain rasters the spread engine
// samples at each fire-front vertex, backed by github.com/ctessum/sparse's
// DenseArray the way the teacher backs its meteorology fields.
package grid

import (
	"github.com/ctessum/sparse"

	"github.com/spatialmodel/firesim/internal/fuel"
)

// Bounds is the rectangular lat/lng extent covered by a grid, with row 0
// at lat_max (north) and column 0 at lng_min (west) — image-style row-major
// ordering, matching the ST-X-3 convention the source rasters ship in.
type Bounds struct {
	LatMin, LatMax float64
	LngMin, LngMax float64
	Rows, Cols     int
}

func (b Bounds) rowCol(lat, lng float64) (row, col int, ok bool) {
	if lat < b.LatMin || lat > b.LatMax || lng < b.LngMin || lng > b.LngMax {
		return 0, 0, false
	}
	row = int((b.LatMax - lat) / (b.LatMax - b.LatMin) * float64(b.Rows))
	col = int((lng - b.LngMin) / (b.LngMax - b.LngMin) * float64(b.Cols))
	if row < 0 {
		row = 0
	} else if row > b.Rows-1 {
		row = b.Rows - 1
	}
	if col < 0 {
		col = 0
	} else if col > b.Cols-1 {
		col = b.Cols - 1
	}
	return row, col, true
}

// FuelGrid is a raster of fuel codes. Cells are stored as a 1-based index
// into fuel.All() so that the DenseArray's "zero is absence" convention
// doubles as the non-fuel sentinel.
type FuelGrid struct {
	Bounds
	codes *sparse.DenseArray
}

// NewFuelGrid allocates an all-non-fuel grid over the given bounds.
func NewFuelGrid(b Bounds) *FuelGrid {
	return &FuelGrid{Bounds: b, codes: sparse.ZerosDense(b.Rows, b.Cols)}
}

// Set assigns the fuel type at (row, col). An empty code marks the cell
// non-fuel.
func (g *FuelGrid) Set(row, col int, code fuel.Code) error {
	if code == "" {
		g.codes.Set(0, row, col)
		return nil
	}
	idx, err := fuelIndex(code)
	if err != nil {
		return err
	}
	g.codes.Set(float64(idx), row, col)
	return nil
}

// At looks up the fuel type at a geographic coordinate. The second return
// value is false outside the grid bounds or over a non-fuel cell.
func (g *FuelGrid) At(lat, lng float64) (fuel.Code, bool) {
	row, col, ok := g.rowCol(lat, lng)
	if !ok {
		return "", false
	}
	v := g.codes.Get(row, col)
	if v == 0 {
		return "", false
	}
	return fuelByIndex(int(v)), true
}

// TerrainGrid is a raster of slope (percent) and aspect (degrees, 0=N).
type TerrainGrid struct {
	Bounds
	slope  *sparse.DenseArray
	aspect *sparse.DenseArray
}

// NewTerrainGrid allocates a flat (slope=0, aspect=0) grid over the given bounds.
func NewTerrainGrid(b Bounds) *TerrainGrid {
	return &TerrainGrid{
		Bounds: b,
		slope:  sparse.ZerosDense(b.Rows, b.Cols),
		aspect: sparse.ZerosDense(b.Rows, b.Cols),
	}
}

// Set assigns slope (percent) and aspect (degrees) at (row, col).
func (g *TerrainGrid) Set(row, col int, slopePercent, aspectDeg float64) {
	g.slope.Set(slopePercent, row, col)
	g.aspect.Set(aspectDeg, row, col)
}

// At returns (slope percent, aspect degrees) at a geographic coordinate,
// defaulting to (0, 0) outside the grid bounds.
func (g *TerrainGrid) At(lat, lng float64) (slopePercent, aspectDeg float64) {
	row, col, ok := g.rowCol(lat, lng)
	if !ok {
		return 0, 0
	}
	return g.slope.Get(row, col), g.aspect.Get(row, col)
}

var fuelOrder []fuel.Code

func init() {
	for _, spec := range fuel.All() {
		fuelOrder = append(fuelOrder, spec.Code)
	}
}

func fuelIndex(code fuel.Code) (int, error) {
	for i, c := range fuelOrder {
		if c == code {
			return i + 1, nil
		}
	}
	return 0, &fuel.ErrUnknownFuelType{Code: string(code)}
}

func fuelByIndex(idx int) fuel.Code {
	if idx < 1 || idx > len(fuelOrder) {
		return ""
	}
	return fuelOrder[idx-1]
}
