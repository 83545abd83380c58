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

// Package firesim is the embedding API for the Huygens-wavelet wildland
// fire spread simulator: construct a SimulationConfig, hand it to
// NewSimulator, and consume the ordered Frame slice returned by Run.
package firesim

import (
	"github.com/spatialmodel/firesim/internal/fuel"
	"github.com/spatialmodel/firesim/internal/grid"
)

// Weather carries the constant noon weather observation a simulation run is
// driven by: temperature and relative humidity feed fwi.CalculateDaily when
// a caller recomputes FFMC/DMC/DC from scratch, while wind speed/direction
// are read directly by the spread model at every front vertex.
type Weather struct {
	Temperature      float64 // degrees C
	RelativeHumidity float64 // percent, [0, 100]
	WindSpeed        float64 // 10-m open wind speed, km/h
	WindDirection    float64 // degrees, meteorological FROM convention, [0, 360)
	Precipitation24h float64 // mm, accumulated over the prior 24 hours
}

// defaultFFMC, defaultDMC, defaultDC are the simulator's own FWI input
// defaults (distinct from fwi.Default*, which are spring-startup values for
// the daily accumulator); they apply when a SimulationConfig's FFMC/DMC/DC
// pointer is nil.
const (
	defaultFFMC = 85.0
	defaultDMC  = 40.0
	defaultDC   = 200.0
)

// SimulationConfig is the caller-constructed description of one simulation
// run. The zero value is invalid; IgnitionLat, IgnitionLng, Weather, and
// DurationHours must be set. FFMC, DMC, and DC default to 85/40/200 when nil.
type SimulationConfig struct {
	IgnitionLat, IgnitionLng float64
	Weather                  Weather

	FFMC, DMC, DC *float64

	DurationHours           float64
	SnapshotIntervalMinutes float64

	PC        float64 // percent conifer, for M1/M2; defaults to 50 if unset
	GrassCure float64 // percent curing, for O1a/O1b; defaults to 60 if unset

	FuelGrid    *grid.FuelGrid
	TerrainGrid *grid.TerrainGrid
	DefaultFuel fuel.Code // defaults to fuel.C2 if empty

	// DtMinutes is the internal expansion timestep; defaults to 5 if <= 0.
	DtMinutes float64
	// NumRays is the number of directional samples per wavelet; defaults
	// to spread.DefaultNumRays if <= 0.
	NumRays int
}

func (c SimulationConfig) ffmc() float64 {
	if c.FFMC != nil {
		return *c.FFMC
	}
	return defaultFFMC
}

func (c SimulationConfig) dmc() float64 {
	if c.DMC != nil {
		return *c.DMC
	}
	return defaultDMC
}

func (c SimulationConfig) dc() float64 {
	if c.DC != nil {
		return *c.DC
	}
	return defaultDC
}

func (c SimulationConfig) pc() float64 {
	if c.PC == 0 {
		return 50.0
	}
	return c.PC
}

func (c SimulationConfig) grassCure() float64 {
	if c.GrassCure == 0 {
		return 60.0
	}
	return c.GrassCure
}

func (c SimulationConfig) defaultFuel() fuel.Code {
	if c.DefaultFuel == "" {
		return fuel.C2
	}
	return c.DefaultFuel
}

func (c SimulationConfig) dtMinutes() float64 {
	if c.DtMinutes <= 0 {
		return 5.0
	}
	return c.DtMinutes
}
