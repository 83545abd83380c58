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

package firesim

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/spatialmodel/firesim/internal/fbp"
	"github.com/spatialmodel/firesim/internal/fuel"
	"github.com/spatialmodel/firesim/internal/geoproj"
	"github.com/spatialmodel/firesim/internal/perimeter"
	"github.com/spatialmodel/firesim/internal/spread"
)

// ignitionRadiusM and ignitionNumPoints define the small circle a run
// starts from; a single ignition point produces degenerate (zero-area)
// geometry that the rest of the pipeline cannot expand.
const (
	ignitionRadiusM   = 30.0
	ignitionNumPoints = 12
)

// Frame is one snapshot of a running simulation: the fire front's current
// geometry plus the reporting metrics derived from it.
type Frame struct {
	TimeHours float64
	Perimeter []spread.FireVertex

	AreaHectares float64
	HeadROS      float64 // m/min
	MaxHFI       float64 // kW/m
	FireType     fbp.FireType
	FlameLength  float64 // m

	// FuelBreakdown maps fuel code to the fraction of front vertices
	// currently sitting over that fuel type; fractions sum to 1 when
	// nonempty. {DefaultFuel: 1.0} when no FuelGrid is configured.
	FuelBreakdown map[fuel.Code]float64
}

// GeoJSON encodes the frame's perimeter as a closed GeoJSON polygon
// Feature, with time and area carried as properties.
func (f Frame) GeoJSON() (*perimeter.Feature, error) {
	return perimeter.ToGeoJSON(f.Perimeter, map[string]interface{}{
		"time_hours": f.TimeHours,
		"area_ha":    f.AreaHectares,
	})
}

// Simulator runs one Huygens-wavelet fire spread simulation from a
// SimulationConfig. The zero value is invalid; use NewSimulator.
type Simulator struct {
	config SimulationConfig
	cache  *spread.FBPCache

	// ProgressWriter, if set, receives one line per internal tick
	// reporting elapsed simulation time, mirroring the teacher's
	// Log(w io.Writer) DomainManipulator hook. Nil disables logging;
	// the core otherwise performs no I/O (spec.md §5).
	ProgressWriter io.Writer
}

// NewSimulator constructs a Simulator backed by its own deduplicating FBP
// cache, sized to the host's GOMAXPROCS.
func NewSimulator(cfg SimulationConfig) *Simulator {
	return &Simulator{
		config: cfg,
		cache:  spread.NewDefaultFBPCache(),
	}
}

// Run executes the simulation and returns the complete, ordered sequence
// of frames. Run is synchronous: every frame is computed before Run
// returns, and frames are not handed to the caller one snapshot at a time.
// There is no background goroutine.
func (s *Simulator) Run() ([]Frame, error) {
	cfg := s.config

	front := ignitionFront(cfg.IgnitionLat, cfg.IgnitionLng)

	cond := spread.SpreadConditions{
		WindSpeed:     cfg.Weather.WindSpeed,
		WindDirection: cfg.Weather.WindDirection,
		FFMC:          cfg.ffmc(),
		DMC:           cfg.dmc(),
		DC:            cfg.dc(),
		PC:            cfg.pc(),
		GrassCure:     cfg.grassCure(),
	}

	var frames []Frame

	frame, err := s.createFrame(front, 0.0)
	if err != nil {
		return nil, err
	}
	frames = append(frames, frame)

	totalMinutes := 60.0 * cfg.DurationHours
	snapshotInterval := cfg.SnapshotIntervalMinutes
	nextSnapshot := snapshotInterval
	elapsed := 0.0
	dtMinutes := cfg.dtMinutes()
	numRays := cfg.NumRays
	if numRays <= 0 {
		numRays = spread.DefaultNumRays
	}

	for elapsed < totalMinutes {
		dt := dtMinutes
		if remaining := totalMinutes - elapsed; dt > remaining {
			dt = remaining
		}

		expanded, err := spread.ExpandFireFront(s.cache, front, cond, cfg.FuelGrid, cfg.TerrainGrid, dt, cfg.defaultFuel(), numRays)
		if err != nil {
			return nil, err
		}
		front = spread.SimplifyFront(expanded)

		elapsed += dt
		s.logProgress(elapsed, totalMinutes)

		if elapsed >= nextSnapshot || elapsed >= totalMinutes {
			frame, err := s.createFrame(front, elapsed/60.0)
			if err != nil {
				return nil, err
			}
			frames = append(frames, frame)
			nextSnapshot += snapshotInterval
		}
	}

	return frames, nil
}

// ignitionFront builds the initial fire front as a small circle of vertices
// around the ignition point: a single point would be degenerate geometry
// that the rest of the pipeline cannot expand or measure the area of.
func ignitionFront(lat, lng float64) []spread.FireVertex {
	front := make([]spread.FireVertex, ignitionNumPoints)
	for i := 0; i < ignitionNumPoints; i++ {
		bearingDeg := 360.0 * float64(i) / float64(ignitionNumPoints)
		ray := geoproj.BearingVector(bearingDeg)
		newLat, newLng := geoproj.Displace(lat, lng, r2.Vec{X: ray.X * ignitionRadiusM, Y: ray.Y * ignitionRadiusM})
		front[i] = spread.FireVertex{Lat: newLat, Lng: newLng}
	}
	return front
}

// createFrame derives reporting metrics for the current front: area from
// the perimeter, and head ROS/HFI/fire type/flame length from a single
// fresh FBP evaluation at the default fuel (a reporting approximation —
// not spatially averaged over the front, per spec.md §4.9).
func (s *Simulator) createFrame(front []spread.FireVertex, timeHours float64) (Frame, error) {
	cfg := s.config

	result, err := fbp.Calculate(cfg.defaultFuel(), cfg.Weather.WindSpeed, cfg.ffmc(), cfg.dmc(), cfg.dc(), fbp.Options{
		PC:        cfg.pc(),
		GrassCure: cfg.grassCure(),
		FMC:       100,
	})
	if err != nil {
		return Frame{}, err
	}

	return Frame{
		TimeHours:     timeHours,
		Perimeter:     front,
		AreaHectares:  perimeter.AreaHectares(front),
		HeadROS:       result.RosFinal,
		MaxHFI:        result.HFI,
		FireType:      result.FireType,
		FlameLength:   result.FlameLength,
		FuelBreakdown: s.fuelBreakdown(front),
	}, nil
}

// fuelBreakdown histograms the front's vertex fuel lookups. This counts
// vertices, not burned area: a reporting approximation carried over
// unchanged from the system this was distilled from.
func (s *Simulator) fuelBreakdown(front []spread.FireVertex) map[fuel.Code]float64 {
	cfg := s.config
	if cfg.FuelGrid == nil {
		return map[fuel.Code]float64{cfg.defaultFuel(): 1.0}
	}

	counts := make(map[fuel.Code]int)
	total := 0
	for _, v := range front {
		code, ok := cfg.FuelGrid.At(v.Lat, v.Lng)
		if !ok {
			continue
		}
		counts[code]++
		total++
	}
	if total == 0 {
		return map[fuel.Code]float64{}
	}

	breakdown := make(map[fuel.Code]float64, len(counts))
	for code, n := range counts {
		breakdown[code] = float64(n) / float64(total)
	}
	return breakdown
}

func (s *Simulator) logProgress(elapsed, total float64) {
	if s.ProgressWriter == nil {
		return
	}
	fmt.Fprintf(s.ProgressWriter, "t=%.1fmin/%.1fmin\n", elapsed, total)
}

