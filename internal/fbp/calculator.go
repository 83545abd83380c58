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

// Package fbp implements the Canadian Fire Behavior Prediction System: a
// stateless point model mapping weather, fuel, and terrain to rate of
// spread, intensity, and crown fire behavior (Forestry Canada 1992, ST-X-3).
package fbp

import (
	"math"

	"github.com/spatialmodel/firesim/internal/fuel"
	"github.com/spatialmodel/firesim/internal/fwi"
)

// FireType classifies the fire behavior a Result represents.
type FireType string

const (
	Surface             FireType = "surface"
	SurfaceWithTorching FireType = "surface_with_torching"
	PassiveCrown        FireType = "passive_crown"
	ActiveCrown         FireType = "active_crown"
)

// lowHeatOfCombustion is h in the intensity equations, kJ/kg.
const lowHeatOfCombustion = 18000.0

// Result is the complete, immutable output of one Calculate call.
type Result struct {
	FuelType fuel.Code
	ISI, BUI float64

	RosSurface float64 // m/min
	RosFinal   float64 // m/min, includes crown-fire blending

	SFC float64 // surface fuel consumption, kg/m2
	CFC float64 // crown fuel consumption, kg/m2
	TFC float64 // total fuel consumption, kg/m2

	SFI float64 // surface fire intensity, kW/m
	HFI float64 // head fire intensity, kW/m

	CFB      float64 // crown fraction burned, [0,1]
	FireType FireType

	FlameLength float64 // m, Byram 1959
}

// Options carries the optional parameters to Calculate. Fields are used as
// given, so the zero value means slope=0, pc=0 and grass_cure=0; only a zero
// FMC is replaced with 100. DefaultOptions returns the documented defaults.
type Options struct {
	Slope     float64 // percent
	PC        float64 // percent conifer, for M1/M2
	GrassCure float64 // percent curing, for O1a/O1b
	FMC       float64 // foliar moisture content, percent
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{Slope: 0, PC: 50, GrassCure: 60, FMC: 100}
}

// Calculate runs the full FBP procedure for one fuel type and one set of
// weather/fuel-moisture inputs.
func Calculate(fuelType fuel.Code, windSpeed, ffmc, dmc, dc float64, opts Options) (Result, error) {
	spec, err := fuel.Lookup(fuelType)
	if err != nil {
		return Result{}, err
	}

	isi := fwi.CalculateISI(ffmc, windSpeed)
	bui := fwi.CalculateBUI(dmc, dc)

	rosSurface := calculateSurfaceROS(spec, isi, bui, opts.PC, opts.GrassCure)

	if opts.Slope > 0 {
		rosSurface *= slopeFactor(opts.Slope)
	}

	sfc := spec.SFC
	sfi := lowHeatOfCombustion * sfc * rosSurface / 60.0

	fmc := opts.FMC
	if fmc == 0 {
		fmc = 100
	}
	csi := criticalSurfaceIntensity(spec.CBH, fmc)
	cfb := crownFractionBurned(sfi, csi)
	fireType := classifyFireType(cfb)

	rosCrown := rosSurface
	if cfb > 0 {
		rosCrown = crownROS(rosSurface, spec)
	}
	rosFinal := rosSurface*(1-cfb) + rosCrown*cfb

	cfc := cfb * spec.CFL
	tfc := sfc + cfc
	hfi := lowHeatOfCombustion * tfc * rosFinal / 60.0

	return Result{
		FuelType:    fuelType,
		ISI:         isi,
		BUI:         bui,
		RosSurface:  rosSurface,
		RosFinal:    rosFinal,
		SFC:         sfc,
		CFC:         cfc,
		TFC:         tfc,
		SFI:         sfi,
		HFI:         hfi,
		CFB:         cfb,
		FireType:    fireType,
		FlameLength: flameLength(hfi),
	}, nil
}

// calculateSurfaceROS computes surface rate of spread in m/min, branching on
// the fuel's Behavior tag (spec.md §9's tagged-variant redesign of the
// original a=b=c=0 sentinel).
func calculateSurfaceROS(spec *fuel.Spec, isi, bui, pc, grassCure float64) float64 {
	switch spec.Behavior {
	case fuel.BehaviorMixedwood:
		c2, _ := fuel.Lookup(fuel.C2)
		d1, _ := fuel.Lookup(fuel.D1)

		rosC := c2.A * math.Pow(1.0-math.Exp(-c2.B*isi), c2.C)
		rosD := d1.A * math.Pow(1.0-math.Exp(-d1.B*isi), d1.C)

		rosC *= buiEffect(bui, c2.Q, c2.BUI0)

		if spec.Code == fuel.M2 {
			rosD *= 0.2
		}

		return (pc/100.0)*rosC + (1.0-pc/100.0)*rosD

	case fuel.BehaviorGrass:
		ros := spec.A * math.Pow(1.0-math.Exp(-spec.B*isi), spec.C)
		return ros * grassCuringFactor(grassCure)

	default: // BehaviorStandard, BehaviorSlash
		ros := spec.A * math.Pow(1.0-math.Exp(-spec.B*isi), spec.C)
		if spec.Group == fuel.Conifer || spec.Group == fuel.Slash || spec.Group == fuel.Mixedwood {
			ros *= buiEffect(bui, spec.Q, spec.BUI0)
		}
		return ros
	}
}

// buiEffect computes BE = exp(50*ln(q)*(1/bui - 1/bui0)), disabled (returns
// 1) when bui<=0 or q>=1.
func buiEffect(bui, q, bui0 float64) float64 {
	if bui <= 0.0 || q >= 1.0 {
		return 1.0
	}
	return math.Exp(50.0 * math.Log(q) * (1.0/bui - 1.0/bui0))
}

// grassCuringFactor computes the O1a/O1b curing multiplier, clamped [0,1].
func grassCuringFactor(grassCure float64) float64 {
	pc := grassCure
	var cf float64
	if pc < 58.8 {
		cf = 0.176 + 0.020*(pc-58.8)
	} else {
		delta := pc - 58.8
		cf = 0.176 + 0.020*delta*(1.0-0.008*delta)
	}
	return math.Max(0.0, math.Min(1.0, cf))
}

// slopeFactor is the non-directional slope factor used directly by
// Calculate (§4.3 step 3); the spread engine instead applies
// spread.DirectionalSlopeFactor per ray.
func slopeFactor(slopePercent float64) float64 {
	sf := math.Exp(3.533 * math.Pow(slopePercent/100.0, 1.2))
	return math.Min(sf, 2.0)
}

// criticalSurfaceIntensity is Van Wagner (1977)'s I_0, zero when cbh<=0.
func criticalSurfaceIntensity(cbh, fmc float64) float64 {
	if cbh <= 0.0 {
		return 0.0
	}
	return math.Pow(0.010*cbh*(460.0+25.9*fmc), 1.5)
}

// crownFractionBurned is CFB, clamped to [0,1].
func crownFractionBurned(sfi, csi float64) float64 {
	if csi <= 0.0 || sfi < csi {
		return 0.0
	}
	cfb := 1.0 - math.Sqrt(csi/sfi)
	return math.Max(0.0, math.Min(1.0, cfb))
}

// classifyFireType applies the CFB threshold classification of §4.3 step 8.
func classifyFireType(cfb float64) FireType {
	switch {
	case cfb >= 0.9:
		return ActiveCrown
	case cfb > 0.1:
		return PassiveCrown
	case cfb > 0.0:
		return SurfaceWithTorching
	default:
		return Surface
	}
}

// crownROS enhances surface ROS by the crown bulk density factor; only the
// path used by Calculate is kept (spec.md §9's Open Question: the source
// system's standalone crown-fire helper had a dead placeholder path, which
// is not reproduced here).
func crownROS(surfaceROS float64, spec *fuel.Spec) float64 {
	const cbdCritical = 0.05
	if spec.CBD < cbdCritical {
		return surfaceROS
	}
	factor := math.Min(1.0+(spec.CBD-cbdCritical)/0.1, 3.0)
	return surfaceROS * factor
}

// flameLength is Byram (1959)'s L = 0.0775 * hfi^0.46, zero when hfi<=0.
func flameLength(hfi float64) float64 {
	if hfi <= 0.0 {
		return 0.0
	}
	return 0.0775 * math.Pow(hfi, 0.46)
}
