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

// Package fuel is the single source of truth for the 18 Canadian FBP System
// fuel type parameter records (ST-X-3 Tables 4-6).
package fuel

import "fmt"

// Code is one of the 18 standard Canadian FBP fuel type codes.
type Code string

// The closed enumeration of FBP fuel type codes.
const (
	C1  Code = "C1"
	C2  Code = "C2"
	C3  Code = "C3"
	C4  Code = "C4"
	C5  Code = "C5"
	C6  Code = "C6"
	C7  Code = "C7"
	D1  Code = "D1"
	D2  Code = "D2"
	M1  Code = "M1"
	M2  Code = "M2"
	M3  Code = "M3"
	M4  Code = "M4"
	O1a Code = "O1a"
	O1b Code = "O1b"
	S1  Code = "S1"
	S2  Code = "S2"
	S3  Code = "S3"
)

// Group is the coarse fuel category. The FBP engine uses it to decide
// whether the BUI effect applies; grass curing and mixedwood blending are
// selected by Behavior.
type Group string

const (
	Conifer   Group = "conifer"
	Deciduous Group = "deciduous"
	Mixedwood Group = "mixedwood"
	Grass     Group = "grass"
	Slash     Group = "slash"
)

// Behavior tags the ROS calculation path a fuel type needs. This replaces
// the source system's a=b=c=0 sentinel for mixedwood types with a
// structural variant, per the Open Question in spec.md §9.
type Behavior int

const (
	// BehaviorStandard fuels use ros = a*(1-exp(-b*isi))^c directly.
	BehaviorStandard Behavior = iota
	// BehaviorMixedwood fuels (M1/M2) blend a C2 and a D1 calculation
	// weighted by percent conifer; a/b/c on the record itself are unused.
	BehaviorMixedwood
	// BehaviorGrass fuels additionally apply a curing-percent factor.
	BehaviorGrass
	// BehaviorSlash fuels are standard ROS fuels that also take the BUI
	// effect, called out separately because ST-X-3 groups them apart from
	// conifer for documentation purposes even though the math is identical.
	BehaviorSlash
)

// Spec is the immutable parameter record for one fuel type.
type Spec struct {
	Code     Code
	Name     string
	Group    Group
	Behavior Behavior

	// ROS equation parameters. Zero for BehaviorMixedwood fuels (M1/M2),
	// whose ROS is derived from the C2 and D1 records instead.
	A, B, C float64

	// BUI effect parameters.
	Q, BUI0 float64

	CBH float64 // crown base height, m
	CFL float64 // crown fuel load, kg/m2
	SFC float64 // surface fuel consumption, kg/m2
	CBD float64 // crown bulk density, kg/m3
}

// ErrUnknownFuelType is returned by Lookup for any code outside the closed
// 18-member enumeration.
type ErrUnknownFuelType struct {
	Code string
}

func (e *ErrUnknownFuelType) Error() string {
	return fmt.Sprintf("unknown fuel type: %q", e.Code)
}

// catalog is the process-wide immutable table, the single source of truth
// for fuel parameters. Nothing outside this file may define fuel
// parameters.
var catalog = map[Code]*Spec{
	C1: {Code: C1, Name: "Spruce-Lichen Woodland", Group: Conifer, Behavior: BehaviorStandard,
		A: 90, B: 0.0649, C: 4.5, Q: 0.90, BUI0: 72, CBH: 2.0, CFL: 0.75, SFC: 0.75, CBD: 0.11},
	C2: {Code: C2, Name: "Boreal Spruce", Group: Conifer, Behavior: BehaviorStandard,
		A: 110, B: 0.0282, C: 1.5, Q: 0.70, BUI0: 64, CBH: 3.0, CFL: 0.80, SFC: 0.80, CBD: 0.18},
	C3: {Code: C3, Name: "Mature Jack or Lodgepole Pine", Group: Conifer, Behavior: BehaviorStandard,
		A: 110, B: 0.0444, C: 3.0, Q: 0.75, BUI0: 62, CBH: 8.0, CFL: 1.15, SFC: 1.15, CBD: 0.09},
	C4: {Code: C4, Name: "Immature Jack or Lodgepole Pine", Group: Conifer, Behavior: BehaviorStandard,
		A: 110, B: 0.0293, C: 1.5, Q: 0.75, BUI0: 66, CBH: 4.0, CFL: 1.20, SFC: 1.20, CBD: 0.13},
	C5: {Code: C5, Name: "Red and White Pine", Group: Conifer, Behavior: BehaviorStandard,
		A: 30, B: 0.0697, C: 4.0, Q: 0.80, BUI0: 56, CBH: 18.0, CFL: 1.20, SFC: 1.20, CBD: 0.14},
	C6: {Code: C6, Name: "Conifer Plantation", Group: Conifer, Behavior: BehaviorStandard,
		A: 30, B: 0.0800, C: 3.0, Q: 0.80, BUI0: 62, CBH: 7.0, CFL: 1.80, SFC: 1.80, CBD: 0.17},
	C7: {Code: C7, Name: "Ponderosa Pine/Douglas-fir", Group: Conifer, Behavior: BehaviorStandard,
		A: 45, B: 0.0305, C: 2.0, Q: 0.85, BUI0: 106, CBH: 10.0, CFL: 0.50, SFC: 0.50, CBD: 0.07},
	D1: {Code: D1, Name: "Leafless Aspen", Group: Deciduous, Behavior: BehaviorStandard,
		A: 30, B: 0.0232, C: 1.6, Q: 0.90, BUI0: 32, CBH: 0, CFL: 0, SFC: 0.35, CBD: 0},
	D2: {Code: D2, Name: "Green Aspen", Group: Deciduous, Behavior: BehaviorStandard,
		A: 6, B: 0.0232, C: 1.6, Q: 0.90, BUI0: 32, CBH: 0, CFL: 0, SFC: 0.35, CBD: 0},
	M1: {Code: M1, Name: "Boreal Mixedwood - Leafless", Group: Mixedwood, Behavior: BehaviorMixedwood,
		A: 0, B: 0, C: 0, Q: 0.80, BUI0: 50, CBH: 6.0, CFL: 0.80, SFC: 0.60, CBD: 0.10},
	M2: {Code: M2, Name: "Boreal Mixedwood - Green", Group: Mixedwood, Behavior: BehaviorMixedwood,
		A: 0, B: 0, C: 0, Q: 0.80, BUI0: 50, CBH: 6.0, CFL: 0.80, SFC: 0.60, CBD: 0.10},
	M3: {Code: M3, Name: "Dead Balsam Fir Mixedwood - Leafless", Group: Mixedwood, Behavior: BehaviorStandard,
		A: 120, B: 0.0572, C: 1.4, Q: 0.80, BUI0: 50, CBH: 6.0, CFL: 0.80, SFC: 0.80, CBD: 0.10},
	M4: {Code: M4, Name: "Dead Balsam Fir Mixedwood - Green", Group: Mixedwood, Behavior: BehaviorStandard,
		A: 100, B: 0.0404, C: 3.0, Q: 0.80, BUI0: 50, CBH: 6.0, CFL: 0.80, SFC: 0.80, CBD: 0.10},
	O1a: {Code: O1a, Name: "Matted Grass", Group: Grass, Behavior: BehaviorGrass,
		A: 190, B: 0.0310, C: 1.4, Q: 1.0, BUI0: 1, CBH: 0, CFL: 0, SFC: 0.35, CBD: 0},
	O1b: {Code: O1b, Name: "Standing Grass", Group: Grass, Behavior: BehaviorGrass,
		A: 250, B: 0.0350, C: 1.7, Q: 1.0, BUI0: 1, CBH: 0, CFL: 0, SFC: 0.35, CBD: 0},
	S1: {Code: S1, Name: "Jack or Lodgepole Pine Slash", Group: Slash, Behavior: BehaviorSlash,
		A: 75, B: 0.0297, C: 1.3, Q: 0.75, BUI0: 38, CBH: 0, CFL: 0, SFC: 4.5, CBD: 0},
	S2: {Code: S2, Name: "White Spruce/Balsam Slash", Group: Slash, Behavior: BehaviorSlash,
		A: 40, B: 0.0438, C: 1.7, Q: 0.75, BUI0: 63, CBH: 0, CFL: 0, SFC: 4.5, CBD: 0},
	S3: {Code: S3, Name: "Coastal Cedar/Hemlock/Douglas-fir Slash", Group: Slash, Behavior: BehaviorSlash,
		A: 55, B: 0.0829, C: 3.2, Q: 0.75, BUI0: 31, CBH: 0, CFL: 0, SFC: 4.5, CBD: 0},
}

// Lookup returns the Spec for code, or ErrUnknownFuelType if code is not one
// of the 18 standard fuel types.
func Lookup(code Code) (*Spec, error) {
	spec, ok := catalog[code]
	if !ok {
		return nil, &ErrUnknownFuelType{Code: string(code)}
	}
	return spec, nil
}

// LookupString is Lookup for a raw string, as received from configuration
// or a spatial grid file.
func LookupString(code string) (*Spec, error) {
	return Lookup(Code(code))
}

// All returns every fuel Spec in the catalog, in a stable order matching
// the ST-X-3 table layout.
func All() []*Spec {
	order := []Code{C1, C2, C3, C4, C5, C6, C7, D1, D2, M1, M2, M3, M4, O1a, O1b, S1, S2, S3}
	specs := make([]*Spec, len(order))
	for i, c := range order {
		specs[i] = catalog[c]
	}
	return specs
}
