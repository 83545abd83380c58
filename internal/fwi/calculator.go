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

// Package fwi implements the Canadian Fire Weather Index System: a daily
// accumulator of fine fuel, duff, and drought moisture from noon weather
// observations (Van Wagner & Pickett 1985, Forestry Canada 1992).
package fwi

import (
	"fmt"
	"math"
)

// Spring startup defaults for FFMC, DMC, and DC.
const (
	DefaultFFMC = 85.0
	DefaultDMC  = 6.0
	DefaultDC   = 15.0
)

// dmcDayLength holds day-length factors for DMC calculation by month,
// indexed 1-12 (index 0 unused), for ~46N latitude.
var dmcDayLength = [13]float64{0,
	6.5, 7.5, 9.0, 12.8, 13.9, 13.9, 12.4, 10.9, 9.4, 8.0, 7.0, 6.0,
}

// dcDayLength holds day-length factors for DC calculation by month,
// indexed 1-12 (index 0 unused).
var dcDayLength = [13]float64{0,
	-1.6, -1.6, -1.6, 0.9, 3.8, 5.8, 6.4, 5.0, 2.4, 0.4, -1.6, -1.6,
}

// ErrMonthOutOfRange is returned by CalculateDaily when month is not in [1,12].
type ErrMonthOutOfRange struct {
	Month int
}

func (e *ErrMonthOutOfRange) Error() string {
	return fmt.Sprintf("month out of range: %d", e.Month)
}

// Result is the full six-component output of one day's FWI calculation.
type Result struct {
	FFMC, DMC, DC, ISI, BUI, FWI float64
}

// Calculator is a stateful daily FWI accumulator. It holds exactly three
// scalars (previous-day FFMC, DMC, DC) that are mutated once per call to
// CalculateDaily and otherwise immutable. A Calculator must not be shared
// across concurrent callers — each independent weather sequence owns one.
type Calculator struct {
	ffmcPrev, dmcPrev, dcPrev float64
}

// NewCalculator constructs a Calculator with the spring startup defaults
// (85.0, 6.0, 15.0).
func NewCalculator() *Calculator {
	return &Calculator{ffmcPrev: DefaultFFMC, dmcPrev: DefaultDMC, dcPrev: DefaultDC}
}

// NewCalculatorWithState constructs a Calculator starting from the given
// previous-day values, for resuming a sequence or overriding startup.
func NewCalculatorWithState(ffmcPrev, dmcPrev, dcPrev float64) *Calculator {
	return &Calculator{ffmcPrev: ffmcPrev, dmcPrev: dmcPrev, dcPrev: dcPrev}
}

// Reset sets the previous-day state to the given values;
// Reset(DefaultFFMC, DefaultDMC, DefaultDC) restores the spring startup state.
func (c *Calculator) Reset(ffmc, dmc, dc float64) {
	c.ffmcPrev, c.dmcPrev, c.dcPrev = ffmc, dmc, dc
}

// State returns the calculator's current (ffmc_prev, dmc_prev, dc_prev).
func (c *Calculator) State() (ffmc, dmc, dc float64) {
	return c.ffmcPrev, c.dmcPrev, c.dcPrev
}

// CalculateDaily computes all six FWI components for one day of noon
// weather and advances the calculator's internal state for the next call.
//
//   - temp: noon temperature, Celsius
//   - rh: noon relative humidity, percent
//   - wind: noon wind speed at 10m, km/h
//   - rain: 24-hour rainfall, mm
//   - month: 1-12
func (c *Calculator) CalculateDaily(temp, rh, wind, rain float64, month int) (Result, error) {
	if month < 1 || month > 12 {
		return Result{}, &ErrMonthOutOfRange{Month: month}
	}

	ffmc := calculateFFMC(temp, rh, wind, rain, c.ffmcPrev)
	dmc := calculateDMC(temp, rh, rain, month, c.dmcPrev)
	dc := calculateDC(temp, rain, month, c.dcPrev)
	isi := CalculateISI(ffmc, wind)
	bui := CalculateBUI(dmc, dc)
	fwiVal := CalculateFWI(isi, bui)

	c.ffmcPrev, c.dmcPrev, c.dcPrev = ffmc, dmc, dc

	return Result{FFMC: ffmc, DMC: dmc, DC: dc, ISI: isi, BUI: bui, FWI: fwiVal}, nil
}

// calculateFFMC computes the Fine Fuel Moisture Code (time lag ~2/3 day).
func calculateFFMC(temp, rh, wind, rain, ffmcPrev float64) float64 {
	mo := 147.2 * (101.0 - ffmcPrev) / (59.5 + ffmcPrev)

	if rain > 0.5 {
		rf := rain - 0.5
		var mr float64
		if mo <= 150.0 {
			mr = mo + 42.5*rf*math.Exp(-100.0/(251.0-mo))*(1.0-math.Exp(-6.93/rf))
		} else {
			mr = mo + 42.5*rf*math.Exp(-100.0/(251.0-mo))*(1.0-math.Exp(-6.93/rf)) +
				0.0015*(mo-150.0)*(mo-150.0)*math.Sqrt(rf)
		}
		mo = math.Min(mr, 250.0)
	}

	ed := 0.942*math.Pow(rh, 0.679) + 11.0*math.Exp((rh-100.0)/10.0) +
		0.18*(21.1-temp)*(1.0-1.0/math.Exp(0.115*rh))

	var m float64
	if mo > ed {
		ko := 0.424*(1.0-math.Pow(rh/100.0, 1.7)) + 0.0694*math.Sqrt(wind)*(1.0-math.Pow(rh/100.0, 8))
		kd := ko * 0.581 * math.Exp(0.0365*temp)
		m = ed + (mo-ed)*math.Pow(10.0, -kd)
	} else {
		ew := 0.618*math.Pow(rh, 0.753) + 10.0*math.Exp((rh-100.0)/10.0) +
			0.18*(21.1-temp)*(1.0-1.0/math.Exp(0.115*rh))
		if mo < ew {
			kl := 0.424*(1.0-math.Pow((100.0-rh)/100.0, 1.7)) + 0.0694*math.Sqrt(wind)*(1.0-math.Pow((100.0-rh)/100.0, 8))
			kw := kl * 0.581 * math.Exp(0.0365*temp)
			m = ew - (ew-mo)*math.Pow(10.0, -kw)
		} else {
			m = mo
		}
	}

	ffmc := 59.5 * (250.0 - m) / (147.2 + m)
	return math.Max(0.0, math.Min(101.0, ffmc))
}

// calculateDMC computes the Duff Moisture Code (time lag ~15 days).
func calculateDMC(temp, rh, rain float64, month int, dmcPrev float64) float64 {
	if rain > 1.5 {
		re := 0.92*rain - 1.27
		mo := 20.0 + math.Exp(5.6348-dmcPrev/43.43)

		var b float64
		switch {
		case dmcPrev <= 33.0:
			b = 100.0 / (0.5 + 0.3*dmcPrev)
		case dmcPrev <= 65.0:
			b = 14.0 - 1.3*math.Log(dmcPrev)
		default:
			b = 6.2*math.Log(dmcPrev) - 17.2
		}

		mr := mo + 1000.0*re/(48.77+b*re)
		pr := 244.72 - 43.43*math.Log(mr-20.0)
		dmcPrev = math.Max(0.0, pr)
	}

	dl := dmcDayLength[month]

	var dmc float64
	if temp > -1.1 {
		k := 1.894 * (temp + 1.1) * (100.0 - rh) * dl * 1e-4
		dmc = dmcPrev + 100.0*k
	} else {
		dmc = dmcPrev
	}
	return math.Max(0.0, dmc)
}

// calculateDC computes the Drought Code (time lag ~52 days).
func calculateDC(temp, rain float64, month int, dcPrev float64) float64 {
	if rain > 2.8 {
		rd := 0.83*rain - 1.27
		qo := 800.0 * math.Exp(-dcPrev/400.0)
		qr := qo + 3.937*rd
		dr := 400.0 * math.Log(800.0/qr)
		dcPrev = math.Max(0.0, dr)
	}

	lf := dcDayLength[month]

	var dc float64
	if temp > -2.8 {
		v := math.Max(0.0, 0.36*(temp+2.8)+lf)
		dc = dcPrev + 0.5*v
	} else {
		dc = dcPrev
	}
	return math.Max(0.0, dc)
}

// CalculateISI computes the Initial Spread Index from FFMC and wind speed.
func CalculateISI(ffmc, wind float64) float64 {
	m := 147.2 * (101.0 - ffmc) / (59.5 + ffmc)
	ff := 91.9 * math.Exp(-0.1386*m) * (1.0 + math.Pow(m, 5.31)/4.93e7)
	fw := math.Exp(0.05039 * wind)
	return 0.208 * fw * ff
}

// CalculateBUI computes the Buildup Index from DMC and DC.
func CalculateBUI(dmc, dc float64) float64 {
	if dmc == 0.0 && dc == 0.0 {
		return 0.0
	}
	var bui float64
	if dmc <= 0.4*dc {
		bui = 0.8 * dmc * dc / (dmc + 0.4*dc)
	} else {
		bui = dmc - (1.0-0.8*dc/(dmc+0.4*dc))*(0.92+math.Pow(0.0114*dmc, 1.7))
	}
	return math.Max(0.0, bui)
}

// CalculateFWI computes the overall Fire Weather Index from ISI and BUI.
func CalculateFWI(isi, bui float64) float64 {
	var fd float64
	if bui <= 80.0 {
		fd = 0.626*math.Pow(bui, 0.809) + 2.0
	} else {
		fd = 1000.0 / (25.0 + 108.64*math.Exp(-0.023*bui))
	}
	b := 0.1 * isi * fd
	if b <= 1.0 {
		return b
	}
	return math.Exp(2.72 * math.Pow(0.434*math.Log(b), 0.647))
}
