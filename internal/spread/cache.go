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
	"context"
	"runtime"

	"github.com/ctessum/requestcache"

	"github.com/spatialmodel/firesim/internal/fbp"
	"github.com/spatialmodel/firesim/internal/fuel"
	"github.com/spatialmodel/firesim/internal/hash"
)

// FBPCache memoizes fbp.Calculate calls keyed by the rounded
// (fuel, wind, ffmc, dmc, dc, pc, grass_cure) tuple. A single expansion tick
// issues one FBP evaluation per front vertex, and homogeneous-fuel
// regions repeat the same input tuple heavily, so caching the non-slope FBP
// result (slope is applied directionally per ray, not inside Calculate)
// pays for itself within a single tick.
type FBPCache struct {
	cache *requestcache.Cache
}

// NewFBPCache constructs an FBPCache with a bounded in-memory size. concurrency
// controls how many fbp.Calculate evaluations run at once for distinct keys.
func NewFBPCache(concurrency, memorySize int) *FBPCache {
	return &FBPCache{
		cache: requestcache.NewCache(fbpWorker, concurrency,
			requestcache.Deduplicate(), requestcache.Memory(memorySize)),
	}
}

// NewDefaultFBPCache constructs an FBPCache sized for one simulation run,
// using GOMAXPROCS for concurrency the way sr.Reader sizes its source cache.
func NewDefaultFBPCache() *FBPCache {
	return NewFBPCache(runtime.GOMAXPROCS(-1), 10000)
}

type fbpRequest struct {
	fuelType                fuel.Code
	windSpeed, ffmc, dmc, dc float64
	pc, grassCure            float64
}

func fbpWorker(_ context.Context, request interface{}) (interface{}, error) {
	r := request.(fbpRequest)
	return fbp.Calculate(r.fuelType, r.windSpeed, r.ffmc, r.dmc, r.dc, fbp.Options{
		Slope:     0, // slope is applied directionally per ray by ExpandVertex
		PC:        r.pc,
		GrassCure: r.grassCure,
		FMC:       100,
	})
}

// Calculate returns the (possibly cached) FBP result for the given inputs.
func (c *FBPCache) Calculate(fuelType fuel.Code, windSpeed, ffmc, dmc, dc, pc, grassCure float64) (fbp.Result, error) {
	req := fbpRequest{
		fuelType:  fuelType,
		windSpeed: round(windSpeed, 2),
		ffmc:      round(ffmc, 2),
		dmc:       round(dmc, 2),
		dc:        round(dc, 2),
		pc:        round(pc, 1),
		grassCure: round(grassCure, 1),
	}
	key := hash.Hash(req)

	r := c.cache.NewRequest(context.Background(), req, key)
	result, err := r.Result()
	if err != nil {
		return fbp.Result{}, err
	}
	return result.(fbp.Result), nil
}

func round(v float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}
