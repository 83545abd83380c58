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

// Package firesimutil is the CLI ambient stack around the firesim core:
// configuration loading (viper/pflag/cobra), validation of the bounds
// spec.md §7 assigns to the external collaborator, structured logging
// (logrus), and a PNG frame renderer.
package firesimutil

import (
	"fmt"

	"github.com/spatialmodel/firesim"
	"github.com/spatialmodel/firesim/internal/fuel"
)

// ValidateConfig checks the configuration bound violations spec.md §7
// assigns to the external collaborator: duration_hours ∈ (0,24],
// snapshot_interval_minutes ∈ (0,120], and ignition lat/lng within
// geographic range. It never mutates cfg.
func ValidateConfig(cfg *Cfg) error {
	durationHours := cfg.GetFloat64("DurationHours")
	if durationHours <= 0 || durationHours > 24 {
		return fmt.Errorf("firesimutil: DurationHours %v out of range (0, 24]", durationHours)
	}

	interval := cfg.GetFloat64("SnapshotIntervalMinutes")
	if interval <= 0 || interval > 120 {
		return fmt.Errorf("firesimutil: SnapshotIntervalMinutes %v out of range (0, 120]", interval)
	}

	lat := cfg.GetFloat64("IgnitionLat")
	if lat < -90 || lat > 90 {
		return fmt.Errorf("firesimutil: IgnitionLat %v out of range [-90, 90]", lat)
	}
	lng := cfg.GetFloat64("IgnitionLng")
	if lng < -180 || lng > 180 {
		return fmt.Errorf("firesimutil: IgnitionLng %v out of range [-180, 180]", lng)
	}

	if code := fuel.Code(cfg.GetString("DefaultFuel")); code != "" {
		if _, err := fuel.Lookup(code); err != nil {
			return fmt.Errorf("firesimutil: %w", err)
		}
	}

	return nil
}

// BuildSimulationConfig validates cfg and translates it into a core
// firesim.SimulationConfig. Grid loading (FuelGrid/TerrainGrid) is left to
// the caller, matching spec.md §6's "produced by external raster loaders."
func BuildSimulationConfig(cfg *Cfg) (firesim.SimulationConfig, error) {
	if err := ValidateConfig(cfg); err != nil {
		return firesim.SimulationConfig{}, err
	}

	ffmc := cfg.GetFloat64("FFMC")
	dmc := cfg.GetFloat64("DMC")
	dc := cfg.GetFloat64("DC")

	return firesim.SimulationConfig{
		IgnitionLat: cfg.GetFloat64("IgnitionLat"),
		IgnitionLng: cfg.GetFloat64("IgnitionLng"),
		Weather: firesim.Weather{
			Temperature:      cfg.GetFloat64("Temperature"),
			RelativeHumidity: cfg.GetFloat64("RelativeHumidity"),
			WindSpeed:        cfg.GetFloat64("WindSpeed"),
			WindDirection:    cfg.GetFloat64("WindDirection"),
			Precipitation24h: cfg.GetFloat64("Precipitation24h"),
		},
		FFMC:                    &ffmc,
		DMC:                     &dmc,
		DC:                      &dc,
		DurationHours:           cfg.GetFloat64("DurationHours"),
		SnapshotIntervalMinutes: cfg.GetFloat64("SnapshotIntervalMinutes"),
		PC:                      cfg.GetFloat64("PC"),
		GrassCure:               cfg.GetFloat64("GrassCure"),
		DefaultFuel:             fuel.Code(cfg.GetString("DefaultFuel")),
		DtMinutes:               cfg.GetFloat64("DtMinutes"),
		NumRays:                 cfg.GetInt("NumRays"),
	}, nil
}

// setConfig reads the configuration file named by the "config" flag, if any,
// mirroring inmaputil/cmd.go's setConfig.
func setConfig(cfg *Cfg) error {
	if cfgpath := cfg.GetString("config"); cfgpath != "" {
		cfg.SetConfigFile(cfgpath)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("firesimutil: reading configuration file: %w", err)
		}
	}
	return nil
}
