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

package firesimutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/firesim"
)

// Cfg holds configuration information, grounded on inmaputil/cmd.go's Cfg
// wrapper around *viper.Viper plus its cobra command tree.
type Cfg struct {
	*viper.Viper

	Root, runCmd, renderCmd *cobra.Command
	Log                     *logrus.Logger
}

var options = []struct {
	name, usage    string
	defaultVal     interface{}
	flagsets       []*pflag.FlagSet
}{
	{name: "IgnitionLat", usage: "IgnitionLat is the fire's ignition latitude, in decimal degrees.", defaultVal: 0.0},
	{name: "IgnitionLng", usage: "IgnitionLng is the fire's ignition longitude, in decimal degrees.", defaultVal: 0.0},
	{name: "Temperature", usage: "Temperature is the noon observation temperature, in degrees C.", defaultVal: 20.0},
	{name: "RelativeHumidity", usage: "RelativeHumidity is the noon observation relative humidity, in percent.", defaultVal: 40.0},
	{name: "WindSpeed", usage: "WindSpeed is the 10-m open wind speed, in km/h.", defaultVal: 20.0},
	{name: "WindDirection", usage: "WindDirection is the meteorological wind direction (degrees, FROM convention).", defaultVal: 270.0},
	{name: "Precipitation24h", usage: "Precipitation24h is the 24-hour accumulated precipitation, in mm.", defaultVal: 0.0},
	{name: "FFMC", usage: "FFMC is the Fine Fuel Moisture Code.", defaultVal: 85.0},
	{name: "DMC", usage: "DMC is the Duff Moisture Code.", defaultVal: 40.0},
	{name: "DC", usage: "DC is the Drought Code.", defaultVal: 200.0},
	{name: "DurationHours", usage: "DurationHours is the total simulated duration, in (0, 24] hours.", defaultVal: 2.0},
	{name: "SnapshotIntervalMinutes", usage: "SnapshotIntervalMinutes is the frame emission interval, in (0, 120] minutes.", defaultVal: 30.0},
	{name: "PC", usage: "PC is percent conifer, for M1/M2 fuel types.", defaultVal: 50.0},
	{name: "GrassCure", usage: "GrassCure is percent curing, for O1a/O1b fuel types.", defaultVal: 60.0},
	{name: "DefaultFuel", usage: "DefaultFuel is the fuel type used where no fuel grid is supplied.", defaultVal: "C2"},
	{name: "DtMinutes", usage: "DtMinutes is the internal expansion timestep, in minutes.", defaultVal: 5.0},
	{name: "NumRays", usage: "NumRays is the number of directional samples per Huygens wavelet.", defaultVal: 36},
	{name: "OutputDir", usage: "OutputDir is the directory rendered PNG frames are written to.", defaultVal: "."},
}

// InitializeConfig builds the firesim CLI's command tree and binds its
// configuration flags, the way inmaputil.InitializeConfig does for InMAP.
func InitializeConfig() *Cfg {
	cfg := &Cfg{
		Viper: viper.New(),
		Log:   logrus.New(),
	}

	cfg.Root = &cobra.Command{
		Use:   "firesim",
		Short: "A Huygens-wavelet wildland fire spread simulator.",
		Long: `firesim runs a Canadian FWI/FBP-based wildland fire spread
simulation and reports perimeter, area, and fire behavior metrics at each
snapshot interval.`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setConfig(cfg)
		},
	}

	cfg.runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and print frame summaries.",
		Long:  `run executes the configured simulation, logging one line per frame.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunCommand(cfg)
		},
		DisableAutoGenTag: true,
	}

	cfg.renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Run a simulation and render each frame as a PNG.",
		Long:  `render executes the configured simulation and writes one PNG per frame to OutputDir.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RenderCommand(cfg)
		},
		DisableAutoGenTag: true,
	}

	cfg.Root.AddCommand(cfg.runCmd, cfg.renderCmd)

	cfg.Root.PersistentFlags().String("config", "", "config specifies the configuration file location.")
	cfg.BindPFlag("config", cfg.Root.PersistentFlags().Lookup("config"))

	for _, opt := range options {
		registerFlag(cfg, cfg.runCmd.Flags(), opt.name, opt.usage, opt.defaultVal)
		cfg.renderCmd.Flags().AddFlag(cfg.runCmd.Flags().Lookup(opt.name))
	}

	cfg.SetEnvPrefix("FIRESIM")
	return cfg
}

func registerFlag(cfg *Cfg, set *pflag.FlagSet, name, usage string, defaultVal interface{}) {
	switch v := defaultVal.(type) {
	case string:
		set.String(name, v, usage)
	case float64:
		set.Float64(name, v, usage)
	case int:
		set.Int(name, v, usage)
	case bool:
		set.Bool(name, v, usage)
	default:
		panic(fmt.Errorf("firesimutil: invalid option default type: %T", defaultVal))
	}
	cfg.BindPFlag(name, set.Lookup(name))
}

// RunCommand builds a SimulationConfig from cfg, runs the simulation, and
// logs one line per frame at info level.
func RunCommand(cfg *Cfg) error {
	simCfg, err := BuildSimulationConfig(cfg)
	if err != nil {
		return err
	}

	sim := firesim.NewSimulator(simCfg)
	sim.ProgressWriter = cfg.Log.WriterLevel(logrus.DebugLevel)

	frames, err := sim.Run()
	if err != nil {
		return err
	}

	for _, f := range frames {
		cfg.Log.WithFields(logrus.Fields{
			"time_hours": f.TimeHours,
			"area_ha":    f.AreaHectares,
			"fire_type":  f.FireType,
			"head_ros":   f.HeadROS,
		}).Info("frame")
	}
	return nil
}

// RenderCommand runs the simulation and writes one PNG per frame into
// OutputDir.
func RenderCommand(cfg *Cfg) error {
	simCfg, err := BuildSimulationConfig(cfg)
	if err != nil {
		return err
	}

	sim := firesim.NewSimulator(simCfg)
	frames, err := sim.Run()
	if err != nil {
		return err
	}

	outDir := cfg.GetString("OutputDir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("firesimutil: creating output directory: %w", err)
	}
	return RenderFrames(frames, outDir)
}
