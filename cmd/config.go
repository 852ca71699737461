package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/checkout-sim/sim"
)

// resolveSimConfig builds the run configuration: defaults, then the --config
// file if given, then only the flags the user actually set. Flag defaults
// never overwrite values from the file.
func resolveSimConfig(cmd *cobra.Command) (sim.SimConfig, error) {
	cfg := sim.DefaultSimConfig()
	if configPath != "" {
		loaded, err := sim.LoadSimConfig(configPath)
		if err != nil {
			return sim.SimConfig{}, err
		}
		cfg = *loaded
		logrus.Infof("Loaded sim config from %s", configPath)
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("customers") {
		cfg.Generator.Customers = customers
	}
	if f.Changed("express-bias") {
		cfg.Generator.ExpressBias = expressBias
	}
	if f.Changed("express-ratio") {
		cfg.Generator.ExpressRatio = expressRatio
	}
	if f.Changed("service-multiplier") {
		cfg.Generator.ServiceMultiplier = serviceMultiplier
	}
	if f.Changed("lanes") {
		cfg.Lanes.Count = laneCount
	}
	if f.Changed("express-position") {
		cfg.Lanes.ExpressPosition = expressPosition
	}
	if f.Changed("policy") {
		cfg.Lanes.AssignmentPolicy = assignmentPolicy
	}

	if err := cfg.Validate(); err != nil {
		return sim.SimConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
