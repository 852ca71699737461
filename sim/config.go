package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultExpressBiasRatio is the probability that an express-biased customer
// draws a small basket (1-10 items) instead of a large one (11-50).
// Earlier variants of the model used 0.3; tune via GeneratorConfig.ExpressRatio.
const DefaultExpressBiasRatio = 0.5

// Lane count bounds accepted by SimConfig.Validate.
const (
	MinLanes = 3
	MaxLanes = 8
)

// GeneratorConfig groups synthetic workload parameters.
type GeneratorConfig struct {
	Customers         int     `yaml:"customers"`          // number of customers generated up front
	ExpressBias       bool    `yaml:"express_bias"`       // split baskets into small/large instead of uniform 1-50
	ExpressRatio      float64 `yaml:"express_ratio"`      // probability of a small basket when ExpressBias is set
	ServiceMultiplier float64 `yaml:"service_multiplier"` // scales every cashier's scan and checkout time
}

// LaneConfig groups lane layout and assignment parameters.
type LaneConfig struct {
	Count            int    `yaml:"count"`             // lanes open, one cashier each
	ExpressPosition  string `yaml:"express_position"`  // "first", "middle", "last" or "random"
	AssignmentPolicy string `yaml:"assignment_policy"` // "eligibility-filtered" (default) or "unrestricted-random"
}

// SimConfig is the full configuration of one simulation pass, loadable from YAML.
type SimConfig struct {
	Seed      int64           `yaml:"seed"`
	Generator GeneratorConfig `yaml:"generator"`
	Lanes     LaneConfig      `yaml:"lanes"`
	Cost      CostParams      `yaml:"cost"`
}

// DefaultSimConfig returns the reference store: five lanes with the express
// lane last, 25 customers, express-biased baskets, default pricing.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Seed: 42,
		Generator: GeneratorConfig{
			Customers:         25,
			ExpressBias:       true,
			ExpressRatio:      DefaultExpressBiasRatio,
			ServiceMultiplier: 1.0,
		},
		Lanes: LaneConfig{
			Count:            5,
			ExpressPosition:  "last",
			AssignmentPolicy: "eligibility-filtered",
		},
		Cost: DefaultCostParams(),
	}
}

// LoadSimConfig reads a YAML configuration file on top of DefaultSimConfig.
// Keys absent from the file keep their default; unknown keys are rejected.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim config: %w", err)
	}
	cfg := DefaultSimConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty or comment-only file decodes to io.EOF and keeps every default.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing sim config: %w", err)
	}
	return &cfg, nil
}

// ValidExpressPositions is the set of recognized express lane placements.
var ValidExpressPositions = map[string]bool{"first": true, "middle": true, "last": true, "random": true}

// Validate checks names and parameter ranges.
func (c *SimConfig) Validate() error {
	g := c.Generator
	if g.Customers < 0 {
		return fmt.Errorf("generator.customers must be non-negative, got %d", g.Customers)
	}
	if err := validateFinitePositive("generator.service_multiplier", g.ServiceMultiplier); err != nil {
		return err
	}
	if math.IsNaN(g.ExpressRatio) || g.ExpressRatio < 0 || g.ExpressRatio > 1 {
		return fmt.Errorf("generator.express_ratio must be in [0, 1], got %f", g.ExpressRatio)
	}

	l := c.Lanes
	if l.Count < MinLanes || l.Count > MaxLanes {
		return fmt.Errorf("lanes.count must be in [%d, %d], got %d", MinLanes, MaxLanes, l.Count)
	}
	if !ValidExpressPositions[l.ExpressPosition] {
		return fmt.Errorf("unknown lanes.express_position %q; valid: first, middle, last, random", l.ExpressPosition)
	}
	if !IsValidAssignmentPolicy(l.AssignmentPolicy) {
		return fmt.Errorf("unknown lanes.assignment_policy %q; valid: eligibility-filtered, unrestricted-random", l.AssignmentPolicy)
	}

	p := c.Cost
	for name, v := range map[string]float64{
		"cost.lane_cost_per_minute":   p.LaneCostPerMinute,
		"cost.wait_cost_per_minute":   p.WaitCostPerMinute,
		"cost.sla_penalty_per_point":  p.SLAPenaltyPerPoint,
		"cost.sla_time_limit_seconds": p.SLATimeLimitSeconds,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s must be a finite non-negative number, got %f", name, v)
		}
	}
	if math.IsNaN(p.SLATargetPercent) || p.SLATargetPercent < 0 || p.SLATargetPercent > 100 {
		return fmt.Errorf("cost.sla_target_percent must be in [0, 100], got %f", p.SLATargetPercent)
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}
