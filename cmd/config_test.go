package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/checkout-sim/sim"
)

// newFlagCmd returns a command with the shared flags bound to their defaults.
func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addSimFlags(c.Flags())
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestResolveSimConfig_NoFlagsGivesDefaults(t *testing.T) {
	cfg, err := resolveSimConfig(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultSimConfig(), cfg)
}

func TestResolveSimConfig_FlagsOverride(t *testing.T) {
	cfg, err := resolveSimConfig(newFlagCmd(t,
		"--seed", "7", "--lanes", "8", "--policy", "unrestricted-random",
		"--express-position", "middle", "--customers", "40", "--express-bias=false",
		"--express-ratio", "0.3", "--service-multiplier", "1.5"))
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 8, cfg.Lanes.Count)
	assert.Equal(t, "unrestricted-random", cfg.Lanes.AssignmentPolicy)
	assert.Equal(t, "middle", cfg.Lanes.ExpressPosition)
	assert.Equal(t, 40, cfg.Generator.Customers)
	assert.False(t, cfg.Generator.ExpressBias)
	assert.Equal(t, 0.3, cfg.Generator.ExpressRatio)
	assert.Equal(t, 1.5, cfg.Generator.ServiceMultiplier)
}

func TestResolveSimConfig_UnsetFlagsKeepFileValues(t *testing.T) {
	// GIVEN a config file with 7 lanes and seed 9
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\nlanes:\n  count: 7\n"), 0o644))

	// WHEN only --seed is passed
	cfg, err := resolveSimConfig(newFlagCmd(t, "--config", path, "--seed", "100"))
	require.NoError(t, err)

	// THEN the flag wins for seed and the file wins for lanes, despite the --lanes default of 5
	assert.Equal(t, int64(100), cfg.Seed)
	assert.Equal(t, 7, cfg.Lanes.Count)
	assert.Equal(t, "last", cfg.Lanes.ExpressPosition)
}

func TestResolveSimConfig_Invalid(t *testing.T) {
	_, err := resolveSimConfig(newFlagCmd(t, "--lanes", "2"))
	assert.Error(t, err)

	_, err = resolveSimConfig(newFlagCmd(t, "--policy", "shortest-queue"))
	assert.Error(t, err)

	_, err = resolveSimConfig(newFlagCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

// TestDefaultsYAML_MatchesDefaultSimConfig keeps the shipped example config in
// step with the compiled-in defaults.
func TestDefaultsYAML_MatchesDefaultSimConfig(t *testing.T) {
	path := "../defaults.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("defaults.yaml not found, skipping")
	}

	cfg, err := sim.LoadSimConfig(path)

	require.NoError(t, err)
	assert.Equal(t, sim.DefaultSimConfig(), *cfg)
}
