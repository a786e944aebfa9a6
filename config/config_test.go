package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/munchroute/munchroute/config"
	"github.com/munchroute/munchroute/tsp"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad_FullDocument(t *testing.T) {
	path := writeDoc(t, `
cluster:
  radius_km: 0.8
  min_group_size: 4
solver:
  strategy: two_opt
  quality: best
  max_iters: 1000
  exact_max_nodes: 12
  time_limit: 2s
walk:
  dwell_per_visit: 5m
  speed_kmh: 4.5
tour:
  budget: 3h
  min_points: 8
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, 0.8, cfg.Cluster.RadiusKm)
	require.Equal(t, 4, cfg.Cluster.MinGroupSize)
	require.Equal(t, "two_opt", cfg.Solver.Strategy)
	require.Equal(t, config.Duration(2*time.Second), cfg.Solver.TimeLimit)
	require.Equal(t, config.Duration(5*time.Minute), cfg.Walk.DwellPerVisit)
	require.Equal(t, 4.5, cfg.Walk.SpeedKmh)
	require.Equal(t, config.Duration(3*time.Hour), cfg.Tour.Budget)
	require.Equal(t, 8, cfg.Tour.MinPoints)
}

func TestLoad_PartialDocumentKeepsDefaults(t *testing.T) {
	path := writeDoc(t, `
cluster:
  radius_km: 1.2
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	// Overridden field.
	require.Equal(t, 1.2, cfg.Cluster.RadiusKm)

	// Untouched fields keep the defaults.
	def := config.Default()
	require.Equal(t, def.Cluster.MinGroupSize, cfg.Cluster.MinGroupSize)
	require.Equal(t, def.Solver, cfg.Solver)
	require.Equal(t, def.Walk, cfg.Walk)
	require.Equal(t, def.Tour, cfg.Tour)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"zero radius", "cluster: {radius_km: 0, min_group_size: 3}"},
		{"unknown strategy", "solver: {strategy: annealing}"},
		{"unknown quality", "solver: {quality: perfect}"},
		{"zero speed", "walk: {speed_kmh: 0}"},
		{"bad duration", "walk: {dwell_per_visit: soon}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeDoc(t, tc.doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestAdapters(t *testing.T) {
	cfg := config.Default()
	cfg.Cluster.RadiusKm = 0.7
	cfg.Solver.Strategy = string(tsp.Exact)
	cfg.Walk.SpeedKmh = 6.0

	co := cfg.ClusterOptions()
	require.Equal(t, 0.7, co.RadiusKm)
	require.Equal(t, cfg.Cluster.MinGroupSize, co.MinGroupSize)

	so := cfg.SolverOptions()
	require.Equal(t, tsp.Exact, so.Strategy)
	require.Equal(t, tsp.FreeEnd, so.End)
	require.Equal(t, time.Duration(cfg.Solver.TimeLimit), so.TimeLimit)

	po := cfg.PlanOptions()
	require.Equal(t, tsp.Exact, po.Solver.Strategy)
	require.Equal(t, 6.0, po.Walk.SpeedKmh)
	require.Equal(t, time.Duration(cfg.Walk.DwellPerVisit), po.Walk.DwellPerVisit)
}
