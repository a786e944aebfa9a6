// Package config - document schema, loading, validation and adapters.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/munchroute/munchroute/cluster"
	"github.com/munchroute/munchroute/plan"
	"github.com/munchroute/munchroute/tsp"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is the sentinel wrapped by every validation failure; the
// wrapping message names the offending field.
var ErrInvalid = errors.New("config: invalid value")

// Duration is time.Duration with YAML support for the Go notation ("3m").
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not a duration", ErrInvalid, s)
	}
	*d = Duration(parsed)

	return nil
}

// MarshalYAML renders the Go duration notation.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// ClusterConfig maps onto cluster.Options.
type ClusterConfig struct {
	RadiusKm     float64 `yaml:"radius_km"`
	MinGroupSize int     `yaml:"min_group_size"`
}

// SolverConfig maps onto tsp.Options.
type SolverConfig struct {
	Strategy      string   `yaml:"strategy"`
	Quality       string   `yaml:"quality"`
	MaxIters      int      `yaml:"max_iters"`
	ExactMaxNodes int      `yaml:"exact_max_nodes"`
	TimeLimit     Duration `yaml:"time_limit"`
}

// WalkConfig maps onto plan.WalkModel.
type WalkConfig struct {
	DwellPerVisit Duration `yaml:"dwell_per_visit"`
	SpeedKmh      float64  `yaml:"speed_kmh"`
}

// TourConfig carries the feasibility constraints fed to plan.Validate.
type TourConfig struct {
	Budget    Duration `yaml:"budget"`
	MinPoints int      `yaml:"min_points"`
}

// Config is the full engine configuration document.
type Config struct {
	Cluster ClusterConfig `yaml:"cluster"`
	Solver  SolverConfig  `yaml:"solver"`
	Walk    WalkConfig    `yaml:"walk"`
	Tour    TourConfig    `yaml:"tour"`
}

// Default returns the document equivalent of the packages' own defaults.
func Default() Config {
	return Config{
		Cluster: ClusterConfig{RadiusKm: 0.5, MinGroupSize: 3},
		Solver: SolverConfig{
			Strategy:      string(tsp.Auto),
			Quality:       string(tsp.Balanced),
			ExactMaxNodes: tsp.DefaultExactMaxNodes,
			TimeLimit:     Duration(tsp.DefaultExactTimeLimit),
		},
		Walk: WalkConfig{
			DwellPerVisit: Duration(plan.DefaultDwellPerVisit),
			SpeedKmh:      plan.DefaultSpeedKmh,
		},
		Tour: TourConfig{Budget: Duration(4 * time.Hour), MinPoints: 5},
	}
}

// Load reads and validates a YAML configuration file. Fields absent from
// the document keep the Default() values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the engine packages would refuse anyway, with the
// field name attached while the document is still at hand.
func (c Config) Validate() error {
	if c.Cluster.RadiusKm <= 0 {
		return fmt.Errorf("%w: cluster.radius_km must be positive", ErrInvalid)
	}
	if c.Cluster.MinGroupSize < 1 {
		return fmt.Errorf("%w: cluster.min_group_size must be at least 1", ErrInvalid)
	}

	switch tsp.Strategy(c.Solver.Strategy) {
	case tsp.Greedy, tsp.TwoOpt, tsp.Exact, tsp.Auto:
	default:
		return fmt.Errorf("%w: solver.strategy %q unknown", ErrInvalid, c.Solver.Strategy)
	}
	switch tsp.Quality(c.Solver.Quality) {
	case tsp.Fast, tsp.Balanced, tsp.Best, "":
	default:
		return fmt.Errorf("%w: solver.quality %q unknown", ErrInvalid, c.Solver.Quality)
	}
	if c.Solver.MaxIters < 0 || c.Solver.ExactMaxNodes < 0 || c.Solver.TimeLimit < 0 {
		return fmt.Errorf("%w: solver limits must not be negative", ErrInvalid)
	}

	if c.Walk.SpeedKmh <= 0 {
		return fmt.Errorf("%w: walk.speed_kmh must be positive", ErrInvalid)
	}
	if c.Walk.DwellPerVisit < 0 {
		return fmt.Errorf("%w: walk.dwell_per_visit must not be negative", ErrInvalid)
	}

	if c.Tour.Budget < 0 {
		return fmt.Errorf("%w: tour.budget must not be negative", ErrInvalid)
	}
	if c.Tour.MinPoints < 0 {
		return fmt.Errorf("%w: tour.min_points must not be negative", ErrInvalid)
	}

	return nil
}

// ClusterOptions converts the document into clusterer options.
func (c Config) ClusterOptions() cluster.Options {
	opts := cluster.DefaultOptions()
	opts.RadiusKm = c.Cluster.RadiusKm
	opts.MinGroupSize = c.Cluster.MinGroupSize

	return opts
}

// SolverOptions converts the document into tour-solver options.
func (c Config) SolverOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Strategy = tsp.Strategy(c.Solver.Strategy)
	opts.Quality = tsp.Quality(c.Solver.Quality)
	opts.MaxIters = c.Solver.MaxIters
	opts.ExactMaxNodes = c.Solver.ExactMaxNodes
	opts.TimeLimit = time.Duration(c.Solver.TimeLimit)

	return opts
}

// PlanOptions converts the document into tour-assembly options. Anchors are
// runtime inputs, not configuration; callers set them on the result.
func (c Config) PlanOptions() plan.Options {
	opts := plan.DefaultOptions()
	opts.Solver = c.SolverOptions()
	opts.Walk = plan.WalkModel{
		DwellPerVisit: time.Duration(c.Walk.DwellPerVisit),
		SpeedKmh:      c.Walk.SpeedKmh,
	}

	return opts
}
