// Package cluster - option/result types and sentinel errors.
package cluster

import (
	"errors"

	"github.com/munchroute/munchroute/geo"
	"github.com/rs/zerolog"
)

// Sentinel errors returned by the cluster package.
var (
	// ErrNoPoints indicates an empty input point set.
	ErrNoPoints = errors.New("cluster: no points provided")

	// ErrBadRadius indicates a non-positive neighborhood radius.
	ErrBadRadius = errors.New("cluster: radius must be positive")

	// ErrBadMinGroupSize indicates a minimum group size below 1.
	ErrBadMinGroupSize = errors.New("cluster: min group size must be at least 1")

	// ErrDimensionMismatch indicates a precomputed matrix whose order does
	// not match the point count.
	ErrDimensionMismatch = errors.New("cluster: matrix order does not match point count")

	// ErrBadRange indicates an invalid parameter-search range or step.
	ErrBadRange = errors.New("cluster: invalid search range")
)

// Noise is the reserved cluster id for points that never qualify into any
// dense region under the given parameters.
const Noise = -1

// Options configures a clustering run.
//
// RadiusKm     – maximum neighborhood distance between two points for them
//
//	to be considered density-reachable (DBSCAN epsilon).
//
// MinGroupSize – minimum number of points (the point itself included) in a
//
//	neighborhood to seed a dense region (DBSCAN minPts).
//
// Logger       – structured progress logging; the zero value stays silent.
type Options struct {
	RadiusKm     float64
	MinGroupSize int
	Logger       zerolog.Logger
}

// DefaultOptions returns walkable-neighborhood defaults: half a kilometer
// radius, three points to seed a group, no logging.
func DefaultOptions() Options {
	return Options{
		RadiusKm:     0.5,
		MinGroupSize: 3,
		Logger:       zerolog.Nop(),
	}
}

// Metrics is the derived, read-only quality summary of one cluster.
// It is recomputed on demand and never cached across mutations.
type Metrics struct {
	ClusterID int
	Size      int
	Cohesion  float64   // mean intra-cluster pairwise distance, km
	Diameter  float64   // max intra-cluster pairwise distance, km
	Centroid  geo.Coord // flat arithmetic mean of member positions
}

// Violation describes one cluster failing a validation threshold.
type Violation struct {
	ClusterID int
	Reason    string
}

// Report summarizes threshold validation over a partition. Noise is not
// validated (it is not a cluster).
type Report struct {
	Total      int // clusters checked
	Valid      int
	Violations []Violation
}

// AllPassed reports whether every checked cluster met the thresholds.
func (r Report) AllPassed() bool { return len(r.Violations) == 0 }

// Trial records one grid-search evaluation.
type Trial struct {
	RadiusKm     float64
	MinGroupSize int
	Score        float64
	Clusters     int
	NoisePoints  int
}

// SearchResult carries the winning parameters of a grid search together with
// the partition they produce and the full trial log.
type SearchResult struct {
	RadiusKm     float64
	MinGroupSize int
	Score        float64
	Clusters     map[int][]geo.Point
	Trials       []Trial
}
