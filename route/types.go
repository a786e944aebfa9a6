// Package route - option/result types and sentinel errors.
package route

import (
	"errors"
	"time"

	"github.com/munchroute/munchroute/geo"
	"github.com/munchroute/munchroute/tsp"
	"github.com/rs/zerolog"
)

// Sentinel errors returned by the route package.
var (
	// ErrEmptyGroup indicates an attempt to optimize a group with no points.
	ErrEmptyGroup = errors.New("route: empty group")

	// ErrUnknownStart indicates a StartID that matches no point in the group.
	ErrUnknownStart = errors.New("route: start id not found in group")

	// ErrDuplicatePoint indicates the same point id visited more than once.
	// Seeing it from Validate means an upstream identity invariant broke.
	ErrDuplicatePoint = errors.New("route: duplicate point in route")
)

// Options configures route optimization.
//
// Solver  – the tour-solver configuration applied to each group; the zero
//
//	value is replaced by tsp.DefaultOptions().
//
// StartID – when non-empty, pins the point with this id as the first visit.
// Logger  – structured progress logging; the zero value stays silent.
type Options struct {
	Solver  tsp.Options
	StartID string
	Logger  zerolog.Logger
}

// DefaultOptions returns the canonical configuration: auto solver, free
// start, no logging.
func DefaultOptions() Options {
	return Options{
		Solver: tsp.DefaultOptions(),
		Logger: zerolog.Nop(),
	}
}

// Metrics summarizes the quality of one optimized route.
type Metrics struct {
	Km         float64 // total walked length over consecutive legs
	Count      int     // points visited
	AvgLegKm   float64 // Km / (Count-1); 0 for fewer than 2 points
	Efficiency float64 // straight-line(first,last) / Km, in [0,1]
}

// Route is one group's optimized visiting order with its metrics.
//
// Strategy names the algorithm that actually produced the order (after any
// solver fallback); Elapsed is the wall-clock solve time.
type Route struct {
	Points   []geo.Point
	Metrics  Metrics
	Strategy string
	Elapsed  time.Duration
}
