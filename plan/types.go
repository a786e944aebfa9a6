// Package plan - option/result types and sentinel errors.
package plan

import (
	"errors"
	"time"

	"github.com/munchroute/munchroute/geo"
	"github.com/munchroute/munchroute/route"
	"github.com/munchroute/munchroute/tsp"
	"github.com/rs/zerolog"
)

// Sentinel errors returned by the plan package.
var (
	// ErrNoClusters indicates a partition with no non-noise groups to tour.
	ErrNoClusters = errors.New("plan: no clusters to sequence")

	// ErrBadSpeed indicates a non-positive walking speed.
	ErrBadSpeed = errors.New("plan: walking speed must be positive")

	// ErrBadDwell indicates a negative dwell time per visit.
	ErrBadDwell = errors.New("plan: dwell per visit must not be negative")

	// ErrBadCount indicates a non-positive alternatives count.
	ErrBadCount = errors.New("plan: alternatives count must be positive")
)

// Walking-time model defaults.
const (
	// DefaultDwellPerVisit is the fixed time budgeted at each visited point.
	DefaultDwellPerVisit = 3 * time.Minute

	// DefaultSpeedKmh is a comfortable urban walking pace.
	DefaultSpeedKmh = 5.0

	// DefaultMinPointsPerHour is the throughput below which a tour draws a
	// soft efficiency warning from Validate.
	DefaultMinPointsPerHour = 10.0
)

// WalkModel converts a tour's geometry into wall-clock duration.
type WalkModel struct {
	DwellPerVisit time.Duration // fixed time spent at each point
	SpeedKmh      float64       // constant walking speed
}

// Options configures global tour assembly.
//
// Solver – tour-solver configuration, applied to both the per-group routes
//
//	and the centroid macro instance; zero value ⇒ tsp.DefaultOptions().
//
// Walk   – duration model; zero value ⇒ the package defaults.
// Start  – optional anchor the tour must depart from.
// End    – optional anchor the tour must finish at.
// Logger – structured progress logging; the zero value stays silent.
type Options struct {
	Solver tsp.Options
	Walk   WalkModel
	Start  *geo.Coord
	End    *geo.Coord
	Logger zerolog.Logger
}

// DefaultOptions returns the canonical configuration: auto solver, 3-minute
// dwell at 5 km/h, no anchors, no logging.
func DefaultOptions() Options {
	return Options{
		Solver: tsp.DefaultOptions(),
		Walk: WalkModel{
			DwellPerVisit: DefaultDwellPerVisit,
			SpeedKmh:      DefaultSpeedKmh,
		},
		Logger: zerolog.Nop(),
	}
}

// GlobalRoute is one assembled walking tour.
//
// Sequence lists cluster ids in visiting order; Routes carries the
// per-cluster routes the sequence refers to. TotalKm is the walked length of
// the flattened tour plus any anchor legs.
type GlobalRoute struct {
	Sequence    []int
	Routes      map[int]route.Route
	TotalKm     float64
	TotalPoints int
	Duration    time.Duration
	Start       *geo.Coord
	End         *geo.Coord
}

// Flatten returns the tour as one flat visiting order: each group's points
// in route order, groups in sequence order.
func (g GlobalRoute) Flatten() []geo.Point {
	out := make([]geo.Point, 0, g.TotalPoints)
	for _, id := range g.Sequence {
		out = append(out, g.Routes[id].Points...)
	}

	return out
}

// Finding is one feasibility observation about a tour.
type Finding struct {
	Reason string
}

// Report splits feasibility findings by severity. Hard findings make the
// tour infeasible; soft findings are quality warnings only.
type Report struct {
	Hard []Finding
	Soft []Finding
}

// Feasible reports whether the tour passed every hard check.
func (r Report) Feasible() bool { return len(r.Hard) == 0 }
