// Package route - per-group optimization and the parallel fan-out.
package route

import (
	"fmt"
	"sort"

	"github.com/munchroute/munchroute/geo"
	"github.com/munchroute/munchroute/tsp"
	"golang.org/x/sync/errgroup"
)

// Optimize solves one group into an ordered route.
//
// Contracts:
//   - The returned route visits every input point exactly once.
//   - Optional StartID pins the first visit; an unknown id fails loudly
//     with ErrUnknownStart instead of silently starting elsewhere.
//   - Deterministic for fixed (points, opts).
//
// Errors: ErrEmptyGroup, ErrUnknownStart, plus geo/tsp sentinels.
func Optimize(points []geo.Point, opts Options) (Route, error) {
	if len(points) == 0 {
		return Route{}, ErrEmptyGroup
	}
	opts = normalize(opts)

	if opts.StartID != "" {
		idx := indexOfID(points, opts.StartID)
		if idx < 0 {
			return Route{}, ErrUnknownStart
		}
		opts.Solver.Start = idx
	}

	m, err := geo.DistanceMatrix(points)
	if err != nil {
		return Route{}, err
	}

	res, err := tsp.Solve(m, opts.Solver)
	if err != nil {
		return Route{}, err
	}

	ordered := make([]geo.Point, len(points))
	for pos, idx := range res.Order {
		ordered[pos] = points[idx]
	}

	r := Route{
		Points:   ordered,
		Metrics:  computeMetrics(ordered, res.Km),
		Strategy: res.Strategy,
		Elapsed:  res.Elapsed,
	}

	opts.Logger.Debug().
		Int("points", r.Metrics.Count).
		Float64("km", r.Metrics.Km).
		Float64("efficiency", r.Metrics.Efficiency).
		Str("strategy", r.Strategy).
		Msg("group optimized")

	return r, nil
}

// OptimizeAll solves every non-noise cluster of the partition concurrently
// and returns the routes keyed by cluster id. The Noise group is skipped:
// rejected points are not toured.
//
// Contracts:
//   - Results are identical to calling Optimize on each cluster serially.
//   - The first cluster error cancels the remaining work and is returned
//     wrapped with the offending cluster id.
func OptimizeAll(clusters map[int][]geo.Point, opts Options) (map[int]Route, error) {
	opts = normalize(opts)

	ids := make([]int, 0, len(clusters))
	for id := range clusters {
		if id != clusterNoise {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	routes := make([]Route, len(ids))
	var g errgroup.Group
	for slot, id := range ids {
		slot, id := slot, id
		g.Go(func() error {
			r, err := Optimize(clusters[id], opts)
			if err != nil {
				return fmt.Errorf("cluster %d: %w", id, err)
			}
			routes[slot] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int]Route, len(ids))
	var totalKm float64
	for slot, id := range ids {
		out[id] = routes[slot]
		totalKm += routes[slot].Metrics.Km
	}

	opts.Logger.Info().
		Int("clusters", len(out)).
		Float64("total_km", totalKm).
		Msg("all groups optimized")

	return out, nil
}

// Validate checks a finished route for repeated point ids. A duplicate means
// an identity invariant broke upstream; it is reported loudly, wrapped with
// the offending id.
func Validate(r Route) error {
	seen := make(map[string]struct{}, len(r.Points))
	for _, p := range r.Points {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePoint, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// CompareStrategies optimizes the same group under every applicable concrete
// solver strategy and returns the routes keyed by strategy name. Exact
// participates only when the group fits under the solver's node ceiling.
func CompareStrategies(points []geo.Point, opts Options) (map[string]Route, error) {
	if len(points) == 0 {
		return nil, ErrEmptyGroup
	}
	opts = normalize(opts)

	m, err := geo.DistanceMatrix(points)
	if err != nil {
		return nil, err
	}

	results, err := tsp.Compare(m, opts.Solver)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Route, len(results))
	for name, res := range results {
		ordered := make([]geo.Point, len(points))
		for pos, idx := range res.Order {
			ordered[pos] = points[idx]
		}
		out[name] = Route{
			Points:   ordered,
			Metrics:  computeMetrics(ordered, res.Km),
			Strategy: res.Strategy,
			Elapsed:  res.Elapsed,
		}
	}

	return out, nil
}

// clusterNoise mirrors cluster.Noise; route consumes plain partitions and
// depends only on the reserved id value.
const clusterNoise = -1

// indexOfID returns the index of the point with the given id, or -1 when no
// point matches.
func indexOfID(points []geo.Point, id string) int {
	for i, p := range points {
		if p.ID == id {
			return i
		}
	}

	return -1
}

// normalize fills a zero-value Solver with the canonical defaults so Options
// literals stay usable.
func normalize(opts Options) Options {
	if opts.Solver.Strategy == "" {
		opts.Solver = tsp.DefaultOptions()
	}

	return opts
}

// computeMetrics derives route quality from the ordered points and the
// solver-reported length.
func computeMetrics(ordered []geo.Point, km float64) Metrics {
	m := Metrics{Km: km, Count: len(ordered)}

	if m.Count < 2 {
		m.Efficiency = 1.0

		return m
	}

	m.AvgLegKm = km / float64(m.Count-1)

	if km <= 0 {
		// All points coincide: nothing walked, perfectly efficient.
		m.Efficiency = 1.0

		return m
	}

	direct := geo.Distance(ordered[0], ordered[m.Count-1])
	m.Efficiency = direct / km
	if m.Efficiency > 1.0 {
		m.Efficiency = 1.0
	}

	return m
}
