// Package plan - the tour assembly pipeline.
package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/munchroute/munchroute/geo"
	"github.com/munchroute/munchroute/route"
	"github.com/munchroute/munchroute/tsp"
)

// Optimize assembles the global tour for a partition: per-group routes in
// parallel, then centroid-level sequencing with anchors pinned as fixed
// endpoints inside the macro solve.
//
// Contracts:
//   - Noise is never toured; every other group appears exactly once in
//     Sequence.
//   - Deterministic for fixed (clusters, opts).
//
// Errors: ErrNoClusters, ErrBadSpeed, ErrBadDwell, plus geo/tsp/route
// sentinels from the underlying solves.
func Optimize(clusters map[int][]geo.Point, opts Options) (GlobalRoute, error) {
	return optimizeFrom(clusters, opts, noForcedStart)
}

// noForcedStart disables the start-cluster override in optimizeFrom.
const noForcedStart = -1

// optimizeFrom runs the full pipeline; startCluster, when not noForcedStart
// and no Start anchor is set, pins the macro sequence to begin at that
// cluster (Alternatives uses this to diversify tours).
func optimizeFrom(clusters map[int][]geo.Point, opts Options, startCluster int) (GlobalRoute, error) {
	var err error
	if opts, err = normalize(opts); err != nil {
		return GlobalRoute{}, err
	}

	routes, err := route.OptimizeAll(clusters, route.Options{
		Solver: opts.Solver,
		Logger: opts.Logger,
	})
	if err != nil {
		return GlobalRoute{}, err
	}
	if len(routes) == 0 {
		return GlobalRoute{}, ErrNoClusters
	}

	ids := make([]int, 0, len(routes))
	for id := range routes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	sequence, err := sequenceCentroids(ids, clusters, opts, startCluster)
	if err != nil {
		return GlobalRoute{}, err
	}

	g := GlobalRoute{
		Sequence: sequence,
		Routes:   routes,
		Start:    opts.Start,
		End:      opts.End,
	}

	// Totals come from the legs actually walked: the flattened tour plus any
	// anchor legs. Centroids decide the sequence only, so the walked length
	// of Flatten() always matches TotalKm when no anchors are set.
	flat := g.Flatten()
	g.TotalPoints = len(flat)
	g.TotalKm = geo.RouteLength(flat)
	if opts.Start != nil {
		g.TotalKm += geo.HaversineKm(*opts.Start, flat[0].Pos)
	}
	if opts.End != nil {
		g.TotalKm += geo.HaversineKm(flat[len(flat)-1].Pos, *opts.End)
	}
	g.Duration = tourDuration(g.TotalPoints, g.TotalKm, opts.Walk)

	opts.Logger.Info().
		Ints("sequence", g.Sequence).
		Float64("total_km", g.TotalKm).
		Int("total_points", g.TotalPoints).
		Dur("duration", g.Duration).
		Msg("tour assembled")

	return g, nil
}

// sequenceCentroids orders the clusters by solving a macro tour instance
// over their centroids. Anchors join the instance as extra nodes pinned to
// the endpoints, so anchor legs compete in the same optimization as the
// inter-group legs. Returns the cluster visiting order.
func sequenceCentroids(ids []int, clusters map[int][]geo.Point, opts Options, startCluster int) ([]int, error) {
	nodes := make([]geo.Point, 0, len(ids)+2)

	if opts.Start != nil {
		nodes = append(nodes, geo.Point{ID: "anchor-start", Pos: *opts.Start})
	}
	offset := len(nodes) // index of the first cluster node

	for _, id := range ids {
		centroid, err := geo.Centroid(clusters[id])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, geo.Point{ID: fmt.Sprintf("cluster-%d", id), Pos: centroid})
	}

	if opts.End != nil {
		nodes = append(nodes, geo.Point{ID: "anchor-end", Pos: *opts.End})
	}

	m, err := geo.DistanceMatrix(nodes)
	if err != nil {
		return nil, err
	}

	solver := opts.Solver
	solver.Start = 0
	solver.End = tsp.FreeEnd
	if opts.Start == nil && startCluster != noForcedStart {
		for i, id := range ids {
			if id == startCluster {
				solver.Start = offset + i
				break
			}
		}
	}
	if opts.End != nil {
		solver.End = len(nodes) - 1
	}

	res, err := tsp.Solve(m, solver)
	if err != nil {
		return nil, err
	}

	sequence := make([]int, 0, len(ids))
	for _, idx := range res.Order {
		if idx >= offset && idx < offset+len(ids) {
			sequence = append(sequence, ids[idx-offset])
		}
	}

	return sequence, nil
}

// tourDuration combines fixed dwell per visit with walking time at constant
// speed.
func tourDuration(points int, km float64, walk WalkModel) time.Duration {
	dwell := time.Duration(points) * walk.DwellPerVisit
	walking := time.Duration(km / walk.SpeedKmh * float64(time.Hour))

	return dwell + walking
}

// normalize fills zero-value Solver and Walk fields with the canonical
// defaults and rejects degenerate walk parameters.
func normalize(opts Options) (Options, error) {
	if opts.Solver.Strategy == "" {
		opts.Solver = tsp.DefaultOptions()
	}
	if opts.Walk == (WalkModel{}) {
		opts.Walk = WalkModel{DwellPerVisit: DefaultDwellPerVisit, SpeedKmh: DefaultSpeedKmh}
	}

	if opts.Walk.SpeedKmh <= 0 {
		return Options{}, ErrBadSpeed
	}
	if opts.Walk.DwellPerVisit < 0 {
		return Options{}, ErrBadDwell
	}

	return opts, nil
}
