// Package cluster - DBSCAN over a precomputed distance matrix.
//
// Algorithm: for each unclassified point, collect its neighborhood within
// RadiusKm (the point itself included). If the neighborhood reaches
// MinGroupSize the point seeds a new cluster, which is then expanded by
// transitively absorbing every point reachable through chains of
// sufficiently dense neighborhoods. A point already claimed by a cluster is
// never reassigned; points that never qualify stay in the Noise group.
//
// Density reachability is order-independent, so the resulting partition is a
// pure function of (points, radius, minGroupSize); only the numeric ids
// depend on input order, and even those are stable for a fixed order.
package cluster

import "github.com/munchroute/munchroute/geo"

// unclassified marks a point not yet visited by the scan. Distinct from
// Noise: a noise point has been visited and rejected.
const unclassified = -2

// Cluster partitions points into walkable groups, computing the distance
// matrix internally. Use ClusterWithMatrix when a matrix is already at hand.
//
// Errors: ErrNoPoints, ErrBadRadius, ErrBadMinGroupSize, plus geo sentinel
// errors for structurally invalid coordinates.
func Cluster(points []geo.Point, opts Options) (map[int][]geo.Point, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	m, err := geo.DistanceMatrix(points)
	if err != nil {
		return nil, err
	}

	return ClusterWithMatrix(points, m, opts)
}

// ClusterWithMatrix partitions points using the caller's precomputed matrix.
//
// Contracts:
//   - m must be the distance matrix of points in the same order
//     (m.Order() == len(points)), otherwise ErrDimensionMismatch.
//   - Partition invariant: every input point appears in exactly one group,
//     the Noise group included.
//
// Complexity: O(n²) time (neighborhood scans), O(n) extra space.
func ClusterWithMatrix(points []geo.Point, m geo.Matrix, opts Options) (map[int][]geo.Point, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if m.Order() != n {
		return nil, ErrDimensionMismatch
	}

	labels := dbscan(n, m, opts)

	// Group by label, preserving input order inside each group.
	out := make(map[int][]geo.Point)
	var (
		i     int
		noise int
	)
	for i = 0; i < n; i++ {
		out[labels[i]] = append(out[labels[i]], points[i])
		if labels[i] == Noise {
			noise++
		}
	}

	opts.Logger.Info().
		Int("points", n).
		Int("clusters", len(out)-boolToInt(noise > 0)).
		Int("noise", noise).
		Float64("radius_km", opts.RadiusKm).
		Int("min_group_size", opts.MinGroupSize).
		Msg("clustering complete")

	return out, nil
}

// dbscan runs the label assignment over the matrix. Returned labels are
// cluster ids starting at 0, or Noise.
func dbscan(n int, m geo.Matrix, opts Options) []int {
	labels := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		labels[i] = unclassified
	}

	var (
		next  int   // next cluster id to assign
		queue []int // expansion frontier, reused across seeds
		seed  int
		qi, j int
		nbrs  []int
	)
	for seed = 0; seed < n; seed++ {
		if labels[seed] != unclassified {
			continue
		}

		nbrs = neighborhood(m, seed, opts.RadiusKm)
		if len(nbrs) < opts.MinGroupSize {
			labels[seed] = Noise // may be upgraded later as a border point
			continue
		}

		id := next
		next++
		labels[seed] = id

		// Breadth-first expansion through dense neighborhoods.
		queue = append(queue[:0], nbrs...)
		for qi = 0; qi < len(queue); qi++ {
			j = queue[qi]

			if labels[j] == Noise {
				labels[j] = id // border point adopted by the dense region
			}
			if labels[j] != unclassified {
				continue // already claimed; never reassigned
			}
			labels[j] = id

			nbrs = neighborhood(m, j, opts.RadiusKm)
			if len(nbrs) >= opts.MinGroupSize {
				queue = append(queue, nbrs...) // j is core: extend the chain
			}
		}
	}

	return labels
}

// neighborhood lists indices within radius of i, i itself included (DBSCAN
// counts the point toward its own neighborhood size).
//
// Complexity: O(n).
func neighborhood(m geo.Matrix, i int, radiusKm float64) []int {
	var (
		out []int
		j   int
		n   = m.Order()
	)
	for j = 0; j < n; j++ {
		if m[i][j] <= radiusKm {
			out = append(out, j)
		}
	}

	return out
}

// validateOptions fails fast on degenerate parameters.
func validateOptions(opts Options) error {
	if opts.RadiusKm <= 0 {
		return ErrBadRadius
	}
	if opts.MinGroupSize < 1 {
		return ErrBadMinGroupSize
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
