// Package cluster - silhouette-scored grid search over (radius, minGroupSize).
//
// The silhouette score measures the separation/cohesion tradeoff of a
// partition: +1 means compact, well-separated clusters, 0 overlapping ones,
// negative values likely misassignment. Noise points are excluded from the
// score (they belong to no cluster); singleton members contribute 0, and a
// partition with fewer than two clusters scores 0 by definition.
package cluster

import (
	"math"

	"github.com/munchroute/munchroute/geo"
)

// rangeTol absorbs floating-point drift when stepping the radius range so
// the upper bound stays inclusive.
const rangeTol = 1e-9

// SearchParameters grid-searches radiusRange × sizeRange (both inclusive,
// radius stepped by step, sizes by 1) and returns the pair maximizing the
// silhouette score, together with the winning partition and the full trial
// log. Ties keep the first (smallest-radius, smallest-size) winner, so the
// search is deterministic.
//
// The distance matrix is computed once and shared by all trials.
//
// Errors: ErrNoPoints; ErrBadRange for an empty/inverted range, non-positive
// lower radius bound or non-positive step; ErrBadMinGroupSize for a size
// range starting below 1.
func SearchParameters(points []geo.Point, radiusRange [2]float64, sizeRange [2]int, step float64, opts Options) (SearchResult, error) {
	if len(points) == 0 {
		return SearchResult{}, ErrNoPoints
	}
	if radiusRange[0] <= 0 || radiusRange[1] < radiusRange[0] || step <= 0 {
		return SearchResult{}, ErrBadRange
	}
	if sizeRange[0] < 1 {
		return SearchResult{}, ErrBadMinGroupSize
	}
	if sizeRange[1] < sizeRange[0] {
		return SearchResult{}, ErrBadRange
	}

	m, err := geo.DistanceMatrix(points)
	if err != nil {
		return SearchResult{}, err
	}

	var (
		best      SearchResult
		bestScore = math.Inf(-1)
		n         = len(points)
		radius    float64
		size      int
	)
	for radius = radiusRange[0]; radius <= radiusRange[1]+rangeTol; radius += step {
		for size = sizeRange[0]; size <= sizeRange[1]; size++ {
			trialOpts := Options{RadiusKm: radius, MinGroupSize: size}
			labels := dbscan(n, m, trialOpts)
			score := silhouette(m, labels)

			var (
				groups = make(map[int]int)
				noise  int
				i      int
			)
			for i = 0; i < n; i++ {
				if labels[i] == Noise {
					noise++
					continue
				}
				groups[labels[i]]++
			}

			best.Trials = append(best.Trials, Trial{
				RadiusKm:     radius,
				MinGroupSize: size,
				Score:        score,
				Clusters:     len(groups),
				NoisePoints:  noise,
			})

			if score > bestScore {
				bestScore = score
				best.RadiusKm = radius
				best.MinGroupSize = size
				best.Score = score
			}
		}
	}

	// Rebuild the winning partition once instead of keeping every trial's.
	winOpts := opts
	winOpts.RadiusKm = best.RadiusKm
	winOpts.MinGroupSize = best.MinGroupSize
	clusters, err := ClusterWithMatrix(points, m, winOpts)
	if err != nil {
		return SearchResult{}, err
	}
	best.Clusters = clusters

	opts.Logger.Info().
		Float64("radius_km", best.RadiusKm).
		Int("min_group_size", best.MinGroupSize).
		Float64("score", best.Score).
		Int("trials", len(best.Trials)).
		Msg("parameter search complete")

	return best, nil
}

// silhouette computes the mean silhouette coefficient over non-noise points
// against the precomputed matrix.
//
// Complexity: O(n²) per call.
func silhouette(m geo.Matrix, labels []int) float64 {
	n := len(labels)

	// Count members per cluster; bail out with 0 unless ≥ 2 clusters exist.
	counts := make(map[int]int)
	var i, j int
	for i = 0; i < n; i++ {
		if labels[i] != Noise {
			counts[labels[i]]++
		}
	}
	if len(counts) < 2 {
		return 0
	}

	var (
		total  float64
		scored int
	)
	for i = 0; i < n; i++ {
		own := labels[i]
		if own == Noise {
			continue
		}
		if counts[own] < 2 {
			scored++ // singleton: coefficient defined as 0
			continue
		}

		// Mean distance to own cluster (a) and to each foreign cluster.
		var (
			sums  = make(map[int]float64)
			other int
		)
		for j = 0; j < n; j++ {
			other = labels[j]
			if j == i || other == Noise {
				continue
			}
			sums[other] += m[i][j]
		}

		a := sums[own] / float64(counts[own]-1)

		b := math.Inf(1)
		for id, sum := range sums {
			if id == own {
				continue
			}
			if mean := sum / float64(counts[id]); mean < b {
				b = mean
			}
		}

		if denom := math.Max(a, b); denom > 0 {
			total += (b - a) / denom
		}
		scored++
	}

	if scored == 0 {
		return 0
	}

	return total / float64(scored)
}
