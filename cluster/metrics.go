// Package cluster - derived quality metrics and threshold validation.
package cluster

import (
	"fmt"
	"sort"

	"github.com/munchroute/munchroute/geo"
)

// ComputeMetrics derives the read-only quality summary for every cluster in
// the partition. The Noise group is excluded unless includeNoise is set.
//
// Cohesion is the mean pairwise distance between members (0 for singletons),
// diameter the maximum, centroid the flat arithmetic mean position.
//
// Complexity: O(Σ nᵢ²) over cluster sizes.
func ComputeMetrics(clusters map[int][]geo.Point, includeNoise bool) map[int]Metrics {
	out := make(map[int]Metrics, len(clusters))

	for id, members := range clusters {
		if id == Noise && !includeNoise {
			continue
		}

		centroid, err := geo.Centroid(members)
		if err != nil {
			continue // empty group: nothing to summarize
		}

		out[id] = Metrics{
			ClusterID: id,
			Size:      len(members),
			Cohesion:  meanPairwise(members),
			Diameter:  geo.Diameter(members),
			Centroid:  centroid,
		}
	}

	return out
}

// meanPairwise returns the average distance over all unordered member pairs.
func meanPairwise(points []geo.Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}

	var (
		sum   float64
		pairs int
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sum += geo.Distance(points[i], points[j])
			pairs++
		}
	}

	return sum / float64(pairs)
}

// Validate checks every non-noise cluster against size and diameter
// thresholds and reports the violations. The partition is never mutated;
// violations are findings, not errors.
//
// Clusters are checked in ascending id order so the report is deterministic.
func Validate(clusters map[int][]geo.Point, minSize int, maxDiameterKm float64) Report {
	ids := make([]int, 0, len(clusters))
	for id := range clusters {
		if id != Noise {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	var rep Report
	for _, id := range ids {
		members := clusters[id]
		rep.Total++

		if len(members) < minSize {
			rep.Violations = append(rep.Violations, Violation{
				ClusterID: id,
				Reason:    fmt.Sprintf("size %d below minimum %d", len(members), minSize),
			})
			continue
		}

		if d := geo.Diameter(members); d > maxDiameterKm {
			rep.Violations = append(rep.Violations, Violation{
				ClusterID: id,
				Reason:    fmt.Sprintf("diameter %.2fkm above maximum %.2fkm", d, maxDiameterKm),
			})
			continue
		}

		rep.Valid++
	}

	return rep
}
