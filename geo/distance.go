// Package geo - haversine distance, matrix construction and route sums.
//
// Design:
//   - Pure functions over immutable inputs; no hidden state, no logging.
//   - Matrix construction exploits symmetry: only the upper triangle is
//     computed, the lower triangle is mirrored.
//   - Strict sentinels from types.go; no fmt.Errorf in hot paths.
package geo

import (
	"math"
	"sort"
)

// HaversineKm computes the great-circle distance in kilometers between two
// coordinates using the haversine formula.
//
// Contracts:
//   - Symmetric: HaversineKm(a,b) == HaversineKm(b,a).
//   - Zero iff a == b (identical degrees).
//
// Complexity: O(1).
func HaversineKm(a, b Coord) float64 {
	var (
		lat1 = a.Lat * math.Pi / 180
		lat2 = b.Lat * math.Pi / 180
		dLat = (b.Lat - a.Lat) * math.Pi / 180
		dLon = (b.Lon - a.Lon) * math.Pi / 180
	)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Distance returns the great-circle distance in kilometers between two points.
func Distance(a, b Point) float64 {
	return HaversineKm(a.Pos, b.Pos)
}

// CheckPoints validates that every point carries a finite, in-range position.
// It is the structural gate required before any distance computation; it does
// not inspect IDs, labels or scores.
//
// Complexity: O(n).
func CheckPoints(points []Point) error {
	var i int
	for i = 0; i < len(points); i++ {
		if err := checkCoord(points[i].Pos); err != nil {
			return err
		}
	}

	return nil
}

// checkCoord rejects NaN/±Inf and out-of-range degrees.
func checkCoord(c Coord) error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		return ErrBadCoordinate
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || c.Lon < -180 || c.Lon > 180 {
		return ErrBadCoordinate
	}

	return nil
}

// DistanceMatrix builds the full pairwise distance matrix for points.
//
// Contracts:
//   - Returns ErrNoPoints for an empty slice; a single point yields a 1×1
//     zero matrix.
//   - matrix[i][j] == matrix[j][i]; matrix[i][i] == 0.
//   - Only the upper triangle is computed; the rest is mirrored.
//
// Complexity: O(n²) time, O(n²) space.
func DistanceMatrix(points []Point) (Matrix, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if err := CheckPoints(points); err != nil {
		return nil, err
	}

	m := make(Matrix, n)
	var i, j int
	for i = 0; i < n; i++ {
		m[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := Distance(points[i], points[j])
			m[i][j] = d
			m[j][i] = d // mirror: symmetry by construction
		}
	}

	return m, nil
}

// NearestNeighbors returns the k candidates closest to target, ascending by
// distance. A candidate sharing target's ID is excluded - identity equality,
// not position equality, since two distinct IDs may share a position in
// degenerate data.
//
// Ties are broken by candidate order in the input slice (stable sort), so the
// result is deterministic for a fixed input order.
//
// Complexity: O(n log n) time, O(n) space.
func NearestNeighbors(target Point, candidates []Point, k int) []Neighbor {
	if k <= 0 {
		return nil
	}

	out := make([]Neighbor, 0, len(candidates))
	var i int
	for i = 0; i < len(candidates); i++ {
		if candidates[i].ID == target.ID {
			continue
		}
		out = append(out, Neighbor{Point: candidates[i], Km: Distance(target, candidates[i])})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Km < out[b].Km })

	if k < len(out) {
		out = out[:k]
	}

	return out
}

// RouteLength sums consecutive pairwise distances along an ordered point
// sequence. Zero or one point yields 0.
//
// Complexity: O(n).
func RouteLength(points []Point) float64 {
	var (
		total float64
		i     int
	)
	for i = 0; i+1 < len(points); i++ {
		total += Distance(points[i], points[i+1])
	}

	return total
}

// Diameter returns the maximum pairwise distance within a point set.
// Fewer than two points yield 0.
//
// Complexity: O(n²).
func Diameter(points []Point) float64 {
	var (
		maxKm float64
		i, j  int
	)
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d > maxKm {
				maxKm = d
			}
		}
	}

	return maxKm
}

// Centroid returns the component-wise arithmetic mean of the point positions.
// This is a flat-plane approximation, not a spherical centroid; at the
// metropolitan scale this engine targets the error is negligible.
//
// Returns ErrNoPoints for an empty slice.
//
// Complexity: O(n).
func Centroid(points []Point) (Coord, error) {
	n := len(points)
	if n == 0 {
		return Coord{}, ErrNoPoints
	}

	var (
		sumLat, sumLon float64
		i              int
	)
	for i = 0; i < n; i++ {
		sumLat += points[i].Pos.Lat
		sumLon += points[i].Pos.Lon
	}

	return Coord{Lat: sumLat / float64(n), Lon: sumLon / float64(n)}, nil
}
