// Package geo provides great-circle distance primitives for the route
// optimization engine: point-to-point haversine distance, pairwise distance
// matrices, nearest-neighbor queries and route-length summation.
//
// All functions are pure and side-effect free. Distances are kilometers on a
// sphere of radius EarthRadiusKm; at metropolitan scale (tens of km) the
// spherical model is accurate to well under walking precision.
//
// Determinism & immutability:
//   - No function mutates its input slice; matrices are freshly allocated.
//   - Recomputing a matrix from the same input yields an identical matrix.
//
// Errors (sentinel):
//
//	– ErrNoPoints      if an operation that requires at least one point
//	                   receives an empty slice.
//	– ErrBadCoordinate if a latitude/longitude is NaN, ±Inf or out of range.
//
// Use this package as the single source of distance truth: clustering, tour
// solving and global sequencing all consume its matrices and lengths.
package geo
