// Package geo - core value types and sentinel errors.
package geo

import "errors"

// Sentinel errors returned by the geo package.
var (
	// ErrNoPoints indicates that an operation requiring a non-empty point
	// slice received zero points.
	ErrNoPoints = errors.New("geo: no points provided")

	// ErrBadCoordinate indicates a latitude/longitude that is NaN, ±Inf or
	// outside [-90,90] / [-180,180]. The engine validates only structural
	// fitness for distance computation; business-level quality is upstream's.
	ErrBadCoordinate = errors.New("geo: coordinate out of range or not finite")
)

// EarthRadiusKm is the fixed mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Coord is a geographic position in decimal degrees.
type Coord struct {
	Lat float64 // latitude, [-90, 90]
	Lon float64 // longitude, [-180, 180]
}

// Point is a single mandatory visit target.
//
// ID is the globally unique, immutable identifier; it is the ONLY key ever
// used for equality. Label is a display name and MAY repeat across many
// points (the same brand at different addresses) - two points with equal
// Label and different ID are both first-class, independently required
// targets, and no operation in this engine may coalesce them.
type Point struct {
	ID    string  // unique, stable identifier (never empty)
	Label string  // display name; duplicates allowed and expected
	Pos   Coord   // geographic position
	Score float64 // optional upstream quality/weight; ignored by distances
}

// Matrix is a square, symmetric, zero-diagonal table of pairwise great-circle
// distances in kilometers for a given ordered point list. It is never mutated
// after construction.
type Matrix [][]float64

// Order returns the number of rows (== columns) of m.
func (m Matrix) Order() int { return len(m) }

// Neighbor pairs a candidate point with its distance to a query target.
type Neighbor struct {
	Point Point
	Km    float64
}
