// Package tsp - validation shared by all solvers.
//
// This file validates Options combinations, distance matrices (shape,
// diagonal, negativity, symmetry, NaN) and produced orders. All checks run
// BEFORE any solving attempt; solvers may assume a well-formed instance.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst case; no hidden allocations beyond the permutation check.
package tsp

import "math"

// symTol is the structural tolerance for symmetry/diagonal checks. It is
// independent from Options.Eps, which governs "improvement" in local search.
const symTol = 1e-9

// validateAll verifies options and matrix together and returns the matrix
// order n on success.
//
// Complexity: O(n²).
func validateAll(dist [][]float64, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	n, err := validateMatrix(dist)
	if err != nil {
		return 0, err
	}

	if err = validateEndpoints(n, opts); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptions checks internal consistency of Options without referencing
// the matrix.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Eps < 0 || opts.MaxIters < 0 || opts.ExactMaxNodes < 0 || opts.TimeLimit < 0 {
		return ErrBadOption
	}

	switch opts.Strategy {
	case Greedy, TwoOpt, Exact, Auto:
		// ok
	default:
		return ErrUnknownStrategy
	}

	// Quality only matters for Auto, but an unknown value is a caller bug
	// either way; reject it early. The zero value is tolerated as Balanced.
	switch opts.Quality {
	case Fast, Balanced, Best, "":
		// ok
	default:
		return ErrUnknownQuality
	}

	return nil
}

// validateEndpoints verifies Start/End against the instance size.
//
// Contract: n==0 instances skip endpoint checks entirely (empty tour).
//
// Complexity: O(1).
func validateEndpoints(n int, opts Options) error {
	if n == 0 {
		return nil
	}
	if opts.Start < 0 || opts.Start >= n {
		return ErrStartOutOfRange
	}
	if opts.End != FreeEnd {
		if opts.End < 0 || opts.End >= n {
			return ErrEndOutOfRange
		}
		// A pinned end equal to the start is only meaningful on a
		// single-node instance.
		if opts.End == opts.Start && n > 1 {
			return ErrEndOutOfRange
		}
	}

	return nil
}

// validateMatrix performs full structural validation:
//   - square shape (every row length == row count),
//   - diagonal ≈ 0 within symTol,
//   - no negative entries, no NaN/±Inf,
//   - symmetry within symTol.
//
// Returns n (matrix order) on success. An empty matrix is valid (n == 0).
//
// Complexity: O(n²).
func validateMatrix(dist [][]float64) (int, error) {
	n := len(dist)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}

	for i = 0; i < n; i++ {
		v = dist[i][i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrBadMatrix
		}
		if math.Abs(v) > symTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = dist[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrBadMatrix
			}
			if v < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Symmetry: upper triangle only.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(dist[i][j]-dist[j][i]) > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}

// ValidateOrder checks that order is a permutation of [0..n-1]: exactly n
// entries, each index present once. Solvers uphold this by construction;
// callers and tests use it as a loud regression signal.
//
// Complexity: O(n) time, O(n) space.
func ValidateOrder(order []int, n int) error {
	if len(order) != n {
		return ErrBadOrder
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n || seen[v] {
			return ErrBadOrder
		}
		seen[v] = true
	}

	return nil
}

// pathCost sums consecutive legs of an open path. Assumes order indices are
// in range (ValidateOrder or construction guarantees it).
//
// Complexity: O(n).
func pathCost(dist [][]float64, order []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(order); i++ {
		sum += dist[order[i]][order[i+1]]
	}

	return round1e9(sum)
}

// roundScale controls final cost stabilization precision (1e-9). It keeps
// costs stable across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
