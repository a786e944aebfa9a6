// Package tsp - option/result types and sentinel errors.
package tsp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the tsp package. Tests and callers match them
// with errors.Is; none of them is ever wrapped on the hot path.
var (
	// ErrNonSquare signals that the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrAsymmetry signals |d[i][j] − d[j][i]| beyond the structural tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric within tolerance")

	// ErrNegativeWeight signals a negative distance entry.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrNonZeroDiagonal signals d[i][i] ≠ 0 beyond the structural tolerance.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal not zero within tolerance")

	// ErrBadMatrix signals a NaN or otherwise ill-posed matrix entry.
	ErrBadMatrix = errors.New("tsp: NaN or ill-posed matrix entry")

	// ErrUnknownStrategy signals an unrecognized Options.Strategy.
	ErrUnknownStrategy = errors.New("tsp: unknown strategy")

	// ErrUnknownQuality signals an unrecognized Options.Quality.
	ErrUnknownQuality = errors.New("tsp: unknown quality preference")

	// ErrStartOutOfRange signals Options.Start outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start index out of range")

	// ErrEndOutOfRange signals a pinned Options.End outside [0..n-1] or equal
	// to Start on an instance with more than one node.
	ErrEndOutOfRange = errors.New("tsp: end index out of range")

	// ErrBadOption signals a negative Eps, MaxIters, ExactMaxNodes or TimeLimit.
	ErrBadOption = errors.New("tsp: invalid option value")

	// ErrBadOrder signals an order that is not a permutation of [0..n-1].
	// Seeing it from a solver is a defect, not an expected runtime condition.
	ErrBadOrder = errors.New("tsp: order is not a permutation of the input")
)

// errDeadline is the internal signal that the exact solver ran out of its
// wall-clock budget. It never escapes Solve: the dispatcher converts it into
// the documented TwoOpt fallback.
var errDeadline = errors.New("tsp: exact solver deadline exceeded")

// Strategy selects the solving algorithm.
type Strategy string

// Known strategies. The string values appear verbatim in Result.Strategy and
// in configuration files.
const (
	Greedy Strategy = "greedy"
	TwoOpt Strategy = "two_opt"
	Exact  Strategy = "exact"
	Auto   Strategy = "auto"
)

// Quality expresses the speed/quality preference consumed by Auto.
type Quality string

// Known quality preferences.
const (
	Fast     Quality = "fast"
	Balanced Quality = "balanced"
	Best     Quality = "best"
)

// FreeEnd marks Options.End as unpinned: the path may terminate anywhere.
const FreeEnd = -1

// Options configures a single Solve call.
//
// Start         – index the path must begin at (position 0 of the order).
// End           – index the path must end at; FreeEnd (-1) leaves it free.
//
//	Pinned endpoints are fixed inside the permutation search,
//	never reordered afterward.
//
// MaxIters      – accepted-move cap for 2-opt; 0 ⇒ run to a local optimum.
// ExactMaxNodes – node-count ceiling for the exact solver.
// TimeLimit     – hard wall-clock cap for the exact solver; 0 ⇒ default cap.
// Eps           – strict-improvement tolerance for 2-opt (Δ < −Eps accepts).
type Options struct {
	Strategy      Strategy
	Quality       Quality
	Start         int
	End           int
	MaxIters      int
	ExactMaxNodes int
	TimeLimit     time.Duration
	Eps           float64
}

// Default solver limits.
const (
	// DefaultExactMaxNodes bounds Held–Karp; beyond ~14 nodes the 2ⁿ table
	// stops being worth it for walking-tour sized groups.
	DefaultExactMaxNodes = 14

	// DefaultExactTimeLimit caps a single exact solve.
	DefaultExactTimeLimit = 5 * time.Second

	// autoLargeN is the node count above which Auto/balanced stops paying
	// for 2-opt and degrades to greedy.
	autoLargeN = 400

	// autoBalancedIters / autoBestIters are the accepted-move caps Auto
	// assigns to 2-opt when the caller left MaxIters at 0.
	autoBalancedIters = 500
	autoBestIters     = 2000
)

// DefaultOptions returns the canonical starting configuration: auto strategy,
// balanced quality, free end, exact solver bounded by DefaultExactMaxNodes.
func DefaultOptions() Options {
	return Options{
		Strategy:      Auto,
		Quality:       Balanced,
		Start:         0,
		End:           FreeEnd,
		MaxIters:      0,
		ExactMaxNodes: DefaultExactMaxNodes,
		TimeLimit:     DefaultExactTimeLimit,
		Eps:           1e-10,
	}
}

// Result is the outcome of a Solve call.
//
// Order is an open path over the original matrix indices: Order[0] is the
// start, Order[len-1] the last visit. Strategy names the algorithm that
// actually produced the order (after any fallback), and Elapsed is the
// wall-clock time the solve took - both feed downstream reporting and the
// algorithm-comparison tooling.
type Result struct {
	Order    []int
	Km       float64
	Strategy string
	Elapsed  time.Duration
}
