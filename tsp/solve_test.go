// Package tsp_test exercises the solver family via the public API.
// Focus: validation sentinels, the permutation invariant across strategies,
// pinned endpoints, auto-selection thresholds and the exact→2-opt fallback.
package tsp_test

import (
	"math"
	"testing"
	"time"

	"github.com/munchroute/munchroute/tsp"
	"github.com/stretchr/testify/require"
)

// euclid builds a symmetric Euclidean distance matrix over 2D points.
func euclid(pts [][2]float64) [][]float64 {
	n := len(pts)
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			d := math.Sqrt(dx*dx + dy*dy)
			m[i][j], m[j][i] = d, d
		}
	}
	return m
}

// line returns n collinear points spaced 1 apart; the optimal open path from
// index 0 is the identity order with cost n-1.
func line(n int) [][]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = [2]float64{float64(i), 0}
	}
	return euclid(pts)
}

func solveWith(t *testing.T, m [][]float64, strat tsp.Strategy) tsp.Result {
	t.Helper()
	opts := tsp.DefaultOptions()
	opts.Strategy = strat
	res, err := tsp.Solve(m, opts)
	require.NoError(t, err)
	return res
}

// --- validation ------------------------------------------------------------

func TestSolve_ValidationSentinels(t *testing.T) {
	base := tsp.DefaultOptions()

	cases := []struct {
		name string
		dist [][]float64
		mut  func(*tsp.Options)
		want error
	}{
		{"non-square", [][]float64{{0, 1}, {1}}, nil, tsp.ErrNonSquare},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, nil, tsp.ErrAsymmetry},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, nil, tsp.ErrNegativeWeight},
		{"dirty diagonal", [][]float64{{0.5, 1}, {1, 0}}, nil, tsp.ErrNonZeroDiagonal},
		{"nan entry", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, nil, tsp.ErrBadMatrix},
		{"unknown strategy", line(3), func(o *tsp.Options) { o.Strategy = "annealing" }, tsp.ErrUnknownStrategy},
		{"unknown quality", line(3), func(o *tsp.Options) { o.Quality = "ultra" }, tsp.ErrUnknownQuality},
		{"start out of range", line(3), func(o *tsp.Options) { o.Start = 3 }, tsp.ErrStartOutOfRange},
		{"end out of range", line(3), func(o *tsp.Options) { o.End = 9 }, tsp.ErrEndOutOfRange},
		{"end equals start", line(3), func(o *tsp.Options) { o.End = 0 }, tsp.ErrEndOutOfRange},
		{"negative eps", line(3), func(o *tsp.Options) { o.Eps = -1 }, tsp.ErrBadOption},
		{"negative iters", line(3), func(o *tsp.Options) { o.MaxIters = -1 }, tsp.ErrBadOption},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := base
			if tc.mut != nil {
				tc.mut(&opts)
			}
			_, err := tsp.Solve(tc.dist, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// --- degenerate sizes --------------------------------------------------------

func TestSolve_DegenerateSizes(t *testing.T) {
	for _, strat := range []tsp.Strategy{tsp.Greedy, tsp.TwoOpt, tsp.Exact, tsp.Auto} {
		res, err := tsp.Solve([][]float64{}, tsp.Options{Strategy: strat, End: tsp.FreeEnd})
		require.NoError(t, err)
		require.Empty(t, res.Order)
		require.Zero(t, res.Km)

		res = solveWith(t, line(1), strat)
		require.Equal(t, []int{0}, res.Order)
		require.Zero(t, res.Km)

		// Two nodes: the only order, length = the single pairwise distance,
		// regardless of requested strategy.
		res = solveWith(t, line(2), strat)
		require.Equal(t, []int{0, 1}, res.Order)
		require.InDelta(t, 1.0, res.Km, 1e-9)
	}
}

// --- permutation invariant ---------------------------------------------------

func TestSolve_PermutationInvariant(t *testing.T) {
	pts := [][2]float64{
		{0, 0}, {3, 1}, {1, 4}, {2, 2}, {5, 0}, {4, 3}, {0, 5}, {6, 1},
	}
	m := euclid(pts)

	for _, strat := range []tsp.Strategy{tsp.Greedy, tsp.TwoOpt, tsp.Exact, tsp.Auto} {
		res := solveWith(t, m, strat)
		require.NoError(t, tsp.ValidateOrder(res.Order, len(pts)),
			"strategy %s must return a permutation", strat)
		require.Equal(t, 0, res.Order[0], "path must begin at the start index")
	}
}

// --- quality of solutions -----------------------------------------------------

func TestSolve_ExactOptimalOnLine(t *testing.T) {
	// Optimal open path on 6 collinear points is the sweep, cost 5.
	res := solveWith(t, line(6), tsp.Exact)
	require.Equal(t, "exact", res.Strategy)
	require.InDelta(t, 5.0, res.Km, 1e-9)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)
}

func TestSolve_TwoOptNotWorseThanGreedy(t *testing.T) {
	pts := [][2]float64{
		{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 3}, {3, 1}, {4, 4}, {0.5, 1.5},
		{3.5, 0.5}, {1.5, 2.5},
	}
	m := euclid(pts)

	greedy := solveWith(t, m, tsp.Greedy)
	two := solveWith(t, m, tsp.TwoOpt)
	require.LessOrEqual(t, two.Km, greedy.Km)

	exact := solveWith(t, m, tsp.Exact)
	require.LessOrEqual(t, exact.Km, two.Km)
}

func TestSolve_Deterministic(t *testing.T) {
	m := euclid([][2]float64{{0, 0}, {1, 2}, {3, 0.5}, {2, 2.5}, {0.5, 3}, {4, 1}})

	for _, strat := range []tsp.Strategy{tsp.Greedy, tsp.TwoOpt, tsp.Exact} {
		first := solveWith(t, m, strat)
		for i := 0; i < 4; i++ {
			again := solveWith(t, m, strat)
			require.Equal(t, first.Order, again.Order, "strategy %s must be deterministic", strat)
			require.Equal(t, first.Km, again.Km)
		}
	}
}

// --- pinned endpoints ----------------------------------------------------------

func TestSolve_PinnedEndpoints(t *testing.T) {
	pts := [][2]float64{{0, 0}, {1, 1}, {2, 0}, {3, 2}, {1, 3}, {4, 0}}
	m := euclid(pts)

	for _, strat := range []tsp.Strategy{tsp.Greedy, tsp.TwoOpt, tsp.Exact} {
		opts := tsp.DefaultOptions()
		opts.Strategy = strat
		opts.Start = 2
		opts.End = 5

		res, err := tsp.Solve(m, opts)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateOrder(res.Order, len(pts)))
		require.Equal(t, 2, res.Order[0], "strategy %s start pin", strat)
		require.Equal(t, 5, res.Order[len(res.Order)-1], "strategy %s end pin", strat)
	}
}

// --- exact fallback --------------------------------------------------------------

func TestSolve_ExactFallsBackOverCeiling(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Strategy = tsp.Exact
	opts.ExactMaxNodes = 4 // instance below has 6 nodes

	res, err := tsp.Solve(line(6), opts)
	require.NoError(t, err)
	require.Equal(t, "two_opt", res.Strategy, "fallback must be observable, never claimed exact")
	require.NoError(t, tsp.ValidateOrder(res.Order, 6))
}

func TestSolve_ExactFallsBackOnDeadline(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Strategy = tsp.Exact
	opts.TimeLimit = time.Nanosecond // expires before the DP can finish

	res, err := tsp.Solve(line(13), opts)
	require.NoError(t, err)
	require.Equal(t, "two_opt", res.Strategy)
	require.NoError(t, tsp.ValidateOrder(res.Order, 13))
}

// --- auto selection ----------------------------------------------------------------

func TestSolve_AutoThresholds(t *testing.T) {
	small := line(8)

	opts := tsp.DefaultOptions()
	opts.Quality = tsp.Fast
	res, err := tsp.Solve(small, opts)
	require.NoError(t, err)
	require.Equal(t, "greedy", res.Strategy)

	opts = tsp.DefaultOptions()
	opts.Quality = tsp.Balanced
	res, err = tsp.Solve(small, opts)
	require.NoError(t, err)
	require.Equal(t, "exact", res.Strategy, "balanced prefers exact below the ceiling")

	big := line(20) // above DefaultExactMaxNodes, below the greedy cutoff
	opts = tsp.DefaultOptions()
	opts.Quality = tsp.Best
	res, err = tsp.Solve(big, opts)
	require.NoError(t, err)
	require.Equal(t, "two_opt", res.Strategy)
}

// --- comparison tooling ---------------------------------------------------------------

func TestCompare_RunsApplicableStrategies(t *testing.T) {
	m := euclid([][2]float64{{0, 0}, {1, 2}, {2, 1}, {3, 3}, {0, 3}})

	results, err := tsp.Compare(m, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Contains(t, results, "greedy")
	require.Contains(t, results, "two_opt")
	require.Contains(t, results, "exact")

	for name, res := range results {
		require.NoError(t, tsp.ValidateOrder(res.Order, 5), "strategy %s", name)
	}
	require.LessOrEqual(t, results["exact"].Km, results["greedy"].Km)
}

func TestCompare_SkipsExactOverCeiling(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.ExactMaxNodes = 3

	results, err := tsp.Compare(line(5), opts)
	require.NoError(t, err)
	require.NotContains(t, results, "exact")
}

// --- order validation -----------------------------------------------------------------

func TestValidateOrder(t *testing.T) {
	require.NoError(t, tsp.ValidateOrder([]int{2, 0, 1}, 3))
	require.ErrorIs(t, tsp.ValidateOrder([]int{0, 0, 1}, 3), tsp.ErrBadOrder)
	require.ErrorIs(t, tsp.ValidateOrder([]int{0, 1}, 3), tsp.ErrBadOrder)
	require.ErrorIs(t, tsp.ValidateOrder([]int{0, 1, 3}, 3), tsp.ErrBadOrder)
}
