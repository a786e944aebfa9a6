// Package tsp - unified dispatcher for the tour solvers.
//
// Solve is the single entry point: it validates the instance, resolves Auto
// into a concrete strategy, routes through the strategy table and stamps the
// result with the strategy actually used plus wall-clock time.
//
// Design principles:
//   - Strategy-table dispatch (map of strategy → solver), not a growing
//     conditional chain; new strategies register one table entry.
//   - The exact-solver fallback is a first-class, observable branch: a size
//     or deadline overflow reroutes to 2-opt and the Result says "two_opt".
//   - Strict sentinels from types.go; validation precedes all solving.
package tsp

import "time"

// solverFunc is the single capability every concrete strategy satisfies.
// It receives a validated instance and returns the order, its cost and the
// name of the algorithm that actually produced it.
type solverFunc func(dist [][]float64, n int, opts Options) ([]int, float64, string, error)

// strategyTable maps concrete strategies to their solvers. Auto never
// appears here: the dispatcher resolves it before lookup.
var strategyTable = map[Strategy]solverFunc{
	Greedy: runGreedy,
	TwoOpt: runTwoOpt,
	Exact:  runExactWithFallback,
}

// Solve validates dist and opts, resolves the strategy and returns the
// optimized open path.
//
// Edge cases: n==0 → empty order; n==1 → the single node; n==2 → the only
// possible order (no further optimization attempted).
//
// Errors: sentinels from types.go, all raised before any solving work.
func Solve(dist [][]float64, opts Options) (Result, error) {
	began := time.Now()

	n, err := validateAll(dist, opts)
	if err != nil {
		return Result{}, err
	}

	strat, opts := resolveStrategy(n, opts)

	// Trivial instances: the permutation is forced; solvers are bypassed.
	if n <= 2 {
		order := trivialOrder(n, opts)

		return Result{
			Order:    order,
			Km:       pathCost(dist, order),
			Strategy: string(strat),
			Elapsed:  time.Since(began),
		}, nil
	}

	solver, ok := strategyTable[strat]
	if !ok {
		return Result{}, ErrUnknownStrategy
	}

	order, km, name, err := solver(dist, n, opts)
	if err != nil {
		return Result{}, err
	}
	if err = ValidateOrder(order, n); err != nil {
		// A non-permutation here is a solver defect; surface it loudly.
		return Result{}, err
	}

	return Result{Order: order, Km: km, Strategy: name, Elapsed: time.Since(began)}, nil
}

// Compare runs every applicable concrete strategy on the same instance and
// returns the results keyed by strategy name. The exact solver participates
// only when the instance fits under its node ceiling.
//
// Intended for algorithm-comparison tooling and tuning, not for production
// routing (use Auto there).
func Compare(dist [][]float64, opts Options) (map[string]Result, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return nil, err
	}

	ceiling := opts.ExactMaxNodes
	if ceiling == 0 {
		ceiling = DefaultExactMaxNodes
	}

	strategies := []Strategy{Greedy, TwoOpt}
	if n <= ceiling {
		strategies = append(strategies, Exact)
	}

	out := make(map[string]Result, len(strategies))
	var res Result
	for _, strat := range strategies {
		o := opts
		o.Strategy = strat
		res, err = Solve(dist, o)
		if err != nil {
			return nil, err
		}
		out[string(strat)] = res
	}

	return out, nil
}

// resolveStrategy maps Auto onto a concrete strategy using the documented
// thresholds (see package doc), and fills in Auto's iteration caps when the
// caller left MaxIters at 0. Concrete strategies pass through unchanged.
func resolveStrategy(n int, opts Options) (Strategy, Options) {
	if opts.Strategy != Auto {
		return opts.Strategy, opts
	}

	ceiling := opts.ExactMaxNodes
	if ceiling == 0 {
		ceiling = DefaultExactMaxNodes
		opts.ExactMaxNodes = ceiling
	}

	quality := opts.Quality
	if quality == "" {
		quality = Balanced
	}

	switch quality {
	case Fast:
		return Greedy, opts

	case Best:
		if n <= ceiling {
			return Exact, opts
		}
		if opts.MaxIters == 0 {
			opts.MaxIters = autoBestIters
		}

		return TwoOpt, opts

	default: // Balanced
		if n <= ceiling {
			return Exact, opts
		}
		if n > autoLargeN {
			return Greedy, opts
		}
		if opts.MaxIters == 0 {
			opts.MaxIters = autoBalancedIters
		}

		return TwoOpt, opts
	}
}

// trivialOrder returns the forced permutation for n ≤ 2.
func trivialOrder(n int, opts Options) []int {
	switch n {
	case 0:
		return []int{}
	case 1:
		return []int{opts.Start}
	default:
		other := 1 - opts.Start // n==2: the only non-start index

		return []int{opts.Start, other}
	}
}

// runGreedy adapts solveGreedy to the solverFunc capability.
func runGreedy(dist [][]float64, n int, opts Options) ([]int, float64, string, error) {
	order, km := solveGreedy(dist, n, opts)

	return order, km, string(Greedy), nil
}

// runTwoOpt adapts solveTwoOpt (greedy-seeded) to the solverFunc capability.
func runTwoOpt(dist [][]float64, n int, opts Options) ([]int, float64, string, error) {
	order, km := solveTwoOpt(dist, n, opts, nil)

	return order, km, string(TwoOpt), nil
}

// runExactWithFallback routes small instances to Held–Karp and degrades to
// 2-opt on size or deadline overflow. The fallback is reported through the
// returned name - callers can always tell which algorithm really ran.
func runExactWithFallback(dist [][]float64, n int, opts Options) ([]int, float64, string, error) {
	ceiling := opts.ExactMaxNodes
	if ceiling == 0 {
		ceiling = DefaultExactMaxNodes
	}

	if n <= ceiling {
		order, km, err := solveExact(dist, n, opts)
		if err == nil {
			return order, km, string(Exact), nil
		}
		if err != errDeadline {
			return nil, 0, "", err
		}
		// Deadline exceeded: fall through to the local-search fallback.
	}

	order, km := solveTwoOpt(dist, n, opts, nil)

	return order, km, string(TwoOpt), nil
}
