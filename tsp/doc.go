// Package tsp provides interchangeable solvers for the open-path Traveling
// Salesman Problem over a symmetric distance matrix ([][]float64).
//
// Unlike the classic closed-tour formulation, routes here do not return to
// the start: a walking tour ends at its last stop. Every solver therefore
// minimizes the sum of consecutive legs of an open path that begins at a
// fixed start index and, optionally, ends at a fixed end index.
//
// Strategies (selected via Options.Strategy, dispatched through a strategy
// table so new solvers can be added without touching callers):
//
//   - Greedy  — nearest-unvisited heuristic from the start index.
//     Deterministic for a fixed start; O(n²).
//   - TwoOpt  — first-improvement 2-opt segment reversal, seeded with the
//     greedy order. Deterministic for a fixed seed order and scan
//     order; O(iter·n²).
//   - Exact   — Held–Karp dynamic programming, O(n²·2ⁿ). Used only for
//     n ≤ Options.ExactMaxNodes and under Options.TimeLimit; on
//     either overflow it transparently falls back to TwoOpt and the
//     Result reports the fallback's name, never "exact".
//   - Auto    — picks a concrete strategy from problem size and
//     Options.Quality. Exact thresholds:
//
//     fast:     greedy, any n
//     balanced: exact for n ≤ ExactMaxNodes; two_opt capped at 500
//     accepted moves for n ≤ 400; greedy above that
//     best:     exact for n ≤ ExactMaxNodes; two_opt capped at 2000
//     accepted moves otherwise
//
// Edge cases: 0 nodes → empty order, 0 km; 1 node → single-element order;
// 2 nodes → the only possible order - no strategy "optimizes" further.
//
// Every Result is a permutation of exactly the input indices (no duplication,
// no omission) regardless of strategy; ValidateOrder enforces this invariant.
//
// Malformed matrices (non-square, asymmetric beyond tolerance, negative
// entries, non-zero diagonal, NaN) are rejected with sentinel errors before
// any solving attempt.
package tsp
