// Package tsp - 2-opt local search on an open path.
//
// solveTwoOpt performs deterministic first-improvement 2-opt: it repeatedly
// tests reversing a contiguous segment [i..j] of the current order and
// applies the reversal whenever it strictly reduces total length (Δ < −Eps).
//
// Open-path deltas differ from the closed-tour classic:
//   - interior reversal (j < last): Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e)
//     with a=O[i−1], b=O[i], c=O[j], e=O[j+1];
//   - tail reversal (j == last, end unpinned): Δ = d(a,c) − d(a,b)
//     since no edge follows the last stop.
//
// Position 0 is always fixed (the path starts where the walker starts); the
// last position is additionally fixed when Options.End pins it.
//
// Design:
//   - Deterministic scanning order; no RNG.
//   - Restart scan after each accepted move (first-improvement policy).
//   - Stop at Options.MaxIters accepted moves or at a local optimum.
//
// Complexity: O(iter·n²) time; O(n) extra space for the working copy.
package tsp

// solveTwoOpt improves init (or a greedy seed when init is nil) and returns
// the order together with its stabilized cost.
//
// Contracts: dist already validated; n ≥ 1; init, when provided, is a valid
// permutation respecting the pinned endpoints.
func solveTwoOpt(dist [][]float64, n int, opts Options, init []int) ([]int, float64) {
	var order []int
	if init == nil {
		order, _ = solveGreedy(dist, n, opts)
	} else {
		order = make([]int, n)
		copy(order, init) // keep the caller's slice immutable
	}

	if n < 3 {
		return order, pathCost(dist, order)
	}

	// Scan bounds: position 0 is pinned; the last position is pinned too
	// when an end anchor was requested.
	last := n - 1
	hiJ := last
	if opts.End != FreeEnd {
		hiJ = last - 1
	}

	var (
		accepted int
		improved bool
		i, j     int
		a, b     int
		c, e     int
		delta    float64
	)
	for {
		improved = false

		for i = 1; i < hiJ && !improved; i++ {
			for j = i + 1; j <= hiJ; j++ {
				a = order[i-1]
				b = order[i]
				c = order[j]

				if j == last {
					// Tail reversal: the edge after j does not exist.
					delta = dist[a][c] - dist[a][b]
				} else {
					e = order[j+1]
					delta = (dist[a][c] + dist[b][e]) - (dist[a][b] + dist[c][e])
				}

				if delta < -opts.Eps {
					reverseSegment(order, i, j)
					accepted++
					improved = true

					break // first improvement: restart the scan
				}
			}
		}

		if !improved {
			break // local optimum under the 2-opt neighborhood
		}
		if opts.MaxIters > 0 && accepted >= opts.MaxIters {
			break // iteration cap reached
		}
	}

	return order, pathCost(dist, order)
}

// reverseSegment reverses order[i..j] in place.
//
// Complexity: O(j−i).
func reverseSegment(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}
