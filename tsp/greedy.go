// Package tsp - greedy nearest-unvisited construction heuristic.
package tsp

// solveGreedy builds an open path by repeatedly moving to the closest
// unvisited node, starting at opts.Start. When opts.End is pinned, that node
// is withheld from the candidate pool until it is the only node left, so the
// path is guaranteed to terminate there without post-hoc reordering.
//
// Deterministic: ties break on the smallest index.
//
// Contracts:
//   - dist already validated (square, symmetric, non-negative); n ≥ 1.
//
// Complexity: O(n²) time, O(n) space.
func solveGreedy(dist [][]float64, n int, opts Options) ([]int, float64) {
	var (
		order   = make([]int, 0, n)
		visited = make([]bool, n)
		total   float64
		cur     = opts.Start
		end     = opts.End
	)

	order = append(order, cur)
	visited[cur] = true

	var (
		step, cand int
		best       int
		bestKm     float64
		remaining  int
	)
	for step = 1; step < n; step++ {
		remaining = n - step
		best = -1

		for cand = 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			// Defer a pinned end until it is the last node standing.
			if cand == end && remaining > 1 {
				continue
			}
			if best == -1 || dist[cur][cand] < bestKm {
				best = cand
				bestKm = dist[cur][cand]
			}
		}

		order = append(order, best)
		visited[best] = true
		total += bestKm
		cur = best
	}

	return order, round1e9(total)
}
