// Package tsp - exact open-path solver (Held–Karp dynamic programming).
//
// solveExact finds the provably shortest open path that starts at
// Options.Start and, when pinned, ends at Options.End. State space is the
// classic subset DP: dp[mask][k] = cheapest path from the start through
// exactly the node set mask, ending at k.
//
// The solver is bounded twice:
//   - by node count - the dispatcher only routes instances with
//     n ≤ Options.ExactMaxNodes here;
//   - by wall clock - the DP checks its deadline periodically and returns
//     errDeadline; the dispatcher then falls back to 2-opt instead of
//     hanging, and tags the result with the fallback's name.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
package tsp

import (
	"math"
	"time"
)

// deadlineStride controls how often the inner DP loop consults the clock;
// a power of two keeps the check branch cheap.
const deadlineStride = 4096

// solveExact runs Held–Karp on a validated instance with n ≥ 1.
func solveExact(dist [][]float64, n int, opts Options) ([]int, float64, error) {
	start := opts.Start
	if n == 1 {
		return []int{start}, 0, nil
	}

	limit := opts.TimeLimit
	if limit == 0 {
		limit = DefaultExactTimeLimit
	}
	deadline := time.Now().Add(limit)

	// Map every node except the start onto bits 0..m-1.
	var (
		m      = n - 1
		others = make([]int, 0, m)
		bitOf  = make([]int, n)
		node   int
	)
	for node = 0; node < n; node++ {
		if node == start {
			bitOf[node] = -1
			continue
		}
		bitOf[node] = len(others)
		others = append(others, node)
	}

	var (
		size   = 1 << m
		dp     = make([]float64, size*m) // dp[mask*m+k], k over others
		parent = make([]int16, size*m)
		inf    = math.Inf(1)
		i      int
	)
	for i = 0; i < size*m; i++ {
		dp[i] = inf
		parent[i] = -1
	}

	// Base: start → each first node.
	var k int
	for k = 0; k < m; k++ {
		dp[(1<<k)*m+k] = dist[start][others[k]]
	}

	// Transitions.
	var (
		mask, sub  int
		j          int
		cand, base float64
		ticks      int
	)
	for mask = 1; mask < size; mask++ {
		for k = 0; k < m; k++ {
			if mask&(1<<k) == 0 {
				continue
			}
			base = dp[mask*m+k]
			if math.IsInf(base, 1) {
				continue
			}

			ticks++
			if ticks&(deadlineStride-1) == 0 && time.Now().After(deadline) {
				return nil, 0, errDeadline
			}

			for j = 0; j < m; j++ {
				if mask&(1<<j) != 0 {
					continue
				}
				sub = mask | 1<<j
				cand = base + dist[others[k]][others[j]]
				if cand < dp[sub*m+j] {
					dp[sub*m+j] = cand
					parent[sub*m+j] = int16(k)
				}
			}
		}
	}

	// Select the terminal node: pinned end, or the cheapest free ending.
	var (
		full    = size - 1
		bestEnd = -1
		bestKm  = inf
	)
	if opts.End != FreeEnd {
		bestEnd = bitOf[opts.End]
		bestKm = dp[full*m+bestEnd]
	} else {
		for k = 0; k < m; k++ {
			if dp[full*m+k] < bestKm {
				bestKm = dp[full*m+k]
				bestEnd = k
			}
		}
	}

	// Reconstruct the path by walking parents backward.
	var (
		order = make([]int, n)
		mask2 = full
		cur   = bestEnd
		pos   = n - 1
		prev  int16
	)
	for pos >= 1 {
		order[pos] = others[cur]
		prev = parent[mask2*m+cur]
		mask2 &^= 1 << cur
		cur = int(prev)
		pos--
	}
	order[0] = start

	return order, round1e9(bestKm), nil
}
