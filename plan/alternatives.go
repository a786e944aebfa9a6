// Package plan - alternative tour generation.
package plan

import (
	"sort"
	"strings"

	"github.com/munchroute/munchroute/cluster"
	"github.com/munchroute/munchroute/geo"
	"github.com/munchroute/munchroute/tsp"
)

// Alternatives assembles up to count distinct tours over the same partition.
// Diversity comes from two dials, tried in order: the solver strategy
// (greedy, 2-opt, exact) and then, when no start anchor pins the departure,
// the starting cluster. Tours that flatten to an order already seen are
// discarded, so the result never contains copies; fewer than count tours
// come back when the instance simply has no more distinct answers.
//
// The first returned tour is always the one Optimize itself would produce.
//
// Errors: ErrBadCount for count < 1, plus everything Optimize can raise.
func Alternatives(clusters map[int][]geo.Point, count int, opts Options) ([]GlobalRoute, error) {
	if count < 1 {
		return nil, ErrBadCount
	}

	// Normalize once so the strategy dial mutates a fully-formed Solver.
	opts, err := normalize(opts)
	if err != nil {
		return nil, err
	}

	var (
		out  []GlobalRoute
		seen = make(map[string]struct{})
	)
	add := func(g GlobalRoute) {
		sig := flattenSignature(g)
		if _, dup := seen[sig]; dup {
			return
		}
		seen[sig] = struct{}{}
		out = append(out, g)
	}

	base, err := Optimize(clusters, opts)
	if err != nil {
		return nil, err
	}
	add(base)

	// Dial one: concrete solver strategies.
	for _, strat := range []tsp.Strategy{tsp.Greedy, tsp.TwoOpt, tsp.Exact} {
		if len(out) >= count {
			break
		}

		varied := opts
		varied.Solver.Strategy = strat
		g, err := Optimize(clusters, varied)
		if err != nil {
			return nil, err
		}
		add(g)
	}

	// Dial two: rotate the starting cluster (only when no anchor pins it).
	if opts.Start == nil {
		ids := make([]int, 0, len(clusters))
		for id := range clusters {
			if id != cluster.Noise {
				ids = append(ids, id)
			}
		}
		sort.Ints(ids)

		for _, id := range ids {
			if len(out) >= count {
				break
			}

			g, err := optimizeFrom(clusters, opts, id)
			if err != nil {
				return nil, err
			}
			add(g)
		}
	}

	return out, nil
}

// flattenSignature keys a tour by its flat visiting order. Identical orders
// imply identical legs and totals, so it is a sufficient equality proxy.
func flattenSignature(g GlobalRoute) string {
	var sb strings.Builder
	for _, p := range g.Flatten() {
		sb.WriteString(p.ID)
		sb.WriteByte('|')
	}

	return sb.String()
}
