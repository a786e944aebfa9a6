// Package plan - tour feasibility validation.
package plan

import (
	"fmt"
	"time"
)

// Validate checks an assembled tour against practical constraints and
// returns a severity-split report. Hard findings (too few points, duration
// over budget, a point visited twice) make the tour infeasible; soft
// findings (low visiting throughput, a single-group tour) are quality
// warnings and never fail the tour on their own.
//
// A budget of 0 disables the duration check. Validate never mutates the
// tour and never returns an error: findings are data, not failures.
func Validate(g GlobalRoute, budget time.Duration, minPoints int) Report {
	var rep Report

	if g.TotalPoints < minPoints {
		rep.Hard = append(rep.Hard, Finding{
			Reason: fmt.Sprintf("only %d points, minimum %d", g.TotalPoints, minPoints),
		})
	}

	if budget > 0 && g.Duration > budget {
		rep.Hard = append(rep.Hard, Finding{
			Reason: fmt.Sprintf("duration %s over budget %s", g.Duration.Round(time.Second), budget),
		})
	}

	seen := make(map[string]struct{}, g.TotalPoints)
	for _, p := range g.Flatten() {
		if _, dup := seen[p.ID]; dup {
			rep.Hard = append(rep.Hard, Finding{
				Reason: fmt.Sprintf("point %s visited more than once", p.ID),
			})
			break
		}
		seen[p.ID] = struct{}{}
	}

	if hours := g.Duration.Hours(); hours > 0 {
		if pph := float64(g.TotalPoints) / hours; pph < DefaultMinPointsPerHour {
			rep.Soft = append(rep.Soft, Finding{
				Reason: fmt.Sprintf("%.1f points/hour below %.1f", pph, DefaultMinPointsPerHour),
			})
		}
	}

	if len(g.Sequence) < 2 {
		rep.Soft = append(rep.Soft, Finding{Reason: "tour covers a single group"})
	}

	return rep
}
