package main

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ── Selector ────────────────────────────────────────────────────────

// Selector finds the squad of exactly count players with total black points
// within budget that maximizes total expected score. An optional designated
// loser is forced into the squad: it takes one of the count slots, its black
// points come off the budget, and it contributes its loser score.
type Selector struct {
	players []Player
	count   int
	budget  int
	loser   string
	cfg     ScoreConfig
}

// NewSelector creates a selector over the given candidate pool.
func NewSelector(players []Player, count, budget int, loser string, cfg ScoreConfig) *Selector {
	return &Selector{
		players: players,
		count:   count,
		budget:  budget,
		loser:   loser,
		cfg:     cfg,
	}
}

// Select runs the optimization. It never mutates the input pool.
func (s *Selector) Select() (Selection, error) {
	if err := s.validate(); err != nil {
		return Selection{}, err
	}

	pool := s.players
	slots := s.count
	budget := s.budget

	var loserPick *Player
	if s.loser != "" {
		idx := -1
		for i := range pool {
			if strings.EqualFold(pool[i].Name, s.loser) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Selection{}, fmt.Errorf("%w: %q not in forecast", ErrUnknownLoser, s.loser)
		}

		lp := pool[idx]
		lp.Loser = true
		lp.Score = scoreLoserProbabilities(lp.Odds, s.cfg)
		loserPick = &lp

		rest := make([]Player, 0, len(pool)-1)
		rest = append(rest, pool[:idx]...)
		rest = append(rest, pool[idx+1:]...)
		pool = rest

		slots--
		budget -= lp.Black
		if budget < 0 {
			return Selection{}, fmt.Errorf("%w: loser %q alone costs %d black points against a budget of %d",
				ErrInfeasibleSelection, lp.Name, lp.Black, s.budget)
		}
	}

	chosen, total, err := knapsackExact(pool, slots, budget)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{
		Squad:      chosen,
		TotalScore: total,
	}
	if loserPick != nil {
		sel.Squad = append(sel.Squad, *loserPick)
		sel.TotalScore += loserPick.Score
	}
	for i := range sel.Squad {
		sel.TotalBlack += sel.Squad[i].Black
	}

	// List the squad best-first; the loser's negative score puts it last.
	sort.SliceStable(sel.Squad, func(i, j int) bool {
		return sel.Squad[i].Score > sel.Squad[j].Score
	})

	return sel, nil
}

func (s *Selector) validate() error {
	switch {
	case len(s.players) > limits.MaxPlayers:
		return fmt.Errorf("%d candidates exceeds the maximum of %d", len(s.players), limits.MaxPlayers)
	case s.count < 1 || s.count > limits.MaxCount:
		return fmt.Errorf("count %d out of range [1,%d]", s.count, limits.MaxCount)
	case s.budget < 0 || s.budget > limits.MaxBudget:
		return fmt.Errorf("black-point budget %d out of range [0,%d]", s.budget, limits.MaxBudget)
	case len(s.players) < s.count:
		return fmt.Errorf("%w: only %d candidates for %d slots", ErrInfeasibleSelection, len(s.players), s.count)
	}
	return nil
}

// ── Exact-cardinality knapsack ──────────────────────────────────────

// knapsackExact solves the 0/1 knapsack with an exact count constraint:
// among all subsets of exactly count players with total black points <= budget,
// it returns one maximizing total score. DP over (picked, spent) per player,
// with a per-player take table for backtracking. Strict-improvement updates
// keep ties resolved toward the earliest candidates in input order, so the
// result is deterministic for a fixed input order.
func knapsackExact(players []Player, count, budget int) ([]Player, float64, error) {
	if count == 0 {
		return nil, 0, nil
	}

	negInf := math.Inf(-1)

	// best[k][b]: max score choosing k of the players seen so far spending <= b.
	best := make([][]float64, count+1)
	for k := range best {
		best[k] = make([]float64, budget+1)
		for b := range best[k] {
			if k > 0 {
				best[k][b] = negInf
			}
		}
	}

	// take[i][k][b]: player i was the latest to improve state (k, b).
	take := make([][][]bool, len(players))

	for i := range players {
		cost := players[i].Black
		if cost > budget {
			continue
		}
		ti := make([][]bool, count+1)
		for k := min(i+1, count); k >= 1; k-- {
			row := make([]bool, budget+1)
			for b := budget; b >= cost; b-- {
				prev := best[k-1][b-cost]
				if prev == negInf {
					continue
				}
				if cand := prev + players[i].Score; cand > best[k][b] {
					best[k][b] = cand
					row[b] = true
				}
			}
			ti[k] = row
		}
		take[i] = ti
	}

	total := best[count][budget]
	if total == negInf {
		return nil, 0, fmt.Errorf("%w: no %d players fit within %d black points", ErrInfeasibleSelection, count, budget)
	}

	// Backtrack: scanning players last to first, the latest improver of a
	// state is the one on the optimal path; earlier improvers belong to the
	// prefix states we move into.
	chosen := make([]Player, 0, count)
	k, b := count, budget
	for i := len(players) - 1; i >= 0 && k > 0; i-- {
		if take[i] == nil || take[i][k] == nil || !take[i][k][b] {
			continue
		}
		chosen = append(chosen, players[i])
		b -= players[i].Black
		k--
	}
	if k != 0 {
		// Unreachable if the DP is consistent.
		return nil, 0, fmt.Errorf("selection backtracking failed at %d remaining slots", k)
	}

	return chosen, total, nil
}
