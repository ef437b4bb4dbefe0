package main

import "sort"

// ── Expected score from round odds ──────────────────────────────────

// scoreProbabilities computes the expected pool score for a player from their
// per-round advancement odds: each round passed pays BasePoints-black, doubled
// from DoublingRound onward.
func scoreProbabilities(odds []float64, black int, cfg ScoreConfig) float64 {
	total := 0.0
	for r, p := range odds {
		pts := cfg.BasePoints - black
		if r >= cfg.DoublingRound {
			pts *= 2
		}
		total += p * float64(pts)
	}
	return total
}

// scoreLoserProbabilities is the expected score of the designated loser, who
// loses LoserRoundPenalty for every round survived.
func scoreLoserProbabilities(odds []float64, cfg ScoreConfig) float64 {
	total := 0.0
	for _, p := range odds {
		total += p
	}
	return -total * float64(cfg.LoserRoundPenalty)
}

// jokerValue is the expected payout of playing a player as the joker: reaching
// the second week pays JokerBase minus JokerBlackMultiplier per black point.
func jokerValue(odds []float64, black int, cfg ScoreConfig) float64 {
	if len(odds) <= cfg.DoublingRound {
		return 0
	}
	return odds[cfg.DoublingRound] * float64(cfg.JokerBase-cfg.JokerBlackMultiplier*black)
}

// ── Integer score from an emulated draw ─────────────────────────────

// roundsToScore scores a player by the number of rounds actually passed:
// each round pays BasePoints-black, second-week rounds pay double, and winning
// the tournament adds TitleBonus. The loser instead bleeds LoserRoundPenalty
// per round survived.
func roundsToScore(rounds, black int, loser bool, cfg ScoreConfig) int {
	if loser {
		return -rounds * cfg.LoserRoundPenalty
	}

	base := rounds * (cfg.BasePoints - black)
	secondWeek := max(0, rounds-cfg.DoublingRound) * (cfg.BasePoints - black)
	win := 0
	if rounds == NumRounds {
		win = cfg.TitleBonus
	}
	return base + secondWeek + win
}

// ── Batch helpers ───────────────────────────────────────────────────

// applyScores fills in Score for every player that carries round odds.
// Pre-scored players (JSON input without odds) are left untouched.
func applyScores(players []Player, cfg ScoreConfig) {
	for i := range players {
		if players[i].Odds != nil {
			players[i].Score = scoreProbabilities(players[i].Odds, players[i].Black, cfg)
		}
	}
}

// jokerSuggestions ranks players by joker value, descending, and returns the
// top n. Players without odds carry no joker information and are skipped.
func jokerSuggestions(players []Player, cfg ScoreConfig, n int) []JokerSuggestion {
	var out []JokerSuggestion
	for i := range players {
		if players[i].Odds == nil {
			continue
		}
		out = append(out, JokerSuggestion{
			Name:  players[i].Name,
			Black: players[i].Black,
			Value: jokerValue(players[i].Odds, players[i].Black, cfg),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
