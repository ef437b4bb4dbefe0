package main

// ScoreConfig holds the pool's scoring constants in one place so the formula
// stays auditable and tests can exercise variants.
type ScoreConfig struct {
	// BasePoints is the per-round score of an unseeded player; a player earns
	// BasePoints minus their black points for every round passed.
	BasePoints int
	// DoublingRound is the 0-based round index from which round points double
	// (the second week of a Grand Slam).
	DoublingRound int
	// TitleBonus is awarded on top when a player wins the whole tournament.
	TitleBonus int
	// JokerBase and JokerBlackMultiplier set the joker payout for reaching the
	// second week: JokerBase - JokerBlackMultiplier*black.
	JokerBase            int
	JokerBlackMultiplier int
	// LoserRoundPenalty is deducted per round the designated loser survives.
	LoserRoundPenalty int
}

// DefaultScoreConfig returns the official Sportpools scoring rules.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		BasePoints:           10,
		DoublingRound:        3,
		TitleBonus:           50,
		JokerBase:            50,
		JokerBlackMultiplier: 5,
		LoserRoundPenalty:    10,
	}
}

// Input caps. The selector's DP is O(players x count x budget); these bounds
// keep malformed input from blowing it up.
var limits = struct {
	MaxPlayers int
	MaxCount   int
	MaxBudget  int
}{
	MaxPlayers: 512,
	MaxCount:   64,
	MaxBudget:  200,
}
