package main

import "errors"

// roundNames are the seven rounds of a Grand Slam draw, in playing order.
var roundNames = []string{"r64", "r32", "r16", "qf", "sf", "f", "w"}

// NumRounds is the draw depth of a Grand Slam (128 players, 7 rounds).
const NumRounds = 7

// Player is one forecast candidate. Odds[r] is the probability of winning
// round r and advancing; Score is the expected pool score computed from Odds.
type Player struct {
	Name  string
	Seed  int // 0 = unseeded
	Black int
	Odds  []float64
	Score float64

	// Rounds is the number of rounds survived in the emulated draw, filled in
	// by playDraw. -1 until then.
	Rounds int

	// Loser marks the pre-designated loser pick in selector output; its Score
	// is then the (negative) loser score, not the regular one.
	Loser bool
}

// Selection is the selector output: the chosen squad plus its totals.
type Selection struct {
	Squad      []Player
	TotalScore float64
	TotalBlack int
}

// JokerSuggestion ranks a player by the expected value of playing them as the
// joker (reaching the second week).
type JokerSuggestion struct {
	Name  string  `json:"name"`
	Black int     `json:"black"`
	Value float64 `json:"value"`
}

var (
	// ErrInfeasibleSelection means no subset of the required size fits the
	// black-point budget.
	ErrInfeasibleSelection = errors.New("no feasible selection within budget")
	// ErrInvalidCandidate means a candidate record failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate")
	// ErrUnknownLoser means the designated loser is not in the candidate list.
	ErrUnknownLoser = errors.New("unknown loser")
)

// seedToBlackPoints translates a seed number into its black-point cost:
// seeds 1-2 cost 5, 3-4 cost 4, 5-8 cost 3, 9-16 cost 2, 17-32 cost 1,
// unseeded players are free.
func seedToBlackPoints(seed int) int {
	switch {
	case seed <= 0 || seed > 32:
		return 0
	case seed < 3:
		return 5
	case seed < 5:
		return 4
	case seed < 9:
		return 3
	case seed < 17:
		return 2
	default:
		return 1
	}
}
