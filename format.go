package main

import (
	"fmt"
	"strings"
)

const squadRule = "------------------------------  ----  -----  ------  ---------"

// formatSquad renders the chosen squad as a fixed-width table with totals.
func formatSquad(sel Selection, budget int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-30s  %4s  %5s  %6s  %9s\n", "Player", "Seed", "Black", "Rounds", "Expected")
	b.WriteString(squadRule + "\n")

	for _, p := range sel.Squad {
		name := p.Name
		if p.Loser {
			name += " (loser)"
		}
		seed := "-"
		if p.Seed > 0 {
			seed = fmt.Sprintf("%d", p.Seed)
		}
		rounds := "-"
		if p.Rounds >= 0 {
			rounds = fmt.Sprintf("%d", p.Rounds)
		}
		fmt.Fprintf(&b, "%-30s  %4s  %5d  %6s  %9.1f\n", name, seed, p.Black, rounds, p.Score)
	}

	b.WriteString(squadRule + "\n")
	fmt.Fprintf(&b, "%-30s  %4s  %5d  %6s  %9.1f\n",
		fmt.Sprintf("TOTAL (%d players)", len(sel.Squad)), "", sel.TotalBlack, "", sel.TotalScore)
	fmt.Fprintf(&b, "Black points used: %d of %d\n", sel.TotalBlack, budget)

	return b.String()
}

// formatJokers renders the joker suggestion list, best pick first.
func formatJokers(jokers []JokerSuggestion) string {
	if len(jokers) == 0 {
		return "No joker candidates.\n"
	}

	var b strings.Builder
	b.WriteString("Select your joker in this order:\n")
	fmt.Fprintf(&b, "%-30s  %5s  %9s\n", "Player", "Black", "Value")
	for i, j := range jokers {
		fmt.Fprintf(&b, "%d. %-27s  %5d  %9.1f\n", i+1, j.Name, j.Black, j.Value)
	}
	return b.String()
}
