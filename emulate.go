package main

// DrawResult holds the outcome of an emulated draw.
type DrawResult struct {
	// Rounds[i] is the number of rounds players[i] survived.
	Rounds []int
	// Champion is the index of the last player standing, -1 for an empty draw.
	Champion int
}

// playDraw plays out the whole bracket: in every round, adjacent survivors
// meet in input order and the one with the higher odds for that round
// advances. An odd player out advances on a bye. The input order must be the
// draw order, which the forecast page lists top to bottom.
func playDraw(players []Player) DrawResult {
	res := DrawResult{
		Rounds:   make([]int, len(players)),
		Champion: -1,
	}

	survivors := make([]int, len(players))
	for i := range players {
		survivors[i] = i
	}

	oddsAt := func(idx, round int) float64 {
		if round >= len(players[idx].Odds) {
			return 0
		}
		return players[idx].Odds[round]
	}

	for round := 0; round < NumRounds && len(survivors) > 1; round++ {
		next := make([]int, 0, (len(survivors)+1)/2)
		for i := 0; i+1 < len(survivors); i += 2 {
			one, two := survivors[i], survivors[i+1]
			winner := one
			if oddsAt(two, round) > oddsAt(one, round) {
				winner = two
			}
			res.Rounds[winner]++
			next = append(next, winner)
		}
		if len(survivors)%2 == 1 {
			bye := survivors[len(survivors)-1]
			res.Rounds[bye]++
			next = append(next, bye)
		}
		survivors = next
	}

	if len(survivors) > 0 {
		res.Champion = survivors[0]
	}
	return res
}

// applyDraw runs the emulation and stamps the rounds-survived count onto each
// player for reporting.
func applyDraw(players []Player) DrawResult {
	res := playDraw(players)
	for i := range players {
		players[i].Rounds = res.Rounds[i]
	}
	return res
}
