package main

import (
	"strings"
	"testing"
)

// verifySelection runs the invariant checklist against a selector result.
func verifySelection(t *testing.T, sel Selection, players []Player, count, budget int) {
	t.Helper()

	// 1. exactly count players chosen
	if len(sel.Squad) != count {
		t.Errorf("squad size %d, want %d", len(sel.Squad), count)
	}

	// 2. budget respected, totals consistent
	black := 0
	score := 0.0
	seen := map[string]bool{}
	known := map[string]bool{}
	for _, p := range players {
		known[p.Name] = true
	}

	for _, p := range sel.Squad {
		black += p.Black
		score += p.Score

		// 3. no duplicates, no invented players
		if seen[p.Name] {
			t.Errorf("duplicate player %q in squad", p.Name)
		}
		seen[p.Name] = true
		if !known[p.Name] {
			t.Errorf("squad player %q not in the candidate pool", p.Name)
		}
	}
	if black > budget {
		t.Errorf("squad costs %d black points, budget is %d", black, budget)
	}
	if black != sel.TotalBlack {
		t.Errorf("TotalBlack %d, recomputed %d", sel.TotalBlack, black)
	}
	if diff := score - sel.TotalScore; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalScore %v, recomputed %v", sel.TotalScore, score)
	}

	// 4. squad listed best-first
	for i := 1; i < len(sel.Squad); i++ {
		if sel.Squad[i].Score > sel.Squad[i-1].Score {
			t.Errorf("squad not sorted by score at index %d", i)
		}
	}
}

func TestForecastToSelection(t *testing.T) {
	cfg := DefaultScoreConfig()

	players, err := loadForecast("testdata/forecast.html")
	if err != nil {
		t.Fatalf("loadForecast: %v", err)
	}

	applyScores(players, cfg)
	draw := applyDraw(players)
	if draw.Champion < 0 {
		t.Fatal("no champion from emulated draw")
	}
	t.Logf("emulated champion: %s", players[draw.Champion].Name)

	const count, budget = 4, 6

	sel, err := NewSelector(players, count, budget, "", cfg).Select()
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	verifySelection(t, sel, players, count, budget)

	// Both cost-5 favourites cannot fit in 6 black points together.
	top := map[string]bool{}
	for _, p := range sel.Squad {
		if p.Black == 5 {
			top[p.Name] = true
		}
	}
	if len(top) > 1 {
		t.Errorf("both cost-5 seeds selected within a budget of %d", budget)
	}

	jokers := jokerSuggestions(players, cfg, 5)
	if len(jokers) == 0 {
		t.Fatal("no joker suggestions")
	}
	for i := 1; i < len(jokers); i++ {
		if jokers[i].Value > jokers[i-1].Value {
			t.Errorf("joker list not sorted at index %d", i)
		}
	}
	// Djokovic has by far the best second-week odds in the fixture.
	if jokers[0].Name != "Novak Djokovic" {
		t.Errorf("top joker %q, want Novak Djokovic", jokers[0].Name)
	}

	report := formatSquad(sel, budget)
	for _, p := range sel.Squad {
		if !strings.Contains(report, p.Name) {
			t.Errorf("report missing player %q", p.Name)
		}
	}
}

func TestForecastToSelectionWithLoser(t *testing.T) {
	cfg := DefaultScoreConfig()

	players, err := loadForecast("testdata/forecast.html")
	if err != nil {
		t.Fatalf("loadForecast: %v", err)
	}
	applyScores(players, cfg)

	const count, budget = 4, 6

	sel, err := NewSelector(players, count, budget, "Hugo Dellien", cfg).Select()
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	verifySelection(t, sel, players, count, budget)

	var loser *Player
	for i := range sel.Squad {
		if sel.Squad[i].Loser {
			loser = &sel.Squad[i]
		}
	}
	if loser == nil {
		t.Fatal("designated loser missing from squad")
	}
	if loser.Name != "Hugo Dellien" {
		t.Errorf("loser is %q, want Hugo Dellien", loser.Name)
	}
	if loser.Score >= 0 {
		t.Errorf("loser score %v, want negative", loser.Score)
	}
}
