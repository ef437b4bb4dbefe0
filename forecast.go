package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	seedRe       = regexp.MustCompile(`\d+`)
	decorationRe = regexp.MustCompile(`\(.*?\)`)
)

// loadForecast reads a saved Tennis Abstract draw forecast page and returns
// the candidate pool in draw order.
func loadForecast(path string) ([]Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open forecast: %w", err)
	}
	defer f.Close()

	players, err := parseForecast(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return players, nil
}

// parseForecast extracts players from the first forecast table of the page.
// The table layout matches the saved page: two header rows, then one row per
// draw line with the player cell first and the seven per-round advancement
// percentages in the third through ninth columns (the second column is the
// rating column and is ignored).
func parseForecast(r io.Reader) ([]Player, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no forecast table found")
	}

	var players []Player
	table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
		if rowIdx < 2 {
			return // header rows
		}

		cells := row.Find("td, th")
		if cells.Length() < 2+NumRounds {
			return
		}

		raw := strings.TrimSpace(cells.Eq(0).Text())
		name := cleanPlayerName(raw)
		if name == "" || name == "Player" || name == "Bye" {
			return
		}

		odds := make([]float64, NumRounds)
		for i := 0; i < NumRounds; i++ {
			p, ok := parsePercent(cells.Eq(2 + i).Text())
			if !ok {
				return
			}
			odds[i] = p
		}

		seed := extractSeed(raw)
		players = append(players, Player{
			Name:   name,
			Seed:   seed,
			Black:  seedToBlackPoints(seed),
			Odds:   odds,
			Rounds: -1,
		})
	})

	if len(players) == 0 {
		return nil, fmt.Errorf("no player rows in forecast table")
	}
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	return players, nil
}

// extractSeed pulls the seed number out of a raw player cell like
// "(3)Roger Federer (SUI)". Unseeded entries (including wildcards and
// qualifiers) return 0.
func extractSeed(raw string) int {
	m := seedRe.FindString(raw)
	if m == "" {
		return 0
	}
	seed, err := strconv.Atoi(m)
	if err != nil || seed > 32 {
		return 0
	}
	return seed
}

// cleanPlayerName strips seed and country decorations from a player cell.
func cleanPlayerName(raw string) string {
	return strings.TrimSpace(decorationRe.ReplaceAllString(raw, ""))
}

// parsePercent converts a "12.3%" cell into a fraction. Empty and dash cells
// read as zero; anything else that fails to parse flags the row as invalid.
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, true
	}
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v / 100, true
}
