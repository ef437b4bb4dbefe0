package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// loadCandidates reads a candidate list from a JSON file. This is the
// pre-scored input path: the scraping and scoring may have happened elsewhere.
func loadCandidates(path string) ([]Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open candidates: %w", err)
	}
	players, err := parseCandidates(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return players, nil
}

// parseCandidates parses a JSON candidate list. Accepts either a bare array
// or an object with a "candidates" field. Each entry carries "name", "black",
// and either "odds" (seven per-round probabilities, scored by the caller) or
// a precomputed "score".
func parseCandidates(data string) ([]Player, error) {
	root := gjson.Parse(data)
	if root.IsObject() {
		root = root.Get("candidates")
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array of candidates", ErrInvalidCandidate)
	}

	var players []Player
	var parseErr error
	root.ForEach(func(_, v gjson.Result) bool {
		p := Player{
			Name:   v.Get("name").String(),
			Seed:   int(v.Get("seed").Int()),
			Black:  int(v.Get("black").Int()),
			Rounds: -1,
		}

		if odds := v.Get("odds"); odds.IsArray() {
			for _, o := range odds.Array() {
				p.Odds = append(p.Odds, o.Float())
			}
		} else if score := v.Get("score"); score.Exists() {
			p.Score = score.Float()
		} else {
			parseErr = fmt.Errorf("%w: %q carries neither odds nor score", ErrInvalidCandidate, p.Name)
			return false
		}

		players = append(players, p)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	return players, nil
}

// validatePlayers rejects malformed candidates before they reach the
// selector: empty or duplicate names, black points outside the game's 0-5
// range, and odds vectors of the wrong length or outside [0,1].
func validatePlayers(players []Player) error {
	seen := make(map[string]bool, len(players))
	for i := range players {
		p := &players[i]
		if p.Name == "" {
			return fmt.Errorf("%w: empty name at index %d", ErrInvalidCandidate, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalidCandidate, p.Name)
		}
		seen[p.Name] = true

		if p.Black < 0 || p.Black > 5 {
			return fmt.Errorf("%w: %q has %d black points, want 0-5", ErrInvalidCandidate, p.Name, p.Black)
		}

		if p.Odds == nil {
			continue
		}
		if len(p.Odds) != NumRounds {
			return fmt.Errorf("%w: %q has %d round odds, want %d", ErrInvalidCandidate, p.Name, len(p.Odds), NumRounds)
		}
		for r, o := range p.Odds {
			if o < 0 || o > 1 {
				return fmt.Errorf("%w: %q round %s odds %v outside [0,1]", ErrInvalidCandidate, p.Name, roundNames[r], o)
			}
		}
	}
	return nil
}
